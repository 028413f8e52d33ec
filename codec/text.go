package codec

import (
	"fmt"
	"unicode/utf8"
)

// DefaultTextCodecs is the decode fallback chain tried in order when no
// explicit chain is configured: plain ASCII first, then UTF-8.
var DefaultTextCodecs = []string{"ascii", "utf-8"}

// DecodeText runs raw through each codec in chain in order, returning the
// first successful decode. An empty chain falls back to DefaultTextCodecs.
// All decode failures are reported together so the caller can see why
// every codec in the chain was rejected.
func DecodeText(raw []byte, chain []string) (string, error) {
	if len(chain) == 0 {
		chain = DefaultTextCodecs
	}

	var errs []error
	for _, name := range chain {
		s, err := decodeWith(raw, name)
		if err == nil {
			return s, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	return "", fmt.Errorf("codec: text decode failed for all codecs in chain %v: %v", chain, errs)
}

func decodeWith(raw []byte, name string) (string, error) {
	switch name {
	case "ascii":
		for _, b := range raw {
			if b > 0x7f {
				return "", fmt.Errorf("codec: byte 0x%02x is not ASCII", b)
			}
		}
		return string(raw), nil
	case "utf-8":
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("codec: invalid UTF-8 sequence")
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("codec: unknown text codec %q", name)
	}
}

// EncodeText always encodes strictly as ASCII, per PS3.8's wire format for
// the text fields the DUL layer itself constructs (UIDs, AE titles). A
// non-ASCII rune is always an encoding error, independent of any
// configured decode chain.
func EncodeText(s string) ([]byte, error) {
	for _, r := range s {
		if r > 0x7f {
			return nil, fmt.Errorf("codec: rune %q is not ASCII", r)
		}
	}
	return []byte(s), nil
}
