package codec

import (
	"fmt"
	"strings"
	"unicode"
)

// AETitleLength is the fixed wire width of an AE title field.
const AETitleLength = 16

// EncodeAETitle right-pads title with spaces to AETitleLength bytes.
//
// A title longer than 16 characters is an error unless allowLong permits
// it, in which case the value is left as-is (per DICOM PS3.8 some peers
// send over-length titles and interoperability favours tolerance).
func EncodeAETitle(title string, allowLong bool) ([]byte, error) {
	if err := validateAETitleChars(title); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, fmt.Errorf("codec: AE title must not be empty or all spaces")
	}

	if len(title) > AETitleLength {
		if allowLong {
			return []byte(title), nil
		}
		return nil, fmt.Errorf("codec: AE title %q exceeds %d bytes", title, AETitleLength)
	}

	out := make([]byte, AETitleLength)
	copy(out, title)
	for i := len(title); i < AETitleLength; i++ {
		out[i] = ' '
	}
	return out, nil
}

// DecodeAETitle strips the non-significant leading/trailing spaces from a
// 16-byte AE title field and validates the remaining characters.
func DecodeAETitle(raw []byte) (string, error) {
	title := strings.TrimSpace(string(raw))
	if title == "" {
		return "", fmt.Errorf("codec: decoded AE title is empty or all spaces")
	}
	if err := validateAETitleChars(title); err != nil {
		return "", err
	}
	return title, nil
}

// EncodeReservedAEField writes s as a raw 16-byte field, right-padded
// with spaces and truncated if over-length, with no character
// validation. Used for the A-ASSOCIATE-AC Called/Calling AE title
// fields, which PS3.8 reserves rather than defines: a conformant
// acceptor only echoes whatever the requestor sent.
func EncodeReservedAEField(s string) []byte {
	out := make([]byte, AETitleLength)
	n := copy(out, s)
	for i := n; i < AETitleLength; i++ {
		out[i] = ' '
	}
	return out
}

// DecodeReservedAEField reads a raw 16-byte reserved field verbatim,
// trimming only the trailing padding spaces, and performs no character
// validation (unlike DecodeAETitle).
func DecodeReservedAEField(raw []byte) string {
	return strings.TrimRight(string(raw), " ")
}

// validateAETitleChars rejects Unicode control characters (category C) and
// the backslash separator, per PS3.8 AE-title conformance rules.
func validateAETitleChars(title string) error {
	for _, r := range title {
		if unicode.Is(unicode.C, r) || r == '\\' {
			return fmt.Errorf("codec: AE title contains forbidden character %q", r)
		}
	}
	return nil
}
