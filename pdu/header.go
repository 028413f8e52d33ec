package pdu

import (
	"fmt"

	"github.com/dicomnet/dulengine/codec"
	dulerrors "github.com/dicomnet/dulengine/errors"
)

// HeaderLength is the fixed size of a PDU header: a 1-byte type, a 1-byte
// reserved field, and a 4-byte big-endian length.
const HeaderLength = 6

// Header is the common 6-byte prefix shared by all seven PDU types.
type Header struct {
	Type   byte
	Length uint32 // length of everything after the header
}

// EncodeHeader writes h followed by body into a single buffer.
func EncodeHeader(h Header, body []byte) []byte {
	out := make([]byte, HeaderLength+len(body))
	out[0] = h.Type
	out[1] = 0x00
	codec.PutUint32(out[2:6], uint32(len(body)))
	copy(out[HeaderLength:], body)
	return out
}

// DecodeHeader reads the 6-byte header from raw and returns it along with
// the body slice it declares. It validates that raw is at least
// HeaderLength bytes and that the declared length does not exceed what
// remains in raw.
func DecodeHeader(raw []byte) (Header, []byte, error) {
	if len(raw) < HeaderLength {
		return Header{}, nil, dulerrors.NewDecodeError("pdu-header", fmt.Sprintf("need %d bytes, got %d", HeaderLength, len(raw)))
	}
	h := Header{
		Type:   codec.Uint8(raw[0:1]),
		Length: codec.Uint32(raw[2:6]),
	}
	remaining := raw[HeaderLength:]
	if uint32(len(remaining)) < h.Length {
		return Header{}, nil, dulerrors.NewDecodeError(typeName(h.Type), fmt.Sprintf("declared length %d exceeds available %d bytes", h.Length, len(remaining)))
	}
	return h, remaining[:h.Length], nil
}

// itemHeaderLength is the fixed size of an item/sub-item header: a 1-byte
// type, a 1-byte reserved field, and a 2-byte big-endian length.
const itemHeaderLength = 4

func encodeItemHeader(itemType byte, body []byte) []byte {
	out := make([]byte, itemHeaderLength+len(body))
	out[0] = itemType
	out[1] = 0x00
	codec.PutUint16(out[2:4], uint16(len(body)))
	copy(out[itemHeaderLength:], body)
	return out
}

func decodeItemHeader(raw []byte, wantType byte) (body []byte, rest []byte, err error) {
	if len(raw) < itemHeaderLength {
		return nil, nil, dulerrors.NewDecodeError("item-header", fmt.Sprintf("need %d bytes, got %d", itemHeaderLength, len(raw)))
	}
	gotType := codec.Uint8(raw[0:1])
	if gotType != wantType {
		return nil, nil, dulerrors.NewDecodeError("item-header", fmt.Sprintf("expected item type 0x%02x, got 0x%02x", wantType, gotType))
	}
	length := codec.Uint16(raw[2:4])
	if len(raw)-itemHeaderLength < int(length) {
		return nil, nil, dulerrors.NewDecodeError("item-header", fmt.Sprintf("declared length %d exceeds available %d bytes", length, len(raw)-itemHeaderLength))
	}
	body = raw[itemHeaderLength : itemHeaderLength+int(length)]
	rest = raw[itemHeaderLength+int(length):]
	return body, rest, nil
}

// peekItemType returns the type byte of the next item in raw without
// consuming it, used by list decoders that don't know ahead of time how
// many items follow.
func peekItemType(raw []byte) (byte, bool) {
	if len(raw) < 1 {
		return 0, false
	}
	return raw[0], true
}
