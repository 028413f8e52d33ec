package pdu

import (
	"github.com/dicomnet/dulengine/codec"
	dulerrors "github.com/dicomnet/dulengine/errors"
)

// MaxLengthItem advertises the maximum length (in bytes) of an encoded
// DIMSE message that the sender is willing to receive (PS3.8 §9.3.2.3.1).
// A value of 0 means unlimited.
type MaxLengthItem struct {
	MaxLength uint32
}

func (i MaxLengthItem) Encode() []byte {
	body := make([]byte, 4)
	codec.PutUint32(body, i.MaxLength)
	return encodeItemHeader(ItemTypeMaxLength, body)
}

func DecodeMaxLengthItem(raw []byte) (MaxLengthItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeMaxLength)
	if err != nil {
		return MaxLengthItem{}, nil, err
	}
	if len(body) != 4 {
		return MaxLengthItem{}, nil, dulerrors.NewDecodeError("max-length", "body must be exactly 4 bytes")
	}
	return MaxLengthItem{MaxLength: codec.Uint32(body)}, rest, nil
}
