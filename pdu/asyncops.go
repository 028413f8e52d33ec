package pdu

import (
	"github.com/dicomnet/dulengine/codec"
	dulerrors "github.com/dicomnet/dulengine/errors"
)

// AsyncOperationsWindowItem negotiates the maximum number of outstanding
// asynchronous operations in each direction (PS3.8 §9.3.2.3.3). Async
// operation multiplexing itself is out of scope for this engine; the
// item is still fully codec-supported since peers include it
// unconditionally during negotiation.
type AsyncOperationsWindowItem struct {
	MaxOperationsInvoked  uint16
	MaxOperationsPerformed uint16
}

func (i AsyncOperationsWindowItem) Encode() []byte {
	body := make([]byte, 4)
	codec.PutUint16(body[0:2], i.MaxOperationsInvoked)
	codec.PutUint16(body[2:4], i.MaxOperationsPerformed)
	return encodeItemHeader(ItemTypeAsyncOperationsWindow, body)
}

func DecodeAsyncOperationsWindowItem(raw []byte) (AsyncOperationsWindowItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeAsyncOperationsWindow)
	if err != nil {
		return AsyncOperationsWindowItem{}, nil, err
	}
	if len(body) != 4 {
		return AsyncOperationsWindowItem{}, nil, dulerrors.NewDecodeError("async-operations-window", "body must be exactly 4 bytes")
	}
	return AsyncOperationsWindowItem{
		MaxOperationsInvoked:   codec.Uint16(body[0:2]),
		MaxOperationsPerformed: codec.Uint16(body[2:4]),
	}, rest, nil
}
