package pdu

import (
	"fmt"

	dulerrors "github.com/dicomnet/dulengine/errors"
)

// PresentationContextRQItem proposes one abstract syntax with one or more
// candidate transfer syntaxes (PS3.8 §9.3.2.2).
type PresentationContextRQItem struct {
	ID              byte
	AbstractSyntax  AbstractSyntaxItem
	TransferSyntaxes []TransferSyntaxItem
}

func (i PresentationContextRQItem) Encode(strict bool) ([]byte, error) {
	if len(i.TransferSyntaxes) == 0 {
		return nil, dulerrors.NewValidationError("presentation-context-rq.transfer-syntaxes", "must propose at least one transfer syntax")
	}
	if i.ID%2 == 0 {
		return nil, dulerrors.NewValidationError("presentation-context-rq.id", fmt.Sprintf("must be odd, got %d", i.ID))
	}

	body := make([]byte, 4)
	body[0] = i.ID
	// body[1:4] reserved

	abs, err := i.AbstractSyntax.Encode(strict)
	if err != nil {
		return nil, err
	}
	body = append(body, abs...)

	for _, ts := range i.TransferSyntaxes {
		tsBytes, err := ts.Encode(strict)
		if err != nil {
			return nil, err
		}
		body = append(body, tsBytes...)
	}

	return encodeItemHeader(ItemTypePresentationContextRQ, body), nil
}

func DecodePresentationContextRQItem(raw []byte, strict bool) (PresentationContextRQItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypePresentationContextRQ)
	if err != nil {
		return PresentationContextRQItem{}, nil, err
	}
	if len(body) < 4 {
		return PresentationContextRQItem{}, nil, dulerrors.NewDecodeError("presentation-context-rq", "body shorter than 4-byte fixed fields")
	}

	item := PresentationContextRQItem{ID: body[0]}
	remaining := body[4:]

	abs, remaining, err := DecodeAbstractSyntaxItem(remaining, strict)
	if err != nil {
		return PresentationContextRQItem{}, nil, err
	}
	item.AbstractSyntax = abs

	for len(remaining) > 0 {
		t, ok := peekItemType(remaining)
		if !ok || t != ItemTypeTransferSyntax {
			return PresentationContextRQItem{}, nil, dulerrors.NewDecodeError("presentation-context-rq", fmt.Sprintf("expected transfer syntax sub-item, got type 0x%02x", t))
		}
		var ts TransferSyntaxItem
		ts, remaining, err = DecodeTransferSyntaxItem(remaining, strict)
		if err != nil {
			return PresentationContextRQItem{}, nil, err
		}
		item.TransferSyntaxes = append(item.TransferSyntaxes, ts)
	}

	if len(item.TransferSyntaxes) == 0 {
		return PresentationContextRQItem{}, nil, dulerrors.NewDecodeError("presentation-context-rq", "no transfer syntax sub-items present")
	}

	return item, rest, nil
}

// PresentationContextResult is the Result/Reason field of a
// Presentation Context AC item, PS3.8 Table 9-18.
type PresentationContextResult byte

const (
	PresentationContextAccepted                            PresentationContextResult = 0x00
	PresentationContextUserRejection                        PresentationContextResult = 0x01
	PresentationContextProviderRejectionNoReason            PresentationContextResult = 0x02
	PresentationContextAbstractSyntaxNotSupported           PresentationContextResult = 0x03
	PresentationContextTransferSyntaxesNotSupported         PresentationContextResult = 0x04
)

func (r PresentationContextResult) String() string {
	switch r {
	case PresentationContextAccepted:
		return "accepted"
	case PresentationContextUserRejection:
		return "user-rejection"
	case PresentationContextProviderRejectionNoReason:
		return "provider-rejection-no-reason"
	case PresentationContextAbstractSyntaxNotSupported:
		return "abstract-syntax-not-supported"
	case PresentationContextTransferSyntaxesNotSupported:
		return "transfer-syntaxes-not-supported"
	default:
		return "unknown"
	}
}

// PresentationContextACItem answers a proposed presentation context with a
// result and, if accepted, exactly one agreed transfer syntax (PS3.8
// §9.3.3.2).
type PresentationContextACItem struct {
	ID             byte
	Result         PresentationContextResult
	TransferSyntax TransferSyntaxItem
}

func (i PresentationContextACItem) Encode(strict bool) ([]byte, error) {
	body := make([]byte, 4)
	body[0] = i.ID
	body[2] = byte(i.Result)

	tsBytes, err := i.TransferSyntax.Encode(strict)
	if err != nil {
		return nil, err
	}
	body = append(body, tsBytes...)

	return encodeItemHeader(ItemTypePresentationContextAC, body), nil
}

func DecodePresentationContextACItem(raw []byte, strict bool) (PresentationContextACItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypePresentationContextAC)
	if err != nil {
		return PresentationContextACItem{}, nil, err
	}
	if len(body) < 4 {
		return PresentationContextACItem{}, nil, dulerrors.NewDecodeError("presentation-context-ac", "body shorter than 4-byte fixed fields")
	}

	item := PresentationContextACItem{
		ID:     body[0],
		Result: PresentationContextResult(body[2]),
	}

	ts, remaining, err := DecodeTransferSyntaxItem(body[4:], strict)
	if err != nil {
		return PresentationContextACItem{}, nil, err
	}
	item.TransferSyntax = ts
	if len(remaining) != 0 {
		return PresentationContextACItem{}, nil, dulerrors.NewDecodeError("presentation-context-ac", "unexpected trailing bytes after transfer syntax")
	}

	return item, rest, nil
}
