package pdu

import "github.com/dicomnet/dulengine/codec"

// ApplicationContextItem carries the single Application Context Name
// (PS3.8 §9.3.2.1), always "1.2.840.10008.3.1.1.1" in current practice
// but encoded/decoded generically here.
type ApplicationContextItem struct {
	Name string
}

func (i ApplicationContextItem) Encode(strict bool) ([]byte, error) {
	uidBytes, err := codec.EncodeUID(i.Name, strict)
	if err != nil {
		return nil, err
	}
	return encodeItemHeader(ItemTypeApplicationContext, uidBytes), nil
}

func DecodeApplicationContextItem(raw []byte, strict bool) (ApplicationContextItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeApplicationContext)
	if err != nil {
		return ApplicationContextItem{}, nil, err
	}
	name, err := codec.DecodeUID(body, strict)
	if err != nil {
		return ApplicationContextItem{}, nil, err
	}
	return ApplicationContextItem{Name: name}, rest, nil
}

// AbstractSyntaxItem carries one SOP Class or Meta SOP Class UID within a
// Presentation Context item (PS3.8 §9.3.2.2.1).
type AbstractSyntaxItem struct {
	Name string
}

func (i AbstractSyntaxItem) Encode(strict bool) ([]byte, error) {
	uidBytes, err := codec.EncodeUID(i.Name, strict)
	if err != nil {
		return nil, err
	}
	return encodeItemHeader(ItemTypeAbstractSyntax, uidBytes), nil
}

func DecodeAbstractSyntaxItem(raw []byte, strict bool) (AbstractSyntaxItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeAbstractSyntax)
	if err != nil {
		return AbstractSyntaxItem{}, nil, err
	}
	name, err := codec.DecodeUID(body, strict)
	if err != nil {
		return AbstractSyntaxItem{}, nil, err
	}
	return AbstractSyntaxItem{Name: name}, rest, nil
}

// TransferSyntaxItem carries one Transfer Syntax UID within a
// Presentation Context item (PS3.8 §9.3.2.2.2). Name is empty when this
// item answers a rejected presentation context: PS3.8 allows a
// zero-length Transfer Syntax sub-item there, so an empty Name bypasses
// UID validation entirely rather than being treated as a malformed UID.
type TransferSyntaxItem struct {
	Name string
}

func (i TransferSyntaxItem) Encode(strict bool) ([]byte, error) {
	if i.Name == "" {
		return encodeItemHeader(ItemTypeTransferSyntax, nil), nil
	}
	uidBytes, err := codec.EncodeUID(i.Name, strict)
	if err != nil {
		return nil, err
	}
	return encodeItemHeader(ItemTypeTransferSyntax, uidBytes), nil
}

func DecodeTransferSyntaxItem(raw []byte, strict bool) (TransferSyntaxItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeTransferSyntax)
	if err != nil {
		return TransferSyntaxItem{}, nil, err
	}
	if len(body) == 0 {
		return TransferSyntaxItem{}, rest, nil
	}
	name, err := codec.DecodeUID(body, strict)
	if err != nil {
		return TransferSyntaxItem{}, nil, err
	}
	return TransferSyntaxItem{Name: name}, rest, nil
}
