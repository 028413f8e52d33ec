package pdu

import "github.com/dicomnet/dulengine/codec"

// ImplementationClassUIDItem identifies the implementation that
// originated an association request or acceptance (PS3.8 §9.3.2.3.2 /
// §9.3.3.3.2).
type ImplementationClassUIDItem struct {
	UID string
}

func (i ImplementationClassUIDItem) Encode(strict bool) ([]byte, error) {
	uidBytes, err := codec.EncodeUID(i.UID, strict)
	if err != nil {
		return nil, err
	}
	return encodeItemHeader(ItemTypeImplementationClassUID, uidBytes), nil
}

func DecodeImplementationClassUIDItem(raw []byte, strict bool) (ImplementationClassUIDItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeImplementationClassUID)
	if err != nil {
		return ImplementationClassUIDItem{}, nil, err
	}
	uid, err := codec.DecodeUID(body, strict)
	if err != nil {
		return ImplementationClassUIDItem{}, nil, err
	}
	return ImplementationClassUIDItem{UID: uid}, rest, nil
}

// ImplementationVersionNameItem is an optional free-text identifier for
// the implementation's version (PS3.8 §9.3.2.3.4 / §9.3.3.3.4), 1 to 16
// ASCII characters.
type ImplementationVersionNameItem struct {
	Name string
}

func (i ImplementationVersionNameItem) Encode() ([]byte, error) {
	nameBytes, err := codec.EncodeText(i.Name)
	if err != nil {
		return nil, err
	}
	return encodeItemHeader(ItemTypeImplementationVersionName, nameBytes), nil
}

func DecodeImplementationVersionNameItem(raw []byte) (ImplementationVersionNameItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeImplementationVersionName)
	if err != nil {
		return ImplementationVersionNameItem{}, nil, err
	}
	name, err := codec.DecodeText(body, nil)
	if err != nil {
		return ImplementationVersionNameItem{}, nil, err
	}
	return ImplementationVersionNameItem{Name: name}, rest, nil
}
