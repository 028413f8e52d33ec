package pdu

import (
	"github.com/dicomnet/dulengine/codec"
	dulerrors "github.com/dicomnet/dulengine/errors"
)

// SCURole and SCPRole values for RoleSelectionItem, PS3.8 §9.3.2.3.5.
const (
	RoleNotSupported byte = 0x00
	RoleSupported    byte = 0x01
)

// RoleSelectionItem negotiates which peer may act as SCU and/or SCP for
// one abstract syntax. One instance may appear per abstract syntax
// proposed in the association request.
type RoleSelectionItem struct {
	UID     string
	SCURole byte
	SCPRole byte
}

func (i RoleSelectionItem) Encode(strict bool) ([]byte, error) {
	uidBytes, err := codec.EncodeUID(i.UID, strict)
	if err != nil {
		return nil, err
	}
	// An odd-length Role Selection UID carries a trailing 0x00 pad byte.
	if len(uidBytes)%2 == 1 {
		uidBytes = append(uidBytes, 0x00)
	}
	body := make([]byte, 2+len(uidBytes)+2)
	codec.PutUint16(body[0:2], uint16(len(uidBytes)))
	copy(body[2:], uidBytes)
	body[2+len(uidBytes)] = i.SCURole
	body[2+len(uidBytes)+1] = i.SCPRole
	return encodeItemHeader(ItemTypeRoleSelection, body), nil
}

func DecodeRoleSelectionItem(raw []byte, strict bool) (RoleSelectionItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeRoleSelection)
	if err != nil {
		return RoleSelectionItem{}, nil, err
	}
	if len(body) < 2 {
		return RoleSelectionItem{}, nil, dulerrors.NewDecodeError("role-selection", "body shorter than UID length field")
	}
	uidLen := int(codec.Uint16(body[0:2]))
	if len(body) < 2+uidLen+2 {
		return RoleSelectionItem{}, nil, dulerrors.NewDecodeError("role-selection", "body shorter than declared UID length plus role bytes")
	}
	uid, err := codec.DecodeUID(body[2:2+uidLen], strict)
	if err != nil {
		return RoleSelectionItem{}, nil, err
	}
	return RoleSelectionItem{
		UID:     uid,
		SCURole: body[2+uidLen],
		SCPRole: body[2+uidLen+1],
	}, rest, nil
}
