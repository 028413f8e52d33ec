package pdu

import (
	"github.com/dicomnet/dulengine/codec"
	dulerrors "github.com/dicomnet/dulengine/errors"
)

// User Identity Type values, PS3.7 Annex D.3.3.7.1.
const (
	UserIdentityTypeUsername             byte = 1
	UserIdentityTypeUsernamePasscode     byte = 2
	UserIdentityTypeKerberosServiceTicket byte = 3
	UserIdentityTypeSAMLAssertion        byte = 4
	UserIdentityTypeJSONWebToken         byte = 5
)

// UserIdentityRQItem carries user-identity negotiation on the
// association request (PS3.7 Annex D.3.3.7.1). SecondaryField is only
// meaningful when Type is UserIdentityTypeUsernamePasscode.
type UserIdentityRQItem struct {
	Type                     byte
	PositiveResponseRequested bool
	PrimaryField             []byte
	SecondaryField           []byte
}

func (i UserIdentityRQItem) Encode() []byte {
	var positiveByte byte
	if i.PositiveResponseRequested {
		positiveByte = 1
	}

	body := make([]byte, 0, 4+len(i.PrimaryField)+2+len(i.SecondaryField))
	body = append(body, i.Type, positiveByte)

	lenBuf := make([]byte, 2)
	codec.PutUint16(lenBuf, uint16(len(i.PrimaryField)))
	body = append(body, lenBuf...)
	body = append(body, i.PrimaryField...)

	codec.PutUint16(lenBuf, uint16(len(i.SecondaryField)))
	body = append(body, lenBuf...)
	body = append(body, i.SecondaryField...)

	return encodeItemHeader(ItemTypeUserIdentityRQ, body)
}

func DecodeUserIdentityRQItem(raw []byte) (UserIdentityRQItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeUserIdentityRQ)
	if err != nil {
		return UserIdentityRQItem{}, nil, err
	}
	if len(body) < 4 {
		return UserIdentityRQItem{}, nil, dulerrors.NewDecodeError("user-identity-rq", "body shorter than 4-byte fixed fields")
	}

	item := UserIdentityRQItem{
		Type:                      body[0],
		PositiveResponseRequested: body[1] != 0,
	}

	primaryLen := int(codec.Uint16(body[2:4]))
	if len(body)-4 < primaryLen {
		return UserIdentityRQItem{}, nil, dulerrors.NewDecodeError("user-identity-rq", "body shorter than declared primary field length")
	}
	item.PrimaryField = append([]byte(nil), body[4:4+primaryLen]...)

	remaining := body[4+primaryLen:]
	if len(remaining) < 2 {
		return UserIdentityRQItem{}, nil, dulerrors.NewDecodeError("user-identity-rq", "body shorter than secondary field length prefix")
	}
	secondaryLen := int(codec.Uint16(remaining[0:2]))
	if len(remaining)-2 < secondaryLen {
		return UserIdentityRQItem{}, nil, dulerrors.NewDecodeError("user-identity-rq", "body shorter than declared secondary field length")
	}
	if secondaryLen > 0 {
		item.SecondaryField = append([]byte(nil), remaining[2:2+secondaryLen]...)
	}

	return item, rest, nil
}

// UserIdentityACItem carries the server's response to a user-identity
// negotiation request that set PositiveResponseRequested (PS3.7 Annex
// D.3.3.7.2).
type UserIdentityACItem struct {
	ServerResponse []byte
}

func (i UserIdentityACItem) Encode() []byte {
	body := make([]byte, 2+len(i.ServerResponse))
	codec.PutUint16(body[0:2], uint16(len(i.ServerResponse)))
	copy(body[2:], i.ServerResponse)
	return encodeItemHeader(ItemTypeUserIdentityAC, body)
}

func DecodeUserIdentityACItem(raw []byte) (UserIdentityACItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeUserIdentityAC)
	if err != nil {
		return UserIdentityACItem{}, nil, err
	}
	if len(body) < 2 {
		return UserIdentityACItem{}, nil, dulerrors.NewDecodeError("user-identity-ac", "body shorter than length prefix")
	}
	n := int(codec.Uint16(body[0:2]))
	if len(body)-2 < n {
		return UserIdentityACItem{}, nil, dulerrors.NewDecodeError("user-identity-ac", "body shorter than declared server response length")
	}
	var resp []byte
	if n > 0 {
		resp = append([]byte(nil), body[2:2+n]...)
	}
	return UserIdentityACItem{ServerResponse: resp}, rest, nil
}
