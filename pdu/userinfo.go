package pdu

import (
	"fmt"

	dulerrors "github.com/dicomnet/dulengine/errors"
)

// UserInformationItem is the container item for all Upper Layer
// user-data negotiation sub-items (PS3.8 §9.3.2.3). MaxLength and
// ImplementationClassUID are mandatory; everything else is optional and
// may repeat zero or more times where the sub-item itself allows it.
type UserInformationItem struct {
	MaxLength                         MaxLengthItem
	ImplementationClassUID            ImplementationClassUIDItem
	ImplementationVersionName         *ImplementationVersionNameItem
	AsyncOperationsWindow             *AsyncOperationsWindowItem
	RoleSelections                    []RoleSelectionItem
	SOPClassExtendedNegotiations      []SOPClassExtendedNegotiationItem
	SOPClassCommonExtendedNegotiations []SOPClassCommonExtendedNegotiationItem
	UserIdentityRQ                    *UserIdentityRQItem
	UserIdentityAC                    *UserIdentityACItem
}

func (i UserInformationItem) Encode(strict bool) ([]byte, error) {
	var body []byte

	body = append(body, i.MaxLength.Encode()...)

	implClass, err := i.ImplementationClassUID.Encode(strict)
	if err != nil {
		return nil, err
	}
	body = append(body, implClass...)

	if i.AsyncOperationsWindow != nil {
		body = append(body, i.AsyncOperationsWindow.Encode()...)
	}

	for _, rs := range i.RoleSelections {
		rsBytes, err := rs.Encode(strict)
		if err != nil {
			return nil, err
		}
		body = append(body, rsBytes...)
	}

	if i.ImplementationVersionName != nil {
		ivnBytes, err := i.ImplementationVersionName.Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, ivnBytes...)
	}

	for _, neg := range i.SOPClassExtendedNegotiations {
		negBytes, err := neg.Encode(strict)
		if err != nil {
			return nil, err
		}
		body = append(body, negBytes...)
	}

	for _, neg := range i.SOPClassCommonExtendedNegotiations {
		negBytes, err := neg.Encode(strict)
		if err != nil {
			return nil, err
		}
		body = append(body, negBytes...)
	}

	if i.UserIdentityRQ != nil {
		body = append(body, i.UserIdentityRQ.Encode()...)
	}
	if i.UserIdentityAC != nil {
		body = append(body, i.UserIdentityAC.Encode()...)
	}

	return encodeItemHeader(ItemTypeUserInformation, body), nil
}

func DecodeUserInformationItem(raw []byte, strict bool) (UserInformationItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeUserInformation)
	if err != nil {
		return UserInformationItem{}, nil, err
	}

	var item UserInformationItem
	var haveMaxLength, haveImplClass bool

	for len(body) > 0 {
		t, ok := peekItemType(body)
		if !ok {
			break
		}
		switch t {
		case ItemTypeMaxLength:
			var ml MaxLengthItem
			ml, body, err = DecodeMaxLengthItem(body)
			if err != nil {
				return UserInformationItem{}, nil, err
			}
			item.MaxLength = ml
			haveMaxLength = true
		case ItemTypeImplementationClassUID:
			var ic ImplementationClassUIDItem
			ic, body, err = DecodeImplementationClassUIDItem(body, strict)
			if err != nil {
				return UserInformationItem{}, nil, err
			}
			item.ImplementationClassUID = ic
			haveImplClass = true
		case ItemTypeAsyncOperationsWindow:
			var aow AsyncOperationsWindowItem
			aow, body, err = DecodeAsyncOperationsWindowItem(body)
			if err != nil {
				return UserInformationItem{}, nil, err
			}
			item.AsyncOperationsWindow = &aow
		case ItemTypeRoleSelection:
			var rs RoleSelectionItem
			rs, body, err = DecodeRoleSelectionItem(body, strict)
			if err != nil {
				return UserInformationItem{}, nil, err
			}
			item.RoleSelections = append(item.RoleSelections, rs)
		case ItemTypeImplementationVersionName:
			var ivn ImplementationVersionNameItem
			ivn, body, err = DecodeImplementationVersionNameItem(body)
			if err != nil {
				return UserInformationItem{}, nil, err
			}
			item.ImplementationVersionName = &ivn
		case ItemTypeSOPClassExtendedNegotiation:
			var neg SOPClassExtendedNegotiationItem
			neg, body, err = DecodeSOPClassExtendedNegotiationItem(body, strict)
			if err != nil {
				return UserInformationItem{}, nil, err
			}
			item.SOPClassExtendedNegotiations = append(item.SOPClassExtendedNegotiations, neg)
		case ItemTypeSOPClassCommonExtendedNeg:
			var neg SOPClassCommonExtendedNegotiationItem
			neg, body, err = DecodeSOPClassCommonExtendedNegotiationItem(body, strict)
			if err != nil {
				return UserInformationItem{}, nil, err
			}
			item.SOPClassCommonExtendedNegotiations = append(item.SOPClassCommonExtendedNegotiations, neg)
		case ItemTypeUserIdentityRQ:
			var uid UserIdentityRQItem
			uid, body, err = DecodeUserIdentityRQItem(body)
			if err != nil {
				return UserInformationItem{}, nil, err
			}
			item.UserIdentityRQ = &uid
		case ItemTypeUserIdentityAC:
			var uid UserIdentityACItem
			uid, body, err = DecodeUserIdentityACItem(body)
			if err != nil {
				return UserInformationItem{}, nil, err
			}
			item.UserIdentityAC = &uid
		default:
			return UserInformationItem{}, nil, dulerrors.NewDecodeError("user-information", fmt.Sprintf("unrecognized sub-item type 0x%02x", t))
		}
	}

	if !haveMaxLength {
		return UserInformationItem{}, nil, dulerrors.NewDecodeError("user-information", "missing mandatory Maximum Length sub-item")
	}
	if !haveImplClass {
		return UserInformationItem{}, nil, dulerrors.NewDecodeError("user-information", "missing mandatory Implementation Class UID sub-item")
	}

	return item, rest, nil
}
