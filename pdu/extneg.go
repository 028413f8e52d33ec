package pdu

import (
	"github.com/dicomnet/dulengine/codec"
	dulerrors "github.com/dicomnet/dulengine/errors"
)

// SOPClassExtendedNegotiationItem carries SOP-class-specific negotiation
// bytes (PS3.8 Annex D.3.3.2.1) whose internal structure is defined by
// each service class, not by the Upper Layer itself; this engine
// round-trips the application information opaquely.
type SOPClassExtendedNegotiationItem struct {
	SOPClassUID           string
	ApplicationInformation []byte
}

func (i SOPClassExtendedNegotiationItem) Encode(strict bool) ([]byte, error) {
	uidBytes, err := codec.EncodeUID(i.SOPClassUID, strict)
	if err != nil {
		return nil, err
	}
	body := make([]byte, 2+len(uidBytes)+len(i.ApplicationInformation))
	codec.PutUint16(body[0:2], uint16(len(uidBytes)))
	copy(body[2:], uidBytes)
	copy(body[2+len(uidBytes):], i.ApplicationInformation)
	return encodeItemHeader(ItemTypeSOPClassExtendedNegotiation, body), nil
}

func DecodeSOPClassExtendedNegotiationItem(raw []byte, strict bool) (SOPClassExtendedNegotiationItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeSOPClassExtendedNegotiation)
	if err != nil {
		return SOPClassExtendedNegotiationItem{}, nil, err
	}
	if len(body) < 2 {
		return SOPClassExtendedNegotiationItem{}, nil, dulerrors.NewDecodeError("sop-class-extended-negotiation", "body shorter than UID length field")
	}
	uidLen := int(codec.Uint16(body[0:2]))
	if len(body) < 2+uidLen {
		return SOPClassExtendedNegotiationItem{}, nil, dulerrors.NewDecodeError("sop-class-extended-negotiation", "body shorter than declared UID length")
	}
	uid, err := codec.DecodeUID(body[2:2+uidLen], strict)
	if err != nil {
		return SOPClassExtendedNegotiationItem{}, nil, err
	}
	appInfo := append([]byte(nil), body[2+uidLen:]...)
	return SOPClassExtendedNegotiationItem{SOPClassUID: uid, ApplicationInformation: appInfo}, rest, nil
}

// SOPClassCommonExtendedNegotiationItem identifies a SOP class's service
// class and any related general SOP classes (PS3.8 Annex D.3.3.6.1).
type SOPClassCommonExtendedNegotiationItem struct {
	SOPClassUID            string
	ServiceClassUID        string
	RelatedGeneralSOPClassUIDs []string
}

func (i SOPClassCommonExtendedNegotiationItem) Encode(strict bool) ([]byte, error) {
	sopUID, err := codec.EncodeUID(i.SOPClassUID, strict)
	if err != nil {
		return nil, err
	}
	svcUID, err := codec.EncodeUID(i.ServiceClassUID, strict)
	if err != nil {
		return nil, err
	}

	var relatedBytes []byte
	for _, uid := range i.RelatedGeneralSOPClassUIDs {
		uidBytes, err := codec.EncodeUID(uid, strict)
		if err != nil {
			return nil, err
		}
		lenPrefix := make([]byte, 2)
		codec.PutUint16(lenPrefix, uint16(len(uidBytes)))
		relatedBytes = append(relatedBytes, lenPrefix...)
		relatedBytes = append(relatedBytes, uidBytes...)
	}

	body := make([]byte, 0, 2+len(sopUID)+2+len(svcUID)+2+len(relatedBytes))
	lenBuf := make([]byte, 2)

	codec.PutUint16(lenBuf, uint16(len(sopUID)))
	body = append(body, lenBuf...)
	body = append(body, sopUID...)

	codec.PutUint16(lenBuf, uint16(len(svcUID)))
	body = append(body, lenBuf...)
	body = append(body, svcUID...)

	codec.PutUint16(lenBuf, uint16(len(relatedBytes)))
	body = append(body, lenBuf...)
	body = append(body, relatedBytes...)

	return encodeItemHeader(ItemTypeSOPClassCommonExtendedNeg, body), nil
}

func DecodeSOPClassCommonExtendedNegotiationItem(raw []byte, strict bool) (SOPClassCommonExtendedNegotiationItem, []byte, error) {
	body, rest, err := decodeItemHeader(raw, ItemTypeSOPClassCommonExtendedNeg)
	if err != nil {
		return SOPClassCommonExtendedNegotiationItem{}, nil, err
	}

	readLengthPrefixedUID := func(b []byte) (string, []byte, error) {
		if len(b) < 2 {
			return "", nil, dulerrors.NewDecodeError("sop-class-common-extended-negotiation", "body shorter than a UID length field")
		}
		n := int(codec.Uint16(b[0:2]))
		if len(b)-2 < n {
			return "", nil, dulerrors.NewDecodeError("sop-class-common-extended-negotiation", "body shorter than declared UID length")
		}
		uid, err := codec.DecodeUID(b[2:2+n], strict)
		if err != nil {
			return "", nil, err
		}
		return uid, b[2+n:], nil
	}

	sopUID, remaining, err := readLengthPrefixedUID(body)
	if err != nil {
		return SOPClassCommonExtendedNegotiationItem{}, nil, err
	}
	svcUID, remaining, err := readLengthPrefixedUID(remaining)
	if err != nil {
		return SOPClassCommonExtendedNegotiationItem{}, nil, err
	}

	if len(remaining) < 2 {
		return SOPClassCommonExtendedNegotiationItem{}, nil, dulerrors.NewDecodeError("sop-class-common-extended-negotiation", "body shorter than related-UIDs length field")
	}
	relatedLen := int(codec.Uint16(remaining[0:2]))
	if len(remaining)-2 < relatedLen {
		return SOPClassCommonExtendedNegotiationItem{}, nil, dulerrors.NewDecodeError("sop-class-common-extended-negotiation", "body shorter than declared related-UIDs length")
	}
	relatedBytes := remaining[2 : 2+relatedLen]

	var related []string
	for len(relatedBytes) > 0 {
		var uid string
		uid, relatedBytes, err = readLengthPrefixedUID(relatedBytes)
		if err != nil {
			return SOPClassCommonExtendedNegotiationItem{}, nil, err
		}
		related = append(related, uid)
	}

	return SOPClassCommonExtendedNegotiationItem{
		SOPClassUID:                sopUID,
		ServiceClassUID:            svcUID,
		RelatedGeneralSOPClassUIDs: related,
	}, rest, nil
}
