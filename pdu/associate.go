package pdu

import (
	"fmt"

	"github.com/dicomnet/dulengine/codec"
	dulerrors "github.com/dicomnet/dulengine/errors"
)

// CurrentProtocolVersion is the only Upper Layer protocol version
// defined to date (PS3.8 §9.3.2).
const CurrentProtocolVersion uint16 = 0x0001

const (
	associateFixedFieldsLength = 2 + 2 + codec.AETitleLength + codec.AETitleLength + 32
)

// AAssociateRQ is the A-ASSOCIATE-RQ PDU, PS3.8 §9.3.2.
type AAssociateRQ struct {
	ProtocolVersion      uint16
	CalledAETitle        string
	CallingAETitle       string
	ApplicationContext   ApplicationContextItem
	PresentationContexts []PresentationContextRQItem
	UserInformation      UserInformationItem
}

// Type implements the PDU interface.
func (p *AAssociateRQ) Type() byte { return TypeAssociateRQ }

// Encode serializes the PDU. The Called/Calling AE title fields are a
// fixed 16 bytes on the wire (PS3.8 §9.3.2), so unlike DIMSE-embedded AE
// titles they are always encoded strictly — allow_long_dimse_aet has no
// effect here.
func (p *AAssociateRQ) Encode(strict bool) ([]byte, error) {
	if len(p.PresentationContexts) == 0 {
		return nil, dulerrors.NewValidationError("a-associate-rq.presentation-contexts", "must propose at least one presentation context")
	}

	body := make([]byte, associateFixedFieldsLength)
	version := p.ProtocolVersion
	if version == 0 {
		version = CurrentProtocolVersion
	}
	codec.PutUint16(body[0:2], version)

	calledBytes, err := codec.EncodeAETitle(p.CalledAETitle, false)
	if err != nil {
		return nil, err
	}
	copy(body[4:4+codec.AETitleLength], calledBytes)

	callingBytes, err := codec.EncodeAETitle(p.CallingAETitle, false)
	if err != nil {
		return nil, err
	}
	copy(body[4+codec.AETitleLength:4+2*codec.AETitleLength], callingBytes)

	acBytes, err := p.ApplicationContext.Encode(strict)
	if err != nil {
		return nil, err
	}
	body = append(body, acBytes...)

	for _, pc := range p.PresentationContexts {
		pcBytes, err := pc.Encode(strict)
		if err != nil {
			return nil, err
		}
		body = append(body, pcBytes...)
	}

	uiBytes, err := p.UserInformation.Encode(strict)
	if err != nil {
		return nil, err
	}
	body = append(body, uiBytes...)

	return EncodeHeader(Header{Type: TypeAssociateRQ}, body), nil
}

// DecodeAAssociateRQ decodes the PDU body (bytes after the 6-byte header).
func DecodeAAssociateRQ(body []byte, strict bool) (*AAssociateRQ, error) {
	if len(body) < associateFixedFieldsLength {
		return nil, dulerrors.NewDecodeError("A-ASSOCIATE-RQ", "body shorter than fixed fields")
	}

	p := &AAssociateRQ{ProtocolVersion: codec.Uint16(body[0:2])}

	calledTitle, err := codec.DecodeAETitle(body[4 : 4+codec.AETitleLength])
	if err != nil {
		return nil, err
	}
	p.CalledAETitle = calledTitle

	callingTitle, err := codec.DecodeAETitle(body[4+codec.AETitleLength : 4+2*codec.AETitleLength])
	if err != nil {
		return nil, err
	}
	p.CallingAETitle = callingTitle

	remaining := body[associateFixedFieldsLength:]

	ac, remaining, err := DecodeApplicationContextItem(remaining, strict)
	if err != nil {
		return nil, err
	}
	p.ApplicationContext = ac

	for {
		t, ok := peekItemType(remaining)
		if !ok || t != ItemTypePresentationContextRQ {
			break
		}
		var pc PresentationContextRQItem
		pc, remaining, err = DecodePresentationContextRQItem(remaining, strict)
		if err != nil {
			return nil, err
		}
		p.PresentationContexts = append(p.PresentationContexts, pc)
	}
	if len(p.PresentationContexts) == 0 {
		return nil, dulerrors.NewDecodeError("A-ASSOCIATE-RQ", "no presentation context items present")
	}

	t, ok := peekItemType(remaining)
	if !ok || t != ItemTypeUserInformation {
		return nil, dulerrors.NewDecodeError("A-ASSOCIATE-RQ", fmt.Sprintf("expected user information item, got type 0x%02x", t))
	}
	ui, remaining, err := DecodeUserInformationItem(remaining, strict)
	if err != nil {
		return nil, err
	}
	p.UserInformation = ui

	if len(remaining) != 0 {
		return nil, dulerrors.NewDecodeError("A-ASSOCIATE-RQ", "unexpected trailing bytes")
	}

	return p, nil
}

// AAssociateAC is the A-ASSOCIATE-AC PDU, PS3.8 §9.3.3. The Called/Calling
// AE title fields occupy the same wire position as in the RQ but PS3.8
// does not require the acceptor to place meaningful values there; this
// type carries whatever the caller sets (server.Server puts its own AE
// title in CalledAETitle and echoes the requestor's CallingAETitle).
type AAssociateAC struct {
	ProtocolVersion      uint16
	CalledAETitle        string
	CallingAETitle       string
	ApplicationContext   ApplicationContextItem
	PresentationContexts []PresentationContextACItem
	UserInformation      UserInformationItem
}

func (p *AAssociateAC) Type() byte { return TypeAssociateAC }

func (p *AAssociateAC) Encode(strict bool) ([]byte, error) {
	if len(p.PresentationContexts) == 0 {
		return nil, dulerrors.NewValidationError("a-associate-ac.presentation-contexts", "must answer at least one presentation context")
	}

	body := make([]byte, associateFixedFieldsLength)
	version := p.ProtocolVersion
	if version == 0 {
		version = CurrentProtocolVersion
	}
	codec.PutUint16(body[0:2], version)

	copy(body[4:4+codec.AETitleLength], codec.EncodeReservedAEField(p.CalledAETitle))
	copy(body[4+codec.AETitleLength:4+2*codec.AETitleLength], codec.EncodeReservedAEField(p.CallingAETitle))

	acBytes, err := p.ApplicationContext.Encode(strict)
	if err != nil {
		return nil, err
	}
	body = append(body, acBytes...)

	for _, pc := range p.PresentationContexts {
		pcBytes, err := pc.Encode(strict)
		if err != nil {
			return nil, err
		}
		body = append(body, pcBytes...)
	}

	uiBytes, err := p.UserInformation.Encode(strict)
	if err != nil {
		return nil, err
	}
	body = append(body, uiBytes...)

	return EncodeHeader(Header{Type: TypeAssociateAC}, body), nil
}

func DecodeAAssociateAC(body []byte, strict bool) (*AAssociateAC, error) {
	if len(body) < associateFixedFieldsLength {
		return nil, dulerrors.NewDecodeError("A-ASSOCIATE-AC", "body shorter than fixed fields")
	}

	p := &AAssociateAC{ProtocolVersion: codec.Uint16(body[0:2])}

	p.CalledAETitle = codec.DecodeReservedAEField(body[4 : 4+codec.AETitleLength])
	p.CallingAETitle = codec.DecodeReservedAEField(body[4+codec.AETitleLength : 4+2*codec.AETitleLength])

	remaining := body[associateFixedFieldsLength:]

	ac, remaining, err := DecodeApplicationContextItem(remaining, strict)
	if err != nil {
		return nil, err
	}
	p.ApplicationContext = ac

	for {
		t, ok := peekItemType(remaining)
		if !ok || t != ItemTypePresentationContextAC {
			break
		}
		var pc PresentationContextACItem
		pc, remaining, err = DecodePresentationContextACItem(remaining, strict)
		if err != nil {
			return nil, err
		}
		p.PresentationContexts = append(p.PresentationContexts, pc)
	}
	if len(p.PresentationContexts) == 0 {
		return nil, dulerrors.NewDecodeError("A-ASSOCIATE-AC", "no presentation context items present")
	}

	t, ok := peekItemType(remaining)
	if !ok || t != ItemTypeUserInformation {
		return nil, dulerrors.NewDecodeError("A-ASSOCIATE-AC", fmt.Sprintf("expected user information item, got type 0x%02x", t))
	}
	ui, remaining, err := DecodeUserInformationItem(remaining, strict)
	if err != nil {
		return nil, err
	}
	p.UserInformation = ui

	if len(remaining) != 0 {
		return nil, dulerrors.NewDecodeError("A-ASSOCIATE-AC", "unexpected trailing bytes")
	}

	return p, nil
}
