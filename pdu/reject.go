package pdu

import (
	dulerrors "github.com/dicomnet/dulengine/errors"
)

// AAssociateRJ is the A-ASSOCIATE-RJ PDU, PS3.8 §9.3.4.
type AAssociateRJ struct {
	Result dulerrors.AssociationRejectResult
	Source dulerrors.AssociationRejectSource
	Reason dulerrors.AssociationRejectReason
}

func (p *AAssociateRJ) Type() byte { return TypeAssociateRJ }

func (p *AAssociateRJ) Encode() []byte {
	body := []byte{0x00, byte(p.Result), byte(p.Source), byte(p.Reason)}
	return EncodeHeader(Header{Type: TypeAssociateRJ}, body)
}

func DecodeAAssociateRJ(body []byte) (*AAssociateRJ, error) {
	if len(body) != 4 {
		return nil, dulerrors.NewDecodeError("A-ASSOCIATE-RJ", "body must be exactly 4 bytes")
	}
	return &AAssociateRJ{
		Result: dulerrors.AssociationRejectResult(body[1]),
		Source: dulerrors.AssociationRejectSource(body[2]),
		Reason: dulerrors.AssociationRejectReason(body[3]),
	}, nil
}
