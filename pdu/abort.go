package pdu

import dulerrors "github.com/dicomnet/dulengine/errors"

// AAbort is the A-ABORT PDU, PS3.8 §9.3.8.
type AAbort struct {
	Source dulerrors.AbortSource
	Reason dulerrors.AbortReason
}

func (p *AAbort) Type() byte { return TypeAbort }

func (p *AAbort) Encode() []byte {
	body := []byte{0x00, 0x00, byte(p.Source), byte(p.Reason)}
	return EncodeHeader(Header{Type: TypeAbort}, body)
}

func DecodeAAbort(body []byte) (*AAbort, error) {
	if len(body) != 4 {
		return nil, dulerrors.NewDecodeError("A-ABORT", "body must be exactly 4 bytes")
	}
	return &AAbort{
		Source: dulerrors.AbortSource(body[2]),
		Reason: dulerrors.AbortReason(body[3]),
	}, nil
}
