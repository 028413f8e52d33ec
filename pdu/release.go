package pdu

import dulerrors "github.com/dicomnet/dulengine/errors"

// AReleaseRQ is the A-RELEASE-RQ PDU, PS3.8 §9.3.6.
type AReleaseRQ struct{}

func (p *AReleaseRQ) Type() byte { return TypeReleaseRQ }

func (p *AReleaseRQ) Encode() []byte {
	return EncodeHeader(Header{Type: TypeReleaseRQ}, make([]byte, 4))
}

func DecodeAReleaseRQ(body []byte) (*AReleaseRQ, error) {
	if len(body) != 4 {
		return nil, dulerrors.NewDecodeError("A-RELEASE-RQ", "body must be exactly 4 reserved bytes")
	}
	return &AReleaseRQ{}, nil
}

// AReleaseRP is the A-RELEASE-RP PDU, PS3.8 §9.3.7.
type AReleaseRP struct{}

func (p *AReleaseRP) Type() byte { return TypeReleaseRP }

func (p *AReleaseRP) Encode() []byte {
	return EncodeHeader(Header{Type: TypeReleaseRP}, make([]byte, 4))
}

func DecodeAReleaseRP(body []byte) (*AReleaseRP, error) {
	if len(body) != 4 {
		return nil, dulerrors.NewDecodeError("A-RELEASE-RP", "body must be exactly 4 reserved bytes")
	}
	return &AReleaseRP{}, nil
}
