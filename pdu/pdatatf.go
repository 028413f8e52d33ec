package pdu

import (
	"github.com/dicomnet/dulengine/codec"
	dulerrors "github.com/dicomnet/dulengine/errors"
)

// Message control header bits, PS3.8 §9.3.5.1.
const (
	// PDVLastFragment marks the final fragment of a DIMSE message.
	PDVLastFragment byte = 0x02
	// PDVCommand marks a fragment of the DIMSE command set rather than
	// its data set.
	PDVCommand byte = 0x01
)

// PresentationDataValueItem carries one fragment of DIMSE command or data
// set bytes, tagged with its presentation context and control header
// (PS3.8 §9.3.5.1). The payload itself is opaque to the Upper Layer.
type PresentationDataValueItem struct {
	PresentationContextID byte
	MessageControlHeader  byte
	Data                  []byte
}

// IsLastFragment reports whether this PDV closes out a DIMSE message.
func (v PresentationDataValueItem) IsLastFragment() bool {
	return v.MessageControlHeader&PDVLastFragment != 0
}

// IsCommand reports whether this PDV carries command-set bytes rather
// than data-set bytes.
func (v PresentationDataValueItem) IsCommand() bool {
	return v.MessageControlHeader&PDVCommand != 0
}

func (v PresentationDataValueItem) encode() []byte {
	// item-length(4) covers context-id(1) + header(1) + data
	body := make([]byte, 4+2+len(v.Data))
	codec.PutUint32(body[0:4], uint32(2+len(v.Data)))
	body[4] = v.PresentationContextID
	body[5] = v.MessageControlHeader
	copy(body[6:], v.Data)
	return body
}

func decodePDV(raw []byte) (PresentationDataValueItem, []byte, error) {
	if len(raw) < 4 {
		return PresentationDataValueItem{}, nil, dulerrors.NewDecodeError("presentation-data-value", "shorter than 4-byte length field")
	}
	itemLen := codec.Uint32(raw[0:4])
	if uint32(len(raw)-4) < itemLen {
		return PresentationDataValueItem{}, nil, dulerrors.NewDecodeError("presentation-data-value", "declared length exceeds available bytes")
	}
	if itemLen < 2 {
		return PresentationDataValueItem{}, nil, dulerrors.NewDecodeError("presentation-data-value", "length must cover at least context-id and control header")
	}
	item := PresentationDataValueItem{
		PresentationContextID: raw[4],
		MessageControlHeader:  raw[5],
	}
	if itemLen > 2 {
		item.Data = append([]byte(nil), raw[6:4+itemLen]...)
	}
	return item, raw[4+itemLen:], nil
}

// PDataTF is the P-DATA-TF PDU, PS3.8 §9.3.5: one or more PDVs fragmenting
// DIMSE messages across the association's negotiated max PDU length.
type PDataTF struct {
	Items []PresentationDataValueItem
}

func (p *PDataTF) Type() byte { return TypePDataTF }

func (p *PDataTF) Encode() ([]byte, error) {
	if len(p.Items) == 0 {
		return nil, dulerrors.NewValidationError("p-data-tf.items", "must carry at least one presentation data value")
	}
	var body []byte
	for _, item := range p.Items {
		body = append(body, item.encode()...)
	}
	return EncodeHeader(Header{Type: TypePDataTF}, body), nil
}

func DecodePDataTF(body []byte) (*PDataTF, error) {
	if len(body) == 0 {
		return nil, dulerrors.NewDecodeError("P-DATA-TF", "body must carry at least one presentation data value")
	}
	p := &PDataTF{}
	remaining := body
	for len(remaining) > 0 {
		var item PresentationDataValueItem
		var err error
		item, remaining, err = decodePDV(remaining)
		if err != nil {
			return nil, err
		}
		p.Items = append(p.Items, item)
	}
	return p, nil
}
