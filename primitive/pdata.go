package primitive

import (
	dulerrors "github.com/dicomnet/dulengine/errors"
	"github.com/dicomnet/dulengine/pdu"
)

// PData models the P-DATA primitive (PS3.8 §7.6): one or more
// presentation data values ready to fragment into a single P-DATA-TF
// PDU, or the values extracted from one received P-DATA-TF PDU.
type PData struct {
	Values []pdu.PresentationDataValueItem
}

// ToPDataTF translates an outbound P-DATA primitive into a P-DATA-TF PDU.
func ToPDataTF(p *PData) (*pdu.PDataTF, error) {
	if len(p.Values) == 0 {
		return nil, dulerrors.NewValidationError("p-data.values", "must carry at least one presentation data value")
	}
	return &pdu.PDataTF{Items: p.Values}, nil
}

// FromPDataTF translates a received P-DATA-TF PDU into an inbound P-DATA
// indication primitive.
func FromPDataTF(tf *pdu.PDataTF) *PData {
	return &PData{Values: tf.Items}
}
