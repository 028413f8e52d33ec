package primitive

import "github.com/dicomnet/dulengine/pdu"

// ARelease models the A-RELEASE primitive (PS3.8 §7.2). Requested is true
// on a request/indication; the response/confirmation form carries no
// additional data, PS3.8's release protocol is a bare two-way handshake.
type ARelease struct {
	Requested bool
}

// ToReleaseRequestPDU translates an outbound A-RELEASE request into an
// A-RELEASE-RQ PDU.
func ToReleaseRequestPDU() *pdu.AReleaseRQ {
	return &pdu.AReleaseRQ{}
}

// ToReleaseResponsePDU translates an outbound A-RELEASE response into an
// A-RELEASE-RP PDU.
func ToReleaseResponsePDU() *pdu.AReleaseRP {
	return &pdu.AReleaseRP{}
}
