package pdu

import (
	"fmt"

	dulerrors "github.com/dicomnet/dulengine/errors"
)

// PDU is implemented by all seven Upper Layer PDU types. It identifies a
// decoded value's wire type; each concrete type additionally exposes its
// own Encode method since their encode signatures differ (association PDUs
// need a strict-UID flag, data-bearing PDUs don't).
type PDU interface {
	Type() byte
}

// Decode reads one complete PDU (header plus body) from raw and dispatches
// to the matching per-type decoder. strict gates UID conformance
// validation throughout the decode (duconfig.Config.EnforceUIDConformance).
//
// This mirrors pynetdicom's _read_pdu_data: an unrecognized type byte is a
// decode error, not a panic, so the reactor can convert it into Evt19 and
// abort the association instead of crashing.
func Decode(raw []byte, strict bool) (PDU, error) {
	header, body, err := DecodeHeader(raw)
	if err != nil {
		return nil, err
	}

	switch header.Type {
	case TypeAssociateRQ:
		return DecodeAAssociateRQ(body, strict)
	case TypeAssociateAC:
		return DecodeAAssociateAC(body, strict)
	case TypeAssociateRJ:
		return DecodeAAssociateRJ(body)
	case TypePDataTF:
		return DecodePDataTF(body)
	case TypeReleaseRQ:
		return DecodeAReleaseRQ(body)
	case TypeReleaseRP:
		return DecodeAReleaseRP(body)
	case TypeAbort:
		return DecodeAAbort(body)
	default:
		return nil, dulerrors.NewDecodeError("pdu", fmt.Sprintf("unrecognized PDU type 0x%02x", header.Type))
	}
}

// IsKnownType reports whether t is one of the seven defined PDU type
// bytes. The reactor does not call it: it runs Decode, whose error for an
// unknown type becomes Evt19.
func IsKnownType(t byte) bool {
	switch t {
	case TypeAssociateRQ, TypeAssociateAC, TypeAssociateRJ, TypePDataTF, TypeReleaseRQ, TypeReleaseRP, TypeAbort:
		return true
	default:
		return false
	}
}
