package fsm

import (
	"fmt"

	dulerrors "github.com/dicomnet/dulengine/errors"
	"github.com/dicomnet/dulengine/pdu"
	"github.com/dicomnet/dulengine/primitive"
)

// EventForPDUType maps a decoded PDU's wire type byte to the event it
// raises on receipt, following pynetdicom's dul.py _PDU_TYPES dispatch
// table. An unrecognized type yields Evt19 rather than an error, since
// receiving an unknown PDU is itself a defined (abort-triggering) event
// rather than a failure of this lookup.
func EventForPDUType(t byte) Event {
	switch t {
	case pdu.TypeAssociateRQ:
		return Evt6
	case pdu.TypeAssociateAC:
		return Evt3
	case pdu.TypeAssociateRJ:
		return Evt4
	case pdu.TypePDataTF:
		return Evt10
	case pdu.TypeReleaseRQ:
		return Evt12
	case pdu.TypeReleaseRP:
		return Evt13
	case pdu.TypeAbort:
		return Evt16
	default:
		return Evt19
	}
}

// EventForPrimitive maps a service primitive travelling from the local
// user into the DUL provider to the event it raises, following
// pynetdicom's dul.py _primitive_to_event. p must be one of
// *primitive.AAssociate, *primitive.ARelease, *primitive.AAbort, or
// *primitive.PData; any other type is a programmer error.
func EventForPrimitive(p interface{}) (Event, error) {
	switch v := p.(type) {
	case *primitive.AAssociate:
		if v.IsRequestOrIndication() {
			return Evt1, nil
		}
		if *v.Result == dulerrors.AssociationRejectResult(0) {
			return Evt7, nil
		}
		return Evt8, nil
	case *primitive.ARelease:
		if v.Requested {
			return Evt11, nil
		}
		return Evt14, nil
	case *primitive.AAbort:
		return Evt15, nil
	case *primitive.PData:
		return Evt9, nil
	default:
		return 0, fmt.Errorf("fsm: %T does not correspond to a DUL event", p)
	}
}
