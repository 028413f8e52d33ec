package primitive

import (
	dulerrors "github.com/dicomnet/dulengine/errors"
	"github.com/dicomnet/dulengine/pdu"
)

// AAbort models the A-ABORT primitive (PS3.8 §7.3), issued by a service
// user to abruptly end an association.
type AAbort struct {
	Source dulerrors.AbortSource
}

// ToAbortPDU translates an outbound A-ABORT primitive into an A-ABORT
// PDU. The Reason field only carries meaning for provider-sourced
// aborts; a user-sourced abort always encodes reason not-specified.
func ToAbortPDU(a *AAbort) *pdu.AAbort {
	return &pdu.AAbort{Source: a.Source, Reason: dulerrors.AbortReasonNotSpecified}
}

// APAbort models the A-P-ABORT primitive (PS3.8 §7.4), issued by the DUL
// provider itself — on a protocol error, or because it received an
// A-ABORT PDU from the peer.
type APAbort struct {
	Reason dulerrors.AbortReason
}

// ToAbortPDU translates a provider-sourced A-P-ABORT into an A-ABORT PDU.
func (a *APAbort) ToAbortPDU() *pdu.AAbort {
	return &pdu.AAbort{Source: dulerrors.AbortSourceServiceProvider, Reason: a.Reason}
}

// FromAbortPDU translates a received A-ABORT PDU into an A-P-ABORT
// indication: from the receiver's perspective any incoming A-ABORT,
// regardless of who sent it, surfaces as a provider-initiated abort of
// the local association (PS3.8 §9.1.5, pynetdicom's _primitive_to_event
// symmetric counterpart for receive).
func FromAbortPDU(p *pdu.AAbort) *APAbort {
	return &APAbort{Reason: p.Reason}
}
