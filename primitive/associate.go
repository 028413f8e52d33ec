// Package primitive defines the DUL service primitives (A-ASSOCIATE,
// A-RELEASE, A-ABORT, A-P-ABORT, P-DATA) exchanged between a DICOM
// service user and the DUL provider, and translates between them and
// the wire PDUs in package pdu.
//
// A single Go struct models each primitive's request/indication and
// response/confirmation forms, following pynetdicom's pdu_primitives.py:
// the same type crosses the user/provider boundary in both directions,
// distinguished by which fields are populated (Result is nil for a
// request or indication).
package primitive

import (
	"fmt"

	dulerrors "github.com/dicomnet/dulengine/errors"
	"github.com/dicomnet/dulengine/pdu"
)

// PresentationContextProposal is one entry of an A-ASSOCIATE request's
// presentation context definition list (PS3.8 §7.1.1.13).
type PresentationContextProposal struct {
	ID               byte
	AbstractSyntax   string
	TransferSyntaxes []string
	SCURole          *byte // nil when role selection was not negotiated for this syntax
	SCPRole          *byte
}

// PresentationContextResult is one entry of an A-ASSOCIATE response's
// presentation context definition result list.
type PresentationContextResult struct {
	ID             byte
	Result         pdu.PresentationContextResult
	TransferSyntax string
}

// AAssociate models the A-ASSOCIATE primitive in both directions. Result
// is nil on a request (user -> provider) or indication (provider ->
// user); non-nil on a response/confirmation.
type AAssociate struct {
	ApplicationContextName string
	CallingAETitle         string
	CalledAETitle          string

	PresentationContextProposals []PresentationContextProposal
	PresentationContextResults   []PresentationContextResult

	MaxPDULength              uint32
	ImplementationClassUID    string
	ImplementationVersionName string

	// Result is nil on a request or indication. Once set, the zero value
	// means the association was accepted; RejectResultPermanent or
	// RejectResultTransient mean it was rejected, in which case Source
	// and Reason are also populated.
	Result *dulerrors.AssociationRejectResult
	Source *dulerrors.AssociationRejectSource
	Reason *dulerrors.AssociationRejectReason

	UserIdentityRQ *pdu.UserIdentityRQItem
	UserIdentityAC *pdu.UserIdentityACItem
}

// IsRequestOrIndication reports whether this primitive carries no result
// yet, i.e. it is travelling user -> provider (request) or provider ->
// user (indication) rather than completing the exchange.
func (a *AAssociate) IsRequestOrIndication() bool {
	return a.Result == nil
}

// ToRequestPDU translates an outbound A-ASSOCIATE request primitive into
// an A-ASSOCIATE-RQ PDU (pynetdicom's AAssociateRqPDU.from_primitive).
func ToRequestPDU(a *AAssociate, strict bool) (*pdu.AAssociateRQ, error) {
	if len(a.PresentationContextProposals) == 0 {
		return nil, dulerrors.NewValidationError("a-associate.presentation-context-proposals", "must propose at least one presentation context")
	}

	rq := &pdu.AAssociateRQ{
		CalledAETitle:      a.CalledAETitle,
		CallingAETitle:     a.CallingAETitle,
		ApplicationContext: pdu.ApplicationContextItem{Name: a.ApplicationContextName},
		UserInformation: pdu.UserInformationItem{
			MaxLength:              pdu.MaxLengthItem{MaxLength: a.MaxPDULength},
			ImplementationClassUID: pdu.ImplementationClassUIDItem{UID: a.ImplementationClassUID},
		},
	}

	if a.ImplementationVersionName != "" {
		ivn := pdu.ImplementationVersionNameItem{Name: a.ImplementationVersionName}
		rq.UserInformation.ImplementationVersionName = &ivn
	}
	if a.UserIdentityRQ != nil {
		rq.UserInformation.UserIdentityRQ = a.UserIdentityRQ
	}

	for _, pc := range a.PresentationContextProposals {
		item := pdu.PresentationContextRQItem{
			ID:             pc.ID,
			AbstractSyntax: pdu.AbstractSyntaxItem{Name: pc.AbstractSyntax},
		}
		for _, ts := range pc.TransferSyntaxes {
			item.TransferSyntaxes = append(item.TransferSyntaxes, pdu.TransferSyntaxItem{Name: ts})
		}
		rq.PresentationContexts = append(rq.PresentationContexts, item)

		if pc.SCURole != nil && pc.SCPRole != nil {
			rq.UserInformation.RoleSelections = append(rq.UserInformation.RoleSelections, pdu.RoleSelectionItem{
				UID:     pc.AbstractSyntax,
				SCURole: *pc.SCURole,
				SCPRole: *pc.SCPRole,
			})
		}
	}

	return rq, nil
}

// FromRequestPDU translates a received A-ASSOCIATE-RQ PDU into an
// inbound A-ASSOCIATE indication primitive.
func FromRequestPDU(rq *pdu.AAssociateRQ) *AAssociate {
	a := &AAssociate{
		ApplicationContextName:    rq.ApplicationContext.Name,
		CallingAETitle:            rq.CallingAETitle,
		CalledAETitle:             rq.CalledAETitle,
		MaxPDULength:              rq.UserInformation.MaxLength.MaxLength,
		ImplementationClassUID:    rq.UserInformation.ImplementationClassUID.UID,
		UserIdentityRQ:            rq.UserInformation.UserIdentityRQ,
	}
	if rq.UserInformation.ImplementationVersionName != nil {
		a.ImplementationVersionName = rq.UserInformation.ImplementationVersionName.Name
	}

	roleByUID := make(map[string]pdu.RoleSelectionItem, len(rq.UserInformation.RoleSelections))
	for _, rs := range rq.UserInformation.RoleSelections {
		roleByUID[rs.UID] = rs
	}

	for _, pc := range rq.PresentationContexts {
		proposal := PresentationContextProposal{ID: pc.ID, AbstractSyntax: pc.AbstractSyntax.Name}
		for _, ts := range pc.TransferSyntaxes {
			proposal.TransferSyntaxes = append(proposal.TransferSyntaxes, ts.Name)
		}
		if rs, ok := roleByUID[pc.AbstractSyntax.Name]; ok {
			scu, scp := rs.SCURole, rs.SCPRole
			proposal.SCURole = &scu
			proposal.SCPRole = &scp
		}
		a.PresentationContextProposals = append(a.PresentationContextProposals, proposal)
	}

	return a
}

// ToAcceptPDU translates an outbound affirmative A-ASSOCIATE response
// primitive into an A-ASSOCIATE-AC PDU.
func ToAcceptPDU(a *AAssociate, strict bool) (*pdu.AAssociateAC, error) {
	if len(a.PresentationContextResults) == 0 {
		return nil, dulerrors.NewValidationError("a-associate.presentation-context-results", "must answer at least one presentation context")
	}

	ac := &pdu.AAssociateAC{
		CalledAETitle:      a.CalledAETitle,
		CallingAETitle:     a.CallingAETitle,
		ApplicationContext: pdu.ApplicationContextItem{Name: a.ApplicationContextName},
		UserInformation: pdu.UserInformationItem{
			MaxLength:              pdu.MaxLengthItem{MaxLength: a.MaxPDULength},
			ImplementationClassUID: pdu.ImplementationClassUIDItem{UID: a.ImplementationClassUID},
		},
	}
	if a.ImplementationVersionName != "" {
		ivn := pdu.ImplementationVersionNameItem{Name: a.ImplementationVersionName}
		ac.UserInformation.ImplementationVersionName = &ivn
	}
	if a.UserIdentityAC != nil {
		ac.UserInformation.UserIdentityAC = a.UserIdentityAC
	}

	for _, pc := range a.PresentationContextResults {
		ac.PresentationContexts = append(ac.PresentationContexts, pdu.PresentationContextACItem{
			ID:             pc.ID,
			Result:         pc.Result,
			TransferSyntax: pdu.TransferSyntaxItem{Name: pc.TransferSyntax},
		})
	}

	return ac, nil
}

// FromAcceptPDU translates a received A-ASSOCIATE-AC PDU into an
// inbound A-ASSOCIATE confirmation primitive with a positive result.
func FromAcceptPDU(ac *pdu.AAssociateAC) *AAssociate {
	accepted := dulerrors.AssociationRejectResult(0)
	a := &AAssociate{
		ApplicationContextName: ac.ApplicationContext.Name,
		CallingAETitle:         ac.CallingAETitle,
		CalledAETitle:          ac.CalledAETitle,
		MaxPDULength:           ac.UserInformation.MaxLength.MaxLength,
		ImplementationClassUID: ac.UserInformation.ImplementationClassUID.UID,
		Result:                 &accepted,
		UserIdentityAC:         ac.UserInformation.UserIdentityAC,
	}
	if ac.UserInformation.ImplementationVersionName != nil {
		a.ImplementationVersionName = ac.UserInformation.ImplementationVersionName.Name
	}
	for _, pc := range ac.PresentationContexts {
		a.PresentationContextResults = append(a.PresentationContextResults, PresentationContextResult{
			ID:             pc.ID,
			Result:         pc.Result,
			TransferSyntax: pc.TransferSyntax.Name,
		})
	}
	return a
}

// ToRejectPDU translates an outbound negative A-ASSOCIATE response
// primitive into an A-ASSOCIATE-RJ PDU.
func ToRejectPDU(a *AAssociate) (*pdu.AAssociateRJ, error) {
	if a.Result == nil || a.Source == nil || a.Reason == nil {
		return nil, dulerrors.NewValidationError("a-associate.result", "rejecting a primitive requires Result, Source, and Reason")
	}
	return &pdu.AAssociateRJ{Result: *a.Result, Source: *a.Source, Reason: *a.Reason}, nil
}

// FromRejectPDU translates a received A-ASSOCIATE-RJ PDU into an inbound
// A-ASSOCIATE confirmation primitive with a negative result.
func FromRejectPDU(rj *pdu.AAssociateRJ) *AAssociate {
	result, source, reason := rj.Result, rj.Source, rj.Reason
	return &AAssociate{Result: &result, Source: &source, Reason: &reason}
}

func (a *AAssociate) String() string {
	if a.Result == nil {
		return fmt.Sprintf("A-ASSOCIATE{%s -> %s}", a.CallingAETitle, a.CalledAETitle)
	}
	return fmt.Sprintf("A-ASSOCIATE{%s -> %s, result=%v}", a.CallingAETitle, a.CalledAETitle, *a.Result)
}
