package primitive

import (
	"testing"

	dulerrors "github.com/dicomnet/dulengine/errors"
	"github.com/dicomnet/dulengine/pdu"
)

func sampleAssociateRequest() *AAssociate {
	return &AAssociate{
		ApplicationContextName: "1.2.840.10008.3.1.1.1",
		CallingAETitle:         "STORESCU",
		CalledAETitle:          "STORESCP",
		MaxPDULength:           16384,
		ImplementationClassUID: "1.2.840.10008.1.1.1",
		PresentationContextProposals: []PresentationContextProposal{
			{ID: 1, AbstractSyntax: "1.2.840.10008.1.1", TransferSyntaxes: []string{"1.2.840.10008.1.2"}},
		},
	}
}

func TestToRequestPDUAndBack(t *testing.T) {
	want := sampleAssociateRequest()
	rq, err := ToRequestPDU(want, false)
	if err != nil {
		t.Fatalf("ToRequestPDU: %v", err)
	}
	if rq.CalledAETitle != want.CalledAETitle || rq.CallingAETitle != want.CallingAETitle {
		t.Errorf("rq = %+v", rq)
	}

	got := FromRequestPDU(rq)
	if got.CalledAETitle != want.CalledAETitle || got.ApplicationContextName != want.ApplicationContextName {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if len(got.PresentationContextProposals) != 1 || got.PresentationContextProposals[0].AbstractSyntax != "1.2.840.10008.1.1" {
		t.Errorf("PresentationContextProposals = %+v", got.PresentationContextProposals)
	}
}

func TestToRequestPDURejectsNoProposals(t *testing.T) {
	a := sampleAssociateRequest()
	a.PresentationContextProposals = nil
	if _, err := ToRequestPDU(a, false); err == nil {
		t.Fatal("expected error for zero presentation context proposals")
	}
}

func TestToRequestPDUCarriesRoleSelection(t *testing.T) {
	a := sampleAssociateRequest()
	scu, scp := pdu.RoleSupported, pdu.RoleNotSupported
	a.PresentationContextProposals[0].SCURole = &scu
	a.PresentationContextProposals[0].SCPRole = &scp

	rq, err := ToRequestPDU(a, false)
	if err != nil {
		t.Fatalf("ToRequestPDU: %v", err)
	}
	if len(rq.UserInformation.RoleSelections) != 1 {
		t.Fatalf("RoleSelections len = %d, want 1", len(rq.UserInformation.RoleSelections))
	}

	back := FromRequestPDU(rq)
	pc := back.PresentationContextProposals[0]
	if pc.SCURole == nil || *pc.SCURole != pdu.RoleSupported {
		t.Errorf("SCURole = %v, want %v", pc.SCURole, pdu.RoleSupported)
	}
}

func TestToAcceptPDUAndBack(t *testing.T) {
	want := &AAssociate{
		ApplicationContextName: "1.2.840.10008.3.1.1.1",
		CallingAETitle:         "STORESCU",
		CalledAETitle:          "STORESCP",
		MaxPDULength:           16384,
		ImplementationClassUID: "1.2.840.10008.1.1.1",
		PresentationContextResults: []PresentationContextResult{
			{ID: 1, Result: pdu.PresentationContextAccepted, TransferSyntax: "1.2.840.10008.1.2"},
		},
	}

	ac, err := ToAcceptPDU(want, false)
	if err != nil {
		t.Fatalf("ToAcceptPDU: %v", err)
	}
	got := FromAcceptPDU(ac)
	if got.Result == nil || *got.Result != dulerrors.AssociationRejectResult(0) {
		t.Errorf("Result = %v, want accepted (0)", got.Result)
	}
	if len(got.PresentationContextResults) != 1 {
		t.Fatalf("PresentationContextResults len = %d, want 1", len(got.PresentationContextResults))
	}
}

func TestToRejectPDURequiresFullResult(t *testing.T) {
	a := &AAssociate{}
	if _, err := ToRejectPDU(a); err == nil {
		t.Fatal("expected error for a reject primitive missing Result/Source/Reason")
	}
}

func TestToRejectPDUAndBack(t *testing.T) {
	result := dulerrors.RejectResultPermanent
	source := dulerrors.RejectSourceServiceUserACSE
	reason := dulerrors.RejectReasonCalledAETitleNotRecognized
	a := &AAssociate{Result: &result, Source: &source, Reason: &reason}

	rj, err := ToRejectPDU(a)
	if err != nil {
		t.Fatalf("ToRejectPDU: %v", err)
	}
	got := FromRejectPDU(rj)
	if *got.Result != result || *got.Source != source || *got.Reason != reason {
		t.Errorf("got %+v", got)
	}
}
