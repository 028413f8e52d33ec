package dul

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dicomnet/dulengine/duconfig"
	dulerrors "github.com/dicomnet/dulengine/errors"
	"github.com/dicomnet/dulengine/fsm"
	"github.com/dicomnet/dulengine/primitive"
)

func testConfig() duconfig.Config {
	cfg := duconfig.Default()
	cfg.ARTIMTimeout = time.Second
	cfg.IndicationQueueDepth = 8
	return cfg
}

func samplePresentationContext() primitive.PresentationContextProposal {
	return primitive.PresentationContextProposal{
		ID:               1,
		AbstractSyntax:   "1.2.840.10008.1.1",
		TransferSyntaxes: []string{"1.2.840.10008.1.2"},
	}
}

func newLoopback(t *testing.T) (requestor *Reactor, acceptor *Reactor) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	requestor = New(clientConn, RoleRequestor, testConfig())
	acceptor = New(serverConn, RoleAcceptor, testConfig())
	requestor.Start()
	acceptor.Start()
	return requestor, acceptor
}

func TestAssociationEstablishmentAndRelease(t *testing.T) {
	requestor, acceptor := newLoopback(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req := &primitive.AAssociate{
		CallingAETitle:               "SCU",
		CalledAETitle:                "SCP",
		ApplicationContextName:       "1.2.840.10008.3.1.1.1",
		PresentationContextProposals: []primitive.PresentationContextProposal{samplePresentationContext()},
		MaxPDULength:                 16384,
		ImplementationClassUID:       "1.2.3.4",
	}
	if err := requestor.SendPrimitive(ctx, req); err != nil {
		t.Fatalf("SendPrimitive request: %v", err)
	}

	ind, err := acceptor.NextIndication(ctx)
	if err != nil {
		t.Fatalf("acceptor NextIndication: %v", err)
	}
	indication, ok := ind.(*primitive.AAssociate)
	if !ok || indication.CallingAETitle != "SCU" {
		t.Fatalf("unexpected indication %#v", ind)
	}

	accepted := dulerrors.AssociationRejectResult(0)
	resp := &primitive.AAssociate{
		CalledAETitle:              "SCP",
		CallingAETitle:             "SCU",
		ApplicationContextName:     "1.2.840.10008.3.1.1.1",
		PresentationContextResults: []primitive.PresentationContextResult{{ID: 1, TransferSyntax: "1.2.840.10008.1.2"}},
		MaxPDULength:               16384,
		ImplementationClassUID:     "1.2.3.4",
		Result:                     &accepted,
	}
	if err := acceptor.SendPrimitive(ctx, resp); err != nil {
		t.Fatalf("SendPrimitive accept: %v", err)
	}

	confirm, err := requestor.NextIndication(ctx)
	if err != nil {
		t.Fatalf("requestor NextIndication: %v", err)
	}
	confirmation, ok := confirm.(*primitive.AAssociate)
	if !ok || confirmation.Result == nil || *confirmation.Result != accepted {
		t.Fatalf("unexpected confirmation %#v", confirm)
	}

	if got := requestor.State(); got != fsm.Sta6 {
		t.Fatalf("requestor state = %v, want Sta6", got)
	}
	if got := acceptor.State(); got != fsm.Sta6 {
		t.Fatalf("acceptor state = %v, want Sta6", got)
	}

	if err := requestor.SendPrimitive(ctx, &primitive.ARelease{Requested: true}); err != nil {
		t.Fatalf("SendPrimitive release: %v", err)
	}
	relInd, err := acceptor.NextIndication(ctx)
	if err != nil {
		t.Fatalf("acceptor release indication: %v", err)
	}
	if _, ok := relInd.(*primitive.ARelease); !ok {
		t.Fatalf("unexpected release indication %#v", relInd)
	}
	if err := acceptor.SendPrimitive(ctx, &primitive.ARelease{Requested: false}); err != nil {
		t.Fatalf("SendPrimitive release response: %v", err)
	}

	if err := requestor.WaitIdle(ctx); err != nil {
		t.Fatalf("requestor WaitIdle: %v", err)
	}
	if err := acceptor.WaitIdle(ctx); err != nil {
		t.Fatalf("acceptor WaitIdle: %v", err)
	}
	if !requestor.StopDUL() {
		t.Error("requestor StopDUL() = false, want true after clean release")
	}
}

func TestKillDULStopsRunLoop(t *testing.T) {
	requestor, acceptor := newLoopback(t)
	_ = acceptor
	requestor.KillDUL()
	select {
	case <-requestor.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("run loop did not exit after KillDUL")
	}
}
