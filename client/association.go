// Package client wraps dul.Dial with the request/response dance of
// establishing an association and exchanging P-DATA, the same surface
// the teacher's Association type exposed over a raw net.Conn, now built
// on the reactor instead of hand-rolled byte buffers.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dicomnet/dulengine/duconfig"
	"github.com/dicomnet/dulengine/dul"
	dulerrors "github.com/dicomnet/dulengine/errors"
	"github.com/dicomnet/dulengine/pdu"
	"github.com/dicomnet/dulengine/primitive"
)

const defaultApplicationContext = "1.2.840.10008.3.1.1.1"

// Association represents a client-side DICOM association: a dul.Reactor
// in the requestor role, plus the presentation contexts negotiated when
// it was established.
type Association struct {
	reactor          *dul.Reactor
	callingAETitle   string
	calledAETitle    string
	presentationCtxs map[byte]*PresentationContext
	logger           zerolog.Logger
}

// PresentationContext holds negotiated presentation context info.
type PresentationContext struct {
	ID             byte
	AbstractSyntax string
	TransferSyntax string
	Accepted       bool
}

// Config holds client configuration.
type Config struct {
	CallingAETitle            string
	CalledAETitle             string
	MaxPDULength              uint32
	ConnectTimeout            time.Duration // default: 30s
	AssociateTimeout          time.Duration // default: 30s
	Logger                    *zerolog.Logger
	PreferredTransferSyntaxes []string // default: Explicit VR LE, Implicit VR LE
	ApplicationContextName    string   // default: the DICOM standard application context
	ImplementationClassUID    string
	DUL                       duconfig.Config
}

// proposal is one abstract syntax the caller wants negotiated, keyed to
// the presentation context ID it is assigned on the wire.
type proposal struct {
	AbstractSyntax string
}

// Connect dials address, performs the TCP handshake via dul.Dial, issues
// an A-ASSOCIATE request proposing one presentation context per abstract
// syntax, and blocks for the acceptor's response.
func Connect(ctx context.Context, address string, abstractSyntaxes []string, config Config) (*Association, error) {
	if config.MaxPDULength == 0 {
		config.MaxPDULength = 16384
	}
	if config.ConnectTimeout == 0 {
		config.ConnectTimeout = 30 * time.Second
	}
	if config.AssociateTimeout == 0 {
		config.AssociateTimeout = 30 * time.Second
	}
	if config.ApplicationContextName == "" {
		config.ApplicationContextName = defaultApplicationContext
	}
	if config.ImplementationClassUID == "" {
		config.ImplementationClassUID = "1.2.826.0.1.3680043.dulengine"
	}
	if len(config.PreferredTransferSyntaxes) == 0 {
		config.PreferredTransferSyntaxes = []string{
			"1.2.840.10008.1.2.1", // Explicit VR Little Endian
			"1.2.840.10008.1.2",   // Implicit VR Little Endian
		}
	}
	logger := log.Logger
	if config.Logger != nil {
		logger = *config.Logger
	}

	dialCtx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()
	reactor, err := dul.Dial(dialCtx, address, config.DUL)
	if err != nil {
		return nil, err
	}

	assoc := &Association{
		reactor:          reactor,
		callingAETitle:   config.CallingAETitle,
		calledAETitle:    config.CalledAETitle,
		presentationCtxs: make(map[byte]*PresentationContext),
		logger:           logger,
	}

	byID := make(map[byte]proposal, len(abstractSyntaxes))
	proposals := make([]primitive.PresentationContextProposal, 0, len(abstractSyntaxes))
	for i, as := range abstractSyntaxes {
		id := byte(2*i + 1)
		byID[id] = proposal{AbstractSyntax: as}
		proposals = append(proposals, primitive.PresentationContextProposal{
			ID:               id,
			AbstractSyntax:   as,
			TransferSyntaxes: config.PreferredTransferSyntaxes,
		})
	}

	request := &primitive.AAssociate{
		ApplicationContextName:       config.ApplicationContextName,
		CallingAETitle:               config.CallingAETitle,
		CalledAETitle:                config.CalledAETitle,
		PresentationContextProposals: proposals,
		MaxPDULength:                 config.MaxPDULength,
		ImplementationClassUID:       config.ImplementationClassUID,
	}

	associateCtx, cancelAssoc := context.WithTimeout(ctx, config.AssociateTimeout)
	defer cancelAssoc()
	if err := reactor.SendPrimitive(associateCtx, request); err != nil {
		reactor.KillDUL()
		return nil, fmt.Errorf("client: sending A-ASSOCIATE request: %w", err)
	}

	response, err := reactor.NextIndication(associateCtx)
	if err != nil {
		reactor.KillDUL()
		return nil, fmt.Errorf("client: awaiting A-ASSOCIATE response: %w", err)
	}
	confirmation, ok := response.(*primitive.AAssociate)
	if !ok {
		reactor.KillDUL()
		return nil, fmt.Errorf("client: unexpected primitive %T while awaiting association response", response)
	}
	if confirmation.Result == nil || *confirmation.Result != dulerrors.AssociationRejectResult(0) {
		reactor.KillDUL()
		return nil, dulerrors.NewAssociationError(derefResult(confirmation.Result), derefSource(confirmation.Source), derefReason(confirmation.Reason), "association rejected")
	}

	for _, pc := range confirmation.PresentationContextResults {
		accepted := pc.Result == pdu.PresentationContextAccepted
		assoc.presentationCtxs[pc.ID] = &PresentationContext{
			ID:             pc.ID,
			AbstractSyntax: byID[pc.ID].AbstractSyntax,
			TransferSyntax: pc.TransferSyntax,
			Accepted:       accepted,
		}
		logger.Debug().
			Uint8("context_id", pc.ID).
			Str("abstract_syntax", byID[pc.ID].AbstractSyntax).
			Bool("accepted", accepted).
			Str("transfer_syntax", pc.TransferSyntax).
			Msg("presentation context negotiated")
	}

	logger.Info().Str("remote_addr", address).Str("calling_ae", config.CallingAETitle).Str("called_ae", config.CalledAETitle).Msg("association established")
	return assoc, nil
}

// SendData issues a P-DATA request carrying one presentation data value.
func (a *Association) SendData(ctx context.Context, presentationContextID byte, data []byte, command bool, last bool) error {
	var header byte
	if command {
		header |= pdu.PDVCommand
	}
	if last {
		header |= pdu.PDVLastFragment
	}
	p := &primitive.PData{Values: []pdu.PresentationDataValueItem{
		{PresentationContextID: presentationContextID, MessageControlHeader: header, Data: data},
	}}
	return a.reactor.SendPrimitive(ctx, p)
}

// Release requests a graceful A-RELEASE and waits for the confirmation.
func (a *Association) Release(ctx context.Context) error {
	if err := a.reactor.SendPrimitive(ctx, &primitive.ARelease{Requested: true}); err != nil {
		return err
	}
	ind, err := a.reactor.NextIndication(ctx)
	if err != nil {
		return err
	}
	if _, ok := ind.(*primitive.ARelease); !ok {
		return fmt.Errorf("client: unexpected primitive %T while awaiting release confirmation", ind)
	}
	return nil
}

// Abort sends an A-ABORT and tears the reactor down without waiting for
// a response, since PS3.8 defines none for abort.
func (a *Association) Abort() {
	_ = a.reactor.SendPrimitive(context.Background(), &primitive.AAbort{Source: dulerrors.AbortSourceServiceUser})
	a.reactor.KillDUL()
}

// PresentationContexts returns the negotiated presentation contexts by ID.
func (a *Association) PresentationContexts() map[byte]*PresentationContext {
	return a.presentationCtxs
}

// GetPresentationContextID finds a presentation context for the given
// abstract syntax.
func (a *Association) GetPresentationContextID(abstractSyntax string) (byte, error) {
	for _, pc := range a.presentationCtxs {
		if pc.AbstractSyntax == abstractSyntax && pc.Accepted {
			return pc.ID, nil
		}
	}
	return 0, fmt.Errorf("client: no accepted presentation context for abstract syntax %s", abstractSyntax)
}

func derefResult(r *dulerrors.AssociationRejectResult) dulerrors.AssociationRejectResult {
	if r == nil {
		return dulerrors.RejectResultPermanent
	}
	return *r
}

func derefSource(s *dulerrors.AssociationRejectSource) dulerrors.AssociationRejectSource {
	if s == nil {
		return dulerrors.RejectSourceServiceUserACSE
	}
	return *s
}

func derefReason(r *dulerrors.AssociationRejectReason) dulerrors.AssociationRejectReason {
	if r == nil {
		return dulerrors.RejectReasonNoReasonGiven
	}
	return *r
}
