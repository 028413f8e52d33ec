// Package server exposes a reusable DICOM listener that accepts
// associations over the dul reactor and drains their primitives into a
// caller-supplied interfaces.AssociationHandler, the same listener/accept
// loop shape as the teacher's Server but without any DIMSE content
// decoding, which is out of this engine's scope.
package server

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dicomnet/dulengine/duconfig"
	"github.com/dicomnet/dulengine/dul"
	dulerrors "github.com/dicomnet/dulengine/errors"
	"github.com/dicomnet/dulengine/interfaces"
	"github.com/dicomnet/dulengine/pdu"
	"github.com/dicomnet/dulengine/primitive"
)

// Option configures a Server instance.
type Option func(*Server)

// WithLogger overrides the logger used by the server.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) { s.Logger = logger }
}

// WithDULConfig overrides the duconfig.Config passed to every accepted
// reactor.
func WithDULConfig(cfg duconfig.Config) Option {
	return func(s *Server) { s.DUL = cfg }
}

// Server listens for associations, negotiates presentation contexts
// against a supported abstract/transfer syntax list, and hands every
// accepted association's indications to Handler.
type Server struct {
	AETitle                   string
	Handler                   interfaces.AssociationHandler
	Logger                    zerolog.Logger
	DUL                       duconfig.Config
	SupportedAbstractSyntaxes []string
	SupportedTransferSyntaxes []string
	ImplementationClassUID    string
}

// New builds a Server with the provided AE title and handler.
func New(aeTitle string, handler interfaces.AssociationHandler, opts ...Option) *Server {
	srv := &Server{
		AETitle:                aeTitle,
		Handler:                handler,
		Logger:                 log.Logger,
		DUL:                    duconfig.Default(),
		ImplementationClassUID: "1.2.826.0.1.3680043.dulengine",
	}
	for _, opt := range opts {
		opt(srv)
	}
	return srv
}

// ListenAndServe listens on address and serves until ctx is done or an
// error occurs.
func ListenAndServe(ctx context.Context, address, aeTitle string, handler interfaces.AssociationHandler, opts ...Option) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	defer listener.Close()

	srv := New(aeTitle, handler, opts...)
	return srv.Serve(ctx, listener)
}

// Serve accepts connections from listener until ctx is cancelled or an
// unrecoverable error occurs.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if listener == nil {
		return errors.New("server: listener is required")
	}
	if s.Handler == nil {
		return errors.New("server: handler is required")
	}
	if s.AETitle == "" {
		return errors.New("server: AE title is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	s.Logger.Info().Str("address", listener.Addr().String()).Str("ae_title", s.AETitle).Msg("dul server listening")

	var (
		wg       sync.WaitGroup
		serveErr error
	)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				s.Logger.Warn().Err(err).Msg("accept timeout")
				continue
			}
			serveErr = err
			break
		}

		wg.Add(1)
		go func(c net.Conn) {
			defer wg.Done()
			s.handleConnection(ctx, c)
		}(conn)
	}

	wg.Wait()
	if serveErr != nil {
		return serveErr
	}
	return ctx.Err()
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	logger := s.Logger.With().Str("remote_addr", conn.RemoteAddr().String()).Logger()
	logger.Info().Msg("accepted connection")

	reactor := dul.Accept(conn, s.DUL)
	defer reactor.KillDUL()

	for {
		ind, err := reactor.NextIndication(ctx)
		if err != nil {
			logger.Debug().Err(err).Msg("association loop ended")
			return
		}
		switch p := ind.(type) {
		case *primitive.AAssociate:
			if p.IsRequestOrIndication() {
				s.respondToAssociate(ctx, reactor, p, logger)
			}
			s.Handler.HandleAssociate(p)
		case *primitive.PData:
			s.Handler.HandlePData(p)
		case *primitive.ARelease:
			s.Handler.HandleRelease(p)
			if p.Requested {
				_ = reactor.SendPrimitive(ctx, &primitive.ARelease{Requested: false})
				return
			}
		case *primitive.APAbort:
			s.Handler.HandleAbort(p)
			return
		}
	}
}

// respondToAssociate negotiates the incoming proposals against the
// server's supported syntaxes and issues the A-ASSOCIATE response.
func (s *Server) respondToAssociate(ctx context.Context, reactor *dul.Reactor, ind *primitive.AAssociate, logger zerolog.Logger) {
	results := make([]primitive.PresentationContextResult, 0, len(ind.PresentationContextProposals))
	for _, proposed := range ind.PresentationContextProposals {
		result, transferSyntax := s.negotiate(proposed)
		results = append(results, primitive.PresentationContextResult{
			ID:             proposed.ID,
			Result:         result,
			TransferSyntax: transferSyntax,
		})
	}

	response := &primitive.AAssociate{
		ApplicationContextName:     ind.ApplicationContextName,
		CalledAETitle:              s.AETitle,
		CallingAETitle:             ind.CallingAETitle,
		PresentationContextResults: results,
		MaxPDULength:               s.DUL.MaxPDULength,
		ImplementationClassUID:     s.ImplementationClassUID,
	}
	accepted := dulerrors.AssociationRejectResult(0)
	response.Result = &accepted

	if err := reactor.SendPrimitive(ctx, response); err != nil {
		logger.Warn().Err(err).Msg("failed to send association response")
	}
}

func (s *Server) negotiate(proposed primitive.PresentationContextProposal) (pdu.PresentationContextResult, string) {
	supportedAS := false
	for _, as := range s.SupportedAbstractSyntaxes {
		if as == proposed.AbstractSyntax {
			supportedAS = true
			break
		}
	}
	if !supportedAS {
		return pdu.PresentationContextAbstractSyntaxNotSupported, ""
	}

	for _, ts := range proposed.TransferSyntaxes {
		for _, supported := range s.SupportedTransferSyntaxes {
			if ts == supported {
				return pdu.PresentationContextAccepted, ts
			}
		}
	}
	return pdu.PresentationContextTransferSyntaxesNotSupported, ""
}
