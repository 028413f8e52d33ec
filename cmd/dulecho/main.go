// Command dulecho exercises the DUL engine end to end: it can run a
// loopback C-ECHO-style verification server, or connect to one and
// negotiate a Verification SOP Class association, then release.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/dicomnet/dulengine/client"
	"github.com/dicomnet/dulengine/duconfig"
	"github.com/dicomnet/dulengine/interfaces"
	"github.com/dicomnet/dulengine/primitive"
	"github.com/dicomnet/dulengine/server"
	"github.com/dicomnet/dulengine/wellknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cancel()
	}()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "dulecho",
		Usage: "exercise the DUL association engine with a Verification SOP Class echo",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run an echo acceptor",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Value: "127.0.0.1:11112"},
					&cli.StringFlag{Name: "ae-title", Value: "DULECHO"},
				},
				Action: func(c *cli.Context) error {
					return runServe(ctx, c.String("address"), c.String("ae-title"), logger)
				},
			},
			{
				Name:  "echo",
				Usage: "connect to an acceptor, associate, and release",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Value: "127.0.0.1:11112"},
					&cli.StringFlag{Name: "calling-ae", Value: "DULECHO-SCU"},
					&cli.StringFlag{Name: "called-ae", Value: "DULECHO"},
				},
				Action: func(c *cli.Context) error {
					return runEcho(ctx, c.String("address"), c.String("calling-ae"), c.String("called-ae"), logger)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("dulecho failed")
		os.Exit(1)
	}
}

type echoHandler struct {
	logger zerolog.Logger
}

func (h *echoHandler) HandleAssociate(ind *primitive.AAssociate) {
	h.logger.Info().Str("calling_ae", ind.CallingAETitle).Str("called_ae", ind.CalledAETitle).Msg("association event")
}

func (h *echoHandler) HandlePData(ind *primitive.PData) {
	h.logger.Info().Int("values", len(ind.Values)).Msg("p-data received")
}

func (h *echoHandler) HandleRelease(ind *primitive.ARelease) {
	h.logger.Info().Bool("requested", ind.Requested).Msg("release event")
}

func (h *echoHandler) HandleAbort(ind *primitive.APAbort) {
	h.logger.Warn().Str("reason", ind.Reason.String()).Msg("abort event")
}

var _ interfaces.AssociationHandler = (*echoHandler)(nil)

func runServe(ctx context.Context, address, aeTitle string, logger zerolog.Logger) error {
	srv := server.New(aeTitle, &echoHandler{logger: logger},
		server.WithLogger(logger),
		server.WithDULConfig(duconfig.Default()),
	)
	srv.SupportedAbstractSyntaxes = []string{wellknown.VerificationSOPClass}
	srv.SupportedTransferSyntaxes = []string{wellknown.ImplicitVRLittleEndian, wellknown.ExplicitVRLittleEndian}
	srv.ImplementationClassUID = "1.2.826.0.1.3680043.dulengine"

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	defer listener.Close()
	return srv.Serve(ctx, listener)
}

func runEcho(ctx context.Context, address, callingAE, calledAE string, logger zerolog.Logger) error {
	assoc, err := client.Connect(ctx, address, []string{wellknown.VerificationSOPClass}, client.Config{
		CallingAETitle:         callingAE,
		CalledAETitle:          calledAE,
		ImplementationClassUID: "1.2.826.0.1.3680043.dulengine",
		Logger:                 &logger,
	})
	if err != nil {
		return fmt.Errorf("associate: %w", err)
	}

	id, err := assoc.GetPresentationContextID(wellknown.VerificationSOPClass)
	if err != nil {
		assoc.Abort()
		return err
	}
	logger.Info().Uint8("context_id", id).Msg("verification context negotiated")

	return assoc.Release(ctx)
}
