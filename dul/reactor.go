// Package dul implements the DICOM Upper Layer service provider: one
// Reactor per association, running the fsm state machine against PDUs
// read off a Transport and primitives handed in by the local service
// user, the way pynetdicom's dul.py drives its own run loop.
package dul

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dicomnet/dulengine/duconfig"
	dulerrors "github.com/dicomnet/dulengine/errors"
	"github.com/dicomnet/dulengine/fsm"
	"github.com/dicomnet/dulengine/pdu"
	"github.com/dicomnet/dulengine/primitive"
)

// Role distinguishes the requestor (client, opens the TCP connection and
// the association) from the acceptor (server, receives both).
type Role int

const (
	RoleRequestor Role = iota
	RoleAcceptor
)

func (r Role) String() string {
	if r == RoleAcceptor {
		return "acceptor"
	}
	return "requestor"
}

// decodeFailure wraps a PDU decode error so the run loop can route it to
// Evt19 instead of crashing the read goroutine's caller.
type decodeFailure struct{ err error }

// Reactor owns one association's worth of state machine, queues, and
// transport. Exported methods are safe to call from any goroutine; all
// state mutation happens on the single run-loop goroutine.
type Reactor struct {
	id        uuid.UUID
	role      Role
	transport Transport
	cfg       duconfig.Config
	logger    zerolog.Logger
	metrics   *reactorMetrics

	mu    sync.Mutex
	state fsm.State

	userEventCh chan interface{}
	pduCh       chan interface{}
	transportErrCh chan error
	indications *indicationQueue

	artimTimer *time.Timer

	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
}

// New builds a Reactor around an already-connected Transport. Dial and
// Accept in association.go are the usual entry points; New is exported
// for tests that want to drive the state machine over an in-memory pipe.
func New(transport Transport, role Role, cfg duconfig.Config) *Reactor {
	id := uuid.New()
	r := &Reactor{
		id:             id,
		role:           role,
		transport:      transport,
		cfg:            cfg,
		logger:         log.With().Str("association_id", id.String()).Str("role", role.String()).Logger(),
		metrics:        defaultMetrics,
		state:          fsm.Sta1,
		userEventCh:    make(chan interface{}, 1),
		pduCh:          make(chan interface{}, 1),
		transportErrCh: make(chan error, 1),
		indications:    newIndicationQueue(cfg.IndicationQueueDepth),
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}
	return r
}

// ID returns the reactor's correlation ID, used to tie together every
// log line for this association.
func (r *Reactor) ID() uuid.UUID { return r.id }

// State reports the current DUL state. Intended for diagnostics and
// tests; the service user should drive the reactor through primitives,
// not by polling state.
func (r *Reactor) State() fsm.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start launches the reactor's read loop and run loop. For an acceptor
// it immediately synthesizes the transport-connection-indication event
// (Evt5), since by the time Start is called the listener has already
// accepted the socket.
func (r *Reactor) Start() {
	go r.readLoop()
	go r.runLoop()
	if r.role == RoleAcceptor {
		r.userEventCh <- transportIndication{}
	}
}

// transportIndication is a synthetic local event marking that the
// transport connection is open and ready, standing in for PS3.8's
// separate TRANSPORT CONNECTION INDICATION primitive (Evt5).
type transportIndication struct{}

func (r *Reactor) readLoop() {
	for {
		header := make([]byte, pdu.HeaderLength)
		if _, err := io.ReadFull(r.transport, header); err != nil {
			r.signalTransportError(err)
			return
		}
		length := binary.BigEndian.Uint32(header[2:6])
		body := make([]byte, length)
		if length > 0 {
			if _, err := io.ReadFull(r.transport, body); err != nil {
				r.signalTransportError(err)
				return
			}
		}
		raw := append(header, body...)
		decoded, err := pdu.Decode(raw, r.cfg.EnforceUIDConformance)
		var event interface{}
		if err != nil {
			event = decodeFailure{err: err}
		} else {
			r.metrics.received(pduTypeName(decoded.Type()))
			event = decoded
		}
		select {
		case r.pduCh <- event:
		case <-r.stopCh:
			return
		}
	}
}

func (r *Reactor) signalTransportError(err error) {
	select {
	case r.transportErrCh <- err:
	case <-r.stopCh:
	}
}

func (r *Reactor) runLoop() {
	defer close(r.doneCh)
	for {
		var artimC <-chan time.Time
		if r.artimTimer != nil {
			artimC = r.artimTimer.C
		}
		select {
		case <-r.stopCh:
			return
		case p := <-r.userEventCh:
			r.handleUserEvent(p)
		case p := <-r.pduCh:
			r.handleWireEvent(p)
		case err := <-r.transportErrCh:
			r.logger.Debug().Err(err).Msg("transport closed")
			r.step(fsm.Evt17, nil)
		case <-artimC:
			r.step(fsm.Evt18, nil)
		}
	}
}

func (r *Reactor) handleUserEvent(p interface{}) {
	if _, ok := p.(transportIndication); ok {
		r.step(fsm.Evt5, nil)
		return
	}
	event, err := fsm.EventForPrimitive(p)
	if err != nil {
		r.logger.Error().Err(err).Msg("unroutable local primitive")
		return
	}
	r.step(event, p)

	// Dial already performed the TCP handshake synchronously, so the
	// transport-connect confirmation (Evt2) that Table 9-10 expects to
	// arrive separately is available immediately after Evt1 fires AE-1.
	if event == fsm.Evt1 {
		r.step(fsm.Evt2, p)
	}
}

func (r *Reactor) handleWireEvent(p interface{}) {
	if df, ok := p.(decodeFailure); ok {
		r.logger.Warn().Err(df.err).Msg("failed to decode inbound PDU")
		r.step(fsm.Evt19, nil)
		return
	}
	decoded := p.(pdu.PDU)
	event := fsm.EventForPDUType(decoded.Type())
	r.step(event, decoded)
}

// step runs one (state, event) transition and executes its action.
func (r *Reactor) step(event fsm.Event, payload interface{}) {
	r.mu.Lock()
	current := r.state
	r.mu.Unlock()

	action, next, err := fsm.Transition(current, event)
	if err != nil {
		r.logger.Debug().Str("state", current.String()).Str("event", event.String()).Msg("event ignored in this state")
		return
	}

	r.logger.Debug().Str("state", current.String()).Str("event", event.String()).Str("action", action.String()).Str("next", next.String()).Msg("dul transition")

	if err := r.perform(action, payload); err != nil {
		r.logger.Error().Err(err).Str("action", action.String()).Msg("action failed")
	}

	r.mu.Lock()
	r.state = next
	r.mu.Unlock()
}

func (r *Reactor) sendPDU(p pdu.PDU, err error) {
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to build outbound PDU")
		return
	}
	raw, err := marshalPDU(p, r.cfg.EnforceUIDConformance)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to marshal outbound PDU")
		return
	}
	if _, err := r.transport.Write(raw); err != nil {
		r.logger.Error().Err(err).Msg("failed to write PDU")
		return
	}
	r.metrics.sent(pduTypeName(p.Type()))
}

// deliverTimeout bounds how long the run loop will block trying to push
// an indication to a stalled consumer before giving up and dropping it.
const deliverTimeout = 5 * time.Second

func (r *Reactor) deliver(p interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()
	if err := r.indications.push(ctx, p); err != nil {
		r.logger.Error().Err(err).Msg("indication queue full, dropping")
	}
}

func (r *Reactor) resetARTIM() {
	if r.artimTimer != nil {
		r.artimTimer.Stop()
	}
	r.artimTimer = time.NewTimer(r.cfg.ARTIMTimeout)
}

func (r *Reactor) stopARTIM() {
	if r.artimTimer != nil {
		r.artimTimer.Stop()
		r.artimTimer = nil
	}
}

func (r *Reactor) closeTransport() {
	r.transport.Close()
	r.metrics.outcome("closed")
}

// perform executes the side effect for one action. Each case translates
// between the PDU and primitive layers as PS3.8 Table 9-10 prescribes;
// the table itself only names the action, not its payload handling.
func (r *Reactor) perform(action fsm.Action, payload interface{}) error {
	switch action {
	case fsm.AE1:
		return nil // transport connect already completed synchronously by Dial
	case fsm.AE2:
		req, ok := payload.(*primitive.AAssociate)
		if !ok {
			return fmt.Errorf("dul: AE-2 needs an A-ASSOCIATE request primitive")
		}
		rq, err := primitive.ToRequestPDU(req, r.cfg.EnforceUIDConformance)
		r.sendPDU(rq, err)
		return err
	case fsm.AE3:
		ac := payload.(*pdu.AAssociateAC)
		r.deliver(primitive.FromAcceptPDU(ac))
		r.metrics.outcome("accepted")
		return nil
	case fsm.AE4:
		rj := payload.(*pdu.AAssociateRJ)
		r.deliver(primitive.FromRejectPDU(rj))
		r.metrics.outcome("rejected")
		return nil
	case fsm.AE5:
		r.resetARTIM()
		return nil
	case fsm.AE6:
		r.stopARTIM()
		rq := payload.(*pdu.AAssociateRQ)
		r.deliver(primitive.FromRequestPDU(rq))
		return nil
	case fsm.AE7:
		resp, ok := payload.(*primitive.AAssociate)
		if !ok {
			return fmt.Errorf("dul: AE-7 needs an A-ASSOCIATE accept primitive")
		}
		ac, err := primitive.ToAcceptPDU(resp, r.cfg.EnforceUIDConformance)
		r.sendPDU(ac, err)
		r.metrics.outcome("accepted")
		return err
	case fsm.AE8:
		resp, ok := payload.(*primitive.AAssociate)
		if !ok {
			return fmt.Errorf("dul: AE-8 needs an A-ASSOCIATE reject primitive")
		}
		rj, err := primitive.ToRejectPDU(resp)
		r.sendPDU(rj, err)
		r.resetARTIM()
		r.metrics.outcome("rejected")
		return err
	case fsm.DT1:
		p, ok := payload.(*primitive.PData)
		if !ok {
			return fmt.Errorf("dul: DT-1 needs a P-DATA primitive")
		}
		tf, err := primitive.ToPDataTF(p)
		r.sendPDU(tf, err)
		return err
	case fsm.DT2, fsm.AR6:
		tf := payload.(*pdu.PDataTF)
		r.deliver(primitive.FromPDataTF(tf))
		return nil
	case fsm.AR1:
		r.sendPDU(primitive.ToReleaseRequestPDU(), nil)
		return nil
	case fsm.AR2, fsm.AR8:
		r.deliver(&primitive.ARelease{Requested: true})
		return nil
	case fsm.AR3:
		r.deliver(&primitive.ARelease{Requested: false})
		r.closeTransport()
		r.metrics.outcome("released")
		return nil
	case fsm.AR4:
		r.sendPDU(primitive.ToReleaseResponsePDU(), nil)
		r.resetARTIM()
		return nil
	case fsm.AR5:
		r.stopARTIM()
		return nil
	case fsm.AR7:
		p, ok := payload.(*primitive.PData)
		if !ok {
			return fmt.Errorf("dul: AR-7 needs a P-DATA primitive")
		}
		tf, err := primitive.ToPDataTF(p)
		r.sendPDU(tf, err)
		return err
	case fsm.AR9:
		r.sendPDU(primitive.ToReleaseResponsePDU(), nil)
		return nil
	case fsm.AR10:
		r.deliver(&primitive.ARelease{Requested: false})
		r.metrics.outcome("released")
		return nil
	case fsm.AA1:
		ab, ok := payload.(*primitive.AAbort)
		if !ok {
			ab = &primitive.AAbort{Source: dulerrors.AbortSourceServiceUser}
		}
		r.sendPDU(primitive.ToAbortPDU(ab), nil)
		r.resetARTIM()
		return nil
	case fsm.AA2:
		r.stopARTIM()
		r.closeTransport()
		r.metrics.outcome("aborted")
		return nil
	case fsm.AA3:
		if ab, ok := payload.(*pdu.AAbort); ok {
			r.deliver(primitive.FromAbortPDU(ab))
		} else {
			r.deliver(&primitive.APAbort{Reason: dulerrors.AbortReasonNotSpecified})
		}
		r.closeTransport()
		r.metrics.outcome("aborted")
		return nil
	case fsm.AA4:
		r.deliver(&primitive.APAbort{Reason: dulerrors.AbortReasonNotSpecified})
		return nil
	case fsm.AA5:
		r.stopARTIM()
		return nil
	case fsm.AA6:
		return nil // ignore the PDU
	case fsm.AA7:
		return nil
	case fsm.AA8:
		pa := &primitive.APAbort{Reason: dulerrors.AbortReasonUnexpectedPDU}
		if payload == nil {
			// No decoded PDU behind the event (e.g. Evt19): reason not-specified.
			pa.Reason = dulerrors.AbortReasonNotSpecified
		}
		r.sendPDU(pa.ToAbortPDU(), nil)
		r.deliver(pa)
		r.resetARTIM()
		r.metrics.outcome("aborted")
		return nil
	default:
		return nil
	}
}

// marshalPDU returns the complete wire bytes (header and body) for p.
// Every per-type Encode already calls pdu.EncodeHeader itself, so this
// is just the dispatch, not a second wrapping.
func marshalPDU(p pdu.PDU, strict bool) ([]byte, error) {
	switch v := p.(type) {
	case *pdu.AAssociateRQ:
		return v.Encode(strict)
	case *pdu.AAssociateAC:
		return v.Encode(strict)
	case *pdu.AAssociateRJ:
		return v.Encode(), nil
	case *pdu.PDataTF:
		return v.Encode()
	case *pdu.AReleaseRQ:
		return v.Encode(), nil
	case *pdu.AReleaseRP:
		return v.Encode(), nil
	case *pdu.AAbort:
		return v.Encode(), nil
	default:
		return nil, fmt.Errorf("dul: unsupported outbound PDU type %T", p)
	}
}

func pduTypeName(t byte) string {
	switch t {
	case pdu.TypeAssociateRQ:
		return "A-ASSOCIATE-RQ"
	case pdu.TypeAssociateAC:
		return "A-ASSOCIATE-AC"
	case pdu.TypeAssociateRJ:
		return "A-ASSOCIATE-RJ"
	case pdu.TypePDataTF:
		return "P-DATA-TF"
	case pdu.TypeReleaseRQ:
		return "A-RELEASE-RQ"
	case pdu.TypeReleaseRP:
		return "A-RELEASE-RP"
	case pdu.TypeAbort:
		return "A-ABORT"
	default:
		return "unknown"
	}
}
