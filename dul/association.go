package dul

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/dicomnet/dulengine/duconfig"
	"github.com/dicomnet/dulengine/fsm"
)

// Dial opens a TCP connection to address and returns a Reactor ready to
// drive the requestor side of an association. The caller still issues
// the A-ASSOCIATE request primitive via SendPrimitive.
func Dial(ctx context.Context, address string, cfg duconfig.Config) (*Reactor, error) {
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("dul: dial %s: %w", address, err)
	}
	r := New(conn, RoleRequestor, cfg)
	r.Start()
	return r, nil
}

// Accept wraps an already-accepted connection (e.g. from net.Listener.Accept)
// as the acceptor side of an association.
func Accept(conn net.Conn, cfg duconfig.Config) *Reactor {
	r := New(conn, RoleAcceptor, cfg)
	r.Start()
	return r
}

// SendPrimitive hands a local service primitive to the reactor, which
// raises the matching DUL event on its run-loop goroutine. p must be one
// of the types fsm.EventForPrimitive accepts: *primitive.AAssociate,
// *primitive.ARelease, *primitive.AAbort, or *primitive.PData.
func (r *Reactor) SendPrimitive(ctx context.Context, p interface{}) error {
	select {
	case r.userEventCh <- p:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-r.stopCh:
		return fmt.Errorf("dul: reactor stopped")
	}
}

// NextIndication blocks for the next primitive the provider has for the
// service user — an indication (peer-initiated) or a confirmation
// (response to a prior local request) — or returns ctx.Err() first.
func (r *Reactor) NextIndication(ctx context.Context) (interface{}, error) {
	return r.indications.pop(ctx)
}

// PeekNextIndication returns the next queued primitive without removing
// it, or ok=false if nothing is queued yet.
func (r *Reactor) PeekNextIndication() (interface{}, bool) {
	return r.indications.peek()
}

// KillDUL tears the association down immediately: it closes the
// transport without running the release or abort handshake and stops
// the run loop. Use this for a local fault the state machine has no
// graceful action for, not as the normal way to end an association.
func (r *Reactor) KillDUL() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	r.transport.Close()
	r.stopARTIM()
}

// StopDUL stops the run loop and reports whether the association had
// already returned to Sta1 (idle) — i.e. whether it ended cleanly
// through a release or abort exchange rather than being killed mid-flight.
func (r *Reactor) StopDUL() bool {
	idle := r.State() == fsm.Sta1
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	return idle
}

// Done returns a channel closed once the run loop has exited, useful for
// tests and callers that want to wait for teardown to finish.
func (r *Reactor) Done() <-chan struct{} {
	return r.doneCh
}

// WaitIdle blocks until the reactor reaches Sta1 or ctx ends, used by
// callers that issued a release/abort and want to know when it's safe to
// discard the reactor.
func (r *Reactor) WaitIdle(ctx context.Context) error {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		if r.State() == fsm.Sta1 {
			return nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
