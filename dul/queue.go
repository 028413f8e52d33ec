package dul

import "context"

// indicationQueue is the bounded channel of primitives the reactor hands
// up to the service user (A-ASSOCIATE/A-RELEASE/A-ABORT indications and
// confirmations, P-DATA indications). Bounding it means a slow consumer
// applies backpressure to the reactor's run loop instead of the reactor
// silently buffering without limit.
type indicationQueue struct {
	ch chan interface{}
}

func newIndicationQueue(depth int) *indicationQueue {
	if depth <= 0 {
		depth = 1
	}
	return &indicationQueue{ch: make(chan interface{}, depth)}
}

// push enqueues p, blocking until there's room or ctx is done.
func (q *indicationQueue) push(ctx context.Context, p interface{}) error {
	select {
	case q.ch <- p:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pop blocks for the next primitive, or returns ctx.Err() if ctx ends
// first.
func (q *indicationQueue) pop(ctx context.Context) (interface{}, error) {
	select {
	case p := <-q.ch:
		return p, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// peek returns the next primitive without removing it, or ok=false if
// the queue is empty. Implemented by popping and immediately pushing
// back, which is safe here because the reactor is the only producer and
// callers of peek don't run concurrently with each other.
func (q *indicationQueue) peek() (interface{}, bool) {
	select {
	case p := <-q.ch:
		q.ch <- p
		return p, true
	default:
		return nil, false
	}
}

func (q *indicationQueue) len() int {
	return len(q.ch)
}
