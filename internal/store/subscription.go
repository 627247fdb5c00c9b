package store

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Next once the store or subscription is closed
// and every queued change has been consumed.
var ErrClosed = errors.New("store: subscription closed")

// Subscription delivers store changes to one subscriber, in emission order.
// Changes are queued without bound so a slow consumer never loses an
// acknowledgement or blocks the store.
type Subscription struct {
	mu     sync.Mutex
	queue  []Change
	signal chan struct{}
	doneCh chan struct{}
	closed bool

	// Done is closed when the subscription is closed.
	Done <-chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		signal: make(chan struct{}, 1),
		doneCh: make(chan struct{}),
	}
	s.Done = s.doneCh
	return s
}

// send queues a change and wakes a waiting Next (non-blocking).
func (s *Subscription) send(c Change) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, c)
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// TryNext pops the oldest queued change without waiting.
func (s *Subscription) TryNext() (Change, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return nil, false
	}
	c := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return c, true
}

// Next waits for the next change. Queued changes are still delivered after
// Close; ErrClosed is returned once the queue is drained.
func (s *Subscription) Next(ctx context.Context) (Change, error) {
	for {
		if c, ok := s.TryNext(); ok {
			return c, nil
		}
		select {
		case <-s.signal:
		case <-s.doneCh:
			if c, ok := s.TryNext(); ok {
				return c, nil
			}
			return nil, ErrClosed
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Pending returns the number of queued changes.
func (s *Subscription) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Close stops delivery of new changes. Safe to call more than once.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.doneCh)
}
