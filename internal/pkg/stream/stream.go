// Package stream provides a cancellable handle for live-query
// subscriptions. Closing a Subscription stops the underlying listener;
// Close is idempotent and safe to call from any goroutine, including
// the listener callback itself. Done reports when the listener has
// fully drained.
package stream

import "sync"

type Subscription struct {
	stop func()
	done <-chan struct{}
	once sync.Once
}

// NewSubscription wires a handle to a running listener. stop requests
// termination; done is closed by the listener goroutine on exit.
func NewSubscription(stop func(), done <-chan struct{}) *Subscription {
	return &Subscription{stop: stop, done: done}
}

func (s *Subscription) Close() {
	s.once.Do(s.stop)
}

// Done reports listener termination, whether by Close or by an
// unrecoverable listener error.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}
