package relay

import "sync"

// Relay is a publish-style broadcast stream: it keeps no history, so a
// new subscriber only sees events published after it subscribed. Fan-out
// is synchronous, in subscription order, on the publisher's goroutine.
type Relay[T any] struct {
	mu   sync.Mutex
	subs []*Subscription[T]
}

func New[T any]() *Relay[T] {
	return &Relay[T]{}
}

// Subscribe registers handler for future events. Dispose the returned
// subscription to stop delivery.
func (r *Relay[T]) Subscribe(handler func(T)) *Subscription[T] {
	sub := &Subscription[T]{relay: r, handler: handler}
	r.mu.Lock()
	r.subs = append(r.subs, sub)
	r.mu.Unlock()
	return sub
}

// Publish delivers v to every current subscriber, in the order they
// subscribed. A subscription disposed mid-dispatch is skipped.
func (r *Relay[T]) Publish(v T) {
	r.mu.Lock()
	subs := append([]*Subscription[T](nil), r.subs...)
	r.mu.Unlock()

	for _, sub := range subs {
		sub.invoke(v)
	}
}

// Subscription is the disposable handle returned by Subscribe.
type Subscription[T any] struct {
	relay   *Relay[T]
	handler func(T)
}

func (s *Subscription[T]) invoke(v T) {
	s.relay.mu.Lock()
	handler := s.handler
	s.relay.mu.Unlock()
	if handler != nil {
		handler(v)
	}
}

// Dispose unsubscribes. After Dispose the handler is never called
// again; disposing twice is a no-op.
func (s *Subscription[T]) Dispose() {
	s.relay.mu.Lock()
	defer s.relay.mu.Unlock()

	s.handler = nil
	for i, sub := range s.relay.subs {
		if sub == s {
			s.relay.subs = append(s.relay.subs[:i], s.relay.subs[i+1:]...)
			break
		}
	}
}
