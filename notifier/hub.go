package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/bitmark-inc/relief-api/schema"
)

// Hub fans signals out to local subscribers. It is the in-memory broker and
// the local end of every remote one.
type Hub struct {
	mu     sync.Mutex
	subs   map[schema.Table]map[*subscription]struct{}
	closed bool
	now    func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		subs: map[schema.Table]map[*subscription]struct{}{},
		now:  time.Now,
	}
}

type subscription struct {
	hub   *Hub
	table schema.Table
	ch    chan Signal
	done  chan struct{}
	once  sync.Once
}

func (s *subscription) Signals() <-chan Signal {
	return s.ch
}

func (s *subscription) Close() error {
	s.once.Do(func() {
		s.hub.mu.Lock()
		if subs, ok := s.hub.subs[s.table]; ok {
			delete(subs, s)
			if len(subs) == 0 {
				delete(s.hub.subs, s.table)
			}
		}
		close(s.ch)
		s.hub.mu.Unlock()
		close(s.done)
	})
	return nil
}

// Subscribe registers a subscriber until Close is called or ctx is done
func (h *Hub) Subscribe(ctx context.Context, table schema.Table) (Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrClosed
	}

	s := &subscription{
		hub:   h,
		table: table,
		ch:    make(chan Signal, 1),
		done:  make(chan struct{}),
	}

	if _, ok := h.subs[table]; !ok {
		h.subs[table] = map[*subscription]struct{}{}
	}
	h.subs[table][s] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()

	return s, nil
}

// Publish delivers a signal stamped with the current time
func (h *Hub) Publish(_ context.Context, table schema.Table) error {
	return h.Deliver(Signal{Table: table, At: h.now()})
}

// Deliver hands the signal to every subscriber of its table without blocking
func (h *Hub) Deliver(sig Signal) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	for s := range h.subs[sig.Table] {
		select {
		case s.ch <- sig:
		default:
			// a signal is already pending, the subscriber will refetch anyway
		}
	}
	return nil
}

// Subscribers counts live subscriptions of a table
func (h *Hub) Subscribers(table schema.Table) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[table])
}

// Close ends every subscription
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true

	subs := make([]*subscription, 0)
	for _, set := range h.subs {
		for s := range set {
			subs = append(subs, s)
		}
	}
	h.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
	return nil
}
