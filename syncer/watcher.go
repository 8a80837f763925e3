// Package syncer keeps live snapshots of the relief collections. A watcher
// refetches its whole collection on every change signal and replaces the
// snapshot, so duplicate or reordered signals cannot make it drift.
package syncer

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/relief-api/notifier"
	"github.com/bitmark-inc/relief-api/schema"
)

const logPrefix = "syncer"

var ErrStopped = fmt.Errorf("watcher is stopped")

// Scope selects the slice of a collection a view shows
type Scope struct {
	AreaID uuid.UUID
	View   string
}

// Fetcher runs the authoritative query of a collection
type Fetcher[T any] func(ctx context.Context, scope Scope) ([]T, error)

// Snapshot is the visible state of a watched collection. Items are replaced
// wholesale and must not be modified by readers.
type Snapshot[T any] struct {
	Items          []T
	LastFetchError error
	Scope          Scope
	Generation     uint64
	Version        uint64
	FetchedAt      time.Time
}

// Watcher is a cancellable subscription task per collection and scope. A
// scope change bumps the generation, and results of older generations are
// dropped when they land.
type Watcher[T any] struct {
	table    schema.Table
	notifier notifier.Notifier
	fetch    Fetcher[T]
	metrics  tally.Scope
	now      func() time.Time

	mu         sync.Mutex
	snapshot   Snapshot[T]
	loaded     bool
	scope      Scope
	generation uint64
	cancel     context.CancelFunc
	listeners  map[chan struct{}]struct{}
	stopped    bool
	tasks      sync.WaitGroup
}

type options struct {
	metrics tally.Scope
	now     func() time.Time
}

type Option func(*options)

// WithMetrics reports refetch counters and latency to the scope
func WithMetrics(scope tally.Scope) Option {
	return func(o *options) {
		o.metrics = scope
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func NewWatcher[T any](table schema.Table, n notifier.Notifier, fetch Fetcher[T], opts ...Option) *Watcher[T] {
	o := options{
		metrics: tally.NoopScope,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Watcher[T]{
		table:     table,
		notifier:  n,
		fetch:     fetch,
		metrics:   o.metrics.Tagged(map[string]string{"table": string(table)}),
		now:       o.now,
		listeners: map[chan struct{}]struct{}{},
	}
}

func (w *Watcher[T]) Table() schema.Table {
	return w.table
}

// Watch mounts the watcher on a scope. It is SetScope under the name used for
// the first mount.
func (w *Watcher[T]) Watch(ctx context.Context, scope Scope) error {
	return w.SetScope(ctx, scope)
}

// SetScope cancels the task of the previous scope, subscribes to the table
// and fetches the new scope before returning. Only a failed subscription is
// returned; a failed fetch is kept in the snapshot.
func (w *Watcher[T]) SetScope(ctx context.Context, scope Scope) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return ErrStopped
	}

	if w.cancel != nil {
		w.cancel()
	}
	w.generation++
	gen := w.generation
	w.scope = scope

	taskCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.tasks.Add(1)
	w.mu.Unlock()

	sub, err := w.notifier.Subscribe(taskCtx, w.table)
	if err != nil {
		cancel()
		w.tasks.Done()
		return err
	}

	w.refetch(taskCtx, gen, scope)

	go w.run(taskCtx, gen, scope, sub)
	return nil
}

func (w *Watcher[T]) run(ctx context.Context, gen uint64, scope Scope, sub notifier.Subscription) {
	defer w.tasks.Done()
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-sub.Signals():
			if !ok {
				return
			}
			w.refetch(ctx, gen, scope)
		}
	}
}

// Refresh refetches the current scope, as a manual retry after a failure
func (w *Watcher[T]) Refresh(ctx context.Context) {
	w.mu.Lock()
	gen, scope, stopped := w.generation, w.scope, w.stopped
	w.mu.Unlock()

	if stopped || gen == 0 {
		return
	}
	w.refetch(ctx, gen, scope)
}

func (w *Watcher[T]) refetch(ctx context.Context, gen uint64, scope Scope) {
	w.metrics.Counter("refetch").Inc(1)
	sw := w.metrics.Timer("refetch_latency").Start()
	items, err := w.fetch(ctx, scope)
	sw.Stop()

	if err != nil && ctx.Err() != nil {
		// the task was cancelled while fetching, the result has no owner
		w.metrics.Counter("stale_discarded").Inc(1)
		return
	}

	w.apply(gen, scope, items, err)
}

// apply installs a fetch result if it belongs to the current generation and
// reports whether the visible snapshot changed
func (w *Watcher[T]) apply(gen uint64, scope Scope, items []T, err error) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped || gen != w.generation {
		w.metrics.Counter("stale_discarded").Inc(1)
		log.WithFields(log.Fields{
			"prefix":     logPrefix,
			"table":      w.table,
			"generation": gen,
			"current":    w.generation,
		}).Debug("discard stale fetch result")
		return false
	}

	if err != nil {
		w.metrics.Counter("refetch_failed").Inc(1)
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"table":  w.table,
			"area":   scope.AreaID,
			"view":   scope.View,
			"error":  err,
		}).Error("refetch collection")
		sentry.CaptureException(err)

		changed := w.snapshot.LastFetchError == nil || w.snapshot.LastFetchError.Error() != err.Error()
		w.snapshot.LastFetchError = err
		if changed {
			w.publish()
		}
		return changed
	}

	if items == nil {
		items = []T{}
	}

	changed := !w.loaded ||
		w.snapshot.LastFetchError != nil ||
		w.snapshot.Scope != scope ||
		!reflect.DeepEqual(w.snapshot.Items, items)

	w.loaded = true
	w.snapshot.Items = items
	w.snapshot.LastFetchError = nil
	w.snapshot.Scope = scope
	w.snapshot.Generation = gen
	w.snapshot.FetchedAt = w.now()

	if changed {
		w.publish()
	}
	return changed
}

// publish bumps the version and ticks every listener, w.mu must be held
func (w *Watcher[T]) publish() {
	w.snapshot.Version++
	for ch := range w.listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Snapshot returns the visible state
func (w *Watcher[T]) Snapshot() Snapshot[T] {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot
}

// Changed ticks after every visible change. Ticks coalesce, a listener reads
// the latest Snapshot when it wakes up. The returned func unsubscribes.
func (w *Watcher[T]) Changed() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	w.mu.Lock()
	if w.stopped {
		close(ch)
	} else {
		w.listeners[ch] = struct{}{}
	}
	w.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			if _, ok := w.listeners[ch]; ok {
				delete(w.listeners, ch)
				close(ch)
			}
		})
	}
}

// Stop cancels the running task and waits for it to exit. In-flight results
// are discarded.
func (w *Watcher[T]) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	if w.cancel != nil {
		w.cancel()
	}
	for ch := range w.listeners {
		delete(w.listeners, ch)
		close(ch)
	}
	w.mu.Unlock()

	w.tasks.Wait()
}

// Frame is the transport form of a snapshot
type Frame struct {
	Table          schema.Table `json:"table"`
	View           string       `json:"view"`
	AreaID         uuid.UUID    `json:"area_id"`
	Items          interface{}  `json:"items"`
	LastFetchError string       `json:"last_fetch_error,omitempty"`
	Generation     uint64       `json:"generation"`
	Version        uint64       `json:"version"`
	FetchedAt      time.Time    `json:"fetched_at"`
}

func (w *Watcher[T]) Frame() Frame {
	s := w.Snapshot()

	f := Frame{
		Table:      w.table,
		View:       s.Scope.View,
		AreaID:     s.Scope.AreaID,
		Items:      s.Items,
		Generation: s.Generation,
		Version:    s.Version,
		FetchedAt:  s.FetchedAt,
	}
	if s.Items == nil {
		f.Items = []T{}
	}
	if s.LastFetchError != nil {
		f.LastFetchError = s.LastFetchError.Error()
	}
	return f
}
