// Package lifecycle is the only writer of help requests, offers, missing
// person reports and weather alerts. It authorizes the actor, checks the
// state machine and validates input before writing through the store.
package lifecycle

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/store"
)

const logPrefix = "lifecycle"

// Store is the part of the entity store the engine writes through
type Store interface {
	store.RequestStore
	store.OfferStore
	store.MissingPersonStore
	store.AlertStore
}

type Engine struct {
	store Store
	now   func() time.Time
}

type Option func(*Engine)

// WithClock replaces the clock used for timestamps
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func New(s Store, opts ...Option) *Engine {
	e := &Engine{
		store: s,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) stamp() time.Time {
	return e.now().UTC()
}

func audit(sess SessionContext, action string, fields log.Fields) {
	entry := log.WithFields(log.Fields{
		"prefix": logPrefix,
		"actor":  sess.UserID,
		"role":   sess.Role,
	})
	entry.WithFields(fields).Info(action)
}
