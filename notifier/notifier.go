// Package notifier delivers "table changed" signals from the datastore to
// live views. Signals carry no row data; receivers refetch.
package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/bitmark-inc/relief-api/schema"
)

const logPrefix = "notifier"

// DefaultChannel is the channel name shared by all backends
const DefaultChannel = "relief_changes"

var ErrClosed = fmt.Errorf("notifier is closed")

// Signal tells that rows of a table were inserted, updated or deleted
type Signal struct {
	Table schema.Table
	At    time.Time
}

// Subscription is a stream of signals for a single table. A subscriber that
// falls behind receives one pending signal instead of a backlog.
type Subscription interface {
	Signals() <-chan Signal
	Close() error
}

// Notifier hands out subscriptions
type Notifier interface {
	Subscribe(ctx context.Context, table schema.Table) (Subscription, error)
}

// Publisher announces a change of a table
type Publisher interface {
	Publish(ctx context.Context, table schema.Table) error
}

// Broker is a notifier backend
type Broker interface {
	Notifier
	Publisher
	Close() error
}
