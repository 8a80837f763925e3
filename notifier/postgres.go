package notifier

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/schema"
)

const (
	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
	listenerPingInterval = 90 * time.Second
)

// PostgresNotifier turns LISTEN/NOTIFY payloads into signals. The payload is
// the name of the changed table, as sent by the triggers of InstallTriggers.
type PostgresNotifier struct {
	*Hub
	db       *sql.DB
	listener *pq.Listener
	channel  string
	tables   []schema.Table

	done chan struct{}
	wg   sync.WaitGroup
}

func NewPostgresNotifier(conn string, db *sql.DB, channel string) (*PostgresNotifier, error) {
	listener := pq.NewListener(conn, listenerMinReconnect, listenerMaxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"event":  ev,
				"error":  err,
			}).Warn("postgres listener event")
		}
	})

	if err := listener.Listen(channel); err != nil {
		listener.Close()
		return nil, err
	}

	n := &PostgresNotifier{
		Hub:      NewHub(),
		db:       db,
		listener: listener,
		channel:  channel,
		tables:   schema.WatchedTables,
		done:     make(chan struct{}),
	}

	n.wg.Add(1)
	go n.loop()

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"channel": channel,
	}).Info("listening on postgres channel")

	return n, nil
}

func (n *PostgresNotifier) loop() {
	defer n.wg.Done()

	for {
		select {
		case <-n.done:
			return
		case msg := <-n.listener.Notify:
			if msg == nil {
				// reconnected, changes may have been missed
				log.WithField("prefix", logPrefix).Info("postgres listener reconnected")
				for _, t := range n.tables {
					n.deliver(t)
				}
				continue
			}
			n.deliver(schema.Table(msg.Extra))
		case <-time.After(listenerPingInterval):
			go func() {
				if err := n.listener.Ping(); err != nil {
					log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Warn("ping postgres listener")
				}
			}()
		}
	}
}

func (n *PostgresNotifier) deliver(table schema.Table) {
	if err := n.Deliver(Signal{Table: table, At: time.Now()}); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "table": table, "error": err}).Debug("drop signal")
	}
}

// Publish sends a notification on the channel. Writes through the relational
// store are announced by triggers and do not need it.
func (n *PostgresNotifier) Publish(ctx context.Context, table schema.Table) error {
	if _, err := n.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", n.channel, string(table)); err != nil {
		sentry.CaptureException(err)
		return err
	}
	return nil
}

func (n *PostgresNotifier) Close() error {
	close(n.done)
	n.wg.Wait()
	err := n.listener.Close()
	n.Hub.Close()
	return err
}
