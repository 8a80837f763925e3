package notifier

import (
	"context"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/schema"
)

// DefaultExchange is the topic exchange signals are routed through. The
// routing key is the table name.
const DefaultExchange = "relief.changes"

const (
	reconnectMinBackoff = time.Second
	reconnectMaxBackoff = 30 * time.Second
)

// AMQPNotifier shares signals between api instances through a topic exchange.
// Each instance binds its own exclusive queue. A lost connection is redialed
// and every watched table is signalled once the queue is bound again, since
// anything published in between went to the old queue.
type AMQPNotifier struct {
	*Hub
	url      string
	exchange string
	tables   []schema.Table

	// guards conn and pub, which are swapped on reconnect
	mu   sync.Mutex
	conn *amqp.Connection
	pub  *amqp.Channel

	done chan struct{}
	wg   sync.WaitGroup
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	n := &AMQPNotifier{
		Hub:      NewHub(),
		url:      url,
		exchange: exchange,
		tables:   schema.WatchedTables,
		done:     make(chan struct{}),
	}

	deliveries, closed, err := n.connect()
	if err != nil {
		n.Hub.Close()
		return nil, err
	}

	n.wg.Add(1)
	go n.loop(deliveries, closed)

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"exchange": exchange,
	}).Info("bound to amqp exchange")

	return n, nil
}

// connect dials the broker and binds a fresh queue
func (n *AMQPNotifier) connect() (<-chan amqp.Delivery, <-chan *amqp.Error, error) {
	conn, err := amqp.Dial(n.url)
	if err != nil {
		return nil, nil, err
	}
	closed := conn.NotifyClose(make(chan *amqp.Error, 1))

	pub, deliveries, err := n.setup(conn)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	select {
	case <-n.done:
		conn.Close()
		return nil, nil, ErrClosed
	default:
	}

	n.conn, n.pub = conn, pub
	return deliveries, closed, nil
}

func (n *AMQPNotifier) setup(conn *amqp.Connection) (*amqp.Channel, <-chan amqp.Delivery, error) {
	pub, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}

	if err := pub.ExchangeDeclare(
		n.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,
	); err != nil {
		return nil, nil, err
	}

	sub, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}

	q, err := sub.QueueDeclare(
		"",    // server named
		false, // durable
		true,  // autoDelete
		true,  // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, nil, err
	}

	if err := sub.QueueBind(q.Name, "#", n.exchange, false, nil); err != nil {
		return nil, nil, err
	}

	deliveries, err := sub.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		return nil, nil, err
	}
	return pub, deliveries, nil
}

func (n *AMQPNotifier) loop(deliveries <-chan amqp.Delivery, closed <-chan *amqp.Error) {
	defer n.wg.Done()

	for {
		n.consume(deliveries, closed)

		var ok bool
		if deliveries, closed, ok = n.reconnect(); !ok {
			return
		}

		log.WithField("prefix", logPrefix).Info("amqp connection restored")
		n.resync()
	}
}

// consume returns once the connection is gone
func (n *AMQPNotifier) consume(deliveries <-chan amqp.Delivery, closed <-chan *amqp.Error) {
	for {
		select {
		case d, ok := <-deliveries:
			if !ok {
				log.WithField("prefix", logPrefix).Info("amqp deliveries closed")
				return
			}
			n.handle(d)
		case err := <-closed:
			if err != nil {
				log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Warn("amqp connection lost")
			}
			return
		}
	}
}

// reconnect redials until it succeeds or the notifier is closed
func (n *AMQPNotifier) reconnect() (<-chan amqp.Delivery, <-chan *amqp.Error, bool) {
	backoff := reconnectMinBackoff
	for {
		select {
		case <-n.done:
			return nil, nil, false
		case <-time.After(backoff):
		}

		deliveries, closed, err := n.connect()
		if err == nil {
			return deliveries, closed, true
		}
		if err == ErrClosed {
			return nil, nil, false
		}

		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"error":   err,
			"backoff": backoff,
		}).Warn("redial amqp")
		backoff = nextBackoff(backoff)
	}
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > reconnectMaxBackoff {
		return reconnectMaxBackoff
	}
	return d
}

func (n *AMQPNotifier) handle(d amqp.Delivery) {
	at := d.Timestamp
	if at.IsZero() {
		at = time.Now()
	}
	n.deliver(Signal{Table: schema.Table(d.RoutingKey), At: at})
}

func (n *AMQPNotifier) resync() {
	now := time.Now()
	for _, t := range n.tables {
		n.deliver(Signal{Table: t, At: now})
	}
}

func (n *AMQPNotifier) deliver(sig Signal) {
	if err := n.Deliver(sig); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "table": sig.Table, "error": err}).Debug("drop signal")
	}
}

func (n *AMQPNotifier) Publish(ctx context.Context, table schema.Table) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.pub.PublishWithContext(ctx,
		n.exchange,    // exchange
		string(table), // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType: "text/plain",
			Timestamp:   time.Now().UTC(),
			Body:        []byte(table),
		})
}

func (n *AMQPNotifier) Close() error {
	close(n.done)

	var err error
	n.mu.Lock()
	if !n.conn.IsClosed() {
		err = n.conn.Close()
	}
	n.mu.Unlock()

	n.wg.Wait()
	n.Hub.Close()
	return err
}
