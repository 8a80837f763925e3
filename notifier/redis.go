package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/relief-api/schema"
)

// RedisNotifier shares signals between api instances over redis pub/sub.
// Messages published while the connection is down are lost, so every watched
// table is signalled when the subscription is restored.
type RedisNotifier struct {
	*Hub
	client  *redis.Client
	pubsub  *redis.PubSub
	channel string
	tables  []schema.Table

	wg sync.WaitGroup
}

func NewRedisNotifier(ctx context.Context, client *redis.Client, channel string) (*RedisNotifier, error) {
	pubsub := client.Subscribe(ctx, channel)

	// wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	n := &RedisNotifier{
		Hub:     NewHub(),
		client:  client,
		pubsub:  pubsub,
		channel: channel,
		tables:  schema.WatchedTables,
	}

	n.wg.Add(1)
	go n.loop()

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"channel": channel,
	}).Info("subscribed to redis channel")

	return n, nil
}

func (n *RedisNotifier) loop() {
	defer n.wg.Done()

	for msg := range n.pubsub.ChannelWithSubscriptions() {
		n.handle(msg)
	}
}

func (n *RedisNotifier) handle(msg interface{}) {
	switch m := msg.(type) {
	case *redis.Subscription:
		// the initial confirmation is consumed by the constructor, so this
		// is a resubscribe after a reconnect
		if m.Kind != "subscribe" {
			return
		}
		log.WithField("prefix", logPrefix).Info("redis subscription restored")
		for _, t := range n.tables {
			n.deliver(t)
		}
	case *redis.Message:
		n.deliver(schema.Table(m.Payload))
	}
}

func (n *RedisNotifier) deliver(table schema.Table) {
	if err := n.Deliver(Signal{Table: table, At: time.Now()}); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "table": table, "error": err}).Debug("drop signal")
	}
}

func (n *RedisNotifier) Publish(ctx context.Context, table schema.Table) error {
	return n.client.Publish(ctx, n.channel, string(table)).Err()
}

func (n *RedisNotifier) Close() error {
	err := n.pubsub.Close()
	n.wg.Wait()
	n.Hub.Close()
	return err
}
