package notifier

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverAMQP     = "amqp"
)

// Config selects and configures a broker
type Config struct {
	Driver  string
	Channel string

	PostgresConn string
	RedisConn    string
	AMQPURL      string
}

// Open creates the broker named by the config driver. The postgres driver
// needs db for publishing.
func Open(ctx context.Context, cfg Config, db *sql.DB) (Broker, error) {
	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	switch cfg.Driver {
	case "", DriverMemory:
		return NewHub(), nil
	case DriverPostgres:
		return NewPostgresNotifier(cfg.PostgresConn, db, channel)
	case DriverRedis:
		opts, err := redis.ParseURL(cfg.RedisConn)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return NewRedisNotifier(ctx, redis.NewClient(opts), channel)
	case DriverAMQP:
		exchange := cfg.Channel
		if exchange == "" {
			exchange = DefaultExchange
		}
		return NewAMQPNotifier(cfg.AMQPURL, exchange)
	}

	return nil, fmt.Errorf("unknown notifier driver %q", cfg.Driver)
}

// TriggerBacked reports whether the driver learns about writes from database
// triggers instead of explicit publishing.
func TriggerBacked(driver string) bool {
	return driver == DriverPostgres
}
