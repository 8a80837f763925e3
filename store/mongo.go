package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/relief-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	BoundaryStore
	Closer
	Pinger
}

// BoundaryStore - operations on area polygons
type BoundaryStore interface {
	UpsertBoundary(schema.Boundary) error
	BoundaryAt(schema.Location) (*schema.Boundary, error)
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

// UpsertBoundary - replace the polygon of an area
func (m *mongoDB) UpsertBoundary(b schema.Boundary) error {
	c := m.client.Database(m.database).Collection(schema.BoundaryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.ReplaceOne(ctx, bson.M{"area_id": b.AreaID}, b, options.Replace().SetUpsert(true)); err != nil {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"area_id": b.AreaID,
			"error":   err,
		}).Error("upsert area boundary")
		return err
	}

	return nil
}

// BoundaryAt - the area polygon containing the location
func (m *mongoDB) BoundaryAt(loc schema.Location) (*schema.Boundary, error) {
	c := m.client.Database(m.database).Collection(schema.BoundaryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var b schema.Boundary
	if err := c.FindOne(ctx, bson.M{
		"geometry": bson.M{
			"$geoIntersects": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{loc.Longitude, loc.Latitude},
				},
			},
		},
	}, options.FindOne().SetProjection(bson.M{
		"area_id":  1,
		"name":     1,
		"district": 1,
		"province": 1,
	})).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":  mongoLogPrefix,
		"lat":     loc.Latitude,
		"lng":     loc.Longitude,
		"area_id": b.AreaID,
	}).Debug("boundary lookup")

	return &b, nil
}
