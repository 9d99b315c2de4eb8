package report

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/transitlab/netlint/pkg/errors"
	"github.com/transitlab/netlint/pkg/retry"
)

// MongoStore persists reports in a MongoDB collection, keyed by report id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and uses the "reports"
// collection of the given database. The connection is verified with a
// ping before the store is returned.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to %s", uri)
	}
	err = retry.WithBackoff(ctx, func() error {
		return retry.Transient(client.Ping(ctx, nil))
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping %s", uri)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("reports"),
	}, nil
}

// Put saves a report, replacing any existing one with the same id.
func (s *MongoStore) Put(ctx context.Context, rep *Report) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": rep.ID},
		rep,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save report %s", rep.ID)
	}
	return nil
}

// Get returns the report with the given id.
func (s *MongoStore) Get(ctx context.Context, id string) (*Report, error) {
	var rep Report
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rep)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeReportNotFound, "report %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load report %s", id)
	}
	return &rep, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
