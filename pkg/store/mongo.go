package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rickerduniya/Sayanho-sub002/pkg/errors"
)

// MongoStore persists designs in a MongoDB collection, one document per
// design keyed by its ID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and verifies the connection with
// a ping before returning.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping mongodb")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

func (s *MongoStore) Create(ctx context.Context, d *Design) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, d); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New(errors.ErrCodeInvalidInput, "design %s already exists", d.ID)
		}
		return errors.Wrap(errors.ErrCodeStorage, err, "insert design %s", d.ID)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Design, error) {
	var d Design
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeDesignNotFound, "design %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "load design %s", id)
	}
	return &d, nil
}

func (s *MongoStore) Update(ctx context.Context, d *Design) error {
	d.UpdatedAt = time.Now().UTC()

	// CreatedAt is preserved server-side rather than trusted from the caller.
	res, err := s.coll.UpdateByID(ctx, d.ID, bson.M{"$set": bson.M{
		"name":       d.Name,
		"schematic":  d.Schematic,
		"plan":       d.Plan,
		"updated_at": d.UpdatedAt,
	}})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "update design %s", d.ID)
	}
	if res.MatchedCount == 0 {
		return errors.New(errors.ErrCodeDesignNotFound, "design %s not found", d.ID)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete design %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeDesignNotFound, "design %s not found", id)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]Summary, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "name": 1, "updated_at": 1}).
		SetSort(bson.M{"_id": 1})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list designs")
	}
	defer cur.Close(ctx)

	var out []Summary
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "decode design list")
	}
	return out, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
