package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/pmafa/internal/content"
)

const (
	// CollectionName holds one document per page kind keyed by _id.
	CollectionName = "page_documents"

	defaultMongoDatabase = "pmafa"
	connectTimeout       = 10 * time.Second
)

// MongoStore keeps documents in MongoDB as {_id: kind, body: {...}}.
type MongoStore struct {
	client   *mongo.Client
	database string
	coll     *mongo.Collection
}

type mongoEnvelope struct {
	ID        string    `bson:"_id"`
	Body      bson.Raw  `bson:"body"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// NewMongoStore connects and pings the server before returning.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	database = strings.TrimSpace(database)
	if database == "" {
		database = defaultMongoDatabase
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client:   client,
		database: database,
		coll:     client.Database(database).Collection(CollectionName),
	}, nil
}

func (s *MongoStore) Load(ctx context.Context, kind content.Kind, dst any) (bool, error) {
	var env mongoEnvelope
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: string(kind)}}).Decode(&env)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", kind, err)
	}
	if err := fromBSON(env.Body, dst); err != nil {
		return true, fmt.Errorf("decode %s: %w", kind, err)
	}
	return true, nil
}

func (s *MongoStore) InsertIfAbsent(ctx context.Context, kind content.Kind, doc any) error {
	body, err := toBSON(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	now := time.Now().UTC()
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "body", Value: body},
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	}}}
	_, err = s.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: string(kind)}}, update, options.UpdateOne().SetUpsert(true))
	// 并发 upsert 时另一个请求可能已插入
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert %s: %w", kind, err)
	}
	return nil
}

func (s *MongoStore) Save(ctx context.Context, kind content.Kind, doc any) error {
	body, err := toBSON(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	now := time.Now().UTC()
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "body", Value: body}, {Key: "updatedAt", Value: now}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now}}},
	}
	if _, err := s.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: string(kind)}}, update, options.UpdateOne().SetUpsert(true)); err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, kind content.Kind) error {
	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: string(kind)}}); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// toBSON converts a JSON-tagged value into a BSON document via relaxed
// Extended JSON so the stored field names match the JSON ones.
func toBSON(doc any) (bson.D, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out bson.D
	if err := bson.UnmarshalExtJSON(raw, false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// fromBSON is the inverse of toBSON.
func fromBSON(body bson.Raw, dst any) error {
	if len(body) == 0 {
		return errors.New("empty body")
	}
	raw, err := bson.MarshalExtJSON(body, false, false)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
