package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careconnect/pkg/config"
	mongotx "careconnect/pkg/db/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Settings"
)

// KeyValueStore holds string values per owner. A missing key reports ok=false.
// Writes made through the ctx passed to an ExecuteTransaction callback apply
// together, or not at all when the callback returns an error.
type KeyValueStore interface {
	GetItem(ctx context.Context, owner, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, owner, key, value string) error
	RemoveItem(ctx context.Context, owner, key string) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type item struct {
	Owner     string    `bson:"owner"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type mongoSettingsRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoSettingsRepository(cfg *config.Config) KeyValueStore {
	return &mongoSettingsRepository{
		cfg:        cfg,
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

func (r *mongoSettingsRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return mongotx.WithTimeout(ctx, timeout)
}

func (r *mongoSettingsRepository) GetItem(ctx context.Context, owner, key string) (string, bool, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var it item
	err := r.collection.FindOne(ctx, bson.M{"owner": owner, "key": key}).Decode(&it)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return it.Value, true, nil
}

func (r *mongoSettingsRepository) SetItem(ctx context.Context, owner, key, value string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{"owner": owner, "key": key}
	update := bson.M{"$set": item{
		Owner:     owner,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}}

	if _, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

func (r *mongoSettingsRepository) RemoveItem(ctx context.Context, owner, key string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"owner": owner, "key": key}); err != nil {
		return fmt.Errorf("failed to remove setting %s: %w", key, err)
	}
	return nil
}

func (r *mongoSettingsRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
