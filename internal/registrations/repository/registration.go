package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	registrationserrors "careconnect/internal/registrations/errors"
	"careconnect/pkg/config"
	mongotx "careconnect/pkg/db/mongo"
	"careconnect/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	CollectionName = "Registrations"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.Registration) error
	FindByEmail(ctx context.Context, email string) (*model.Registration, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoRegistrationRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoRegistrationRepository(cfg *config.Config) RegistrationRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRegistrationRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout leaves session contexts untouched so they stay bound to their transaction.
func (r *mongoRegistrationRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return mongotx.WithTimeout(ctx, timeout)
}

func (r *mongoRegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	reg.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, reg)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", registrationserrors.ErrEmailTaken, reg.Email)
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		reg.ID = oid.Hex()
	}

	return nil
}

func (r *mongoRegistrationRepository) FindByEmail(ctx context.Context, email string) (*model.Registration, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var reg model.Registration
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&reg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", registrationserrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to find registration: %w", err)
	}
	return &reg, nil
}

func (r *mongoRegistrationRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("failed to count registrations: %w", err)
	}
	return count > 0, nil
}

func (r *mongoRegistrationRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
