package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"storefront_service/internal/domain"
)

// storeError classifies driver failures into the store-unavailable category
// when the server could not be reached, and passes everything else through as
// an internal error.
func storeError(op string, err error) error {
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

type mongoDiagnostics struct {
	db *mongo.Database
}

// NewMongoDiagnostics exposes store reachability for the /test endpoint.
func NewMongoDiagnostics(db *mongo.Database) domain.Diagnostics {
	return &mongoDiagnostics{db: db}
}

func (d *mongoDiagnostics) Ping(ctx context.Context) error {
	if err := d.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return storeError("ping failed", err)
	}
	return nil
}

func (d *mongoDiagnostics) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := d.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, storeError("could not list collections", err)
	}
	return names, nil
}
