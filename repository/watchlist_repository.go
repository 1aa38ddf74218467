package repository

import (
	"context"
	"fmt"

	"marketfeed/customerrors"
	"marketfeed/database"
	"marketfeed/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WatchlistRepository interface {
	FindAll(ctx context.Context) ([]model.WatchlistEntry, error)
	Upsert(ctx context.Context, entry model.WatchlistEntry) error
	SaveAll(ctx context.Context, entries []model.WatchlistEntry) error
	UpdateName(ctx context.Context, symbol, name string) (*model.WatchlistEntry, error)
	DeleteBySymbol(ctx context.Context, symbol string) error
	DeleteBySymbolNotIn(ctx context.Context, symbols []string) (int64, error)
}

type MongoWatchlistRepository struct {
	collection *mongo.Collection
}

func NewWatchlistRepository(db *mongo.Database) WatchlistRepository {
	return &MongoWatchlistRepository{
		collection: db.Collection("watchlist"),
	}
}

func (r *MongoWatchlistRepository) FindAll(ctx context.Context) ([]model.WatchlistEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to execute find: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []model.WatchlistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode watchlist entries: %w", err)
	}

	return entries, nil
}

// Upsert keeps Add idempotent: re-adding a symbol refreshes its document
// instead of tripping a duplicate-key error.
func (r *MongoWatchlistRepository) Upsert(ctx context.Context, entry model.WatchlistEntry) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": entry.Symbol}, entry, opts)
	return err
}

// SaveAll bulk-upserts, so imports overlapping the current watchlist
// replace in place.
func (r *MongoWatchlistRepository) SaveAll(ctx context.Context, entries []model.WatchlistEntry) error {
	if len(entries) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(entries))
	for _, entry := range entries {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": entry.Symbol}).
			SetReplacement(entry).
			SetUpsert(true))
	}

	_, err := r.collection.BulkWrite(ctx, writes)
	if err != nil {
		return fmt.Errorf("failed to perform bulk upsert: %w", err)
	}

	return nil
}

func (r *MongoWatchlistRepository) UpdateName(ctx context.Context, symbol, name string) (*model.WatchlistEntry, error) {
	return database.UpdateGeneric[model.WatchlistEntry](ctx, r.collection, bson.M{"_id": symbol}, bson.M{"name": name})
}

func (r *MongoWatchlistRepository) DeleteBySymbol(ctx context.Context, symbol string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": symbol})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return customerrors.ErrWatchlistEntryNotFound
	}
	return nil
}

// DeleteBySymbolNotIn prunes every entry whose symbol is absent from the
// given set. Used by the csv import to make the file authoritative.
func (r *MongoWatchlistRepository) DeleteBySymbolNotIn(ctx context.Context, symbols []string) (int64, error) {
	filter := bson.M{
		"_id": bson.M{
			"$nin": symbols,
		},
	}

	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
