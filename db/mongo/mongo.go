package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zenlead/studio/core/logger"
)

type MongoRepository struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewMongoRepository() *MongoRepository {
	client := GetMongoClient()
	return &MongoRepository{
		db:      client.Database,
		timeout: time.Duration(client.Config.Timeout) * time.Second,
	}
}

func (r *MongoRepository) ReadOne(ctx context.Context, table string, filter map[string]any) (map[string]any, error) {
	coll := r.db.Collection(table)
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var result map[string]any
	err := coll.FindOne(ctx, bson.M(filter)).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, mongo.ErrNoDocuments
	}
	if err != nil {
		logger.Error("Query failed: %v", err)
		return nil, err
	}
	return result, nil
}

func (r *MongoRepository) ReadAll(ctx context.Context, table string, filter map[string]any) ([]map[string]any, error) {
	coll := r.db.Collection(table)
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.M(filter))
	if err != nil {
		logger.Error("Query failed: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []map[string]any
	err = cursor.All(ctx, &results)
	if err != nil {
		logger.Error("Failed to decode results: %v", err)
		return nil, err
	}

	return results, nil
}

func (r *MongoRepository) Update(ctx context.Context, table string, filter map[string]any, update map[string]any) error {
	coll := r.db.Collection(table)
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := coll.UpdateOne(ctx, bson.M(filter), bson.M(update))
	if err != nil {
		logger.Error("Update failed: %v", err)
		return err
	}
	return nil
}

func (r *MongoRepository) Upsert(ctx context.Context, table string, filter map[string]any, record map[string]any) error {
	coll := r.db.Collection(table)
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{"$set": bson.M(record)}
	_, err := coll.UpdateOne(ctx, bson.M(filter), update, options.Update().SetUpsert(true))
	if err != nil {
		logger.Error("Upsert failed: %v", err)
		return err
	}
	return nil
}

func (r *MongoRepository) Count(ctx context.Context, table string, filter map[string]any) (int64, error) {
	coll := r.db.Collection(table)
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	count, err := coll.CountDocuments(ctx, bson.M(filter))
	if err != nil {
		logger.Error("Count failed: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context, table string, indexes []mongo.IndexModel) error {
	coll := r.db.Collection(table)
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	indexView := coll.Indexes()
	_, err := indexView.CreateMany(ctx, indexes)
	if err != nil {
		logger.Error("Index creation failed: %v", err)
		return err
	}
	logger.Info("Index created successfully for collection %s", table)
	return nil
}

func ConvertToStruct[T any](source any) (T, error) {
	var result T

	bytes, err := bson.Marshal(source)
	if err != nil {
		return result, fmt.Errorf("marshal error: %v", err)
	}

	err = bson.Unmarshal(bytes, &result)
	if err != nil {
		return result, fmt.Errorf("unmarshal error: %v", err)
	}

	return result, nil
}
