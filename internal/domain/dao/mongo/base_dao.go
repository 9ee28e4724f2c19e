// Package mongo provides MongoDB-based DAO implementations.
package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// baseMongoDAO provides common MongoDB operations for all entity DAOs.
type baseMongoDAO[T any, D any] struct {
	collection *mongo.Collection
}

// newBaseMongoDAO creates a new base MongoDB DAO instance.
func newBaseMongoDAO[T any, D any](db *mongo.Database, collectionName string) *baseMongoDAO[T, D] {
	return &baseMongoDAO[T, D]{
		collection: db.Collection(collectionName),
	}
}

// getCollection returns the MongoDB collection.
func (d *baseMongoDAO[T, D]) getCollection() *mongo.Collection {
	return d.collection
}

// count returns the count of documents matching the filter.
func (d *baseMongoDAO[T, D]) count(ctx context.Context, filter bson.M) (int64, error) {
	return d.collection.CountDocuments(ctx, filter)
}

// existsBy checks if a document exists by a field value.
func (d *baseMongoDAO[T, D]) existsBy(ctx context.Context, field string, value any) (bool, error) {
	count, err := d.collection.CountDocuments(ctx, bson.M{field: value})
	return count > 0, err
}

// findOneByFilter finds a single document matching the filter.
func (d *baseMongoDAO[T, D]) findOneByFilter(ctx context.Context, filter bson.M, result any) error {
	return d.collection.FindOne(ctx, filter).Decode(result)
}

// findManyByFilter finds all documents matching the filter.
func (d *baseMongoDAO[T, D]) findManyByFilter(ctx context.Context, filter bson.M, opts *options.FindOptions, results any) error {
	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

// insertOne inserts a single document.
func (d *baseMongoDAO[T, D]) insertOne(ctx context.Context, doc any) error {
	_, err := d.collection.InsertOne(ctx, doc)
	return err
}

// updateOne updates a single document matching the filter.
func (d *baseMongoDAO[T, D]) updateOne(ctx context.Context, filter bson.M, update bson.M) error {
	_, err := d.collection.UpdateOne(ctx, filter, update)
	return err
}

// findOneAndUpdate updates a single document and decodes its post-update
// state into result.
func (d *baseMongoDAO[T, D]) findOneAndUpdate(ctx context.Context, filter bson.M, update bson.M, result any) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return d.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(result)
}

// deleteOne deletes a single document matching the filter.
func (d *baseMongoDAO[T, D]) deleteOne(ctx context.Context, filter bson.M) error {
	_, err := d.collection.DeleteOne(ctx, filter)
	return err
}
