package config

import (
	"context"
	"errors"
	"time"

	mongorepo "github.com/sustainhire/internship-intake/internal/repositories/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the lookup indexes on the internship collection.
// None are unique: identical resubmissions are stored as separate documents.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return errors.New("mongo database is nil; call InitMongo() first")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := db.Collection(mongorepo.ApplicationCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "submittedAt", Value: -1}},
			Options: options.Index().SetName("by_email_submitted"),
		},
		{
			Keys:    bson.D{{Key: "submittedAt", Value: -1}},
			Options: options.Index().SetName("by_submitted"),
		},
	})
	return err
}
