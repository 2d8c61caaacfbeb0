package database

import (
	"context"
	"fmt"
	"log"

	"octofit/internal/config"
	"octofit/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

// Migrate prepares the schema for the connection's driver: tables for
// Postgres, indexes for Mongo.
func (c *Connection) Migrate(ctx context.Context) error {
	switch c.Driver {
	case config.DriverPostgres:
		return MigrateDatabase(c.DB)
	case config.DriverMongo:
		return EnsureIndexes(ctx, c.MongoDB)
	}
	return nil
}

func MigrateDatabase(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Activity{},
		&models.Leaderboard{},
		&models.Workout{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// EnsureIndexes creates the unique email index and the lookup indexes used
// by the filtered views.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	log.Println("Ensuring mongo indexes...")

	indexes := map[string][]mongo.IndexModel{
		models.User{}.TableName(): {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "team_id", Value: 1}}},
		},
		models.Activity{}.TableName(): {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "activity_type", Value: 1}}},
		},
		models.Leaderboard{}.TableName(): {
			{Keys: bson.D{{Key: "rank", Value: 1}}},
			{Keys: bson.D{{Key: "team_id", Value: 1}, {Key: "rank", Value: 1}}},
		},
		models.Workout{}.TableName(): {
			{Keys: bson.D{{Key: "difficulty", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
	}

	for collection, specs := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, specs); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}

	log.Println("Mongo indexes ready")
	return nil
}
