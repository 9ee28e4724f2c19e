package di

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/connecthub/connecthub-go/internal/config"
)

// MongoDatabase wraps the MongoDB handle and its client
type MongoDatabase struct {
	DB     *mongo.Database
	Client *mongo.Client
}

// RedisDatabase wraps the Redis client. Client is nil when Redis is disabled;
// consumers fall back to in-process alternatives.
type RedisDatabase struct {
	Client *redis.Client
}

// DatabaseModule provides database dependencies
var DatabaseModule = fx.Module("database",
	fx.Provide(
		provideMongoDatabase,
		provideRedisDatabase,
	),
)

// provideMongoDatabase creates a MongoDB database connection
func provideMongoDatabase(lc fx.Lifecycle, cfg *config.DatabaseConfig, logger *zap.Logger) (*MongoDatabase, error) {
	logger.Info("Connecting to MongoDB",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
	)

	clientOpts := options.Client().ApplyURI(cfg.MongoURI())
	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(context.Background(), nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.Name)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MongoDB connection")
			return client.Disconnect(ctx)
		},
	})

	return &MongoDatabase{DB: db, Client: client}, nil
}

// provideRedisDatabase creates a Redis client when Redis is enabled
func provideRedisDatabase(lc fx.Lifecycle, cfg *config.RedisConfig, logger *zap.Logger) *RedisDatabase {
	if !cfg.Enabled {
		logger.Info("Redis disabled, token revocation uses in-process store")
		return &RedisDatabase{}
	}

	logger.Info("Connecting to Redis", zap.String("addr", cfg.Addr()))

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis connection")
			return client.Close()
		},
	})

	return &RedisDatabase{Client: client}
}
