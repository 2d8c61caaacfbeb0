package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"octofit/internal/config"
	"octofit/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connection owns the store handle for the configured driver. It is opened
// once at startup and shared by every request.
type Connection struct {
	Driver  string
	DB      *gorm.DB
	Mongo   *mongo.Client
	MongoDB *mongo.Database

	memory *repository.Repositories
}

// Open connects to the configured store.
func Open(ctx context.Context, cfg *config.Config) (*Connection, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := ConnectPostgres(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return &Connection{Driver: config.DriverPostgres, DB: db}, nil
	case config.DriverMongo:
		client, err := ConnectMongo(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, err
		}
		return &Connection{
			Driver:  config.DriverMongo,
			Mongo:   client,
			MongoDB: client.Database(cfg.Mongo.Database),
		}, nil
	case config.DriverMemory:
		log.Println("Using in-memory store, data is lost on exit")
		return &Connection{Driver: config.DriverMemory, memory: repository.NewMemoryRepositories()}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}

// Repositories builds the per-type repositories over this connection.
func (c *Connection) Repositories() *repository.Repositories {
	switch c.Driver {
	case config.DriverPostgres:
		return repository.NewGormRepositories(c.DB)
	case config.DriverMongo:
		return repository.NewMongoRepositories(c.MongoDB)
	}
	return c.memory
}

func (c *Connection) Ping(ctx context.Context) error {
	switch c.Driver {
	case config.DriverPostgres:
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	case config.DriverMongo:
		return c.Mongo.Ping(ctx, nil)
	}
	return nil
}

func (c *Connection) Close(ctx context.Context) error {
	switch c.Driver {
	case config.DriverPostgres:
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	case config.DriverMongo:
		return c.Mongo.Disconnect(ctx)
	}
	return nil
}

func ConnectPostgres(cfg config.PostgresConfig) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Millisecond * 500, // Log queries slower than 500ms
			Colorful:                  true,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 newLogger,
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		TranslateError:         true, // unique violations become gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(15 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Connected to database successfully")
	log.Printf("Database connection pool configured:")
	log.Printf("  - Max open connections: %d", 50)
	log.Printf("  - Max idle connections: %d", 10)
	log.Printf("  - Connection max lifetime: %v", time.Hour)
	log.Printf("  - Connection max idle time: %v", 15*time.Minute)

	return db, nil
}

// MonitorDBConnections logs a warning whenever more than threshold pooled
// connections are in use. It stops when ctx is done.
func MonitorDBConnections(ctx context.Context, db *gorm.DB, threshold int) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Connection monitor disabled: %v", err)
		return
	}

	ticker := time.NewTicker(10 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := sqlDB.Stats()
				if stats.InUse > threshold {
					log.Printf("DB Connection Pool: InUse=%d, Idle=%d, Open=%d",
						stats.InUse, stats.Idle, stats.OpenConnections)
				}
			}
		}
	}()
}
