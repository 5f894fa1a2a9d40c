package store

import (
	"context"
	"fmt"

	"github.com/mkarpenko/credvault/internal/config"
	"github.com/mkarpenko/credvault/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the single shared document-store connection of the process.
// It is established once at startup and never mutated afterwards.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo opens the document-store connection described by cfg and
// verifies it with a ping.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// ping database
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to database successfully")

	db := &DB{
		client:   client,
		database: client.Database(cfg.Name),
		logger:   log,
	}

	return db, nil
}

// Close tears down the underlying client connection.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// DatabaseName returns the logical database name behind the connection.
func (db *DB) DatabaseName() string {
	return db.database.Name()
}

// Available reports that a live store handle exists.
func (db *DB) Available() bool {
	return true
}
