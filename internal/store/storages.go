package store

import (
	"context"
	"fmt"

	"github.com/universal-workshop/syncagent/internal/config"
	"github.com/universal-workshop/syncagent/internal/logger"
)

// Storages aggregates every repository backed by the local durable store.
type Storages struct {
	Records RecordRepository

	db *DB
}

// NewStorages opens the local SQLite database, applies migrations, and wires
// all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Debug().Msg("creating local storages")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local sqlite: %w", err)
	}

	return &Storages{
		Records: NewRecordRepository(db, log),
		db:      db,
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
