package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fluentloop/smartvocab/internal/infrastructure/config"
)

// NewConnection opens the sqlite database backing the snapshot store.
// The returned cleanup closes the connection.
func NewConnection(cfg *config.Config) (*sql.DB, func(), error) {
	db, err := sql.Open("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// sqlite allows a single writer; serialize through one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	cleanup := func() { _ = db.Close() }
	return db, cleanup, nil
}
