// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
)

// Storages aggregates the repositories used by the service layer.
type Storages struct {
	UserRepository UserRepository
	DiaryStorage   DiaryStorage

	closer io.Closer
}

// NewStorages builds the storage backend selected by cfg: Postgres when
// cfg.DB.DSN is set (migrations are applied on connect), otherwise the JSON
// file backend rooted at cfg.Files.DataDir, which is created if missing.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, err
		}

		log.Info().Msg("using postgres storage")
		return &Storages{
			UserRepository: NewUserRepository(db, log),
			DiaryStorage:   NewDiaryRepository(db, log),
			closer:         db,
		}, nil
	}

	if err := os.MkdirAll(cfg.Files.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data dir: %w", ErrPersistence, err)
	}

	log.Info().Str("data_dir", cfg.Files.DataDir).Msg("using file storage")
	return &Storages{
		UserRepository: NewUserFileRepository(cfg.Files.DataDir, log),
		DiaryStorage:   NewDiaryFileStorage(cfg.Files.DataDir, log),
	}, nil
}

// Close releases the database connection pool, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
