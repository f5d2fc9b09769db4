package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/xhad/graphconfig/pkg/config"
)

type PGVectorStore struct {
	tableName string
	pool      *pgxpool.Pool
	logger    zerolog.Logger
}

func openPGVector(ctx context.Context, conn ConnConfig) (Backend, error) {
	if conn.DatabaseURL == "" {
		return nil, errors.New("database URL is required")
	}
	if conn.TableName == "" {
		conn.TableName = "documents"
	}

	// The pool connects lazily, so this only parses the connection string
	pool, err := pgxpool.New(ctx, conn.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PGVectorStore{
		tableName: conn.TableName,
		pool:      pool,
		logger:    conn.Logger.With().Str("component", "pgvector").Logger(),
	}, nil
}

func (vs *PGVectorStore) Provider() string {
	return config.ProviderPGVector
}

func (vs *PGVectorStore) TableName() string {
	return vs.tableName
}

// Ping checks the database is reachable and the vector extension is
// installed.
func (vs *PGVectorStore) Ping(ctx context.Context) error {
	if err := vs.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pgvector ping failed: %w", err)
	}

	var installed bool
	err := vs.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'vector')").Scan(&installed)
	if err != nil {
		return fmt.Errorf("failed to check vector extension: %w", err)
	}
	if !installed {
		return errors.New("vector extension is not installed")
	}

	vs.logger.Debug().Str("table", vs.tableName).Msg("pgvector connection successful")
	return nil
}

func (vs *PGVectorStore) Close() {
	if vs.pool != nil {
		vs.pool.Close()
	}
}
