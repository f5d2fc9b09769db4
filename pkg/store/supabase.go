package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	supa "github.com/supabase-community/supabase-go"
	"github.com/xhad/graphconfig/pkg/config"
)

type SupabaseStore struct {
	client    *supa.Client
	tableName string
	logger    zerolog.Logger
}

func openSupabase(_ context.Context, conn ConnConfig) (Backend, error) {
	if conn.SupabaseURL == "" {
		return nil, errors.New("supabase URL is required")
	}
	if conn.SupabaseKey == "" {
		return nil, errors.New("supabase key is required")
	}
	if conn.SupabaseTableName == "" {
		conn.SupabaseTableName = "documents"
	}

	client, err := supa.NewClient(conn.SupabaseURL, conn.SupabaseKey, &supa.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseStore{
		client:    client,
		tableName: conn.SupabaseTableName,
		logger:    conn.Logger.With().Str("component", "supabase").Logger(),
	}, nil
}

func (s *SupabaseStore) Provider() string {
	return config.ProviderSupabase
}

// Ping selects a single row id from the documents table. The REST client
// takes no context, so the request runs in its own goroutine and is
// abandoned when ctx ends.
func (s *SupabaseStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("supabase ping failed: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		_, _, err := s.client.From(s.tableName).
			Select("id", "exact", false).
			Limit(1, "").
			Execute()
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("supabase ping failed: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("supabase ping failed: %w", ctx.Err())
	}

	s.logger.Debug().Str("table", s.tableName).Msg("Supabase connection successful")
	return nil
}

// Close is a no-op; the REST client holds no pooled connections.
func (s *SupabaseStore) Close() {}
