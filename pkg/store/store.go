// Package store opens the retriever backend a graph configuration names.
// It only establishes and checks connectivity; reading and writing
// documents belongs to the retrieval and indexing runtimes.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xhad/graphconfig/pkg/config"
)

var ErrUnknownProvider = errors.New("unknown retriever provider")

// Backend is an open connection to a retriever provider.
type Backend interface {
	Provider() string
	Ping(ctx context.Context) error
	Close()
}

type ConnConfig struct {
	DatabaseURL string
	TableName   string

	SupabaseURL       string
	SupabaseKey       string
	SupabaseTableName string

	Logger zerolog.Logger
}

// ConnConfigFrom copies the connection settings out of a loaded config.
func ConnConfigFrom(cfg *config.Config, logger zerolog.Logger) ConnConfig {
	return ConnConfig{
		DatabaseURL:       cfg.Database.URL,
		TableName:         cfg.Database.TableName,
		SupabaseURL:       cfg.Supabase.URL,
		SupabaseKey:       cfg.Supabase.Key,
		SupabaseTableName: cfg.Supabase.TableName,
		Logger:            logger,
	}
}

type opener func(ctx context.Context, conn ConnConfig) (Backend, error)

var openers = map[string]opener{
	config.ProviderSupabase: openSupabase,
	config.ProviderPGVector: openPGVector,
}

// Open connects to the named provider.
func Open(ctx context.Context, provider string, conn ConnConfig) (Backend, error) {
	open, ok := openers[provider]
	if !ok {
		return nil, fmt.Errorf("%w %q (expected one of %s)",
			ErrUnknownProvider, provider, strings.Join(config.RetrieverProviders(), ", "))
	}

	conn.Logger.Debug().Str("provider", provider).Msg("Opening retriever backend")
	backend, err := open(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", provider, err)
	}
	return backend, nil
}

// OpenForAgent opens the backend the agent configuration queries.
func OpenForAgent(ctx context.Context, agent config.AgentConfiguration, conn ConnConfig) (Backend, error) {
	return Open(ctx, agent.RetrieverProvider, conn)
}

// OpenForIndex opens the backend the index configuration writes to.
func OpenForIndex(ctx context.Context, index config.IndexConfiguration, conn ConnConfig) (Backend, error) {
	return Open(ctx, index.RetrieverProvider, conn)
}
