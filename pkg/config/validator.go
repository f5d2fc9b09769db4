package config

import (
	"fmt"
	"net/url"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the agent configuration. Field names are the serialized
// option names so errors point at what the operator wrote.
func (a AgentConfiguration) Validate() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(a.QueryModel) == "" {
		errors = append(errors, ValidationError{
			Field:   "queryModel",
			Message: "queryModel is required",
		})
	} else if _, err := ParseQueryModel(a.QueryModel); err != nil {
		errors = append(errors, ValidationError{
			Field:   "queryModel",
			Message: err.Error(),
		})
	}

	if err := validateRetrieverProvider(a.RetrieverProvider); err != nil {
		errors = append(errors, *err)
	}

	if a.K < 1 {
		errors = append(errors, ValidationError{
			Field:   "k",
			Message: fmt.Sprintf("k must be a positive integer, got %d", a.K),
		})
	}

	return errors
}

// Validate checks the index configuration.
func (i IndexConfiguration) Validate() []ValidationError {
	var errors []ValidationError

	if err := validateRetrieverProvider(i.RetrieverProvider); err != nil {
		errors = append(errors, *err)
	}

	return errors
}

func validateRetrieverProvider(name string) *ValidationError {
	if name == "" {
		return &ValidationError{
			Field:   "retrieverProvider",
			Message: "retrieverProvider is required",
		}
	}
	if !IsKnownRetrieverProvider(name) {
		return &ValidationError{
			Field: "retrieverProvider",
			Message: fmt.Sprintf("unknown retriever provider %q (expected one of %s)",
				name, strings.Join(RetrieverProviders(), ", ")),
		}
	}
	return nil
}

// Validate checks both graph configurations and the connection settings
// their backends need.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	for _, e := range c.Agent.Validate() {
		e.Field = "agent." + e.Field
		errors = append(errors, e)
	}
	for _, e := range c.Index.Validate() {
		e.Field = "index." + e.Field
		errors = append(errors, e)
	}

	// Validate LLM config
	if ref, err := ParseQueryModel(c.Agent.QueryModel); err == nil && ref.Provider == ModelProviderOllama {
		if c.LLM.BaseURL == "" {
			errors = append(errors, ValidationError{
				Field:   "llm.base_url",
				Message: "Ollama base URL is required",
			})
		} else if u, err := url.Parse(c.LLM.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "llm.base_url",
				Message: "invalid Ollama base URL",
			})
		}
	}

	// Validate backend connection settings
	if c.uses(ProviderPGVector) {
		if c.Database.URL == "" {
			errors = append(errors, ValidationError{
				Field:   "database.url",
				Message: "database URL is required for the pgvector provider",
			})
		} else if _, err := url.Parse(c.Database.URL); err != nil {
			errors = append(errors, ValidationError{
				Field:   "database.url",
				Message: "invalid database URL",
			})
		}
		if c.Database.TableName == "" {
			errors = append(errors, ValidationError{
				Field:   "database.table_name",
				Message: "table_name is required for the pgvector provider",
			})
		}
	}

	if c.uses(ProviderSupabase) {
		if c.Supabase.URL == "" {
			errors = append(errors, ValidationError{
				Field:   "supabase.url",
				Message: "Supabase URL is required for the supabase provider",
			})
		} else if u, err := url.Parse(c.Supabase.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "supabase.url",
				Message: "invalid Supabase URL",
			})
		}
		if c.Supabase.Key == "" {
			errors = append(errors, ValidationError{
				Field:   "supabase.key",
				Message: "Supabase key is required for the supabase provider",
			})
		}
	}

	return errors
}

func (c *Config) uses(provider string) bool {
	return c.Agent.RetrieverProvider == provider || c.Index.RetrieverProvider == provider
}
