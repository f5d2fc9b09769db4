package config

import (
	"fmt"
	"sort"
	"strings"
)

// Retriever backends the retrieval and indexing runtimes know how to open.
const (
	ProviderSupabase = "supabase"
	ProviderPGVector = "pgvector"
)

// Model providers a queryModel identifier may name.
const (
	ModelProviderOllama    = "ollama"
	ModelProviderOpenAI    = "openai"
	ModelProviderAnthropic = "anthropic"
)

var retrieverProviders = map[string]bool{
	ProviderSupabase: true,
	ProviderPGVector: true,
}

var modelProviders = map[string]bool{
	ModelProviderOllama:    true,
	ModelProviderOpenAI:    true,
	ModelProviderAnthropic: true,
}

// IsKnownRetrieverProvider reports whether name identifies a supported
// retriever backend.
func IsKnownRetrieverProvider(name string) bool {
	return retrieverProviders[name]
}

// RetrieverProviders returns the supported backend identifiers, sorted.
func RetrieverProviders() []string {
	return sortedKeys(retrieverProviders)
}

// ModelProviders returns the supported model provider identifiers, sorted.
func ModelProviders() []string {
	return sortedKeys(modelProviders)
}

// ModelRef is a parsed queryModel identifier such as "ollama/llama3:8b".
type ModelRef struct {
	Provider string
	Name     string
}

func (m ModelRef) String() string {
	return m.Provider + "/" + m.Name
}

// ParseQueryModel splits a "provider/model" identifier on its first slash.
// The model part may itself contain slashes or tags.
func ParseQueryModel(id string) (ModelRef, error) {
	provider, name, ok := strings.Cut(strings.TrimSpace(id), "/")
	if !ok {
		return ModelRef{}, fmt.Errorf("query model %q must have the form provider/model", id)
	}
	if provider == "" || name == "" {
		return ModelRef{}, fmt.Errorf("query model %q has an empty provider or model name", id)
	}
	if !modelProviders[provider] {
		return ModelRef{}, fmt.Errorf("unknown model provider %q (expected one of %s)",
			provider, strings.Join(ModelProviders(), ", "))
	}
	return ModelRef{Provider: provider, Name: name}, nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
