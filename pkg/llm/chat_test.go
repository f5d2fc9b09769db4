package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/xhad/graphconfig/pkg/config"
	"github.com/xhad/graphconfig/pkg/llm"
)

func TestNewForAgent(t *testing.T) {
	engine, err := llm.NewForAgent(config.RetrievalAssistantStreamConfig(), llm.ChatConfig{
		BaseURL:     "http://localhost:1234",
		Temperature: 0.5,
		MaxTokens:   1000,
	})
	require.NoError(t, err)
	require.NotNil(t, engine)

	assert.Equal(t, config.ModelRef{Provider: "ollama", Name: "llama3:8b"}, engine.Ref())
	assert.IsType(t, &ollama.LLM{}, engine.Model())
}

func TestNewForAgentRejectsUnknownModel(t *testing.T) {
	agent := config.RetrievalAssistantStreamConfig()
	agent.QueryModel = "llama3:8b"

	_, err := llm.NewForAgent(agent, llm.ChatConfig{})
	assert.ErrorContains(t, err, "queryModel")
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  llm.ChatConfig
		wantErr string
	}{
		{
			name:   "defaults",
			config: llm.ChatConfig{},
		},
		{
			name:    "temperature too high",
			config:  llm.ChatConfig{Temperature: 3},
			wantErr: "temperature",
		},
		{
			name:    "negative max tokens",
			config:  llm.ChatConfig{MaxTokens: -1},
			wantErr: "max tokens",
		},
	}

	ref := config.ModelRef{Provider: config.ModelProviderOllama, Name: "llama3:8b"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := llm.NewWithConfig(ref, tt.config)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, engine)
		})
	}
}

func TestNewWithConfigHostedProviders(t *testing.T) {
	engine, err := llm.NewWithConfig(config.ModelRef{Provider: "openai", Name: "gpt-4o-mini"}, llm.ChatConfig{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o-mini", engine.Ref().String())

	engine, err = llm.NewWithConfig(config.ModelRef{Provider: "anthropic", Name: "claude-3-5-haiku-latest"}, llm.ChatConfig{APIKey: "test"})
	require.NoError(t, err)
	assert.NotNil(t, engine.Model())
}

func TestCallOptions(t *testing.T) {
	ref := config.ModelRef{Provider: config.ModelProviderOllama, Name: "llama3:8b"}
	engine, err := llm.NewWithConfig(ref, llm.ChatConfig{Temperature: 0.2, MaxTokens: 512})
	require.NoError(t, err)

	var opts llms.CallOptions
	for _, opt := range engine.CallOptions() {
		opt(&opts)
	}
	assert.Equal(t, 512, opts.MaxTokens)
	assert.Equal(t, 0.2, opts.Temperature)
}

func TestCallOptionsZeroTemperature(t *testing.T) {
	ref := config.ModelRef{Provider: config.ModelProviderOllama, Name: "llama3:8b"}
	engine, err := llm.NewWithConfig(ref, llm.ChatConfig{Temperature: 0})
	require.NoError(t, err)

	// Start from a non-zero value so a skipped option would show
	opts := llms.CallOptions{Temperature: 0.9}
	for _, opt := range engine.CallOptions() {
		opt(&opts)
	}
	assert.Equal(t, 0.0, opts.Temperature)
	assert.Equal(t, 2000, opts.MaxTokens)
}
