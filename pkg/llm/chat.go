package llm

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/xhad/graphconfig/pkg/config"
)

// ChatConfig holds the connection and sampling settings a query model
// needs beyond its identifier.
type ChatConfig struct {
	BaseURL     string // Ollama server URL
	APIKey      string // OpenAI / Anthropic token; falls back to the provider's env var
	Temperature float64
	MaxTokens   int
}

// ChatEngine is a resolved query model. Building one never contacts the
// provider.
type ChatEngine struct {
	config ChatConfig
	ref    config.ModelRef
	llm    llms.Model
}

// NewForAgent resolves the agent configuration's queryModel.
func NewForAgent(agent config.AgentConfiguration, cfg ChatConfig) (*ChatEngine, error) {
	ref, err := config.ParseQueryModel(agent.QueryModel)
	if err != nil {
		return nil, fmt.Errorf("queryModel: %w", err)
	}
	return NewWithConfig(ref, cfg)
}

// NewWithConfig creates a ChatEngine for ref.
func NewWithConfig(ref config.ModelRef, cfg ChatConfig) (*ChatEngine, error) {
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return nil, fmt.Errorf("temperature must be between 0 and 2")
	}
	if cfg.MaxTokens < 0 {
		return nil, fmt.Errorf("max tokens cannot be negative")
	} else if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434" // Default Ollama URL
	}

	model, err := newModel(ref, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s: %w", ref, err)
	}

	return &ChatEngine{
		config: cfg,
		ref:    ref,
		llm:    model,
	}, nil
}

func newModel(ref config.ModelRef, cfg ChatConfig) (llms.Model, error) {
	switch ref.Provider {
	case config.ModelProviderOllama:
		return ollama.New(
			ollama.WithModel(ref.Name),
			ollama.WithServerURL(cfg.BaseURL),
		)
	case config.ModelProviderOpenAI:
		opts := []openai.Option{openai.WithModel(ref.Name)}
		if cfg.APIKey != "" {
			opts = append(opts, openai.WithToken(cfg.APIKey))
		}
		return openai.New(opts...)
	case config.ModelProviderAnthropic:
		opts := []anthropic.Option{anthropic.WithModel(ref.Name)}
		if cfg.APIKey != "" {
			opts = append(opts, anthropic.WithToken(cfg.APIKey))
		}
		return anthropic.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported model provider %q", ref.Provider)
	}
}

// Model returns the langchaingo model the retrieval agent should call.
func (ce *ChatEngine) Model() llms.Model {
	return ce.llm
}

// Ref returns the parsed queryModel identifier.
func (ce *ChatEngine) Ref() config.ModelRef {
	return ce.ref
}

// CallOptions returns the sampling options to pass on every generation.
func (ce *ChatEngine) CallOptions() []llms.CallOption {
	// Temperature is always sent; zero asks for deterministic sampling
	return []llms.CallOption{
		llms.WithMaxTokens(ce.config.MaxTokens),
		llms.WithTemperature(ce.config.Temperature),
	}
}
