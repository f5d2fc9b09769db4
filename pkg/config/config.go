package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the runtime view consumers load: the two graph configurations
// plus the connection settings their backends need.
type Config struct {
	Agent AgentConfiguration `yaml:"agent"`
	Index IndexConfiguration `yaml:"index"`

	LLM struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"llm"`

	Database struct {
		URL       string `yaml:"url"`
		TableName string `yaml:"table_name"`
	} `yaml:"database"`

	Supabase struct {
		URL       string `yaml:"url"`
		Key       string `yaml:"key"`
		TableName string `yaml:"table_name"`
	} `yaml:"supabase"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func LoadConfig(path string) (*Config, error) {
	// A missing .env is fine
	_ = godotenv.Load()

	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"graphconfig.yaml",
			"graphconfig.yml",
			filepath.Join(os.Getenv("HOME"), ".config/graphconfig/config.yaml"),
			"/etc/graphconfig/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Start from the snapshots so partial files only override what they name
	config := newConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := mergeWithEnv(config); err != nil {
		return nil, err
	}
	applyDefaults(config)

	return config, nil
}

func newConfig() *Config {
	return &Config{
		Agent: RetrievalAssistantStreamConfig(),
		Index: IndexConfig(),
	}
}

func getDefaultConfig() (*Config, error) {
	config := newConfig()
	applyDefaults(config)
	if err := mergeWithEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

func applyDefaults(config *Config) {
	if config.LLM.BaseURL == "" {
		config.LLM.BaseURL = "http://localhost:11434"
	}

	if config.Database.TableName == "" {
		config.Database.TableName = "documents"
	}
	if config.Supabase.TableName == "" {
		config.Supabase.TableName = "documents"
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "json"
	}
}

func mergeWithEnv(config *Config) error {
	if model := os.Getenv("QUERY_MODEL"); model != "" {
		config.Agent.QueryModel = model
	}
	if provider := os.Getenv("RETRIEVER_PROVIDER"); provider != "" {
		config.Agent.RetrieverProvider = provider
		config.Index.RetrieverProvider = provider
	}
	if k := os.Getenv("RETRIEVER_K"); k != "" {
		v, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("RETRIEVER_K must be an integer: %w", err)
		}
		config.Agent.K = v
	}
	if sample := os.Getenv("USE_SAMPLE_DOCS"); sample != "" {
		v, err := strconv.ParseBool(sample)
		if err != nil {
			return fmt.Errorf("USE_SAMPLE_DOCS must be a boolean: %w", err)
		}
		config.Index.UseSampleDocs = v
	}

	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
		config.LLM.BaseURL = baseURL
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		config.Database.URL = dbURL
	}
	if supabaseURL := os.Getenv("SUPABASE_URL"); supabaseURL != "" {
		config.Supabase.URL = supabaseURL
	}
	if supabaseKey := os.Getenv("SUPABASE_KEY"); supabaseKey != "" {
		config.Supabase.Key = supabaseKey
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Log.Format = format
	}
	return nil
}
