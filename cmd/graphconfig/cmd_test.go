package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/graphconfig/pkg/config"
)

func init() {
	color.NoColor = true
}

func TestRunShowAgent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runShow(&buf, "agent", "json"))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]interface{}{
		"queryModel":        "ollama/llama3:8b",
		"retrieverProvider": "supabase",
		"k":                 float64(5),
	}, got)
}

func TestRunShowIndex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runShow(&buf, "index", "yaml"))
	assert.Equal(t, "useSampleDocs: false\nretrieverProvider: supabase\n", buf.String())
}

func TestRunShowBoth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runShow(&buf, "", "json"))
	assert.Contains(t, buf.String(), `"retrievalAssistantStreamConfig"`)
	assert.Contains(t, buf.String(), `"indexConfig"`)
}

func TestRunShowErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, runShow(&buf, "retriever", "json"), "unknown configuration")
	assert.ErrorContains(t, runShow(&buf, "agent", "toml"), "unknown format")
}

func validConfig() *config.Config {
	cfg := &config.Config{
		Agent: config.RetrievalAssistantStreamConfig(),
		Index: config.IndexConfig(),
	}
	cfg.LLM.BaseURL = "http://localhost:11434"
	cfg.Supabase.URL = "https://example.supabase.co"
	cfg.Supabase.Key = "key"
	return cfg
}

func TestRunValidate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runValidate(&buf, validConfig(), zerolog.Nop()))
	assert.Contains(t, buf.String(), "configuration is valid (model ollama/llama3:8b, k=5)")
}

func TestRunValidateReportsEveryError(t *testing.T) {
	cfg := validConfig()
	cfg.Agent.K = 0
	cfg.Index.RetrieverProvider = "chroma"

	var buf bytes.Buffer
	err := runValidate(&buf, cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "2 error(s)")
	assert.Contains(t, buf.String(), "agent.k")
	assert.Contains(t, buf.String(), "index.retrieverProvider")
}

func TestRunPingReportsOpenFailures(t *testing.T) {
	cfg := validConfig()
	cfg.Supabase.Key = ""

	var buf bytes.Buffer
	err := runPing(context.Background(), &buf, cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "1 backend(s) unreachable")
	assert.Contains(t, buf.String(), "supabase key is required")
}

func TestRootCommandShow(t *testing.T) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"show", "index"})

	require.NoError(t, root.Execute())
	assert.JSONEq(t, `{"useSampleDocs": false, "retrieverProvider": "supabase"}`, buf.String())
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"show", "retriever"})

	err := root.Execute()
	require.Error(t, err)

	var stderr bytes.Buffer
	reportError(&stderr, err)
	assert.Equal(t, "Error: unknown configuration \"retriever\" (expected agent or index)\n", stderr.String())
}
