package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/xhad/graphconfig/pkg/config"
	"github.com/xhad/graphconfig/pkg/llm"
	"github.com/xhad/graphconfig/pkg/store"
	"gopkg.in/yaml.v3"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "graphconfig",
		Short:         "Inspect and check the retrieval and indexing graph configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	root.AddCommand(
		newShowCmd(),
		newValidateCmd(&configPath),
		newPingCmd(&configPath),
	)
	return root
}

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:       "show [agent|index]",
		Short:     "Print the built-in graph configurations",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"agent", "index"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := ""
			if len(args) == 1 {
				which = args[0]
			}
			return runShow(cmd.OutOrStdout(), which, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format (json or yaml)")
	return cmd
}

func runShow(w io.Writer, which, format string) error {
	var v interface{}
	switch which {
	case "agent":
		v = config.RetrievalAssistantStreamConfig()
	case "index":
		v = config.IndexConfig()
	case "":
		v = struct {
			Agent config.AgentConfiguration `json:"retrievalAssistantStreamConfig" yaml:"retrievalAssistantStreamConfig"`
			Index config.IndexConfiguration `json:"indexConfig" yaml:"indexConfig"`
		}{config.RetrievalAssistantStreamConfig(), config.IndexConfig()}
	default:
		return fmt.Errorf("unknown configuration %q (expected agent or index)", which)
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (expected json or yaml)", format)
	}
}

func newValidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the loaded configuration and resolve the query model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.Log.Level, cfg.Log.Format)
			return runValidate(cmd.OutOrStdout(), cfg, logger)
		},
	}
}

func runValidate(w io.Writer, cfg *config.Config, logger zerolog.Logger) error {
	errs := cfg.Validate()
	if len(errs) > 0 {
		red := color.New(color.FgRed)
		for _, e := range errs {
			red.Fprintf(w, "✗ %s\n", e.Error())
		}
		return fmt.Errorf("configuration has %d error(s)", len(errs))
	}

	engine, err := llm.NewForAgent(cfg.Agent, llm.ChatConfig{BaseURL: cfg.LLM.BaseURL})
	if err != nil {
		color.New(color.FgRed).Fprintf(w, "✗ %v\n", err)
		return err
	}

	logger.Debug().
		Str("query_model", engine.Ref().String()).
		Str("agent_provider", cfg.Agent.RetrieverProvider).
		Str("index_provider", cfg.Index.RetrieverProvider).
		Int("k", cfg.Agent.K).
		Bool("use_sample_docs", cfg.Index.UseSampleDocs).
		Msg("Configuration resolved")

	color.New(color.FgGreen).Fprintf(w, "✓ configuration is valid (model %s, k=%d)\n", engine.Ref(), cfg.Agent.K)
	return nil
}

func newPingCmd(configPath *string) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Connect to the agent and index retriever backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.Log.Level, cfg.Log.Format)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return runPing(ctx, cmd.OutOrStdout(), cfg, logger)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Overall timeout for backend checks")
	return cmd
}

func runPing(ctx context.Context, w io.Writer, cfg *config.Config, logger zerolog.Logger) error {
	conn := store.ConnConfigFrom(cfg, logger)

	// The two providers are independent but usually the same
	providers := []string{cfg.Agent.RetrieverProvider}
	if cfg.Index.RetrieverProvider != cfg.Agent.RetrieverProvider {
		providers = append(providers, cfg.Index.RetrieverProvider)
	}

	var failed int
	for _, provider := range providers {
		if err := pingProvider(ctx, provider, conn); err != nil {
			failed++
			logger.Error().Err(err).Str("provider", provider).Msg("Backend check failed")
			color.New(color.FgRed).Fprintf(w, "✗ %s: %v\n", provider, err)
			continue
		}
		color.New(color.FgGreen).Fprintf(w, "✓ %s reachable\n", provider)
	}

	if failed > 0 {
		return fmt.Errorf("%d backend(s) unreachable", failed)
	}
	return nil
}

func pingProvider(ctx context.Context, provider string, conn store.ConnConfig) error {
	backend, err := store.Open(ctx, provider, conn)
	if err != nil {
		return err
	}
	defer backend.Close()

	spinner := getSpinner(fmt.Sprintf(" Checking %s...", provider))
	defer spinner.Finish()

	return backend.Ping(ctx)
}
