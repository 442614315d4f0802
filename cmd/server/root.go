package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/711pranjal/Egnyte-TrustLens/internal/config"
	"github.com/711pranjal/Egnyte-TrustLens/internal/core"
	"github.com/711pranjal/Egnyte-TrustLens/internal/corpus"
)

var rootCmd = &cobra.Command{
	Use:   "trustlens",
	Short: "TrustLens - confidence-scored document copilot",
	Long: `TrustLens answers questions about a shared drive and reports how far each
answer can be trusted: which files were searched, which ones back the answer
and what limited the search.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadConfig()
	},
}

// engine is the read-only part of the application shared by every command.
type engine struct {
	corpus    *corpus.Corpus
	knowledge *core.Knowledge
	responder *core.ResponseService
}

func newEngine(cfg config.Config) (*engine, error) {
	c := corpus.Default()

	knowledge := core.DefaultKnowledge()
	if err := knowledge.Validate(); err != nil {
		return nil, fmt.Errorf("invalid knowledge base: %w", err)
	}

	resolver, err := core.NewScopeResolver(c, cfg.ScopeCacheSize)
	if err != nil {
		return nil, err
	}

	return &engine{
		corpus:    c,
		knowledge: knowledge,
		responder: core.NewResponseService(c, resolver, knowledge),
	}, nil
}
