package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/711pranjal/Egnyte-TrustLens/internal/config"
	"github.com/711pranjal/Egnyte-TrustLens/internal/core"
	"github.com/711pranjal/Egnyte-TrustLens/internal/corpus"
)

var (
	askScope  string
	askFolder string
	askFiles  []string
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer one question and print the response as JSON",
	Example: `  trustlens ask "What is Sarah Chen's React experience?"
  trustlens ask "What's our PTO policy?" --scope folder --folder hr
  trustlens ask "Who knows React?" --scope selected --files rec-1,rec-4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askScope, "scope", string(core.ScopeGlobal), "Search scope (global, folder, selected)")
	askCmd.Flags().StringVar(&askFolder, "folder", corpus.RootID, "Folder searched by folder scope")
	askCmd.Flags().StringSliceVar(&askFiles, "files", nil, "File IDs searched by selected scope")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return core.ErrEmptyQuery
	}
	scope, err := core.ParseScope(askScope)
	if err != nil {
		return err
	}

	eng, err := newEngine(config.AppConfig)
	if err != nil {
		return err
	}

	msg := eng.responder.Generate(core.QueryRequest{
		Query:           query,
		Scope:           scope,
		CurrentFolder:   askFolder,
		SelectedFileIDs: askFiles,
	})

	out, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
