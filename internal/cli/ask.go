package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	askQueries   []string
	askThreshold float64
	askNoCache   bool
	askJSON      bool
)

var askCmd = &cobra.Command{
	Use:   "ask [query...]",
	Short: "Answer queries from the corpus",
	Long: `Answer one or more queries against the configured corpus. Queries are taken
from repeated -q flags followed by positional arguments, and are answered in order
through the same engine, so a repeated query is served from the result cache.

Examples:
  cag ask -q "What is AI?"
  cag ask "Explain CAG" "What is AI?" --threshold 0.9 --json`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringArrayVarP(&askQueries, "query", "q", nil, "query to answer (repeatable)")
	askCmd.Flags().Float64Var(&askThreshold, "threshold", -1, "similarity threshold (default from config)")
	askCmd.Flags().BoolVar(&askNoCache, "no-cache", false, "disable the result cache")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output as JSON")
}

type askResult struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	queries := append(append([]string(nil), askQueries...), args...)
	if len(queries) == 0 {
		return fmt.Errorf("no query given; use -q or pass queries as arguments")
	}

	docs, source, err := loadCorpus(cfg, GetRootDir())
	if err != nil {
		return err
	}
	logger.Info("corpus loaded", "source", source, "documents", len(docs))

	var progress io.Writer = os.Stderr
	if quiet {
		progress = nil
	}
	engine, responder, err := newResponder(docs, defaultEmbedder(logger), cfg.Engine.SimilarityThreshold,
		cfg.Engine.ResultCache && !askNoCache, progress, logger)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("threshold") {
		if err := engine.SetThreshold(askThreshold); err != nil {
			return err
		}
	}

	results := make([]askResult, 0, len(queries))
	for _, q := range queries {
		results = append(results, askResult{Query: q, Response: responder.Respond(q)})
	}

	out := cmd.OutOrStdout()
	if askJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Fprintf(out, "Query: %s\n%s\n%s\n", r.Query, r.Response, strings.Repeat("-", 50))
	}
	return nil
}
