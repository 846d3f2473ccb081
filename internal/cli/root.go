package cli

import (
	"fmt"
	"log/slog"
	"os"

	"cag/config"
	"cag/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	quiet   bool
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cag",
	Short: "Cache-augmented retrieval - answer queries from a pre-loaded vector corpus",
	Long: `cag pre-loads a corpus of documents and embeddings into memory and answers
queries by nearest-neighbour cosine similarity. A query hits when the best
similarity reaches the configured threshold, otherwise it misses.

Example usage:
  cag ask -q "What is AI?"                  # Answer a query
  cag ask -q "What is AI?" --threshold 0.5  # Override the threshold
  cag demo                                  # Replay the walkthrough
  cag corpus export --out corpus.db         # Snapshot the corpus`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.ApplyEnv(); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger = logging.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
		slog.SetDefault(logger)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./cag.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress progress output")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
