package cli

import (
	"fmt"

	"cag/config"
	"cag/internal/adapter/corpus"
	"github.com/spf13/cobra"
)

var exportOut string

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect or snapshot the configured corpus",
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List document keys and embedding dimensions",
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, source, err := loadCorpus(GetConfig(), GetRootDir())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Corpus: %s (%d documents)\n", source, len(docs))
		for i, doc := range docs {
			fmt.Fprintf(out, "%3d. %s [dim %d]\n", i+1, doc.Key, len(doc.Embedding))
		}
		return nil
	},
}

var corpusExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the configured corpus to a snapshot file",
	Long: `Write the configured corpus, in load order, to a BoltDB snapshot. Point
corpus.snapshot at the file to load it on later runs.

Examples:
  cag corpus export --out corpus.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, source, err := loadCorpus(GetConfig(), GetRootDir())
		if err != nil {
			return err
		}

		path := config.ResolvePath(GetRootDir(), exportOut)
		snap, err := corpus.OpenSnapshot(path)
		if err != nil {
			return err
		}
		defer snap.Close()

		if err := snap.Export(docs); err != nil {
			return fmt.Errorf("failed to export corpus: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d documents from %s to %s\n", len(docs), source, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusExportCmd)
	corpusExportCmd.Flags().StringVarP(&exportOut, "out", "o", "corpus.db", "snapshot file")
}
