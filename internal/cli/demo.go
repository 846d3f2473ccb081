package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cag/internal/adapter/cache"
	"cag/internal/adapter/corpus"
	"cag/internal/adapter/embedding"
	"cag/internal/adapter/memstore"
	"cag/internal/usecase"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the built-in corpus walkthrough",
	Long: `Run the walkthrough over the built-in corpus: ingest a new document at runtime,
install the keyword embedder and the result cache, raise the threshold to 0.9,
answer a batch of queries (one repeated), then lower the threshold to 0.5 and
repeat a query to show that cached responses keep their original outcome.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), logger)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoQueries = []string{
	"What is AI?",
	"Explain CAG",
	"Difference between RAG and CAG",
	"What is a vector store?",
	"What is quantum computing?",
	"What is AI?",
}

func runDemo(w io.Writer, log *slog.Logger) error {
	rule := strings.Repeat("-", 50)

	store := memstore.NewVectorStore(corpus.Default()...)
	embedder := embedding.NewCounting(embedding.NewKeywordEmbedder(log))
	engine, err := usecase.NewEngine(store, embedder, usecase.DefaultThreshold, usecase.WithLogger(log))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Context cache loaded with %d documents.\n", engine.Len())
	fmt.Fprintln(w, "=== Starting Cache-Augmented Retrieval Demo ===")

	fmt.Fprintln(w, "\n=== Step 1: Ingesting a document ===")
	doc := corpus.VectorStoreBasics()
	engine.Insert(doc.Key, doc.Content, doc.Embedding)
	fmt.Fprintf(w, "Document %q added to the in-memory vector store (%d documents).\n", doc.Key, engine.Len())

	fmt.Fprintln(w, "\n=== Step 2: Embedding model ===")
	fmt.Fprintln(w, "Keyword embedder installed.")

	fmt.Fprintln(w, "\n=== Step 3: Result cache ===")
	responder := cache.NewCachedResponder(engine, cache.NewResponseCache(), log)
	fmt.Fprintln(w, "Query result cache enabled.")

	fmt.Fprintln(w, "\n=== Step 4: Adjusting similarity threshold ===")
	if err := engine.SetThreshold(0.9); err != nil {
		return err
	}
	fmt.Fprintf(w, "Similarity threshold adjusted to %v.\n", engine.Threshold())

	fmt.Fprintln(w, "\n=== Step 5: Processing queries ===")
	for _, q := range demoQueries {
		fmt.Fprintf(w, "\nQuery: %s\n%s\n%s\n", q, responder.Respond(q), rule)
	}

	fmt.Fprintln(w, "\n=== Step 6: Lower similarity threshold ===")
	if err := engine.SetThreshold(0.5); err != nil {
		return err
	}
	fmt.Fprintf(w, "Similarity threshold adjusted to %v.\n", engine.Threshold())
	q := "What is quantum computing?"
	fmt.Fprintf(w, "\nRe-running query (served from the result cache):\nQuery: %s\n%s\n%s\n", q, responder.Respond(q), rule)

	fmt.Fprintf(w, "\nEmbedder calls: %d, cached responses: %d\n", embedder.Calls(), responder.Cache().Size())
	fmt.Fprintln(w, "=== End of Demo ===")
	return nil
}
