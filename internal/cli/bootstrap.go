package cli

import (
	"fmt"
	"io"
	"log/slog"

	"cag/config"
	"cag/internal/adapter/cache"
	"cag/internal/adapter/corpus"
	"cag/internal/adapter/embedding"
	"cag/internal/adapter/memstore"
	"cag/internal/domain"
	"cag/internal/port"
	"cag/internal/usecase"
	"github.com/schollz/progressbar/v3"
)

// progressMin is the corpus size from which loading shows a progress bar.
const progressMin = 50

// loadCorpus returns the configured documents and a description of their source.
func loadCorpus(c *config.Config, dir string) ([]domain.Document, string, error) {
	if snap := config.ResolvePath(dir, c.Corpus.Snapshot); snap != "" {
		docs, err := corpus.LoadSnapshot(snap)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load snapshot: %w", err)
		}
		return docs, snap, nil
	}

	if root := config.ResolvePath(dir, c.Corpus.Dir); root != "" {
		docs, err := corpus.LoadDir(root, c.Corpus.Includes, c.Corpus.Excludes)
		if err != nil {
			return nil, "", err
		}
		return docs, root, nil
	}

	return corpus.Default(), "built-in", nil
}

// newStore inserts docs one at a time, drawing a progress bar on w for large corpora.
func newStore(docs []domain.Document, w io.Writer, showProgress bool) *memstore.VectorStore {
	store := memstore.NewVectorStore()

	var bar *progressbar.ProgressBar
	if showProgress && len(docs) >= progressMin {
		bar = progressbar.NewOptions(len(docs),
			progressbar.OptionSetWriter(w),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Loading corpus[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(w)
			}),
		)
	}

	for _, doc := range docs {
		store.Insert(doc)
		if bar != nil {
			bar.Add(1)
		}
	}
	return store
}

// newResponder wires the engine over docs and optionally wraps it in a result cache.
func newResponder(docs []domain.Document, embedder port.Embedder, threshold float64, useCache bool, progress io.Writer, log *slog.Logger) (*usecase.Engine, port.Responder, error) {
	store := newStore(docs, progress, progress != nil)

	engine, err := usecase.NewEngine(store, embedder, threshold, usecase.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}

	var responder port.Responder = engine
	if useCache {
		responder = cache.NewCachedResponder(engine, cache.NewResponseCache(), log)
	}
	return engine, responder, nil
}

func defaultEmbedder(log *slog.Logger) port.Embedder {
	return embedding.NewKeywordEmbedder(log)
}
