package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cag/config"
	"cag/internal/adapter/corpus"
	"cag/internal/adapter/embedding"
	"cag/internal/adapter/memstore"
	"cag/internal/domain"
	"cag/internal/usecase"
)

func main() {
	dir := flag.String("dir", ".", "Directory holding cag.yaml")
	corpusFile := flag.String("corpus", "", "YAML corpus file (default: configured corpus)")
	thresholds := flag.String("t", "0.5,0.85,0.9,0.95", "Comma-separated thresholds")
	flag.Parse()

	queries := flag.Args()
	if len(queries) == 0 {
		fmt.Println("Usage: go run ./cmd/sweep [-t 0.5,0.9] [-corpus file.yaml] \"query\" ...")
		fmt.Println("\nReports hit/miss and best match for each query at each threshold.")
		os.Exit(1)
	}

	levels, err := parseThresholds(*thresholds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	docs, err := loadDocs(*dir, *corpusFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}

	quietLog := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine, err := usecase.NewEngine(memstore.NewVectorStore(docs...), embedding.NewKeywordEmbedder(quietLog), levels[0], usecase.WithLogger(quietLog))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("THRESHOLD SWEEP")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Documents: %d\n\n", engine.Len())

	hits := make([]int, len(levels))
	for _, q := range queries {
		fmt.Printf("Query: %q\n", q)
		for i, level := range levels {
			if err := engine.SetThreshold(level); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			o := engine.Resolve(q)
			fmt.Printf("  t=%.2f  %s\n", level, describe(o))
			if o.Hit() {
				hits[i]++
			}
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("HIT RATE:")
	for i, level := range levels {
		fmt.Printf("  t=%.2f  %d/%d\n", level, hits[i], len(queries))
	}
}

func describe(o domain.Outcome) string {
	if o.Hit() {
		return fmt.Sprintf("HIT  %.3f %s", o.Similarity, o.Match.Key)
	}
	return fmt.Sprintf("MISS %.3f", o.Similarity)
}

func parseThresholds(s string) ([]float64, error) {
	var levels []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold %q: %w", part, err)
		}
		levels = append(levels, v)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no thresholds given")
	}
	return levels, nil
}

func loadDocs(dir, file string) ([]domain.Document, error) {
	if file != "" {
		return corpus.LoadFile(file)
	}

	cfg, err := config.LoadFromDir(dir)
	if err != nil {
		return nil, err
	}
	if snap := config.ResolvePath(dir, cfg.Corpus.Snapshot); snap != "" {
		return corpus.LoadSnapshot(snap)
	}
	if root := config.ResolvePath(dir, cfg.Corpus.Dir); root != "" {
		return corpus.LoadDir(root, cfg.Corpus.Includes, cfg.Corpus.Excludes)
	}
	return corpus.Default(), nil
}
