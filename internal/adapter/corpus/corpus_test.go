package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cag/internal/domain"
)

func TestDefaultCorpus(t *testing.T) {
	docs := Default()
	want := []string{"AI basics", "LLM definition", "CAG overview", "RAG vs CAG"}
	if len(docs) != len(want) {
		t.Fatalf("expected %d documents, got %d", len(want), len(docs))
	}
	for i, key := range want {
		if docs[i].Key != key {
			t.Errorf("doc[%d] = %s, want %s", i, docs[i].Key, key)
		}
		if len(docs[i].Embedding) != 4 {
			t.Errorf("doc %s has dimension %d, want 4", key, len(docs[i].Embedding))
		}
	}
	if len(VectorStoreBasics().Embedding) != 4 {
		t.Error("expected Vector Store Basics to share the corpus dimension")
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "corpus.yaml")

	content := `
documents:
  - key: second
    content: "two"
    embedding: [0, 1]
  - key: first
    content: "one"
    embedding: [1, 0]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	docs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 || docs[0].Key != "second" || docs[1].Key != "first" {
		t.Errorf("expected file order to be kept, got %+v", docs)
	}
	if !reflect.DeepEqual(docs[1].Embedding, []float64{1, 0}) {
		t.Errorf("unexpected embedding %v", docs[1].Embedding)
	}
}

func TestLoadFileRejectsEmptyKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := "documents:\n  - content: orphan\n    embedding: [1]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "empty key") {
		t.Errorf("expected empty key error, got %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	root := t.TempDir()
	write := func(rel string, docs []domain.Document) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := SaveFile(path, docs); err != nil {
			t.Fatal(err)
		}
	}

	write("b.yaml", []domain.Document{{Key: "b", Embedding: []float64{1}}})
	write("a/nested.yml", []domain.Document{{Key: "a", Embedding: []float64{1}}})
	write("skip/ignored.yaml", []domain.Document{{Key: "ignored", Embedding: []float64{1}}})
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	docs, err := LoadDir(root, nil, []string{"skip/**"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var keys []string
	for _, d := range docs {
		keys = append(keys, d.Key)
	}
	if !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", keys)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")

	snap, err := OpenSnapshot(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	// More than 255 entries so byte ordering of keys matters.
	docs := Default()
	for i := 0; i < 300; i++ {
		docs = append(docs, domain.Document{Key: strings.Repeat("x", i%7) + string(rune('a'+i%26)), Embedding: []float64{float64(i)}})
	}
	if err := snap.Export(docs); err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := snap.Export(docs[:len(docs)-1]); err != nil {
		t.Fatalf("re-export: %v", err)
	}
	if err := snap.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, docs[:len(docs)-1]) {
		t.Errorf("snapshot did not preserve documents and order")
	}
}
