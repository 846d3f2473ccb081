package corpus

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cag/internal/domain"
	"go.etcd.io/bbolt"
)

var bucketDocuments = []byte("documents")

// Snapshot is a BoltDB file holding an ordered corpus. Keys are big-endian
// sequence numbers so bolt's sorted iteration reproduces load order.
type Snapshot struct {
	db *bbolt.DB
}

func OpenSnapshot(path string) (*Snapshot, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDocuments)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create documents bucket: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// Export replaces the snapshot contents with docs.
func (s *Snapshot) Export(docs []domain.Document) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketDocuments); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		b, err := tx.CreateBucket(bucketDocuments)
		if err != nil {
			return err
		}

		for i, doc := range docs {
			data, err := json.Marshal(doc)
			if err != nil {
				return err
			}
			if err := b.Put(seqKey(uint64(i)), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Import reads every document back in export order.
func (s *Snapshot) Import() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var doc domain.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("corrupt snapshot entry %d: %w", binary.BigEndian.Uint64(k), err)
			}
			docs = append(docs, doc)
			return nil
		})
	})
	return docs, err
}

func (s *Snapshot) Close() error {
	return s.db.Close()
}

// LoadSnapshot opens path, imports its documents and closes it.
func LoadSnapshot(path string) ([]domain.Document, error) {
	snap, err := OpenSnapshot(path)
	if err != nil {
		return nil, err
	}
	defer snap.Close()
	return snap.Import()
}

func seqKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}
