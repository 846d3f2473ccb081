package domain

// Document is a corpus entry held by the vector store.
type Document struct {
	Key       string    `json:"key" yaml:"key"`
	Content   string    `json:"content" yaml:"content"`
	Embedding []float64 `json:"embedding" yaml:"embedding"`
}

// Scored is a single row produced by a vector store scan.
type Scored struct {
	Key        string
	Content    string
	Similarity float64
}

// Status is the outcome of comparing the best similarity to the threshold.
type Status string

const (
	StatusHit  Status = "hit"
	StatusMiss Status = "miss"
)

// Outcome is the resolved answer to one query.
type Outcome struct {
	Query      string
	Status     Status
	Similarity float64
	Threshold  float64
	Match      *Scored // set only on a hit
}

func (o Outcome) Hit() bool {
	return o.Status == StatusHit
}
