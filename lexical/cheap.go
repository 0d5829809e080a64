package lexical

import (
	"sync"

	"github.com/hupe1980/recordlink/model"
)

// ScoreTable memoizes Scores per anchor document. Record ids are taken to be
// document ids, which holds when the index was built in record order.
type ScoreTable struct {
	idx *Index

	mu     sync.Mutex
	scores map[DocID]map[DocID]float64
}

// NewScoreTable creates a memoizing view over idx.
func NewScoreTable(idx *Index) *ScoreTable {
	return &ScoreTable{
		idx:    idx,
		scores: make(map[DocID]map[DocID]float64),
	}
}

// Similarity returns the TF-IDF score from anchor a to b. Pairs sharing no
// term score 0.
func (t *ScoreTable) Similarity(a, b model.RecordID) float64 {
	t.mu.Lock()
	s, ok := t.scores[DocID(a)]
	t.mu.Unlock()
	if !ok {
		s = t.idx.Scores(DocID(a))
		t.mu.Lock()
		t.scores[DocID(a)] = s
		t.mu.Unlock()
	}
	return s[DocID(b)]
}

// Len returns the number of memoized anchors.
func (t *ScoreTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.scores)
}
