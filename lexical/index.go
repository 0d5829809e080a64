package lexical

import (
	"math"
	"strings"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// DocID is a sequential document identifier starting at 0.
type DocID uint32

// TermID is a stable vocabulary identifier assigned on first sight.
type TermID uint32

// Index is an inverted index tracking term and document frequencies.
type Index struct {
	mu       sync.RWMutex
	vocab    map[string]TermID
	terms    []string
	tf       []map[TermID]float64 // indexed by DocID
	postings []*roaring.Bitmap    // indexed by TermID

	idf     []float64 // nil until first requested
	idfDocs int       // document count the idf cache was built for
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		vocab: make(map[string]TermID),
	}
}

// Build creates an Index holding docs in order; doc i receives DocID i.
func Build(docs [][]string) *Index {
	idx := New()
	for _, d := range docs {
		idx.AddDocument(d)
	}
	return idx
}

// Tokenize lowercases text and splits it on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// AddText tokenizes text and adds it as a document.
func (idx *Index) AddText(text string) DocID {
	return idx.AddDocument(Tokenize(text))
}

// AddDocument adds a token sequence and returns its DocID.
func (idx *Index) AddDocument(tokens []string) DocID {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	doc := DocID(len(idx.tf))
	freqs := make(map[TermID]float64)
	if n := len(tokens); n > 0 {
		inc := 1.0 / float64(n)
		for _, tok := range tokens {
			id := idx.termIDLocked(strings.ToLower(tok))
			freqs[id] += inc
			idx.postings[id].Add(uint32(doc))
		}
	}
	idx.tf = append(idx.tf, freqs)
	return doc
}

func (idx *Index) termIDLocked(term string) TermID {
	if id, ok := idx.vocab[term]; ok {
		return id
	}
	id := TermID(len(idx.terms))
	idx.vocab[term] = id
	idx.terms = append(idx.terms, term)
	idx.postings = append(idx.postings, roaring.New())
	return id
}

// lookupLocked never grows the vocabulary.
func (idx *Index) lookupLocked(term string) (TermID, bool) {
	id, ok := idx.vocab[strings.ToLower(term)]
	return id, ok
}

// TermID returns the vocabulary id of term.
func (idx *Index) TermID(term string) (TermID, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.lookupLocked(term)
}

// NumDocuments returns the number of documents added so far.
func (idx *Index) NumDocuments() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.tf)
}

// VocabularySize returns the number of distinct terms seen.
func (idx *Index) VocabularySize() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.terms)
}

// Terms returns the terms of doc with their normalized frequencies.
func (idx *Index) Terms(doc DocID) map[string]float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if int(doc) >= len(idx.tf) {
		return nil
	}
	out := make(map[string]float64, len(idx.tf[doc]))
	for id, f := range idx.tf[doc] {
		out[idx.terms[id]] = f
	}
	return out
}

// TermFrequency returns occurrences/length of term in doc, or 0 if unseen.
func (idx *Index) TermFrequency(term string, doc DocID) float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	id, ok := idx.lookupLocked(term)
	if !ok || int(doc) >= len(idx.tf) {
		return 0
	}
	return idx.tf[doc][id]
}

// DocumentFrequency returns the number of documents containing term.
func (idx *Index) DocumentFrequency(term string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	id, ok := idx.lookupLocked(term)
	if !ok {
		return 0
	}
	return int(idx.postings[id].GetCardinality())
}

// InverseDocumentFrequency returns ln(N / df(term)), or 0 for unseen terms.
// The first call computes and caches the value for the whole vocabulary.
func (idx *Index) InverseDocumentFrequency(term string) float64 {
	idf := idx.idfTable()

	idx.mu.RLock()
	defer idx.mu.RUnlock()
	id, ok := idx.lookupLocked(term)
	if !ok || int(id) >= len(idf) {
		return 0
	}
	return idf[id]
}

// Stale reports whether documents were added after the idf cache was built.
func (idx *Index) Stale() bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.idf != nil && idx.idfDocs != len(idx.tf)
}

// RecomputeIDF rebuilds the idf cache from the current documents.
func (idx *Index) RecomputeIDF() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.computeIDFLocked()
}

func (idx *Index) idfTable() []float64 {
	idx.mu.RLock()
	idf := idx.idf
	idx.mu.RUnlock()
	if idf != nil {
		return idf
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.idf == nil {
		idx.computeIDFLocked()
	}
	return idx.idf
}

func (idx *Index) computeIDFLocked() {
	n := float64(len(idx.tf))
	idf := make([]float64, len(idx.terms))
	for id, p := range idx.postings {
		if df := p.GetCardinality(); df > 0 {
			idf[id] = math.Log(n / float64(df))
		}
	}
	idx.idf = idf
	idx.idfDocs = len(idx.tf)
}

// Scores returns the TF-IDF dot product between doc and every other document
// sharing at least one term with it:
//
//	score(other) = Σ tf(t, doc) · tf(t, other) · idf(t)
//
// doc itself is omitted. Documents not listed share no terms with doc.
func (idx *Index) Scores(doc DocID) map[DocID]float64 {
	idf := idx.idfTable()

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	scores := make(map[DocID]float64)
	if int(doc) >= len(idx.tf) {
		return scores
	}
	for term, freq := range idx.tf[doc] {
		var weight float64
		if int(term) < len(idf) {
			weight = idf[term]
		}
		it := idx.postings[term].Iterator()
		for it.HasNext() {
			other := DocID(it.Next())
			if other == doc {
				continue
			}
			scores[other] += freq * idx.tf[other][term] * weight
		}
	}
	return scores
}
