package dataset

import (
	"github.com/hupe1980/recordlink/feature"
	"github.com/hupe1980/recordlink/lexical"
)

// Record is one input line.
type Record struct {
	ID       string         `json:"id"`
	Text     string         `json:"text,omitempty"`
	Tokens   []string       `json:"tokens,omitempty"`
	Category string         `json:"category,omitempty"`
	Entities map[string]int `json:"entities,omitempty"`
	Label    string         `json:"label,omitempty"`
}

// Terms returns the explicit tokens, or the tokenized text.
func (r Record) Terms() []string {
	if len(r.Tokens) > 0 {
		return r.Tokens
	}
	return lexical.Tokenize(r.Text)
}

// Documents returns the token sequence of every record.
func Documents(records []Record) [][]string {
	docs := make([][]string, len(records))
	for i, r := range records {
		docs[i] = r.Terms()
	}
	return docs
}

// Sources converts records into feature sources.
func Sources(records []Record) []feature.Source {
	out := make([]feature.Source, len(records))
	for i, r := range records {
		out[i] = feature.Source{
			Tokens:   r.Terms(),
			Category: r.Category,
			Entities: r.Entities,
		}
	}
	return out
}

// Labels returns the gold label of every record and whether any is set.
func Labels(records []Record) ([]string, bool) {
	labels := make([]string, len(records))
	var labeled bool
	for i, r := range records {
		labels[i] = r.Label
		labeled = labeled || r.Label != ""
	}
	return labels, labeled
}
