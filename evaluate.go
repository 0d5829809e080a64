package recordlink

import (
	"github.com/hupe1980/recordlink/dataset"
	"github.com/hupe1980/recordlink/eval"
	"github.com/hupe1980/recordlink/model"
)

// Evaluation compares a clustering against gold labels.
type Evaluation struct {
	Pairwise               eval.Scores
	Cluster                eval.Scores
	VariationOfInformation float64
}

// Evaluate scores clusters against the labels of records. Records without a
// label form their own gold entity. ErrNoLabels is returned when no record
// is labeled.
func Evaluate(clusters []model.Cluster, records []dataset.Record) (Evaluation, error) {
	labels, ok := dataset.Labels(records)
	if !ok {
		return Evaluation{}, ErrNoLabels
	}
	gold := eval.GoldByLabel(labels)
	n := len(records)
	return Evaluation{
		Pairwise:               eval.PairwiseF1(n, clusters, gold),
		Cluster:                eval.ClusterF1(clusters, gold),
		VariationOfInformation: eval.VariationOfInformation(clusters, gold, n),
	}, nil
}
