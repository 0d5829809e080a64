package eval

import (
	"math"

	"github.com/hupe1980/recordlink/model"
)

// Scores holds precision, recall and their harmonic mean.
type Scores struct {
	F1        float64
	Precision float64
	Recall    float64
}

func newScores(num, pDen, rDen float64) Scores {
	var s Scores
	if pDen > 0 {
		s.Precision = num / pDen
	}
	if rDen > 0 {
		s.Recall = num / rDen
	}
	if s.Precision+s.Recall > 0 {
		s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
	}
	return s
}

// assign maps each record in [0, n) to a cluster index. Unassigned records
// get a fresh index of their own.
func assign(clusters []model.Cluster, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}
	for i, c := range clusters {
		for _, r := range c {
			if int(r) < n {
				out[r] = i
			}
		}
	}
	next := len(clusters)
	for i, a := range out {
		if a < 0 {
			out[i] = next
			next++
		}
	}
	return out
}

func pairs(k int) float64 {
	return float64(k) * float64(k-1) / 2
}

// PairwiseF1 compares the sets of co-clustered record pairs over records
// [0, n). Precision is the share of experimental pairs that are gold pairs,
// recall the share of gold pairs that are experimental pairs.
func PairwiseF1(n int, experimental, gold []model.Cluster) Scores {
	e := assign(experimental, n)
	g := assign(gold, n)

	type cell struct{ e, g int }
	joint := make(map[cell]int)
	eSize := make(map[int]int)
	gSize := make(map[int]int)
	for r := range n {
		joint[cell{e[r], g[r]}]++
		eSize[e[r]]++
		gSize[g[r]]++
	}

	var num, pDen, rDen float64
	for _, k := range joint {
		num += pairs(k)
	}
	for _, k := range eSize {
		pDen += pairs(k)
	}
	for _, k := range gSize {
		rDen += pairs(k)
	}
	return newScores(num, pDen, rDen)
}

// ClusterF1 counts gold clusters reproduced exactly. Precision divides by
// the number of experimental clusters, recall by the number of gold ones.
func ClusterF1(experimental, gold []model.Cluster) Scores {
	seen := make(map[string]struct{}, len(experimental))
	for _, c := range experimental {
		seen[model.NewCluster(c...).Key()] = struct{}{}
	}

	var num float64
	for _, c := range gold {
		if _, ok := seen[model.NewCluster(c...).Key()]; ok {
			num++
		}
	}
	return newScores(num, float64(len(experimental)), float64(len(gold)))
}

// VariationOfInformation returns H(E) + H(G) - 2·I(E;G) in nats for two
// partitions of n records. Zero means identical partitions.
func VariationOfInformation(experimental, gold []model.Cluster, n int) float64 {
	if n == 0 {
		return 0
	}
	fn := float64(n)

	entropy := func(cs []model.Cluster) float64 {
		var h float64
		for _, c := range cs {
			if len(c) == 0 {
				continue
			}
			p := float64(len(c)) / fn
			h -= p * math.Log(p)
		}
		return h
	}

	var mi float64
	for _, ec := range experimental {
		for _, gc := range gold {
			k := intersect(ec, gc)
			if k == 0 {
				continue
			}
			fk := float64(k)
			mi += fk / fn * math.Log(fk*fn/(float64(len(ec))*float64(len(gc))))
		}
	}
	return entropy(experimental) + entropy(gold) - 2*mi
}

func intersect(a, b model.Cluster) int {
	a, b = model.NewCluster(a...), model.NewCluster(b...)
	k := 0
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			k++
			i++
			j++
		}
	}
	return k
}

// GoldByLabel groups records by label. Record i carries labels[i]; empty
// labels are treated as unique. Clusters are ordered by smallest member.
func GoldByLabel(labels []string) []model.Cluster {
	byLabel := make(map[string][]model.RecordID)
	var out []model.Cluster
	for i, l := range labels {
		if l == "" {
			out = append(out, model.Singleton(model.RecordID(i)))
			continue
		}
		byLabel[l] = append(byLabel[l], model.RecordID(i))
	}
	for _, ids := range byLabel {
		out = append(out, model.NewCluster(ids...))
	}
	model.SortClusters(out)
	return out
}
