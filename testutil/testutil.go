package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/recordlink/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// GroupedPoints generates groups*perGroup points on a line. Group g is
// centred on 100*g and every point lies within spread of its centre.
// The second return value is the ground-truth group of every point.
func (r *RNG) GroupedPoints(groups, perGroup int, spread float64) ([]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]float64, 0, groups*perGroup)
	gold := make([]int, 0, groups*perGroup)
	for g := range groups {
		centre := float64(100 * g)
		for range perGroup {
			points = append(points, centre+(r.rand.Float64()*2-1)*spread)
			gold = append(gold, g)
		}
	}
	return points, gold
}

// TokenRecords generates groups*perGroup token lists. Records of one group
// draw their tokens from a private vocabulary of vocab words, so records of
// different groups share no tokens. Every record holds at least one token.
func (r *RNG) TokenRecords(groups, perGroup, vocab int) ([][]string, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([][]string, 0, groups*perGroup)
	gold := make([]int, 0, groups*perGroup)
	for g := range groups {
		for range perGroup {
			n := 1 + r.rand.Intn(vocab)
			tokens := make([]string, n)
			for i := range tokens {
				tokens[i] = fmt.Sprintf("g%dw%d", g, r.rand.Intn(vocab))
			}
			records = append(records, tokens)
			gold = append(gold, g)
		}
	}
	return records, gold
}

// GoldClusters groups record ids by their gold label, ordered by smallest member.
func GoldClusters(gold []int) []model.Cluster {
	byLabel := make(map[int][]model.RecordID)
	var order []int
	for i, g := range gold {
		if _, ok := byLabel[g]; !ok {
			order = append(order, g)
		}
		byLabel[g] = append(byLabel[g], model.RecordID(i))
	}
	out := make([]model.Cluster, 0, len(order))
	for _, g := range order {
		out = append(out, model.NewCluster(byLabel[g]...))
	}
	model.SortClusters(out)
	return out
}

// IsPartition reports whether clusters assign each record in [0, n) exactly once.
func IsPartition(clusters []model.Cluster, n int) bool {
	seen := make([]bool, n)
	count := 0
	for _, c := range clusters {
		for _, r := range c {
			if int(r) >= n || seen[r] {
				return false
			}
			seen[r] = true
			count++
		}
	}
	return count == n
}

// Covers reports whether the union of clusters contains every record in [0, n).
func Covers(clusters []model.Cluster, n int) bool {
	seen := make([]bool, n)
	count := 0
	for _, c := range clusters {
		for _, r := range c {
			if int(r) < n && !seen[r] {
				seen[r] = true
				count++
			}
		}
	}
	return count == n
}
