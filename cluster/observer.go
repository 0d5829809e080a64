package cluster

import (
	"github.com/hupe1980/recordlink/model"
	"github.com/hupe1980/recordlink/score"
)

// MergeEvent describes one merge step.
type MergeEvent struct {
	// Left and Right are the retired cluster ids, Left < Right.
	Left, Right model.ClusterID
	// Merged is the id of the new cluster.
	Merged model.ClusterID
	// Members of the new cluster.
	Members model.Cluster
	// Score is the linkage score that won this step.
	Score score.Result
	// Remaining is the cluster count after the merge.
	Remaining int
}

// MergeObserver is notified after every merge. Observers shared by runs on
// several goroutines must be safe for concurrent use.
type MergeObserver interface {
	OnMerge(e MergeEvent)
}

// MergeObserverFunc adapts a function to MergeObserver.
type MergeObserverFunc func(e MergeEvent)

// OnMerge calls f(e).
func (f MergeObserverFunc) OnMerge(e MergeEvent) { f(e) }
