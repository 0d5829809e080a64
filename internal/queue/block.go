package queue

import (
	"github.com/hupe1980/recordlink/model"
)

// BlockID identifies an enqueued block. Ids are assigned 0, 1, 2, ... in
// enqueue order and never reused.
type BlockID int

// entry is a heap snapshot of a block's hit count. Entries whose count no
// longer matches the live count are stale and skipped on pop.
type entry struct {
	id   BlockID
	hits int
}

// BlockQueue holds blocks waiting to be processed, ordered by hit count.
//
// Dequeue returns the block with the most hits; ties go to the lowest id.
// A hit on a block that was already dequeued brings it back with the content
// it was originally enqueued with.
//
// BlockQueue is not safe for concurrent use.
type BlockQueue struct {
	blocks   [][]model.Cluster
	hits     map[BlockID]int
	affected map[model.RecordID][]BlockID
	items    []entry
}

// New creates a queue holding the given initial blocks.
func New(initial ...[]model.Cluster) *BlockQueue {
	q := &BlockQueue{
		hits:     make(map[BlockID]int),
		affected: make(map[model.RecordID][]BlockID),
	}
	for _, b := range initial {
		q.Enqueue(b)
	}
	return q
}

// Enqueue inserts a block with zero hits and returns its id.
func (q *BlockQueue) Enqueue(block []model.Cluster) BlockID {
	id := BlockID(len(q.blocks))
	q.blocks = append(q.blocks, block)
	q.hits[id] = 0

	seen := make(map[model.RecordID]struct{})
	for _, c := range block {
		for _, r := range c {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			q.affected[r] = append(q.affected[r], id)
		}
	}

	q.push(entry{id: id})
	return id
}

// Len returns the number of blocks waiting to be processed.
func (q *BlockQueue) Len() int {
	return len(q.hits)
}

// Total returns the number of blocks ever enqueued.
func (q *BlockQueue) Total() int {
	return len(q.blocks)
}

// Hits returns the live hit count of id. ok is false when id is not queued.
func (q *BlockQueue) Hits(id BlockID) (int, bool) {
	h, ok := q.hits[id]
	return h, ok
}

// Hit adds one hit to every block containing each record, except origin.
// A block is hit once per matching record. It returns the ids of blocks that
// were brought back into the queue after having been dequeued.
func (q *BlockQueue) Hit(records []model.RecordID, origin BlockID) []BlockID {
	var revived []BlockID
	touched := make(map[BlockID]struct{})

	for _, r := range records {
		for _, id := range q.affected[r] {
			if id == origin {
				continue
			}
			h, ok := q.hits[id]
			if !ok {
				revived = append(revived, id)
			}
			q.hits[id] = h + 1
			touched[id] = struct{}{}
		}
	}

	for id := range touched {
		q.push(entry{id: id, hits: q.hits[id]})
	}
	return revived
}

// Dequeue removes the block with the most hits and returns it with its id.
// ok is false when the queue is empty.
func (q *BlockQueue) Dequeue() (BlockID, []model.Cluster, bool) {
	for len(q.items) > 0 {
		top := q.pop()
		h, ok := q.hits[top.id]
		if !ok || h != top.hits {
			continue
		}
		delete(q.hits, top.id)
		return top.id, q.blocks[top.id], true
	}
	return 0, nil, false
}

func (q *BlockQueue) less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.hits != b.hits {
		return a.hits > b.hits
	}
	return a.id < b.id
}

func (q *BlockQueue) push(e entry) {
	q.items = append(q.items, e)
	q.siftUp(len(q.items) - 1)
}

func (q *BlockQueue) pop() entry {
	n := len(q.items)
	root := q.items[0]
	q.items[0] = q.items[n-1]
	q.items = q.items[:n-1]
	if len(q.items) > 0 {
		q.siftDown(0)
	}
	return root
}

func (q *BlockQueue) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *BlockQueue) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}
