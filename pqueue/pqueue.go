package pqueue

import "container/heap"

// Item is one queue entry as seen by callers.
type Item struct {
	ID        string  // node ID
	Priority  float64 // ordering key
	Secondary float64 // caller payload, not used for ordering
}

// entry is the heap-resident form of an Item.
type entry struct {
	Item
	seq   uint64 // insertion sequence, tie-breaker
	index int    // slot in the heap, maintained by Swap
}

// entryHeap implements heap.Interface ordered by (Priority, seq).
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue of unique node IDs with decrease-key.
type Queue struct {
	h     entryHeap
	index map[string]*entry
	seq   uint64
}

// New returns an empty Queue. capacity is a sizing hint.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue{
		h:     make(entryHeap, 0, capacity),
		index: make(map[string]*entry, capacity),
	}
}

// Insert adds id with the given priority and secondary payload.
// Returns false, without modifying the queue, when id is already present.
func (q *Queue) Insert(id string, priority, secondary float64) bool {
	if _, ok := q.index[id]; ok {
		return false
	}
	e := &entry{
		Item: Item{ID: id, Priority: priority, Secondary: secondary},
		seq:  q.seq,
	}
	q.seq++
	heap.Push(&q.h, e)
	q.index[id] = e

	return true
}

// ExtractMin removes and returns the entry with the smallest priority.
// The boolean is false when the queue is empty.
func (q *Queue) ExtractMin() (Item, bool) {
	if len(q.h) == 0 {
		return Item{}, false
	}
	e := heap.Pop(&q.h).(*entry)
	delete(q.index, e.ID)

	return e.Item, true
}

// Peek returns the minimum entry without removing it.
func (q *Queue) Peek() (Item, bool) {
	if len(q.h) == 0 {
		return Item{}, false
	}

	return q.h[0].Item, true
}

// Contains reports whether id is currently queued.
func (q *Queue) Contains(id string) bool {
	_, ok := q.index[id]

	return ok
}

// UpdatePriority repositions id with new keys, keeping its insertion sequence.
// It is a no-op returning false when id is absent.
func (q *Queue) UpdatePriority(id string, priority, secondary float64) bool {
	e, ok := q.index[id]
	if !ok {
		return false
	}
	e.Priority = priority
	e.Secondary = secondary
	heap.Fix(&q.h, e.index)

	return true
}

// Priority returns the current priority of id.
func (q *Queue) Priority(id string) (float64, bool) {
	e, ok := q.index[id]
	if !ok {
		return 0, false
	}

	return e.Priority, true
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of queued entries.
func (q *Queue) Len() int { return len(q.h) }

// IDs returns the queued IDs in heap order. The order is unspecified;
// callers use it as a set snapshot.
func (q *Queue) IDs() []string {
	out := make([]string, len(q.h))
	for i, e := range q.h {
		out[i] = e.ID
	}

	return out
}
