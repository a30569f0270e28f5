package bfs

import (
	"fmt"

	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/trace"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	graph    *core.Graph
	start    string
	goal     string
	rec      *trace.Recorder
	queue    []string          // FIFO; queue[head:] is pending
	head     int               // index of the oldest pending entry
	enqueued map[string]bool   // ever enqueued
	parents  map[string]string // node → BFS-tree parent, "" for start
}

// Search runs breadth-first search on g from start toward goal.
// Returns ErrGraphNil, trace.ErrOptionViolation, or, with a partial aborted
// Result, a context or OnStep error.
func Search(g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := trace.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) || !g.HasNode(goal) {
		return trace.GoalMissing(Name, start, goal), nil
	}

	n := g.NodeCount()
	w := &walker{
		graph:    g,
		start:    start,
		goal:     goal,
		rec:      trace.NewRecorder(Name, start, goal, o),
		queue:    make([]string, 0, n),
		enqueued: make(map[string]bool, n),
		parents:  make(map[string]string, n),
	}

	// Seed queue with start (root parent)
	w.enqueue(start, "")

	return w.loop()
}

// enqueue records id's parent and appends it to the queue.
func (w *walker) enqueue(id, parent string) {
	w.enqueued[id] = true
	w.parents[id] = parent
	w.queue = append(w.queue, id)
}

// dequeue pops the oldest pending node.
func (w *walker) dequeue() string {
	id := w.queue[w.head]
	w.head++

	return id
}

// loop processes the queue until goal, exhaustion, cap, error, or cancellation.
func (w *walker) loop() (*trace.Result, error) {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		if err := w.rec.Interrupted(); err != nil {
			return w.rec.Abort(err)
		}
		if w.rec.CapReached() {
			return w.rec.Abort(nil)
		}

		cur := w.dequeue()
		if w.rec.Visited(cur) {
			continue
		}

		snap := trace.Snapshot{
			Frontier: w.queue[w.head:],
			Parents:  w.parents,
		}
		if err := w.rec.Expand(cur, snap, fmt.Sprintf("Exploring node %s", cur)); err != nil {
			return w.rec.Abort(err)
		}

		if cur == w.goal {
			path := trace.ReconstructPath(w.parents, w.start, w.goal)

			return w.rec.Finish(path, trace.HopCost(path))
		}

		w.enqueueNeighbors(cur)
	}

	return w.rec.Finish(nil, 0)
}

// enqueueNeighbors enqueues every neighbor of cur that was never enqueued.
func (w *walker) enqueueNeighbors(cur string) {
	for _, nb := range w.graph.Neighbors(cur) {
		// first time seen?
		if !w.enqueued[nb.ID] {
			w.enqueue(nb.ID, cur)
		}
	}
}
