package greedy

import (
	"fmt"

	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/pqueue"
	"github.com/katalvlaran/searchtrace/trace"
)

// walker holds the state of one greedy best-first run.
type walker struct {
	graph   *core.Graph
	start   string
	goal    string
	rec     *trace.Recorder
	parents map[string]string // first discoverer; presence means "queued once"
	pq      *pqueue.Queue     // keyed by heuristic
}

// Search runs greedy best-first search on g from start toward goal.
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
		graph:   g,
		start:   start,
		goal:    goal,
		rec:     trace.NewRecorder(Name, start, goal, o),
		parents: make(map[string]string, n),
		pq:      pqueue.New(n),
	}
	w.parents[start] = ""
	w.pq.Insert(start, g.Heuristic(start), 0)

	return w.loop()
}

// loop expands the lowest-heuristic node until goal or exhaustion.
func (w *walker) loop() (*trace.Result, error) {
	for !w.pq.IsEmpty() {
		if err := w.rec.Interrupted(); err != nil {
			return w.rec.Abort(err)
		}
		if w.rec.CapReached() {
			return w.rec.Abort(nil)
		}

		item, _ := w.pq.ExtractMin()
		cur := item.ID
		if w.rec.Visited(cur) {
			continue
		}

		snap := trace.Snapshot{Frontier: w.pq.IDs(), Parents: w.parents}
		msg := fmt.Sprintf("Exploring node %s with heuristic %.2f", cur, item.Priority)
		if err := w.rec.Expand(cur, snap, msg); err != nil {
			return w.rec.Abort(err)
		}

		if cur == w.goal {
			return w.finish()
		}

		w.discover(cur)
	}

	return w.rec.Finish(nil, 0)
}

// discover queues every neighbor of cur that has no parent yet.
func (w *walker) discover(cur string) {
	for _, nb := range w.graph.Neighbors(cur) {
		if w.rec.Visited(nb.ID) {
			continue
		}
		if _, known := w.parents[nb.ID]; known {
			continue
		}
		w.parents[nb.ID] = cur
		w.pq.Insert(nb.ID, w.graph.Heuristic(nb.ID), 0)
	}
}

// finish reconstructs the path and prices it post hoc.
func (w *walker) finish() (*trace.Result, error) {
	path := trace.ReconstructPath(w.parents, w.start, w.goal)
	cost, _ := trace.PathCost(w.graph, path)

	return w.rec.Finish(path, cost)
}
