package dfs

import (
	"fmt"

	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/trace"
)

// dfsWalker encapsulates state during one DFS run.
type dfsWalker struct {
	graph   *core.Graph       // underlying graph
	start   string            // root of the search
	goal    string            // target node
	rec     *trace.Recorder   // step collector
	stack   []string          // LIFO frontier
	parents map[string]string // discovery parent; presence means "pushed once"
}

// Search performs depth-first search on g from start toward goal.
// Returns the trace Result, or an error if aborted by context or hook.
func Search(g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o, err := trace.Resolve(opts...)
	if err != nil {
		return nil, err
	}

	// 3. Absent endpoints: empty trace
	if !g.HasNode(start) || !g.HasNode(goal) {
		return trace.GoalMissing(Name, start, goal), nil
	}

	// 4. Run
	w := &dfsWalker{
		graph:   g,
		start:   start,
		goal:    goal,
		rec:     trace.NewRecorder(Name, start, goal, o),
		stack:   []string{start},
		parents: map[string]string{start: ""},
	}

	return w.run()
}

// run pops the stack until goal, exhaustion, cap, error, or cancellation.
func (w *dfsWalker) run() (*trace.Result, error) {
	var cur string
	for len(w.stack) > 0 {
		if err := w.rec.Interrupted(); err != nil {
			return w.rec.Abort(err)
		}
		if w.rec.CapReached() {
			return w.rec.Abort(nil)
		}

		cur = w.pop()
		if w.rec.Visited(cur) {
			continue
		}

		snap := trace.Snapshot{Frontier: w.stack, Parents: w.parents}
		if err := w.rec.Expand(cur, snap, fmt.Sprintf("Exploring node %s", cur)); err != nil {
			return w.rec.Abort(err)
		}

		if cur == w.goal {
			path := trace.ReconstructPath(w.parents, w.start, w.goal)

			return w.rec.Finish(path, trace.HopCost(path))
		}

		w.pushNeighbors(cur)
	}

	return w.rec.Finish(nil, 0)
}

// pop removes and returns the top of the stack.
func (w *dfsWalker) pop() string {
	top := len(w.stack) - 1
	id := w.stack[top]
	w.stack = w.stack[:top]

	return id
}

// pushNeighbors pushes every undiscovered neighbor of cur.
func (w *dfsWalker) pushNeighbors(cur string) {
	for _, nb := range w.graph.Neighbors(cur) {
		if _, seen := w.parents[nb.ID]; seen {
			continue
		}
		w.parents[nb.ID] = cur
		w.stack = append(w.stack, nb.ID)
	}
}
