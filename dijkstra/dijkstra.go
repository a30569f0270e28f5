package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/pqueue"
	"github.com/katalvlaran/searchtrace/trace"
)

// Search computes the cheapest path from start to goal in g and returns the
// full expansion trace.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. options must be valid (trace.ErrOptionViolation).
//  3. start and goal must exist, otherwise an empty trace with
//     trace.OutcomeGoalMissing is returned without error.
//
// Complexity:
//
//   - Time:  O((V + E) log V) plus snapshot cost
//   - Space: O(V)
func Search(g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Build and validate Options
	o, err := trace.Resolve(opts...)
	if err != nil {
		return nil, err
	}

	// 3) Endpoints must exist
	if !g.HasNode(start) || !g.HasNode(goal) {
		return trace.GoalMissing(Name, start, goal), nil
	}

	// 4) Initialize runner and run main loop
	ids := g.NodeIDs()
	r := &runner{
		g:     g,
		start: start,
		goal:  goal,
		rec:   trace.NewRecorder(Name, start, goal, o),
		dist:  trace.NewDistances(ids),
		prev:  make(map[string]string, len(ids)),
		pq:    pqueue.New(len(ids)),
	}
	r.init()

	return r.process()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g     *core.Graph        // The input graph; read-only within Search.
	start string             // Source node.
	goal  string             // Target node.
	rec   *trace.Recorder    // Step collector and visited set.
	dist  map[string]float64 // Maps node ID → current best distance from start.
	prev  map[string]string  // Maps node ID → predecessor on the best path.
	pq    *pqueue.Queue      // Min-heap keyed by distance.
}

// init sets the source distance to zero and queues it.
func (r *runner) init() {
	r.dist[r.start] = 0
	r.prev[r.start] = ""
	r.pq.Insert(r.start, 0, 0)
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// node with the minimum distance, records a step, and relaxes its outgoing
// edges until goal is extracted or the queue is empty.
func (r *runner) process() (*trace.Result, error) {
	var u string
	for !r.pq.IsEmpty() {
		// cancellation and cap check (once per loop)
		if err := r.rec.Interrupted(); err != nil {
			return r.rec.Abort(err)
		}
		if r.rec.CapReached() {
			return r.rec.Abort(nil)
		}

		// 1) Pop the smallest-distance node.
		item, _ := r.pq.ExtractMin()
		u = item.ID

		// 2) Skip nodes already finalized.
		if r.rec.Visited(u) {
			continue
		}

		// 3) Record the expansion, with the best complete path known so far.
		bestPath, bestCost := r.bestSoFar()
		snap := trace.Snapshot{
			Frontier:  r.pq.IDs(),
			Distances: r.dist,
			Parents:   r.prev,
			BestPath:  bestPath,
			BestCost:  bestCost,
		}
		msg := fmt.Sprintf("Exploring node %s with distance %s", u, trace.FormatCost(r.dist[u]))
		if err := r.rec.Expand(u, snap, msg); err != nil {
			return r.rec.Abort(err)
		}

		// 4) Goal reached: its distance is final.
		if u == r.goal {
			return r.rec.Finish(trace.ReconstructPath(r.prev, r.start, r.goal), r.dist[u])
		}

		// 5) Relax all outgoing edges from u.
		r.relax(u)
	}

	return r.rec.Finish(nil, 0)
}

// relax examines each edge outgoing from u and improves distances to its
// unfinalized neighbors. A strictly shorter distance updates dist and prev and
// either repositions the neighbor in the queue or inserts it.
func (r *runner) relax(u string) {
	var nb core.Neighbor
	var newDist float64
	for _, nb = range r.g.Neighbors(u) {
		if r.rec.Visited(nb.ID) {
			continue
		}

		// Compute candidate distance start → … → u → v.
		newDist = r.dist[u] + nb.Weight

		// Use "<" rather than "≤" so equal-cost paths keep their first parent.
		if newDist >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = newDist
		r.prev[nb.ID] = u

		if !r.pq.UpdatePriority(nb.ID, newDist, 0) {
			r.pq.Insert(nb.ID, newDist, 0)
		}
	}
}

// bestSoFar returns the path to goal through current parent pointers when
// goal has a finite distance and the chain reaches start with more than one
// node. Otherwise it returns nil.
func (r *runner) bestSoFar() ([]string, float64) {
	d := r.dist[r.goal]
	if math.IsInf(d, 1) {
		return nil, 0
	}
	path := trace.ReconstructPath(r.prev, r.start, r.goal)
	if len(path) <= 1 {
		return nil, 0
	}

	return path, d
}
