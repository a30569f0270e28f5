package astar

import (
	"fmt"

	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/pqueue"
	"github.com/katalvlaran/searchtrace/trace"
)

// searcher owns the open set and score maps of one A* run.
type searcher struct {
	graph    *core.Graph
	start    string
	goal     string
	rec      *trace.Recorder
	gScore   map[string]float64 // best known cost from start
	fScore   map[string]float64 // gScore + heuristic
	cameFrom map[string]string  // predecessor, "" for start
	openSet  *pqueue.Queue      // keyed by f, secondary g
}

// Search executes A* from start to goal on g.
// Returns ErrGraphNil, trace.ErrOptionViolation, or a context/hook error
// together with a partial aborted Result.
func Search(g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := trace.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(goal) || !g.HasNode(start) {
		return trace.GoalMissing(Name, start, goal), nil
	}

	// --- Initialize state ---
	ids := g.NodeIDs()
	s := &searcher{
		graph:    g,
		start:    start,
		goal:     goal,
		rec:      trace.NewRecorder(Name, start, goal, o),
		gScore:   trace.NewDistances(ids),
		fScore:   trace.NewDistances(ids),
		cameFrom: make(map[string]string, len(ids)),
		openSet:  pqueue.New(len(ids)),
	}
	h := g.Heuristic(start)
	s.gScore[start] = 0
	s.fScore[start] = h
	s.cameFrom[start] = ""
	s.openSet.Insert(start, h, 0)

	return s.run()
}

// run is the orchestrator loop: pop the lowest f, record, relax.
func (s *searcher) run() (*trace.Result, error) {
	for !s.openSet.IsEmpty() {
		if err := s.rec.Interrupted(); err != nil {
			return s.rec.Abort(err)
		}
		if s.rec.CapReached() {
			return s.rec.Abort(nil)
		}

		currentItem, _ := s.openSet.ExtractMin()
		current := currentItem.ID
		if s.rec.Visited(current) {
			continue
		}

		snap := trace.Snapshot{
			Frontier:  s.openSet.IDs(),
			Distances: s.gScore,
			Parents:   s.cameFrom,
		}
		msg := fmt.Sprintf("Exploring node %s with g=%.2f, f=%.2f", current, s.gScore[current], s.fScore[current])
		if err := s.rec.Expand(current, snap, msg); err != nil {
			return s.rec.Abort(err)
		}

		if current == s.goal {
			return s.rec.Finish(trace.ReconstructPath(s.cameFrom, s.start, s.goal), s.gScore[current])
		}

		s.relax(current)
	}

	return s.rec.Finish(nil, 0)
}

// relax proposes g[current]+w for every unvisited neighbor and accepts
// strictly better proposals.
func (s *searcher) relax(current string) {
	currentG := s.gScore[current]
	for _, nb := range s.graph.Neighbors(current) {
		if s.rec.Visited(nb.ID) {
			continue
		}
		tentativeG := currentG + nb.Weight
		if tentativeG >= s.gScore[nb.ID] {
			continue
		}
		f := tentativeG + s.graph.Heuristic(nb.ID)
		s.gScore[nb.ID] = tentativeG
		s.fScore[nb.ID] = f
		s.cameFrom[nb.ID] = current
		if !s.openSet.UpdatePriority(nb.ID, f, tentativeG) {
			s.openSet.Insert(nb.ID, f, tentativeG)
		}
	}
}
