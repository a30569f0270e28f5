package trace

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Outcome classifies how a search terminated.
type Outcome int

const (
	// OutcomeNoPath means the frontier was exhausted without reaching the goal.
	OutcomeNoPath Outcome = iota

	// OutcomeFound means the goal was dequeued and a path reconstructed.
	OutcomeFound

	// OutcomeGoalMissing means start or goal is absent from the graph.
	OutcomeGoalMissing

	// OutcomeAborted means the search was stopped before reaching a verdict.
	OutcomeAborted
)

var outcomeNames = [...]string{
	OutcomeNoPath:      "no-path",
	OutcomeFound:       "found",
	OutcomeGoalMissing: "goal-missing",
	OutcomeAborted:     "aborted",
}

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}

	return outcomeNames[o]
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome name.
func (o *Outcome) UnmarshalText(b []byte) error {
	for i, name := range outcomeNames {
		if name == string(b) {
			*o = Outcome(i)

			return nil
		}
	}

	return fmt.Errorf("trace: unknown outcome %q", b)
}

// Set is an unordered set of node IDs.
// It marshals to JSON as a sorted array.
type Set map[string]struct{}

// NewSet returns a Set holding ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Add inserts id.
func (s Set) Add(id string) { s[id] = struct{}{} }

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of IDs.
func (s *Set) UnmarshalJSON(b []byte) error {
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*s = NewSet(ids...)

	return nil
}

// Distances maps node ID to best-known cost from start. Undiscovered nodes
// hold +Inf; those entries are left out of the JSON form.
type Distances map[string]float64

// MarshalJSON encodes only the finite entries.
func (d Distances) MarshalJSON() ([]byte, error) {
	finite := make(map[string]float64, len(d))
	for id, v := range d {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			finite[id] = v
		}
	}

	return json.Marshal(finite)
}

// Of returns the distance of id, +Inf when absent.
func (d Distances) Of(id string) float64 {
	v, ok := d[id]
	if !ok {
		return math.Inf(1)
	}

	return v
}

// Step is one frame of a search trace.
type Step struct {
	// Current is the node expanded in this step; empty only in the terminal step.
	Current string `json:"current,omitempty"`

	// Frontier holds the IDs still pending after Current was removed.
	Frontier Set `json:"frontier"`

	// Visited holds every node expanded so far, Current included.
	Visited Set `json:"visited"`

	// Path is the final path; set only in the terminal step.
	Path []string `json:"path,omitempty"`

	// BestPath and BestCost describe the best complete start→goal chain known
	// so far. Only Dijkstra sets them.
	BestPath []string `json:"bestPath,omitempty"`
	BestCost float64  `json:"bestCost,omitempty"`

	// Distances and Parents are state snapshots ("" parent marks the root).
	Distances Distances         `json:"distances,omitempty"`
	Parents   map[string]string `json:"parents,omitempty"`

	// Message is a human-readable description of the step.
	Message string `json:"message"`
}

// IsTerminal reports whether s is the closing summary step.
func (s Step) IsTerminal() bool { return s.Current == "" }

// HasBestPath reports whether s carries a best-path snapshot.
func (s Step) HasBestPath() bool { return len(s.BestPath) > 0 }

// Result is the complete output of one search.
type Result struct {
	Algorithm     string   `json:"algorithm"`
	Start         string   `json:"start"`
	Goal          string   `json:"goal"`
	Steps         []Step   `json:"steps"`
	FinalPath     []string `json:"finalPath"`
	TotalCost     float64  `json:"totalCost"`
	NodesExpanded int      `json:"nodesExpanded"`
	Outcome       Outcome  `json:"outcome"`
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r.Outcome == OutcomeFound }

// Terminal returns the closing step, if the trace has one.
func (r *Result) Terminal() (Step, bool) {
	if len(r.Steps) == 0 {
		return Step{}, false
	}
	last := r.Steps[len(r.Steps)-1]
	if !last.IsTerminal() {
		return Step{}, false
	}

	return last, true
}

// ExpansionSteps returns the steps that expand a node, terminal step excluded.
func (r *Result) ExpansionSteps() []Step {
	if _, ok := r.Terminal(); ok {
		return r.Steps[:len(r.Steps)-1]
	}

	return r.Steps
}

// Summary returns the terminal message, or a short outcome line when the
// trace is empty.
func (r *Result) Summary() string {
	if t, ok := r.Terminal(); ok {
		return t.Message
	}
	if r.Outcome == OutcomeGoalMissing {
		return fmt.Sprintf("Node %s or %s is not in the graph", r.Start, r.Goal)
	}

	return r.Outcome.String()
}

// FormatCost renders a cost the shortest way that round-trips,
// e.g. 2, 7.5, 12.25.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
