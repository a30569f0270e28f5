package strategy

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/searchtrace/core"
	"github.com/katalvlaran/searchtrace/trace"
)

// Comparison holds the results of several algorithms on the same query.
type Comparison struct {
	Start      string
	Goal       string
	Algorithms []Algorithm
	Results    map[Algorithm]*trace.Result
}

// Compare runs algs concurrently over g. An empty algs means All();
// duplicates are dropped. ctx cancels every run; it is passed to each
// search after opts, so it overrides any trace.WithContext in opts.
//
// On the first failing run the remaining runs are cancelled and the error
// is returned together with the Comparison holding whatever finished.
func Compare(ctx context.Context, g *core.Graph, start, goal string, algs []Algorithm, opts ...trace.Option) (*Comparison, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(algs) == 0 {
		algs = All()
	}
	algs = dedupe(algs)
	for _, a := range algs {
		if !a.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
		}
	}

	results := make([]*trace.Result, len(algs))
	grp, gctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		i, alg := i, alg
		runOpts := make([]trace.Option, 0, len(opts)+1)
		runOpts = append(runOpts, opts...)
		runOpts = append(runOpts, trace.WithContext(gctx))
		grp.Go(func() error {
			res, err := Run(alg, g, start, goal, runOpts...)
			results[i] = res
			if err != nil {
				return fmt.Errorf("%s: %w", alg, err)
			}

			return nil
		})
	}
	err := grp.Wait()

	c := &Comparison{
		Start:      start,
		Goal:       goal,
		Algorithms: algs,
		Results:    make(map[Algorithm]*trace.Result, len(algs)),
	}
	for i, alg := range algs {
		if results[i] != nil {
			c.Results[alg] = results[i]
		}
	}

	return c, err
}

// Result returns the result of alg, or nil.
func (c *Comparison) Result(alg Algorithm) *trace.Result {
	return c.Results[alg]
}

// MaxSteps returns the length of the longest trace.
func (c *Comparison) MaxSteps() int {
	n := 0
	for _, r := range c.Results {
		if len(r.Steps) > n {
			n = len(r.Steps)
		}
	}

	return n
}

// StepAt returns the synchronized frame i: step i of every trace, or the
// last step of traces shorter than i+1. Empty traces and negative i are
// left out.
func (c *Comparison) StepAt(i int) map[Algorithm]trace.Step {
	out := make(map[Algorithm]trace.Step, len(c.Results))
	if i < 0 {
		return out
	}
	for alg, r := range c.Results {
		if len(r.Steps) == 0 {
			continue
		}
		j := i
		if j >= len(r.Steps) {
			j = len(r.Steps) - 1
		}
		out[alg] = r.Steps[j]
	}

	return out
}

// Ranking orders the compared algorithms: found paths first, then by total
// cost, then by nodes expanded, then in enum order. Costs are compared as
// recorded, so BFS and DFS rank by hop count.
func (c *Comparison) Ranking() []Algorithm {
	out := make([]Algorithm, 0, len(c.Results))
	for _, a := range c.Algorithms {
		if _, ok := c.Results[a]; ok {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := c.Results[out[i]], c.Results[out[j]]
		if a.Found() != b.Found() {
			return a.Found()
		}
		if a.TotalCost != b.TotalCost {
			return a.TotalCost < b.TotalCost
		}
		if a.NodesExpanded != b.NodesExpanded {
			return a.NodesExpanded < b.NodesExpanded
		}

		return out[i] < out[j]
	})

	return out
}
