package trace

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("trace: invalid option supplied")

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Resolve.
type Option func(*Options)

// Options holds the settings shared by all strategies.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, stops the search after that many expansions.
	MaxExpansions int

	// OnStep is called after every appended Step, terminal step included.
	// A non-nil error aborts the search and is returned wrapped.
	OnStep func(Step) error

	// StateMaps controls whether Distances/Parents snapshots are recorded.
	StateMaps bool

	// Logger receives a debug line per expansion and an info line on termination.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion cap
//   - no-op OnStep
//   - state-map snapshots enabled
//   - a logger writing to io.Discard
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnStep:        func(Step) error { return nil },
		StateMaps:     true,
		Logger:        log.New(io.Discard),
	}
}

// Resolve applies opts over DefaultOptions and reports the first invalid option.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of node expansions.
//
//	n > 0:  stop after n expansions with OutcomeAborted
//	n == 0: no cap
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithOnStep registers a callback run after every appended Step.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithoutStateMaps disables Distances/Parents snapshots.
func WithoutStateMaps() Option {
	return func(o *Options) {
		o.StateMaps = false
	}
}

// WithLogger routes search logging to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
