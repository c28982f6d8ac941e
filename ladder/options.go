package ladder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordpath/bfs"
)

// ErrBadMaxSteps is returned by GenerateContext for a negative step limit.
var ErrBadMaxSteps = errors.New("ladder: max steps must be non-negative")

// Option customizes a ladder search.
type Option func(*options)

type options struct {
	maxSteps   int
	avoid      map[string]struct{}
	onDiscover func(word string, steps int)
	onVisit    func(word string, steps int) error
}

// WithMaxSteps keeps only ladders of at most n edits (n+1 words).
// n == 0 means no limit; n < 0 makes GenerateContext fail with ErrBadMaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}

// WithAvoid forbids the given words as ladder rungs. Avoiding the end word
// means no ladder is found.
func WithAvoid(words ...string) Option {
	return func(o *options) {
		if o.avoid == nil {
			o.avoid = make(map[string]struct{}, len(words))
		}
		for _, w := range words {
			o.avoid[w] = struct{}{}
		}
	}
}

// WithOnDiscover calls fn for every word the search reaches, with its
// distance in edits from the begin word.
func WithOnDiscover(fn func(word string, steps int)) Option {
	return func(o *options) { o.onDiscover = fn }
}

// WithOnVisit calls fn as each word is expanded. A non-nil error aborts the
// search and is returned by GenerateContext, wrapped.
func WithOnVisit(fn func(word string, steps int) error) Option {
	return func(o *options) { o.onVisit = fn }
}

// bfsOptions translates the ladder options into walker options.
func (o options) bfsOptions() ([]bfs.Option, error) {
	if o.maxSteps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxSteps, o.maxSteps)
	}

	var out []bfs.Option
	if o.maxSteps > 0 {
		out = append(out, bfs.WithMaxDepth(o.maxSteps))
	}
	if len(o.avoid) > 0 {
		avoid := o.avoid
		out = append(out, bfs.WithFilterNeighbor(func(_, next string) bool {
			_, skip := avoid[next]
			return !skip
		}))
	}
	if o.onDiscover != nil {
		out = append(out, bfs.WithOnEnqueue(o.onDiscover))
	}
	if o.onVisit != nil {
		out = append(out, bfs.WithOnVisit(o.onVisit))
	}

	return out, nil
}
