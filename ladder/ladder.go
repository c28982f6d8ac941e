package ladder

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordpath/bfs"
)

// ErrEmptyLadder is returned by Valid for a ladder with no words.
var ErrEmptyLadder = errors.New("ladder: empty ladder")

// ErrNotAdjacent is returned by Valid when two consecutive words are more
// than one edit apart.
var ErrNotAdjacent = errors.New("ladder: consecutive words not adjacent")

// ErrNotInDictionary is returned by Valid when a word after the first is
// missing from the dictionary.
var ErrNotInDictionary = errors.New("ladder: word not in dictionary")

// lexicon adapts a Dictionary plus the begin word to bfs.Graph. The begin
// word is a vertex even when the dictionary does not contain it.
type lexicon struct {
	dict  *Dictionary
	begin string
}

func (l lexicon) HasVertex(id string) bool {
	return id == l.begin || l.dict.Contains(id)
}

func (l lexicon) NeighborIDs(id string) ([]string, error) {
	return l.dict.adjacentTo(id), nil
}

// Generate returns a shortest word ladder from begin to end through dict,
// or nil when none exists.
//
// Rules:
//   - begin == end yields nil, not a one-word ladder.
//   - Every word after begin must be in dict, end included.
//   - Among equally short ladders the one found first when neighbors are
//     explored in lexicographic order wins, so results are reproducible.
//
// Complexity: O(V·(V+L)) for V dictionary words of length about L.
//
// Generate drops errors; use GenerateContext to see option or hook failures.
func Generate(begin, end string, dict *Dictionary, opts ...Option) []string {
	ladder, _ := GenerateContext(context.Background(), begin, end, dict, opts...)
	return ladder
}

// GenerateContext is Generate with cancellation and error reporting. It
// fails with ErrBadMaxSteps for a negative step limit, with the wrapped
// error of a WithOnVisit hook, or with the context's error.
func GenerateContext(ctx context.Context, begin, end string, dict *Dictionary, opts ...Option) ([]string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	walk, err := o.bfsOptions()
	if err != nil {
		return nil, err
	}

	if begin == end || !dict.Contains(end) {
		return nil, nil
	}

	walk = append(walk, bfs.WithContext(ctx))
	if end != "" {
		walk = append(walk, bfs.WithTarget(end))
	}
	res, err := bfs.BFS(lexicon{dict: dict, begin: begin}, begin, walk...)
	if err != nil {
		return nil, err
	}
	if _, reached := res.Depth[end]; !reached {
		return nil, nil
	}

	return res.PathTo(end)
}

// Valid checks that ladder starts at begin, ends at end, moves one edit at
// a time, and uses only dictionary words after the first.
func Valid(ladder []string, begin, end string, dict *Dictionary) error {
	if len(ladder) == 0 {
		return ErrEmptyLadder
	}
	if ladder[0] != begin || ladder[len(ladder)-1] != end {
		return fmt.Errorf("ladder: runs %q..%q, want %q..%q",
			ladder[0], ladder[len(ladder)-1], begin, end)
	}
	for i := 1; i < len(ladder); i++ {
		if !IsAdjacent(ladder[i-1], ladder[i]) {
			return fmt.Errorf("%w: %q -> %q", ErrNotAdjacent, ladder[i-1], ladder[i])
		}
		if !dict.Contains(ladder[i]) {
			return fmt.Errorf("%w: %q", ErrNotInDictionary, ladder[i])
		}
	}

	return nil
}
