package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadGraph parses a graph from whitespace-separated tokens:
//
//	n
//	from to weight
//	from to weight
//	...
//
// The first token is the vertex count; every following triple adds one
// directed edge. Line breaks carry no meaning.
//
// Errors:
//   - ErrBadGraphInput: empty input, a non-integer token, a vertex count
//     above MaxVertices, or a trailing incomplete triple (wrapped with the
//     token position).
//   - ErrBadVertexCount, ErrVertexNotFound: from NewGraph / AddEdge.
//   - any read error from r.
func ReadGraph(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	pos := 0
	next := func() (int64, bool, error) {
		if !sc.Scan() {
			return 0, false, sc.Err()
		}
		pos++
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%w: token %d %q is not an integer", ErrBadGraphInput, pos, sc.Text())
		}

		return v, true, nil
	}

	// 1) Vertex count
	n, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing vertex count", ErrBadGraphInput)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d exceeds %d", ErrBadGraphInput, n, MaxVertices)
	}
	g, err := NewGraph(int(n))
	if err != nil {
		return nil, err
	}

	// 2) Edge triples until EOF
	var triple [3]int64
	for {
		for i := range triple {
			triple[i], ok, err = next()
			if err != nil {
				return nil, err
			}
			if !ok {
				if i == 0 {
					return g, nil
				}
				return nil, fmt.Errorf("%w: incomplete edge after token %d", ErrBadGraphInput, pos)
			}
		}
		if err = g.AddEdge(int(triple[0]), int(triple[1]), triple[2]); err != nil {
			return nil, err
		}
	}
}

// LoadGraph opens path and parses it with ReadGraph.
func LoadGraph(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: open graph file: %w", err)
	}
	defer f.Close()

	return ReadGraph(f)
}
