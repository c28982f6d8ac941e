package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/wordpath/bfs"
)

// adjGraph is an explicit undirected test graph with sorted neighbor lists.
type adjGraph map[string][]string

func (g adjGraph) HasVertex(id string) bool {
	_, ok := g[id]
	return ok
}

func (g adjGraph) NeighborIDs(id string) ([]string, error) {
	nbs, ok := g[id]
	if !ok {
		return nil, fmt.Errorf("unknown vertex %q", id)
	}
	out := append([]string(nil), nbs...)
	sort.Strings(out)
	return out, nil
}

// edges builds an undirected adjGraph from "A-B" pairs; a lone "X" adds an isolated vertex.
func edges(pairs ...string) adjGraph {
	g := adjGraph{}
	for _, p := range pairs {
		ends := strings.SplitN(p, "-", 2)
		if len(ends) == 1 {
			g[ends[0]] = g[ends[0]]
			continue
		}
		g[ends[0]] = append(g[ends[0]], ends[1])
		if ends[0] != ends[1] {
			g[ends[1]] = append(g[ends[1]], ends[0])
		}
	}
	return g
}

// failingGraph reports every vertex but cannot enumerate neighbors.
type failingGraph struct{}

func (failingGraph) HasVertex(string) bool { return true }
func (failingGraph) NeighborIDs(id string) ([]string, error) {
	return nil, errors.New("boom")
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	if _, err := bfs.BFS(edges("A-B"), "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(edges("A"), "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// empty target is a violation
	if _, err := bfs.BFS(edges("A"), "A", bfs.WithTarget("")); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("empty target: want ErrOptionViolation, got %v", err)
	}
	// neighbor failure is wrapped
	if _, err := bfs.BFS(failingGraph{}, "A"); !errors.Is(err, bfs.ErrNeighbors) {
		t.Errorf("neighbor failure: want ErrNeighbors, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS(edges("A"), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	res, err := bfs.BFS(edges("A-B", "B-C", "C-D", "D-A"), "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for v, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[v]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
	// C is discovered first from B (sorted neighbors), never re-parented by D.
	if p := res.Parent["C"]; p != "B" {
		t.Errorf("Parent[C] = %q; want B", p)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := edges("X-Y", "P-Q")

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	if _, err := resX.PathTo("Q"); err == nil {
		t.Errorf("PathTo across components: expected error")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := edges("A-B", "B-C")
	// depth = 1 should only visit A,B
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	res, _ := bfs.BFS(edges("A-B", "B-C"), "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoopDedup ensures that loops do not enqueue twice.
func TestBFS_SelfLoopDedup(t *testing.T) {
	res, _ := bfs.BFS(edges("A-A", "A-B"), "A")
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Target stops once the target is discovered and exposes the path.
func TestBFS_Target(t *testing.T) {
	// Two routes S→T: S-A-B-T (3 hops) and S-C-T (2 hops).
	g := edges("S-A", "A-B", "B-T", "S-C", "C-T", "T-Z")

	res, err := bfs.BFS(g, "S", bfs.WithTarget("T"))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatalf("Found = false; want true")
	}
	path, err := res.PathTo("T")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"S", "C", "T"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(T) = %v; want %v", path, want)
	}
	// Z lies beyond the target and must never be discovered.
	if _, seen := res.Depth["Z"]; seen {
		t.Errorf("Z discovered after target was found")
	}
}

// TestBFS_TargetUnreachable returns a full traversal with Found == false.
func TestBFS_TargetUnreachable(t *testing.T) {
	res, err := bfs.BFS(edges("A-B", "X"), "A", bfs.WithTarget("X"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Found {
		t.Errorf("Found = true; want false")
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	var enq, vis []string
	makeEntry := func(prefix, id string, d int) string {
		return prefix + ":" + id + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		edges("A-B", "B-C"), "A",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// We expect BFS depths A@0, B@1, C@2
	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_OnVisitAbort propagates the hook error.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(edges("A-B"), "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped hook error, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	res, _ := bfs.BFS(edges("X"), "X")
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	_, err := res.PathTo("Y")
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	var pairs []string
	for i := 0; i < 100; i++ {
		pairs = append(pairs, fmt.Sprintf("v%d-v%d", i, i+1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(edges(pairs...), "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := edges("A-B")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
