package graph

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/alglib/indexed/set"
	"github.com/alglib/indexed/settest"
)

var (
	_ Incidence[int, Edge[int]] = (*ListGraph[int])(nil)
	_ set.Set[Edge[int]]        = OutEdges[int]{}
)

type graphTest struct {
	arcs     [][2]int
	from, to int
	want     [][2]int
}

var graphTests = []graphTest{{
	arcs: [][2]int{
		{0, 1},
		{2, 0},
		{2, 4},
		{2, 5},
		{2, 3},
		{1, 5},
		{2, 5},
	},
	from: 0,
	to:   5,
	want: [][2]int{
		{0, 1},
		{1, 5},
	},
}, {
	arcs: [][2]int{
		{0, 1},
		{0, 2},
		{0, 3},
		{2, 3},
		{3, 4},
		{4, 2},
		{4, 5},
		{7, 0},
	},
	from: 7,
	to:   5,
	want: [][2]int{
		{7, 0},
		{0, 3},
		{3, 4},
		{4, 5},
	},
}, {
	arcs: [][2]int{
		{0, 1},
		{1, 2},
	},
	from: 2,
	to:   0,
	want: nil,
}, {
	arcs: [][2]int{
		{0, 1},
	},
	from: 1,
	to:   1,
	want: [][2]int{},
}}

func TestShortestPath(t *testing.T) {
	for i, test := range graphTests {
		t.Run(fmt.Sprint("test", i), func(t *testing.T) {
			g := newGraph(8, test.arcs)
			path := ShortestPath(g, test.from, test.to)
			var got [][2]int
			if path != nil {
				got = [][2]int{}
			}
			for _, e := range path {
				got = append(got, g.Ends(e))
			}
			qt.Assert(t, qt.DeepEquals(got, test.want))
		})
	}
}

func TestShortestPathNotVertex(t *testing.T) {
	g := newGraph(3, [][2]int{{0, 1}})
	qt.Assert(t, qt.IsNil(ShortestPath(g, 0, 3)))
	qt.Assert(t, qt.IsNil(ShortestPath(g, -1, 1)))
}

func newGraph(n int, arcs [][2]int) *ListGraph[int] {
	g := Edgeless[int](set.NewIntRange(n))
	for _, a := range arcs {
		g.AddEdge(a[0], a[1])
	}
	return g
}

func TestListGraph(t *testing.T) {
	g := newGraph(5, [][2]int{{0, 1}, {0, 2}, {2, 0}, {2, 2}, {3, 4}, {0, 1}})
	qt.Assert(t, qt.Equals(NumVertices[int, Edge[int]](g), 5))
	qt.Assert(t, qt.Equals(NumEdges[int, Edge[int]](g), 6))

	e, ok := set.Index(g.Edges(), 3)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(e, Edge[int]{ID: 3, Tail: 2, Head: 2}))
	qt.Assert(t, qt.Equals(g.Ends(e), [2]int{2, 2}))
	qt.Assert(t, qt.Equals(g.Tail(e), 2))
	qt.Assert(t, qt.Equals(g.Head(e), 2))

	qt.Assert(t, qt.Equals(g.OutDegree(0), 3))
	qt.Assert(t, qt.Equals(g.OutDegree(1), 0))
	qt.Assert(t, qt.DeepEquals(g.OutEdges(0).(OutEdges[int]).Heads(), []int{1, 2, 1}))

	settest.Check(t, g.Edges(), Edge[int]{ID: 1, Tail: 0, Head: 1}, Edge[int]{ID: 6, Tail: 0, Head: 1})
	settest.Check(t, g.OutEdges(2), Edge[int]{ID: 0, Tail: 0, Head: 1})
	settest.Check(t, g.OutEdges(1))
	settest.Check(t, g.OutEdges(99))
}

func TestListGraphSnapshots(t *testing.T) {
	g := newGraph(2, nil)
	edges := g.Edges()
	out := g.OutEdges(0)
	g.AddEdge(0, 1)
	qt.Assert(t, qt.Equals(set.Len(edges), 0))
	qt.Assert(t, qt.Equals(set.Len(out), 0))
	qt.Assert(t, qt.Equals(set.Len(g.Edges()), 1))
	qt.Assert(t, qt.Equals(set.Len(g.OutEdges(0)), 1))
}

func TestAddEdgeNotVertex(t *testing.T) {
	g := newGraph(2, nil)
	qt.Assert(t, qt.PanicMatches(func() {
		g.AddEdge(0, 2)
	}, `graph: AddEdge head 2 is not a vertex`))
	qt.Assert(t, qt.PanicMatches(func() {
		g.AddEdge(-1, 0)
	}, `graph: AddEdge tail -1 is not a vertex`))
	qt.Assert(t, qt.Equals(set.Len(g.Edges()), 0))
}

func TestBFS(t *testing.T) {
	g := newGraph(7, [][2]int{
		{0, 1},
		{0, 2},
		{1, 3},
		{2, 3},
		{3, 4},
		{4, 0},
		{5, 4},
	})
	dist := BFS(g, 0)
	qt.Assert(t, qt.DeepEquals(dist.Values(), []int{0, 1, 1, 2, 3, Unreachable, Unreachable}))

	dist = BFS(g, 5)
	qt.Assert(t, qt.DeepEquals(dist.Values(), []int{2, 3, 3, 4, 1, 0, Unreachable}))

	qt.Assert(t, qt.PanicMatches(func() {
		BFS(g, 7)
	}, `graph.BFS: source 7 is not a vertex`))
}

// shiftedHeads reports every edge head of the underlying graph
// moved up by 10, so heads fall outside the vertex set.
type shiftedHeads struct {
	*ListGraph[int]
}

func (g shiftedHeads) Head(e Edge[int]) int {
	return e.Head + 10
}

func TestBFSHeadNotVertex(t *testing.T) {
	g := shiftedHeads{newGraph(3, [][2]int{{0, 1}})}
	qt.Assert(t, qt.PanicMatches(func() {
		BFS[int, Edge[int]](g, 0)
	}, `graph.BFS: edge head 11 is not a vertex`))
	qt.Assert(t, qt.PanicMatches(func() {
		ShortestPath[int, Edge[int]](g, 0, 2)
	}, `graph.ShortestPath: edge head 11 is not a vertex`))
}

func TestBFSStringVertices(t *testing.T) {
	g := letterGraph()
	g.AddEdge("A", "C")
	g.AddEdge("C", "F")
	dist := BFS(g, "A")
	qt.Assert(t, qt.Equals(dist.At("F"), 2))
	qt.Assert(t, qt.Equals(dist.At("B"), Unreachable))
}

func TestStronglyConnected(t *testing.T) {
	g := letterGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.AddEdge("C", "D")
	g.AddEdge("D", "E")
	g.AddEdge("E", "D")
	qt.Assert(t, qt.DeepEquals(StronglyConnected(g), [][]string{
		{"E", "D"},
		{"C", "B", "A"},
		{"F"},
	}))
}

func TestStronglyConnectedDAG(t *testing.T) {
	g := newGraph(4, [][2]int{{0, 1}, {1, 2}, {0, 3}})
	sccs := StronglyConnected(g)
	qt.Assert(t, qt.HasLen(sccs, 4))
	for _, c := range sccs {
		qt.Assert(t, qt.HasLen(c, 1))
	}
	qt.Assert(t, qt.DeepEquals(sccs, [][]int{{2}, {1}, {3}, {0}}))
}
