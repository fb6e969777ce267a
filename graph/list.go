package graph

import (
	"fmt"

	"github.com/alglib/indexed/set"
	"github.com/alglib/indexed/setmap"
)

// Edge is an edge of a ListGraph. ID is its index in the
// graph's edge set.
type Edge[V comparable] struct {
	ID   int
	Tail V
	Head V
}

// ListGraph is a directed graph over a fixed vertex set that
// stores the edges leaving each vertex in a list.
//
// Edges may be added but never removed. Sets returned by Edges and
// OutEdges are snapshots: they do not include edges added later.
type ListGraph[V comparable] struct {
	edges []Edge[V]
	// out holds, for each vertex, the IDs of its outgoing edges.
	out *setmap.VecMap[V, []int]
}

// Edgeless returns a graph with the given vertices and no edges.
func Edgeless[V comparable](vertices set.Set[V]) *ListGraph[V] {
	return &ListGraph[V]{
		out: setmap.NewVecMapZero[V, []int](vertices),
	}
}

// AddEdge adds an edge from tail to head and returns it.
// Parallel edges and self loops are allowed.
// It panics if either end is not a vertex of g.
func (g *ListGraph[V]) AddEdge(tail, head V) Edge[V] {
	if !set.Contains(g.out.Domain(), head) {
		panic(fmt.Sprintf("graph: AddEdge head %v is not a vertex", head))
	}
	p := g.out.Ptr(tail)
	if p == nil {
		panic(fmt.Sprintf("graph: AddEdge tail %v is not a vertex", tail))
	}
	e := Edge[V]{
		ID:   len(g.edges),
		Tail: tail,
		Head: head,
	}
	g.edges = append(g.edges, e)
	*p = append(*p, e.ID)
	return e
}

// Vertices implements Graph.Vertices.
func (g *ListGraph[V]) Vertices() set.Set[V] {
	return g.out.Domain()
}

// Edges implements Graph.Edges.
func (g *ListGraph[V]) Edges() set.Set[Edge[V]] {
	return edgeSet[V](g.edges[:len(g.edges):len(g.edges)])
}

// Ends implements Graph.Ends.
func (g *ListGraph[V]) Ends(e Edge[V]) [2]V {
	return [2]V{e.Tail, e.Head}
}

// Tail implements DiGraph.Tail.
func (g *ListGraph[V]) Tail(e Edge[V]) V {
	return e.Tail
}

// Head implements DiGraph.Head.
func (g *ListGraph[V]) Head(e Edge[V]) V {
	return e.Head
}

// OutEdges implements Incidence.OutEdges. If v is not a vertex,
// the returned set is empty.
func (g *ListGraph[V]) OutEdges(v V) set.Set[Edge[V]] {
	ids, _ := g.out.Get(v)
	return OutEdges[V]{
		edges: g.edges,
		ids:   ids[:len(ids):len(ids)],
	}
}

// OutDegree returns the number of edges leaving v.
func (g *ListGraph[V]) OutDegree(v V) int {
	ids, _ := g.out.Get(v)
	return len(ids)
}

// edgeSet is the edge set of a ListGraph. Edges are indexed by ID.
type edgeSet[V comparable] []Edge[V]

func (s edgeSet[V]) Iter() set.Iterator[Edge[V]] {
	return set.Values(s)
}

func (s edgeSet[V]) Index(i int) (Edge[V], bool) {
	return set.Slice[Edge[V]](s).Index(i)
}

func (s edgeSet[V]) IndexOf(e Edge[V]) (int, bool) {
	if e.ID < 0 || e.ID >= len(s) || s[e.ID] != e {
		return 0, false
	}
	return e.ID, true
}

func (s edgeSet[V]) Len() int {
	return len(s)
}

// OutEdges is the set of edges leaving a vertex of a ListGraph,
// in the order they were added.
type OutEdges[V comparable] struct {
	edges []Edge[V]
	ids   []int
}

// Iter implements set.Set.
func (s OutEdges[V]) Iter() set.Iterator[Edge[V]] {
	return set.NewMappedIter(len(s.ids), s.Index)
}

// Index implements set.Indexer.
func (s OutEdges[V]) Index(i int) (Edge[V], bool) {
	if i < 0 || i >= len(s.ids) {
		return Edge[V]{}, false
	}
	return s.edges[s.ids[i]], true
}

// Len implements set.Lener.
func (s OutEdges[V]) Len() int {
	return len(s.ids)
}

// Heads returns the heads of the edges in s, in order.
func (s OutEdges[V]) Heads() []V {
	heads := make([]V, len(s.ids))
	for i, id := range s.ids {
		heads[i] = s.edges[id].Head
	}
	return heads
}
