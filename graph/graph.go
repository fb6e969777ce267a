// Package graph implements graphs whose vertices and edges are
// indexed sets, and some algorithms over them.
package graph

import "github.com/alglib/indexed/set"

// Graph is a graph with an indexed vertex set and an indexed
// edge set.
type Graph[V, E comparable] interface {
	Vertices() set.Set[V]
	Edges() set.Set[E]

	// Ends returns the two endpoints of e.
	Ends(e E) [2]V
}

// DiGraph is a directed graph. Each edge leads from its
// tail to its head, and Ends returns [tail, head].
type DiGraph[V, E comparable] interface {
	Graph[V, E]
	Tail(e E) V
	Head(e E) V
}

// Incidence is a directed graph that can list the edges
// leaving a vertex.
type Incidence[V, E comparable] interface {
	DiGraph[V, E]

	// OutEdges returns the edges whose tail is v,
	// in the order they were added.
	OutEdges(v V) set.Set[E]
}

// NumVertices returns the number of vertices in g.
func NumVertices[V, E comparable](g Graph[V, E]) int {
	return set.Len(g.Vertices())
}

// NumEdges returns the number of edges in g.
func NumEdges[V, E comparable](g Graph[V, E]) int {
	return set.Len(g.Edges())
}
