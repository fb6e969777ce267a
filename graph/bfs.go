package graph

import (
	"fmt"
	"slices"

	"github.com/alglib/indexed/set"
	"github.com/alglib/indexed/setmap"
)

// Unreachable is the distance BFS reports for vertices
// that cannot be reached from the source.
const Unreachable = -1

// BFS returns the length of the shortest path from s to every
// vertex of g, counting each edge as length one.
// It panics if s is not a vertex of g or if an edge of g leads
// outside its vertex set.
func BFS[V, E comparable](g Incidence[V, E], s V) *setmap.VecMap[V, int] {
	dist := setmap.NewVecMapZero[V, int](g.Vertices())
	dist.Fill(Unreachable)
	if !dist.Set(s, 0) {
		panic(fmt.Sprintf("graph.BFS: source %v is not a vertex", s))
	}
	queue := []V{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		du := dist.At(u)
		for e := range set.All(g.OutEdges(u)) {
			v := g.Head(e)
			p := dist.Ptr(v)
			if p == nil {
				panic(fmt.Sprintf("graph.BFS: edge head %v is not a vertex", v))
			}
			if *p == Unreachable {
				*p = du + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// ShortestPath returns a path from -> to in g with the fewest
// edges. The returned slice holds all the edges leading from the
// source to the destination, in order; it is empty if from == to.
//
// ShortestPath returns nil if there is no such path or if either
// from or to is not a vertex of g. It panics if an edge of g
// leads outside its vertex set.
func ShortestPath[V, E comparable](g Incidence[V, E], from, to V) []E {
	if !set.Contains(g.Vertices(), to) {
		return nil
	}
	reached := setmap.NewVecMapZero[V, bool](g.Vertices())
	if !reached.Set(from, true) {
		return nil
	}
	// via holds the edge by which each reached vertex was first entered.
	via := setmap.NewVecMapZero[V, E](g.Vertices())
	queue := []V{from}
	for len(queue) > 0 && !reached.At(to) {
		u := queue[0]
		queue = queue[1:]
		for e := range set.All(g.OutEdges(u)) {
			v := g.Head(e)
			p := reached.Ptr(v)
			if p == nil {
				panic(fmt.Sprintf("graph.ShortestPath: edge head %v is not a vertex", v))
			}
			if !*p {
				*p = true
				via.Set(v, e)
				queue = append(queue, v)
			}
		}
	}
	if !reached.At(to) {
		return nil
	}
	edges := []E{}
	for v := to; v != from; {
		e := via.At(v)
		edges = append(edges, e)
		v = g.Tail(e)
	}
	slices.Reverse(edges)
	return edges
}
