package graph

import (
	"github.com/alglib/indexed/set"
	"github.com/alglib/indexed/setmap"
)

// StronglyConnected returns the strongly connected components of g
// using Tarjan's algorithm.
//
// A strongly connected component of a graph is a set of vertices where it's possible to reach any
// vertex in the set from any other (meaning there's a cycle between them.)
//
// Components are returned in reverse topological order: no edge
// leads from a component to one that appears after it.
func StronglyConnected[V, E comparable](g Incidence[V, E]) [][]V {
	t := &tarjan[V, E]{
		g:          g,
		indexTable: setmap.NewVecMapZero[V, int](g.Vertices()),
		lowLink:    setmap.NewVecMapZero[V, int](g.Vertices()),
		onStack:    setmap.NewVecMapZero[V, bool](g.Vertices()),
	}
	for v := range set.All(g.Vertices()) {
		if t.indexTable.At(v) == 0 {
			t.strongconnect(v)
		}
	}
	return t.sccs
}

// tarjan holds the state of Tarjan's algorithm. The implementation is from the pseudocode at
//
// http://en.wikipedia.org/wiki/Tarjan%27s_strongly_connected_components_algorithm?oldid=642744644
//
// A zero entry in indexTable means the vertex has not been visited.
type tarjan[V, E comparable] struct {
	g Incidence[V, E]

	index      int
	indexTable *setmap.VecMap[V, int]
	lowLink    *setmap.VecMap[V, int]
	onStack    *setmap.VecMap[V, bool]

	stack []V

	sccs [][]V
}

func (t *tarjan[V, E]) strongconnect(v V) {
	t.index++
	t.indexTable.Set(v, t.index)
	low := t.lowLink.Ptr(v)
	*low = t.index
	t.stack = append(t.stack, v)
	t.onStack.Set(v, true)

	for e := range set.All(t.g.OutEdges(v)) {
		w := t.g.Head(e)
		if t.indexTable.At(w) == 0 {
			t.strongconnect(w)
			*low = min(*low, t.lowLink.At(w))
		} else if t.onStack.At(w) {
			*low = min(*low, t.indexTable.At(w))
		}
	}

	if *low != t.indexTable.At(v) {
		return
	}
	// v is the root of a component: pop it off the stack.
	var scc []V
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack.Set(w, false)
		scc = append(scc, w)
		if w == v {
			break
		}
	}
	t.sccs = append(t.sccs, scc)
}
