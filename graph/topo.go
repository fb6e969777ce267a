// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This code is derived from the code in the v.io/x/lib/toposort package.

package graph

import (
	"strings"

	"github.com/alglib/indexed/set"
	"github.com/alglib/indexed/setmap"
)

// TopoSort returns the topologically sorted vertices, along with some of the cycles
// (if any) that were encountered.  You're guaranteed that len(cycles)==0 iff
// there are no cycles in the graph, otherwise an arbitrary (but non-empty) list
// of cycles is returned.
//
// An edge from -> to means that from depends on to; i.e. to will
// appear before from in the sorted output.
//
// If there are cycles the sorting is best-effort; portions of the graph that
// are acyclic will still be ordered correctly, and the cyclic portions have an
// arbitrary ordering.
//
// Sort is deterministic: vertices and out-edges are visited in index order.
func TopoSort[V, E comparable](g Incidence[V, E]) (sorted []V, cycles [][]V) {
	v := &visitor[V, E]{
		g:     g,
		marks: setmap.NewVecMapZero[V, mark](g.Vertices()),
	}
	for n := range set.All(g.Vertices()) {
		cycles = append(cycles, v.visit(n)...)
	}
	return v.sorted, cycles
}

// IsDAG reports whether g has no directed cycles.
func IsDAG[V, E comparable](g Incidence[V, E]) bool {
	_, cycles := TopoSort(g)
	return len(cycles) == 0
}

type mark uint8

const (
	unvisited mark = iota
	visiting
	done
)

type visitor[V, E comparable] struct {
	g      Incidence[V, E]
	marks  *setmap.VecMap[V, mark]
	sorted []V
}

// visit performs depth-first search on the graph and fills in sorted and cycles as it
// traverses.
//
// The cycle collection strategy is to wait until we've hit a vertex that is
// still being visited, and add that vertex to cycles and return.  Thereafter as the
// recursive stack is unwound, vertices append themselves to the end of each cycle,
// until we're back at the repeated vertex.  This guarantees that if the graph is
// cyclic we'll return at least one of the cycles.
func (v *visitor[V, E]) visit(n V) (cycles [][]V) {
	m := v.marks.Ptr(n)
	switch *m {
	case done:
		return nil
	case visiting:
		return [][]V{{n}}
	}
	*m = visiting
	for e := range set.All(v.g.OutEdges(n)) {
		cycles = append(cycles, v.visit(v.g.Head(e))...)
	}
	*m = done
	v.sorted = append(v.sorted, n)
	// If a cycle is still open (its first and last vertices differ) we
	// append ourselves to it. A single-vertex cycle is always open;
	// self-cycles are represented as the same vertex appearing twice.
	for cx := range cycles {
		n1 := len(cycles[cx])
		if n1 == 1 || cycles[cx][0] != cycles[cx][n1-1] {
			cycles[cx] = append(cycles[cx], n)
		}
	}
	return cycles
}

// DumpCycles dumps the cycles returned from TopoSort, using toString to
// convert each vertex into a string.
func DumpCycles[V any](cycles [][]V, toString func(v V) string) string {
	var buf strings.Builder
	for cyclex, cycle := range cycles {
		if cyclex > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString("[")
		for vx, v := range cycle {
			if vx > 0 {
				buf.WriteString(" <= ")
			}
			buf.WriteString(toString(v))
		}
		buf.WriteString("]")
	}
	return buf.String()
}
