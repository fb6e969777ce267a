// Package mermaid provides functionality for marshaling graphs
// to Mermaid diagram format. Mermaid is a text-based diagramming tool that
// generates diagrams from markdown-like syntax.
package mermaid

import (
	"bytes"
	"fmt"

	"github.com/alglib/indexed/graph"
	"github.com/alglib/indexed/set"
	"github.com/alglib/indexed/setmap"
)

// Marshaler represents a type that can be marshaled into Mermaid diagram format.
type Marshaler interface {
	// MarshalMermaid returns the Mermaid representation of the object.
	MarshalMermaid() ([]byte, error)
}

// NodeInfo contains metadata about a graph vertex for Mermaid rendering.
type NodeInfo struct {
	// ID is the unique identifier for the vertex in the Mermaid diagram.
	// If empty, the vertex is named "v" followed by its index.
	ID string
	// Text is the display text for the vertex. If empty, ID is used instead.
	Text string
	// Style contains Mermaid style declarations for the vertex (e.g., "fill:#f9f,stroke:#333").
	Style string
}

// NewGraph returns a Marshaler that renders g as a top-down
// flowchart. The info map supplies metadata for each vertex; it may
// be nil, and its domain need not cover every vertex.
func NewGraph[V, E comparable](g graph.Incidence[V, E], info setmap.Map[V, NodeInfo]) Marshaler {
	return &graphImpl[V, E]{
		g:    g,
		info: info,
	}
}

type graphImpl[V, E comparable] struct {
	g    graph.Incidence[V, E]
	info setmap.Map[V, NodeInfo]
}

func (g *graphImpl[V, E]) nodeInfo(v V) NodeInfo {
	var info NodeInfo
	if g.info != nil {
		info, _ = setmap.Get(g.info, v)
	}
	if info.ID == "" {
		n, ok := set.IndexOf(g.g.Vertices(), v)
		if !ok {
			panic(fmt.Sprintf("mermaid: %v is not a vertex", v))
		}
		info.ID = fmt.Sprintf("v%d", n)
	}
	return info
}

func (g *graphImpl[V, E]) MarshalMermaid() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph TD\n")
	for v := range set.All(g.g.Vertices()) {
		info := g.nodeInfo(v)
		if info.ID != info.Text && info.Text != "" {
			fmt.Fprintf(&buf, "  %s[%s]\n", info.ID, info.Text)
		}
		if info.Style != "" {
			fmt.Fprintf(&buf, "  style %s %s\n", info.ID, info.Style)
		}
		for e := range set.All(g.g.OutEdges(v)) {
			fmt.Fprintf(&buf, "  %s-->%s\n", info.ID, g.nodeInfo(g.g.Head(e)).ID)
		}
	}
	return buf.Bytes(), nil
}
