// Package core defines the attributed Graph, Vertex, and Edge types used
// as the interoperability export format for adjacency matrices, and
// provides thread-safe primitives for building and querying such graphs.
//
// All Graph APIs share a single sync.RWMutex, so graphs may be mutated
// and read across goroutines. The geometry packages never compute on
// core.Graph; it exists purely so callers can hand graph points to
// graph-analysis tooling.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrBadWeight        - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. Attr stores an
// optional scalar node attribute (e.g. a node weight).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attr is an optional scalar attribute attached to the node.
	Attr float64
}

// Edge represents a connection between two vertices.
//
// Weight carries the real-valued edge attribute; for adjacency-matrix
// exports it is the matrix entry a[i,j].
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the real-valued attribute of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected: edges are mirrored on Add).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a mutable attributed graph guarded by a single RWMutex.
//
// Vertices are kept in insertion order for deterministic iteration;
// edges likewise. Parallel edges are not deduplicated: callers that
// ingest adjacency matrices write each cell at most once.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowLoops bool

	order    []string           // vertex IDs in insertion order
	vertices map[string]*Vertex // ID → vertex
	edges    []*Edge            // edges in insertion order
}

// NewGraph creates an empty Graph with the given options applied
// left-to-right. Defaults: undirected, unweighted, loops disabled.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
