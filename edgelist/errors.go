package edgelist

import "errors"

var (
	// ErrMissingHeader indicates the input is empty or does not start with the "G" marker.
	ErrMissingHeader = errors.New("edgelist: missing graph marker")
	// ErrBadVertexList indicates a missing vertex list or an empty vertex name.
	ErrBadVertexList = errors.New("edgelist: malformed vertex list")
	// ErrBadEdge indicates an edge token that is not "(from,to[,weight])".
	ErrBadEdge = errors.New("edgelist: malformed edge")
	// ErrBadWeight indicates an edge weight that is not an integer.
	ErrBadWeight = errors.New("edgelist: malformed edge weight")
	// ErrInvalidName indicates a vertex name containing a separator or whitespace.
	ErrInvalidName = errors.New("edgelist: vertex name cannot be encoded")
)
