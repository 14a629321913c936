// Package edgelist reads and writes the plain-text edge-list format used
// by the social graph demo, and prints the human-readable edge listing.
//
// Format
//
//	G
//	Karen,Jordan,Hannah
//	(Karen,Jordan,3)
//	(Jordan,Hannah)
//
// Tokens are separated by any whitespace. The first token is the marker
// "G". The second is a comma-separated vertex list. Every following token
// is an edge "(from,to)" or "(from,to,weight)" with an optional integer
// weight (default 0). Edges are one-directional.
//
// Building
//
//	Document.Graph builds a core.Graph[string] through its public API, so
//	an edge naming a vertex missing from the vertex list fails with
//	core.ErrKeyNotFound and a repeated vertex with core.ErrDuplicateVertex.
//
// Round trip
//
//	Write emits the format from any core.Graph[string]. Parse, Graph and
//	Write are stable: writing a parsed graph and parsing it again yields
//	the same vertices and edges in the same order.
//
// Errors
//
//	ErrMissingHeader - empty input or a marker other than "G".
//	ErrBadVertexList - missing or empty vertex names.
//	ErrBadEdge       - malformed edge token.
//	ErrBadWeight     - weight that is not a base-10 int64.
//	ErrInvalidName   - Write met a vertex name the format cannot carry.
package edgelist
