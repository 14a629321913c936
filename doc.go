// Package socialgraph is a small in-memory graph toolkit for answering
// "how many hops apart are these two people?" questions.
//
// Layout:
//
//	core/      - Graph and Vertex: keyed vertices, one-directional weighted edges
//	bfs/       - BFS level maps and the early-exit ShortestPath search
//	builder/   - deterministic fixtures (Star, Chain, the Social demo network)
//	edgelist/  - the "G" edge-list text format: parse, write, watch for changes
//	cmd/socialgraph - cobra CLI over the packages above
//
// Quick start:
//
//	g := core.NewGraph[string]()
//	g.EnsureVertex("Ann")
//	g.EnsureVertex("Bob")
//	_ = g.AddEdge("Ann", "Bob", 0)
//	levels, _ := bfs.BFS(g, "Ann") // map[Ann:0 Bob:1]
//
// Distances are hop counts. Edge weights are stored and reported but
// never influence a traversal.
package socialgraph
