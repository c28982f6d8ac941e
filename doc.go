// Package wordpath groups two small search engines and their plumbing.
//
// Packages:
//
//	core/         directed weighted Graph over integer vertex ids, text loader
//	dijkstra/     single-source shortest paths, path extraction, path cost
//	bfs/          breadth-first walker over explicit or implicit graphs
//	ladder/       word ladders: bounded edit distance, dictionary, BFS search
//	report/       "Error: ..." diagnostics and result printing
//	cmd/wordpath  CLI with ladder, shortest and verify subcommands
//
// Quick start:
//
//	dict := ladder.NewDictionary("cat", "bat", "bot", "bog", "dog")
//	fmt.Println(ladder.Generate("cat", "dog", dict)) // [cat bat bot bog dog]
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(0, 2, 1)
//	_ = g.AddEdge(2, 1, 2)
//	dist, prev, _ := dijkstra.Dijkstra(g, 0)
//	fmt.Println(dist, dijkstra.ExtractShortestPath(dist, prev, 1)) // [0 3 1] [0 2 1]
package wordpath
