// Package lexigraph turns a thesaurus into a queryable relation graph.
//
// What is lexigraph?
//
//	A small toolkit built around one pipeline:
//		• loader/    — parse a thesaurus file into term → related-terms lists,
//		               then drop related names that are not terms themselves
//		• sparse/    — rank terms lexicographically and store the relation as a
//		               sparse boolean graph (coordinates + compressed rows);
//		               boolean composition for higher-order relations
//		• artifact/  — save and load the graph as a zstd coordinate stream plus
//		               a plain term list
//		• query/     — shortest paths, degrees, set closures and higher-order
//		               related terms over a loaded graph
//		• bfs/       — the breadth-first walker behind shortest paths
//		• dijkstra/  — a weighted reference shortest path used to cross-check
//		               the BFS answers
//		• config/, metrics/ — viper/validator settings and Prometheus metrics
//		• cmd/lexigraph — the CLI wiring it all together
//
// Quick example:
//
//	chat|1
//	(nom)|matou|félin
//	félin|1
//	(nom)|chat|tigre
//
//	$ lexigraph build thesaurus.dat --artifact thes
//	$ lexigraph path matou tigre --artifact thes
//	3: matou → chat → félin → tigre
//
// Every package is usable on its own; the CLI only composes them.
package lexigraph
