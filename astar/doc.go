// Package astar traces A* search with a pluggable, named heuristic.
//
// A* pops the open-set entry with the lowest f = g + h, where g is the
// cost so far and h a heuristic estimate of the remaining cost. With an
// admissible heuristic the first pop of the target carries an optimal
// path; with heuristic.NameZero the search degenerates to Dijkstra.
//
// Entries for nodes that are already closed are discarded silently when
// popped. Every step carries a ScoreOverlay with the open set and the
// g/h/f table of every node reached so far.
package astar
