// Package astar provides heuristic-guided best-first shortest-path
// search, the module's one shortest-path engine that takes a caller
// heuristic instead of exploring uniformly.
package astar
