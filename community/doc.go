// Package community partitions a core.Graph into communities: Louvain
// modularity optimization, label propagation, Girvan-Newman, and plain
// connected components.
//
// Every kernel that indexes into a dense array first builds a compact
// re-index table via support.IndexMap, mirroring centrality's
// convention — a node's deleted neighbors must never leave a stale
// index pointing at the wrong community slot.
//
// File layout mirrors centrality's impl_*.go-per-kernel convention:
// impl_components.go, impl_labelprop.go, impl_louvain.go,
// impl_girvannewman.go. Girvan-Newman is the one place this package
// depends on centrality, calling into its edge-betweenness kernel to
// pick which edge to cut each round.
package community
