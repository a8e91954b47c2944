// Package support holds cross-cutting helpers shared by the centrality,
// community, and dense-matrix (Floyd-Warshall) kernels: the compact
// NodeID re-indexer, argument validation, and small numeric utilities.
package support

import (
	"sort"

	"github.com/katalvlaran/graphina/core"
)

// IndexMap is a compact, deterministic re-indexing of a set of live
// NodeIDs into {0, ..., n-1}, built once per algorithm run. Matrix- and
// vector-indexed kernels operate on compact indices and translate back
// to NodeIDs only when writing results into a NodeMap; a NodeID's
// internal counter is never treated as an index directly.
type IndexMap struct {
	ids     []core.NodeID
	indexOf map[core.NodeID]int
}

// NewIndexMap builds a compact index over ids, sorted by minting
// sequence so two runs over the same node set produce the same
// assignment.
func NewIndexMap(ids []core.NodeID) *IndexMap {
	sorted := make([]core.NodeID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	indexOf := make(map[core.NodeID]int, len(sorted))
	for i, id := range sorted {
		indexOf[id] = i
	}

	return &IndexMap{ids: sorted, indexOf: indexOf}
}

// Len returns the number of entries, n.
func (m *IndexMap) Len() int { return len(m.ids) }

// IndexOf returns the compact index for id, or (-1, false) if id is not
// part of this map.
func (m *IndexMap) IndexOf(id core.NodeID) (int, bool) {
	idx, ok := m.indexOf[id]
	if !ok {
		return -1, false
	}
	return idx, true
}

// NodeAt returns the NodeID at compact index i. Panics if i is out of
// [0, Len()), matching slice indexing semantics.
func (m *IndexMap) NodeAt(i int) core.NodeID { return m.ids[i] }

// Nodes returns a copy of the ordered id list backing this map, index i
// holding the NodeID assigned to compact index i.
func (m *IndexMap) Nodes() []core.NodeID {
	out := make([]core.NodeID, len(m.ids))
	copy(out, m.ids)
	return out
}
