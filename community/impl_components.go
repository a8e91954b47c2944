package community

import "github.com/katalvlaran/graphina/core"

// ConnectedComponents partitions live nodes by weak connectivity (edge
// direction is ignored) via a union-find sweep over the edge list,
// O(V+E).
func ConnectedComponents[A any, W core.Number](g *core.Graph[A, W]) *Partition {
	ids := g.NodeIDs()
	parent := make(map[core.NodeID]core.NodeID, len(ids))
	for _, id := range ids {
		parent[id] = id
	}

	var find func(core.NodeID) core.NodeID
	find = func(id core.NodeID) core.NodeID {
		for parent[id] != id {
			parent[id] = parent[parent[id]]
			id = parent[id]
		}
		return id
	}
	union := func(a, b core.NodeID) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, e := range g.Edges() {
		union(e.From, e.To)
	}

	rootToComponent := make(map[core.NodeID]int)
	result := core.NewNodeMap[int](len(ids))
	for _, id := range ids {
		root := find(id)
		cid, ok := rootToComponent[root]
		if !ok {
			cid = len(rootToComponent)
			rootToComponent[root] = cid
		}
		result.Set(id, cid)
	}

	return &Partition{Community: result, Count: len(rootToComponent)}
}
