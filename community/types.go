package community

import "github.com/katalvlaran/graphina/core"

// Partition assigns every live node a community id in {0,...,k-1}. It
// carries no guarantee that ids are contiguous beyond that range, nor
// that a specific id means anything across two different runs.
type Partition struct {
	Community *core.NodeMap[int]
	Count     int
}
