package builder

// Method name constants, used to tag errors with the constructor that
// raised them.
const (
	methodCycle             = "builder.Cycle"
	methodPath              = "builder.Path"
	methodStar              = "builder.Star"
	methodWheel             = "builder.Wheel"
	methodComplete          = "builder.Complete"
	methodCompleteBipartite = "builder.CompleteBipartite"
	methodGrid              = "builder.Grid"
	methodRandomSparse      = "builder.RandomSparse"
	methodRandomRegular     = "builder.RandomRegular"
)

// Minimum node counts per topology, preserved from the teacher's
// constant set (FirstVertexID/CenterVertexID don't survive: opaque
// NodeIDs replace both, tracked by variable instead of string literal).
const (
	// MinCycleNodes is the smallest size for a simple ring C_n.
	MinCycleNodes = 3
	// MinPathNodes is the smallest size for a simple path P_n.
	MinPathNodes = 2
	// MinStarNodes is the smallest size for a star (hub + >=1 leaf).
	MinStarNodes = 2
	// MinWheelNodes is the smallest size for a wheel (ring of >=3 + hub).
	MinWheelNodes = 4
	// MinGridDim is the smallest allowed row/column count for Grid.
	MinGridDim = 1
	// MinPartitionSize is the smallest allowed partition size for
	// CompleteBipartite.
	MinPartitionSize = 1
	// MinProbability is the lower bound for RandomSparse's p.
	MinProbability = 0.0
	// MaxProbability is the upper bound for RandomSparse's p.
	MaxProbability = 1.0
	// maxStubMatchingAttempts bounds RandomRegular's reshuffle retries.
	maxStubMatchingAttempts = 3
)
