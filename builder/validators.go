package builder

import (
	"fmt"

	"github.com/katalvlaran/graphina"
)

// validateMin reports graphina.NewInvalidArgument if got < min.
func validateMin(op string, got, min int) *graphina.GraphError {
	if got < min {
		return graphina.NewInvalidArgument(op, "n", fmt.Sprintf("must be >= %d, got %d", min, got))
	}
	return nil
}

// validatePartition reports graphina.NewInvalidArgument if either
// partition size is below MinPartitionSize.
func validatePartition(op string, n1, n2 int) *graphina.GraphError {
	if n1 < MinPartitionSize || n2 < MinPartitionSize {
		return graphina.NewInvalidArgument(op, "n1,n2", fmt.Sprintf("each must be >= %d, got %d and %d", MinPartitionSize, n1, n2))
	}
	return nil
}

// validateProbability reports graphina.NewInvalidArgument if p is
// outside [MinProbability, MaxProbability].
func validateProbability(op string, p float64) *graphina.GraphError {
	if p < MinProbability || p > MaxProbability {
		return graphina.NewInvalidArgument(op, "p", fmt.Sprintf("must be in [%.1f,%.1f], got %g", MinProbability, MaxProbability, p))
	}
	return nil
}
