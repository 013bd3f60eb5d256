package cli

import (
	"fmt"
	"strings"

	"github.com/integeruser/closedmdcop-miner/internal/neighbor"
)

// newPredicate builds the neighbor.Predicate named by kind, the CLI-facing
// counterpart of instantiating neighbor.Euclidean/Haversine directly.
func newPredicate(kind string, threshold float64) (neighbor.Predicate, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "euclidean":
		return neighbor.NewEuclidean(threshold), nil
	case "haversine":
		return neighbor.NewHaversine(threshold), nil
	default:
		return nil, fmt.Errorf("unknown distance kind %q: want euclidean or haversine", kind)
	}
}
