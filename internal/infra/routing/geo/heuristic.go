package geo

// Heuristic names one of the estimators available to A*.
type Heuristic string

const (
	HeuristicEuclidean Heuristic = "euclidean"
	HeuristicManhattan Heuristic = "manhattan"
)

// DefaultHeuristic is used when no heuristic or an unknown one is requested.
const DefaultHeuristic = HeuristicEuclidean

// ParseHeuristic never fails: names are matched exactly and anything else
// falls back to DefaultHeuristic.
func ParseHeuristic(name string) Heuristic {
	switch Heuristic(name) {
	case HeuristicManhattan:
		return HeuristicManhattan
	default:
		return DefaultHeuristic
	}
}

// Estimator returns the distance function behind the heuristic.
// "euclidean" is the great-circle distance, not a planar one.
func (h Heuristic) Estimator() Estimator {
	if h == HeuristicManhattan {
		return Rectilinear
	}

	return Haversine
}

func (h Heuristic) String() string {
	return string(h)
}
