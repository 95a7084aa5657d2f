package recorder

// Tie is the winner value when both runs score the same.
const Tie = "tie"

// ComparisonResult puts two runs side by side. Each Winner field holds
// the label of the run with the lower value, or Tie.
type ComparisonResult struct {
	Left  RunMetrics `json:"left"`
	Right RunMetrics `json:"right"`

	WinnerNodes string `json:"winner_nodes"`
	WinnerEdges string `json:"winner_edges"`
	WinnerPath  string `json:"winner_path"`
	WinnerSteps string `json:"winner_steps"`
}

// Compare ranks two runs, normally of different algorithms on the same
// graph and endpoints. For the path a run that found one beats a run that
// did not, whatever the cost.
func Compare(left, right RunMetrics) ComparisonResult {
	l, r := label(left, "left"), label(right, "right")
	if l == r {
		l, r = l+" (left)", r+" (right)"
	}

	res := ComparisonResult{
		Left:        left,
		Right:       right,
		WinnerNodes: lower(left.NodesVisited, right.NodesVisited, l, r),
		WinnerEdges: lower(left.EdgesRelaxed, right.EdgesRelaxed, l, r),
		WinnerSteps: lower(left.TotalSteps, right.TotalSteps, l, r),
	}
	lf := left.PathFound && !left.NegativeCycle
	rf := right.PathFound && !right.NegativeCycle
	switch {
	case lf && rf:
		res.WinnerPath = lower(left.PathCost, right.PathCost, l, r)
	case lf:
		res.WinnerPath = l
	case rf:
		res.WinnerPath = r
	default:
		res.WinnerPath = Tie
	}

	return res
}

func label(m RunMetrics, fallback string) string {
	switch {
	case m.AlgoLabel != "":
		return m.AlgoLabel
	case m.AlgoKey != "":
		return m.AlgoKey
	default:
		return fallback
	}
}

func lower[T int | float64](a, b T, la, lb string) string {
	switch {
	case a < b:
		return la
	case b < a:
		return lb
	default:
		return Tie
	}
}
