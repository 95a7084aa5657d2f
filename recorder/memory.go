package recorder

import (
	"unsafe"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// Rough per-entry costs of Go containers on 64-bit platforms.
const (
	stringHeader = int64(unsafe.Sizeof(""))
	mapEntry     = 48 // bucket share of one small entry, amortised
	float64Size  = int64(unsafe.Sizeof(float64(0)))
)

// estimateBytes approximates the heap held by steps: the Step structs
// plus the payload of every string, slice and map they own. Overlays are
// counted by their queue and matrix payloads. It is an estimate for the
// analytics panel, not an allocator measurement.
func estimateBytes(steps []step.Step) int64 {
	total := int64(cap(steps)) * int64(unsafe.Sizeof(step.Step{}))
	for i := range steps {
		s := &steps[i]
		total += int64(len(s.CurrentNode) + len(s.CurrentEdge) + len(s.Explanation))
		total += stringBytes(s.Visited) + stringBytes(s.Frontier) + stringBytes(s.Path)
		for id, st := range s.NodeStates {
			total += mapEntry + int64(len(id)+len(st))
		}
		for id, st := range s.EdgeStates {
			total += mapEntry + int64(len(id)+len(st))
		}
		for id := range s.Distances {
			total += mapEntry + int64(len(id)) + float64Size
		}
		total += overlayBytes(s.Overlay)
	}

	return total
}

func stringBytes(ids []string) int64 {
	n := int64(cap(ids)) * stringHeader
	for _, id := range ids {
		n += int64(len(id))
	}

	return n
}

func overlayBytes(o step.Overlay) int64 {
	switch v := o.(type) {
	case step.QueueOverlay:
		return stringBytes(v.Queue)
	case step.StackOverlay:
		return stringBytes(v.Stack)
	case step.BidirectionalOverlay:
		return stringBytes(v.Forward) + stringBytes(v.Backward)
	case step.PriorityOverlay:
		return entries(v.Queue) + int64(len(v.Distances))*(mapEntry+float64Size)
	case step.ScoreOverlay:
		return entries(v.Open) + int64(len(v.Scores))*int64(unsafe.Sizeof(step.Score{}))
	case step.RoundOverlay:
		return int64(len(v.Distances)) * (mapEntry + float64Size)
	case step.MatrixOverlay:
		n := stringBytes(v.Nodes)
		for _, row := range v.Dist {
			n += int64(cap(row)) * float64Size
		}
		return n
	default:
		return 0
	}
}

func entries(es []step.Entry) int64 {
	return int64(cap(es)) * int64(unsafe.Sizeof(step.Entry{}))
}
