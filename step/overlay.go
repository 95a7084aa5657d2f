package step

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrUnknownOverlay is returned when decoding an overlay envelope whose kind
// is not one of the known variants.
var ErrUnknownOverlay = errors.New("step: unknown overlay kind")

// OverlayKind names an algorithm-specific overlay variant.
type OverlayKind string

// Overlay kinds.
const (
	KindQueue         OverlayKind = "queue"
	KindPriority      OverlayKind = "priority"
	KindStack         OverlayKind = "stack"
	KindScores        OverlayKind = "scores"
	KindBidirectional OverlayKind = "bidirectional"
	KindRounds        OverlayKind = "rounds"
	KindMatrix        OverlayKind = "matrix"
)

// Overlay is algorithm-specific data attached to a step. The set of
// variants is closed; switch on the concrete type or on Kind.
type Overlay interface {
	Kind() OverlayKind
	sealed()
}

// QueueOverlay is the FIFO contents of a breadth-first search, head first.
type QueueOverlay struct {
	Queue []string `json:"queue"`
}

// Entry is one element of a priority queue.
type Entry struct {
	Node     string  `json:"node"`
	Priority float64 `json:"priority"`
}

// PriorityOverlay is a Dijkstra open set in ascending priority order plus
// the finite tentative distances.
type PriorityOverlay struct {
	Queue     []Entry            `json:"queue"`
	Distances map[string]float64 `json:"distances"`
}

// StackOverlay is a depth-first stack, bottom first.
type StackOverlay struct {
	Stack []string `json:"stack"`
}

// Score is one row of an informed search table. For greedy best-first G is
// never consulted and F equals H.
type Score struct {
	Node string  `json:"node"`
	G    float64 `json:"g"`
	H    float64 `json:"h"`
	F    float64 `json:"f"`
}

// ScoreOverlay is the open set and score table of A* or greedy best-first.
type ScoreOverlay struct {
	Heuristic string  `json:"heuristic"`
	Open      []Entry `json:"open"`
	Scores    []Score `json:"scores"`
}

// BidirectionalOverlay holds both frontiers of a bidirectional search.
type BidirectionalOverlay struct {
	Forward  []string `json:"forward"`
	Backward []string `json:"backward"`
}

// RoundOverlay is the per-round view of Bellman–Ford.
type RoundOverlay struct {
	Round         int                `json:"round"`
	Distances     map[string]float64 `json:"distances"`
	NegativeCycle bool               `json:"negative_cycle"`
}

// Cell addresses one matrix entry by node IDs.
type Cell struct {
	Row string `json:"row"`
	Col string `json:"col"`
}

// MatrixOverlay is a Floyd–Warshall distance matrix. K is empty before the
// first intermediate node is processed. Dist is indexed in Nodes order and
// may contain +Inf.
type MatrixOverlay struct {
	K         string
	Nodes     []string
	Dist      [][]float64
	Highlight *Cell
}

func (QueueOverlay) Kind() OverlayKind         { return KindQueue }
func (PriorityOverlay) Kind() OverlayKind      { return KindPriority }
func (StackOverlay) Kind() OverlayKind         { return KindStack }
func (ScoreOverlay) Kind() OverlayKind         { return KindScores }
func (BidirectionalOverlay) Kind() OverlayKind { return KindBidirectional }
func (RoundOverlay) Kind() OverlayKind         { return KindRounds }
func (MatrixOverlay) Kind() OverlayKind        { return KindMatrix }

func (QueueOverlay) sealed()         {}
func (PriorityOverlay) sealed()      {}
func (StackOverlay) sealed()         {}
func (ScoreOverlay) sealed()         {}
func (BidirectionalOverlay) sealed() {}
func (RoundOverlay) sealed()         {}
func (MatrixOverlay) sealed()        {}

// matrixDoc is the wire form of MatrixOverlay; nil cells stand for +Inf.
type matrixDoc struct {
	K         string       `json:"k"`
	Nodes     []string     `json:"nodes"`
	Dist      [][]*float64 `json:"dist"`
	Highlight *Cell        `json:"highlight,omitempty"`
}

// MarshalJSON encodes +Inf cells as null.
func (m MatrixOverlay) MarshalJSON() ([]byte, error) {
	doc := matrixDoc{K: m.K, Nodes: m.Nodes, Highlight: m.Highlight, Dist: make([][]*float64, len(m.Dist))}
	for i, row := range m.Dist {
		doc.Dist[i] = make([]*float64, len(row))
		for j, v := range row {
			if math.IsInf(v, 1) {
				continue
			}
			v := v
			doc.Dist[i][j] = &v
		}
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes null cells back to +Inf.
func (m *MatrixOverlay) UnmarshalJSON(data []byte) error {
	var doc matrixDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	m.K, m.Nodes, m.Highlight = doc.K, doc.Nodes, doc.Highlight
	m.Dist = make([][]float64, len(doc.Dist))
	for i, row := range doc.Dist {
		m.Dist[i] = make([]float64, len(row))
		for j, p := range row {
			if p == nil {
				m.Dist[i][j] = math.Inf(1)
				continue
			}
			m.Dist[i][j] = *p
		}
	}

	return nil
}

// At returns the matrix entry for (row, col) by node ID.
func (m MatrixOverlay) At(row, col string) (float64, bool) {
	ri, ci := -1, -1
	for i, id := range m.Nodes {
		if id == row {
			ri = i
		}
		if id == col {
			ci = i
		}
	}
	if ri < 0 || ci < 0 {
		return 0, false
	}

	return m.Dist[ri][ci], true
}

type envelope struct {
	Kind OverlayKind     `json:"kind"`
	Data json.RawMessage `json:"data"`
}

func encodeOverlay(o Overlay) (*envelope, error) {
	if o == nil {
		return nil, nil
	}
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("step: encode %s overlay: %w", o.Kind(), err)
	}

	return &envelope{Kind: o.Kind(), Data: data}, nil
}

func decodeOverlay(env *envelope) (Overlay, error) {
	if env == nil {
		return nil, nil
	}
	var (
		o   Overlay
		err error
	)
	switch env.Kind {
	case KindQueue:
		o, err = decodeAs[QueueOverlay](env.Data)
	case KindPriority:
		o, err = decodeAs[PriorityOverlay](env.Data)
	case KindStack:
		o, err = decodeAs[StackOverlay](env.Data)
	case KindScores:
		o, err = decodeAs[ScoreOverlay](env.Data)
	case KindBidirectional:
		o, err = decodeAs[BidirectionalOverlay](env.Data)
	case KindRounds:
		o, err = decodeAs[RoundOverlay](env.Data)
	case KindMatrix:
		o, err = decodeAs[MatrixOverlay](env.Data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOverlay, env.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("step: decode %s overlay: %w", env.Kind, err)
	}

	return o, nil
}

func decodeAs[T Overlay](data []byte) (Overlay, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	return v, nil
}
