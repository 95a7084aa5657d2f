package step

import (
	"encoding/json"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

// Metrics are running tallies carried by every step. EdgesRelaxed is
// cumulative across the trace; NodesVisited is the size of the step's
// visited set; PathLength is the edge count of the step's path.
type Metrics struct {
	NodesVisited int `json:"nodes_visited"`
	EdgesRelaxed int `json:"edges_relaxed"`
	PathLength   int `json:"path_length"`
}

// Step is one immutable instant of a run. Containers are owned by the step
// and must not be modified by readers.
//
// NodeStates and EdgeStates are sparse: only entities whose visual state
// changed at this instant. Visited, Frontier and Distances are complete
// snapshots. Distances lists finite entries only; a missing node is at
// infinity. An empty CurrentNode or CurrentEdge means none.
type Step struct {
	Number         int                       `json:"step_number"`
	CurrentNode    string                    `json:"current_node,omitempty"`
	CurrentEdge    string                    `json:"current_edge,omitempty"`
	NodeStates     map[string]core.NodeState `json:"node_states"`
	EdgeStates     map[string]core.EdgeState `json:"edge_states"`
	Visited        []string                  `json:"visited_set"`
	Frontier       []string                  `json:"frontier"`
	Path           []string                  `json:"path"`
	Distances      map[string]float64        `json:"distances"`
	PseudocodeLine int                       `json:"pseudocode_line"`
	Explanation    string                    `json:"explanation"`
	Overlay        Overlay                   `json:"-"`
	Metrics        Metrics                   `json:"metrics"`
	Final          bool                      `json:"is_final"`
}

// Found reports whether s is a terminal step carrying a path.
func (s Step) Found() bool {
	return s.Final && len(s.Path) > 0
}

// NegativeCycle reports whether s carries a round overlay flagging a
// negative cycle.
func (s Step) NegativeCycle() bool {
	ro, ok := s.Overlay.(RoundOverlay)

	return ok && ro.NegativeCycle
}

// MarshalJSON encodes the step with its overlay wrapped in a {kind, data}
// envelope.
func (s Step) MarshalJSON() ([]byte, error) {
	type plain Step
	env, err := encodeOverlay(s.Overlay)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		plain
		Overlay *envelope `json:"overlay,omitempty"`
	}{plain: plain(s), Overlay: env})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (s *Step) UnmarshalJSON(data []byte) error {
	type plain Step
	aux := struct {
		*plain
		Overlay *envelope `json:"overlay"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o, err := decodeOverlay(aux.Overlay)
	if err != nil {
		return err
	}
	s.Overlay = o

	return nil
}
