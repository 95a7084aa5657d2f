package core

// NodeState is the visual state of a node in one step of a trace.
type NodeState string

// Node states, in the palette order a renderer would typically use.
const (
	NodeUnvisited NodeState = "unvisited"
	NodeFrontier  NodeState = "frontier"
	NodeFrontierB NodeState = "frontier_b" // backward frontier of a bidirectional search
	NodeVisited   NodeState = "visited"
	NodeCurrent   NodeState = "current"
	NodePath      NodeState = "path"
	NodeBlocked   NodeState = "blocked"
	NodeSource    NodeState = "source"
	NodeTarget    NodeState = "target"
)

// EdgeState is the visual state of an edge in one step of a trace.
type EdgeState string

// Edge states.
const (
	EdgeDefault EdgeState = "default"
	EdgeRelaxed EdgeState = "relaxed"
	EdgeChosen  EdgeState = "chosen"
	EdgeIgnored EdgeState = "ignored"
	EdgeActive  EdgeState = "active"
)
