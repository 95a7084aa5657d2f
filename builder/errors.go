package builder

import "errors"

// Sentinel errors. Constructors wrap them with their method name, e.g.
// "Grid: rows=0, cols=3 (each must be ≥ 1): builder: parameter too small".
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a programmer error such as a nil
	// constructor or nil target graph.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrBadAdjacency indicates malformed adjacency list or matrix text.
	ErrBadAdjacency = errors.New("builder: malformed adjacency text")
)
