package maze

import "errors"

var (
	ErrInvalidDimensions    = errors.New("maze dimensions must be odd and at least 5")
	ErrOutOfBounds          = errors.New("position out of bounds")
	ErrNoCandidateAvailable = errors.New("no boundary candidate available")
	ErrAmbiguousBoundary    = errors.New("position is not adjacent to a border")
	ErrCarverStuck          = errors.New("carver has no target and nothing to backtrack to")
	ErrNotPerfect           = errors.New("maze is not perfect")
	ErrMalformedRecord      = errors.New("malformed maze record")
	ErrNotReplayable        = errors.New("maze was generated from an injected source and cannot be replayed from a seed")
)
