package htmlnode

import "errors"

var (
	// ErrMissingValue is returned when a Leaf with no value is rendered.
	ErrMissingValue = errors.New("leaf node has no value")
	// ErrInvalidContainer is returned when a Parent has no tag or no children.
	ErrInvalidContainer = errors.New("invalid parent node")
)
