package visualizer

import "errors"

var (
	// ErrUnknownStructure indicates a structure name that no visualizer answers to.
	ErrUnknownStructure = errors.New("visualizer: unknown structure")

	// ErrEmptyScene indicates a scene filter that selected nothing.
	ErrEmptyScene = errors.New("visualizer: no structures selected")
)
