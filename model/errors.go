package model

import "github.com/pkg/errors"

var (
	// ErrInvalidGeneration indicates a neighborhood computation was
	// asked to operate without a backing generation.
	ErrInvalidGeneration = errors.New("model: invalid generation")

	// ErrInvalidCoordinates indicates an operation requiring a focal
	// coordinate received none.
	ErrInvalidCoordinates = errors.New("model: invalid coordinates")
)
