package internal

import "github.com/pkg/errors"

var (
	// Three collinear (or coincident) points were fed to a circle solver.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// Two vertices share coordinates, or a vertex sits on a super triangle corner.
	ErrDuplicateVertex = errors.New("duplicate vertex")
	// The region has a non-positive or non-finite dimension, or a vertex lies
	// outside the triangulation bounds.
	ErrInvalidRegion = errors.New("invalid region")
	// The sampler was asked for a spacing it can never exhaust.
	ErrInvalidInterval = errors.New("invalid interval")
)
