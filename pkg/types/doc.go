// Package types defines the street-grid domain model shared by the course
// loader, the walker, and the renderers: directions, positions, checkpoints,
// the grid itself, and the walk report produced when a traversal ends.
package types
