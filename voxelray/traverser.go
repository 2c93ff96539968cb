// Package voxelray computes the ordered sequence of voxels a continuous 3D
// line segment passes through on a uniform grid of cubic cells.
//
// This is the primitive occupancy-style mapping systems use to mark which grid
// cells a sensor ray crosses between its origin and a hit point. Three
// interchangeable algorithms implement the same contract with different
// trade-offs; TraverseDDA is the production default, TraverseParametric is
// kept as a reference oracle for differential testing.
//
// Every traversal is a pure function over its arguments: no shared state, no
// I/O, freshly allocated results. Calls are safe from concurrent goroutines
// with no synchronization.
package voxelray

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Traverser computes the ordered voxels a segment from rayStart to rayEnd
// passes through, on a grid of cubic voxels with edge length voxelSize. The
// returned path begins at the voxel containing rayStart and ends at the voxel
// containing rayEnd; a zero-length segment yields a single-element path.
type Traverser func(rayStart, rayEnd r3.Vector, voxelSize float64) ([]VoxelCoords, error)

// Method names one of the traversal algorithms.
type Method string

// The available traversal methods.
const (
	MethodParametric Method = "parametric"
	MethodBresenham  Method = "bresenham"
	MethodDDA        Method = "dda"
)

// DefaultMethod is the method callers should use unless they have a reason not
// to: integer-only arithmetic, bounded iteration count and the best measured
// throughput of the three.
const DefaultMethod = MethodDDA

var traversers = map[Method]Traverser{
	MethodParametric: TraverseParametric,
	MethodBresenham:  TraverseBresenham,
	MethodDDA:        TraverseDDA,
}

// NewTraverser returns the traverser implementing the given method.
func NewTraverser(m Method) (Traverser, error) {
	t, have := traversers[m]
	if !have {
		return nil, errors.Errorf("unknown traversal method: %v", m)
	}
	return t, nil
}

// Methods returns all available methods in a stable order, so a test suite can
// run the shared contract against every implementation.
func Methods() []Method {
	return []Method{MethodParametric, MethodBresenham, MethodDDA}
}

// ErrNoConvergence is returned by TraverseParametric when the walk exceeds its
// iteration cap without reaching the end voxel. It is an internal-consistency
// fault, not a data problem; retrying reproduces the identical failure.
var ErrNoConvergence = errors.New("traversal exceeded its iteration cap without reaching the end voxel")

// ConsistencyError reports that a traversal ended on a voxel other than the
// one containing the ray end point. It signals an arithmetic defect in the
// traversal itself for that input class, never bad input, and must not be
// swallowed or retried.
type ConsistencyError struct {
	Got, Want VoxelCoords
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("traversal ended at voxel %v, want %v", e.Got, e.Want)
}
