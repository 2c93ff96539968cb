package voxelray

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// TraverseParametric walks the grid by tracking, per axis, the ray parameter
// at which the ray crosses the next voxel boundary, and stepping the axis with
// the smallest value. Refer to "A Fast Voxel Traversal Algorithm for Ray
// Tracing", John Amanatides & Andrew Woo, 1987.
//
// BUG: for some negative-direction geometries the pre-loop boundary correction
// can step an axis past its end coordinate and the walk never converges. The
// iteration cap turns that hang into ErrNoConvergence, but callers should
// prefer TraverseDDA and keep this variant for differential testing.
func TraverseParametric(rayStart, rayEnd r3.Vector, voxelSize float64) ([]VoxelCoords, error) {
	if err := validateVoxelSize(voxelSize); err != nil {
		return nil, err
	}
	start := PointToVoxelCoords(rayStart, voxelSize)
	end := PointToVoxelCoords(rayEnd, voxelSize)
	// A defect-free walk takes exactly the Manhattan voxel distance in steps;
	// anything well beyond that is the documented non-termination defect.
	manhattan := absInt64(end.I-start.I) + absInt64(end.J-start.J) + absInt64(end.K-start.K)
	return traverseParametric(rayStart, rayEnd, voxelSize, 4*(manhattan+1)+8)
}

func traverseParametric(rayStart, rayEnd r3.Vector, voxelSize float64, maxIterations int64) ([]VoxelCoords, error) {
	ray := rayEnd.Sub(rayStart)
	start := PointToVoxelCoords(rayStart, voxelSize)
	end := PointToVoxelCoords(rayEnd, voxelSize)
	if start.IsEqual(end) {
		return []VoxelCoords{start}, nil
	}

	origin := [3]float64{rayStart.X, rayStart.Y, rayStart.Z}
	dir := [3]float64{ray.X, ray.Y, ray.Z}
	cur := [3]int64{start.I, start.J, start.K}
	target := [3]int64{end.I, end.J, end.K}

	// Unit step per axis from the sign of the continuous delta.
	var step [3]int64
	for a := 0; a < 3; a++ {
		if dir[a] >= 0 {
			step[a] = 1
		} else {
			step[a] = -1
		}
	}

	// tMax: ray parameter of the first boundary crossing per axis; tDelta: the
	// parameter distance to cross one full voxel. An axis whose start and end
	// voxels agree never steps, so both get a sentinel that never wins the
	// minimum. A zero continuous delta implies equal start and end voxels on
	// that axis, so the divisions below never see a zero divisor.
	var tMax, tDelta [3]float64
	for a := 0; a < 3; a++ {
		if cur[a] == target[a] {
			tMax[a] = math.MaxFloat64
			tDelta[a] = math.MaxFloat64
			continue
		}
		boundary := float64(cur[a]+step[a]) * voxelSize
		tMax[a] = (boundary - origin[a]) / dir[a]
		tDelta[a] = voxelSize / dir[a] * float64(step[a])
	}

	path := []VoxelCoords{start}

	// Align the boundary convention with negative step directions before the
	// walk starts.
	negRay := false
	for a := 0; a < 3; a++ {
		if cur[a] != target[a] && dir[a] < 0 {
			cur[a]--
			negRay = true
		}
	}
	if negRay {
		path = append(path, VoxelCoords{cur[0], cur[1], cur[2]})
	}

	for i := int64(0); cur != target; i++ {
		if i >= maxIterations {
			return nil, errors.Wrapf(ErrNoConvergence,
				"parametric traversal from %v to %v stalled after %d iterations", rayStart, rayEnd, maxIterations)
		}
		if tMax[0] < tMax[1] {
			if tMax[0] < tMax[2] {
				cur[0] += step[0]
				tMax[0] += tDelta[0]
			} else {
				cur[2] += step[2]
				tMax[2] += tDelta[2]
			}
		} else {
			if tMax[1] < tMax[2] {
				cur[1] += step[1]
				tMax[1] += tDelta[1]
			} else {
				cur[2] += step[2]
				tMax[2] += tDelta[2]
			}
		}
		path = append(path, VoxelCoords{cur[0], cur[1], cur[2]})
	}
	return path, nil
}
