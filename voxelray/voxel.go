package voxelray

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

/* A voxel represents a value on a regular grid in three-dimensional space,
identified here by three integer coordinates on a grid of cubic cells with a
shared edge length. More information and comparisons with pixels here:
- https://en.wikipedia.org/wiki/Voxel
- https://medium.com/retronator-magazine/pixels-and-voxels-the-long-answer-5889ecc18190
*/

// VoxelCoords stores voxel coordinates in grid axes.
type VoxelCoords struct {
	I, J, K int64
}

// IsEqual tests if two VoxelCoords are the same.
func (c VoxelCoords) IsEqual(c2 VoxelCoords) bool {
	return c.I == c2.I && c.J == c2.J && c.K == c2.K
}

// PointToVoxelCoords returns the coordinates of the voxel containing pt on a
// grid of cubic voxels with edge length voxelSize. Using floor (round down) is
// actually very important: a plain int conversion rounds toward zero and lands
// in the wrong cell for negative coordinates.
func PointToVoxelCoords(pt r3.Vector, voxelSize float64) VoxelCoords {
	return VoxelCoords{
		I: int64(math.Floor(pt.X / voxelSize)),
		J: int64(math.Floor(pt.Y / voxelSize)),
		K: int64(math.Floor(pt.Z / voxelSize)),
	}
}

// ValidatePath checks a traversal path against the properties every traversal
// method must uphold: the path is non-empty, starts at the voxel containing
// rayStart, ends at the voxel containing rayEnd, and never repeats a voxel in
// consecutive positions. All violations found are reported together.
func ValidatePath(path []VoxelCoords, rayStart, rayEnd r3.Vector, voxelSize float64) error {
	if err := validateVoxelSize(voxelSize); err != nil {
		return err
	}
	if len(path) == 0 {
		return errors.New("traversal path is empty")
	}
	var err error
	if first := PointToVoxelCoords(rayStart, voxelSize); !path[0].IsEqual(first) {
		err = multierr.Combine(err, errors.Errorf("path starts at %v, want start voxel %v", path[0], first))
	}
	if last := PointToVoxelCoords(rayEnd, voxelSize); !path[len(path)-1].IsEqual(last) {
		err = multierr.Combine(err, errors.Errorf("path ends at %v, want end voxel %v", path[len(path)-1], last))
	}
	for i := 1; i < len(path); i++ {
		if path[i].IsEqual(path[i-1]) {
			err = multierr.Combine(err, errors.Errorf("voxel %v repeated at positions %d and %d", path[i], i-1, i))
		}
	}
	return err
}

func validateVoxelSize(voxelSize float64) error {
	if math.IsNaN(voxelSize) || voxelSize <= 0 {
		return errors.Errorf("voxel size must be a positive number, got %v", voxelSize)
	}
	return nil
}

func anyCoordNaN(pt r3.Vector) bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func max3Int64(a, b, c int64) int64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func stepToward(from, to int64) int64 {
	if from < to {
		return 1
	}
	return -1
}
