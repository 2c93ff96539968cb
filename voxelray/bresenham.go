package voxelray

import (
	"github.com/golang/geo/r3"
)

// TraverseBresenham generalizes the classic 2D integer error-accumulator line
// algorithm to 3D. Refer to the code collected at
// http://members.chello.at/easyfilter/bresenham.html.
//
// The walk is exact and bounded: it emits exactly dominant+1 voxels, where
// dominant is the largest per-axis voxel index delta, stepping each
// accumulator's axis once per underflow. NaN coordinates yield an empty path.
func TraverseBresenham(rayStart, rayEnd r3.Vector, voxelSize float64) ([]VoxelCoords, error) {
	if err := validateVoxelSize(voxelSize); err != nil {
		return nil, err
	}
	if anyCoordNaN(rayStart) || anyCoordNaN(rayEnd) {
		return nil, nil
	}
	start := PointToVoxelCoords(rayStart, voxelSize)
	end := PointToVoxelCoords(rayEnd, voxelSize)

	dx, sx := absInt64(end.I-start.I), stepToward(start.I, end.I)
	dy, sy := absInt64(end.J-start.J), stepToward(start.J, end.J)
	dz, sz := absInt64(end.K-start.K), stepToward(start.K, end.K)
	dominant := max3Int64(dx, dy, dz)

	// error offsets
	ex, ey, ez := dominant>>1, dominant>>1, dominant>>1

	x, y, z := start.I, start.J, start.K
	path := make([]VoxelCoords, 0, dominant+1)
	for i := dominant; ; i-- {
		path = append(path, VoxelCoords{x, y, z})
		if i == 0 {
			break
		}
		ex -= dx
		if ex < 0 {
			ex += dominant
			x += sx
		}
		ey -= dy
		if ey < 0 {
			ey += dominant
			y += sy
		}
		ez -= dz
		if ez < 0 {
			ez += dominant
			z += sz
		}
	}

	if last := path[len(path)-1]; !last.IsEqual(end) {
		return nil, &ConsistencyError{Got: last, Want: end}
	}
	return path, nil
}
