package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Segment is a line between two world points.
type Segment [2]mgl64.Vec3

// cubeEdges lists corner index pairs; corner bit 0 is X, bit 1 is Y, bit 2 is Z.
var cubeEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

// CubeEdges returns the 12 edges of an axis-aligned cube.
func CubeEdges(center mgl64.Vec3, size float64) []Segment {
	h := size / 2
	var corners [8]mgl64.Vec3
	for i := range corners {
		offset := mgl64.Vec3{-h, -h, -h}
		if i&1 != 0 {
			offset[0] = h
		}
		if i&2 != 0 {
			offset[1] = h
		}
		if i&4 != 0 {
			offset[2] = h
		}
		corners[i] = center.Add(offset)
	}

	edges := make([]Segment, 0, len(cubeEdges))
	for _, e := range cubeEdges {
		edges = append(edges, Segment{corners[e[0]], corners[e[1]]})
	}
	return edges
}

// GridLines returns a square grid on the plane y = center.Y() + height,
// spanning halfExtent on X and Z around center.
func GridLines(center mgl64.Vec3, halfExtent, spacing, height float64) []Segment {
	if spacing <= 0 || halfExtent <= 0 {
		return nil
	}
	n := int(math.Floor(halfExtent/spacing + 1e-9))
	y := center.Y() + height
	cx, cz := center.X(), center.Z()

	lines := make([]Segment, 0, 2*(2*n+1))
	for i := -n; i <= n; i++ {
		o := float64(i) * spacing
		lines = append(lines,
			Segment{{cx + o, y, cz - halfExtent}, {cx + o, y, cz + halfExtent}},
			Segment{{cx - halfExtent, y, cz + o}, {cx + halfExtent, y, cz + o}},
		)
	}
	return lines
}

// AxisLines returns unit-length X, Y and Z segments starting at origin.
func AxisLines(origin mgl64.Vec3, length float64) [3]Segment {
	return [3]Segment{
		{origin, origin.Add(mgl64.Vec3{length, 0, 0})},
		{origin, origin.Add(mgl64.Vec3{0, length, 0})},
		{origin, origin.Add(mgl64.Vec3{0, 0, length})},
	}
}
