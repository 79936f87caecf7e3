// Package raycast implements the DDA-style voxel traversal the Line tool
// and picking need (spec §4.F/§6), grounded on the teacher's
// voxelrt/rt/editor/editor.go (Ray{Origin, Direction mgl32.Vec3},
// intersectAABB, Pick's object-space ray march) adapted from a continuous
// float ray against an XBrickMap to an integer voxel-to-voxel walk against
// a RawVolume-shaped grid, using the same mgl32 vector types editor.go does.
package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Stepper reports whether stepping onto (x,y,z) should continue the walk;
// returning false stops iteration (used by picking to stop at the first
// solid voxel).
type Stepper func(x, y, z int32) (keepGoing bool)

// Line walks the integer voxels from (x0,y0,z0) to (x1,y1,z1) inclusive
// using 3D DDA, calling visit at each step in order. It always visits the
// start and end voxels.
func Line(x0, y0, z0, x1, y1, z1 int32, visit Stepper) {
	steps := maxAbs3(x1-x0, y1-y0, z1-z0)
	if steps == 0 {
		visit(x0, y0, z0)
		return
	}

	delta := mgl32.Vec3{float32(x1 - x0), float32(y1 - y0), float32(z1 - z0)}
	inc := delta.Mul(1 / float32(steps))

	pos := mgl32.Vec3{float32(x0), float32(y0), float32(z0)}
	for i := int32(0); i <= steps; i++ {
		if !visit(roundToInt32(pos.X()), roundToInt32(pos.Y()), roundToInt32(pos.Z())) {
			return
		}
		pos = pos.Add(inc)
	}
}

func maxAbs3(a, b, c int32) int32 {
	m := absInt32(a)
	if v := absInt32(b); v > m {
		m = v
	}
	if v := absInt32(c); v > m {
		m = v
	}
	return m
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func roundToInt32(v float32) int32 {
	return int32(math.Round(float64(v)))
}

// Ray is an origin/direction pair, the shape the teacher's editor.go casts
// for picking.
type Ray struct {
	Origin, Direction mgl32.Vec3
}

// AABBIntersect returns the entry/exit parametric distances of ray against
// an axis-aligned box [minB, maxB]. tMin > tMax means no intersection.
func AABBIntersect(ray Ray, minB, maxB mgl32.Vec3) (tMin, tMax float32) {
	tMinV, tMaxV := float32(0), float32(math.MaxFloat32)
	for i := 0; i < 3; i++ {
		o, d := ray.Origin[i], ray.Direction[i]
		if d == 0 {
			if o < minB[i] || o > maxB[i] {
				return 1, 0
			}
			continue
		}
		inv := 1 / d
		t1 := (minB[i] - o) * inv
		t2 := (maxB[i] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMinV {
			tMinV = t1
		}
		if t2 < tMaxV {
			tMaxV = t2
		}
	}
	return tMinV, tMaxV
}
