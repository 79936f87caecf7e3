// Package shape rasterizes the AABB shapes spec §4.G names (Cube, Torus,
// Cylinder, Cone, Dome, Ellipse) through a Writer so that selection
// clipping and dirty tracking — owned by the caller's volume wrapper —
// apply uniformly. Grounded on the teacher's voxelrt/rt/volume/primitives.go
// (Sphere/Cube/Cone/Pyramid/Point filling an XBrickMap); the analytic
// inside-tests below are the dense-RawVolume equivalents of that file's
// bounding-box-and-predicate idiom, expressed with the same mgl32 vector
// arithmetic primitives.go uses for its center/radius tests.
package shape

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/voxedit/voxel/region"
	"github.com/gekko3d/voxedit/voxel/volume"
)

// Writer is the minimal write surface a rasterizer needs. A
// modifier.VolumeWrapper satisfies this structurally.
type Writer interface {
	SetVoxel(x, y, z int32, val volume.Voxel) bool
}

// Axis names which of the three grid axes a shape's main axis runs along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Cube fills every voxel of aabb.
func Cube(w Writer, aabb region.Region, val volume.Voxel) {
	for z := aabb.Mins[2]; z <= aabb.Maxs[2]; z++ {
		for y := aabb.Mins[1]; y <= aabb.Maxs[1]; y++ {
			for x := aabb.Mins[0]; x <= aabb.Maxs[0]; x++ {
				w.SetVoxel(x, y, z, val)
			}
		}
	}
}

// axisSizes returns (along, perp1, perp2): the aabb's extent along axis,
// and its two extents perpendicular to it.
func axisSizes(aabb region.Region, axis Axis) (along, perp1, perp2 float32) {
	dims := aabb.DimensionsInVoxels()
	fx, fy, fz := float32(dims[0]), float32(dims[1]), float32(dims[2])
	switch axis {
	case AxisX:
		return fx, fy, fz
	case AxisZ:
		return fz, fx, fy
	default:
		return fy, fx, fz
	}
}

// localCoords maps a world voxel center into aabb-relative (along, p1, p2)
// axes, packed as a Vec3 so callers can use mgl32's vector ops (Dot, Len)
// for the inside tests instead of hand-rolled sums of squares.
func localCoords(aabb region.Region, axis Axis, x, y, z int32) mgl32.Vec3 {
	c := aabb.Center()
	offset := mgl32.Vec3{float32(x) - float32(c[0]), float32(y) - float32(c[1]), float32(z) - float32(c[2])}
	switch axis {
	case AxisX:
		return mgl32.Vec3{offset.X(), offset.Y(), offset.Z()}
	case AxisZ:
		return mgl32.Vec3{offset.Z(), offset.X(), offset.Y()}
	default:
		return mgl32.Vec3{offset.Y(), offset.X(), offset.Z()}
	}
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Torus rasterizes (majorRadius, minorRadius) = (size/2 - size/5, size/5)
// where size is the larger of the two dimensions perpendicular to axis;
// a voxel belongs iff (|p1,p2| - R)^2 + along^2 <= r^2.
func Torus(w Writer, aabb region.Region, axis Axis, val volume.Voxel) {
	_, perp1, perp2 := axisSizes(aabb, axis)
	size := perp1
	if perp2 > size {
		size = perp2
	}
	major := size/2 - size/5
	minor := size / 5

	forEachVoxel(aabb, func(x, y, z int32) {
		v := localCoords(aabb, axis, x, y, z)
		ring := mgl32.Vec2{v.Y(), v.Z()}.Len() - major
		if ring*ring+v.X()*v.X() <= minor*minor {
			w.SetVoxel(x, y, z, val)
		}
	})
}

// Cylinder rasterizes a disk extruded along axis, whose radius is half the
// smaller of the two dimensions perpendicular to axis.
func Cylinder(w Writer, aabb region.Region, axis Axis, val volume.Voxel) {
	_, perp1, perp2 := axisSizes(aabb, axis)
	radius := minF32(perp1, perp2) / 2

	forEachVoxel(aabb, func(x, y, z int32) {
		v := localCoords(aabb, axis, x, y, z)
		if (mgl32.Vec2{v.Y(), v.Z()}).Len() <= radius {
			w.SetVoxel(x, y, z, val)
		}
	})
}

// Cone narrows linearly from its base (negative end of axis) to a point at
// the positive end.
func Cone(w Writer, aabb region.Region, axis Axis, val volume.Voxel) {
	height, perp1, perp2 := axisSizes(aabb, axis)
	baseRadius := minF32(perp1, perp2) / 2

	forEachVoxel(aabb, func(x, y, z int32) {
		v := localCoords(aabb, axis, x, y, z)
		t := (v.X() + height/2) / height // 0 at base, 1 at tip
		if t < 0 || t > 1 {
			return
		}
		r := baseRadius * (1 - t)
		if (mgl32.Vec2{v.Y(), v.Z()}).Len() <= r {
			w.SetVoxel(x, y, z, val)
		}
	})
}

// Dome is a half-ellipsoid: the lower half along axis is flat-bottomed,
// the upper half curves to the apex.
func Dome(w Writer, aabb region.Region, axis Axis, val volume.Voxel) {
	height, perp1, perp2 := axisSizes(aabb, axis)
	radii := mgl32.Vec3{perp1 / 2, perp2 / 2, height / 2}

	forEachVoxel(aabb, func(x, y, z int32) {
		v := localCoords(aabb, axis, x, y, z)
		if v.X() < 0 {
			return
		}
		n := mgl32.Vec3{v.Y() / radii.X(), v.Z() / radii.Y(), v.X() / radii.Z()}
		if n.Dot(n) <= 1 {
			w.SetVoxel(x, y, z, val)
		}
	})
}

// Ellipse rasterizes a filled ellipsoid inscribed in aabb.
func Ellipse(w Writer, aabb region.Region, val volume.Voxel) {
	dims := aabb.DimensionsInVoxels()
	radii := mgl32.Vec3{float32(dims[0]) / 2, float32(dims[1]) / 2, float32(dims[2]) / 2}
	c := aabb.Center()
	center := mgl32.Vec3{float32(c[0]), float32(c[1]), float32(c[2])}

	forEachVoxel(aabb, func(x, y, z int32) {
		p := mgl32.Vec3{float32(x), float32(y), float32(z)}.Sub(center)
		n := mgl32.Vec3{p.X() / radii.X(), p.Y() / radii.Y(), p.Z() / radii.Z()}
		if n.Dot(n) <= 1 {
			w.SetVoxel(x, y, z, val)
		}
	})
}

func forEachVoxel(aabb region.Region, f func(x, y, z int32)) {
	for z := aabb.Mins[2]; z <= aabb.Maxs[2]; z++ {
		for y := aabb.Mins[1]; y <= aabb.Maxs[1]; y++ {
			for x := aabb.Mins[0]; x <= aabb.Maxs[0]; x++ {
				f(x, y, z)
			}
		}
	}
}
