package modifier

import (
	"github.com/gekko3d/voxedit/voxel/pathfind"
	"github.com/gekko3d/voxedit/voxel/raycast"
	"github.com/gekko3d/voxedit/voxel/region"
	"github.com/gekko3d/voxedit/voxel/shape"
	"github.com/gekko3d/voxedit/voxel/volume"
)

// DirtyCallback is invoked once per disjoint region an aabbAction emits, in
// emission order, before AabbAction returns (spec §5 ordering guarantee).
type DirtyCallback func(r region.Region, t Type)

// AabbAction dispatches the current gesture against vol via a fresh
// VolumeWrapper clipped to Selection, then resets the latch and returns to
// Idle. cursorVoxel is the material written by Place/Paint/Line/Path/Plane;
// Erase always writes Air regardless of cursorVoxel.
func (m *Modifier) AabbAction(vol *volume.RawVolume, cursorVoxel volume.Voxel, onDirty DirtyCallback) {
	defer func() {
		m.secondPosValid = false
		m.secondActionDirection = AxisNone
		m.state = Idle
	}()

	writeMode := m.ModifierType & (Place | Erase | Paint)
	w := NewVolumeWrapper(vol, writeMode, m.Selection)

	var mirror *VolumeWrapper
	if m.MirrorAxis != AxisNone {
		mirror = NewVolumeWrapper(vol, writeMode, m.Selection)
	}
	writer := &mirrorWriter{primary: w, mirror: mirror, axis: m.MirrorAxis, pos: m.MirrorPos}

	switch {
	case m.ModifierType.Has(Select):
		m.dispatchSelect(onDirty)
		return
	case m.ModifierType.Has(ColorPicker):
		m.dispatchColorPicker(vol)
		return
	case m.ModifierType.Has(Line):
		m.dispatchLine(writer, cursorVoxel)
	case m.ModifierType.Has(Path):
		m.dispatchPath(vol, writer, cursorVoxel)
	case m.ModifierType.Has(Plane):
		m.dispatchPlane(vol, writer, cursorVoxel)
	default:
		m.dispatchShape(writer, cursorVoxel)
	}

	m.emitDirty(w.DirtyRegion(), mirror, onDirty)
}

func (m *Modifier) dispatchSelect(onDirty DirtyCallback) {
	aabb := m.Aabb()
	if m.Selection.Valid() {
		aabb = aabb.Intersection(m.Selection)
	}
	m.Selection = aabb
	if onDirty != nil {
		onDirty(aabb, Select)
	}
}

func (m *Modifier) dispatchColorPicker(vol *volume.RawVolume) {
	m.lastPicked = vol.Voxel(m.cursorPos[0], m.cursorPos[1], m.cursorPos[2])
}

// LastPicked returns the voxel most recently sampled by a ColorPicker
// gesture on this Modifier.
func (m *Modifier) LastPicked() volume.Voxel { return m.lastPicked }

func (m *Modifier) dispatchLine(w shape.Writer, cursorVoxel volume.Voxel) {
	ref, cur := m.referencePos, m.cursorPos
	raycast.Line(ref[0], ref[1], ref[2], cur[0], cur[1], cur[2], func(x, y, z int32) bool {
		w.SetVoxel(x, y, z, cursorVoxel)
		return true
	})
}

func (m *Modifier) dispatchPath(vol *volume.RawVolume, w shape.Writer, cursorVoxel volume.Voxel) {
	ref, cur := m.referencePos, m.cursorPos
	start := pathfind.Point{ref[0], ref[1], ref[2]}
	goal := pathfind.Point{cur[0], cur[1], cur[2]}

	path := pathfind.Find(start, goal, func(p pathfind.Point) bool {
		if vol.Voxel(p[0], p[1], p[2]).IsBlocked() {
			return false
		}
		return touchesSolid(vol, p)
	})
	for _, p := range path {
		w.SetVoxel(p[0], p[1], p[2], cursorVoxel)
	}
}

func touchesSolid(vol *volume.RawVolume, p pathfind.Point) bool {
	deltas := [6][3]int32{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	for _, d := range deltas {
		if vol.Voxel(p[0]+d[0], p[1]+d[1], p[2]+d[2]).IsBlocked() {
			return true
		}
	}
	return false
}

// dispatchPlane floodfills coplanar voxels equal to the one at the cursor and
// writes cursorVoxel at each filled cell through w: Erase clears them and
// Paint repaints them. Writes land on the filled cells themselves, with no
// offset along the face normal, so Place (which only writes into air) does
// not extrude a solid face; it only fills a coplanar region of air.
func (m *Modifier) dispatchPlane(vol *volume.RawVolume, w shape.Writer, cursorVoxel volume.Voxel) {
	start := m.cursorPos
	hitKind := vol.Voxel(start[0], start[1], start[2])

	axis := m.secondActionDirection
	if axis == AxisNone {
		axis = AxisY
	}

	visited := map[[3]int32]bool{}
	queue := [][3]int32{start}
	visited[start] = true

	var planeDeltas [][3]int32
	switch axis {
	case AxisX:
		planeDeltas = [][3]int32{{0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	case AxisZ:
		planeDeltas = [][3]int32{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}
	default:
		planeDeltas = [][3]int32{{1, 0, 0}, {-1, 0, 0}, {0, 0, 1}, {0, 0, -1}}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		w.SetVoxel(p[0], p[1], p[2], cursorVoxel)

		for _, d := range planeDeltas {
			np := [3]int32{p[0] + d[0], p[1] + d[1], p[2] + d[2]}
			if visited[np] {
				continue
			}
			if !vol.Voxel(np[0], np[1], np[2]).Equal(hitKind) {
				continue
			}
			visited[np] = true
			queue = append(queue, np)
		}
	}
}

func (m *Modifier) dispatchShape(w shape.Writer, cursorVoxel volume.Voxel) {
	aabb := m.Aabb()
	axis := shapeAxis(m.secondActionDirection)
	val := cursorVoxel
	if m.ModifierType.Has(Erase) && !m.ModifierType.Has(Place) {
		val = volume.AirVoxel
	}

	switch m.ShapeType {
	case ShapeTorus:
		shape.Torus(w, aabb, axis, val)
	case ShapeCylinder:
		shape.Cylinder(w, aabb, axis, val)
	case ShapeCone:
		shape.Cone(w, aabb, axis, val)
	case ShapeDome:
		shape.Dome(w, aabb, axis, val)
	case ShapeEllipse:
		shape.Ellipse(w, aabb, val)
	default:
		shape.Cube(w, aabb, val)
	}
}

func shapeAxis(a Axis) shape.Axis {
	switch a {
	case AxisX:
		return shape.AxisX
	case AxisZ:
		return shape.AxisZ
	default:
		return shape.AxisY
	}
}

// mirrorWriter duplicates every write onto its reflection across MirrorAxis
// at MirrorPos, through a second VolumeWrapper over the same volume, so
// Line/Path/Plane/Shape dispatch actually populate the mirrored half rather
// than only reporting a mirrored dirty region. mirror is nil when no axis is
// set, in which case this is a passthrough to primary.
type mirrorWriter struct {
	primary *VolumeWrapper
	mirror  *VolumeWrapper
	axis    Axis
	pos     int32
}

func (w *mirrorWriter) SetVoxel(x, y, z int32, val volume.Voxel) bool {
	ok := w.primary.SetVoxel(x, y, z, val)
	if w.mirror == nil {
		return ok
	}
	rx, ry, rz := reflectPoint(x, y, z, w.axis, w.pos)
	mirrored := w.mirror.SetVoxel(rx, ry, rz, val)
	return ok || mirrored
}

func reflectPoint(x, y, z int32, axis Axis, pos int32) (int32, int32, int32) {
	switch axis {
	case AxisX:
		return 2*pos - x, y, z
	case AxisZ:
		return x, y, 2*pos - z
	default:
		return x, 2*pos - y, z
	}
}

// emitDirty reports the primary wrapper's dirty region and, when mirroring
// produced one, the mirror wrapper's own dirty region: merged into a single
// emission when they overlap, or as two separate emissions otherwise (spec
// §5 ordering guarantee).
func (m *Modifier) emitDirty(primary region.Region, mirror *VolumeWrapper, onDirty DirtyCallback) {
	if onDirty == nil {
		return
	}
	if mirror == nil || !mirror.DirtyRegion().Valid() {
		if primary.Valid() {
			onDirty(primary, m.ModifierType)
		}
		return
	}

	mirrored := mirror.DirtyRegion()
	if !primary.Valid() {
		onDirty(mirrored, m.ModifierType)
		return
	}
	if primary.Intersects(mirrored) {
		onDirty(primary.Union(mirrored), m.ModifierType)
		return
	}
	onDirty(primary, m.ModifierType)
	onDirty(mirrored, m.ModifierType)
}
