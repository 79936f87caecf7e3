package modifier

import (
	"github.com/gekko3d/voxedit/voxel/region"
	"github.com/gekko3d/voxedit/voxel/volume"
)

// Modifier is the finite-state editor of spec §4.F: cursor, reference
// position, selection, mirror axis/position, grid resolution, and the
// Type/ShapeType pair that drives aabbAction's dispatch.
type Modifier struct {
	ModifierType   Type
	ShapeType      ShapeType
	GridResolution int32
	MirrorAxis     Axis
	MirrorPos      int32
	CenterMode     bool

	Selection region.Region

	state State

	cursorPos    [3]int32
	referencePos [3]int32

	firstPos  [3]int32
	secondPos [3]int32

	secondPosValid        bool
	secondActionDirection Axis

	lastPicked volume.Voxel
}

// New returns an idle Modifier with a 1-voxel grid resolution.
func New() *Modifier {
	return &Modifier{GridResolution: 1, Selection: region.Invalid}
}

// State reports the current AABB state machine node.
func (m *Modifier) State() State { return m.state }

// SetCursor updates the cursor position the next gesture will act on.
func (m *Modifier) SetCursor(x, y, z int32) { m.cursorPos = [3]int32{x, y, z} }

// SetReference updates the reference position Line/Path raycast/pathfind
// from.
func (m *Modifier) SetReference(x, y, z int32) { m.referencePos = [3]int32{x, y, z} }

// aabbStart records firstPos = currentCursor and transitions to
// FirstPicked, except in Single mode where the AABB never latches.
func (m *Modifier) AabbStart() {
	m.firstPos = m.cursorPos
	m.secondPosValid = false
	if m.ModifierType.Has(Single) {
		m.state = Execute
		return
	}
	m.state = FirstPicked
}

// AabbStep records secondPos = currentCursor and transitions forward,
// inserting ThirdPicked when the drawn rectangle needs a third axis.
func (m *Modifier) AabbStep() {
	m.secondPos = m.cursorPos
	m.secondPosValid = true
	if m.state != FirstPicked && m.state != ThirdPicked {
		return
	}
	if m.state == FirstPicked && m.NeedsSecondAction() {
		m.state = ThirdPicked
		return
	}
	m.state = Execute
}

// NeedsSecondAction reports whether the current AABB is a flat rectangle —
// exactly one axis has length GridResolution and the other two are
// strictly greater — so the user must extrude into the third axis.
func (m *Modifier) NeedsSecondAction() bool {
	aabb := m.Aabb()
	dims := aabb.DimensionsInVoxels()
	flatAxes := 0
	for _, d := range dims {
		if d == m.GridResolution {
			flatAxes++
		}
	}
	return flatAxes == 1
}

// AabbPosition is the cursor projected onto the fixed axes of the
// rectangle once a third axis is being chosen.
func (m *Modifier) AabbPosition() [3]int32 {
	if m.state != ThirdPicked {
		return m.cursorPos
	}
	aabb := m.Aabb()
	pos := m.cursorPos
	dims := aabb.DimensionsInVoxels()
	for i, d := range dims {
		if d == m.GridResolution {
			// the flat axis stays pinned to where it already is
			pos[i] = aabb.Mins[i]
		}
	}
	return pos
}

// Aabb returns [min(first,cur), max(first,cur) + GridResolution - 1]. In
// Center mode firstPos is the center: the current position is reflected
// through firstPos and that reflection is used as the first corner, so the
// box is symmetric around firstPos.
func (m *Modifier) Aabb() region.Region {
	first := m.firstPos
	cur := m.currentForAabb()
	if m.CenterMode {
		first = [3]int32{
			2*first[0] - cur[0],
			2*first[1] - cur[1],
			2*first[2] - cur[2],
		}
	}
	mins := [3]int32{min32(first[0], cur[0]), min32(first[1], cur[1]), min32(first[2], cur[2])}
	maxs := [3]int32{max32(first[0], cur[0]), max32(first[1], cur[1]), max32(first[2], cur[2])}
	return region.New(mins[0], mins[1], mins[2],
		maxs[0]+m.GridResolution-1, maxs[1]+m.GridResolution-1, maxs[2]+m.GridResolution-1)
}

func (m *Modifier) currentForAabb() [3]int32 {
	if m.secondPosValid {
		return m.secondPos
	}
	return m.cursorPos
}

// AabbAbort discards the in-progress gesture and returns to Idle.
func (m *Modifier) AabbAbort() {
	m.state = Idle
	m.secondPosValid = false
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
