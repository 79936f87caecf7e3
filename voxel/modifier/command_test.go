package modifier

import (
	"testing"

	"github.com/gekko3d/voxedit/voxel/region"
	"github.com/gekko3d/voxedit/voxel/volume"
)

func TestDispatchSelectsToolExclusively(t *testing.T) {
	m := New()
	m.Dispatch(CmdLine)
	if !m.ModifierType.Has(Line) {
		t.Error("expected Line bit set")
	}
	m.Dispatch(CmdPath)
	if m.ModifierType.Has(Line) {
		t.Error("selecting Path should clear the previous tool bit")
	}
	if !m.ModifierType.Has(Path) {
		t.Error("expected Path bit set")
	}
}

func TestDispatchWritePolicyIsExclusive(t *testing.T) {
	m := New()
	m.Dispatch(CmdPlace)
	m.Dispatch(CmdPaint)
	if m.ModifierType.Has(Place) {
		t.Error("selecting Paint should clear Place")
	}
	if !m.ModifierType.Has(Paint) {
		t.Error("expected Paint bit set")
	}
}

func TestDispatchOverrideSetsPlaceAndErase(t *testing.T) {
	m := New()
	m.Dispatch(CmdOverride)
	if !m.ModifierType.Has(Place) || !m.ModifierType.Has(Erase) {
		t.Error("override should set both Place and Erase")
	}
}

func TestDispatchShapeSelection(t *testing.T) {
	m := New()
	m.Dispatch(CmdShapeTorus)
	if m.ShapeType != ShapeTorus {
		t.Errorf("got %v, want ShapeTorus", m.ShapeType)
	}
	if !m.ModifierType.IsShapeTool() {
		t.Error("selecting a shape should clear any tool bit")
	}
}

func TestDispatchMirrorAxis(t *testing.T) {
	m := New()
	m.Dispatch(CmdMirrorAxisZ)
	if m.MirrorAxis != AxisZ {
		t.Errorf("got %v, want AxisZ", m.MirrorAxis)
	}
	m.Dispatch(CmdMirrorAxisNone)
	if m.MirrorAxis != AxisNone {
		t.Errorf("got %v, want AxisNone", m.MirrorAxis)
	}
}

func TestPressSingleModeExecutesImmediately(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 3, 3, 3))
	m := New()
	m.Dispatch(CmdPlace)
	m.ModifierType |= Single
	m.SetCursor(1, 1, 1)

	m.Press(CmdActionExecute, vol, volume.NewVoxel(5), nil)

	if !vol.Voxel(1, 1, 1).IsBlocked() {
		t.Error("Single-mode press should execute the place immediately")
	}
	if m.State() != Idle {
		t.Errorf("state should reset to Idle after execute, got %v", m.State())
	}
}

func TestPressTwoClickGestureExecutesOnSecond(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 9, 9, 9))
	m := New()
	m.Dispatch(CmdPlace)
	m.SetCursor(0, 0, 0)
	m.Press(CmdActionExecute, vol, volume.NewVoxel(1), nil)
	if m.State() != FirstPicked {
		t.Fatalf("first press should latch FirstPicked, got %v", m.State())
	}

	m.SetCursor(3, 3, 3)
	m.Press(CmdActionExecute, vol, volume.NewVoxel(1), nil)
	if m.State() != Idle {
		t.Errorf("second press on a non-flat AABB should execute and reset, got %v", m.State())
	}
	if !vol.Voxel(1, 1, 1).IsBlocked() {
		t.Error("expected the cube to have been placed")
	}
}

func TestReleaseAbortsMidGesture(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 9, 9, 9))
	m := New()
	m.Dispatch(CmdPlace)
	m.SetCursor(0, 0, 0)
	m.Press(CmdActionExecute, vol, volume.NewVoxel(1), nil)
	if m.State() != FirstPicked {
		t.Fatalf("expected FirstPicked, got %v", m.State())
	}

	m.Release(CmdActionExecute)
	if m.State() != Idle {
		t.Errorf("release mid-gesture should abort back to Idle, got %v", m.State())
	}
}

func TestPressActionExecuteDeleteForcesErase(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 3, 3, 3))
	vol.SetVoxel(1, 1, 1, volume.NewVoxel(5))

	m := New()
	m.Dispatch(CmdPlace)
	m.ModifierType |= Single
	m.SetCursor(1, 1, 1)

	m.Press(CmdActionExecuteDelete, vol, volume.Voxel{}, nil)

	if vol.Voxel(1, 1, 1).IsBlocked() {
		t.Error("actionexecutedelete should erase regardless of the dispatched write policy")
	}
}
