package modifier

import (
	"testing"

	"github.com/gekko3d/voxedit/voxel/region"
	"github.com/gekko3d/voxedit/voxel/volume"
)

func TestAabbActionPlaceCube(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 9, 9, 9))
	m := New()
	m.ModifierType = Place
	m.ShapeType = ShapeAABB

	m.SetCursor(0, 0, 0)
	m.AabbStart()
	m.SetCursor(2, 2, 2)
	m.AabbStep()

	var dirty region.Region
	m.AabbAction(vol, volume.NewVoxel(1), func(r region.Region, typ Type) {
		dirty = r
	})

	for z := int32(0); z <= 2; z++ {
		for y := int32(0); y <= 2; y++ {
			for x := int32(0); x <= 2; x++ {
				if !vol.Voxel(x, y, z).IsBlocked() {
					t.Fatalf("voxel (%d,%d,%d) should be solid after cube place", x, y, z)
				}
			}
		}
	}
	if !dirty.Valid() {
		t.Error("expected a non-empty dirty region callback")
	}
	if m.State() != Idle {
		t.Errorf("state should reset to Idle after AabbAction, got %v", m.State())
	}
}

func TestAabbActionEraseClippedBySelection(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 9, 9, 9))
	for z := int32(0); z < 5; z++ {
		for y := int32(0); y < 5; y++ {
			for x := int32(0); x < 5; x++ {
				vol.SetVoxel(x, y, z, volume.NewVoxel(2))
			}
		}
	}

	m := New()
	m.ModifierType = Erase
	m.ShapeType = ShapeAABB
	m.Selection = region.New(0, 0, 0, 1, 1, 1)

	m.SetCursor(0, 0, 0)
	m.AabbStart()
	m.SetCursor(4, 4, 4)
	m.AabbStep()

	m.AabbAction(vol, volume.AirVoxel, nil)

	if vol.Voxel(0, 0, 0).IsBlocked() {
		t.Error("voxel inside selection should have been erased")
	}
	if !vol.Voxel(3, 3, 3).IsBlocked() {
		t.Error("voxel outside selection must not be erased")
	}
}

func TestAabbActionMirrorSymmetry(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 9, 0, 0))
	m := New()
	m.ModifierType = Place | Single
	m.ShapeType = ShapeAABB
	m.MirrorAxis = AxisX
	m.MirrorPos = 5 // mirrors x -> 10-x

	m.SetCursor(1, 0, 0)
	m.AabbStart()

	var regions []region.Region
	m.AabbAction(vol, volume.NewVoxel(1), func(r region.Region, typ Type) {
		regions = append(regions, r)
	})

	if !vol.Voxel(1, 0, 0).IsBlocked() {
		t.Error("primary voxel should be placed")
	}
	if !vol.Voxel(9, 0, 0).IsBlocked() {
		t.Error("mirrored voxel should be placed")
	}
	if len(regions) != 2 {
		t.Errorf("expected two disjoint dirty emissions, got %d", len(regions))
	}
}

func TestAabbActionColorPicker(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 3, 3, 3))
	vol.SetVoxel(1, 1, 1, volume.NewVoxel(42))

	m := New()
	m.ModifierType = ColorPicker
	m.SetCursor(1, 1, 1)
	m.AabbStart() // ColorPicker ignores the latch, only cursor matters

	m.AabbAction(vol, volume.Voxel{}, nil)

	picked := m.LastPicked()
	if picked.PaletteIndex != 42 || !picked.IsBlocked() {
		t.Errorf("got %v, want palette index 42", picked)
	}
}

func TestAabbActionSelectIntersectsExistingSelection(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 9, 9, 9))
	m := New()
	m.ModifierType = Select
	m.Selection = region.New(0, 0, 0, 5, 5, 5)

	m.SetCursor(3, 3, 3)
	m.AabbStart()
	m.SetCursor(8, 8, 8)
	m.AabbStep()

	m.AabbAction(vol, volume.Voxel{}, nil)

	want := region.New(3, 3, 3, 5, 5, 5)
	if m.Selection != want {
		t.Errorf("got %v, want %v", m.Selection, want)
	}
}

func TestAabbActionLineDrawsFromReferenceToCursor(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 9, 9, 9))
	m := New()
	m.ModifierType = Place | Line | Single
	m.SetReference(0, 0, 0)
	m.SetCursor(4, 0, 0)
	m.AabbStart()

	m.AabbAction(vol, volume.NewVoxel(7), nil)

	for x := int32(0); x <= 4; x++ {
		if !vol.Voxel(x, 0, 0).IsBlocked() {
			t.Errorf("expected line voxel at x=%d", x)
		}
	}
}

func TestAabbActionPathPaintsEndpointsAlongFloor(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 9, 1, 0))
	// a ground floor to walk on
	for x := int32(0); x <= 9; x++ {
		vol.SetVoxel(x, 0, 0, volume.NewVoxel(1))
	}

	m := New()
	m.ModifierType = Place | Path | Single
	m.SetReference(0, 1, 0)
	m.SetCursor(9, 1, 0)
	m.AabbStart()

	m.AabbAction(vol, volume.NewVoxel(9), nil)

	if !vol.Voxel(0, 1, 0).IsBlocked() || !vol.Voxel(9, 1, 0).IsBlocked() {
		t.Error("path endpoints should be painted")
	}
}
