package modifier

import (
	"testing"

	"github.com/gekko3d/voxedit/voxel/region"
	"github.com/gekko3d/voxedit/voxel/volume"
)

func TestVolumeWrapperPlaceOnlyWritesAir(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 3, 3, 3))
	vol.SetVoxel(1, 0, 0, volume.NewVoxel(5))

	w := NewVolumeWrapper(vol, Place, region.Invalid)
	if w.SetVoxel(1, 0, 0, volume.NewVoxel(7)) {
		t.Error("Place must not overwrite a solid voxel")
	}
	if !w.SetVoxel(0, 0, 0, volume.NewVoxel(7)) {
		t.Error("Place must write into air")
	}
}

func TestVolumeWrapperEraseOnlyClearsSolid(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 3, 3, 3))
	vol.SetVoxel(1, 0, 0, volume.NewVoxel(5))

	w := NewVolumeWrapper(vol, Erase, region.Invalid)
	if w.SetVoxel(0, 0, 0, volume.NewVoxel(9)) {
		t.Error("Erase must not touch air")
	}
	if !w.SetVoxel(1, 0, 0, volume.NewVoxel(9)) {
		t.Error("Erase must clear a solid voxel")
	}
	if got := vol.Voxel(1, 0, 0); !got.IsAir() {
		t.Errorf("erased voxel should be air, got %v", got)
	}
}

func TestVolumeWrapperPaintOnlyRecolorsSolid(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 3, 3, 3))
	vol.SetVoxel(1, 0, 0, volume.NewVoxel(5))

	w := NewVolumeWrapper(vol, Paint, region.Invalid)
	if w.SetVoxel(0, 0, 0, volume.NewVoxel(9)) {
		t.Error("Paint must not touch air")
	}
	if !w.SetVoxel(1, 0, 0, volume.NewVoxel(9)) {
		t.Error("Paint must recolor a solid voxel")
	}
}

func TestVolumeWrapperPlaceErasePaintsUnconditionally(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 3, 3, 3))
	vol.SetVoxel(1, 0, 0, volume.NewVoxel(5))

	w := NewVolumeWrapper(vol, Place|Erase, region.Invalid)
	if !w.SetVoxel(0, 0, 0, volume.NewVoxel(9)) {
		t.Error("combined Place|Erase must write into air")
	}
	if !w.SetVoxel(1, 0, 0, volume.NewVoxel(9)) {
		t.Error("combined Place|Erase must overwrite solid")
	}
}

func TestVolumeWrapperClipsToSelection(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 3, 3, 3))
	sel := region.New(0, 0, 0, 1, 1, 1)

	w := NewVolumeWrapper(vol, Place, sel)
	if w.SetVoxel(2, 2, 2, volume.NewVoxel(3)) {
		t.Error("writes outside selection must be rejected")
	}
	if !w.SetVoxel(0, 0, 0, volume.NewVoxel(3)) {
		t.Error("writes inside selection must succeed")
	}
}

func TestVolumeWrapperAccumulatesDirtyRegion(t *testing.T) {
	vol := volume.NewRawVolume(region.New(0, 0, 0, 7, 7, 7))
	w := NewVolumeWrapper(vol, Place, region.Invalid)

	w.SetVoxel(1, 1, 1, volume.NewVoxel(1))
	w.SetVoxel(4, 4, 4, volume.NewVoxel(1))

	got := w.DirtyRegion()
	want := region.New(1, 1, 1, 4, 4, 4)
	if got != want {
		t.Errorf("dirty region = %v, want %v", got, want)
	}
}
