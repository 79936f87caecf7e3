package modifier

import (
	"github.com/gekko3d/voxedit/voxel/region"
	"github.com/gekko3d/voxedit/voxel/volume"
)

// VolumeWrapper gates writes to a RawVolume by the active Type's write
// policy and accumulates the union of every successful write's bounding
// box, clipped to an optional selection (spec §4.F). A selection of
// region.Invalid (or any other invalid region) means "no clipping".
type VolumeWrapper struct {
	vol        *volume.RawVolume
	writeMode  Type
	selection  region.Region
	dirtyRegion region.Region
}

// NewVolumeWrapper wraps vol. writeMode should be t masked to the
// Place/Erase/Paint bits; selection may be region.Invalid for "unclipped".
func NewVolumeWrapper(vol *volume.RawVolume, writeMode Type, selection region.Region) *VolumeWrapper {
	return &VolumeWrapper{vol: vol, writeMode: writeMode, selection: selection, dirtyRegion: region.Invalid}
}

// DirtyRegion returns the union of all successful writes so far.
func (w *VolumeWrapper) DirtyRegion() region.Region { return w.dirtyRegion }

// SetVoxel applies val at (x,y,z) according to the write policy: Place
// writes only into air, Erase writes Air only where solid, Paint overwrites
// only solid voxels, and Place|Erase together write unconditionally.
func (w *VolumeWrapper) SetVoxel(x, y, z int32, val volume.Voxel) bool {
	if w.selection.Valid() && !w.selection.ContainsPoint(x, y, z) {
		return false
	}

	current := w.vol.Voxel(x, y, z)
	switch {
	case w.writeMode.Has(Place) && w.writeMode.Has(Erase):
		// unconditional write
	case w.writeMode.Has(Erase):
		val = volume.AirVoxel
		if !current.IsBlocked() {
			return false
		}
	case w.writeMode.Has(Paint):
		if !current.IsBlocked() {
			return false
		}
	case w.writeMode.Has(Place):
		if current.IsBlocked() {
			return false
		}
	}

	if !w.vol.SetVoxel(x, y, z, val) {
		return false
	}
	hit := region.New(x, y, z, x, y, z)
	w.dirtyRegion = w.dirtyRegion.Union(hit)
	return true
}

// Volume exposes the wrapped volume for read-only queries (cursor voxel
// lookups, pathfinding walkability checks).
func (w *VolumeWrapper) Volume() *volume.RawVolume { return w.vol }
