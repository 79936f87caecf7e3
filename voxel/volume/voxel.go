// Package volume implements the dense voxel grid at the heart of the
// editor: a RawVolume over an integer Region plus a Sampler cursor,
// grounded on the indexing and coordinate-wrapping style of the
// teacher's XBrickMap (voxelrt/rt/volume/xbrickmap.go), adapted from a
// sparse brick octree to the dense array the spec requires.
package volume

// Material tags what kind of cell a Voxel represents.
type Material uint8

const (
	Air Material = iota
	Generic
)

// Voxel is a tagged unit cell: a material kind plus a palette index.
type Voxel struct {
	Material    Material
	PaletteIndex uint8
}

// AirVoxel is the canonical empty cell.
var AirVoxel = Voxel{Material: Air}

// NewVoxel builds a Generic voxel with the given palette index.
func NewVoxel(paletteIndex uint8) Voxel {
	return Voxel{Material: Generic, PaletteIndex: paletteIndex}
}

// IsAir reports whether v is air. Air compares equal irrespective of index.
func (v Voxel) IsAir() bool { return v.Material == Air }

// IsBlocked reports whether v occupies space (i.e. is not air).
func (v Voxel) IsBlocked() bool { return v.Material != Air }

// Equal compares two voxels per the "air ignores index" rule.
func (v Voxel) Equal(o Voxel) bool {
	if v.Material == Air && o.Material == Air {
		return true
	}
	return v.Material == o.Material && v.PaletteIndex == o.PaletteIndex
}
