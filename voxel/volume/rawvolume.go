package volume

import (
	"math"

	"github.com/gekko3d/voxedit/voxel/region"
)

// RawVolume owns a dense array of Voxels over a Region, indexed by absolute
// coordinates within that region.
//
// Invariants (spec §3/§4.A): reads outside the region return Air; writes
// outside the region are rejected and return false; the backing storage's
// size equals width*height*depth.
type RawVolume struct {
	reg  region.Region
	w, h, d int32
	data []Voxel
}

// NewRawVolume allocates a volume over r, filled with air.
func NewRawVolume(r region.Region) *RawVolume {
	v := &RawVolume{reg: r}
	if r.Valid() {
		v.w, v.h, v.d = r.Width(), r.Height(), r.Depth()
		v.data = make([]Voxel, int64(v.w)*int64(v.h)*int64(v.d))
	}
	return v
}

// Region returns the volume's region.
func (v *RawVolume) Region() region.Region { return v.reg }

func (v *RawVolume) indexOf(x, y, z int32) (int, bool) {
	if v == nil || !v.reg.Valid() || !v.reg.ContainsPoint(x, y, z) {
		return 0, false
	}
	lx := x - v.reg.Mins[0]
	ly := y - v.reg.Mins[1]
	lz := z - v.reg.Mins[2]
	idx := int64(lz)*int64(v.w)*int64(v.h) + int64(ly)*int64(v.w) + int64(lx)
	return int(idx), true
}

// Voxel reads the voxel at (x,y,z), or Air if outside the region.
func (v *RawVolume) Voxel(x, y, z int32) Voxel {
	idx, ok := v.indexOf(x, y, z)
	if !ok {
		return AirVoxel
	}
	return v.data[idx]
}

// SetVoxel writes val at (x,y,z) and returns true on success. Writes to
// out-of-region coordinates, or writes that would not change the stored
// value, return false — the latter lets callers track dirty regions by
// only accumulating over actual changes.
func (v *RawVolume) SetVoxel(x, y, z int32, val Voxel) bool {
	idx, ok := v.indexOf(x, y, z)
	if !ok {
		return false
	}
	if v.data[idx].Equal(val) {
		return false
	}
	v.data[idx] = val
	return true
}

// Translate shifts the region's origin by delta without touching any
// backing data — the voxel previously at p is now addressed at p+delta.
func (v *RawVolume) Translate(delta [3]int32) {
	v.reg = v.reg.Translate(delta)
}

// Clone deep-copies the volume, used when a node takes ownership of a
// duplicated grid (SceneGraph.CopyNode with copyVolume=true).
func (v *RawVolume) Clone() *RawVolume {
	if v == nil {
		return nil
	}
	cp := &RawVolume{reg: v.reg, w: v.w, h: v.h, d: v.d}
	cp.data = make([]Voxel, len(v.data))
	copy(cp.data, v.data)
	return cp
}

// Resample nearest-neighbor-resizes the volume by factor, recovered from
// original_source: the teacher's core.Scene.RescaleObject calls
// XBrickMap.Resample(factor) on its sparse brick map; we provide the dense
// equivalent since spec's RawVolume is dense.
func (v *RawVolume) Resample(factor float32) *RawVolume {
	if !v.reg.Valid() || factor <= 0 {
		return NewRawVolume(region.Invalid)
	}
	newW := int32(math.Max(1, math.Round(float64(v.w)*float64(factor))))
	newH := int32(math.Max(1, math.Round(float64(v.h)*float64(factor))))
	newD := int32(math.Max(1, math.Round(float64(v.d)*float64(factor))))

	newReg := region.New(v.reg.Mins[0], v.reg.Mins[1], v.reg.Mins[2],
		v.reg.Mins[0]+newW-1, v.reg.Mins[1]+newH-1, v.reg.Mins[2]+newD-1)
	out := NewRawVolume(newReg)

	for z := int32(0); z < newD; z++ {
		sz := v.reg.Mins[2] + int32(float64(z)/float64(factor))
		for y := int32(0); y < newH; y++ {
			sy := v.reg.Mins[1] + int32(float64(y)/float64(factor))
			for x := int32(0); x < newW; x++ {
				sx := v.reg.Mins[0] + int32(float64(x)/float64(factor))
				out.SetVoxel(newReg.Mins[0]+x, newReg.Mins[1]+y, newReg.Mins[2]+z, v.Voxel(sx, sy, sz))
			}
		}
	}
	return out
}

// Sampler is a movable cursor over a RawVolume amortizing index arithmetic.
type Sampler struct {
	vol   *RawVolume
	x, y, z int32
	idx   int
	valid bool
}

// NewSampler creates a sampler over vol, initially invalid.
func NewSampler(vol *RawVolume) *Sampler {
	return &Sampler{vol: vol}
}

// SetPosition repositions the sampler; it becomes valid iff p is in-region.
func (s *Sampler) SetPosition(x, y, z int32) bool {
	idx, ok := s.vol.indexOf(x, y, z)
	s.x, s.y, s.z = x, y, z
	s.idx = idx
	s.valid = ok
	return ok
}

// Valid reports whether the sampler currently sits on an in-region voxel.
func (s *Sampler) Valid() bool { return s.valid }

// Position returns the sampler's current coordinates.
func (s *Sampler) Position() (int32, int32, int32) { return s.x, s.y, s.z }

// Voxel returns the voxel at the current position, or Air if invalid.
func (s *Sampler) Voxel() Voxel {
	if !s.valid {
		return AirVoxel
	}
	return s.vol.data[s.idx]
}

// MovePositiveX advances the cursor one voxel in +X in O(1), invalidating
// the sampler if it crosses the region boundary.
func (s *Sampler) MovePositiveX() {
	s.x++
	if s.x > s.vol.reg.Maxs[0] {
		s.valid = false
		return
	}
	if s.valid {
		s.idx++
	} else {
		s.valid = s.recompute()
	}
}

// MovePositiveY advances the cursor one voxel in +Y in O(1).
func (s *Sampler) MovePositiveY() {
	s.y++
	if s.y > s.vol.reg.Maxs[1] {
		s.valid = false
		return
	}
	if s.valid {
		s.idx += int(s.vol.w)
	} else {
		s.valid = s.recompute()
	}
}

// MovePositiveZ advances the cursor one voxel in +Z in O(1).
func (s *Sampler) MovePositiveZ() {
	s.z++
	if s.z > s.vol.reg.Maxs[2] {
		s.valid = false
		return
	}
	if s.valid {
		s.idx += int(s.vol.w) * int(s.vol.h)
	} else {
		s.valid = s.recompute()
	}
}

func (s *Sampler) recompute() bool {
	idx, ok := s.vol.indexOf(s.x, s.y, s.z)
	s.idx = idx
	return ok
}
