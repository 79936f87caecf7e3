// Package palette implements a fixed-capacity, deduplicating RGBA color
// table, the same role the teacher's VoxPalette ([256][4]byte) plays for
// MagicaVoxel import in vox.go, generalized to support perceptual
// nearest-match reuse on overflow.
package palette

import (
	"image/color"
	"math"
)

// MaxColors is the hard capacity of a Palette.
const MaxColors = 256

// Palette is an ordered, fixed-capacity RGBA color table.
type Palette struct {
	colors     [MaxColors]color.RGBA
	colorCount int
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{}
}

// Count reports how many entries are populated.
func (p *Palette) Count() int { return p.colorCount }

// Color returns the entry at idx, or the zero color if idx is out of range.
func (p *Palette) Color(idx int) color.RGBA {
	if idx < 0 || idx >= p.colorCount {
		return color.RGBA{}
	}
	return p.colors[idx]
}

// Clone value-copies the palette, matching the spec's "palettes are
// value-copied when assigned to a node" invariant.
func (p *Palette) Clone() *Palette {
	if p == nil {
		return New()
	}
	cp := *p
	return &cp
}

// indexOf returns the index of an exact color match, or -1.
func (p *Palette) indexOf(c color.RGBA) int {
	for i := 0; i < p.colorCount; i++ {
		if p.colors[i] == c {
			return i
		}
	}
	return -1
}

// AddColor inserts c, reusing an exact match. On overflow (palette already
// at MaxColors with no exact match) it reuses the perceptually nearest
// existing entry instead of growing.
func (p *Palette) AddColor(c color.RGBA) int {
	if idx := p.indexOf(c); idx >= 0 {
		return idx
	}
	if p.colorCount < MaxColors {
		p.colors[p.colorCount] = c
		p.colorCount++
		return p.colorCount - 1
	}
	return p.GetClosestMatch(c)
}

// Weights for the HSB-space perceptual distance used by GetClosestMatch,
// tuned the way the teacher tunes magic constants in-place rather than via
// named config (e.g. BrickSize/MicroSize in xbrickmap.go).
const (
	weightHue = 2.0
	weightSat = 1.0
	weightBri = 1.0
)

// GetClosestMatch returns the index of the entry in the palette closest to
// c in HSB space, breaking ties by lowest index. Returns -1 only when the
// palette is empty.
func (p *Palette) GetClosestMatch(c color.RGBA) int {
	if p.colorCount == 0 {
		return -1
	}
	qh, qs, qb := rgbToHSB(c)

	best := -1
	bestDist := math.Inf(1)
	for i := 0; i < p.colorCount; i++ {
		h, s, b := rgbToHSB(p.colors[i])
		d := hsbDistance(qh, qs, qb, h, s, b)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// QuantizeRow maps each entry of colors to its nearest (or exact) palette
// index, writing into out. len(out) must be >= len(colors).
func (p *Palette) QuantizeRow(colors []color.RGBA, out []uint8) {
	for i, c := range colors {
		idx := p.indexOf(c)
		if idx < 0 {
			idx = p.GetClosestMatch(c)
		}
		if idx < 0 {
			idx = 0
		}
		out[i] = uint8(idx)
	}
}

func hsbDistance(h1, s1, b1, h2, s2, b2 float64) float64 {
	dh := circularDelta(h1, h2)
	ds := s1 - s2
	db := b1 - b2
	return weightHue*dh*dh + weightSat*ds*ds + weightBri*db*db
}

// circularDelta computes the shortest distance between two hues on [0,1).
func circularDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 0.5 {
		d = 1.0 - d
	}
	return d
}

// rgbToHSB converts an RGBA color (alpha ignored) to hue/saturation/brightness:
// hue in [0,1), saturation and brightness in [0,1].
func rgbToHSB(c color.RGBA) (h, s, b float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	bl := float64(c.B) / 255.0

	maxC := math.Max(r, math.Max(g, bl))
	minC := math.Min(r, math.Min(g, bl))
	delta := maxC - minC

	b = maxC
	if maxC == 0 {
		s = 0
	} else {
		s = delta / maxC
	}

	if delta == 0 {
		h = 0
	} else {
		switch maxC {
		case r:
			h = math.Mod((g-bl)/delta, 6)
		case g:
			h = (bl-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
		h /= 6
		if h < 0 {
			h += 1
		}
	}
	return h, s, b
}
