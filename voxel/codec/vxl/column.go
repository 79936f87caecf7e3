package vxl

import (
	"image/color"

	"github.com/gekko3d/voxedit/voxel/codec"
	"github.com/gekko3d/voxedit/voxel/palette"
	"github.com/gekko3d/voxedit/voxel/volume"
)

// ColumnHeight is the fixed number of Y voxels per column (spec §4.E: "one
// or more 256-voxel-tall columns").
const ColumnHeight = 256

// spanHeader is the 4-byte per-span record described in spec §4.E.
type spanHeader struct {
	length        uint8
	colorStartIdx uint8
	colorEndIdx   uint8
	airStartIdx   uint8
}

func readSpanHeader(r codec.ReadStream) (spanHeader, error) {
	length, err := codec.ReadU8(r)
	if err != nil {
		return spanHeader{}, err
	}
	colorStart, err := codec.ReadU8(r)
	if err != nil {
		return spanHeader{}, err
	}
	colorEnd, err := codec.ReadU8(r)
	if err != nil {
		return spanHeader{}, err
	}
	airStart, err := codec.ReadU8(r)
	if err != nil {
		return spanHeader{}, err
	}
	return spanHeader{length: length, colorStartIdx: colorStart, colorEndIdx: colorEnd, airStartIdx: airStart}, nil
}

func writeSpanHeader(w codec.WriteStream, h spanHeader) error {
	if err := codec.WriteU8(w, h.length); err != nil {
		return err
	}
	if err := codec.WriteU8(w, h.colorStartIdx); err != nil {
		return err
	}
	if err := codec.WriteU8(w, h.colorEndIdx); err != nil {
		return err
	}
	return codec.WriteU8(w, h.airStartIdx)
}

func readBGRA(r codec.ReadStream) (color.RGBA, error) {
	b, err := codec.ReadU8(r)
	if err != nil {
		return color.RGBA{}, err
	}
	g, err := codec.ReadU8(r)
	if err != nil {
		return color.RGBA{}, err
	}
	rr, err := codec.ReadU8(r)
	if err != nil {
		return color.RGBA{}, err
	}
	a, err := codec.ReadU8(r)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: rr, G: g, B: b, A: a}, nil
}

func writeBGRA(w codec.WriteStream, c color.RGBA) error {
	if err := codec.WriteU8(w, c.B); err != nil {
		return err
	}
	if err := codec.WriteU8(w, c.G); err != nil {
		return err
	}
	if err := codec.WriteU8(w, c.R); err != nil {
		return err
	}
	return codec.WriteU8(w, c.A)
}

// decodeColumn reads spans for a single (x,z) column until a span with
// length 0 terminates it, writing voxels into vol and colors into pal.
func decodeColumn(r codec.ReadStream, vol *volume.RawVolume, pal *palette.Palette, x, z int32) error {
	y := int32(0)
	for {
		hdr, err := readSpanHeader(r)
		if err != nil {
			return err
		}

		numColors := int(hdr.colorEndIdx) - int(hdr.colorStartIdx) + 1
		if numColors < 0 {
			numColors = 0
		}
		colors := make([]color.RGBA, numColors)
		for i := 0; i < numColors; i++ {
			c, err := readBGRA(r)
			if err != nil {
				return err
			}
			colors[i] = c
		}

		// [y, airStartIdx) stays air, already the volume's zero value.
		y = int32(hdr.airStartIdx)

		// [airStartIdx, colorStartIdx) is solid but implicit: it inherits
		// the color of the first explicit voxel above it.
		if numColors > 0 {
			capIdx := uint8(pal.AddColor(colors[0]))
			for ; y < int32(hdr.colorStartIdx); y++ {
				vol.SetVoxel(x, y, z, volume.NewVoxel(capIdx))
			}
		}

		for i := 0; i < numColors; i++ {
			idx := uint8(pal.AddColor(colors[i]))
			vol.SetVoxel(x, int32(hdr.colorStartIdx)+int32(i), z, volume.NewVoxel(idx))
			y = int32(hdr.colorStartIdx) + int32(i) + 1
		}

		if hdr.length == 0 {
			return nil
		}
	}
}

// encodeColumn walks vol's (x,z) column bottom to top (y ascending) and emits the minimum number of spans needed to
// reconstruct it exactly: a contiguous solid run is split into a leading
// implicit cap (voxels that share the exact color of the first explicit
// voxel above them) and an explicit tail, since decodeColumn can only
// recover a cap's color by copying it from the explicit voxel adjoining it.
// Interior voxels whose color differs from their neighbors are therefore
// still stored explicitly — a stricter rule than the spec's pure
// face-adjacency "surface" test, chosen to guarantee lossless round-trips.
func encodeColumn(w codec.WriteStream, vol *volume.RawVolume, pal *palette.Palette, x, z int32) error {
	runs := findSolidRuns(vol, x, z)
	if len(runs) == 0 {
		return writeSpanHeader(w, spanHeader{length: 0, colorStartIdx: 1, colorEndIdx: 0, airStartIdx: 0})
	}

	for i, run := range runs {
		colorStart := run.start
		for colorStart+1 <= run.end {
			c0 := voxelColor(vol, pal, x, colorStart, z)
			c1 := voxelColor(vol, pal, x, colorStart+1, z)
			if c0 != c1 {
				break
			}
			colorStart++
		}

		numColors := run.end - colorStart + 1
		last := i == len(runs)-1
		hdr := spanHeader{
			colorStartIdx: uint8(colorStart),
			colorEndIdx:   uint8(run.end),
			airStartIdx:   uint8(run.start),
		}
		if last {
			hdr.length = 0
		} else {
			hdr.length = uint8(1 + numColors)
		}
		if err := writeSpanHeader(w, hdr); err != nil {
			return err
		}
		for y := colorStart; y <= run.end; y++ {
			if err := writeBGRA(w, voxelColor(vol, pal, x, y, z)); err != nil {
				return err
			}
		}
	}
	return nil
}

type solidRun struct{ start, end int32 }

func findSolidRuns(vol *volume.RawVolume, x, z int32) []solidRun {
	var runs []solidRun
	y := int32(0)
	for y < ColumnHeight {
		if vol.Voxel(x, y, z).IsAir() {
			y++
			continue
		}
		start := y
		for y < ColumnHeight && !vol.Voxel(x, y, z).IsAir() {
			y++
		}
		runs = append(runs, solidRun{start: start, end: y - 1})
	}
	return runs
}

func voxelColor(vol *volume.RawVolume, pal *palette.Palette, x, y, z int32) color.RGBA {
	return pal.Color(int(vol.Voxel(x, y, z).PaletteIndex))
}
