// Package vxl implements the AoS-VXL-style RLE columnar format used as the
// spec's exemplar binary codec (spec §4.E): a column-major grid of
// 256-voxel-tall columns, each described by a run of 4-byte span headers.
package vxl

import (
	"image"

	"github.com/gekko3d/voxedit/voxel/codec"
	"github.com/gekko3d/voxedit/voxel/palette"
	"github.com/gekko3d/voxedit/voxel/region"
	"github.com/gekko3d/voxedit/voxel/scenegraph"
	"github.com/gekko3d/voxedit/voxel/volume"
)

// DefaultWidth and DefaultDepth are the classic AceOfSpades map footprint.
// Nothing in the stream records the grid's X/Z extent, so a Codec is
// constructed with the dimensions its caller expects (spec is silent on a
// size header; tests build a Codec with whatever footprint they need).
const (
	DefaultWidth = 512
	DefaultDepth = 512
)

// Codec implements codec.Codec for the AoS-VXL layout. Width and Depth are
// the map's X/Z extent; Y is always ColumnHeight voxels.
type Codec struct {
	Width, Depth int32
}

// New returns a Codec sized for a width x depth map.
func New(width, depth int32) *Codec {
	return &Codec{Width: width, Depth: depth}
}

// NewDefault returns a Codec sized for the classic 512x512 AceOfSpades map.
func NewDefault() *Codec {
	return New(DefaultWidth, DefaultDepth)
}

// Flags reports that AoS-VXL carries neither an embedded palette chunk nor
// an embedded screenshot, and is not a mesh export format.
func (c *Codec) Flags() codec.FormatFlags { return 0 }

// LoadGroups decodes the column grid into a single Model node under root.
func (c *Codec) LoadGroups(name string, r codec.ReadStream, graph *scenegraph.SceneGraph, cancel *codec.CancelToken, log codec.Logger) bool {
	if c.Width <= 0 || c.Depth <= 0 {
		log.Errorf("vxl: invalid map dimensions %dx%d", c.Width, c.Depth)
		return false
	}

	reg := region.New(0, 0, 0, c.Width-1, ColumnHeight-1, c.Depth-1)
	vol := volume.NewRawVolume(reg)
	pal := palette.New()

	for x := int32(0); x < c.Width; x++ {
		for z := int32(0); z < c.Depth; z++ {
			if cancel.Cancelled() {
				log.Infof("vxl: load cancelled at column (%d,%d)", x, z)
				return false
			}
			if err := decodeColumn(r, vol, pal, x, z); err != nil {
				log.Errorf("vxl: column (%d,%d): %v", x, z, err)
				return false
			}
		}
	}

	node := graph.NewNode(scenegraph.NodeModel, name)
	if _, err := graph.Emplace(node, scenegraph.RootID); err != nil {
		log.Errorf("vxl: failed to emplace model node: %v", err)
		return false
	}
	if err := node.SetVolume(vol, true); err != nil {
		log.Errorf("vxl: %v", err)
		return false
	}
	node.SetPalette(pal)
	return true
}

// SaveGroups encodes the volume of the first model node (in ModelNodes
// order), each column min-spanned per the surface/cap rule (spec §4.E); any
// further model nodes are not written. Colors live inline in the stream; no
// palette chunk is written.
func (c *Codec) SaveGroups(graph *scenegraph.SceneGraph, name string, w codec.WriteStream, log codec.Logger) bool {
	ids := graph.ModelNodes()
	if len(ids) == 0 {
		log.Errorf("vxl: scene graph has no model nodes to save")
		return false
	}
	node, err := graph.Node(ids[0])
	if err != nil {
		log.Errorf("vxl: %v", err)
		return false
	}
	vol := node.Volume()
	if vol == nil {
		log.Errorf("vxl: model node %q has no volume", node.Name)
		return false
	}
	pal := node.Palette()

	reg := vol.Region()
	for x := reg.Mins[0]; x <= reg.Maxs[0]; x++ {
		for z := reg.Mins[2]; z <= reg.Maxs[2]; z++ {
			if err := encodeColumn(w, vol, pal, x, z); err != nil {
				log.Errorf("vxl: column (%d,%d): %v", x, z, err)
				return false
			}
		}
	}
	return true
}

// LoadPalette has nothing to parse directly: AoS-VXL never persists a
// standalone palette chunk, so the only way to recover one is to decode the
// whole grid and collect the colors its spans carried inline.
func (c *Codec) LoadPalette(name string, r codec.ReadStream, pal *palette.Palette, log codec.Logger) int {
	total := codec.LoadPaletteViaGroups(c, name, r, pal, log)
	return total
}

// LoadScreenshot: AoS-VXL carries no embedded thumbnail.
func (c *Codec) LoadScreenshot(name string, r codec.ReadStream, log codec.Logger) image.Image {
	return nil
}
