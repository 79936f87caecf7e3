package codec

import (
	"image"
	"io"

	"golang.org/x/image/bmp"

	"github.com/gekko3d/voxedit"
	"github.com/gekko3d/voxedit/voxel/palette"
	"github.com/gekko3d/voxedit/voxel/scenegraph"
	"github.com/gekko3d/voxedit/voxel/volume"
)

// Logger is an alias for the root logging contract, kept as a local name so
// codec signatures read naturally without qualifying every parameter.
type Logger = voxedit.Logger

// FormatFlags declares which optional capabilities a format supports, so
// the router can dispatch palette-only or screenshot-only calls without a
// full load (spec §6).
type FormatFlags uint8

const (
	ScreenshotEmbedded FormatFlags = 1 << iota
	PaletteEmbedded
	MeshExport
)

// Has reports whether f includes flag.
func (f FormatFlags) Has(flag FormatFlags) bool { return f&flag != 0 }

// Codec is the contract every voxel file format implements. Codecs must
// not panic; they signal failure by returning false and logging the
// reason (spec §4.D/§7). Streams are seekable; codecs may seek freely and
// must leave the stream position unspecified on return.
type Codec interface {
	Flags() FormatFlags

	LoadGroups(name string, r ReadStream, graph *scenegraph.SceneGraph, cancel *CancelToken, log Logger) bool
	SaveGroups(graph *scenegraph.SceneGraph, name string, w WriteStream, log Logger) bool

	// LoadPalette populates pal and returns the number of colors loaded,
	// or -1 on failure.
	LoadPalette(name string, r ReadStream, pal *palette.Palette, log Logger) int

	// LoadScreenshot returns an embedded thumbnail, or nil if the format
	// or this particular file carries none.
	LoadScreenshot(name string, r ReadStream, log Logger) image.Image
}

// LoadPaletteViaGroups implements the PaletteFormat specialization from
// spec §4.D: a loadPalette derived from loadGroupsPalette by discarding
// the scene graph. Codecs whose palette only exists inline in their model
// data (no standalone palette chunk) can build LoadPalette on top of this.
func LoadPaletteViaGroups(c Codec, name string, r ReadStream, pal *palette.Palette, log Logger) int {
	graph := scenegraph.NewSceneGraph()
	if !c.LoadGroups(name, r, graph, nil, log) {
		return -1
	}
	total := 0
	for _, id := range graph.ModelNodes() {
		n, err := graph.Node(id)
		if err != nil {
			continue
		}
		src := n.Palette()
		for i := 0; i < src.Count(); i++ {
			pal.AddColor(src.Color(i))
			total++
		}
	}
	return total
}

// SaveVolume wraps a lone volume and palette in a minimal graph (a single
// Model node under root) and calls SaveGroups, matching spec §4.D's save()
// helper for codecs invoked on a single volume rather than a full scene.
func SaveVolume(c Codec, vol *volume.RawVolume, pal *palette.Palette, name string, w WriteStream, log Logger) bool {
	graph := scenegraph.NewSceneGraph()
	node := graph.NewNode(scenegraph.NodeModel, name)
	if _, err := graph.Emplace(node, scenegraph.RootID); err != nil {
		log.Errorf("codec: failed to emplace model node for %q: %v", name, err)
		return false
	}
	if err := node.SetVolume(vol, false); err != nil {
		log.Errorf("codec: %v", err)
		return false
	}
	if pal != nil {
		node.SetPalette(pal)
	}
	return c.SaveGroups(graph, name, w, log)
}

// DecodeScreenshotBMP decodes a thumbnail embedded as a raw BMP blob, the
// common shape for formats that declare ScreenshotEmbedded. Returns nil on
// any decode failure rather than propagating an error, since a missing or
// corrupt thumbnail should never fail a load (spec §7: malformed auxiliary
// data degrades, it doesn't abort).
func DecodeScreenshotBMP(r io.Reader) image.Image {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil
	}
	return img
}
