package codec

import (
	"image"
	"testing"

	"github.com/gekko3d/voxedit/voxel/palette"
	"github.com/gekko3d/voxedit/voxel/scenegraph"
)

type stubCodec struct{ id int }

func (stubCodec) Flags() FormatFlags { return 0 }
func (stubCodec) LoadGroups(name string, r ReadStream, graph *scenegraph.SceneGraph, cancel *CancelToken, log Logger) bool {
	return true
}
func (stubCodec) SaveGroups(graph *scenegraph.SceneGraph, name string, w WriteStream, log Logger) bool {
	return true
}
func (stubCodec) LoadPalette(name string, r ReadStream, pal *palette.Palette, log Logger) int {
	return 0
}
func (stubCodec) LoadScreenshot(name string, r ReadStream, log Logger) image.Image { return nil }

func TestRegistryLookupNormalizesExtension(t *testing.T) {
	reg := NewRegistry()
	c := stubCodec{}
	reg.Register("VXL", c)

	if reg.Lookup(".vxl") != c {
		t.Error("expected lookup with leading dot to match")
	}
	if reg.Lookup("vxl") != c {
		t.Error("expected lookup without leading dot to match")
	}
	if reg.Lookup(".qb") != nil {
		t.Error("unregistered extension should return nil")
	}
}

func TestRegistryReplace(t *testing.T) {
	reg := NewRegistry()
	first := stubCodec{id: 1}
	reg.Register(".vxl", first)
	second := stubCodec{id: 2}
	reg.Register(".vxl", second)
	if reg.Lookup(".vxl") != second {
		t.Error("re-registering an extension should replace the codec")
	}
}
