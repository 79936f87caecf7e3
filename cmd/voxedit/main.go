// Command voxedit is a thin CLI exercising the load -> edit -> save path
// through the codec registry and modifier engine, mirroring the flag-driven
// entry point the teacher's voxelrt/rt_main.go uses for its own app.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/gekko3d/voxedit"
	"github.com/gekko3d/voxedit/voxel/codec"
	"github.com/gekko3d/voxedit/voxel/codec/vxl"
	"github.com/gekko3d/voxedit/voxel/modifier"
	"github.com/gekko3d/voxedit/voxel/palette"
	"github.com/gekko3d/voxedit/voxel/region"
	"github.com/gekko3d/voxedit/voxel/scenegraph"
	"github.com/gekko3d/voxedit/voxel/volume"
)

func main() {
	in := flag.String("in", "", "input .vxl file (omit to start from an empty grid)")
	out := flag.String("out", "out.vxl", "output .vxl file")
	width := flag.Int("width", vxl.DefaultWidth, "grid width (X) of the map, for loading and for a new grid")
	depth := flag.Int("depth", vxl.DefaultDepth, "grid depth (Z) of the map, for loading and for a new grid")
	cube := flag.String("cube", "", "place a cube as x0,y0,z0,x1,y1,z1 before saving")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := voxedit.NewDefaultLogger("voxedit", *debug)

	reg := codec.NewRegistry()
	c := vxl.New(int32(*width), int32(*depth))
	reg.Register(".vxl", c)

	graph := scenegraph.NewSceneGraph()
	cancel := codec.NewCancelToken()

	var node *scenegraph.SceneGraphNode
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Errorf("open %q: %v", *in, err)
			os.Exit(1)
		}
		defer f.Close()
		if !reg.Lookup(".vxl").LoadGroups(*in, f, graph, cancel, log) {
			log.Errorf("failed to load %q", *in)
			os.Exit(1)
		}
		ids := graph.ModelNodes()
		if len(ids) == 0 {
			log.Errorf("%q has no model node", *in)
			os.Exit(1)
		}
		node, err = graph.Node(ids[0])
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	} else {
		node = graph.NewNode(scenegraph.NodeModel, "model")
		graph.Emplace(node, scenegraph.RootID)
		vol := volume.NewRawVolume(region.New(0, 0, 0, int32(*width)-1, vxl.ColumnHeight-1, int32(*depth)-1))
		node.SetVolume(vol, true)
		pal := palette.New()
		pal.AddColor(color.RGBA{R: 200, G: 200, B: 200, A: 255})
		node.SetPalette(pal)
	}

	if *cube != "" {
		var x0, y0, z0, x1, y1, z1 int32
		if _, err := fmt.Sscanf(*cube, "%d,%d,%d,%d,%d,%d", &x0, &y0, &z0, &x1, &y1, &z1); err != nil {
			log.Errorf("invalid -cube value %q: %v", *cube, err)
			os.Exit(1)
		}
		m := modifier.New()
		m.Dispatch(modifier.CmdPlace)
		m.Dispatch(modifier.CmdShapeAABB)
		m.SetCursor(x0, y0, z0)
		m.AabbStart()
		m.SetCursor(x1, y1, z1)
		m.AabbStep()
		colorIdx := uint8(node.Palette().AddColor(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
		m.AabbAction(node.Volume(), volume.NewVoxel(colorIdx), func(r region.Region, t modifier.Type) {
			log.Debugf("dirty region %v from %v", r, t)
		})
	}

	w, err := os.Create(*out)
	if err != nil {
		log.Errorf("create %q: %v", *out, err)
		os.Exit(1)
	}
	defer w.Close()

	if !c.SaveGroups(graph, *out, w, log) {
		log.Errorf("failed to save %q", *out)
		os.Exit(1)
	}
	log.Infof("wrote %q", *out)
}
