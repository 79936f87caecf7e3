package scenegraph

import (
	"sort"

	"github.com/gekko3d/voxedit/voxel/palette"
	"github.com/gekko3d/voxedit/voxel/volume"
)

// NodeType enumerates the kinds of node a SceneGraph can hold.
type NodeType int

const (
	NodeRoot NodeType = iota
	NodeModel
	NodeGroup
	NodeCamera
)

func (t NodeType) String() string {
	switch t {
	case NodeRoot:
		return "Root"
	case NodeModel:
		return "Model"
	case NodeGroup:
		return "Group"
	case NodeCamera:
		return "Camera"
	default:
		return "Unknown"
	}
}

// RootID is the reserved id of the graph's root node.
const RootID int32 = 0

// SceneGraphNode is a named, typed node optionally owning a volume, with
// properties, keyframed transforms, a palette, and parent/child ids.
type SceneGraphNode struct {
	id     int32
	parent int32
	typ    NodeType

	Name    string
	Visible bool
	Locked  bool

	properties *Properties
	pal        *palette.Palette

	vol      *volume.RawVolume
	volOwned bool

	keyFrames []KeyFrame
	children  []int32
}

// newNode constructs a node of the given type with sane defaults.
func newNode(id int32, typ NodeType, name string) *SceneGraphNode {
	return &SceneGraphNode{
		id:         id,
		parent:     -1,
		typ:        typ,
		Name:       name,
		Visible:    true,
		properties: NewProperties(),
		pal:        palette.New(),
		keyFrames:  []KeyFrame{{FrameIdx: 0, Transform: NewTransform()}},
	}
}

// ID returns the node's stable, never-reused id.
func (n *SceneGraphNode) ID() int32 { return n.id }

// Parent returns the parent node's id (root has no parent, reported as -1).
func (n *SceneGraphNode) Parent() int32 { return n.parent }

// Type returns the node's type.
func (n *SceneGraphNode) Type() NodeType { return n.typ }

// Children returns the ordered ids of this node's children.
func (n *SceneGraphNode) Children() []int32 {
	return append([]int32(nil), n.children...)
}

// Properties returns the node's ordered property map.
func (n *SceneGraphNode) Properties() *Properties { return n.properties }

// Palette returns the node's color table. Only meaningful for Model nodes.
func (n *SceneGraphNode) Palette() *palette.Palette { return n.pal }

// SetPalette value-copies pal onto the node.
func (n *SceneGraphNode) SetPalette(pal *palette.Palette) { n.pal = pal.Clone() }

// Volume returns the node's raw volume, or nil.
func (n *SceneGraphNode) Volume() *volume.RawVolume { return n.vol }

// OwnsVolume reports whether the node owns its volume's lifetime.
func (n *SceneGraphNode) OwnsVolume() bool { return n.volOwned }

// SetVolume attaches vol to the node. Only Model nodes may carry a non-nil
// volume (spec §3); a non-owning reference requires the caller to guarantee
// the volume outlives the node.
func (n *SceneGraphNode) SetVolume(vol *volume.RawVolume, owned bool) error {
	if vol != nil && n.typ != NodeModel {
		return ErrNotAModelNode
	}
	n.vol = vol
	n.volOwned = owned
	return nil
}

// ReleaseOwnership transfers responsibility for the volume to the caller:
// the node keeps its reference but stops owning the lifetime.
func (n *SceneGraphNode) ReleaseOwnership() *volume.RawVolume {
	n.volOwned = false
	return n.vol
}

// KeyFrames returns the node's keyframes in frame-index order.
func (n *SceneGraphNode) KeyFrames() []KeyFrame {
	return append([]KeyFrame(nil), n.keyFrames...)
}

// AddKeyFrame inserts or replaces the keyframe at frameIdx, keeping the
// sequence ordered by frame index.
func (n *SceneGraphNode) AddKeyFrame(frameIdx uint32, t Transform) {
	t.Pivot = clampPivot(t.Pivot)
	for i := range n.keyFrames {
		if n.keyFrames[i].FrameIdx == frameIdx {
			n.keyFrames[i].Transform = t
			return
		}
	}
	n.keyFrames = append(n.keyFrames, KeyFrame{FrameIdx: frameIdx, Transform: t})
	sort.Slice(n.keyFrames, func(i, j int) bool { return n.keyFrames[i].FrameIdx < n.keyFrames[j].FrameIdx })
}

// TransformAt returns the node's transform for frameIdx via discrete
// keyframe lookup: the latest keyframe at or before frameIdx, or the first
// keyframe if frameIdx precedes them all. No interpolation is performed
// (spec Non-goals: no cross-node animation interpolation beyond discrete
// keyframe lookup).
func (n *SceneGraphNode) TransformAt(frameIdx uint32) Transform {
	if len(n.keyFrames) == 0 {
		return NewTransform()
	}
	best := n.keyFrames[0]
	for _, kf := range n.keyFrames {
		if kf.FrameIdx <= frameIdx {
			best = kf
		} else {
			break
		}
	}
	return best.Transform
}
