package scenegraph

import "github.com/go-gl/mathgl/mgl32"

// WorldMatrixAt recomputes node id's world matrix at frameIdx from its
// local transform and its chain of ancestors, the generalization of the
// teacher's single-object core.Transform.ObjectToWorld to a full tree.
func (g *SceneGraph) WorldMatrixAt(id int32, frameIdx uint32) mgl32.Mat4 {
	n, ok := g.nodes[id]
	if !ok {
		return mgl32.Ident4()
	}
	local := n.TransformAt(frameIdx).localMatrix()
	if n.id == RootID || n.parent < 0 {
		return local
	}
	parentWorld := g.WorldMatrixAt(n.parent, frameIdx)
	return parentWorld.Mul4(local)
}

// RefreshWorldMatrices recomputes and stores WorldMatrix on every keyframe
// of every node, in depth-first order so ancestors are resolved first.
func (g *SceneGraph) RefreshWorldMatrices() {
	var walk func(id int32)
	walk = func(id int32) {
		n := g.nodes[id]
		for i := range n.keyFrames {
			n.keyFrames[i].Transform.WorldMatrix = g.WorldMatrixAt(id, n.keyFrames[i].FrameIdx)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(RootID)
}
