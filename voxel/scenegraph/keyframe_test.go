package scenegraph

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestTransformAtPicksLatestKeyframeAtOrBeforeFrame(t *testing.T) {
	g := NewSceneGraph()
	n := g.NewNode(NodeModel, "anim")
	g.Emplace(n, RootID)

	early := NewTransform()
	early.LocalPosition = mgl32.Vec3{1, 0, 0}
	late := NewTransform()
	late.LocalPosition = mgl32.Vec3{9, 0, 0}

	n.AddKeyFrame(10, early)
	n.AddKeyFrame(20, late)

	require.Equal(t, float32(1), n.TransformAt(15).LocalPosition.X(), "frame 15 should use the keyframe at 10")
	require.Equal(t, float32(9), n.TransformAt(20).LocalPosition.X(), "frame 20 should use its exact keyframe")
	require.Equal(t, float32(0), n.TransformAt(0).LocalPosition.X(), "frame 0 should use the default identity keyframe every node starts with")
}

func TestAddKeyFrameClampsPivotOnInsert(t *testing.T) {
	g := NewSceneGraph()
	n := g.NewNode(NodeModel, "pivoted")
	g.Emplace(n, RootID)

	tr := NewTransform()
	tr.Pivot = mgl32.Vec3{-1, 2, 0.5}
	n.AddKeyFrame(0, tr)

	got := n.TransformAt(0).Pivot
	require.Equal(t, mgl32.Vec3{0, 1, 0.5}, got, "pivot must clamp into [0,1] on insert")
}
