package scenegraph

import "github.com/go-gl/mathgl/mgl32"

// Transform is one keyframed pose of a node: local position/orientation/
// scale plus a normalized pivot, with a world matrix derived from local
// fields and ancestry. Composition follows the teacher's
// core.Transform.ObjectToWorld (translate * rotate * scale).
type Transform struct {
	LocalPosition    mgl32.Vec3
	LocalOrientation mgl32.Quat
	LocalScale       mgl32.Vec3
	Pivot            mgl32.Vec3 // normalized into [0,1]^3
	WorldMatrix      mgl32.Mat4
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		LocalPosition:    mgl32.Vec3{0, 0, 0},
		LocalOrientation: mgl32.QuatIdent(),
		LocalScale:       mgl32.Vec3{1, 1, 1},
		Pivot:            mgl32.Vec3{0, 0, 0},
		WorldMatrix:      mgl32.Ident4(),
	}
}

// localMatrix composes this transform's own translate*rotate*scale*pivot-shift
// matrix, the same T*R*S idiom as core.Transform.ObjectToWorld.
func (t Transform) localMatrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.LocalPosition.X(), t.LocalPosition.Y(), t.LocalPosition.Z())
	rotate := t.LocalOrientation.Mat4()
	scale := mgl32.Scale3D(t.LocalScale.X(), t.LocalScale.Y(), t.LocalScale.Z())
	pivotShift := mgl32.Translate3D(-t.Pivot.X(), -t.Pivot.Y(), -t.Pivot.Z())
	return translate.Mul4(rotate).Mul4(scale).Mul4(pivotShift)
}

// clampPivot clamps the pivot into [0,1]^3, recovered from
// original_source's node-copy routine (see SPEC_FULL.md §4).
func clampPivot(p mgl32.Vec3) mgl32.Vec3 {
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return mgl32.Vec3{clamp(p.X()), clamp(p.Y()), clamp(p.Z())}
}

// KeyFrame binds a frame index to a Transform.
type KeyFrame struct {
	FrameIdx  uint32
	Transform Transform
}
