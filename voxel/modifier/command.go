package modifier

import "github.com/gekko3d/voxedit/voxel/volume"

// Command names one of the key/menu-bindable actions spec §6 lists. Commands
// take no arguments; state they affect is read back off the Modifier via its
// exported fields and State().
type Command string

const (
	CmdActionSelect Command = "actionselect"
	CmdColorPicker  Command = "colorpicker"
	CmdPath         Command = "path"
	CmdLine         Command = "line"
	CmdErase        Command = "erase"
	CmdPlace        Command = "place"
	CmdPaint        Command = "paint"
	CmdOverride     Command = "override"

	CmdShapeAABB     Command = "shapeaabb"
	CmdShapeTorus    Command = "torus"
	CmdShapeCylinder Command = "cylinder"
	CmdShapeEllipse  Command = "ellipse"
	CmdShapeCone     Command = "cone"
	CmdShapeDome     Command = "dome"

	CmdMirrorAxisX    Command = "mirroraxisx"
	CmdMirrorAxisY    Command = "mirroraxisy"
	CmdMirrorAxisZ    Command = "mirroraxisz"
	CmdMirrorAxisNone Command = "mirroraxisnone"

	CmdActionExecute       Command = "actionexecute"
	CmdActionExecuteDelete Command = "actionexecutedelete"
)

// Dispatch applies a tool/shape/write-policy/mirror-axis selection command.
// The two actionexecute* buttons are edge-triggered and go through Press and
// Release instead, since they drive the AABB state machine rather than
// setting a field.
func (m *Modifier) Dispatch(cmd Command) {
	switch cmd {
	case CmdActionSelect:
		m.ModifierType = (m.ModifierType &^ toolMask) | Select
	case CmdColorPicker:
		m.ModifierType = (m.ModifierType &^ toolMask) | ColorPicker
	case CmdPath:
		m.ModifierType = (m.ModifierType &^ toolMask) | Path
	case CmdLine:
		m.ModifierType = (m.ModifierType &^ toolMask) | Line
	case CmdErase:
		m.ModifierType = setWritePolicy(m.ModifierType, Erase)
	case CmdPlace:
		m.ModifierType = setWritePolicy(m.ModifierType, Place)
	case CmdPaint:
		m.ModifierType = setWritePolicy(m.ModifierType, Paint)
	case CmdOverride:
		m.ModifierType = setWritePolicy(m.ModifierType, Place|Erase)
	case CmdShapeAABB:
		m.ModifierType &^= toolMask
		m.ShapeType = ShapeAABB
	case CmdShapeTorus:
		m.ModifierType &^= toolMask
		m.ShapeType = ShapeTorus
	case CmdShapeCylinder:
		m.ModifierType &^= toolMask
		m.ShapeType = ShapeCylinder
	case CmdShapeEllipse:
		m.ModifierType &^= toolMask
		m.ShapeType = ShapeEllipse
	case CmdShapeCone:
		m.ModifierType &^= toolMask
		m.ShapeType = ShapeCone
	case CmdShapeDome:
		m.ModifierType &^= toolMask
		m.ShapeType = ShapeDome
	case CmdMirrorAxisX:
		m.MirrorAxis = AxisX
	case CmdMirrorAxisY:
		m.MirrorAxis = AxisY
	case CmdMirrorAxisZ:
		m.MirrorAxis = AxisZ
	case CmdMirrorAxisNone:
		m.MirrorAxis = AxisNone
	}
}

func setWritePolicy(t Type, policy Type) Type {
	return (t &^ (Place | Erase | Paint)) | policy
}

// Press handles the down-edge of actionexecute/actionexecutedelete: it
// advances the AABB latch (aabbStart on the first press, aabbStep on
// subsequent ones within the same gesture), executing immediately if that
// advance reaches Execute (Single mode, or a non-flat rectangle closed in
// one step). actionexecutedelete sets the write policy to Erase regardless of
// what Dispatch last set; the previous policy is not restored afterwards, so
// Erase stays in effect until Dispatch selects another policy.
func (m *Modifier) Press(cmd Command, vol *volume.RawVolume, cursorVoxel volume.Voxel, onDirty DirtyCallback) {
	if cmd != CmdActionExecute && cmd != CmdActionExecuteDelete {
		return
	}
	if cmd == CmdActionExecuteDelete {
		m.ModifierType = setWritePolicy(m.ModifierType, Erase)
	}
	if m.state == Idle {
		m.AabbStart()
	} else {
		m.AabbStep()
	}
	if m.state == Execute {
		m.AabbAction(vol, cursorVoxel, onDirty)
	}
}

// Release handles the up-edge: if a gesture is still mid-flight (waiting on
// a further click rather than already executed or idle), releasing the
// button abandons it rather than leaving it latched indefinitely.
func (m *Modifier) Release(cmd Command) {
	if cmd != CmdActionExecute && cmd != CmdActionExecuteDelete {
		return
	}
	if m.state == FirstPicked || m.state == SecondPicked || m.state == ThirdPicked {
		m.AabbAbort()
	}
}
