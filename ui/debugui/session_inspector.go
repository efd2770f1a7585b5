package debugui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// SessionInspector shows the live session of a controller. Integer and boolean fields are
// editable.
type SessionInspector struct {
	controller *tetris.Controller
	editors    fieldEditors
}

func NewSessionInspector(controller *tetris.Controller) *SessionInspector {
	return &SessionInspector{
		controller: controller,
		editors:    make(fieldEditors),
	}
}

// Render draws the inspector window.
func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 420), imgui.CondOnce)

	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := si.controller.Session()
	imgui.Text(fmt.Sprintf("Fall delay: %s", si.controller.FallDelay()))
	imgui.Separator()

	si.renderStruct(reflect.ValueOf(s).Elem())

	if imgui.Button("Restart") {
		si.controller.Restart()
	}

	imgui.End()
}

func (si *SessionInspector) renderStruct(val reflect.Value) {
	for _, f := range si.editors.of(val.Type()) {
		si.renderField(f, val.Field(f.index))
	}
}

func (si *SessionInspector) renderField(f fieldEditor, val reflect.Value) {
	name := f.name
	switch f.editor {
	case editorDescribed:
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		imgui.Text(fmt.Sprintf("%s: %s", name, describe(val.Interface())))

	case editorDuration:
		imgui.Text(fmt.Sprintf("%s: %s", name, time.Duration(val.Int())))

	case editorInt:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() && v >= 0 {
			val.SetInt(int64(v))
		}

	case editorBool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case editorNested:
		if imgui.TreeNodeStr(name) {
			si.renderStruct(val)
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

// describe summarizes the pointer-typed parts of a session.
func describe(v any) string {
	switch v := v.(type) {
	case *tetris.Board:
		return fmt.Sprintf("%dx%d, %d filled", v.Width(), v.Height(), v.Filled())
	case *tetris.Piece:
		x, y := v.Position()
		return fmt.Sprintf("%s rot %d/%d at (%d,%d)", v.Kind(), v.Rotation(), v.RotationCount(), x, y)
	case *tetris.Score:
		return fmt.Sprintf("%d pts, level %d, %d lines, combo %d, b2b %t",
			v.Points(), v.Level(), v.Lines(), v.Combo(), v.BackToBack())
	default:
		return fmt.Sprintf("%v", v)
	}
}
