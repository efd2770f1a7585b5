package debugui

import (
	"reflect"
	"time"
)

// editor selects how the inspector shows a session field.
type editor uint8

const (
	editorText editor = iota
	editorDuration
	editorInt
	editorBool
	editorNested
	editorDescribed
)

var durationType = reflect.TypeFor[time.Duration]()

type fieldEditor struct {
	name   string
	index  int
	editor editor
}

// editorFor picks the widget for a field type. Pointers are summarized with describe.
func editorFor(t reflect.Type) editor {
	switch {
	case t.Kind() == reflect.Pointer:
		return editorDescribed
	case t == durationType:
		return editorDuration
	case t.Kind() == reflect.Int:
		return editorInt
	case t.Kind() == reflect.Bool:
		return editorBool
	case t.Kind() == reflect.Struct:
		return editorNested
	default:
		return editorText
	}
}

// fieldEditors maps struct types to the editors of their exported fields. Entries are
// computed on first use.
type fieldEditors map[reflect.Type][]fieldEditor

func (fe fieldEditors) of(t reflect.Type) []fieldEditor {
	if editors, ok := fe[t]; ok {
		return editors
	}
	var editors []fieldEditor
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || len(f.Index) != 1 {
			continue
		}
		editors = append(editors, fieldEditor{name: f.Name, index: f.Index[0], editor: editorFor(f.Type)})
	}
	fe[t] = editors
	return editors
}
