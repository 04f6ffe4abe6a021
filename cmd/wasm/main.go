//go:build js && wasm

package main

import (
	"encoding/json"
	"log/slog"
	"syscall/js"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/engine"
)

var (
	eng      *engine.Engine
	handlers js.Value // object with optional onRender/onTextOpen/onTextClose functions
)

// jsBridge forwards engine callbacks to the handlers object.
type jsBridge struct{}

func (jsBridge) Draw(commands []engine.DrawCommand) {
	call("onRender", toJSON(commands))
}

func (jsBridge) OpenText(overlay engine.TextOverlay) {
	call("onTextOpen", toJSON(overlay))
}

func (jsBridge) CloseText(elementID string) {
	call("onTextClose", elementID)
}

func call(name string, arg any) {
	if handlers.IsUndefined() || handlers.IsNull() {
		return
	}
	fn := handlers.Get(name)
	if fn.Type() != js.TypeFunction {
		return
	}
	fn.Invoke(arg)
}

func toJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("marshal for js", "error", err)
		return "null"
	}
	return string(data)
}

func main() {
	handlers = js.Undefined()
	eng = engine.New(
		engine.WithSurface(jsBridge{}),
		engine.WithTextEditor(jsBridge{}),
	)

	// Create the engine API object
	sketchpad := js.Global().Get("Object").New()

	// --- Commands (frontend → engine) ---
	sketchpad.Set("setHandlers", js.FuncOf(setHandlers))
	sketchpad.Set("pointerDown", js.FuncOf(pointerHandler(eng.PointerDown)))
	sketchpad.Set("pointerMove", js.FuncOf(pointerHandler(eng.PointerMove)))
	sketchpad.Set("pointerUp", js.FuncOf(pointerHandler(eng.PointerUp)))
	sketchpad.Set("doubleClick", js.FuncOf(pointerHandler(eng.DoubleClick)))
	sketchpad.Set("keyDown", js.FuncOf(keyDown))
	sketchpad.Set("commitText", js.FuncOf(commitText))
	sketchpad.Set("cancelText", js.FuncOf(cancelText))
	sketchpad.Set("setTool", js.FuncOf(setTool))
	sketchpad.Set("setColor", js.FuncOf(setColor))
	sketchpad.Set("setStrokeWidth", js.FuncOf(setStrokeWidth))
	sketchpad.Set("setSelection", js.FuncOf(setSelection))
	sketchpad.Set("selectAll", js.FuncOf(selectAll))
	sketchpad.Set("deleteSelection", js.FuncOf(deleteSelection))
	sketchpad.Set("undo", js.FuncOf(undo))
	sketchpad.Set("redo", js.FuncOf(redo))
	sketchpad.Set("clear", js.FuncOf(clearCanvas))
	sketchpad.Set("loadElements", js.FuncOf(loadElements))
	sketchpad.Set("loadSample", js.FuncOf(loadSample))

	// --- Queries (frontend ← engine) ---
	sketchpad.Set("render", js.FuncOf(render))
	sketchpad.Set("hitTest", js.FuncOf(hitTest))
	sketchpad.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	sketchpad.Set("getElements", js.FuncOf(getElements))
	sketchpad.Set("getSelection", js.FuncOf(getSelection))
	sketchpad.Set("getState", js.FuncOf(getState))

	// Register on global scope
	js.Global().Set("sketchpadEngine", sketchpad)

	// Signal that WASM is ready
	js.Global().Set("sketchpadWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

func setHandlers(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		handlers = js.Undefined()
		return nil
	}
	handlers = args[0]
	return nil
}

func pointerHandler(fn func(document.Point)) func(js.Value, []js.Value) interface{} {
	return func(this js.Value, args []js.Value) interface{} {
		if len(args) < 2 {
			return nil
		}
		fn(document.Point{X: args[0].Float(), Y: args[1].Float()})
		return nil
	}
}

func keyDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	ev := args[0]
	eng.KeyDown(engine.KeyEvent{
		Key:   ev.Get("key").String(),
		Ctrl:  ev.Get("ctrlKey").Truthy(),
		Meta:  ev.Get("metaKey").Truthy(),
		Shift: ev.Get("shiftKey").Truthy(),
		Alt:   ev.Get("altKey").Truthy(),
	})
	return nil
}

func commitText(this js.Value, args []js.Value) interface{} {
	text := ""
	if len(args) > 0 && args[0].Type() == js.TypeString {
		text = args[0].String()
	}
	eng.CommitText(text)
	return nil
}

func cancelText(this js.Value, args []js.Value) interface{} {
	eng.CancelText()
	return nil
}

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	eng.SetTool(engine.Tool(args[0].String()))
	return nil
}

// setColor sets the current color. A truthy second argument applies it to
// the selection too.
func setColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	if len(args) > 1 && args[1].Truthy() {
		eng.SetSelectionColor(args[0].String())
	} else {
		eng.SetColor(args[0].String())
	}
	return nil
}

func setStrokeWidth(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	if len(args) > 1 && args[1].Truthy() {
		eng.SetSelectionStrokeWidth(args[0].Float())
	} else {
		eng.SetStrokeWidth(args[0].Float())
	}
	return nil
}

func setSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		eng.SetSelection(nil)
		return nil
	}

	arr := args[0]
	if arr.Type() != js.TypeObject {
		eng.SetSelection(nil)
		return nil
	}

	length := arr.Length()
	ids := make([]string, length)
	for i := 0; i < length; i++ {
		ids[i] = arr.Index(i).String()
	}
	eng.SetSelection(ids)
	return nil
}

func selectAll(this js.Value, args []js.Value) interface{} {
	eng.SelectAll()
	return nil
}

func deleteSelection(this js.Value, args []js.Value) interface{} {
	eng.DeleteSelection()
	return nil
}

func undo(this js.Value, args []js.Value) interface{} {
	eng.Undo()
	return nil
}

func redo(this js.Value, args []js.Value) interface{} {
	eng.Redo()
	return nil
}

func clearCanvas(this js.Value, args []js.Value) interface{} {
	eng.Clear()
	return nil
}

func loadElements(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing elements JSON"})
	}

	var elements []document.Element
	if err := json.Unmarshal([]byte(args[0].String()), &elements); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	eng.LoadElements(elements)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func loadSample(this js.Value, args []js.Value) interface{} {
	eng.LoadElements(document.NewSampleDocument().Snapshot())
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(toJSON(eng.Render()))
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	x := args[0].Float()
	y := args[1].Float()
	return js.ValueOf(eng.HitTest(x, y))
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(toJSON(eng.SelectionBounds()))
}

func getElements(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(toJSON(eng.Elements()))
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(toJSON(eng.Selection()))
}

func getState(this js.Value, args []js.Value) interface{} {
	overlay, editing := eng.EditingText()
	state := map[string]any{
		"state":       eng.State(),
		"tool":        eng.Tool(),
		"color":       eng.Color(),
		"strokeWidth": eng.StrokeWidth(),
		"canUndo":     eng.CanUndo(),
		"canRedo":     eng.CanRedo(),
	}
	if editing {
		state["editing"] = overlay
	}
	return js.ValueOf(toJSON(state))
}
