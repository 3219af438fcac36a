// Package widgets provides the Gio widgets of the editor window.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/tessella-works/tessella/internal/core"
	"github.com/tessella-works/tessella/internal/vis/draw"
	"github.com/tessella-works/tessella/internal/vis/interact"
	"github.com/tessella-works/tessella/internal/vis/state"
)

// Workspace is the canvas area of the editor: the active table's image
// with the element overlays on top. It gathers one frame of pointer and
// key state, steps the controller, then draws the result.
type Workspace struct {
	session  *state.Session
	ctrl     *interact.Controller
	canvases *draw.CanvasCache

	mouse     f32.Point
	inside    bool
	buttons   pointer.Buttons
	primary   bool // primary press seen since the last step
	secondary bool // secondary press seen since the last step
	focused   bool
}

// NewWorkspace creates the workspace widget.
func NewWorkspace(session *state.Session, ctrl *interact.Controller) *Workspace {
	return &Workspace{
		session:  session,
		ctrl:     ctrl,
		canvases: draw.NewCanvasCache(),
	}
}

// Layout processes this frame's input, advances the session by dt seconds
// and draws the active table.
func (w *Workspace) Layout(gtx layout.Context, th *material.Theme, dt float64) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	w.handleKeyEvents(gtx)
	w.handlePointerEvents(gtx)

	// The canvas owns the keyboard until a text field takes it; clicking
	// the canvas takes it back.
	if !w.focused {
		gtx.Execute(key.FocusCmd{Tag: w})
		w.focused = true
	}

	viewport := core.V(float64(bounds.X), float64(bounds.Y))
	in := interact.Input{
		DT:        dt,
		Viewport:  viewport,
		Mouse:     core.V(float64(w.mouse.X), float64(w.mouse.Y)),
		Hovered:   w.inside,
		Primary:   w.primary,
		Secondary: w.secondary,
	}
	w.primary = false
	w.secondary = false

	table := w.session.Table()
	w.ctrl.Step(in, table)
	if w.ctrl.Dragging() {
		w.session.MarkDirty()
	}

	if table != nil {
		if img := w.session.Canvas(); img != nil {
			draw.Canvas(gtx, w.canvases.Op(table.Name, img), w.ctrl.Camera, viewport)
		}
		var hovered *core.Element
		if w.inside {
			world := w.ctrl.Camera.ScreenToWorld(in.Mouse, viewport)
			hovered = core.HitTest(world, table.Elements)
		}
		draw.Overlays(gtx, table.Elements, hovered, w.ctrl.Camera, viewport)
	}

	return layout.Dimensions{Size: bounds}
}

func (w *Workspace) handleKeyEvents(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(key.Filter{Focus: w, Optional: key.ModShift})
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok {
			continue
		}
		k, ok := editorKey(ke.Name)
		if !ok {
			continue
		}
		if ke.State == key.Press {
			w.ctrl.KeyDown(k)
		} else {
			w.ctrl.KeyUp(k)
		}
	}
}

// editorKey translates a Gio key name into a controller key.
func editorKey(name key.Name) (interact.Key, bool) {
	switch name {
	case "W", key.NameUpArrow:
		return interact.KeyUp, true
	case "S", key.NameDownArrow:
		return interact.KeyDown, true
	case "A", key.NameLeftArrow:
		return interact.KeyLeft, true
	case "D", key.NameRightArrow:
		return interact.KeyRight, true
	case ",":
		return interact.KeyPrevElement, true
	case ".":
		return interact.KeyNextElement, true
	case "/":
		return interact.KeyRecenter, true
	case "=":
		return interact.KeyZoomIn, true
	case "-":
		return interact.KeyZoomOut, true
	case "\\":
		return interact.KeyPickColor, true
	case key.NameReturn, key.NameEnter:
		return interact.KeyInsert, true
	}
	return 0, false
}

func (w *Workspace) handlePointerEvents(gtx layout.Context) {
	// Register for pointer events
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	// Process events
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Move | pointer.Enter | pointer.Leave,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			w.handlePointerEvent(gtx, pe)
		}
	}
}

func (w *Workspace) handlePointerEvent(gtx layout.Context, ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		w.mouse = ev.Position
		w.inside = true
		// ev.Buttons is every button held down; only a fresh press counts
		// as a click.
		pressed := ev.Buttons &^ w.buttons
		if pressed.Contain(pointer.ButtonPrimary) {
			w.primary = true
		}
		if pressed.Contain(pointer.ButtonSecondary) {
			w.secondary = true
		}
		w.buttons = ev.Buttons
		gtx.Execute(key.FocusCmd{Tag: w})
	case pointer.Release, pointer.Cancel:
		w.buttons = ev.Buttons
	case pointer.Move, pointer.Drag:
		w.mouse = ev.Position
		w.inside = true
	case pointer.Enter:
		w.inside = true
	case pointer.Leave:
		w.inside = false
	}
}
