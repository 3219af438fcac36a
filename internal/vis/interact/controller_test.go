package interact

import (
	"testing"

	"github.com/tessella-works/tessella/internal/core"
)

type hostRecorder struct {
	inserted []core.Vec
	picked   []core.Vec
}

func (h *hostRecorder) InsertElement(at core.Vec) { h.inserted = append(h.inserted, at) }
func (h *hostRecorder) PickColor(at core.Vec)     { h.picked = append(h.picked, at) }

var testViewport = core.V(800, 600)

// at builds a frame input with the mouse over the given world point.
func at(c *Controller, world core.Vec, primary, secondary bool) Input {
	return Input{
		DT:        1.0 / 60,
		Viewport:  testViewport,
		Mouse:     c.Camera.WorldToScreen(world, testViewport),
		Hovered:   true,
		Primary:   primary,
		Secondary: secondary,
	}
}

func newTestController(host Host) *Controller {
	return NewController(NewCamera(), host, nil)
}

func oneElementTable(pos core.Vec) *core.Table {
	tab := &core.Table{Name: "test", Size: core.V(4096, 4096)}
	tab.Insert(pos)
	return tab
}

func TestDragLifecycle(t *testing.T) {
	c := newTestController(nil)
	tab := oneElementTable(core.V(50, 50))
	el := tab.Elements[0]

	// Secondary press over the element starts a drag and selects it.
	c.Step(at(c, core.V(55, 55), false, true), tab)
	if !c.Dragging() {
		t.Fatal("drag did not start")
	}
	if c.Active() != el.ID {
		t.Error("drag did not select the element")
	}
	if el.Pos != core.V(50, 50) {
		t.Errorf("element moved on the entry frame: %v", el.Pos)
	}

	// The offset to the grab point stays fixed while the mouse moves.
	c.Step(at(c, core.V(80, 80), false, false), tab)
	if el.Pos != core.V(75, 75) {
		t.Errorf("element at %v, want (75, 75)", el.Pos)
	}
	c.Step(at(c, core.V(90.7, 90.2), false, false), tab)
	if el.Pos != core.V(85, 85) {
		t.Errorf("element at %v, want floored (85, 85)", el.Pos)
	}

	// A second secondary press toggles the drag off; later motion does
	// not move the element.
	c.Step(at(c, core.V(90.7, 90.2), false, true), tab)
	if c.Dragging() {
		t.Fatal("drag did not end on the second press")
	}
	c.Step(at(c, core.V(300, 300), false, false), tab)
	if el.Pos != core.V(85, 85) {
		t.Errorf("element moved after the drag ended: %v", el.Pos)
	}
}

func TestDragDebounce(t *testing.T) {
	c := newTestController(nil)
	tab := oneElementTable(core.V(50, 50))

	c.Step(at(c, core.V(55, 55), false, true), tab) // start
	c.Step(at(c, core.V(55, 55), false, true), tab) // toggle off
	if c.Dragging() {
		t.Fatal("drag still on after toggle")
	}

	// The frame right after the ending press is debounced; the one after
	// that may start a fresh drag.
	c.Step(at(c, core.V(55, 55), false, true), tab)
	if c.Dragging() {
		t.Error("drag restarted inside the debounce frame")
	}
	c.Step(at(c, core.V(55, 55), false, true), tab)
	if !c.Dragging() {
		t.Error("drag did not restart after the debounce frame")
	}
}

func TestDragNeedsHit(t *testing.T) {
	c := newTestController(nil)
	tab := oneElementTable(core.V(50, 50))

	c.Step(at(c, core.V(500, 500), false, true), tab)
	if c.Dragging() {
		t.Error("drag started with no element under the pointer")
	}
	if !c.Active().IsZero() {
		t.Error("secondary press on empty space selected something")
	}
}

func TestDragEndsWhenSelectionCleared(t *testing.T) {
	c := newTestController(nil)
	tab := oneElementTable(core.V(50, 50))
	el := tab.Elements[0]

	c.Step(at(c, core.V(55, 55), false, true), tab)
	c.Step(at(c, core.V(60, 60), false, false), tab)
	if el.Pos != core.V(55, 55) {
		t.Fatalf("element at %v, want (55, 55)", el.Pos)
	}

	c.ClearActive()
	c.Step(at(c, core.V(70, 70), false, false), tab)
	if c.Dragging() {
		t.Error("drag survived a cleared selection")
	}
	if el.Pos != core.V(55, 55) {
		t.Errorf("element moved after selection cleared: %v", el.Pos)
	}
}

func TestDragEndsWhenElementRemoved(t *testing.T) {
	c := newTestController(nil)
	tab := oneElementTable(core.V(50, 50))
	el := tab.Elements[0]

	c.Step(at(c, core.V(55, 55), false, true), tab)
	tab.Remove(el.ID)
	c.Step(at(c, core.V(70, 70), false, false), tab)
	if c.Dragging() {
		t.Error("drag survived element removal")
	}
}

func TestSelection(t *testing.T) {
	c := newTestController(nil)
	tab := oneElementTable(core.V(50, 50))
	el := tab.Elements[0]

	c.Step(at(c, core.V(60, 60), true, false), tab)
	if c.Active() != el.ID {
		t.Fatal("primary click over the element did not select it")
	}

	// A click outside every element clears the selection.
	c.Step(at(c, core.V(500, 500), true, false), tab)
	if !c.Active().IsZero() {
		t.Error("click on empty space kept the selection")
	}

	// Clicks while the pointer is off the canvas change nothing.
	c.Step(at(c, core.V(60, 60), true, false), tab)
	in := at(c, core.V(500, 500), true, false)
	in.Hovered = false
	c.Step(in, tab)
	if c.Active() != el.ID {
		t.Error("unhovered click changed the selection")
	}
}

func TestSelectionLastHitWins(t *testing.T) {
	c := newTestController(nil)
	tab := &core.Table{Name: "test", Size: core.V(4096, 4096)}
	tab.Insert(core.V(0, 0))
	b := tab.Insert(core.V(24, 24))

	c.Step(at(c, core.V(30, 30), true, false), tab)
	if c.Active() != b.ID {
		t.Errorf("overlap click selected %v, want the later element", c.Active())
	}
}

func TestNavigationFixture(t *testing.T) {
	c := newTestController(nil)
	tab := &core.Table{Name: "test", Size: core.V(4096, 4096)}
	tab.Insert(core.V(0, 0))
	tab.Insert(core.V(100, 0))
	tab.Insert(core.V(200, 0))
	c.Camera.Pos = core.V(90, 0)

	// Recenter goes to the nearest element.
	c.KeyDown(KeyRecenter)
	c.Step(at(c, core.V(0, 0), false, false), tab)
	if c.Active() != tab.Elements[1].ID {
		t.Fatal("recenter did not select the nearest element")
	}
	tgt, ok := c.Camera.EaseTarget()
	if !ok || tgt != core.V(124, 24) {
		t.Fatalf("ease target = %v %v, want (124, 24)", tgt, ok)
	}

	// While the ease is in flight the reference is its target, so "next"
	// steps to the following element rather than re-resolving mid-flight.
	c.KeyDown(KeyNextElement)
	c.Step(at(c, core.V(0, 0), false, false), tab)
	if c.Active() != tab.Elements[2].ID {
		t.Error("next did not advance to the following element")
	}
	if tgt, _ = c.Camera.EaseTarget(); tgt != core.V(224, 24) {
		t.Errorf("ease target = %v, want (224, 24)", tgt)
	}

	// Next again wraps around to the first element.
	c.KeyDown(KeyNextElement)
	c.Step(at(c, core.V(0, 0), false, false), tab)
	if c.Active() != tab.Elements[0].ID {
		t.Error("next did not wrap to the first element")
	}

	// Previous from the first element wraps back to the last.
	c.KeyDown(KeyPrevElement)
	c.Step(at(c, core.V(0, 0), false, false), tab)
	if c.Active() != tab.Elements[2].ID {
		t.Error("previous did not wrap to the last element")
	}
}

func TestNavigationEmptyTable(t *testing.T) {
	c := newTestController(nil)
	tab := &core.Table{Name: "empty", Size: core.V(100, 100)}

	c.KeyDown(KeyNextElement)
	c.Step(at(c, core.V(500, 500), false, false), tab)
	if c.Camera.Easing() {
		t.Error("navigation on an empty table started an ease")
	}
	if !c.Active().IsZero() {
		t.Error("navigation on an empty table selected something")
	}
}

func TestZoomKeys(t *testing.T) {
	c := newTestController(nil)
	tab := oneElementTable(core.V(0, 0))

	c.KeyDown(KeyZoomIn)
	c.Step(at(c, core.V(0, 0), false, false), tab)
	if c.Camera.TargetZoom != 2 {
		t.Errorf("target zoom = %v after zoom in, want 2", c.Camera.TargetZoom)
	}
	c.KeyDown(KeyZoomOut)
	c.KeyDown(KeyZoomOut)
	c.Step(at(c, core.V(0, 0), false, false), tab)
	if c.Camera.TargetZoom != 0.5 {
		t.Errorf("target zoom = %v after two zoom outs, want 0.5", c.Camera.TargetZoom)
	}
}

func TestAxisAcceleration(t *testing.T) {
	c := newTestController(nil)
	tab := oneElementTable(core.V(0, 0))
	in := at(c, core.V(500, 500), false, false)

	c.KeyDown(KeyRight)
	c.Step(in, tab)
	if got := c.Camera.Accel(); got != core.V(Speed, 0) {
		t.Errorf("accel = %v with right held, want (%v, 0)", got, Speed)
	}

	c.KeyDown(KeyLeft)
	c.Step(in, tab)
	if got := c.Camera.Accel(); got != (core.Vec{}) {
		t.Errorf("accel = %v with opposing keys held, want zero", got)
	}

	c.KeyUp(KeyRight)
	c.Step(in, tab)
	if got := c.Camera.Accel(); got != core.V(-Speed, 0) {
		t.Errorf("accel = %v with left held, want (-%v, 0)", got, Speed)
	}

	c.KeyUp(KeyLeft)
	c.KeyDown(KeyDown)
	c.Step(in, tab)
	if got := c.Camera.Accel(); got != core.V(0, Speed) {
		t.Errorf("accel = %v with down held, want (0, %v)", got, Speed)
	}

	c.KeyUp(KeyDown)
	c.Step(in, tab)
	if got := c.Camera.Accel(); got != (core.Vec{}) {
		t.Errorf("accel = %v with nothing held, want zero", got)
	}
}

func TestAxisScalesWithZoom(t *testing.T) {
	c := newTestController(nil)
	tab := oneElementTable(core.V(0, 0))
	c.Camera.Zoom = 4
	c.Camera.TargetZoom = 4

	c.KeyDown(KeyRight)
	c.Step(at(c, core.V(500, 500), false, false), tab)
	if got := c.Camera.Accel(); got != core.V(Speed/4, 0) {
		t.Errorf("accel = %v at zoom 4, want (%v, 0)", got, Speed/4)
	}
}

func TestDirectionalKeyInterruptsEase(t *testing.T) {
	c := newTestController(nil)
	tab := oneElementTable(core.V(0, 0))

	c.Camera.EaseTo(core.V(1000, 0))
	c.Step(at(c, core.V(500, 500), false, false), tab)
	if !c.Camera.Easing() {
		t.Fatal("ease ended prematurely")
	}

	c.KeyDown(KeyRight)
	if c.Camera.Easing() {
		t.Error("directional press did not release the ease")
	}
	if c.Camera.Velocity().X <= 0 {
		t.Errorf("released velocity = %v, want momentum toward the target", c.Camera.Velocity())
	}
}

func TestInsertDelegates(t *testing.T) {
	host := &hostRecorder{}
	c := newTestController(host)
	tab := oneElementTable(core.V(0, 0))
	c.Camera.Pos = core.V(321.5, -12.25)

	c.KeyDown(KeyInsert)
	c.Step(at(c, core.V(500, 500), false, false), tab)
	if len(host.inserted) != 1 {
		t.Fatalf("InsertElement called %d times, want 1", len(host.inserted))
	}
	if host.inserted[0] != core.V(321.5, -12.25) {
		t.Errorf("insert position = %v, want the camera position", host.inserted[0])
	}
	if !c.Active().IsZero() {
		t.Error("insert changed the selection")
	}
}

func TestColorPickWaitsForCanvas(t *testing.T) {
	host := &hostRecorder{}
	c := newTestController(host)
	tab := oneElementTable(core.V(0, 0))
	tab.Size = core.V(500, 500)

	c.KeyDown(KeyPickColor)
	c.Step(at(c, core.V(-50, -50), false, false), tab)
	if len(host.picked) != 0 {
		t.Fatal("color pick fired outside the canvas")
	}

	c.Step(at(c, core.V(250, 250), false, false), tab)
	if len(host.picked) != 1 {
		t.Fatalf("PickColor called %d times, want 1", len(host.picked))
	}
	if host.picked[0] != core.V(250, 250) {
		t.Errorf("picked at %v, want (250, 250)", host.picked[0])
	}

	// The pick is one-shot.
	c.Step(at(c, core.V(250, 250), false, false), tab)
	if len(host.picked) != 1 {
		t.Error("color pick fired again without a new key press")
	}
}
