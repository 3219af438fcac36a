package interact

import (
	"go.uber.org/zap"

	"github.com/tessella-works/tessella/internal/core"
)

// Key is a logical editor key. The windowing layer translates hardware
// events into these; the controller never sees raw key codes.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPrevElement
	KeyNextElement
	KeyRecenter
	KeyZoomIn
	KeyZoomOut
	KeyInsert
	KeyPickColor
)

func (k Key) String() string {
	return [...]string{
		"Up", "Down", "Left", "Right",
		"PrevElement", "NextElement", "Recenter",
		"ZoomIn", "ZoomOut", "Insert", "PickColor",
	}[k]
}

// Host supplies the capabilities the controller triggers but does not own:
// element creation and canvas color sampling. The clipboard side of a
// color pick also lives behind the host.
type Host interface {
	InsertElement(at core.Vec)
	PickColor(at core.Vec)
}

// Input is one frame's pointer state, gathered by the workspace widget.
type Input struct {
	DT        float64
	Viewport  core.Vec
	Mouse     core.Vec // screen space
	Hovered   bool     // pointer is over the canvas
	Primary   bool     // primary button pressed this frame
	Secondary bool     // secondary button pressed this frame
}

// Controller owns selection, dragging and keyboard camera control for one
// editing session. All methods run on the frame goroutine.
type Controller struct {
	Camera *Camera

	host   Host
	logger *zap.Logger

	held    map[Key]bool // directional key state, polled each Step
	pressed []Key        // discrete presses queued for the next Step

	active      core.ElementID
	dragging    bool
	wasDragging bool
	dragOffset  core.Vec
	colorPick   bool
}

// NewController wires a controller to its camera and host. A nil logger
// disables logging.
func NewController(cam *Camera, host Host, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		Camera: cam,
		host:   host,
		logger: logger,
		held:   make(map[Key]bool),
	}
}

// KeyDown records a key press. Directional keys latch into the held map
// and interrupt any camera ease; everything else queues as a discrete
// command for the next Step.
func (c *Controller) KeyDown(k Key) {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		c.held[k] = true
		c.Camera.ReleaseEasing()
	default:
		c.pressed = append(c.pressed, k)
	}
}

// KeyUp records a key release. Releasing a directional key also
// interrupts an ease, matching the press side.
func (c *Controller) KeyUp(k Key) {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		c.held[k] = false
		c.Camera.ReleaseEasing()
	}
}

// axis folds the held directional keys into a signed unit step per
// component. Opposing keys cancel.
func (c *Controller) axis() core.Vec {
	var a core.Vec
	if c.held[KeyLeft] {
		a.X--
	}
	if c.held[KeyRight] {
		a.X++
	}
	if c.held[KeyUp] {
		a.Y--
	}
	if c.held[KeyDown] {
		a.Y++
	}
	return a
}

// Step runs one frame: camera physics first, then the polled key state and
// queued commands, then pointer selection and dragging against the active
// table. table may be nil (nothing loaded); pointer work is skipped then.
func (c *Controller) Step(in Input, table *core.Table) {
	c.Camera.Tick(in.DT)
	c.Camera.SetAccel(c.axis().Mul(Speed / c.Camera.Zoom))

	for _, k := range c.pressed {
		c.command(k, table)
	}
	c.pressed = c.pressed[:0]

	if table != nil {
		c.pointer(in, table)
	}
}

func (c *Controller) command(k Key, table *core.Table) {
	switch k {
	case KeyZoomIn:
		c.Camera.ZoomIn()
	case KeyZoomOut:
		c.Camera.ZoomOut()
	case KeyPrevElement:
		c.navigate(-1, table)
	case KeyNextElement:
		c.navigate(+1, table)
	case KeyRecenter:
		c.navigate(0, table)
	case KeyInsert:
		if c.host != nil {
			c.host.InsertElement(c.Camera.Pos)
		}
	case KeyPickColor:
		c.colorPick = true
	}
}

// navigate selects and eases to an element near the camera: offset -1 for
// the previous element in table order, +1 for the next, 0 to recenter on
// the nearest. The reference point is the target of an ease still in
// flight, else the camera position. Empty or missing tables navigate
// nowhere.
func (c *Controller) navigate(offset int, table *core.Table) {
	if table == nil || len(table.Elements) == 0 {
		return
	}
	ref := c.Camera.Pos
	if t, ok := c.Camera.EaseTarget(); ok {
		ref = t
	}
	near := core.NearestIndex(ref, table.Elements)
	i := core.Advance(near, offset, len(table.Elements))
	el := table.Elements[i]
	c.active = el.ID
	c.logger.Debug("element navigation",
		zap.Int("nearest", near),
		zap.Int("target", i),
		zap.String("element", el.Name))
	c.Camera.EaseTo(el.Center())
}

// pointer handles one frame of mouse state: a pending color pick, then
// click selection, then the drag machine.
func (c *Controller) pointer(in Input, table *core.Table) {
	world := c.Camera.ScreenToWorld(in.Mouse, in.Viewport)

	// A queued color pick fires on the first frame the pointer is inside
	// the canvas.
	if c.colorPick && world.Within(core.Vec{}, table.Size) {
		if c.host != nil {
			c.host.PickColor(world)
		}
		c.colorPick = false
	}

	var hit *core.Element
	if in.Hovered {
		hit = core.HitTest(world, table.Elements)
	}

	justStarted := false
	if hit != nil {
		if in.Primary {
			c.active = hit.ID
		}
		if in.Secondary && !c.wasDragging {
			c.active = hit.ID
			c.dragging = true
			c.dragOffset = hit.Pos.Sub(world)
			justStarted = true
		}
	} else if in.Hovered && in.Primary {
		c.active = core.ElementID{}
	}

	// One-frame debounce: the press that starts a drag must not count as
	// the press that ends it.
	c.wasDragging = c.dragging

	if c.dragging && !justStarted {
		el := table.ByID(c.active)
		if el == nil || in.Secondary {
			c.dragging = false
		} else {
			el.Pos = world.Add(c.dragOffset).Floor()
		}
	}
}

// Active returns the selected element id, zero when nothing is selected.
func (c *Controller) Active() core.ElementID {
	return c.active
}

// SetActive selects an element by id.
func (c *Controller) SetActive(id core.ElementID) {
	c.active = id
}

// ClearActive drops the selection. An in-flight drag ends on the next
// Step when the id no longer resolves.
func (c *Controller) ClearActive() {
	c.active = core.ElementID{}
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}
