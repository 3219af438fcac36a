// Package vis implements the Gio editor application.
package vis

import (
	"image/color"
	"io"
	"strings"
	"time"

	"gioui.org/app"
	"gioui.org/io/clipboard"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"go.uber.org/zap"

	"github.com/tessella-works/tessella/internal/atlas"
	"github.com/tessella-works/tessella/internal/core"
	"github.com/tessella-works/tessella/internal/store"
	"github.com/tessella-works/tessella/internal/vis/interact"
	"github.com/tessella-works/tessella/internal/vis/state"
	"github.com/tessella-works/tessella/internal/vis/widgets"
)

// App is the editor application: one window editing one catalog.
type App struct {
	session   *state.Session
	camera    *interact.Camera
	ctrl      *interact.Controller
	theme     *material.Theme
	workspace *widgets.Workspace
	toolbar   *widgets.Toolbar
	inspector *widgets.Inspector
	logger    *zap.Logger

	catalogPath string
	lastFrame   time.Time
	picked      []string // hex colors waiting for the clipboard
}

// NewApp creates the editor application. catalogPath is where Save writes
// the session's catalog back to.
func NewApp(session *state.Session, catalogPath string, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		session:     session,
		camera:      interact.NewCamera(),
		theme:       material.NewTheme(),
		logger:      logger,
		catalogPath: catalogPath,
	}
	a.ctrl = interact.NewController(a.camera, a, logger)
	a.workspace = widgets.NewWorkspace(session, a.ctrl)
	a.toolbar = widgets.NewToolbar(session, a.saveCatalog, a.switchTable)
	a.inspector = widgets.NewInspector(session, a.ctrl)
	return a
}

// Run drives the application event loop until the window closes.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			a.layout(gtx, a.frameDelta(gtx.Now))

			for _, hex := range a.picked {
				gtx.Execute(clipboard.WriteCmd{
					Type: "application/text",
					Data: io.NopCloser(strings.NewReader(hex)),
				})
			}
			a.picked = a.picked[:0]

			e.Frame(gtx.Ops)

			// Keep frames coming while something is animating.
			if a.camera.Moving() || a.ctrl.Dragging() {
				w.Invalidate()
			}
		}
	}
}

// frameDelta converts frame timestamps into a simulation step. Long gaps
// between frames (the window idles unless something invalidates it) are
// clamped so the camera never teleports.
func (a *App) frameDelta(now time.Time) float64 {
	if a.lastFrame.IsZero() {
		a.lastFrame = now
		return 0
	}
	dt := now.Sub(a.lastFrame).Seconds()
	a.lastFrame = now
	if dt > 0.1 {
		dt = 0.1
	}
	return dt
}

func (a *App) layout(gtx layout.Context, dt float64) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		// Toolbar at top
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		// Main content area
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return a.workspace.Layout(gtx, a.theme, dt)
				}),
				// Element panel, present while something is selected
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return a.inspector.Layout(gtx, a.theme)
				}),
			)
		}),
	)
}

// saveCatalog writes the catalog back to disk and clears the dirty flag.
func (a *App) saveCatalog() {
	if err := store.Save(a.catalogPath, a.session.Catalog); err != nil {
		a.logger.Error("catalog save failed",
			zap.String("path", a.catalogPath),
			zap.Error(err))
		return
	}
	a.session.ClearDirty()
	a.logger.Info("catalog saved", zap.String("path", a.catalogPath))
}

// switchTable activates a table, drops the selection and frames the
// table's first element. An empty table keeps whatever glide is in
// flight; momentum is dropped either way.
func (a *App) switchTable(name string) {
	if !a.session.SwitchTable(name) {
		return
	}
	a.ctrl.ClearActive()
	if tab := a.session.Table(); tab != nil && len(tab.Elements) > 0 {
		a.camera.EaseTo(tab.Elements[0].Pos)
	} else if !a.camera.Easing() {
		a.camera.Stop()
	}
	a.camera.TargetZoom = 4
}

// InsertElement adds a fresh element at the given canvas position.
func (a *App) InsertElement(at core.Vec) {
	a.session.Insert(at)
}

// PickColor samples the active canvas and queues the color for the
// clipboard. Samples outside the canvas are dropped.
func (a *App) PickColor(at core.Vec) {
	img := a.session.Canvas()
	if img == nil {
		return
	}
	hex, ok := atlas.PixelHex(img, at)
	if !ok {
		return
	}
	a.picked = append(a.picked, hex)
	a.logger.Info("color picked",
		zap.String("color", hex),
		zap.Float64("x", at.X),
		zap.Float64("y", at.Y))
}
