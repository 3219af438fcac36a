package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/tessella-works/tessella/internal/vis/state"
)

// Toolbar is the bar across the top of the window: the save button and
// one tab per visible table.
type Toolbar struct {
	session     *state.Session
	save        func()
	switchTable func(string)

	saveBtn widget.Clickable
	tabs    []tableTab
}

type tableTab struct {
	name string
	btn  widget.Clickable
}

// NewToolbar creates the toolbar. save runs when the save button is
// clicked; switchTable runs with the tab's table name.
func NewToolbar(session *state.Session, save func(), switchTable func(string)) *Toolbar {
	return &Toolbar{
		session:     session,
		save:        save,
		switchTable: switchTable,
	}
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := 40

	// Background
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	t.syncTabs()
	t.handleClicks(gtx)

	active := ""
	if tbl := t.session.Table(); tbl != nil {
		active = tbl.Name
	}

	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.button(gtx, th, &t.saveBtn, "Save", false)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.layoutSeparator(gtx)
		}),
	}
	for i := range t.tabs {
		tab := &t.tabs[i]
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &tab.btn, tab.name, tab.name == active)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		)
	}
	children = append(children,
		// Spacer
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{}
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if !t.session.Dirty() {
				return layout.Dimensions{}
			}
			label := material.Label(th, 12, "unsaved changes")
			label.Color = color.NRGBA{R: 255, G: 170, B: 80, A: 255}
			return label.Layout(gtx)
		}),
	)

	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceStart}.Layout(gtx, children...)
	})
}

// syncTabs rebuilds the tab list when the visible table set changes. The
// clickables persist across frames otherwise.
func (t *Toolbar) syncTabs() {
	names := t.session.VisibleTables()
	if len(names) == len(t.tabs) {
		same := true
		for i, n := range names {
			if t.tabs[i].name != n {
				same = false
				break
			}
		}
		if same {
			return
		}
	}
	tabs := make([]tableTab, len(names))
	for i, n := range names {
		tabs[i].name = n
	}
	t.tabs = tabs
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	for t.saveBtn.Clicked(gtx) {
		t.save()
	}
	for i := range t.tabs {
		tab := &t.tabs[i]
		for tab.btn.Clicked(gtx) {
			t.switchTable(tab.name)
		}
	}
}

func (t *Toolbar) layoutSeparator(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		rect := image.Rect(0, 0, 1, 24)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(rect).Op())
		return layout.Dimensions{Size: image.Point{X: 1, Y: 24}}
	})
}

func (t *Toolbar) button(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, active bool) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if active {
		bg = color.NRGBA{R: 80, G: 130, B: 180, A: 255}
	}
	if btn.Hovered() {
		bg.R = minU8(bg.R+15, 255)
		bg.G = minU8(bg.G+15, 255)
		bg.B = minU8(bg.B+15, 255)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				size := gtx.Constraints.Min
				if size.X < 32 {
					size.X = 32
				}
				if size.Y < 28 {
					size.Y = 28
				}
				rect := image.Rect(0, 0, size.X, size.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: size}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Top: unit.Dp(5), Bottom: unit.Dp(5)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, text)
					label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
					return label.Layout(gtx)
				})
			},
		)
	})
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
