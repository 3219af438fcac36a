package widgets

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/tessella-works/tessella/internal/core"
	"github.com/tessella-works/tessella/internal/vis/interact"
	"github.com/tessella-works/tessella/internal/vis/state"
)

// Inspector is the element editing panel. It binds its fields to the
// selected element and writes edits straight back to the catalog.
type Inspector struct {
	session *state.Session
	ctrl    *interact.Controller

	bound    core.ElementID
	name     widget.Editor
	symbol   widget.Editor
	pronouns widget.Editor
	red      widget.Float
	green    widget.Float
	blue     widget.Float
	hasNum   widget.Bool
	number   widget.Editor
	authors  []*authorRow
	addBtn   widget.Clickable
	remove   widget.Clickable
}

type authorRow struct {
	ed  widget.Editor
	del widget.Clickable
}

func newAuthorRow(text string) *authorRow {
	row := &authorRow{}
	row.ed.SingleLine = true
	row.ed.SetText(text)
	return row
}

// NewInspector creates the inspector panel.
func NewInspector(session *state.Session, ctrl *interact.Controller) *Inspector {
	ins := &Inspector{
		session: session,
		ctrl:    ctrl,
	}
	ins.name.SingleLine = true
	ins.symbol.SingleLine = true
	ins.pronouns.SingleLine = true
	ins.number.SingleLine = true
	ins.number.Filter = "0123456789"
	return ins
}

// Layout renders the panel when an element is selected. Collapses to
// nothing otherwise.
func (i *Inspector) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	el := i.active()
	if el == nil {
		i.bound = core.ElementID{}
		return layout.Dimensions{}
	}
	if i.bound != el.ID {
		i.bind(el)
	}
	removed, edited := i.update(gtx, el)
	if edited {
		i.session.MarkDirty()
	}
	if removed {
		return layout.Dimensions{}
	}

	width := 300
	gtx.Constraints.Max.X = width
	rect := image.Rect(0, 0, width, gtx.Constraints.Max.Y)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255}, clip.Rect(rect).Op())

	layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(10), Bottom: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return i.layoutFields(gtx, th, el)
	})

	return layout.Dimensions{Size: image.Point{X: width, Y: gtx.Constraints.Max.Y}}
}

// active resolves the selection against the active table. A stale id, an
// empty selection or a missing table all come back nil.
func (i *Inspector) active() *core.Element {
	tab := i.session.Table()
	if tab == nil {
		return nil
	}
	id := i.ctrl.Active()
	if id.IsZero() {
		return nil
	}
	return tab.ByID(id)
}

// bind loads the element's fields into the editors. Runs once per
// selection change so in-progress typing is never clobbered.
func (i *Inspector) bind(el *core.Element) {
	i.bound = el.ID
	i.name.SetText(el.Name)
	i.symbol.SetText(core.SymbolToInput(el.Symbol))
	i.pronouns.SetText(el.Pronouns)
	r, g, b := el.RGB()
	i.red.Value = float32(r) / 255
	i.green.Value = float32(g) / 255
	i.blue.Value = float32(b) / 255
	i.hasNum.Value = el.Number != nil
	if el.Number != nil {
		i.number.SetText(strconv.Itoa(*el.Number))
	} else {
		i.number.SetText("")
	}
	i.authors = i.authors[:0]
	for _, a := range el.Authors {
		i.authors = append(i.authors, newAuthorRow(a))
	}
}

// update drains widget events and writes changes back to the element.
func (i *Inspector) update(gtx layout.Context, el *core.Element) (removed, edited bool) {
	for i.remove.Clicked(gtx) {
		i.session.Remove(el.ID)
		i.ctrl.ClearActive()
		i.bound = core.ElementID{}
		return true, false
	}

	if editorChanged(gtx, &i.name) {
		el.Name = i.name.Text()
		edited = true
	}
	if editorChanged(gtx, &i.symbol) {
		el.Symbol = core.SymbolFromInput(i.symbol.Text())
		edited = true
	}
	if editorChanged(gtx, &i.pronouns) {
		el.Pronouns = i.pronouns.Text()
		edited = true
	}

	rc := i.red.Update(gtx)
	gc := i.green.Update(gtx)
	bc := i.blue.Update(gtx)
	if rc || gc || bc {
		r := uint32(i.red.Value * 255)
		g := uint32(i.green.Value * 255)
		b := uint32(i.blue.Value * 255)
		el.Color = r<<16 | g<<8 | b
		edited = true
	}

	if i.hasNum.Update(gtx) {
		if i.hasNum.Value {
			if el.Number == nil {
				n := 0
				el.Number = &n
				i.number.SetText("0")
			}
		} else {
			el.Number = nil
		}
		edited = true
	}
	if editorChanged(gtx, &i.number) && el.Number != nil {
		if n, err := strconv.Atoi(i.number.Text()); err == nil {
			*el.Number = n
			edited = true
		}
	}

	authorsChanged := false
	removedRow := -1
	for idx, row := range i.authors {
		if editorChanged(gtx, &row.ed) {
			authorsChanged = true
		}
		for row.del.Clicked(gtx) {
			removedRow = idx
		}
	}
	if removedRow >= 0 {
		i.authors = append(i.authors[:removedRow], i.authors[removedRow+1:]...)
		authorsChanged = true
	}
	for i.addBtn.Clicked(gtx) {
		i.authors = append(i.authors, newAuthorRow(""))
		authorsChanged = true
	}
	if authorsChanged {
		el.Authors = el.Authors[:0]
		for _, row := range i.authors {
			el.Authors = append(el.Authors, row.ed.Text())
		}
		edited = true
	}

	return false, edited
}

func (i *Inspector) layoutFields(gtx layout.Context, th *material.Theme, el *core.Element) layout.Dimensions {
	sp := layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout)

	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := material.Label(th, 14, "Edit Element")
			label.Color = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
			return label.Layout(gtx)
		}),
		sp,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return i.row(gtx, th, "Name", &i.name)
		}),
		sp,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return i.row(gtx, th, "Symbol", &i.symbol)
		}),
		sp,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return i.row(gtx, th, "Pronouns", &i.pronouns)
		}),
		sp,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return i.layoutColorHeader(gtx, th, el)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return i.layoutSlider(gtx, th, &i.red, color.NRGBA{R: 210, G: 90, B: 90, A: 255})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return i.layoutSlider(gtx, th, &i.green, color.NRGBA{R: 90, G: 190, B: 90, A: 255})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return i.layoutSlider(gtx, th, &i.blue, color.NRGBA{R: 100, G: 130, B: 220, A: 255})
		}),
		sp,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return i.layoutNumber(gtx, th)
		}),
		sp,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return i.layoutAuthorsHeader(gtx, th)
		}),
	}

	for _, row := range i.authors {
		r := row
		children = append(children,
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return i.layoutAuthorRow(gtx, th, r)
			}),
		)
	}

	children = append(children,
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return smallButton(gtx, th, &i.remove, "Remove", color.NRGBA{R: 153, A: 255})
		}),
	)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (i *Inspector) row(gtx layout.Context, th *material.Theme, name string, ed *widget.Editor) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := material.Label(th, 12, name)
			label.Color = color.NRGBA{R: 170, G: 175, B: 180, A: 255}
			dims := label.Layout(gtx)
			if w := gtx.Dp(70); dims.Size.X < w {
				dims.Size.X = w
			}
			return dims
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return field(gtx, th, ed, "")
		}),
	)
}

func (i *Inspector) layoutColorHeader(gtx layout.Context, th *material.Theme, el *core.Element) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceBetween}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := material.Label(th, 12, "Embed Color")
			label.Color = color.NRGBA{R: 170, G: 175, B: 180, A: 255}
			return label.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					r, g, b := el.RGB()
					sz := gtx.Dp(14)
					rect := image.Rect(0, 0, sz, sz)
					paint.FillShape(gtx.Ops, color.NRGBA{R: r, G: g, B: b, A: 255}, clip.Rect(rect).Op())
					return layout.Dimensions{Size: image.Point{X: sz, Y: sz}}
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, fmt.Sprintf("#%06X", el.Color&0xFFFFFF))
					label.Color = color.NRGBA{R: 200, G: 205, B: 210, A: 255}
					return label.Layout(gtx)
				}),
			)
		}),
	)
}

func (i *Inspector) layoutSlider(gtx layout.Context, th *material.Theme, f *widget.Float, tint color.NRGBA) layout.Dimensions {
	s := material.Slider(th, f)
	s.Color = tint
	return s.Layout(gtx)
}

func (i *Inspector) layoutNumber(gtx layout.Context, th *material.Theme) layout.Dimensions {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			cb := material.CheckBox(th, &i.hasNum, "Atomic Number")
			cb.TextSize = 12
			cb.Size = unit.Dp(16)
			cb.Color = color.NRGBA{R: 170, G: 175, B: 180, A: 255}
			cb.IconColor = color.NRGBA{R: 200, G: 205, B: 210, A: 255}
			return cb.Layout(gtx)
		}),
	}
	if i.hasNum.Value {
		children = append(children,
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return field(gtx, th, &i.number, "0")
			}),
		)
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}

func (i *Inspector) layoutAuthorsHeader(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceBetween}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := material.Label(th, 12, "Authors")
			label.Color = color.NRGBA{R: 170, G: 175, B: 180, A: 255}
			return label.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return smallButton(gtx, th, &i.addBtn, "+", color.NRGBA{R: 55, G: 58, B: 65, A: 255})
		}),
	)
}

func (i *Inspector) layoutAuthorRow(gtx layout.Context, th *material.Theme, row *authorRow) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return field(gtx, th, &row.ed, "")
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return smallButton(gtx, th, &row.del, "-", color.NRGBA{R: 55, G: 58, B: 65, A: 255})
		}),
	)
}

// editorChanged drains an editor's events and reports whether its text
// changed.
func editorChanged(gtx layout.Context, ed *widget.Editor) bool {
	changed := false
	for {
		e, ok := ed.Update(gtx)
		if !ok {
			break
		}
		if _, ok := e.(widget.ChangeEvent); ok {
			changed = true
		}
	}
	return changed
}

// field draws an editor inside a dark input box.
func field(gtx layout.Context, th *material.Theme, ed *widget.Editor, hint string) layout.Dimensions {
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
			paint.FillShape(gtx.Ops, color.NRGBA{R: 28, G: 30, B: 34, A: 255}, clip.Rect(rect).Op())
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Left: unit.Dp(6), Right: unit.Dp(6), Top: unit.Dp(4), Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				e := material.Editor(th, ed, hint)
				e.TextSize = 12
				e.Color = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
				e.HintColor = color.NRGBA{R: 120, G: 125, B: 130, A: 255}
				return e.Layout(gtx)
			})
		},
	)
}

// smallButton is a compact filled button used by the side panel.
func smallButton(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, bg color.NRGBA) layout.Dimensions {
	if btn.Hovered() {
		bg.R = minU8(bg.R+25, 255)
		bg.G = minU8(bg.G+25, 255)
		bg.B = minU8(bg.B+25, 255)
	}
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				size := gtx.Constraints.Min
				if min := gtx.Dp(22); size.X < min {
					size.X = min
				}
				if min := gtx.Dp(22); size.Y < min {
					size.Y = min
				}
				rect := image.Rect(0, 0, size.X, size.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: size}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8), Top: unit.Dp(3), Bottom: unit.Dp(3)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, text)
					label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
					return label.Layout(gtx)
				})
			},
		)
	})
}
