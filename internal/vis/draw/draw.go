// Package draw renders the workspace: the table canvas and the per-element
// overlays. Everything here works in screen space; callers map world
// coordinates through the camera first.
package draw

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/tessella-works/tessella/internal/core"
)

// rectPath traces an axis-aligned rectangle at float precision. Overlay
// rects sit on fractional screen coordinates at most zoom levels, so
// integer clip.Rect would jitter.
func rectPath(gtx layout.Context, min, max f32.Point) clip.PathSpec {
	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(min)
	p.LineTo(f32.Pt(max.X, min.Y))
	p.LineTo(max)
	p.LineTo(f32.Pt(min.X, max.Y))
	p.Close()
	return p.End()
}

func fillRect(gtx layout.Context, min, max f32.Point, col color.NRGBA) {
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: rectPath(gtx, min, max)}.Op())
}

func strokeRect(gtx layout.Context, min, max f32.Point, width float32, col color.NRGBA) {
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: rectPath(gtx, min, max), Width: width}.Op())
}

func toScreen(v core.Vec) f32.Point {
	return f32.Pt(float32(v.X), float32(v.Y))
}

// ElementColor converts an element's embed color to an NRGBA with the
// given alpha.
func ElementColor(el *core.Element, alpha uint8) color.NRGBA {
	r, g, b := el.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}
