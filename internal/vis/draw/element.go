package draw

import (
	"image/color"

	"gioui.org/layout"

	"github.com/tessella-works/tessella/internal/core"
	"github.com/tessella-works/tessella/internal/vis/interact"
)

var (
	outlineShadow = color.NRGBA{A: 26}                          // black at 0.1
	outlineLight  = color.NRGBA{R: 255, G: 255, B: 255, A: 26}  // white at 0.1
	hoverFill     = color.NRGBA{R: 255, G: 255, B: 255, A: 51}  // white at 0.2
)

// Overlays draws the per-element markers. Elements get a faint outline
// around their hit box once zoomed past 1:1; the hovered element swaps the
// outline for a bright filled highlight one pixel larger. Stroke width
// follows the zoom so the outline stays one world-pixel wide.
func Overlays(gtx layout.Context, elements []*core.Element, hovered *core.Element, cam *interact.Camera, viewport core.Vec) {
	width := float32(cam.Zoom)
	for _, el := range elements {
		min, max := el.HitBox()
		if el == hovered {
			hmin := toScreen(cam.WorldToScreen(min.Sub(core.V(1, 1)), viewport))
			hmax := toScreen(cam.WorldToScreen(max.Add(core.V(1, 1)), viewport))
			fillRect(gtx, hmin, hmax, hoverFill)
			strokeRect(gtx, hmin, hmax, width, ElementColor(el, 255))
			continue
		}
		if cam.Zoom <= 1.01 {
			continue
		}
		smin := toScreen(cam.WorldToScreen(min, viewport))
		smax := toScreen(cam.WorldToScreen(max, viewport))
		strokeRect(gtx, smin, smax, width, outlineShadow)
		strokeRect(gtx, smin, smax, width, outlineLight)
		strokeRect(gtx, smin, smax, width, ElementColor(el, 153))
	}
}
