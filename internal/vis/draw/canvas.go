package draw

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"

	"github.com/tessella-works/tessella/internal/core"
	"github.com/tessella-works/tessella/internal/vis/interact"
)

// CanvasCache keeps one GPU image op per table so canvases upload once,
// not every frame.
type CanvasCache struct {
	ops map[string]paint.ImageOp
}

func NewCanvasCache() *CanvasCache {
	return &CanvasCache{ops: map[string]paint.ImageOp{}}
}

// Op returns the cached image op for name, uploading img on first use.
// Canvases are pixel art; the nearest filter keeps them sharp when zoomed.
func (c *CanvasCache) Op(name string, img image.Image) paint.ImageOp {
	if op, ok := c.ops[name]; ok {
		return op
	}
	op := paint.NewImageOpFilter(img, paint.FilterNearest)
	c.ops[name] = op
	return op
}

// Drop forgets a cached canvas, for when a table image is replaced.
func (c *CanvasCache) Drop(name string) {
	delete(c.ops, name)
}

// Canvas paints the table image with the camera transform applied: world
// (0,0) lands at the canvas top-left and one world unit spans zoom screen
// pixels.
func Canvas(gtx layout.Context, imgOp paint.ImageOp, cam *interact.Camera, viewport core.Vec) {
	topLeft := cam.WorldToScreen(core.V(0, 0), viewport)
	zoom := float32(cam.Zoom)

	defer op.Affine(f32.NewAffine2D(
		zoom, 0, float32(topLeft.X),
		0, zoom, float32(topLeft.Y),
	)).Push(gtx.Ops).Pop()

	imgOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}
