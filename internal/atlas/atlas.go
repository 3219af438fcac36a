// Package atlas loads the composite table images and cuts per-element
// icons out of them. Icons are IconSize squares carrying a one pixel
// margin on every side, so a slice is 50x50 with the element at (1,1).
package atlas

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"github.com/tessella-works/tessella/internal/core"
)

// LoadCanvas decodes the image at path into NRGBA pixels.
func LoadCanvas(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open canvas: %w", err)
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode canvas %s: %w", path, err)
	}
	return img, nil
}

// Decode reads any registered image format from r as NRGBA pixels.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return toNRGBA(img), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Bounds().Min == image.Pt(0, 0) {
		return m
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// LoadAll decodes one canvas per catalog table from dir, keyed by table
// name, and records each table's pixel size on the table itself.
func LoadAll(dir string, cat *core.Catalog, logger *zap.Logger) (map[string]*image.NRGBA, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	canvases := make(map[string]*image.NRGBA, len(cat.Tables))
	for _, t := range cat.Tables {
		canvas, err := LoadCanvas(filepath.Join(dir, t.ImagePath))
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		b := canvas.Bounds()
		t.Size = core.V(float64(b.Dx()), float64(b.Dy()))
		canvases[t.Name] = canvas
		logger.Info("canvas loaded",
			zap.String("table", t.Name),
			zap.String("path", t.ImagePath),
			zap.Int("width", b.Dx()),
			zap.Int("height", b.Dy()))
	}
	return canvases, nil
}

// Slice cuts the icon whose top-left cell is at out of canvas, margin
// included. Parts of the slice outside the canvas come back transparent.
func Slice(canvas *image.NRGBA, at core.Vec) *image.NRGBA {
	const side = core.IconSize + 2*core.IconMargin
	dst := image.NewNRGBA(image.Rect(0, 0, side, side))
	origin := image.Pt(int(at.X)-core.IconMargin, int(at.Y)-core.IconMargin)
	draw.Draw(dst, dst.Bounds(), canvas, origin, draw.Src)
	return dst
}

// ScaleNearest blows img up by an integer factor without smoothing, which
// keeps pixel art crisp.
func ScaleNearest(img image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// PixelHex samples the canvas pixel containing the world point at and
// formats it as "#RRGGBB". ok is false outside the canvas.
func PixelHex(canvas *image.NRGBA, at core.Vec) (string, bool) {
	x, y := int(at.X), int(at.Y)
	if !image.Pt(x, y).In(canvas.Bounds()) {
		return "", false
	}
	c := canvas.NRGBAAt(x, y)
	return fmt.Sprintf("#%06X", uint32(c.R)<<16|uint32(c.G)<<8|uint32(c.B)), true
}

// SavePNG writes img to path, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
