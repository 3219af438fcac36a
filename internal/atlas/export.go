package atlas

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/tessella-works/tessella/internal/core"
)

// Export writes every catalog icon to dir as an upscaled PNG named after
// its element. Table elements are sliced from their canvas; extras are
// read from their own file under imagesDir. Returns the number of icons
// written.
func Export(dir, imagesDir string, cat *core.Catalog, canvases map[string]*image.NRGBA, factor int, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	written := 0
	for _, t := range cat.Tables {
		canvas := canvases[t.Name]
		if canvas == nil {
			logger.Warn("skipping table without canvas", zap.String("table", t.Name))
			continue
		}
		for _, el := range t.Elements {
			icon := ScaleNearest(Slice(canvas, el.Pos), factor)
			path := filepath.Join(dir, IconFileName(el.Name))
			if err := SavePNG(path, icon); err != nil {
				return written, fmt.Errorf("export %s: %w", el.Name, err)
			}
			written++
		}
	}
	for _, x := range cat.Extras {
		src, err := LoadCanvas(filepath.Join(imagesDir, x.Path))
		if err != nil {
			return written, fmt.Errorf("export %s: %w", x.Element.Name, err)
		}
		path := filepath.Join(dir, IconFileName(x.Element.Name))
		if err := SavePNG(path, ScaleNearest(src, factor)); err != nil {
			return written, fmt.Errorf("export %s: %w", x.Element.Name, err)
		}
		written++
	}
	logger.Info("icons exported", zap.Int("count", written), zap.String("dir", dir))
	return written, nil
}

// IconFileName derives a stable file name from an element name.
func IconFileName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		b.WriteString("element")
	}
	return b.String() + ".png"
}
