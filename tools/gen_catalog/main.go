// Package main generates a synthetic element catalog with canvas images,
// for trying out the editor and CLI without real data.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/tessella-works/tessella/internal/atlas"
	"github.com/tessella-works/tessella/internal/core"
	"github.com/tessella-works/tessella/internal/store"
)

// Canvas geometry: elements sit on a grid of cells with a border around
// the whole canvas.
const (
	cell   = 64
	border = 8
)

var (
	syllables = []string{"ca", "to", "ne", "ri", "lu", "ma", "vex", "or", "ta", "zi", "pho", "del", "qui", "sol"}
	pronouns  = []string{"they/them", "she/her", "he/him", "it/its", "she/they", "he/they", "any"}
)

// generator produces elements with unique names and symbols.
type generator struct {
	rng     *rand.Rand
	names   map[string]bool
	symbols map[string]bool
	authors []string
}

func newGenerator(rng *rand.Rand) *generator {
	g := &generator{
		rng:     rng,
		names:   make(map[string]bool),
		symbols: make(map[string]bool),
	}
	for i := 0; i < 6; i++ {
		g.authors = append(g.authors, g.word(2))
	}
	return g
}

func (g *generator) word(n int) string {
	w := ""
	for i := 0; i < n; i++ {
		w += syllables[g.rng.Intn(len(syllables))]
	}
	return string(w[0]-'a'+'A') + w[1:]
}

func (g *generator) name() string {
	for {
		n := g.word(2 + g.rng.Intn(2))
		if !g.names[n] {
			g.names[n] = true
			return n
		}
	}
}

// symbol derives a short symbol from the name, disambiguating duplicates
// with a subscript digit the way the catalog format spells them.
func (g *generator) symbol(name string) string {
	base := name[:1]
	if len(name) > 2 && g.rng.Intn(2) == 0 {
		base = name[:2]
	}
	if !g.symbols[base] {
		g.symbols[base] = true
		return base
	}
	subscripts := []rune("₀₁₂₃₄₅₆₇₈₉")
	for i := 2; ; i++ {
		s := base + string(subscripts[i%10])
		if !g.symbols[s] {
			g.symbols[s] = true
			return s
		}
	}
}

func (g *generator) element() *core.Element {
	el := core.NewElement(core.Vec{})
	el.Name = g.name()
	el.Symbol = g.symbol(el.Name)
	el.Pronouns = pronouns[g.rng.Intn(len(pronouns))]
	el.Color = uint32(g.rng.Intn(0x1000000))
	n := 1 + g.rng.Intn(2)
	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		a := g.authors[g.rng.Intn(len(g.authors))]
		if !seen[a] {
			seen[a] = true
			el.Authors = append(el.Authors, a)
		}
	}
	return el
}

func newCheckerboard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			shade := uint8(40)
			if (x/8+y/8)%2 == 0 {
				shade = 46
			}
			img.SetNRGBA(x, y, color.NRGBA{R: shade, G: shade, B: shade, A: 255})
		}
	}
	return img
}

// paintIcon draws a flat placeholder icon at the element's coordinates: a
// dimmed fill, a bright border and some speckle so zooming has something
// to show.
func paintIcon(canvas *image.NRGBA, el *core.Element, rng *rand.Rand) {
	r, g, b := el.RGB()
	x0, y0 := int(el.Pos.X), int(el.Pos.Y)
	for dy := 0; dy < core.IconSize; dy++ {
		for dx := 0; dx < core.IconSize; dx++ {
			c := color.NRGBA{R: r / 3, G: g / 3, B: b / 3, A: 255}
			if dx < 2 || dy < 2 || dx >= core.IconSize-2 || dy >= core.IconSize-2 {
				c = color.NRGBA{R: r, G: g, B: b, A: 255}
			}
			canvas.SetNRGBA(x0+dx, y0+dy, c)
		}
	}
	for i := 0; i < 40; i++ {
		dx := 4 + rng.Intn(core.IconSize-8)
		dy := 4 + rng.Intn(core.IconSize-8)
		canvas.SetNRGBA(x0+dx, y0+dy, color.NRGBA{
			R: clamp255(int(r) + 90),
			G: clamp255(int(g) + 90),
			B: clamp255(int(b) + 90),
			A: 255,
		})
	}
}

func clamp255(v int) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	outputDir := flag.String("output", "testdata/catalog", "Output directory")
	cols := flag.Int("cols", 6, "Element columns per table")
	rows := flag.Int("rows", 4, "Element rows per table")
	extras := flag.Int("extras", 2, "Standalone elements with their own images")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	gen := newGenerator(rng)

	imagesDir := filepath.Join(*outputDir, "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	cat := &core.Catalog{}
	elements := 0

	for ti, name := range []string{"normal", "compact"} {
		table := &core.Table{Name: name, ImagePath: name + ".png"}
		canvas := newCheckerboard(*cols*cell+2*border, *rows*cell+2*border)

		number := 0
		for row := 0; row < *rows; row++ {
			for col := 0; col < *cols; col++ {
				el := gen.element()
				el.Pos = core.V(float64(border+col*cell), float64(border+row*cell))
				// The first table is the numbered one.
				if ti == 0 {
					number++
					n := number
					el.Number = &n
				}
				paintIcon(canvas, el, rng)
				table.Elements = append(table.Elements, el)
				elements++
			}
		}

		if err := atlas.SavePNG(filepath.Join(imagesDir, table.ImagePath), canvas); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing canvas %s: %v\n", table.ImagePath, err)
			os.Exit(1)
		}
		cat.Tables = append(cat.Tables, table)
	}

	for i := 0; i < *extras; i++ {
		el := gen.element()
		icon := newCheckerboard(core.IconSize, core.IconSize)
		paintIcon(icon, el, rng)

		path := "extras/" + atlas.IconFileName(el.Name)
		if err := atlas.SavePNG(filepath.Join(imagesDir, path), icon); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing extra icon %s: %v\n", path, err)
			os.Exit(1)
		}
		cat.Extras = append(cat.Extras, &core.Extra{Element: el, Path: path})
	}

	catalogPath := filepath.Join(*outputDir, "elements.toml")
	if err := store.Save(catalogPath, cat); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated: %s (%d tables, %d elements, %d extras)\n",
		catalogPath, len(cat.Tables), elements, len(cat.Extras))
}
