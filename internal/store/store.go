// Package store reads and writes the element catalog file. The catalog is
// TOML with a meaningful layout: the [tables] section maps table names to
// image paths in display order, and each element is a top-level section
// keyed by its name, grouped under per-table banner comments with the
// untabled extras last. Load keeps that order and Save reproduces it.
package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tessella-works/tessella/internal/core"
)

type rawCoordinates struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

type rawElement struct {
	Table        string          `toml:"table"`
	Symbol       string          `toml:"symbol"`
	Pronouns     string          `toml:"pronouns"`
	Author       string          `toml:"author"`
	EmbedColor   int64           `toml:"embed_color"`
	AtomicNumber *int            `toml:"atomic_number"`
	Coordinates  *rawCoordinates `toml:"coordinates"`
	Path         string          `toml:"path"`
}

// Load parses the catalog at path. Tables come back in [tables] key order
// and elements in section order. Element IDs are minted fresh on every
// load; they are never persisted.
func Load(path string) (*core.Catalog, error) {
	var doc map[string]toml.Primitive
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	tablesPrim, ok := doc["tables"]
	if !ok {
		return nil, fmt.Errorf("catalog %s: missing [tables] section", path)
	}
	var imagePaths map[string]string
	if err := md.PrimitiveDecode(tablesPrim, &imagePaths); err != nil {
		return nil, fmt.Errorf("catalog %s: [tables]: %w", path, err)
	}

	cat := &core.Catalog{}
	byName := make(map[string]*core.Table, len(imagePaths))
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "tables" {
			continue
		}
		name := key[1]
		t := &core.Table{Name: name, ImagePath: imagePaths[name]}
		cat.Tables = append(cat.Tables, t)
		byName[name] = t
	}

	for _, key := range md.Keys() {
		if len(key) != 1 || key[0] == "tables" {
			continue
		}
		name := key[0]
		var raw rawElement
		if err := md.PrimitiveDecode(doc[name], &raw); err != nil {
			return nil, fmt.Errorf("catalog %s: element %q: %w", path, name, err)
		}

		el := &core.Element{
			ID:       core.NewElementID(),
			Name:     name,
			Symbol:   raw.Symbol,
			Pronouns: raw.Pronouns,
			Color:    uint32(raw.EmbedColor) & 0xFFFFFF,
			Number:   raw.AtomicNumber,
		}
		if raw.Author != "" {
			el.Authors = strings.Split(raw.Author, ", ")
		}
		if raw.Coordinates != nil {
			el.Pos = core.V(raw.Coordinates.X, raw.Coordinates.Y)
		}

		switch {
		case raw.Table != "":
			t := byName[raw.Table]
			if t == nil {
				return nil, fmt.Errorf("catalog %s: element %q references unknown table %q", path, name, raw.Table)
			}
			t.Elements = append(t.Elements, el)
		case raw.Path != "":
			cat.Extras = append(cat.Extras, &core.Extra{Element: el, Path: raw.Path})
		default:
			return nil, fmt.Errorf("catalog %s: element %q has neither table nor path", path, name)
		}
	}
	return cat, nil
}

// Save writes cat to path in the catalog layout. The whole file is built
// in memory first and renamed into place, so a failed save cannot truncate
// the previous catalog.
func Save(path string, cat *core.Catalog) error {
	var buf bytes.Buffer
	buf.WriteString("[tables]\n")
	for _, t := range cat.Tables {
		fmt.Fprintf(&buf, "%s = %s\n", encodeKey(t.Name), quote(t.ImagePath))
	}
	for _, t := range cat.Tables {
		fmt.Fprintf(&buf, "\n### %s ###\n\n\n", t.Name)
		for _, el := range t.Elements {
			writeElement(&buf, el, t.Name, "")
		}
	}
	buf.WriteString("\n### extras ###\n\n\n")
	for _, x := range cat.Extras {
		writeElement(&buf, x.Element, "", x.Path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.toml")
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// writeElement emits one element section. table and path are mutually
// exclusive: table placements carry table and coordinates keys, extras a
// path key.
func writeElement(buf *bytes.Buffer, el *core.Element, table, path string) {
	fmt.Fprintf(buf, "[%s]\n", quote(el.Name))
	if table != "" {
		fmt.Fprintf(buf, "table = %s\n", quote(table))
	}
	fmt.Fprintf(buf, "symbol = %s\n", quote(el.Symbol))
	fmt.Fprintf(buf, "pronouns = %s\n", quote(el.Pronouns))
	fmt.Fprintf(buf, "author = %s\n", quote(strings.Join(el.Authors, ", ")))
	fmt.Fprintf(buf, "embed_color = 0x%06X\n", el.Color)
	if table != "" {
		fmt.Fprintf(buf, "coordinates = { x = %s, y = %s }\n", num(el.Pos.X), num(el.Pos.Y))
	}
	if el.Number != nil {
		fmt.Fprintf(buf, "atomic_number = %d\n", *el.Number)
	}
	if path != "" {
		fmt.Fprintf(buf, "path = %s\n", quote(path))
	}
	buf.WriteString("\n")
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func quote(s string) string {
	return strconv.Quote(s)
}

// encodeKey renders a [tables] key, bare when TOML allows it.
func encodeKey(s string) string {
	if s == "" {
		return quote(s)
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return quote(s)
		}
	}
	return s
}
