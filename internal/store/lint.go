package store

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Lint checks every element section against the catalog schema and returns
// one message per problem. Problems here do not stop Load; they are for
// catalog curators. The error is non-nil only when the file itself cannot
// be parsed.
func Lint(path string) ([]string, error) {
	var doc map[string]toml.Primitive
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	var problems []string
	report := func(name, format string, args ...any) {
		problems = append(problems, fmt.Sprintf("element %q: ", name)+fmt.Sprintf(format, args...))
	}

	if _, ok := doc["tables"]; !ok {
		problems = append(problems, "missing [tables] section")
	}
	var imagePaths map[string]string
	if prim, ok := doc["tables"]; ok {
		if err := md.PrimitiveDecode(prim, &imagePaths); err != nil {
			problems = append(problems, fmt.Sprintf("[tables]: %v", err))
		}
	}

	for _, key := range md.Keys() {
		if len(key) != 1 || key[0] == "tables" {
			continue
		}
		name := key[0]
		var raw rawElement
		if err := md.PrimitiveDecode(doc[name], &raw); err != nil {
			report(name, "%v", err)
			continue
		}

		for _, required := range []string{"symbol", "pronouns", "author", "embed_color"} {
			if !md.IsDefined(name, required) {
				report(name, "missing key %q", required)
			}
		}
		hasTable := md.IsDefined(name, "table")
		hasPath := md.IsDefined(name, "path")
		switch {
		case hasTable && hasPath:
			report(name, "has both table and path")
		case !hasTable && !hasPath:
			report(name, "has neither table nor path")
		case hasTable:
			if _, ok := imagePaths[raw.Table]; !ok {
				report(name, "references unknown table %q", raw.Table)
			}
			if !md.IsDefined(name, "coordinates") {
				report(name, "placed on a table but missing coordinates")
			}
		}
		if raw.EmbedColor < 0 || raw.EmbedColor > 0xFFFFFF {
			report(name, "embed_color 0x%X outside 24-bit range", raw.EmbedColor)
		}
	}

	for _, key := range md.Undecoded() {
		if len(key) == 2 {
			report(key[0], "extraneous key %q", key[1])
		}
	}
	return problems, nil
}
