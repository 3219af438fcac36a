// Package query resolves free-form element lookups the way the chat
// command does: by name first, then symbol, then atomic number.
package query

import (
	"strconv"
	"strings"

	"github.com/tessella-works/tessella/internal/core"
)

// Index is a snapshot of the catalog keyed for lookup. Rebuild it after
// editing; it does not track catalog changes.
type Index struct {
	byName   map[string]*core.Element
	bySymbol map[string]*core.Element
	byNumber map[int]*core.Element
}

// NewIndex builds lookup maps over every element, extras included. When
// two elements collide on a key the later one wins. Symbols match both as
// written and in typed form, so "c2" finds C₂.
func NewIndex(cat *core.Catalog) *Index {
	idx := &Index{
		byName:   map[string]*core.Element{},
		bySymbol: map[string]*core.Element{},
		byNumber: map[int]*core.Element{},
	}
	for _, el := range cat.AllElements() {
		idx.byName[strings.ToLower(el.Name)] = el
		if el.Symbol != "" {
			idx.bySymbol[strings.ToLower(el.Symbol)] = el
			idx.bySymbol[strings.ToLower(core.SymbolToInput(el.Symbol))] = el
		}
		if el.Number != nil {
			idx.byNumber[*el.Number] = el
		}
	}
	return idx
}

// Resolve finds the element named by q. Matching is case-insensitive and
// tries name, symbol, then atomic number for all-digit queries.
func (idx *Index) Resolve(q string) (*core.Element, bool) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil, false
	}
	if el, ok := idx.byName[q]; ok {
		return el, true
	}
	if el, ok := idx.bySymbol[q]; ok {
		return el, true
	}
	if isASCIIDecimal(q) {
		if n, err := strconv.Atoi(q); err == nil {
			if el, ok := idx.byNumber[n]; ok {
				return el, true
			}
		}
	}
	return nil, false
}

// Len reports how many distinct names are indexed.
func (idx *Index) Len() int { return len(idx.byName) }

func isASCIIDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
