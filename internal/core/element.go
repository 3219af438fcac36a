package core

import (
	"strings"

	"github.com/google/uuid"
)

// Icon geometry shared by the editor, the atlas and persistence.
const (
	IconSize   = 48  // icons are 48x48 canvas pixels
	IconHalf   = 24  // offset from an icon corner to its center
	IconMargin = 1   // pixels of canvas kept around a sliced icon
	HitInset   = 0.5 // hit boxes shrink half a pixel on every side
)

// DefaultColor is the embed color assigned to freshly inserted elements.
const DefaultColor = 0xFF0000

// ElementID identifies an element for the lifetime of a session. IDs are
// assigned at load or creation and never persisted.
type ElementID uuid.UUID

// NewElementID returns a fresh random id.
func NewElementID() ElementID {
	return ElementID(uuid.New())
}

func (id ElementID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether id is the zero (no element) id.
func (id ElementID) IsZero() bool {
	return id == ElementID{}
}

// Element is a labeled 48x48 icon with display metadata. Elements owned by
// a Table carry integer canvas coordinates in Pos; standalone elements
// (wrapped in Extra) ignore Pos and bring their own image file.
type Element struct {
	ID       ElementID
	Name     string
	Symbol   string // display form with subscript digits, see SymbolToInput
	Pronouns string
	Authors  []string
	Color    uint32 // 24-bit RGB used for embeds and outlines
	Number   *int   // optional ordinal
	Pos      Vec    // canvas coordinates of the icon's top-left corner
}

// NewElement creates an empty element with a fresh id at the given canvas
// position. The position is floored: placement is always whole pixels.
func NewElement(pos Vec) *Element {
	return &Element{
		ID:    NewElementID(),
		Color: DefaultColor,
		Pos:   pos.Floor(),
	}
}

// Center returns the canvas point in the middle of the element's icon.
func (e *Element) Center() Vec {
	return e.Pos.Add(Vec{IconHalf, IconHalf})
}

// HitBox returns the half-open box used for pointer hit testing.
func (e *Element) HitBox() (a, b Vec) {
	a = e.Pos.Add(Vec{HitInset, HitInset})
	b = e.Pos.Add(Vec{IconSize - HitInset, IconSize - HitInset})
	return a, b
}

// RGB splits the element's 24-bit color into its channels.
func (e *Element) RGB() (r, g, b uint8) {
	return uint8(e.Color >> 16), uint8(e.Color >> 8), uint8(e.Color)
}

// Symbols use typographic subscripts in the catalog but are edited and
// queried with plain ASCII. The two alphabets map position for position.
const (
	symbolDisplay = "₀₁₂₃₄₅₆₇₈₉•×"
	symbolInput   = "0123456789+@"
)

var displayRunes = []rune(symbolDisplay)

// SymbolToInput converts a display symbol to its ASCII input form.
func SymbolToInput(s string) string {
	var b strings.Builder
	for _, r := range s {
		replaced := false
		for i, d := range displayRunes {
			if r == d {
				b.WriteByte(symbolInput[i])
				replaced = true
				break
			}
		}
		if !replaced {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SymbolFromInput converts an ASCII input symbol to its display form.
func SymbolFromInput(s string) string {
	var b strings.Builder
	for _, r := range s {
		if i := strings.IndexRune(symbolInput, r); i >= 0 {
			b.WriteRune(displayRunes[i])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
