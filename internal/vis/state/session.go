// Package state holds the mutable editing session shared by the widgets.
package state

import (
	"image"
	"strings"

	"go.uber.org/zap"

	"github.com/tessella-works/tessella/internal/core"
)

// Session is the state of one editor run: the catalog being edited, the
// decoded table canvases, the active table and the unsaved-changes flag.
// It is owned by the frame goroutine and is not safe for concurrent use.
type Session struct {
	Catalog  *core.Catalog
	Canvases map[string]*image.NRGBA // keyed by table name

	ActiveTable string

	hidden []string
	dirty  bool
	logger *zap.Logger
}

// NewSession builds a session over cat. startTable selects the initially
// active table and falls back to the first table in the catalog when no
// table carries that name. hidden lists substrings of table names that
// VisibleTables filters out.
func NewSession(cat *core.Catalog, canvases map[string]*image.NRGBA, startTable string, hidden []string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		Catalog:     cat,
		Canvases:    canvases,
		ActiveTable: startTable,
		hidden:      hidden,
		logger:      logger,
	}
	if cat.Table(startTable) == nil && len(cat.Tables) > 0 {
		s.ActiveTable = cat.Tables[0].Name
	}
	return s
}

// Table returns the active table, or nil when the catalog is empty.
func (s *Session) Table() *core.Table {
	return s.Catalog.Table(s.ActiveTable)
}

// Canvas returns the decoded image of the active table, or nil when the
// image failed to load.
func (s *Session) Canvas() *image.NRGBA {
	return s.Canvases[s.ActiveTable]
}

// VisibleTables lists the table names shown in the toolbar, in catalog
// order, skipping names that contain a hidden substring.
func (s *Session) VisibleTables() []string {
	var names []string
outer:
	for _, t := range s.Catalog.Tables {
		for _, h := range s.hidden {
			if h != "" && strings.Contains(t.Name, h) {
				continue outer
			}
		}
		names = append(names, t.Name)
	}
	return names
}

// SwitchTable makes name the active table and reports whether it exists.
// Switching to the current table is allowed and still reports true.
func (s *Session) SwitchTable(name string) bool {
	if s.Catalog.Table(name) == nil {
		return false
	}
	s.ActiveTable = name
	return true
}

// Insert adds a fresh element to the active table and returns it. The
// element starts with empty metadata and the default color, positioned at
// the integer cell containing at. Returns nil when no table is active.
func (s *Session) Insert(at core.Vec) *core.Element {
	tab := s.Table()
	if tab == nil {
		return nil
	}
	el := tab.Insert(at)
	s.dirty = true
	s.logger.Info("element inserted",
		zap.String("table", tab.Name),
		zap.Float64("x", el.Pos.X),
		zap.Float64("y", el.Pos.Y))
	return el
}

// Remove deletes the element with the given id from the active table and
// reports whether anything was removed.
func (s *Session) Remove(id core.ElementID) bool {
	tab := s.Table()
	if tab == nil || !tab.Remove(id) {
		return false
	}
	s.dirty = true
	s.logger.Info("element removed", zap.String("table", tab.Name))
	return true
}

// MarkDirty records an unsaved change, for edits applied directly to
// catalog data by the widgets.
func (s *Session) MarkDirty() { s.dirty = true }

// ClearDirty resets the unsaved-changes flag after a successful save.
func (s *Session) ClearDirty() { s.dirty = false }

// Dirty reports whether the catalog has changes not yet written to disk.
func (s *Session) Dirty() bool { return s.dirty }
