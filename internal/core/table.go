package core

// Table is a named composite canvas image plus the ordered elements placed
// on it. Element order follows the catalog file and is preserved across
// saves.
type Table struct {
	Name      string
	ImagePath string // canvas image file, relative to the images directory
	Size      Vec    // canvas size in pixels, set when the image is decoded
	Elements  []*Element
}

// IndexOf returns the element's position in table order, or -1.
func (t *Table) IndexOf(id ElementID) int {
	for i, el := range t.Elements {
		if el.ID == id {
			return i
		}
	}
	return -1
}

// ByID resolves an element id to the owned element. Returns nil when the
// element is not on this table, deleted or otherwise.
func (t *Table) ByID(id ElementID) *Element {
	if i := t.IndexOf(id); i >= 0 {
		return t.Elements[i]
	}
	return nil
}

// Insert creates an empty element at pos (floored) and appends it.
func (t *Table) Insert(pos Vec) *Element {
	el := NewElement(pos)
	t.Elements = append(t.Elements, el)
	return el
}

// Remove deletes the element with the given id and reports whether
// anything was removed.
func (t *Table) Remove(id ElementID) bool {
	i := t.IndexOf(id)
	if i < 0 {
		return false
	}
	t.Elements = append(t.Elements[:i], t.Elements[i+1:]...)
	return true
}

// Extra is an element that is not placed on any table, backed by its own
// standalone image file.
type Extra struct {
	Element *Element
	Path    string
}

// Catalog is the whole element collection: tables in file order plus the
// standalone extras.
type Catalog struct {
	Tables []*Table
	Extras []*Extra
}

// Table returns the named table, or nil.
func (c *Catalog) Table(name string) *Table {
	for _, t := range c.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// TableNames lists table names in catalog order.
func (c *Catalog) TableNames() []string {
	names := make([]string, len(c.Tables))
	for i, t := range c.Tables {
		names[i] = t.Name
	}
	return names
}

// AllElements iterates every element in catalog order: each table's
// elements first, then the extras.
func (c *Catalog) AllElements() []*Element {
	var all []*Element
	for _, t := range c.Tables {
		all = append(all, t.Elements...)
	}
	for _, x := range c.Extras {
		all = append(all, x.Element)
	}
	return all
}

// SourceOf reports where an element's icon pixels come from: sliced out of
// its table's canvas, or an embedded standalone file. Returns nil for an
// unknown id.
func (c *Catalog) SourceOf(id ElementID) IconSource {
	for _, t := range c.Tables {
		if el := t.ByID(id); el != nil {
			return SlicedIcon{Table: t.Name, At: el.Pos}
		}
	}
	for _, x := range c.Extras {
		if x.Element.ID == id {
			return EmbeddedIcon{Path: x.Path}
		}
	}
	return nil
}
