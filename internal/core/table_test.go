package core

import "testing"

func testCatalog() *Catalog {
	normal := &Table{Name: "normal", ImagePath: "normal.png"}
	normal.Insert(V(0, 0)).Name = "Hydrogen"
	normal.Insert(V(48, 0)).Name = "Helium"

	weird := &Table{Name: "weird", ImagePath: "weird.png"}
	weird.Insert(V(96, 96)).Name = "Mystery"

	extra := &Extra{
		Element: &Element{ID: NewElementID(), Name: "Wanderer"},
		Path:    "wanderer.png",
	}
	return &Catalog{Tables: []*Table{normal, weird}, Extras: []*Extra{extra}}
}

func TestTableLookup(t *testing.T) {
	c := testCatalog()
	tab := c.Table("normal")
	if tab == nil {
		t.Fatal("table \"normal\" not found")
	}

	el := tab.Elements[1]
	if got := tab.IndexOf(el.ID); got != 1 {
		t.Errorf("IndexOf = %d, want 1", got)
	}
	if got := tab.ByID(el.ID); got != el {
		t.Errorf("ByID returned %v, want %v", got, el)
	}
	if got := tab.ByID(NewElementID()); got != nil {
		t.Errorf("ByID of unknown id = %v, want nil", got)
	}
	if got := c.Table("missing"); got != nil {
		t.Errorf("Table(\"missing\") = %v, want nil", got)
	}
}

func TestTableInsertRemove(t *testing.T) {
	tab := &Table{Name: "t"}
	a := tab.Insert(V(0, 0))
	b := tab.Insert(V(10.7, 20.2))

	if len(tab.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2", len(tab.Elements))
	}
	if b.Pos != V(10, 20) {
		t.Errorf("inserted at %v, want floored (10, 20)", b.Pos)
	}

	if !tab.Remove(a.ID) {
		t.Error("Remove of existing element returned false")
	}
	if tab.Remove(a.ID) {
		t.Error("second Remove of same id returned true")
	}
	if len(tab.Elements) != 1 || tab.Elements[0] != b {
		t.Errorf("after remove, Elements = %v", tab.Elements)
	}
}

func TestCatalogTableNames(t *testing.T) {
	c := testCatalog()
	names := c.TableNames()
	if len(names) != 2 || names[0] != "normal" || names[1] != "weird" {
		t.Errorf("TableNames = %v, want [normal weird]", names)
	}
}

func TestCatalogAllElements(t *testing.T) {
	c := testCatalog()
	all := c.AllElements()
	if len(all) != 4 {
		t.Fatalf("AllElements len = %d, want 4", len(all))
	}
	if all[0].Name != "Hydrogen" || all[3].Name != "Wanderer" {
		t.Errorf("AllElements order wrong: first %q, last %q", all[0].Name, all[3].Name)
	}
}

func TestCatalogSourceOf(t *testing.T) {
	c := testCatalog()

	placed := c.Tables[0].Elements[0]
	src := c.SourceOf(placed.ID)
	sliced, ok := src.(SlicedIcon)
	if !ok {
		t.Fatalf("SourceOf placed element = %T, want SlicedIcon", src)
	}
	if sliced.Table != "normal" || sliced.At != placed.Pos {
		t.Errorf("SlicedIcon = %+v, want table normal at %v", sliced, placed.Pos)
	}

	src = c.SourceOf(c.Extras[0].Element.ID)
	embedded, ok := src.(EmbeddedIcon)
	if !ok {
		t.Fatalf("SourceOf extra = %T, want EmbeddedIcon", src)
	}
	if embedded.Path != "wanderer.png" {
		t.Errorf("EmbeddedIcon.Path = %q", embedded.Path)
	}

	if src := c.SourceOf(NewElementID()); src != nil {
		t.Errorf("SourceOf unknown id = %v, want nil", src)
	}
}
