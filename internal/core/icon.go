package core

// IconSource identifies where an element's icon pixels live. It is a
// closed set: SlicedIcon or EmbeddedIcon.
type IconSource interface {
	isIconSource()
}

// SlicedIcon is cut from a table's canvas at the element's coordinates.
type SlicedIcon struct {
	Table string
	At    Vec
}

// EmbeddedIcon is a standalone image file.
type EmbeddedIcon struct {
	Path string
}

func (SlicedIcon) isIconSource()   {}
func (EmbeddedIcon) isIconSource() {}
