// Package pattern decodes textual Game of Life pattern files into sparse
// live-cell coordinate sets plus their metadata.
package pattern

// Point is a signed cell coordinate relative to the pattern's own origin,
// the top-left corner of its bounding box.
type Point struct {
	X int
	Y int
}

// Pattern is the decoded form of a pattern file. Coordinates are local to
// the pattern; placing it on a grid is the caller's concern.
type Pattern struct {
	Cells       []Point
	Name        string
	Description string
	Author      string

	// Width and Height hold the bounding box declared by the file header.
	// Both are zero when the header omitted one.
	Width  int
	Height int
}
