// Package render packs pairs of vertically adjacent grid rows into terminal
// cells using half-block glyphs.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kdheepak/game-of-life/pkg/life"
)

// Age buckets only distinguish cells that just flipped from stable ones.
const (
	bucketDead = iota
	bucketYoung
	bucketOld
	bucketCount
)

var (
	young = lipgloss.Color("#FFD539")
	old   = lipgloss.Color("#CA204D")
)

// table holds the pre-rendered glyph for every (top, bottom) bucket pair.
var table [bucketCount][bucketCount]string

func init() {
	for top := 0; top < bucketCount; top++ {
		for bottom := 0; bottom < bucketCount; bottom++ {
			table[top][bottom] = composite(top, bottom)
		}
	}
}

// composite builds one terminal cell. A live top row renders as an upper
// half block with the bottom row carried in the background color, which
// covers the full-block case; a live bottom row alone renders as a lower
// half block; two dead rows render as a blank.
func composite(top, bottom int) string {
	switch {
	case top != bucketDead && bottom != bucketDead:
		return lipgloss.NewStyle().
			Foreground(bucketColor(top)).
			Background(bucketColor(bottom)).
			Render("▀")
	case top != bucketDead:
		return lipgloss.NewStyle().Foreground(bucketColor(top)).Render("▀")
	case bottom != bucketDead:
		return lipgloss.NewStyle().Foreground(bucketColor(bottom)).Render("▄")
	default:
		return " "
	}
}

func bucketColor(b int) lipgloss.Color {
	if b == bucketYoung {
		return young
	}
	return old
}

func bucket(c life.Cell) int {
	switch {
	case c.State != life.Alive:
		return bucketDead
	case c.Age == 0:
		return bucketYoung
	default:
		return bucketOld
	}
}

// Composite returns the terminal cell for two vertically stacked grid
// cells, the top one drawn in the upper half.
func Composite(top, bottom life.Cell) string {
	return table[bucket(top)][bucket(bottom)]
}
