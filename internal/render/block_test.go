package render

import (
	"strings"
	"testing"

	"github.com/kdheepak/game-of-life/pkg/life"
)

func TestCompositeGlyphSelection(t *testing.T) {
	alive := life.Cell{State: life.Alive}
	dead := life.Cell{State: life.Dead}

	cases := []struct {
		name        string
		top, bottom life.Cell
		glyph       string
	}{
		{"both alive", alive, alive, "▀"},
		{"top alive", alive, dead, "▀"},
		{"bottom alive", dead, alive, "▄"},
	}
	for _, tc := range cases {
		if got := Composite(tc.top, tc.bottom); !strings.Contains(got, tc.glyph) {
			t.Errorf("%s: Composite = %q, want glyph %q", tc.name, got, tc.glyph)
		}
	}

	if got := Composite(dead, dead); got != " " {
		t.Errorf("both dead: Composite = %q, want a plain blank", got)
	}
}

func TestCompositeIgnoresAgeOfDeadCells(t *testing.T) {
	fresh := life.Cell{State: life.Dead}
	stale := life.Cell{State: life.Dead, Age: 40}
	if Composite(fresh, fresh) != Composite(stale, stale) {
		t.Error("dead cells should render identically regardless of age")
	}
}

func TestCompositeBucketsAgeAsBinary(t *testing.T) {
	a := life.Cell{State: life.Alive, Age: 1}
	b := life.Cell{State: life.Alive, Age: 900}
	if Composite(a, a) != Composite(b, b) {
		t.Error("all non-zero ages fall in the same bucket")
	}
}
