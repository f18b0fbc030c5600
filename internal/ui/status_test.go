package ui

import (
	"strings"
	"testing"
)

func TestStatusBarContents(t *testing.T) {
	bar := StatusBar(Status{
		Pattern:    "Glider",
		Generation: 42,
		Population: 5,
		Paused:     true,
		Mode:       "full",
	}, 80)

	for _, want := range []string{"Glider", "gen 42", "pop 5", "paused", "paint full"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar %q missing %q", bar, want)
		}
	}
}

func TestStatusBarRunningState(t *testing.T) {
	bar := StatusBar(Status{Pattern: "random soup"}, 40)
	if !strings.Contains(bar, "running") {
		t.Errorf("status bar %q should report running", bar)
	}
}
