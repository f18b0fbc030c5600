package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kdheepak/game-of-life/internal/app"
	"github.com/kdheepak/game-of-life/pkg/pattern"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var pat *pattern.Pattern
	if path := flag.Arg(0); path != "" {
		p, err := pattern.FromFile(path)
		if err != nil {
			log.Fatalf("load pattern: %v", err)
		}
		pat = p
	}

	prog := tea.NewProgram(app.New(cfg, pat), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		log.Fatal(err)
	}
}
