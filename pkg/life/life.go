// Package life implements a toroidal Conway's Game of Life universe with
// per-cell age tracking.
package life

import (
	"math"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/kdheepak/game-of-life/pkg/pattern"
)

// State is the two-valued life state of a cell.
type State uint8

const (
	// Dead marks an unoccupied cell.
	Dead State = iota
	// Alive marks an occupied cell.
	Alive
)

// Cell pairs a life state with the number of consecutive generations the
// cell has held that state. Age resets to zero whenever the state flips and
// saturates instead of overflowing.
type Cell struct {
	State State
	Age   uint16
}

// Universe owns a width×height toroidal grid of cells and advances it one
// generation at a time. It is not safe for concurrent use; a single driver
// is expected to deliver events to it sequentially.
type Universe struct {
	w, h int
	cur  []Cell
	nxt  []Cell
	seed *pattern.Pattern
}

// New returns an empty Universe. The grid is allocated by Init. When p is
// non-nil its cells seed every Init call, otherwise Init fills the grid at
// random.
func New(p *pattern.Pattern) *Universe {
	return &Universe{seed: p}
}

// Init allocates a fresh w×h grid of dead cells and applies the seeding
// policy: stamp the pattern centered on the grid midpoint, or randomize
// every cell with probability one half when no pattern was supplied.
// Re-invoking Init, as on a terminal resize, discards the previous grid
// entirely. Dimensions below 1 are clamped to 1.
func (u *Universe) Init(w, h int, seed int64) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	u.w, u.h = w, h
	u.cur = make([]Cell, w*h)
	u.nxt = make([]Cell, w*h)

	if u.seed != nil {
		u.stamp(u.seed)
		return
	}
	rng := newRNG(seed)
	for i := range u.cur {
		if rng.Bool() {
			u.cur[i].State = Alive
		}
	}
}

// stamp translates the pattern so its origin lands on the grid midpoint and
// marks its cells alive. Cells falling outside the grid are dropped; a
// centered pattern may legitimately overhang a small grid.
func (u *Universe) stamp(p *pattern.Pattern) {
	for _, pt := range p.Cells {
		row := u.h/2 + pt.Y
		col := u.w/2 + pt.X
		if row < 0 || row >= u.h || col < 0 || col >= u.w {
			continue
		}
		u.cur[row*u.w+col] = Cell{State: Alive}
	}
}

// Width returns the grid width in cells. It is zero before the first Init.
func (u *Universe) Width() int { return u.w }

// Height returns the grid height in cells.
func (u *Universe) Height() int { return u.h }

// At reads the cell at (row, col) with toroidal wrapping, so any integer
// pair is addressable.
func (u *Universe) At(row, col int) Cell {
	row = (row%u.h + u.h) % u.h
	col = (col%u.w + u.w) % u.w
	return u.cur[row*u.w+col]
}

// SetAlive forces the cell at (row, col) to Alive with age zero. Unlike
// pattern stamping, out-of-range coordinates are a caller error and are
// rejected rather than wrapped or clamped.
func (u *Universe) SetAlive(row, col int) error {
	if row < 0 || row >= u.h || col < 0 || col >= u.w {
		return errors.Errorf("cell (%d,%d) out of range for %dx%d grid", row, col, u.w, u.h)
	}
	u.cur[row*u.w+col] = Cell{State: Alive}
	return nil
}

// Population returns the number of live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		if c.State == Alive {
			n++
		}
	}
	return n
}

// Tick advances the universe by one generation. The next generation is
// computed entirely from a snapshot of the current one, sharded across
// worker goroutines by row band, then swapped in.
func (u *Universe) Tick() {
	var eg errgroup.Group
	workers := runtime.NumCPU()
	band := (u.h + workers - 1) / workers
	for i := 0; i < workers; i++ {
		start := i * band
		end := min(start+band, u.h)
		if start >= u.h {
			break
		}
		eg.Go(func() error {
			for row := start; row < end; row++ {
				for col := 0; col < u.w; col++ {
					idx := row*u.w + col
					u.nxt[idx] = nextCell(u.cur[idx], u.liveNeighbors(row, col))
				}
			}
			return nil
		})
	}
	// Workers never fail; Wait only fences the pass.
	_ = eg.Wait()
	u.cur, u.nxt = u.nxt, u.cur
}

// liveNeighbors counts live cells in the Moore neighborhood of (row, col),
// wrapping at the grid edges.
func (u *Universe) liveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + u.h) % u.h
			c := (col + dc + u.w) % u.w
			if u.cur[r*u.w+c].State == Alive {
				n++
			}
		}
	}
	return n
}

// nextCell applies the transition rules in precedence order. The later
// cases are fallbacks, so the order matters.
func nextCell(c Cell, neighbors int) Cell {
	switch {
	case c.State == Alive && neighbors < 2:
		// Underpopulation.
		return Cell{State: Dead}
	case c.State == Alive && neighbors <= 3:
		return Cell{State: Alive, Age: satIncr(c.Age)}
	case c.State == Alive:
		// Overpopulation.
		return Cell{State: Dead}
	case neighbors == 3:
		// Birth.
		return Cell{State: Alive}
	default:
		return Cell{State: Dead, Age: satIncr(c.Age)}
	}
}

func satIncr(age uint16) uint16 {
	if age == math.MaxUint16 {
		return age
	}
	return age + 1
}
