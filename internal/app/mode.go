package app

// Mode selects which logical grid rows a mouse press at a terminal cell
// paints. Each terminal row stacks two grid rows, so a press at terminal
// row r targets grid row 2r, 2r+1 or both.
type Mode int

const (
	// ModeUpperHalf paints the upper of the two stacked grid rows.
	ModeUpperHalf Mode = iota
	// ModeLowerHalf paints the lower of the two stacked grid rows.
	ModeLowerHalf
	// ModeFullBlock paints both stacked grid rows.
	ModeFullBlock

	modeCount
)

// ParseMode maps a flag value to a Mode, defaulting to ModeUpperHalf.
func ParseMode(s string) Mode {
	switch s {
	case "lower":
		return ModeLowerHalf
	case "full":
		return ModeFullBlock
	default:
		return ModeUpperHalf
	}
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

func (m Mode) String() string {
	switch m {
	case ModeLowerHalf:
		return "lower"
	case ModeFullBlock:
		return "full"
	default:
		return "upper"
	}
}

// gridRows returns the logical grid rows targeted by a press at the given
// terminal row.
func (m Mode) gridRows(termRow int) []int {
	switch m {
	case ModeLowerHalf:
		return []int{2*termRow + 1}
	case ModeFullBlock:
		return []int{2 * termRow, 2*termRow + 1}
	default:
		return []int{2 * termRow}
	}
}
