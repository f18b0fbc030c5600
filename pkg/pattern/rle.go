package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingHeader reports RLE input that ran out of lines before a header
// could be found.
var ErrMissingHeader = errors.New("rle input has no header line")

// UnknownDirectiveError reports a metadata line whose directive character is
// not one of N, C, c or O.
type UnknownDirectiveError struct {
	Directive rune
}

func (e *UnknownDirectiveError) Error() string {
	return fmt.Sprintf("unknown metadata directive %q in rle input", e.Directive)
}

// UnexpectedCharError reports a body character outside the RLE alphabet.
type UnexpectedCharError struct {
	Char rune
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q in rle cell data", e.Char)
}

// DecodeRLE parses run-length encoded pattern text.
//
// Leading #-lines carry metadata: #N names the pattern, #C/#c append a
// description line, #O sets the author. The first line after the metadata
// block is the header; when it carries "x = " and "y = " the declared
// bounding box is recorded, otherwise the line is consumed with the bounds
// left unset. The remaining lines are $-separated cell rows, terminated by
// an optional "!". Input ending without "!" yields whatever was decoded up
// to that point.
func DecodeRLE(src string) (*Pattern, error) {
	p := &Pattern{}
	lines := splitLines(src)

	i := 0
	descSet := false
	for ; i < len(lines); i++ {
		line := lines[i]
		if !strings.HasPrefix(line, "#") {
			break
		}
		rest := []rune(line[1:])
		if len(rest) == 0 {
			continue
		}
		switch rest[0] {
		case 'N':
			if name := strings.TrimSpace(string(rest[1:])); name != "" {
				p.Name = name
			}
		case 'C', 'c':
			desc := strings.TrimSpace(string(rest[1:]))
			if descSet {
				p.Description += "\n" + desc
			} else {
				p.Description = desc
				descSet = true
			}
		case 'O':
			p.Author = strings.TrimSpace(string(rest[1:]))
		default:
			return nil, &UnknownDirectiveError{Directive: rest[0]}
		}
	}

	if i >= len(lines) {
		return nil, ErrMissingHeader
	}
	if err := p.parseHeader(lines[i]); err != nil {
		return nil, err
	}
	i++

	var body strings.Builder
	for ; i < len(lines); i++ {
		body.WriteString(lines[i])
	}

	y := 0
	for _, row := range strings.Split(body.String(), "$") {
		amount := 0
		x := 0
		for _, c := range row {
			switch {
			case c == 'b' || c == '.':
				if amount == 0 {
					x++
				} else {
					x += amount
					amount = 0
				}
			case c == 'o' || c == 'A':
				if amount == 0 {
					p.Cells = append(p.Cells, Point{X: x, Y: y})
					x++
				} else {
					for n := 0; n < amount; n++ {
						p.Cells = append(p.Cells, Point{X: x + n, Y: y})
					}
					x += amount
					amount = 0
				}
			case c >= '0' && c <= '9':
				amount = amount*10 + int(c-'0')
			case c == '!':
				return p, nil
			default:
				return nil, &UnexpectedCharError{Char: c}
			}
		}
		// A run count left over at the end of a row segment belongs to the
		// row separator and advances the cursor by that many rows.
		if amount != 0 {
			y += amount
		} else {
			y++
		}
	}

	return p, nil
}

// parseHeader reads the declared bounding box from a header line of the
// shape "x = m, y = n[, rule = ...]". A line without that shape is consumed
// without setting the bounds.
func (p *Pattern) parseHeader(line string) error {
	if !strings.Contains(line, "x = ") || !strings.Contains(line, "y = ") {
		return nil
	}
	fields := strings.SplitN(line, ", ", 3)
	if len(fields) < 2 {
		return errors.Errorf("malformed rle header %q", line)
	}
	x, err := strconv.Atoi(strings.ReplaceAll(fields[0], "x = ", ""))
	if err != nil {
		return errors.Wrapf(err, "malformed rle header %q", line)
	}
	y, err := strconv.Atoi(strings.ReplaceAll(fields[1], "y = ", ""))
	if err != nil {
		return errors.Wrapf(err, "malformed rle header %q", line)
	}
	p.Width, p.Height = x, y
	return nil
}

// splitLines splits on newlines, tolerating CRLF endings and dropping the
// empty fragment a trailing newline would otherwise produce.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
