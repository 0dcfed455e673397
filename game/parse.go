package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLayout = errors.New("invalid board layout")

// ParseBoard builds a board from a text layout, one line per row:
//
//	'.' blank, '#' occupied, '1' Player1, '2' Player2
//
// Blank lines and surrounding whitespace are ignored. A player missing from the layout is unplaced.
func ParseBoard(layout string, active Player) (*Board, error) {
	if active != Player1 && active != Player2 {
		return nil, fmt.Errorf("active player %d: %w", active, ErrInvalidLayout)
	}

	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty layout: %w", ErrInvalidLayout)
	}

	b := NewBoard(len(lines), len(lines[0]))
	b.active = active
	for r, line := range lines {
		if len(line) != b.cols {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", r, len(line), b.cols, ErrInvalidLayout)
		}
		for c, ch := range line {
			p := Position{Row: r, Col: c}
			switch ch {
			case '.':
			case '#':
				b.occupied[b.index(p)] = true
				b.plies++
			case '1', '2':
				i := Player(ch - '0').index()
				if b.placed[i] {
					return nil, fmt.Errorf("player %c placed twice: %w", ch, ErrInvalidLayout)
				}
				b.placed[i] = true
				b.locations[i] = p
				b.occupied[b.index(p)] = true
				b.plies++
			default:
				return nil, fmt.Errorf("unexpected cell %q at %s: %w", ch, p, ErrInvalidLayout)
			}
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed layouts; it panics on error.
func MustParseBoard(layout string, active Player) *Board {
	b, err := ParseBoard(layout, active)
	if err != nil {
		panic(err)
	}
	return b
}
