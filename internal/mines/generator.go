package mines

import (
	"fmt"
	"strings"
)

// Settings describe the shape of a board and how many mines it holds.
type Settings struct {
	Rows, Columns, Mines int
}

var (
	Beginner     = Settings{Rows: 9, Columns: 9, Mines: 10}
	Intermediate = Settings{Rows: 16, Columns: 16, Mines: 40}
	Expert       = Settings{Rows: 16, Columns: 30, Mines: 99}
)

var presets = map[string]Settings{
	"beginner":     Beginner,
	"intermediate": Intermediate,
	"expert":       Expert,
}

// Preset looks up named settings, case-insensitively.
func Preset(name string) (Settings, bool) {
	s, ok := presets[strings.ToLower(name)]
	return s, ok
}

func (s Settings) Unpack() (rows int, columns int, mines int) {
	return s.Rows, s.Columns, s.Mines
}

func (s Settings) Cells() int {
	return s.Rows * s.Columns
}

// SafeCells is the number of cells that must be opened to win.
func (s Settings) SafeCells() int {
	return s.Cells() - s.Mines
}

// Validate reports whether a board with at least one safe cell can be
// built from s.
func (s Settings) Validate() error {
	switch {
	case s.Rows < 1:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidSettings, s.Rows)
	case s.Columns < 1:
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidSettings, s.Columns)
	case s.Mines < 0:
		return fmt.Errorf("%w: mine count must not be negative, got %d", ErrInvalidSettings, s.Mines)
	case s.Mines >= s.Cells():
		return fmt.Errorf(
			"%w: %d mines do not fit a %dx%d board",
			ErrInvalidSettings, s.Mines, s.Rows, s.Columns,
		)
	}
	return nil
}

func (s Settings) String() string {
	return fmt.Sprintf("%d:%d:%d", s.Rows, s.Columns, s.Mines)
}

// ParseSettings is the inverse of [Settings.String]. The result is validated.
func ParseSettings(seed string) (Settings, error) {
	var s Settings
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &s.Rows, &s.Columns, &s.Mines)
	if n != 3 || err != nil {
		return Settings{}, fmt.Errorf(
			`%w: malformed seed (seed = "%s", n = %d, err = %v)`,
			ErrInvalidSettings, seed, n, err,
		)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
