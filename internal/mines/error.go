package mines

import "errors"

// ErrInvalidSettings is returned when a board cannot be built from the
// requested dimensions and mine count.
var ErrInvalidSettings = errors.New("invalid game settings")
