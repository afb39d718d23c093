package game

import "github.com/pkg/errors"

// ErrInvalidConfig is wrapped by every error returned for a board or session
// configuration that cannot be played.
var ErrInvalidConfig = errors.New("invalid game configuration")

// AssertionError is the panic value used when a caller breaks a Board
// contract, such as passing an index outside the grid.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

func invalidConfig(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}
