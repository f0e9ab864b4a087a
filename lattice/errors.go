// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a construction parameter outside its domain
// (variety < 1, size < 1, steps < 0, or a table too large to allocate).
// Returned before any allocation; retrying without fixing inputs is pointless.
var ErrInvalidParameter = errors.New("lattice: invalid parameter")

// ErrOutOfRange indicates a row/column lookup outside [0, Side()).
var ErrOutOfRange = errors.New("lattice: index out of range")

// invalidf wraps ErrInvalidParameter with the offending value.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
