// SPDX-License-Identifier: MIT

package region

import "errors"

// ErrOutOfRange indicates a sample coordinate that resolves outside the
// lattice. Inputs within [0, size]×[0, size] never produce it.
var ErrOutOfRange = errors.New("region: coordinate out of range")
