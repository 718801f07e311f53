// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/numerics/matrix"
)

// ErrSingular reports a pivot with |p| <= tolerance. It wraps matrix.ErrSingular,
// so either sentinel matches through errors.Is.
var ErrSingular = fmt.Errorf("gauss: no unique solution: %w", matrix.ErrSingular)
