// SPDX-License-Identifier: MIT

package check

import (
	"errors"
	"fmt"
)

var (
	// ErrToleranceExceeded marks a Report whose errors exceed its Tolerance.
	ErrToleranceExceeded = errors.New("check: tolerance exceeded")

	// ErrInvalidConfig indicates a Config with non-positive sizes, an unknown check or an invalid tolerance.
	ErrInvalidConfig = errors.New("check: invalid config")

	// ErrUnknownCheck indicates a check name with no tolerance preset.
	ErrUnknownCheck = errors.New("check: unknown check")
)

// checkErrorf wraps err with an operation tag.
func checkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
