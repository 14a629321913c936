// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context using %w, prefixed with the method tag.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates BuildGraph could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
