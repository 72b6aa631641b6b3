// SPDX-License-Identifier: MIT
// Package: gridhub/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrNilGraph indicates Apply was called with a nil *core.Graph.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrEmptyID indicates a constructor received an empty vertex ID.
var ErrEmptyID = errors.New("builder: empty vertex id")

// ErrDuplicateID indicates a constructor received the same vertex ID twice
// where distinct IDs are required (Complete, Mesh).
var ErrDuplicateID = errors.New("builder: duplicate vertex id")

// ErrConstructFailed indicates a construction step could not proceed
// (nil constructor, core insertion failure).
var ErrConstructFailed = errors.New("builder: construction failed")
