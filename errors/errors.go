// Package errors provides error handling for the reflection transformer.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel comparison via Is/As
//
// Transformer error policy is recovery-first: nothing raised here is fatal to
// a compilation. Callers wrap at package boundaries and downgrade to a warning
// or an `any` emission per the component contracts.
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
	WithHint    = crdb.WithHint
)

// Error inspection
var (
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Common sentinel errors. Use with errors.Is for type-safe checks; wrap with
// errors.Wrap to add context while preserving the type.
var (
	// ErrUnresolved indicates an identifier had no reachable declaration.
	ErrUnresolved = New("unresolved reference")

	// ErrBadConfig indicates a reflection configuration file was present but
	// unparseable.
	ErrBadConfig = New("unparseable reflection config")
)
