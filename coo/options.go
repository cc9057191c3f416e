// SPDX-License-Identifier: MIT

// Package coo: functional configuration for constructors and converters.
//
// Design:
//   - settings is the single source of truth for per-matrix knobs.
//   - Defaults are deterministic and documented; no globals beyond the
//     default warning logger.
//   - Option constructors panic only on nonsensical arguments (programmer
//     error); runtime paths return sentinel errors instead.

package coo

import "github.com/charmbracelet/log"

// WarnFunc receives non-fatal warnings (currently only the redundant
// re-index case) as a message plus structured key/value pairs.
type WarnFunc func(msg string, keyvals ...any)

// panicNilWarnHandler is the programmer-error message for WithWarnHandler.
const panicNilWarnHandler = "coo: WithWarnHandler: handler must be non-nil"

// defaultWarnf routes warnings to the process logger. Libraries embedding
// coo into quiet pipelines should override via WithWarnHandler.
func defaultWarnf(msg string, keyvals ...any) {
	log.Warn(msg, keyvals...)
}

// settings aggregates all knobs applied at construction time. Matrices
// carry their settings through every derived value (clone semantics).
type settings struct {
	warnf WarnFunc
}

// Option mutates construction settings. Safe to apply repeatedly.
type Option func(*settings)

// WithWarnHandler replaces the default warning sink (charmbracelet/log).
// Pass a capture function in tests or a no-op to silence warnings.
// Panics when handler is nil.
func WithWarnHandler(handler WarnFunc) Option {
	if handler == nil {
		panic(panicNilWarnHandler)
	}

	return func(s *settings) { s.warnf = handler }
}

// newSettings resolves defaults, then applies opts in order (last wins).
func newSettings(opts ...Option) settings {
	s := settings{warnf: defaultWarnf}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}
