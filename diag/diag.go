// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag implements the error/warning taxonomy: a closed set of
// condition kinds, each with its own fatal/recoverable surface, plus a
// deduplicating message sink shared by the evaluator and the engine
// session rather than a global message stack.
package diag

import "github.com/solidgeom/engine/astnode"

// Kind is the closed taxonomy of diagnostic conditions.
type Kind uint8

const (
	ParseError Kind = iota
	AssertionFailed
	Recursion
	LoopCnt
	KernelFailure
	DimensionMismatch
	ParameterOutOfRange
	CacheIO
	HardWarning
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case AssertionFailed:
		return "AssertionFailed"
	case Recursion:
		return "Recursion"
	case LoopCnt:
		return "LoopCnt"
	case KernelFailure:
		return "KernelFailure"
	case DimensionMismatch:
		return "DimensionMismatch"
	case ParameterOutOfRange:
		return "ParameterOutOfRange"
	case CacheIO:
		return "CacheIO"
	case HardWarning:
		return "HardWarning"
	default:
		return "Unknown"
	}
}

// Fatal reports whether k is fatal to the evaluation unit carrying it,
// independent of --hardwarnings.
func (k Kind) Fatal() bool {
	switch k {
	case ParseError, AssertionFailed, Recursion, LoopCnt:
		return true
	default:
		return false
	}
}

// Group is the user-visible message_group a Message belongs to.
type Group uint8

const (
	Warning Group = iota
	Error
	Echo
	Deprecated
	Trace
)

func (g Group) String() string {
	switch g {
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Echo:
		return "Echo"
	case Deprecated:
		return "Deprecated"
	case Trace:
		return "Trace"
	default:
		return "Unknown"
	}
}

// Message is one surfaced condition: a message group, the taxonomy kind
// that produced it (zero-value ParseError used for plain echoes/traces
// with no associated Kind), text, and an optional source location.
type Message struct {
	Group Group
	Kind  Kind
	Text  string
	Loc   *astnode.Location
}

func (m Message) key() string {
	s := m.Text
	if m.Loc != nil {
		s += "@" + m.Loc.String()
	}
	return s
}

// Error implements the error interface so a fatal Message can be
// returned and propagated directly through the traversal: assertion
// and recursion errors abort the walk rather than being swallowed.
func (m Message) Error() string {
	if m.Loc != nil {
		return m.Kind.String() + ": " + m.Text + " at " + m.Loc.String()
	}
	return m.Kind.String() + ": " + m.Text
}

// Log is the message sink: it deduplicates by text+location and optionally promotes every warning to fatal when
// HardWarnings is set.
type Log struct {
	HardWarnings bool

	seen     map[string]bool
	messages []Message
}

// NewLog returns an empty message log.
func NewLog() *Log {
	return &Log{seen: map[string]bool{}}
}

// Emit records msg, unless an identical (text, location) pair was
// already recorded. Returns a non-nil error when msg.Kind.Fatal() or
// (l.HardWarnings && msg.Group == Warning) — callers should treat a
// non-nil return as grounds to Abort the current traversal.
func (l *Log) Emit(msg Message) error {
	k := msg.key()
	if !l.seen[k] {
		l.seen[k] = true
		l.messages = append(l.messages, msg)
	}
	if msg.Kind.Fatal() {
		return msg
	}
	if l.HardWarnings && msg.Group == Warning {
		promoted := msg
		promoted.Kind = HardWarning
		return promoted
	}
	return nil
}

// Messages returns every distinct message recorded so far, in emission
// order.
func (l *Log) Messages() []Message { return l.messages }

// Clear empties the log without resetting HardWarnings.
func (l *Log) Clear() {
	l.seen = map[string]bool{}
	l.messages = nil
}
