// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"testing"

	"github.com/solidgeom/engine/astnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertionFailureSurfacesLocation(t *testing.T) {
	log := NewLog()
	loc := astnode.Location{File: "part.scad", Line: 7, Column: 1}

	err := log.Emit(Message{Group: Error, Kind: AssertionFailed, Text: "nope", Loc: &loc})
	require.Error(t, err)

	msg, ok := err.(Message)
	require.True(t, ok)
	assert.Equal(t, AssertionFailed, msg.Kind)
	assert.Equal(t, 7, msg.Loc.Line)
	assert.Contains(t, err.Error(), "nope")
	assert.Contains(t, err.Error(), "7")
}

func TestWarningsDeduplicateByTextAndLocation(t *testing.T) {
	log := NewLog()
	loc := astnode.Location{File: "a.scad", Line: 3}
	msg := Message{Group: Warning, Kind: DimensionMismatch, Text: "dup", Loc: &loc}

	assert.NoError(t, log.Emit(msg))
	assert.NoError(t, log.Emit(msg))
	assert.Len(t, log.Messages(), 1)
}

func TestHardWarningsPromoteToFatal(t *testing.T) {
	log := NewLog()
	log.HardWarnings = true
	err := log.Emit(Message{Group: Warning, Kind: KernelFailure, Text: "fallback"})
	require.Error(t, err)
	msg := err.(Message)
	assert.Equal(t, HardWarning, msg.Kind)
}

func TestNonFatalWarningWithoutHardWarningsReturnsNil(t *testing.T) {
	log := NewLog()
	err := log.Emit(Message{Group: Warning, Kind: KernelFailure, Text: "fallback"})
	assert.NoError(t, err)
}
