// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("oops")
	assert.Equal(t, err, Log(err))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 42, Log1(42, nil))
	assert.Equal(t, 42, Log1(42, New("oops")))
}

func TestIs(t *testing.T) {
	base := New("base")
	assert.True(t, Is(fmt.Errorf("wrapping: %w", base), base))
	assert.False(t, Is(New("other"), base))
}

func TestMust(t *testing.T) {
	Must(nil)
	assert.Panics(t, func() { Must(New("oops")) })
}
