// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"testing"

	"cogentcore.org/uiframe/base/errors"
	"github.com/stretchr/testify/assert"
)

func TestSurfaceError(t *testing.T) {
	stale := []string{
		"Surface texture is outdated",
		"Surface timed out",
		"timeout acquiring next texture",
		"Surface was lost",
	}
	for _, es := range stale {
		err := surfaceError(fmt.Errorf("%s", es))
		assert.True(t, errors.Is(err, ErrSurfaceOutdated), es)
	}
	err := surfaceError(fmt.Errorf("device out of memory"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrSurfaceOutdated))
}

func TestSurfaceSetSize(t *testing.T) {
	sf := &Surface{}
	sf.Format.Defaults()
	sf.Format.Size = image.Pt(800, 600)

	// minimize: zero dimension is ignored
	sf.SetSize(image.Pt(0, 600))
	sf.SetSize(image.Pt(800, 0))
	assert.Equal(t, image.Pt(800, 600), sf.Size())
	assert.False(t, sf.needsConfig)

	// same size is a no-op
	sf.SetSize(image.Pt(800, 600))
	assert.False(t, sf.needsConfig)

	// a real resize is deferred to the next acquire
	sf.SetSize(image.Pt(1024, 768))
	assert.Equal(t, image.Pt(1024, 768), sf.Size())
	assert.True(t, sf.needsConfig)
}

func TestSurfaceHardware(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping GPU hardware test in short mode")
	}
	t.Skip("Need software GPU on CI")
	gp, dev, err := NoDisplayGPU()
	assert.NoError(t, err)
	defer gp.Release()
	defer dev.Release()
}
