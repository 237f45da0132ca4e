// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/draw"
)

// ImageToRGBA returns the given image as an *image.RGBA,
// converting only if necessary.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rimg, ok := img.(*image.RGBA); ok {
		return rimg
	}
	rimg := image.NewRGBA(img.Bounds())
	draw.Draw(rimg, rimg.Bounds(), img, img.Bounds().Min, draw.Src)
	return rimg
}
