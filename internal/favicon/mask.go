// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package favicon

import "image"

// Circle returns a size×size mask that is opaque inside the circle inscribed
// in its bounds and transparent outside.
//
// A pixel belongs to the circle when its center lies within the radius,
// boundary included. There is no anti-aliasing: every pixel is either 0 or
// 255.
func Circle(size int) *image.Alpha {
	if size <= 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	// Coordinates are doubled so that pixel centers land on integers.
	r2 := size * size
	for y := 0; y < size; y++ {
		dy := 2*y + 1 - size
		for x := 0; x < size; x++ {
			dx := 2*x + 1 - size
			if dx*dx+dy*dy <= r2 {
				mask.Pix[mask.PixOffset(x, y)] = 0xff
			}
		}
	}
	return mask
}

// ApplyMask replaces the alpha channel of img with mask. Color channels are
// left untouched. Pixels of img not covered by mask become transparent.
func ApplyMask(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[img.PixOffset(x, y)+3] = mask.AlphaAt(x, y).A
		}
	}
}
