// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package favicon generates circular favicons from a single source image.

Each favicon is the source resized to a square with Lanczos resampling, then
masked to the circle inscribed in that square and saved as PNG. Pixels outside
the circle are fully transparent, pixels inside are fully opaque.
*/
package favicon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Generate reads the image at src, resizes it to size×size, applies a
// circular alpha mask and writes the result as PNG to dst, creating parent
// directories of dst if needed. An existing file at dst is overwritten.
//
// Non-square sources are stretched to fill the square.
func Generate(src, dst string, size int) error {
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}

	resized := imaging.Resize(img, size, size, imaging.Lanczos)
	ApplyMask(resized, Circle(size))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return writePNG(dst, resized)
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
