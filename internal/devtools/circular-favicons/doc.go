// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Circular-favicons generates the site favicons from a profile photo.

# Usage

	$ go tool circular-favicons

This tool reads client/public/profile.jpg, resizes it to every favicon size
the site needs (16, 32, 48, 180, 192 and 512 pixels), crops each one to a
circle and saves them as PNG images in both the "client/public" and "public"
directories. Existing favicons are overwritten.

It must be run from the repository root. If the profile photo is missing,
it exits with a non-zero status without writing anything. A favicon that
fails to generate is reported and skipped.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
