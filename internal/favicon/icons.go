// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package favicon

import (
	"context"
	"log/slog"
	"path/filepath"

	"go.astrophena.name/base/logger"
)

// Source is the path of the image favicons are generated from, relative to
// the repository root.
const Source = "client/public/profile.jpg"

// Icon is a single favicon to generate.
type Icon struct {
	Size int    // width and height in pixels
	Path string // output path, relative to the repository root
}

// Icons lists every favicon the site needs. Each one is written to both the
// client and the server public directories.
var Icons = []Icon{
	{Size: 16, Path: "client/public/favicon-16x16.png"},
	{Size: 16, Path: "public/favicon-16x16.png"},
	{Size: 32, Path: "client/public/favicon-32x32.png"},
	{Size: 32, Path: "public/favicon-32x32.png"},
	{Size: 48, Path: "client/public/favicon-48.png"},
	{Size: 48, Path: "public/favicon-48.png"},
	{Size: 192, Path: "client/public/favicon-192.png"},
	{Size: 192, Path: "public/favicon-192.png"},
	{Size: 512, Path: "client/public/favicon-512.png"},
	{Size: 512, Path: "public/favicon-512.png"},
	{Size: 180, Path: "client/public/apple-touch-icon.png"},
	{Size: 180, Path: "public/apple-touch-icon.png"},
}

// GenerateAll generates each icon from src, resolving src and icon paths
// against dir. Failures are logged and don't stop the remaining icons from
// being generated.
func GenerateAll(ctx context.Context, dir, src string, icons []Icon) {
	src = filepath.Join(dir, src)
	for _, icon := range icons {
		path := filepath.Join(dir, icon.Path)
		if err := Generate(src, path, icon.Size); err != nil {
			logger.Error(ctx, "failed to create favicon",
				slog.String("path", path),
				slog.Any("err", err),
			)
			continue
		}
		logger.Info(ctx, "created circular favicon",
			slog.String("path", path),
			slog.Int("size", icon.Size),
		)
	}
}
