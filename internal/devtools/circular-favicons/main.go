// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/logger"
	"go.astrophena.name/favicons/internal/favicon"
)

var errNotFound = errors.New("profile image not found")

func main() { cli.Main(new(app)) }

type app struct {
	dir string // used in tests
}

func (a *app) Run(ctx context.Context) error {
	src := filepath.Join(a.dir, favicon.Source)
	if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", errNotFound, src)
	}

	logger.Info(ctx, "creating circular favicons")
	favicon.GenerateAll(ctx, a.dir, favicon.Source, favicon.Icons)
	logger.Info(ctx, "all circular favicons created")

	return nil
}
