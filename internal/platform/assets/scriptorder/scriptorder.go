// Package scriptorder resolves the ordered script list for the full
// (non-minified) application bundle.
//
// The production bundle is concatenated and minified offline; debug pages
// include every source script individually instead, in an order that
// satisfies the declared dependencies. That order is maintained in a
// script manifest next to the sources, so resolution here is a manifest
// read rather than a graph walk.
package scriptorder

import (
	"context"
	"io/fs"

	"github.com/reliefgrid/platform/internal/platform/assets/manifest"
)

// Manifest resolves script order from a manifest file on disk.
type Manifest struct {
	// Path locates the script manifest file.
	Path string
}

// Scripts returns the ordered script paths listed in the manifest.
func (m Manifest) Scripts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return manifest.Read(m.Path)
}

// FS resolves script order from a manifest inside an fs.FS, for embedded
// bundles and tests.
type FS struct {
	FS   fs.FS
	Path string
}

// Scripts returns the ordered script paths listed in the manifest.
func (m FS) Scripts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return manifest.ReadFS(m.FS, m.Path)
}
