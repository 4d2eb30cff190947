package assets

import (
	"fmt"
	"path/filepath"

	"github.com/reliefgrid/platform/internal/platform/assets/manifest"
	"github.com/reliefgrid/platform/internal/services/web/platform/pagestate"
)

// ThemeManifestPath returns the expected location of the theme CSS
// manifest for the active theme.
func ThemeManifestPath(root, theme string) string {
	return filepath.Join(root, "modules", "templates", theme, "css.cfg")
}

// ThemeStylesheets returns one <link> tag per stylesheet listed in the
// active theme's CSS manifest, in manifest order.
//
// A missing manifest is a deployment fault and fails the request: the
// returned error wraps manifest.MissingError carrying the expected path.
func ThemeStylesheets(state *pagestate.State) ([]string, error) {
	path := ThemeManifestPath(state.Root(), state.Theme())
	entries, err := manifest.Read(path)
	if err != nil {
		return nil, fmt.Errorf("resolve theme stylesheets for %q: %w", state.Theme(), err)
	}

	links := make([]string, 0, len(entries))
	for _, entry := range entries {
		links = append(links, stylesheetLink(state.AppName(), entry))
	}
	return links, nil
}
