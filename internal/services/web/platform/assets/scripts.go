package assets

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reliefgrid/platform/internal/services/web/platform/pagestate"
)

// ScriptResolver yields the ordered script paths for the full
// (non-minified) application bundle. Paths are relative to
// static/scripts.
type ScriptResolver interface {
	Scripts(ctx context.Context) ([]string, error)
}

// ScriptManifestPath returns the conventional location of the script
// bundle manifest under the application root.
func ScriptManifestPath(root string) string {
	return filepath.Join(root, "static", "scripts", "tools", "scripts.cfg")
}

// BundleScripts returns one <script> tag per bundle script, in resolver
// order. Blank resolver entries are dropped.
func BundleScripts(ctx context.Context, state *pagestate.State, resolver ScriptResolver) ([]string, error) {
	entries, err := resolver.Scripts(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve bundle scripts: %w", err)
	}

	tags := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		tags = append(tags, scriptTag(staticScriptURL(state, entry)))
	}
	return tags, nil
}
