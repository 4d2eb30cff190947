package assets

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/reliefgrid/platform/internal/services/web/platform/pagestate"
)

type stubResolver struct {
	scripts []string
	err     error
}

func (s stubResolver) Scripts(context.Context) ([]string, error) {
	return s.scripts, s.err
}

func TestBundleScriptsMapsResolverOrderToTags(t *testing.T) {
	t.Parallel()

	state := pagestate.New(pagestate.Options{AppName: "relief"})
	resolver := stubResolver{scripts: []string{"jquery.js", "ui/widget.js"}}

	got, err := BundleScripts(context.Background(), state, resolver)
	if err != nil {
		t.Fatalf("BundleScripts() = %v", err)
	}
	want := []string{
		"<script src='/relief/static/scripts/jquery.js'></script>",
		"<script src='/relief/static/scripts/ui/widget.js'></script>",
	}
	if len(got) != len(want) {
		t.Fatalf("BundleScripts() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tag %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBundleScriptsDropsBlankEntries(t *testing.T) {
	t.Parallel()

	state := pagestate.New(pagestate.Options{AppName: "relief"})
	resolver := stubResolver{scripts: []string{"a.js", "", "   ", "b.js"}}

	got, err := BundleScripts(context.Background(), state, resolver)
	if err != nil {
		t.Fatalf("BundleScripts() = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("BundleScripts() = %v, want blank entries dropped", got)
	}
}

func TestBundleScriptsPropagatesResolverError(t *testing.T) {
	t.Parallel()

	state := pagestate.New(pagestate.Options{AppName: "relief"})
	wantErr := errors.New("manifest unreadable")

	_, err := BundleScripts(context.Background(), state, stubResolver{err: wantErr})
	if !errors.Is(err, wantErr) {
		t.Fatalf("BundleScripts() error = %v, want wrapped %v", err, wantErr)
	}
}

func TestScriptManifestPath(t *testing.T) {
	t.Parallel()

	got := ScriptManifestPath("/srv/app")
	want := filepath.Join("/srv/app", "static", "scripts", "tools", "scripts.cfg")
	if got != want {
		t.Fatalf("ScriptManifestPath = %q, want %q", got, want)
	}
}
