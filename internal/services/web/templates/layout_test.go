package templates

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func textComponent(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestLayoutPlacesIncludesInDocumentOrder(t *testing.T) {
	t.Parallel()

	markup := renderToString(t, func(ctx context.Context, w *strings.Builder) error {
		return Layout(Page{
			Title:           "Dashboard",
			Lang:            "pt-BR",
			AppName:         "ReliefGrid",
			StylesheetLinks: []string{"<link href='/relief/static/styles/a.css' rel='stylesheet' type='text/css'/>"},
			HeadScriptTags:  []string{"<script src='/relief/static/scripts/jquery.js'></script>"},
			Scripts:         []string{"/relief/static/scripts/underscore.js"},
		}, textComponent("<p>body</p>")).Render(ctx, w)
	})

	if !strings.Contains(markup, `<html lang="pt-BR">`) {
		t.Fatalf("markup missing lang attribute:\n%s", markup)
	}
	head := markup[:strings.Index(markup, "</head>")]
	if !strings.Contains(head, "/relief/static/styles/a.css") {
		t.Fatalf("stylesheet link should be in head:\n%s", markup)
	}
	if !strings.Contains(head, "/relief/static/scripts/jquery.js") {
		t.Fatalf("head script should be in head:\n%s", markup)
	}
	body := markup[strings.Index(markup, "<body>"):]
	if !strings.Contains(body, "<p>body</p>") {
		t.Fatalf("content missing from body:\n%s", markup)
	}
	if strings.Index(body, "<p>body</p>") > strings.Index(body, "underscore.js") {
		t.Fatalf("pending scripts must follow content:\n%s", markup)
	}
}

func TestLayoutRendersMapKitStylesAnchor(t *testing.T) {
	t.Parallel()

	markup := renderToString(t, func(ctx context.Context, w *strings.Builder) error {
		return Layout(Page{Title: "Dashboard"}, nil).Render(ctx, w)
	})

	if !strings.Contains(markup, `<style id="mapkit-styles"></style>`) {
		t.Fatalf("markup missing injection anchor:\n%s", markup)
	}
}

func TestLayoutFlushesStyleInjectionsIntoReadyBlock(t *testing.T) {
	t.Parallel()

	markup := renderToString(t, func(ctx context.Context, w *strings.Builder) error {
		return Layout(Page{
			Title:           "Dashboard",
			StyleInjections: []string{`$('#mapkit-styles').remove()`},
		}, nil).Render(ctx, w)
	})

	if !strings.Contains(markup, `<script>$(function(){$('#mapkit-styles').remove();});</script>`) {
		t.Fatalf("markup missing document-ready injection block:\n%s", markup)
	}
}

func TestLayoutOmitsReadyBlockWithoutInjections(t *testing.T) {
	t.Parallel()

	markup := renderToString(t, func(ctx context.Context, w *strings.Builder) error {
		return Layout(Page{Title: "Dashboard"}, nil).Render(ctx, w)
	})

	if strings.Contains(markup, "$(function(){") {
		t.Fatalf("unexpected injection block:\n%s", markup)
	}
}

func TestLayoutDefaultsLang(t *testing.T) {
	t.Parallel()

	markup := renderToString(t, func(ctx context.Context, w *strings.Builder) error {
		return Layout(Page{Title: "Dashboard"}, nil).Render(ctx, w)
	})

	if !strings.Contains(markup, `<html lang="en-US">`) {
		t.Fatalf("markup missing default lang:\n%s", markup)
	}
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	markup := renderToString(t, func(ctx context.Context, w *strings.Builder) error {
		return ErrorPage(500, "").Render(ctx, w)
	})

	if !strings.Contains(markup, "<h1>500</h1>") {
		t.Fatalf("error page missing status heading:\n%s", markup)
	}
	if !strings.Contains(markup, "Internal Server Error") {
		t.Fatalf("error page missing status text:\n%s", markup)
	}
}

func TestErrorPageEscapesMessage(t *testing.T) {
	t.Parallel()

	markup := renderToString(t, func(ctx context.Context, w *strings.Builder) error {
		return ErrorPage(500, "<script>alert(1)</script>").Render(ctx, w)
	})

	if strings.Contains(markup, "<script>alert(1)</script>") {
		t.Fatalf("error message was not escaped:\n%s", markup)
	}
}
