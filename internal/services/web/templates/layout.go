// Package templates renders web pages and view fragments.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// mapKitStylesAnchorID anchors deferred map-kit stylesheet injection.
// The map-kit registration queues a snippet that inserts its resolved
// <link> tags after this element and removes it.
const mapKitStylesAnchorID = "mapkit-styles"

// Page carries the assembled include lists for one page render.
type Page struct {
	// Title is the document title.
	Title string
	// Lang is the resolved request locale for the html lang attribute.
	Lang string
	// AppName is the display name in the page header.
	AppName string
	// StylesheetLinks holds ready-to-embed <link> tags for the head,
	// in inclusion order. The tags are trusted HTML.
	StylesheetLinks []string
	// HeadScriptTags holds ready-to-embed <script> tags for the head,
	// used for the debug bundle. The tags are trusted HTML.
	HeadScriptTags []string
	// Scripts holds script URLs flushed at the end of the body, in
	// registration order.
	Scripts []string
	// StyleInjections holds DOM snippets run after page load, in
	// registration order.
	StyleInjections []string
}

// Layout renders the document shell around content.
func Layout(page Page, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		if _, err := fmt.Fprintf(w, `<!doctype html><html lang="%s"><head><meta charset="utf-8"><title>%s</title>`,
			templ.EscapeString(lang), templ.EscapeString(page.Title)); err != nil {
			return err
		}
		for _, link := range page.StylesheetLinks {
			if _, err := io.WriteString(w, link); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<style id="%s"></style>`, mapKitStylesAnchorID); err != nil {
			return err
		}
		for _, tag := range page.HeadScriptTags {
			if _, err := io.WriteString(w, tag); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</head><body>`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<header><h1>%s</h1></header><main>`, templ.EscapeString(page.AppName)); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}
		for _, script := range page.Scripts {
			if _, err := fmt.Fprintf(w, `<script src='%s'></script>`, script); err != nil {
				return err
			}
		}
		if err := writeStyleInjections(w, page.StyleInjections); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// writeStyleInjections flushes queued DOM snippets into one
// document-ready block.
func writeStyleInjections(w io.Writer, snippets []string) error {
	if len(snippets) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "<script>$(function(){"); err != nil {
		return err
	}
	for _, snippet := range snippets {
		if _, err := io.WriteString(w, snippet); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ";"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "});</script>")
	return err
}
