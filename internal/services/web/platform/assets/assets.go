// Package assets assembles the CSS and JS includes for web pages.
//
// Helpers either return ready-to-embed HTML tag strings or queue script
// URLs and style-injection snippets on the request page state for the
// layout to flush at the end of the page. Returned strings are raw HTML:
// theme and language names must be validated upstream, nothing is
// escaped here.
package assets

import (
	"fmt"

	"github.com/reliefgrid/platform/internal/services/web/platform/pagestate"
)

// stylesheetLink builds a <link> tag for a stylesheet under static/styles.
func stylesheetLink(appName, name string) string {
	return fmt.Sprintf("<link href='/%s/static/styles/%s' rel='stylesheet' type='text/css'/>", appName, name)
}

// cssLink builds a <link> tag for an absolute stylesheet URL.
func cssLink(url string) string {
	return fmt.Sprintf("<link href='%s' rel='stylesheet' type='text/css'/>", url)
}

// scriptTag builds a <script> tag for an absolute script URL.
func scriptTag(url string) string {
	return fmt.Sprintf("<script src='%s'></script>", url)
}

// staticScriptURL maps a path under static/scripts to its served URL.
func staticScriptURL(state *pagestate.State, name string) string {
	return fmt.Sprintf("/%s/static/scripts/%s", state.AppName(), name)
}
