package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reliefgrid/platform/internal/services/web/platform/pagestate"
)

// mapKitLatchKey guards against duplicate map-kit registration within one
// request.
const mapKitLatchKey = "mapkit"

// mapKitCDNBase is the published map-kit distribution used when the
// deployment opts into CDN assets.
const mapKitCDNBase = "//cdn.jsdelivr.net/npm/mapkit-ui@3.4.1"

// MapKitOptions carries deployment-level map-kit configuration.
type MapKitOptions struct {
	// ThemeStylesheet names an optional theme stylesheet under
	// static/themes, overriding the bundled gray theme. The minified
	// variant is always served: a trailing ".css" becomes ".min.css".
	ThemeStylesheet string
}

// RegisterMapKit queues the map UI toolkit scripts and stylesheets.
//
// Map rendering happens too late in page assembly to add stylesheets to
// the document head, so the resolved <link> tags are queued as a
// DOM-injection snippet that replaces the #mapkit-styles anchor after
// load. Registration is latched: repeated calls on the same request are
// no-ops. The latch is set after all appends so a latched state always
// holds the complete registration.
func RegisterMapKit(state *pagestate.State, opts MapKitOptions) {
	if state.Registered(mapKitLatchKey) {
		return
	}

	var themeCSS string
	if theme := strings.TrimSpace(opts.ThemeStylesheet); theme != "" {
		theme = strings.TrimSuffix(theme, ".css") + ".min.css"
		themeCSS = cssLink(fmt.Sprintf("/%s/static/themes/%s", state.AppName(), theme))
	}

	base := mapKitCDNBase
	if state.Source() == pagestate.SourceLocal {
		base = staticScriptURL(state, "mapkit")
	}

	var adapter, mainJS, mainCSS string
	if state.Build() == pagestate.BuildDebug {
		adapter = base + "/adapter/jquery/mapkit-jquery-adapter-debug.js"
		mainJS = base + "/mapkit-all-debug.js"
		mainCSS = cssLink(base + "/resources/css/mapkit-all-notheme.css")
		if themeCSS == "" {
			themeCSS = cssLink(base + "/resources/css/theme-gray.css")
		}
	} else {
		adapter = base + "/adapter/jquery/mapkit-jquery-adapter.js"
		mainJS = base + "/mapkit-all.js"
		// Minified stylesheets are bundled locally regardless of the
		// script source.
		if themeCSS != "" {
			mainCSS = cssLink(staticScriptURL(state, "mapkit/resources/css/mapkit-all-notheme.min.css"))
		} else {
			mainCSS = cssLink(staticScriptURL(state, "mapkit/resources/css/theme-gray.min.css"))
		}
	}

	state.AppendScript(adapter)
	state.AppendScript(mainJS)

	if localeScript := mapKitLocaleScript(state, base); localeScript != "" {
		state.AppendScript(localeScript)
	}

	if themeCSS != "" {
		state.AppendStyleInjection(fmt.Sprintf(`$('#mapkit-styles').after("%s").after("%s").remove()`, themeCSS, mainCSS))
	} else {
		state.AppendStyleInjection(fmt.Sprintf(`$('#mapkit-styles').after("%s").remove()`, mainCSS))
	}

	state.SetRegistered(mapKitLatchKey)
}

// mapKitLocaleScript returns the localized strings script URL when the
// deployment ships one for the request language.
func mapKitLocaleScript(state *pagestate.State, base string) string {
	lang := strings.TrimSpace(state.Language())
	if lang == "" {
		return ""
	}
	name := "mapkit-lang-" + lang + ".js"
	localPath := filepath.Join(state.Root(), "static", "scripts", "mapkit", "locale", name)
	if _, err := os.Stat(localPath); err != nil {
		return ""
	}
	return base + "/locale/" + name
}
