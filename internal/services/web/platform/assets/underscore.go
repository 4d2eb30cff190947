package assets

import (
	"github.com/reliefgrid/platform/internal/services/web/platform/pagestate"
)

// underscoreCDNVersion pins the CDN-hosted underscore build to the copy
// bundled under static/scripts.
const underscoreCDNVersion = "1.13.6"

// RegisterUnderscore queues the underscore.js utility library.
//
// The resolved URL is appended at most once per request: repeated calls
// with the same page state are no-ops.
func RegisterUnderscore(state *pagestate.State) {
	debug := state.Build() == pagestate.BuildDebug

	var script string
	if state.Source() == pagestate.SourceCDN {
		if debug {
			script = "//cdnjs.cloudflare.com/ajax/libs/underscore.js/" + underscoreCDNVersion + "/underscore.js"
		} else {
			script = "//cdnjs.cloudflare.com/ajax/libs/underscore.js/" + underscoreCDNVersion + "/underscore-min.js"
		}
	} else {
		if debug {
			script = staticScriptURL(state, "underscore.js")
		} else {
			script = staticScriptURL(state, "underscore-min.js")
		}
	}

	if !state.HasScript(script) {
		state.AppendScript(script)
	}
}
