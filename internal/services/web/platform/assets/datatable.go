package assets

import (
	"github.com/reliefgrid/platform/internal/services/web/platform/pagestate"
)

// DataTableOptions selects optional data-table extensions.
type DataTableOptions struct {
	// Responsive includes the responsive-tables extension.
	Responsive bool
	// VariableColumns includes the variable-columns extension.
	VariableColumns bool
}

// RegisterDataTableScripts queues the data-table scripts on the page
// state: core engine, responsive extension, variable-columns extension,
// then the wrapper, in that order. Extensions are included only when
// enabled, so 2 to 4 scripts are queued.
func RegisterDataTableScripts(state *pagestate.State, opts DataTableOptions) {
	ext := ".min.js"
	if state.Build() == pagestate.BuildDebug {
		ext = ".js"
	}

	state.AppendScript(staticScriptURL(state, "jquery.dataTables"+ext))
	if opts.Responsive {
		state.AppendScript(staticScriptURL(state, "jquery.dataTables.responsive"+ext))
	}
	if opts.VariableColumns {
		state.AppendScript(staticScriptURL(state, "ui/columns"+ext))
	}
	state.AppendScript(staticScriptURL(state, "ui/datatable"+ext))
}
