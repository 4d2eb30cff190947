package web

import (
	"net/http"
	"path/filepath"

	"go.opentelemetry.io/otel"

	"github.com/reliefgrid/platform/internal/platform/assets/scriptorder"
	"github.com/reliefgrid/platform/internal/services/web/platform/assets"
	webi18n "github.com/reliefgrid/platform/internal/services/web/platform/i18n"
	"github.com/reliefgrid/platform/internal/services/web/platform/pagestate"
	"github.com/reliefgrid/platform/internal/services/web/platform/weberror"
	"github.com/reliefgrid/platform/internal/services/web/templates"
)

// NewHandler builds the HTTP handler for the web server.
func NewHandler(config Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", dashboardHandler(config))
	staticPrefix := "/" + config.AppName + "/static/"
	mux.Handle("GET "+staticPrefix, http.StripPrefix(staticPrefix,
		http.FileServer(http.Dir(filepath.Join(config.Root, "static")))))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// dashboardHandler renders the operations dashboard: themed stylesheets,
// the script includes registered by the page widgets, and the location
// filter.
func dashboardHandler(config Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := otel.Tracer("reliefgrid/web")
		ctx, span := tracer.Start(r.Context(), "web.dashboard")
		defer span.End()

		lang := webi18n.ResolveLanguage(w, r)
		state := pagestate.New(pagestate.Options{
			AppName:  config.AppName,
			Root:     config.Root,
			Theme:    config.Theme,
			Language: lang,
			Build:    config.build(),
			Source:   config.source(),
		})
		ctx = pagestate.WithState(ctx, state)

		stylesheetLinks, err := assets.ThemeStylesheets(state)
		if err != nil {
			weberror.WriteError(w, r, err)
			return
		}

		var headScripts []string
		if state.Build() == pagestate.BuildDebug {
			resolver := scriptorder.Manifest{Path: assets.ScriptManifestPath(config.Root)}
			headScripts, err = assets.BundleScripts(ctx, state, resolver)
			if err != nil {
				weberror.WriteError(w, r, err)
				return
			}
		}

		query := r.URL.Query()
		assets.RegisterDataTableScripts(state, assets.DataTableOptions{
			Responsive:      query.Get("responsive") != "0",
			VariableColumns: query.Get("varcols") == "1",
		})
		assets.RegisterMapKit(state, assets.MapKitOptions{ThemeStylesheet: config.MapKitTheme})
		assets.RegisterUnderscore(state)

		widget := templates.LocationFilter(templates.LocationFilterValues{
			Country: query.Get("country"),
			State:   query.Get("state"),
			Region:  query.Get("region"),
			City:    query.Get("city"),
		})
		page := templates.Page{
			Title:           "Operations Dashboard",
			Lang:            lang,
			AppName:         config.AppName,
			StylesheetLinks: stylesheetLinks,
			HeadScriptTags:  headScripts,
			Scripts:         state.Scripts(),
			StyleInjections: state.StyleInjections(),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := templates.Layout(page, widget).Render(ctx, w); err != nil {
			weberror.WriteError(w, r, err)
		}
	}
}
