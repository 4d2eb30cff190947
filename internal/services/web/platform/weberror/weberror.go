// Package weberror renders shared error responses for web pages.
package weberror

import (
	"log"
	"net/http"
	"strings"

	apperrors "github.com/reliefgrid/platform/internal/services/web/platform/errors"
	"github.com/reliefgrid/platform/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the error-page
// UX rather than a plain status response.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe error message. Internal detail such
// as filesystem paths stays in the log, not on the page.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteError logs err and writes the error page for its mapped status.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	if err != nil {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	page := templates.ErrorPage(statusCode, PublicMessage(err))
	if renderErr := page.Render(r.Context(), w); renderErr != nil {
		log.Printf("render error page: %v", renderErr)
	}
}
