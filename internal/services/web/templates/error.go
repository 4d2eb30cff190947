package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorPage renders the shared error page for a status code.
func ErrorPage(statusCode int, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		statusText := http.StatusText(statusCode)
		if statusText == "" {
			statusText = http.StatusText(http.StatusInternalServerError)
		}
		if message == "" {
			message = statusText
		}
		_, err := fmt.Fprintf(w,
			`<!doctype html><html lang="en-US"><head><meta charset="utf-8"><title>%d %s</title></head>`+
				`<body><main class="error-page"><h1>%d</h1><p>%s</p></main></body></html>`,
			statusCode, templ.EscapeString(statusText), statusCode, templ.EscapeString(message))
		return err
	})
}
