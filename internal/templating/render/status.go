package render

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/domain"
)

// Outer indentation and the trailing spaces after </html> are part of the page.
const statusPageHead = `
    <!doctype html>
    <html lang="en">
    <head>
        <meta charset="UTF-8">
        <title>Secure Webapp Backend Status</title>
        <style>
            body { font-family: Arial, sans-serif; margin: 40px; }
            h1 { color: #2c3e50; }
            ul { line-height: 1.6; }
            li strong { width: 150px; display: inline-block; }
        </style>
    </head>
    <body>
        <h1>Secure Webapp Backend Running!</h1>
        <h2>Deployment Info:</h2>
        <ul>
            `

const statusPageTail = `
        </ul>
    </body>
    </html>
    `

// strictPolicy strips all markup; bluemonday policies are safe for
// concurrent use once built.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeValue strips markup from v and HTML-escapes what remains.
func SanitizeValue(v string) string {
	return strictPolicy.Sanitize(v)
}

// StatusPage returns the status page for info as a templ component.
func StatusPage(info domain.DeploymentInfo, mode domain.RenderMode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, StatusPageHTML(info, mode))
		return err
	})
}

// StatusPageHTML renders the status page. In RenderVerbatim mode values are
// inserted unchanged; in RenderSanitize mode they pass through SanitizeValue.
func StatusPageHTML(info domain.DeploymentInfo, mode domain.RenderMode) string {
	var b strings.Builder
	b.WriteString(statusPageHead)
	for _, e := range info {
		value := e.Value
		if mode == domain.RenderSanitize {
			value = SanitizeValue(value)
		}
		b.WriteString("<li><strong>")
		b.WriteString(e.Label)
		b.WriteString(":</strong> ")
		b.WriteString(value)
		b.WriteString("</li>")
	}
	b.WriteString(statusPageTail)
	return b.String()
}
