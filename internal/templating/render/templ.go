package render

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer for templ templates
type TemplRenderer struct{}

// NewTemplRenderer creates a new templ renderer
func NewTemplRenderer() *TemplRenderer {
	return &TemplRenderer{}
}

// RenderTempl renders a templ component as a complete text/html response.
// The component is rendered into a buffer first so a failure never leaves a
// half-written 200 behind.
func (r *TemplRenderer) RenderTempl(c echo.Context, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(c.Request().Context(), &buf); err != nil {
		return fmt.Errorf("failed to render templ component: %w", err)
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTML)
	c.Response().WriteHeader(http.StatusOK)
	_, err := c.Response().Write(buf.Bytes())
	return err
}
