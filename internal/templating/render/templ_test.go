package render

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplRenderer_RenderTempl(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	component := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>ok</p>")
		return err
	})

	require.NoError(t, NewTemplRenderer().RenderTempl(c, component))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<p>ok</p>", rec.Body.String())
}

func TestTemplRenderer_RenderError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	component := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<p>partial")
		return errors.New("boom")
	})

	err := NewTemplRenderer().RenderTempl(c, component)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render templ component")
	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}
