package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/boundaries/in"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/domain"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/templating/render"
)

// StatusHandler serves the deployment status page.
type StatusHandler struct {
	svc      in.StatusService
	renderer *render.TemplRenderer
	mode     domain.RenderMode
}

// NewStatusHandler creates a handler rendering svc's output in the given mode.
func NewStatusHandler(svc in.StatusService, renderer *render.TemplRenderer, mode domain.RenderMode) *StatusHandler {
	return &StatusHandler{
		svc:      svc,
		renderer: renderer,
		mode:     mode,
	}
}

// Status collects the deployment info for this request and renders it.
func (h *StatusHandler) Status(c echo.Context) error {
	info := h.svc.Collect(c.Request().Context())
	return h.renderer.RenderTempl(c, render.StatusPage(info, h.mode))
}
