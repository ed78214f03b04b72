package http

import (
	"crypto-analysis/internal/dto"
	"crypto-analysis/pkg/logger"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed web/*.html
var webFS embed.FS

type templateRenderer struct {
	templates *template.Template
}

func (t *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

func newTemplateRenderer() *templateRenderer {
	return &templateRenderer{
		templates: template.Must(template.ParseFS(webFS, "web/*.html")),
	}
}

type pageData struct {
	Options dto.FormOptions
	Request dto.DashboardRequest
}

func (h *HttpAPIHandler) SetupPage() {
	h.echo.Renderer = newTemplateRenderer()
	h.echo.GET("/", h.index)
}

// index serves the dashboard shell. Widget values from the query are echoed
// back into the form; the charts themselves are fetched from the API.
func (h *HttpAPIHandler) index(c echo.Context) error {
	opts := h.service.DashboardService.FormOptions()

	req, err := h.bindDashboardRequest(c)
	if err != nil {
		h.log.DebugContext(c.Request().Context(), "Ignoring invalid page query", logger.ErrorField(err))
		req = opts.DefaultRequest()
		req.Symbol = opts.Symbols[0]
	}

	return c.Render(http.StatusOK, "index.html", pageData{Options: opts, Request: req})
}
