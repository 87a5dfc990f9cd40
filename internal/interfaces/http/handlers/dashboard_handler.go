package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/opportunity-canvas/internal/config"
	apperrors "github.com/turtacn/opportunity-canvas/pkg/errors"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

// DashboardHandler renders the single-page dashboard.  The page loads the
// table, range, and figure from the JSON APIs and draws the 3D chart with
// Plotly.js.
type DashboardHandler struct {
	cfg  config.DashboardConfig
	tmpl *template.Template
}

func NewDashboardHandler(cfg config.DashboardConfig) (*DashboardHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "parse dashboard template")
	}
	return &DashboardHandler{cfg: cfg, tmpl: tmpl}, nil
}

type dashboardPage struct {
	Title       string
	Theme       string
	Opportunity string
	Author      string
}

// Index serves the dashboard page.
func (h *DashboardHandler) Index(c *gin.Context) {
	page := dashboardPage{
		Title:       h.cfg.Title,
		Theme:       h.cfg.Theme,
		Opportunity: h.cfg.Opportunity,
		Author:      h.cfg.Author,
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.Execute(c.Writer, page); err != nil {
		_ = c.Error(err)
	}
}
