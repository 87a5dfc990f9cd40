package handlers

import (
	"github.com/gin-gonic/gin"

	appcanvas "github.com/turtacn/opportunity-canvas/internal/application/canvas"
	domaincanvas "github.com/turtacn/opportunity-canvas/internal/domain/canvas"
)

// CanvasHandler serves the canvas table, impact range, and figure APIs.
type CanvasHandler struct {
	service *appcanvas.Service
}

func NewCanvasHandler(service *appcanvas.Service) *CanvasHandler {
	return &CanvasHandler{service: service}
}

// TableResponse is the canvas table payload.
type TableResponse struct {
	Columns []string           `json:"columns"`
	Rows    []domaincanvas.Row `json:"rows"`
	Count   int                `json:"count"`
}

// GetTable returns every loaded row together with the column order.
func (h *CanvasHandler) GetTable(c *gin.Context) {
	snap, err := h.service.Snapshot()
	if err != nil {
		respondError(c, err)
		return
	}
	rows := snap.Dataset.Rows()
	respondJSON(c, TableResponse{
		Columns: domaincanvas.Columns(),
		Rows:    rows,
		Count:   len(rows),
	})
}

// GetRange returns the default impact-range slider bounds and the observed
// Total Impact extremes.
func (h *CanvasHandler) GetRange(c *gin.Context) {
	r, err := h.service.Range()
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, r)
}

// GetFigure builds the 3D bubble-chart figure for the requested impact
// range.  min and max are optional query parameters; when absent the
// default range (which admits every row) is used.
func (h *CanvasHandler) GetFigure(c *gin.Context) {
	r, err := h.service.Range()
	if err != nil {
		respondError(c, err)
		return
	}
	min, err := floatQuery(c, "min", float64(r.Min))
	if err != nil {
		respondError(c, err)
		return
	}
	max, err := floatQuery(c, "max", float64(r.Max))
	if err != nil {
		respondError(c, err)
		return
	}
	fig, err := h.service.Figure(min, max)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, fig)
}
