// Package chart builds the 3D bubble-chart dataset for the Opportunity
// Canvas.  The output is a figure-shaped document (data traces + layout)
// that the dashboard page hands directly to its rendering collaborator;
// this package never draws anything itself.
package chart

import (
	"strings"

	"github.com/turtacn/opportunity-canvas/internal/domain/canvas"
)

// Fixed figure options carried over from the source study.
const (
	DefaultTitle = "Opportunity Canvas - Findings 3D Plot (Size = Total Impact)"

	colorscale    = "Reds"
	colorbarTitle = "Sum of Constraints"
	markerOpacity = 0.8

	layoutHeight = 700
	layoutWidth  = 900

	hoverLineSep = "<br>"
)

// Figure is the complete chart document: one scatter3d trace plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single scatter3d marker series.
type Trace struct {
	Type      string   `json:"type"`
	Mode      string   `json:"mode"`
	X         []int    `json:"x"`
	Y         []int    `json:"y"`
	Z         []int    `json:"z"`
	Text      []string `json:"text"`
	HoverInfo string   `json:"hoverinfo"`
	Marker    Marker   `json:"marker"`
}

// Marker carries per-point size and color plus the shared color scale.
type Marker struct {
	Size       []float64 `json:"size"`
	Color      []float64 `json:"color"`
	Colorscale string    `json:"colorscale"`
	ShowScale  bool      `json:"showscale"`
	Opacity    float64   `json:"opacity"`
	Colorbar   Colorbar  `json:"colorbar"`
}

// Colorbar labels the color scale.
type Colorbar struct {
	Title Title `json:"title"`
}

// Title is a text element; X/XAnchor position the figure title when set.
type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x,omitempty"`
	XAnchor string  `json:"xanchor,omitempty"`
}

// Axis is one spatial axis with a fixed range and tick spacing.
type Axis struct {
	Range [2]int `json:"range"`
	DTick int    `json:"dtick"`
	Title Title  `json:"title"`
}

// Scene groups the three spatial axes.
type Scene struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
	T int `json:"t"`
}

// Layout fixes the axes to the score range with unit ticks and centers the
// title.
type Layout struct {
	Scene  Scene  `json:"scene"`
	Margin Margin `json:"margin"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
	Title  Title  `json:"title"`
}

// Options tunes the parts of the figure that are configurable.
type Options struct {
	// Title is the centered figure title; empty means DefaultTitle.
	Title string
}

// Build assembles the figure for the given (already filtered) rows: positions
// from the normalized constraint scores, marker size from Total Impact,
// marker color from Sum Constraints, and hover text from each row's Describe
// lines.  Rows map to points in order.
func Build(rows []canvas.Row, opts Options) Figure {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	n := len(rows)
	trace := Trace{
		Type:      "scatter3d",
		Mode:      "markers",
		X:         make([]int, n),
		Y:         make([]int, n),
		Z:         make([]int, n),
		Text:      make([]string, n),
		HoverInfo: "text",
		Marker: Marker{
			Size:       make([]float64, n),
			Color:      make([]float64, n),
			Colorscale: colorscale,
			ShowScale:  true,
			Opacity:    markerOpacity,
			Colorbar:   Colorbar{Title: Title{Text: colorbarTitle}},
		},
	}

	for i, r := range rows {
		trace.X[i] = r.Cost
		trace.Y[i] = r.Time
		trace.Z[i] = r.Regulations
		trace.Text[i] = strings.Join(r.Describe(), hoverLineSep)
		trace.Marker.Size[i] = r.TotalImpact
		trace.Marker.Color[i] = r.SumConstraints
	}

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Scene: Scene{
				XAxis: scoreAxis(canvas.ColCost),
				YAxis: scoreAxis(canvas.ColTime),
				ZAxis: scoreAxis(canvas.ColRegulations),
			},
			Margin: Margin{L: 0, R: 0, B: 0, T: 50},
			Height: layoutHeight,
			Width:  layoutWidth,
			Title:  Title{Text: title, X: 0.5, XAnchor: "center"},
		},
	}
}

// scoreAxis builds an axis fixed to the normalized score range with unit
// tick spacing.
func scoreAxis(name string) Axis {
	return Axis{
		Range: [2]int{canvas.ScoreMin, canvas.ScoreMax},
		DTick: 1,
		Title: Title{Text: name},
	}
}
