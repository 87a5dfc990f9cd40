// Package canvas holds the Opportunity Canvas domain model: the row entity,
// score normalization, impact filtering, and hover-label generation.  All
// operations here are pure; loading lives in infrastructure and rendering in
// the chart package.
package canvas

import (
	"math"
	"strconv"
)

// CSV column names, in the order they appear in the source file.
const (
	ColProblem          = "Problem"
	ColTech             = "Tech"
	ColCost             = "Cost"
	ColTime             = "Time"
	ColRegulations      = "Regulations"
	ColSocialAcceptance = "Social Acceptance"
	ColSumConstraints   = "Sum Constraints"
	ColIQ               = "IQ"
	ColQL               = "QL"
	ColTotalImpact      = "Total Impact"
	ColNotes            = "Notes"
)

// Display labels substituted for the raw IQ/QL field names in hover text.
const (
	LabelImpactQuantity = "Impact Quantity"
	LabelImpactQuality  = "Impact Quality"
)

// Score bounds for the three constraint columns.
const (
	ScoreMin = 1
	ScoreMax = 10
)

// Columns returns the required CSV header, in order.
func Columns() []string {
	return []string{
		ColProblem, ColTech, ColCost, ColTime, ColRegulations,
		ColSocialAcceptance, ColSumConstraints, ColIQ, ColQL,
		ColTotalImpact, ColNotes,
	}
}

// DisplayLabel returns the label shown for a column in hover text.  Exactly
// IQ and QL are renamed; every other column keeps its literal name.
func DisplayLabel(col string) string {
	switch col {
	case ColIQ:
		return LabelImpactQuantity
	case ColQL:
		return LabelImpactQuality
	default:
		return col
	}
}

// Row is one Opportunity Canvas record.  RawCost/RawTime/RawRegulations hold
// the values as parsed from the CSV; Cost/Time/Regulations hold the
// normalized constraint scores and are only valid after NormalizeScores.
// SumConstraints and TotalImpact are precomputed in the source data and are
// never recomputed from other columns.
type Row struct {
	Problem          string  `json:"problem"`
	Tech             string  `json:"tech"`
	RawCost          float64 `json:"raw_cost"`
	RawTime          float64 `json:"raw_time"`
	RawRegulations   float64 `json:"raw_regulations"`
	Cost             int     `json:"cost"`
	Time             int     `json:"time"`
	Regulations      int     `json:"regulations"`
	SocialAcceptance string  `json:"social_acceptance"`
	SumConstraints   float64 `json:"sum_constraints"`
	IQ               float64 `json:"iq"`
	QL               float64 `json:"ql"`
	TotalImpact      float64 `json:"total_impact"`
	Notes            string  `json:"notes"`
}

// NormalizeScore clamps v to [ScoreMin, ScoreMax] and rounds to the nearest
// integer.  Clamping happens before rounding: 12 → 10, 0 → 1, 0.4 → 1,
// 9.6 → 10.
func NormalizeScore(v float64) int {
	clamped := math.Min(math.Max(v, ScoreMin), ScoreMax)
	return int(math.Round(clamped))
}

// NormalizeScores fills the normalized constraint fields from the raw values.
func (r *Row) NormalizeScores() {
	r.Cost = NormalizeScore(r.RawCost)
	r.Time = NormalizeScore(r.RawTime)
	r.Regulations = NormalizeScore(r.RawRegulations)
}

// Describe produces the hover label for a row: one line per CSV column, in
// original column order, as "Label: value".  Constraint columns show their
// normalized values; everything else passes through as loaded.
func (r Row) Describe() []string {
	return []string{
		ColProblem + ": " + r.Problem,
		ColTech + ": " + r.Tech,
		ColCost + ": " + strconv.Itoa(r.Cost),
		ColTime + ": " + strconv.Itoa(r.Time),
		ColRegulations + ": " + strconv.Itoa(r.Regulations),
		ColSocialAcceptance + ": " + r.SocialAcceptance,
		ColSumConstraints + ": " + formatNumber(r.SumConstraints),
		LabelImpactQuantity + ": " + formatNumber(r.IQ),
		LabelImpactQuality + ": " + formatNumber(r.QL),
		ColTotalImpact + ": " + formatNumber(r.TotalImpact),
		ColNotes + ": " + r.Notes,
	}
}

// formatNumber renders a float the way the source table shows it: integral
// values without a trailing ".0", fractional values in full.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
