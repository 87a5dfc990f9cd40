package canvas

import "math"

// Dataset is an immutable, normalized set of canvas rows.  Filtering is
// non-destructive: every query returns a fresh slice and the underlying rows
// are never mutated after construction.
type Dataset struct {
	rows []Row
}

// NewDataset normalizes the constraint scores of each row and returns the
// resulting dataset.  This is the only mutation rows ever undergo.
func NewDataset(rows []Row) *Dataset {
	normalized := make([]Row, len(rows))
	copy(normalized, rows)
	for i := range normalized {
		normalized[i].NormalizeScores()
	}
	return &Dataset{rows: normalized}
}

// Rows returns a copy of all rows.
func (d *Dataset) Rows() []Row {
	out := make([]Row, len(d.rows))
	copy(out, d.rows)
	return out
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// ImpactBounds returns the observed minimum and maximum Total Impact.
// An empty dataset reports (0, 0).
func (d *Dataset) ImpactBounds() (min, max float64) {
	if len(d.rows) == 0 {
		return 0, 0
	}
	min, max = d.rows[0].TotalImpact, d.rows[0].TotalImpact
	for _, r := range d.rows[1:] {
		if r.TotalImpact < min {
			min = r.TotalImpact
		}
		if r.TotalImpact > max {
			max = r.TotalImpact
		}
	}
	return min, max
}

// DefaultImpactRange returns the integer bounds offered to the filter
// control: floor of the observed minimum and ceil of the observed maximum,
// so the default selection always covers every row.
func (d *Dataset) DefaultImpactRange() (lo, hi int) {
	min, max := d.ImpactBounds()
	return int(math.Floor(min)), int(math.Ceil(max))
}

// FilterByImpact returns the rows whose Total Impact lies in the inclusive
// range [min, max].  Filtering is idempotent and order-preserving.
func (d *Dataset) FilterByImpact(min, max float64) []Row {
	out := make([]Row, 0, len(d.rows))
	for _, r := range d.rows {
		if r.TotalImpact >= min && r.TotalImpact <= max {
			out = append(out, r)
		}
	}
	return out
}
