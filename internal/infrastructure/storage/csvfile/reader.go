// Package csvfile loads the Opportunity Canvas dataset from a CSV file and
// watches it for changes.  It is the only component that touches the
// filesystem; everything downstream works on the parsed Dataset.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/turtacn/opportunity-canvas/internal/domain/canvas"
	"github.com/turtacn/opportunity-canvas/pkg/errors"
)

// Reader loads a canvas Dataset from a fixed CSV path.
type Reader struct {
	path string
}

// NewReader creates a Reader bound to path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the CSV path this reader is bound to.
func (r *Reader) Path() string {
	return r.path
}

// Load reads and parses the CSV.  Any failure — missing file, wrong header,
// unparseable numeric cell — is returned as an AppError carrying the path
// and cause; a failed load never yields a partial dataset.
func (r *Reader) Load(ctx context.Context) (*canvas.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeCSVOpen, "load cancelled").WithDetail("path=" + r.path)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeCSVOpen, "failed to open canvas CSV").
			WithDetail("path=" + r.path)
	}
	defer f.Close()

	return parse(f, r.path)
}

// parse consumes CSV content from rd.  Split out from Load so tests can feed
// readers directly.
func parse(rd io.Reader, path string) (*canvas.Dataset, error) {
	cr := csv.NewReader(rd)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeCSVHeader, "failed to read CSV header").
			WithDetail("path=" + path)
	}
	if err := validateHeader(header); err != nil {
		return nil, err.WithDetail("path=" + path)
	}

	var rows []canvas.Row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeCSVParse, "malformed CSV record").
				WithDetail(fmt.Sprintf("path=%s line=%d", path, line))
		}

		row, err := parseRow(record, path, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.New(errors.CodeCSVEmpty, "canvas CSV contains no data rows").
			WithDetail("path=" + path)
	}

	return canvas.NewDataset(rows), nil
}

// validateHeader checks that the header matches the required columns, in
// order.  Column names are compared after trimming surrounding whitespace.
func validateHeader(header []string) *errors.AppError {
	want := canvas.Columns()
	if len(header) != len(want) {
		return errors.Newf(errors.CodeCSVHeader,
			"CSV header has %d columns, expected %d", len(header), len(want))
	}
	for i, col := range header {
		if strings.TrimSpace(col) != want[i] {
			return errors.Newf(errors.CodeCSVHeader,
				"CSV column %d is %q, expected %q", i+1, strings.TrimSpace(col), want[i])
		}
	}
	return nil
}

// parseRow converts one CSV record into a Row.  Constraint and impact
// columns must parse as numbers; Social Acceptance and the free-text columns
// pass through unvalidated.
func parseRow(record []string, path string, line int) (canvas.Row, error) {
	row := canvas.Row{
		Problem:          strings.TrimSpace(record[0]),
		Tech:             strings.TrimSpace(record[1]),
		SocialAcceptance: strings.TrimSpace(record[5]),
		Notes:            strings.TrimSpace(record[10]),
	}

	numeric := []struct {
		idx  int
		col  string
		dest *float64
	}{
		{2, canvas.ColCost, &row.RawCost},
		{3, canvas.ColTime, &row.RawTime},
		{4, canvas.ColRegulations, &row.RawRegulations},
		{6, canvas.ColSumConstraints, &row.SumConstraints},
		{7, canvas.ColIQ, &row.IQ},
		{8, canvas.ColQL, &row.QL},
		{9, canvas.ColTotalImpact, &row.TotalImpact},
	}
	for _, n := range numeric {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[n.idx]), 64)
		if err != nil {
			return canvas.Row{}, errors.Wrap(err, errors.CodeCSVParse, "numeric cell failed to parse").
				WithDetail(fmt.Sprintf("path=%s line=%d column=%s value=%q", path, line, n.col, record[n.idx]))
		}
		*n.dest = v
	}

	return row, nil
}
