package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/opportunity-canvas/pkg/errors"
)

const validCSV = `Problem,Tech,Cost,Time,Regulations,Social Acceptance,Sum Constraints,IQ,QL,Total Impact,Notes
Slow claims,Agentic workflow,12,0,5,High,16,4,3,7,Pilot
Readmission risk,Predictive model,2,3,4,Medium,9,2,2.5,4.5,Needs data
Drug discovery,Generative model,9.6,1,10,Low,20,5,4,9,Long horizon
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "OpportunityCanvas.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	reader := NewReader(writeCSV(t, validCSV))

	ds, err := reader.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	rows := ds.Rows()

	// Text columns pass through.
	assert.Equal(t, "Slow claims", rows[0].Problem)
	assert.Equal(t, "Agentic workflow", rows[0].Tech)
	assert.Equal(t, "High", rows[0].SocialAcceptance)
	assert.Equal(t, "Pilot", rows[0].Notes)

	// Constraint columns arrive normalized.
	assert.Equal(t, 10, rows[0].Cost)
	assert.Equal(t, 1, rows[0].Time)
	assert.Equal(t, 5, rows[0].Regulations)
	assert.Equal(t, 10, rows[2].Cost)

	// Aggregates are trusted inputs, not recomputed.
	assert.Equal(t, 16.0, rows[0].SumConstraints)
	assert.Equal(t, 4.5, rows[1].TotalImpact)
	assert.Equal(t, 2.5, rows[1].QL)
}

func TestLoadMissingFile(t *testing.T) {
	reader := NewReader(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := reader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeCSVOpen))
	assert.Contains(t, err.Error(), "absent.csv")
}

func TestLoadWrongHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing column", "Problem,Tech,Cost,Time,Regulations,Social Acceptance,Sum Constraints,IQ,QL,Total Impact"},
		{"renamed column", "Problem,Tech,Price,Time,Regulations,Social Acceptance,Sum Constraints,IQ,QL,Total Impact,Notes"},
		{"reordered columns", "Tech,Problem,Cost,Time,Regulations,Social Acceptance,Sum Constraints,IQ,QL,Total Impact,Notes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewReader(writeCSV(t, tt.header+"\nx,y,1,1,1,a,1,1,1,1,n\n"))
			_, err := reader.Load(context.Background())
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.CodeCSVHeader), "got %v", err)
		})
	}
}

func TestLoadHeaderToleratesPadding(t *testing.T) {
	padded := strings.ReplaceAll(validCSV, "Tech,", " Tech ,")
	reader := NewReader(writeCSV(t, padded))

	_, err := reader.Load(context.Background())
	assert.NoError(t, err)
}

func TestLoadBadNumericCell(t *testing.T) {
	bad := `Problem,Tech,Cost,Time,Regulations,Social Acceptance,Sum Constraints,IQ,QL,Total Impact,Notes
Slow claims,Agentic workflow,high,0,5,High,16,4,3,7,Pilot
`
	reader := NewReader(writeCSV(t, bad))

	_, err := reader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeCSVParse))
	assert.Contains(t, err.Error(), "column=Cost")
	assert.Contains(t, err.Error(), "line=2")
}

func TestLoadEmptyDataset(t *testing.T) {
	header := "Problem,Tech,Cost,Time,Regulations,Social Acceptance,Sum Constraints,IQ,QL,Total Impact,Notes\n"
	reader := NewReader(writeCSV(t, header))

	_, err := reader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeCSVEmpty))
}

func TestLoadUnvalidatedSocialAcceptance(t *testing.T) {
	// Social Acceptance is text/number and passes through unvalidated.
	mixed := `Problem,Tech,Cost,Time,Regulations,Social Acceptance,Sum Constraints,IQ,QL,Total Impact,Notes
a,b,1,1,1,7,3,1,1,2,n
c,d,1,1,1,not-a-number,3,1,1,2,n
`
	reader := NewReader(writeCSV(t, mixed))

	ds, err := reader.Load(context.Background())
	require.NoError(t, err)
	rows := ds.Rows()
	assert.Equal(t, "7", rows[0].SocialAcceptance)
	assert.Equal(t, "not-a-number", rows[1].SocialAcceptance)
}

func TestLoadCancelledContext(t *testing.T) {
	reader := NewReader(writeCSV(t, validCSV))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reader.Load(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeCSVOpen))
}

func TestLoadDeterministic(t *testing.T) {
	reader := NewReader(writeCSV(t, validCSV))

	first, err := reader.Load(context.Background())
	require.NoError(t, err)
	second, err := reader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Rows(), second.Rows())
}

func TestParseRaggedRecord(t *testing.T) {
	ragged := `Problem,Tech,Cost,Time,Regulations,Social Acceptance,Sum Constraints,IQ,QL,Total Impact,Notes
only,three,cells
`
	reader := NewReader(writeCSV(t, ragged))

	_, err := reader.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeCSVParse))
}
