package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/opportunity-canvas/internal/domain/canvas"
	"github.com/turtacn/opportunity-canvas/internal/infrastructure/storage/csvfile"
)

type showOptions struct {
	output string
	min    float64
	max    float64
}

// NewShowCmd creates the show subcommand: load the CSV and print the
// normalized table, optionally restricted to a Total Impact range.
func NewShowCmd() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the canvas table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "output format (table, json)")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "minimum Total Impact (inclusive)")
	cmd.Flags().Float64Var(&opts.max, "max", 0, "maximum Total Impact (inclusive)")

	return cmd
}

func runShow(cmd *cobra.Command, opts *showOptions) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	dataset, err := csvfile.NewReader(cliCtx.Config.Dataset.Path).Load(cmd.Context())
	if err != nil {
		return err
	}

	rows := dataset.Rows()
	if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
		min, max := opts.min, opts.max
		if !cmd.Flags().Changed("min") {
			min, _ = dataset.ImpactBounds()
		}
		if !cmd.Flags().Changed("max") {
			_, max = dataset.ImpactBounds()
		}
		rows = dataset.FilterByImpact(min, max)
	}

	if opts.output == "json" {
		return printJSON(cmd, rows)
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, rowCells(r))
	}
	cmd.Print(FormatTable(canvas.Columns(), table))
	return nil
}

// rowCells renders a row for tabular output.  Constraint columns show
// their normalized scores, matching what the chart plots.
func rowCells(r canvas.Row) []string {
	return []string{
		r.Problem,
		r.Tech,
		strconv.Itoa(r.Cost),
		strconv.Itoa(r.Time),
		strconv.Itoa(r.Regulations),
		r.SocialAcceptance,
		strconv.FormatFloat(r.SumConstraints, 'f', -1, 64),
		strconv.FormatFloat(r.IQ, 'f', -1, 64),
		strconv.FormatFloat(r.QL, 'f', -1, 64),
		strconv.FormatFloat(r.TotalImpact, 'f', -1, 64),
		r.Notes,
	}
}
