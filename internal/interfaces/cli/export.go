package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/opportunity-canvas/internal/domain/chart"
	"github.com/turtacn/opportunity-canvas/internal/infrastructure/storage/csvfile"
	apperrors "github.com/turtacn/opportunity-canvas/pkg/errors"
)

type exportOptions struct {
	format string
	out    string
	min    float64
	max    float64
}

// exportHTMLTemplate wraps a figure in a self-contained page.
const exportHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
</head>
<body>
  <div id="chart"></div>
  <script>
    const fig = {{.Figure}};
    Plotly.newPlot('chart', fig.data, fig.layout);
  </script>
</body>
</html>
`

// NewExportCmd creates the export subcommand: build the 3D figure and
// write it as Plotly JSON or a standalone HTML page.
func NewExportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the 3D figure",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "export format (json, html)")
	cmd.Flags().StringVar(&opts.out, "out", "", "output file (default: stdout)")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "minimum Total Impact (inclusive)")
	cmd.Flags().Float64Var(&opts.max, "max", 0, "maximum Total Impact (inclusive)")

	return cmd
}

func runExport(cmd *cobra.Command, opts *exportOptions) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	dataset, err := csvfile.NewReader(cliCtx.Config.Dataset.Path).Load(cmd.Context())
	if err != nil {
		return err
	}

	lo, hi := dataset.DefaultImpactRange()
	min, max := float64(lo), float64(hi)
	if cmd.Flags().Changed("min") {
		min = opts.min
	}
	if cmd.Flags().Changed("max") {
		max = opts.max
	}
	if min > max {
		return apperrors.Newf(apperrors.CodeImpactRangeInvalid, "impact range [%v, %v] has min greater than max", min, max)
	}

	fig := chart.Build(dataset.FilterByImpact(min, max), chart.Options{})

	var body []byte
	switch opts.format {
	case "json":
		body, err = json.MarshalIndent(fig, "", "  ")
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeInternal, "encode figure")
		}
		body = append(body, '\n')
	case "html":
		body, err = renderExportHTML(fig)
		if err != nil {
			return err
		}
	default:
		return apperrors.Newf(apperrors.CodeInvalidParam, "unsupported export format %q; expected json or html", opts.format)
	}

	if opts.out == "" {
		cmd.Print(string(body))
		return nil
	}
	if err := os.WriteFile(opts.out, body, 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "write export file")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", opts.out, len(body))
	return nil
}

// renderExportHTML embeds the figure JSON in the standalone page template.
func renderExportHTML(fig chart.Figure) ([]byte, error) {
	raw, err := json.Marshal(fig)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "encode figure")
	}
	tmpl, err := template.New("export").Parse(exportHTMLTemplate)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "parse export template")
	}
	var buf bytes.Buffer
	data := struct {
		Title  string
		Figure template.JS
	}{
		Title:  fig.Layout.Title.Text,
		Figure: template.JS(raw),
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "render export page")
	}
	return buf.Bytes(), nil
}
