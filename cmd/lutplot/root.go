package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"github.com/user/lutplot/internal/analysis"
	"github.com/user/lutplot/internal/display"
	"github.com/user/lutplot/internal/parser"
	"github.com/user/lutplot/internal/report"
)

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix("LUTPLOT")
	viper.AutomaticEnv()
}

// newRootCmd builds the lutplot command around the given display backend.
func newRootCmd(d display.Displayer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lutplot <filename>",
		Short: "Plot a lookup table implementation against the exact function",
		Long: "lutplot reads a whitespace-delimited table (header line, then rows of\n" +
			"x, exact value, approximated value) and overlays the two curves in an\n" +
			"interactive chart window.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, d)
		},
	}

	cmd.Flags().String("title", "", "Chart title (default: input file name)")
	cmd.Flags().String("png", "", "Also write the comparison chart to this PNG file")
	cmd.Flags().String("pdf", "", "Also write a PDF report to this file")
	cmd.Flags().Bool("err-plot", false, "Also render the pointwise error curve")
	cmd.Flags().Bool("no-window", false, "Do not open the chart window")
	cmd.Flags().Float64("width", report.DefaultWidth, "Chart width in points")
	cmd.Flags().Float64("height", report.DefaultHeight, "Chart height in points")

	_ = viper.BindPFlag("title", cmd.Flags().Lookup("title"))
	_ = viper.BindPFlag("png", cmd.Flags().Lookup("png"))
	_ = viper.BindPFlag("pdf", cmd.Flags().Lookup("pdf"))
	_ = viper.BindPFlag("err_plot", cmd.Flags().Lookup("err-plot"))
	_ = viper.BindPFlag("no_window", cmd.Flags().Lookup("no-window"))
	_ = viper.BindPFlag("width", cmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("height", cmd.Flags().Lookup("height"))

	return cmd
}

// usageName is the name the process was invoked under, so the usage line
// echoes what the shell actually ran.
func usageName(cmd *cobra.Command) string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		return filepath.Base(os.Args[0])
	}
	return cmd.Name()
}

// errChartPath derives the error-chart file name from the comparison
// chart's: out.png becomes out.err.png.
func errChartPath(pngPath string) string {
	ext := filepath.Ext(pngPath)
	return strings.TrimSuffix(pngPath, ext) + ".err" + ext
}

func runPlot(cmd *cobra.Command, args []string, d display.Displayer) error {
	// A wrong argument count is a usage nudge, not a failure.
	if len(args) != 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "usage: %s <filename>\n", usageName(cmd))
		return nil
	}
	path := args[0]

	table, err := parser.ParseTableFile(path)
	if err != nil {
		return err
	}

	comparison := analysis.Compare(table)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, comparison.Summary())

	opts := report.Options{
		Title:  viper.GetString("title"),
		Width:  vg.Points(viper.GetFloat64("width")),
		Height: vg.Points(viper.GetFloat64("height")),
	}
	if opts.Title == "" {
		opts.Title = filepath.Base(path)
	}

	chart, err := report.RenderComparison(table, opts)
	if err != nil {
		return fmt.Errorf("failed to render comparison chart: %w", err)
	}

	pngPath := viper.GetString("png")
	pdfPath := viper.GetString("pdf")

	images := map[string][]byte{"comparison": chart}
	var errChart []byte
	if viper.GetBool("err_plot") {
		errChart, err = report.RenderError(table, comparison, opts)
		if err != nil {
			return fmt.Errorf("failed to render error chart: %w", err)
		}
		images["error"] = errChart
		if pngPath == "" && pdfPath == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "note: --err-plot needs --png or --pdf to write the error chart")
		}
	}

	if pngPath != "" {
		if err := os.WriteFile(pngPath, chart, 0o644); err != nil {
			return fmt.Errorf("failed to write PNG: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", pngPath)

		if errChart != nil {
			errPath := errChartPath(pngPath)
			if err := os.WriteFile(errPath, errChart, 0o644); err != nil {
				return fmt.Errorf("failed to write error-chart PNG: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", errPath)
		}
	}

	if pdfPath != "" {
		if err := report.BuildPDFReport(pdfPath, table, comparison, images); err != nil {
			return fmt.Errorf("failed to write PDF report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", pdfPath)
	}

	if viper.GetBool("no_window") {
		return nil
	}
	return d.Show(opts.Title, chart)
}
