package cli

import (
	"fmt"
	"os"

	"employee-service/internal/report"
	"employee-service/internal/ui"

	"github.com/spf13/cobra"
)

func (cl *commandline) chart(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:   "chart",
		Short: "Show salary per designation as a terminal chart",
		Long: `Show salary per designation as a terminal chart.

Keys: p pie, b bar, l line, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cl.controller()
			if err := c.Load(cmd.Context()); err != nil {
				return err
			}
			kind, _ := cmd.Flags().GetString("type")
			c.Store().Dispatch(ui.SetChartType{Type: ui.ChartType(kind)})
			if got := c.Store().State().ChartType; string(got) != kind {
				return fmt.Errorf("unknown chart type %q", kind)
			}
			return ui.NewChartViewer(c.Store(), cl.tui).Run()
		},
	}
	ccmd.Flags().StringP("type", "t", string(ui.ChartPie), "pie, bar or line")
	cmd.AddCommand(ccmd)
}

func (cl *commandline) export(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:   "export",
		Short: "Write the listed employees to a PDF rendered locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cl.controller()
			if err := c.Load(cmd.Context()); err != nil {
				return err
			}
			search, _ := cmd.Flags().GetString("search")
			s := c.Store().Dispatch(ui.SearchChanged{Text: search})

			data, err := ui.ExportPDF(s, cl.now)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			return writeFile(cmd, out, data)
		},
	}
	ccmd.Flags().StringP("search", "s", "", "case-insensitive name filter")
	ccmd.Flags().StringP("out", "o", "EmployeeList.pdf", "output file")
	cmd.AddCommand(ccmd)
}

func (cl *commandline) report(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:   "report",
		Short: "Preview the matching employees and download a server-rendered report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")
			if format != "pdf" && format != "xlsx" {
				return fmt.Errorf("unknown report format %q", format)
			}

			c := cl.controller()
			if err := c.Load(cmd.Context()); err != nil {
				return err
			}
			c.Store().Dispatch(ui.SearchChanged{Text: search})
			s := c.Store().Dispatch(ui.OpenReport{})
			defer c.Store().Dispatch(ui.CloseDialog{})

			rows := s.Visible()
			total := report.TotalSalary(rows)
			printEmployees(cmd.OutOrStdout(), rows, &total)

			var (
				data []byte
				err  error
			)
			switch format {
			case "pdf":
				data, err = cl.api.PDFReport(cmd.Context(), search)
				if out == "" {
					out = "EmployeeReports.pdf"
				}
			case "xlsx":
				data, err = cl.api.ExcelReport(cmd.Context(), search)
				if out == "" {
					out = "EmployeeReport.xlsx"
				}
			}
			if err != nil {
				return err
			}
			return writeFile(cmd, out, data)
		},
	}
	ccmd.Flags().StringP("search", "s", "", "name filter applied by the server")
	ccmd.Flags().StringP("format", "f", "pdf", "pdf or xlsx")
	ccmd.Flags().StringP("out", "o", "", "output file")
	cmd.AddCommand(ccmd)
}

func writeFile(cmd *cobra.Command, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(data))
	return nil
}
