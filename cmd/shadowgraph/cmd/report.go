package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	reportFormat string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export reports and browse scan history",
}

var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full report as PDF or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		var blob []byte
		switch reportFormat {
		case "pdf":
			blob, err = client.ExportPDF(cmd.Context())
		case "json":
			var raw []byte
			raw, err = client.ExportJSON(cmd.Context())
			blob = raw
		default:
			return fmt.Errorf("unsupported format %q: must be pdf or json", reportFormat)
		}
		if err != nil {
			return err
		}

		out := reportOut
		if out == "" {
			out = "shadowgraph-report." + reportFormat
		}
		if err := os.WriteFile(out, blob, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		toasts.Success(fmt.Sprintf("Report written to %s.", out))
		return nil
	},
}

var reportHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the scan history feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		events, err := client.ReportHistory(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(events)
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the audit event feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		events, err := client.AuditEvents(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(events)
	},
}

func init() {
	reportExportCmd.Flags().StringVar(&reportFormat, "format", "pdf", "export format: pdf or json")
	reportExportCmd.Flags().StringVar(&reportOut, "out", "", "output file (default shadowgraph-report.<format>)")
	reportCmd.AddCommand(reportExportCmd, reportHistoryCmd)
	rootCmd.AddCommand(reportCmd, auditCmd)
}
