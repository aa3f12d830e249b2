package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-bsl/bslint/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Inspect a generic-issue report",
}

var reportQueryCmd = &cobra.Command{
	Use:   "query <report.json> <gjson-path>",
	Short: "Extract a field from a generic-issue report with a gjson path expression",
	Long: `query reads a report written by "bslint analyze" and evaluates a
gjson path expression against it, e.g.:

  bslint report query report.json "issues.#.ruleId"
  bslint report query report.json "issues.#(severity==MAJOR)#.primaryLocation.filePath"`,
	Args: cobra.ExactArgs(2),
	RunE: runReportQuery,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportQueryCmd)
}

func runReportQuery(cmd *cobra.Command, args []string) error {
	path, query := args[0], args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	fmt.Println(report.Query(string(data), query))
	return nil
}
