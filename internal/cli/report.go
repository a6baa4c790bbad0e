package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/report"
)

// reportCommand creates the report command, which summarizes a test run.
func (c *CLI) reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report <test-log> <coverage>",
		Short: "Summarize a test log and a coverage export",
		Long: `Print "<passed>/<total> test cases passed. <pct>% line coverage achieved."

The test log has one test case per line; a line passes when its first word
is "ok". The coverage file is an llvm-cov style JSON export.`,
		Example: `  pkgscore report test.log coverage.json`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := report.Build(args[0], args[1])
			if err != nil {
				return err
			}
			c.Logger.Info("report", "total", summary.Total, "passed", summary.Passed, "coverage", summary.Coverage)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), summary)
			return err
		},
	}
}
