package cli

import (
	"errors"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/deicod/scaffolder/internal/cli/doctor"
)

func newDoctorCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the project for common setup issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := doctor.Run(root.dir, blueprints.Names())
			printer := doctor.NewPrinter(cmd.OutOrStdout())
			printer.PrintHeader("scaffolder doctor")
			printer.PrintSystem(runtime.GOOS, runtime.GOARCH)
			for _, res := range results {
				printer.PrintCheck(res)
			}
			printer.Summary(results)
			if doctor.HasFailures(results) {
				return wrapError("doctor: one or more checks failed", errors.New("doctor checks failed"), "", 1)
			}
			return nil
		},
	}
	return cmd
}
