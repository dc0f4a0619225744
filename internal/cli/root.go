// Package cli implements the scaffolder command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	dir     string
}

// NewRootCmd constructs the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "scaffolder",
		Short: "scaffolder - entity source generator for Angular + Spring applications",
		Long: "scaffolder reads entity definitions from the entities directory, derives client and server naming " +
			"metadata, and renders the matching TypeScript, Java, and Liquibase sources.",
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "Project root directory")
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newNewCmd(opts))
	cmd.AddCommand(newEntityCmd(opts))
	cmd.AddCommand(newInspectCmd(opts))
	cmd.AddCommand(newDoctorCmd(opts))
	return cmd
}

// Execute runs the CLI entrypoint and exits with the command's status.
func Execute(ctx context.Context) {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		verbose, _ := cmd.PersistentFlags().GetBool("verbose")
		os.Exit(reportError(os.Stderr, err, verbose))
	}
}

func reportError(w io.Writer, err error, verbose bool) int {
	var cerr CommandError
	if !errors.As(err, &cerr) {
		fmt.Fprintln(w, err)
		return 1
	}
	msg := strings.TrimSpace(cerr.Message)
	if msg == "" && cerr.Cause != nil {
		msg = cerr.Cause.Error()
	}
	if msg != "" {
		fmt.Fprintln(w, msg)
	}
	if cerr.Cause != nil && msg != cerr.Cause.Error() && verbose {
		fmt.Fprintf(w, "details: %v\n", cerr.Cause)
	}
	if cerr.Suggestion != "" {
		fmt.Fprintln(w, formatSuggestion(cerr.Suggestion))
	}
	return cerr.ExitStatus()
}
