// Package cmd contains the glox command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/glox-lang/glox/repl"
)

var rootDebug bool

// rootCmd represents the base command, which starts an interactive session
// when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "glox",
	Short: "The glox interpreter",
	Long: `glox is an interpreter for the glox scripting language.

Without arguments glox starts an interactive session.  Use the run
subcommand to execute a script file.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("> ", newLogger())
	},
}

// Execute runs the root command.  A usage error exits with status 64.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, rootCmd.UsageString())
		os.Exit(64)
	}
}

func newLogger() *zap.Logger {
	if !rootDebug {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return zap.NewNop()
	}
	return logger
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false,
		"Log evaluation tracing to stderr")
}
