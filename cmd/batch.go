package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glox-lang/glox/lox"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Run several glox scripts in sequence",
	Long: `Run each script in its own fresh environment.  A script error is
reported and the remaining scripts still run; an I/O failure stops the
batch.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, path := range args {
			fmt.Fprintf(os.Stderr, "\nRunning '%s'...\n", path)
			_, err := runFile(path)
			if err == nil {
				continue
			}
			if isScriptError(err) {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// isScriptError reports whether err came from the script itself rather
// than from reading the file.
func isScriptError(err error) bool {
	switch err.(type) {
	case *lox.Error, lox.ErrorList:
		return true
	}
	return false
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
