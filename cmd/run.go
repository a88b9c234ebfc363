package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/glox-lang/glox/lox"
	"github.com/glox-lang/glox/parser"
)

var runPrint bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a glox script",
	Long:  `Run a glox script from a file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		v, err := runFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if runPrint && v.Type != lox.VNil {
			fmt.Println(v)
		}
	},
}

func runFile(path string) (lox.Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return lox.Nil(), errors.Wrapf(err, "read %s", path)
	}
	stmts, err := parser.Parse(path, b)
	if err != nil {
		return lox.Nil(), err
	}
	interp := lox.New(lox.WithLogger(newLogger()))
	return interp.Interpret(stmts, lox.NewEnv(nil))
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print the script's final value to stdout")
}
