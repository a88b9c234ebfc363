// Package repl implements the interactive glox session.
package repl

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/glox-lang/glox/lox"
	"github.com/glox-lang/glox/parser"
)

// RunRepl reads lines from the terminal and evaluates each one against a
// session environment that persists across lines and across errors.  The
// value of the last statement on a line is echoed unless it is nil.
func RunRepl(prompt string, logger *zap.Logger) {
	env := lox.NewEnv(nil)
	interp := lox.New(lox.WithLogger(logger))

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		if len(line) == 0 {
			continue
		}
		stmts, err := parser.Parse("repl", line)
		if err != nil {
			errln(err)
			continue
		}
		v, err := interp.Interpret(stmts, env)
		if err != nil {
			errln(err)
			continue
		}
		if v.Type != lox.VNil {
			fmt.Println(v)
		}
	}
	if err != io.EOF {
		errln(err)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
