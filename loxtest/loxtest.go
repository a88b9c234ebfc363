// Package loxtest provides utilities for testing glox evaluation.
package loxtest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glox-lang/glox/lox"
	"github.com/glox-lang/glox/parser"
)

// TestSequence is a sequence of glox sources which are evaluated sequentially
// against a shared session environment.
type TestSequence []struct {
	Source string // glox source text
	Result string // the value of the last statement, "" when nil
	Output string // text written by print statements during evaluation
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests against an isolated session
// environment.  The environment persists across the steps of one sequence,
// including steps that fail, mirroring an interactive session.
//
// A Result of the form "error: text" asserts that evaluation fails with an
// error whose message contains text.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env := lox.NewEnv(nil)
		var buf bytes.Buffer
		interp := lox.New(lox.WithOutput(&buf))
		for j, step := range test.TestSequence {
			buf.Reset()
			result, err := runSource(interp, env, step.Source)
			if expect, ok := errorResult(step.Result); ok {
				if err == nil {
					t.Errorf("test %d %q: step %d: expected error containing %q (got value %s)",
						i, test.Name, j, expect, result)
				} else if !strings.Contains(err.Error(), expect) {
					t.Errorf("test %d %q: step %d: expected error containing %q (got %q)",
						i, test.Name, j, expect, err.Error())
				}
				continue
			}
			if err != nil {
				t.Errorf("test %d %q: step %d: unexpected error: %v", i, test.Name, j, err)
				continue
			}
			if result != step.Result {
				t.Errorf("test %d %q: step %d: expected result %q (got %q)",
					i, test.Name, j, step.Result, result)
			}
			if buf.String() != step.Output {
				t.Errorf("test %d %q: step %d: expected output %q (got %q)",
					i, test.Name, j, step.Output, buf.String())
			}
		}
	}
}

func runSource(interp *lox.Interp, env *lox.Env, source string) (string, error) {
	stmts, err := parser.Parse("test", []byte(source))
	if err != nil {
		return "", err
	}
	v, err := interp.Interpret(stmts, env)
	if err != nil {
		return "", err
	}
	if v.Type == lox.VNil {
		return "", nil
	}
	return v.String(), nil
}

func errorResult(result string) (string, bool) {
	if strings.HasPrefix(result, "error:") {
		return strings.TrimSpace(strings.TrimPrefix(result, "error:")), true
	}
	return "", false
}
