// Package parser provides a simple interface for parsing glox source.
package parser

import (
	"bytes"

	"github.com/glox-lang/glox/ast"
	"github.com/glox-lang/glox/parser/rdparser"
	"github.com/glox-lang/glox/parser/token"
)

// Parse parses a complete program from src.  The name is used in source
// locations, typically a file path.
func Parse(name string, src []byte) ([]ast.Stmt, error) {
	scanner := token.NewScanner(name, bytes.NewReader(src))
	p := rdparser.New(scanner)
	return p.ParseProgram()
}
