package codefmt

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// Expr returns a Go source code representation of the given [ast.Expr].
func Expr(fset *token.FileSet, expr ast.Expr) string {
	var b strings.Builder
	if err := format.Node(&b, fset, expr); err != nil {
		panic(err) // should never happen because ast.Expr must be supported by the go/printer
	}
	return b.String()
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}

	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}

// FormatPos formats pos in fset as file:line:column.
func FormatPos(fset *token.FileSet, pos token.Pos) string {
	if fset == nil {
		return "-:-"
	}
	return FormatPosition(fset.Position(pos))
}
