// Package reprgenanalysis reports reprgen diagnostics as an analysis pass.
// Run it with the reprgen build tag so that declaration files are analyzed.
package reprgenanalysis

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/reprgen/internal/codefmt"
	reprgeninternal "github.com/sublee/reprgen/internal/reprgen"
	"github.com/sublee/reprgen/internal/reprgen/diag"
)

// Analyzer validates enum declarations annotated for reprgen in the package.
var Analyzer = &analysis.Analyzer{
	Name: "reprgen",
	Doc:  "linter for reprgen enum declarations",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:    pass.Pkg.Name(),
		PkgPath: pass.Pkg.Path(),
		Types:   pass.Pkg,
		Fset:    pass.Fset,
		Syntax:  pass.Files,
	}

	rg, err := reprgeninternal.New(pkg, nil)
	if err != nil {
		return nil, err
	}

	// Unroll all errors and report them
	for _, err := range diag.Flatten(rg.Build()) {
		var codeErr *codefmt.CodeError
		if !errors.As(err, &codeErr) {
			return nil, err
		}
		pass.Report(analysis.Diagnostic{
			Pos:      codeErr.Pos(),
			End:      codeErr.End(),
			Category: category(err),
			Message:  codeErr.Message(),
		})
	}

	return nil, nil
}

func category(err error) string {
	kind, _ := diag.KindOf(err)
	return string(kind)
}
