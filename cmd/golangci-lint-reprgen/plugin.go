// golangcilintreprgen package provides a plugin for golangci-lint to report
// invalid enum declarations of reprgen. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// The linter loads files constrained by "//go:build reprgen" only when
// golangci-lint runs with the reprgen build tag:
//
//	run:
//	  build-tags:
//	    - reprgen
package golangcilintreprgen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/reprgen/pkg/reprgenanalysis"
)

func init() {
	register.Plugin("reprgen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return ReprgenLinter{}, nil
}

type ReprgenLinter struct{}

func (ReprgenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{reprgenanalysis.Analyzer}, nil
}

func (ReprgenLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
