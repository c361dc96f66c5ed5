package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var noPanicAnalyzer = &analysis.Analyzer{
	Name:     "nopanic",
	Doc:      "reports calls to builtin panic in internal packages outside of tests, errors must be returned instead",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runNoPanic,
}

func runNoPanic(pass *analysis.Pass) (interface{}, error) {
	if !strings.Contains(pass.Pkg.Path(), "/internal/") {
		return nil, nil
	}

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	ins.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		ident, ok := call.Fun.(*ast.Ident)
		if !ok {
			return
		}
		if _, ok := pass.TypesInfo.Uses[ident].(*types.Builtin); !ok || ident.Name != "panic" {
			return
		}

		filename := pass.Fset.Position(call.Pos()).Filename
		if strings.HasSuffix(filename, "_test.go") {
			return
		}
		pass.Reportf(call.Pos(), "panic in internal package, return an error instead")
	})

	return nil, nil
}
