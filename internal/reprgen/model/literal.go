package model

import (
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"

	"github.com/cockroachdb/errors"
)

// ParseLiteral evaluates an integer literal. It accepts Go integer and rune
// literals with an optional sign.
func ParseLiteral(text string) (constant.Value, error) {
	expr, err := parser.ParseExpr(text)
	if err != nil {
		return nil, errors.Newf("%q is not an integer literal", text)
	}

	v, ok := evalLiteral(expr)
	if !ok {
		return nil, errors.Newf("%q is not an integer literal", text)
	}
	return v, nil
}

func evalLiteral(expr ast.Expr) (constant.Value, bool) {
	switch expr := ast.Unparen(expr).(type) {
	case *ast.BasicLit:
		if expr.Kind != token.INT && expr.Kind != token.CHAR {
			return nil, false
		}
		v := constant.MakeFromLiteral(expr.Value, expr.Kind, 0)
		if v.Kind() == constant.Unknown {
			return nil, false
		}
		return constant.ToInt(v), true

	case *ast.UnaryExpr:
		if expr.Op != token.SUB && expr.Op != token.ADD {
			return nil, false
		}
		v, ok := evalLiteral(expr.X)
		if !ok {
			return nil, false
		}
		return constant.UnaryOp(expr.Op, v, 0), true
	}
	return nil, false
}
