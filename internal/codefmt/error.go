package codefmt

import (
	"fmt"
	"go/token"
)

type (
	Poser interface{ Pos() token.Pos }
	Ender interface{ End() token.Pos }
)

type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }

// Pos wraps a bare position as a [Poser].
func Pos(pos token.Pos) Poser { return poser{pos} }

// CodeError indicates where the error occurred in user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Position returns the resolved position. It is zero if the position is
// unknown.
func (e CodeError) Position() token.Position {
	if !e.pos.IsValid() || e.fset == nil {
		return token.Position{}
	}
	return e.fset.Position(e.pos)
}

// Message returns the error message without the position prefix.
func (e CodeError) Message() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	if !e.pos.IsValid() || e.fset == nil {
		return e.err.Error()
	}

	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), e.err.Error())
}

// At attaches the position of poser to err. The position is omitted from the
// message when poser is nil or its position is invalid.
func At(fset *token.FileSet, poser Poser, err error) error {
	if err == nil {
		return nil
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}
	return &CodeError{err, pos, end, fset}
}
