// Package diag defines the generation-time diagnostics of reprgen.
//
// Every diagnostic is reported as a [codefmt.CodeError] pointing at the
// offending declaration element. The error unwraps to a [*Diagnostic] which
// matches its [Kind] with errors.Is:
//
//	if errors.Is(err, diag.DuplicateDiscriminant) {
//		...
//	}
package diag

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sublee/reprgen/internal/codefmt"
)

// Kind classifies a diagnostic.
type Kind string

// Error implements error so that a Kind can be the target of errors.Is.
func (k Kind) Error() string { return string(k) }

// Declaration diagnostics.
const (
	NotAnEnum                 Kind = "not-an-enum"
	MissingRepresentation     Kind = "missing-representation"
	ConflictingRepresentation Kind = "conflicting-representation"
	InvalidRepresentation     Kind = "invalid-representation"
	InvalidDirective          Kind = "invalid-directive"
)

// Variant diagnostics.
const (
	InvalidVariant          Kind = "invalid-variant"
	InvalidDiscriminant     Kind = "invalid-discriminant"
	UnexpectedPayload       Kind = "unexpected-payload"
	PayloadWithDiscriminant Kind = "payload-with-discriminant"
	NoCatchAll              Kind = "no-catch-all"
	MultipleCatchAll        Kind = "multiple-catch-all"
	CatchAllArityMismatch   Kind = "catch-all-arity-mismatch"
)

// Resolution diagnostics.
const (
	DuplicateDiscriminant Kind = "duplicate-discriminant"
	DiscriminantOverflow  Kind = "discriminant-overflow"
	NameConflict          Kind = "name-conflict"
)

// Diagnostic is a classified generation-time error.
type Diagnostic struct {
	Kind    Kind
	Message string
}

func (d *Diagnostic) Error() string { return d.Message }

// Is reports whether target is the kind of d.
func (d *Diagnostic) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == d.Kind
}

// Errorf creates a located diagnostic.
func Errorf(fset *token.FileSet, at codefmt.Poser, kind Kind, format string, args ...any) error {
	d := &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
	return codefmt.At(fset, at, d)
}

// KindOf returns the kind of the first diagnostic in err.
func KindOf(err error) (Kind, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d.Kind, true
	}
	return "", false
}

// Emitter collects the diagnostics of one generation stage. A stage which
// reported anything must abort the generation of its declaration.
type Emitter struct {
	fset *token.FileSet
	errs []error
}

// NewEmitter creates an [Emitter] which formats positions by fset.
func NewEmitter(fset *token.FileSet) *Emitter {
	return &Emitter{fset: fset}
}

// Report records a diagnostic located at the given position.
func (e *Emitter) Report(at token.Pos, kind Kind, format string, args ...any) {
	e.errs = append(e.errs, Errorf(e.fset, codefmt.Pos(at), kind, format, args...))
}

// Failed reports whether any diagnostic has been recorded.
func (e *Emitter) Failed() bool { return len(e.errs) != 0 }

// Err returns the recorded diagnostics in report order, or nil.
func (e *Emitter) Err() error {
	return Join(e.errs...)
}

// List is a flat list of errors reported together. Its message has exactly
// one diagnostic per line, whatever joins the errors came from. Diagnostic
// readers such as the CLI colorizer rely on that format.
type List []error

func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap returns the listed errors.
func (l List) Unwrap() []error { return l }

// Join flattens errs into a [List] discarding nils. It returns nil if there
// is no error.
func Join(errs ...error) error {
	var l List
	for _, err := range errs {
		l = append(l, Flatten(err)...)
	}
	if len(l) == 0 {
		return nil
	}
	return l
}

// Flatten unrolls joined errors into a flat list keeping their order.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	// Both List and errors.Join expose their members by Unwrap() []error.
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		var list []error
		for _, err := range u.Unwrap() {
			list = append(list, Flatten(err)...)
		}
		return list
	}
	return []error{err}
}

// Sorted flattens err and sorts the errors by position, then by message.
// Errors without position come first.
func Sorted(err error) error {
	list := Flatten(err)
	if len(list) == 0 {
		return nil
	}
	slices.SortStableFunc(list, func(a, b error) int {
		pa, pb := position(a), position(b)
		return cmp.Or(
			cmp.Compare(pa.Filename, pb.Filename),
			cmp.Compare(pa.Line, pb.Line),
			cmp.Compare(pa.Column, pb.Column),
			strings.Compare(a.Error(), b.Error()),
		)
	})
	return List(list)
}

func position(err error) token.Position {
	var codeErr *codefmt.CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Position()
	}
	return token.Position{}
}
