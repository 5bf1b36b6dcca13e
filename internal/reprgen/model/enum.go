// Package model holds the in-memory model of an enumeration between the
// front-ends and code generation.
//
// A front-end produces a [Declaration]. [Build] validates it into an [Enum]
// and [Resolve] computes the discriminant of every known variant:
//
//	e, err := model.Build(fset, decl, inv)
//	...
//	e, err = model.Resolve(fset, e)
package model

import (
	"go/constant"
	"go/token"
)

// PayloadKind tags the payload of a variant.
type PayloadKind int

const (
	// Unit is a variant without payload.
	Unit PayloadKind = iota

	// CatchAll is the variant of an open enumeration which carries any value
	// not matching a known discriminant.
	CatchAll
)

// Payload is the tagged payload of a variant. Type is meaningful only for
// [CatchAll].
type Payload struct {
	Kind PayloadKind
	Type IntType
}

// Variant is one case of an [Enum].
type Variant struct {
	Name string
	Pos  token.Pos
	Doc  []string

	// Explicit is the discriminant written in the declaration, or nil.
	Explicit constant.Value

	Payload Payload

	// Value is the resolved discriminant. It is nil before resolution and
	// always nil for the catch-all.
	Value constant.Value
}

// IsCatchAll reports whether v is the catch-all variant.
func (v Variant) IsCatchAll() bool { return v.Payload.Kind == CatchAll }

// Enum is a validated enumeration.
type Enum struct {
	Name string
	Pos  token.Pos
	Doc  []string

	Repr     IntType
	Mode     Mode
	Compare  Compare
	Variants []Variant

	resolved bool
}

// Resolved reports whether the discriminants have been resolved.
func (e *Enum) Resolved() bool { return e.resolved }

// CatchAll returns the catch-all variant. It is found only in open mode.
func (e *Enum) CatchAll() (Variant, bool) {
	for _, v := range e.Variants {
		if v.IsCatchAll() {
			return v, true
		}
	}
	return Variant{}, false
}

// Known returns the variants except the catch-all in declaration order.
func (e *Enum) Known() []Variant {
	known := make([]Variant, 0, len(e.Variants))
	for _, v := range e.Variants {
		if !v.IsCatchAll() {
			known = append(known, v)
		}
	}
	return known
}

// clone returns a deep copy of e. Constant values are immutable and shared.
func (e *Enum) clone() *Enum {
	c := *e
	c.Doc = append([]string(nil), e.Doc...)
	c.Variants = make([]Variant, len(e.Variants))
	for i, v := range e.Variants {
		v.Doc = append([]string(nil), v.Doc...)
		c.Variants[i] = v
	}
	return &c
}
