package model

import "go/token"

// Parser turns raw declaration input into structured declarations. It is
// implemented by the front-ends; the model never depends on a particular
// surface grammar.
type Parser interface {
	Parse(filename string, src []byte) ([]Request, error)
}

// Request is a declaration annotated with the generation entry point that
// should process it.
type Request struct {
	Decl       *Declaration
	Invocation Invocation
}

// Mode selects a generation entry point.
type Mode int

const (
	// Closed generates a fallible conversion from the representation and a
	// total conversion to it.
	Closed Mode = iota

	// Open generates total conversions in both directions. Unknown values
	// are carried by the catch-all variant.
	Open
)

func (m Mode) String() string {
	switch m {
	case Closed:
		return "closed"
	case Open:
		return "open"
	}
	return "Mode(?)"
}

// Compare selects the comparison methods generated in open mode.
type Compare int

const (
	CompareNone Compare = iota
	CompareAsEnum
	CompareAsInt
)

// ParseCompare parses the name of a compare mode.
func ParseCompare(s string) (Compare, bool) {
	switch s {
	case "none":
		return CompareNone, true
	case "as_enum":
		return CompareAsEnum, true
	case "as_int":
		return CompareAsInt, true
	}
	return CompareNone, false
}

func (c Compare) String() string {
	switch c {
	case CompareNone:
		return "none"
	case CompareAsEnum:
		return "as_enum"
	case CompareAsInt:
		return "as_int"
	}
	return "Compare(?)"
}

// Invocation holds the parameters of a generation entry point.
type Invocation struct {
	Mode Mode

	// Base is the base type parameter of open mode. It is nil in closed mode.
	Base *TypeRef

	Compare Compare

	// Pos is the position of the directive which requested generation.
	Pos token.Pos
}

// TypeRef is a type as written in a declaration.
type TypeRef struct {
	Name string
	Pos  token.Pos
}

// Literal is an integer literal as written in a declaration, such as "10",
// "-1", "0x1F" or "'a'".
type Literal struct {
	Text string
	Pos  token.Pos
}

// Declaration is the structured description of one annotated type produced
// by a front-end.
type Declaration struct {
	Name string
	Pos  token.Pos
	Doc  []string

	// Enum reports whether the declaration describes an enumerated type at
	// all. Kind names what it is otherwise, e.g. "interface type".
	Enum bool
	Kind string

	// Reprs are the integer representation annotations. Anything which is
	// not an integer type is skipped by front-ends.
	Reprs []TypeRef

	Variants []VariantDecl
}

// VariantDecl is one declared case.
type VariantDecl struct {
	Name string
	Pos  token.Pos
	Doc  []string

	// Discriminant is nil if the variant has no explicit literal.
	Discriminant *Literal

	// Fields are the payload field types. Unit variants have none.
	Fields []TypeRef
}
