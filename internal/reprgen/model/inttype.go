package model

import (
	"go/constant"
	"go/token"
)

// IntType is a fixed-width integer type usable as a representation.
type IntType struct {
	Name   string
	Bits   int
	Signed bool
}

// intTypes are the Go integer types by name. int, uint and uintptr are
// treated as 64-bit.
var intTypes = map[string]IntType{
	"int8":    {"int8", 8, true},
	"int16":   {"int16", 16, true},
	"int32":   {"int32", 32, true},
	"int64":   {"int64", 64, true},
	"int":     {"int", 64, true},
	"uint8":   {"uint8", 8, false},
	"uint16":  {"uint16", 16, false},
	"uint32":  {"uint32", 32, false},
	"uint64":  {"uint64", 64, false},
	"uint":    {"uint", 64, false},
	"uintptr": {"uintptr", 64, false},

	// Predeclared aliases
	"byte": {"uint8", 8, false},
	"rune": {"int32", 32, true},
}

// LookupIntType finds an integer type by name. Aliases resolve to their
// target, so LookupIntType("byte") returns uint8.
func LookupIntType(name string) (IntType, bool) {
	t, ok := intTypes[name]
	return t, ok
}

func (t IntType) String() string { return t.Name }

// Min returns the smallest value of t.
func (t IntType) Min() constant.Value {
	if !t.Signed {
		return constant.MakeInt64(0)
	}
	one := constant.MakeInt64(1)
	return constant.UnaryOp(token.SUB, constant.Shift(one, token.SHL, uint(t.Bits-1)), 0)
}

// Max returns the largest value of t.
func (t IntType) Max() constant.Value {
	one := constant.MakeInt64(1)
	bits := t.Bits
	if t.Signed {
		bits--
	}
	return constant.BinaryOp(constant.Shift(one, token.SHL, uint(bits)), token.SUB, one)
}

// Contains reports whether v is representable by t.
func (t IntType) Contains(v constant.Value) bool {
	return constant.Compare(v, token.GEQ, t.Min()) && constant.Compare(v, token.LEQ, t.Max())
}
