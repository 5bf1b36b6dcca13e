// Package reprgen documents the declarations of the reprgen code generator.
//
// Reprgen generates conversions between enums and their integer
// representations. An enum is declared once as a struct type whose fields are
// its variants, and the generator produces a Go type with constructors,
// conversions and formatting for it.
//
// To start with reprgen, add a build constraint to files containing enum
// declarations:
//
//	//go:build reprgen
//
// The generated file is constrained by "//go:build !reprgen" and replaces the
// declaration files in normal builds. Declarations other than enums in those
// files are carried over to the generated file.
//
// # Closed enums
//
// A closed enum is a fixed set of unit variants. Each variant has a
// discriminant, an integer value of the representation type. A discriminant
// is given by the "reprgen" struct tag as an integer literal. A variant
// without it takes the discriminant of the previous variant plus one, or 0 if
// it is the first:
//
//	// source:
//	//reprgen:closed
//	//reprgen:repr uint8
//	type ColorChannel struct {
//		RED   struct{} `reprgen:"0"`
//		GREEN struct{}
//		BLUE  struct{}
//	}
//
//	// generated: (simplified)
//	type ColorChannel uint8
//
//	const (
//		RED   ColorChannel = 0
//		GREEN ColorChannel = 1
//		BLUE  ColorChannel = 2
//	)
//
//	func ColorChannelFromUint8(value uint8) (ColorChannel, error)
//	func (v ColorChannel) Uint8() uint8
//	func (v ColorChannel) String() string
//
// The conversion from the representation fails with
// *reprgenerrors.UnknownValueError for an integer which is no discriminant.
// The representation must be one of the integer types. Other types listed by
// reprgen:repr are ignored.
//
// # Open enums
//
// An open enum accepts every integer of its base type. Integers which match no
// known variant are carried by the catch-all variant, the only field whose
// type is the base type:
//
//	// source:
//	//reprgen:open base=uint8 compare=as_int
//	type ColorCommand struct {
//		SetRed   struct{}
//		SetGreen struct{}
//		SetBlue  struct{}
//		Other    uint8
//	}
//
//	// generated: (simplified)
//	type ColorCommand struct{ ... }
//
//	var SetRed, SetGreen, SetBlue ColorCommand
//
//	func Other(value uint8) ColorCommand
//	func (v ColorCommand) AsOther() (uint8, bool)
//	func ColorCommandFromUint8(value uint8) ColorCommand
//	func (v ColorCommand) Uint8() uint8
//	func (v ColorCommand) String() string
//	func (v ColorCommand) Equal(w ColorCommand) bool
//	func (v ColorCommand) Compare(w ColorCommand) int
//
// Both conversions are total. The catch-all takes no discriminant and does
// not advance the implicit numbering. The compare argument chooses how values
// compare:
//
//	none     values are compared by ==
//	as_enum  Compare orders by declaration order, then by carried values
//	as_int   Equal and Compare use the base representation, so Other(0)
//	         equals SetRed
//
// # Schemas
//
// Enums can also be declared in YAML schema files and generated by the
// "reprgen schema" command:
//
//	package: color
//	enums:
//	  - name: ColorChannel
//	    mode: closed
//	    repr: uint8
//	    variants:
//	      - name: RED
//	        value: 0
//	      - GREEN
//	      - BLUE
//	  - name: ColorCommand
//	    mode: open
//	    base: uint8
//	    variants: [SetRed, SetGreen, SetBlue, {name: Other, payload: uint8}]
//
// # Diagnostics
//
// Invalid declarations are reported with their positions. Every problem found
// in a package is reported at once:
//
//	enum.go:8:2: duplicate discriminant 1 of ColorChannel: GREEN and BLUE
//
// The reprgenanalysis package reports the same diagnostics as an analysis
// pass for linters.
package reprgen
