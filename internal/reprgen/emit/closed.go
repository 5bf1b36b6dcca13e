package emit

import (
	"github.com/sublee/reprgen/internal/codefmt"
	"github.com/sublee/reprgen/internal/reprgen/model"
)

// WriteClosed writes a closed enum as a defined integer type with a constant
// per variant:
//
//	type ColorChannel uint8
//
//	const (
//		RED   ColorChannel = 0
//		GREEN ColorChannel = 1
//	)
//
//	func ColorChannelFromUint8(value uint8) (ColorChannel, error)
//	func (v ColorChannel) Uint8() uint8
//	func (v ColorChannel) String() string
func WriteClosed(w *codefmt.Writer, e *model.Enum) {
	typ, repr := e.Name, e.Repr.Name
	known := e.Known()

	writeDoc(w, e.Doc)
	w.Printf("type %s %s\n\n", typ, repr)

	if len(known) != 0 {
		w.Printf("const (\n")
		for _, v := range known {
			writeDoc(w, v.Doc)
			w.Printf("%s %s = %s\n", v.Name, typ, v.Value.ExactString())
		}
		w.Printf(")\n\n")
	}

	value, v := w.Name("value"), w.Name("v")
	errs := w.Import(ErrorsPath, "")

	// Fallible conversion
	w.Printf("// %s converts %s to %s. It returns *reprgenerrors.UnknownValueError\n", FromFunc(e), value, typ)
	w.Printf("// holding %s if no variant matches.\n", value)
	w.Printf("func %s(%s %s) (%s, error) {\n", FromFunc(e), value, repr, typ)
	if len(known) != 0 {
		w.Printf("switch %s := %s(%s); %s {\n", v, typ, value, v)
		w.Printf("case %s:\n", joinNames(known))
		w.Printf("return %s, nil\n", v)
		w.Printf("}\n")
	}
	w.Printf("return 0, &%s.UnknownValueError[%s]{Type: %q, Value: %s}\n", errs, repr, typ, value)
	w.Printf("}\n\n")

	// Total conversion
	w.Printf("// %s returns the discriminant of %s.\n", ToMethod(e), v)
	w.Printf("func (%s %s) %s() %s {\n", v, typ, ToMethod(e), repr)
	w.Printf("return %s(%s)\n", repr, v)
	w.Printf("}\n\n")

	writeString(w, e, v, v,
		func(variant model.Variant, _ int) string { return variant.Name },
		`"`+typ+`(" + `+formatInt(w, e.Repr, v)+` + ")"`,
	)
}
