package emit

import (
	"fmt"

	"github.com/sublee/reprgen/internal/codefmt"
	"github.com/sublee/reprgen/internal/reprgen/model"
)

// WriteOpen writes an open enum as a comparable struct. Known variants are
// variables with distinct tags. The catch-all has tag 0 so the zero value
// carries 0:
//
//	type ColorCommand struct {
//		tag   int
//		other uint8
//	}
//
//	var (
//		SetRed   = ColorCommand{tag: 1}
//		SetGreen = ColorCommand{tag: 2}
//	)
//
//	func Other(value uint8) ColorCommand
//	func (v ColorCommand) AsOther() (uint8, bool)
//	func ColorCommandFromUint8(value uint8) ColorCommand
//	func (v ColorCommand) Uint8() uint8
//	func (v ColorCommand) String() string
//
// The discriminants appear only in the conversions.
func WriteOpen(w *codefmt.Writer, e *model.Enum) {
	typ, repr := e.Name, e.Repr.Name
	known := e.Known()
	catchAll, _ := e.CatchAll()

	tag := func(i int) int { return i + 1 }

	writeDoc(w, e.Doc)
	if len(e.Doc) != 0 {
		w.Printf("//\n")
	}
	w.Printf("// The known variants of %s are package variables since Go has no\n", typ)
	w.Printf("// struct constants. They must not be reassigned.\n")
	w.Printf("type %s struct {\n", typ)
	w.Printf("tag int\n")
	w.Printf("other %s\n", repr)
	w.Printf("}\n\n")

	if len(known) != 0 {
		w.Printf("var (\n")
		for i, v := range known {
			writeDoc(w, v.Doc)
			w.Printf("%s = %s{tag: %d}\n", v.Name, typ, tag(i))
		}
		w.Printf(")\n\n")
	}

	value, v, x := w.Name("value"), w.Name("v"), w.Name("w")

	// Catch-all constructor and accessor
	writeDoc(w, catchAll.Doc, fmt.Sprintf("%s returns the %s carrying %s as it is.", catchAll.Name, typ, value))
	w.Printf("func %s(%s %s) %s {\n", catchAll.Name, value, repr, typ)
	w.Printf("return %s{%s: %s}\n", typ, "other", value)
	w.Printf("}\n\n")

	w.Printf("// As%s returns the value carried by %s if it is %s.\n", catchAll.Name, v, catchAll.Name)
	w.Printf("func (%s %s) As%s() (%s, bool) {\n", v, typ, catchAll.Name, repr)
	w.Printf("return %s.other, %s.tag == 0\n", v, v)
	w.Printf("}\n\n")

	// Total conversion from the base type
	w.Printf("// %s converts %s to %s. A value which matches no known variant\n", FromFunc(e), value, typ)
	w.Printf("// is carried by %s.\n", catchAll.Name)
	w.Printf("func %s(%s %s) %s {\n", FromFunc(e), value, repr, typ)
	if len(known) != 0 {
		w.Printf("switch %s {\n", value)
		for _, kv := range known {
			w.Printf("case %s:\n", kv.Value.ExactString())
			w.Printf("return %s\n", kv.Name)
		}
		w.Printf("}\n")
	}
	w.Printf("return %s(%s)\n", catchAll.Name, value)
	w.Printf("}\n\n")

	// Total conversion to the base type
	w.Printf("// %s returns the discriminant of %s or the value carried by %s.\n", ToMethod(e), v, catchAll.Name)
	w.Printf("func (%s %s) %s() %s {\n", v, typ, ToMethod(e), repr)
	if len(known) != 0 {
		w.Printf("switch %s.tag {\n", v)
		for i, kv := range known {
			w.Printf("case %d:\n", tag(i))
			w.Printf("return %s\n", kv.Value.ExactString())
		}
		w.Printf("}\n")
	}
	w.Printf("return %s.other\n", v)
	w.Printf("}\n\n")

	writeString(w, e, v, v+".tag",
		func(_ model.Variant, i int) string { return fmt.Sprint(tag(i)) },
		`"`+catchAll.Name+`(" + `+formatInt(w, e.Repr, v+".other")+` + ")"`,
	)

	switch e.Compare {
	case model.CompareAsEnum:
		writeCompareAsEnum(w, e, v, x)
	case model.CompareAsInt:
		writeCompareAsInt(w, e, v, x)
	}
}

// writeCompareAsEnum orders variants by declaration order, then the values
// carried by the catch-all.
func writeCompareAsEnum(w *codefmt.Writer, e *model.Enum, v, x string) {
	cmp := w.Import("cmp", "")
	c := w.Name("c")

	w.Printf("// Compare returns -1, 0 or +1 ordering %s and %s by the declaration order of\n", v, x)
	w.Printf("// their variants, then by their carried values.\n")
	w.Printf("func (%s %s) Compare(%s %s) int {\n", v, e.Name, x, e.Name)
	w.Printf("if %s := %s.Compare(%s.rank(), %s.rank()); %s != 0 {\n", c, cmp, v, x, c)
	w.Printf("return %s\n", c)
	w.Printf("}\n")
	w.Printf("return %s.Compare(%s.other, %s.other)\n", cmp, v, x)
	w.Printf("}\n\n")

	w.Printf("func (%s %s) rank() int {\n", v, e.Name)
	tag := 0
	catchAllRank := 0
	var cases []string
	for i, variant := range e.Variants {
		if variant.IsCatchAll() {
			catchAllRank = i
			continue
		}
		tag++
		cases = append(cases, fmt.Sprintf("case %d:\nreturn %d\n", tag, i))
	}
	if len(cases) != 0 {
		w.Printf("switch %s.tag {\n", v)
		for _, code := range cases {
			w.Printf("%s", code)
		}
		w.Printf("}\n")
	}
	w.Printf("return %d\n", catchAllRank)
	w.Printf("}\n\n")
}

// writeCompareAsInt compares the base representations. A catch-all equals
// the known variant of the same value.
func writeCompareAsInt(w *codefmt.Writer, e *model.Enum, v, x string) {
	cmp := w.Import("cmp", "")
	to := ToMethod(e)

	w.Printf("// Equal reports whether %s and %s have the same %s representation.\n", v, x, e.Repr.Name)
	w.Printf("func (%s %s) Equal(%s %s) bool {\n", v, e.Name, x, e.Name)
	w.Printf("return %s.%s() == %s.%s()\n", v, to, x, to)
	w.Printf("}\n\n")

	w.Printf("// Compare returns -1, 0 or +1 ordering the %s representations of %s and %s.\n", e.Repr.Name, v, x)
	w.Printf("func (%s %s) Compare(%s %s) int {\n", v, e.Name, x, e.Name)
	w.Printf("return %s.Compare(%s.%s(), %s.%s())\n", cmp, v, to, x, to)
	w.Printf("}\n\n")
}
