// Package emit writes the Go code of resolved enums.
package emit

import (
	"go/token"
	"strings"

	"github.com/sublee/reprgen/internal/codefmt"
	"github.com/sublee/reprgen/internal/reprgen/model"
)

// ErrorsPath is the import path of the runtime errors of generated code.
const ErrorsPath = "github.com/sublee/reprgen/pkg/reprgenerrors"

// Write writes the code of a resolved enum in its mode.
func Write(w *codefmt.Writer, e *model.Enum) {
	if !e.Resolved() {
		panic("enum not resolved: " + e.Name)
	}

	// Locals must not shadow the generated package-level names.
	for _, name := range Names(e) {
		w.Reserve(name.Name)
	}

	switch e.Mode {
	case model.Closed:
		WriteClosed(w, e)
	case model.Open:
		WriteOpen(w, e)
	}
}

// Name is a generated package-level name and the position of the
// declaration element it comes from.
type Name struct {
	Name string
	Pos  token.Pos
}

// Names returns the package-level names declared by the code of e.
func Names(e *model.Enum) []Name {
	names := []Name{{e.Name, e.Pos}}
	for _, v := range e.Known() {
		names = append(names, Name{v.Name, v.Pos})
	}
	if v, ok := e.CatchAll(); ok {
		names = append(names, Name{v.Name, v.Pos})
	}
	return append(names, Name{FromFunc(e), e.Pos})
}

// FromFunc returns the name of the conversion function from the
// representation.
//
//	ColorChannel, uint8 => ColorChannelFromUint8
func FromFunc(e *model.Enum) string {
	return e.Name + "From" + ToMethod(e)
}

// ToMethod returns the name of the conversion method to the representation.
//
//	uint8 => Uint8
func ToMethod(e *model.Enum) string {
	return codefmt.Title(e.Repr.Name)
}

func writeDoc(w *codefmt.Writer, doc []string, fallback ...string) {
	if len(doc) == 0 {
		doc = fallback
	}
	for _, line := range doc {
		if line == "" {
			w.Printf("//\n")
			continue
		}
		w.Printf("// %s\n", line)
	}
}

// writeString writes the String method. known writes the switch cases for
// known variants. unknown is the expression of the fallback string.
func writeString(w *codefmt.Writer, e *model.Enum, recv, subject string, known func(v model.Variant, i int) string, unknown string) {
	w.Printf("// String returns the name of the variant of %s.\n", recv)
	w.Printf("func (%s %s) String() string {\n", recv, e.Name)
	if vs := e.Known(); len(vs) != 0 {
		w.Printf("switch %s {\n", subject)
		for i, v := range vs {
			w.Printf("case %s:\n", known(v, i))
			w.Printf("return %q\n", v.Name)
		}
		w.Printf("}\n")
	}
	w.Printf("return %s\n", unknown)
	w.Printf("}\n\n")
}

// formatInt returns the expression formatting the integer expr of typ in
// decimal.
func formatInt(w *codefmt.Writer, typ model.IntType, expr string) string {
	strconv := w.Import("strconv", "")
	if typ.Signed {
		return strconv + ".FormatInt(int64(" + expr + "), 10)"
	}
	return strconv + ".FormatUint(uint64(" + expr + "), 10)"
}

func joinNames(vs []model.Variant) string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return strings.Join(names, ", ")
}
