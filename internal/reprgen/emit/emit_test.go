package emit_test

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/reprgen/internal/codefmt"
	"github.com/sublee/reprgen/internal/reprgen/emit"
	"github.com/sublee/reprgen/internal/reprgen/model"
)

func resolved(t *testing.T, d *model.Declaration, inv model.Invocation) *model.Enum {
	t.Helper()
	fset := token.NewFileSet()
	e, err := model.Build(fset, d, inv)
	require.NoError(t, err)
	e, err = model.Resolve(fset, e)
	require.NoError(t, err)
	return e
}

// generate writes e into a formatted file of package p.
func generate(t *testing.T, e *model.Enum) string {
	t.Helper()

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, codefmt.NewNS())
	emit.Write(w, e)

	var file bytes.Buffer
	fmt.Fprintf(&file, "package p\n\nimport (\n")
	for _, name := range w.SortedImports() {
		imp := w.Imports()[name]
		if imp.HasAlias {
			fmt.Fprintf(&file, "%s %q\n", name, imp.Path)
		} else {
			fmt.Fprintf(&file, "%q\n", imp.Path)
		}
	}
	fmt.Fprintf(&file, ")\n\n")
	file.Write(buf.Bytes())

	code, err := format.Source(file.Bytes())
	require.NoError(t, err, file.String())
	return string(code)
}

func colorChannel() *model.Declaration {
	lit := func(name, text string) model.VariantDecl {
		return model.VariantDecl{Name: name, Discriminant: &model.Literal{Text: text}}
	}
	return &model.Declaration{
		Name:     "ColorChannel",
		Doc:      []string{"ColorChannel is a color channel."},
		Enum:     true,
		Reprs:    []model.TypeRef{{Name: "uint8"}},
		Variants: []model.VariantDecl{lit("RED", "0"), lit("GREEN", "1"), lit("BLUE", "2")},
	}
}

func colorCommand() *model.Declaration {
	return &model.Declaration{
		Name: "ColorCommand",
		Enum: true,
		Variants: []model.VariantDecl{
			{Name: "SetRed"},
			{Name: "SetGreen"},
			{Name: "SetBlue"},
			{Name: "Other", Fields: []model.TypeRef{{Name: "uint8"}}},
		},
	}
}

func openInv(compare model.Compare) model.Invocation {
	return model.Invocation{Mode: model.Open, Base: &model.TypeRef{Name: "uint8"}, Compare: compare}
}

func TestWriteClosed(t *testing.T) {
	code := generate(t, resolved(t, colorChannel(), model.Invocation{Mode: model.Closed}))

	assert.Contains(t, code, "\"github.com/sublee/reprgen/pkg/reprgenerrors\"")
	assert.Contains(t, code, "// ColorChannel is a color channel.\ntype ColorChannel uint8\n")
	assert.Contains(t, code, "\tRED   ColorChannel = 0\n")
	assert.Contains(t, code, "\tBLUE  ColorChannel = 2\n")
	assert.Contains(t, code, "func ColorChannelFromUint8(value uint8) (ColorChannel, error) {\n")
	assert.Contains(t, code, "\tswitch v := ColorChannel(value); v {\n\tcase RED, GREEN, BLUE:\n\t\treturn v, nil\n")
	assert.Contains(t, code, `return 0, &reprgenerrors.UnknownValueError[uint8]{Type: "ColorChannel", Value: value}`)
	assert.Contains(t, code, "func (v ColorChannel) Uint8() uint8 {\n\treturn uint8(v)\n}")
	assert.Contains(t, code, "\tcase GREEN:\n\t\treturn \"GREEN\"\n")
	assert.Contains(t, code, `return "ColorChannel(" + strconv.FormatUint(uint64(v), 10) + ")"`)
}

func TestWriteClosedSigned(t *testing.T) {
	d := &model.Declaration{
		Name:  "Level",
		Enum:  true,
		Reprs: []model.TypeRef{{Name: "int8"}},
		Variants: []model.VariantDecl{
			{Name: "Low", Discriminant: &model.Literal{Text: "-1"}},
			{Name: "Mid"},
		},
	}
	code := generate(t, resolved(t, d, model.Invocation{Mode: model.Closed}))

	assert.Contains(t, code, "\tLow Level = -1\n")
	assert.Contains(t, code, "\tMid Level = 0\n")
	assert.Contains(t, code, "strconv.FormatInt(int64(v), 10)")
}

func TestWriteClosedEmpty(t *testing.T) {
	d := &model.Declaration{Name: "E", Enum: true, Reprs: []model.TypeRef{{Name: "uint16"}}}
	code := generate(t, resolved(t, d, model.Invocation{Mode: model.Closed}))

	assert.NotContains(t, code, "const (")
	assert.NotContains(t, code, "switch")
	assert.Contains(t, code, "func EFromUint16(value uint16) (E, error) {\n\treturn 0, &reprgenerrors.UnknownValueError[uint16]")
}

func TestWriteOpen(t *testing.T) {
	code := generate(t, resolved(t, colorCommand(), openInv(model.CompareNone)))

	assert.Contains(t, code, "type ColorCommand struct {\n\ttag   int\n\tother uint8\n}")
	assert.Contains(t, code, "\tSetRed   = ColorCommand{tag: 1}\n")
	assert.Contains(t, code, "\tSetBlue  = ColorCommand{tag: 3}\n")
	assert.Contains(t, code, "func Other(value uint8) ColorCommand {\n\treturn ColorCommand{other: value}\n}")
	assert.Contains(t, code, "func (v ColorCommand) AsOther() (uint8, bool) {\n\treturn v.other, v.tag == 0\n}")
	assert.Contains(t, code, "func ColorCommandFromUint8(value uint8) ColorCommand {\n\tswitch value {\n\tcase 0:\n\t\treturn SetRed\n")
	assert.Contains(t, code, "\treturn Other(value)\n}")
	assert.Contains(t, code, "func (v ColorCommand) Uint8() uint8 {\n\tswitch v.tag {\n\tcase 1:\n\t\treturn 0\n")
	assert.Contains(t, code, "\treturn v.other\n}")
	assert.Contains(t, code, `return "Other(" + strconv.FormatUint(uint64(v.other), 10) + ")"`)
	assert.NotContains(t, code, "reprgenerrors")
	assert.NotContains(t, code, "Compare")
}

func TestWriteOpenDocumentsVariables(t *testing.T) {
	code := generate(t, resolved(t, colorCommand(), openInv(model.CompareNone)))
	assert.Contains(t, code, "// The known variants of ColorCommand are package variables since Go has no\n"+
		"// struct constants. They must not be reassigned.\ntype ColorCommand struct {")

	d := colorCommand()
	d.Doc = []string{"ColorCommand is a command."}
	code = generate(t, resolved(t, d, openInv(model.CompareNone)))
	assert.Contains(t, code, "// ColorCommand is a command.\n//\n// The known variants of ColorCommand")
}

func TestWriteOpenOnlyCatchAll(t *testing.T) {
	d := &model.Declaration{
		Name:     "Raw",
		Enum:     true,
		Variants: []model.VariantDecl{{Name: "value", Fields: []model.TypeRef{{Name: "int32"}}}},
	}
	inv := model.Invocation{Mode: model.Open, Base: &model.TypeRef{Name: "int32"}, Compare: model.CompareAsEnum}
	code := generate(t, resolved(t, d, inv))

	assert.NotContains(t, code, "var (")
	// The parameter avoids the catch-all name.
	assert.Contains(t, code, "func RawFromInt32(value2 int32) Raw {\n\treturn value(value2)\n}")
	assert.Contains(t, code, "func (v Raw) rank() int {\n\treturn 0\n}")
}

func TestWriteOpenCompareAsEnum(t *testing.T) {
	code := generate(t, resolved(t, colorCommand(), openInv(model.CompareAsEnum)))

	assert.Contains(t, code, "\"cmp\"")
	assert.Contains(t, code, "func (v ColorCommand) Compare(w ColorCommand) int {\n\tif c := cmp.Compare(v.rank(), w.rank()); c != 0 {")
	assert.Contains(t, code, "\treturn cmp.Compare(v.other, w.other)\n")
	assert.Contains(t, code, "\tcase 3:\n\t\treturn 2\n\t}\n\treturn 3\n}")
	assert.NotContains(t, code, "Equal")
}

func TestWriteOpenCompareAsInt(t *testing.T) {
	code := generate(t, resolved(t, colorCommand(), openInv(model.CompareAsInt)))

	assert.Contains(t, code, "func (v ColorCommand) Equal(w ColorCommand) bool {\n\treturn v.Uint8() == w.Uint8()\n}")
	assert.Contains(t, code, "func (v ColorCommand) Compare(w ColorCommand) int {\n\treturn cmp.Compare(v.Uint8(), w.Uint8())\n}")
	assert.NotContains(t, code, "rank")
}

func TestLocalsAvoidVariants(t *testing.T) {
	d := &model.Declaration{
		Name:     "E",
		Enum:     true,
		Reprs:    []model.TypeRef{{Name: "uint8"}},
		Variants: []model.VariantDecl{{Name: "v"}, {Name: "value"}},
	}
	code := generate(t, resolved(t, d, model.Invocation{Mode: model.Closed}))

	assert.Contains(t, code, "func EFromUint8(value2 uint8) (E, error) {\n\tswitch v2 := E(value2); v2 {\n\tcase v, value:")
}

func TestImportAvoidsPackageNames(t *testing.T) {
	e := resolved(t, colorChannel(), model.Invocation{Mode: model.Closed})

	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, codefmt.NewNS("strconv"))
	emit.Write(w, e)

	assert.Contains(t, w.Imports(), "strconv2")
	assert.Contains(t, buf.String(), "strconv2.FormatUint")
}

func TestNames(t *testing.T) {
	names := func(e *model.Enum) []string {
		var ss []string
		for _, n := range emit.Names(e) {
			ss = append(ss, n.Name)
		}
		return ss
	}

	e := resolved(t, colorCommand(), openInv(model.CompareNone))
	assert.Equal(t, []string{"ColorCommand", "SetRed", "SetGreen", "SetBlue", "Other", "ColorCommandFromUint8"}, names(e))

	e = resolved(t, colorChannel(), model.Invocation{Mode: model.Closed})
	assert.Equal(t, []string{"ColorChannel", "RED", "GREEN", "BLUE", "ColorChannelFromUint8"}, names(e))
}

func TestFromFuncAlias(t *testing.T) {
	d := &model.Declaration{Name: "B", Enum: true, Reprs: []model.TypeRef{{Name: "byte"}}}
	e := resolved(t, d, model.Invocation{Mode: model.Closed})
	assert.Equal(t, "BFromUint8", emit.FromFunc(e))
	assert.Equal(t, "Uint8", emit.ToMethod(e))
}

func TestWriteUnresolved(t *testing.T) {
	e, err := model.Build(token.NewFileSet(), colorChannel(), model.Invocation{Mode: model.Closed})
	require.NoError(t, err)

	w := codefmt.NewWriter(&bytes.Buffer{}, codefmt.NewNS())
	assert.Panics(t, func() { emit.Write(w, e) })
}
