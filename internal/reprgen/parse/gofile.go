// Package parse reads enum declarations from their surface forms and turns
// them into [model.Request]s.
//
// The Go front-end reads struct types annotated with directive comments in
// files constrained by "//go:build reprgen":
//
//	//reprgen:closed
//	//reprgen:repr uint8
//	type ColorChannel struct {
//		RED   struct{} `reprgen:"0"`
//		GREEN struct{} `reprgen:"1"`
//	}
//
// The YAML front-end reads schema files. See [YAML].
package parse

import (
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sublee/reprgen/internal/codefmt"
	"github.com/sublee/reprgen/internal/reprgen/diag"
	"github.com/sublee/reprgen/internal/reprgen/model"
)

// BuildTag is the build tag which marks declaration files.
const BuildTag = "reprgen"

// Go parses annotated struct types from Go source files.
type Go struct{ fset *token.FileSet }

var _ model.Parser = (*Go)(nil)

// NewGo creates a Go front-end which records positions in fset.
func NewGo(fset *token.FileSet) *Go {
	return &Go{fset: fset}
}

// Parse implements [model.Parser].
func (p *Go) Parse(filename string, src []byte) ([]model.Request, error) {
	file, err := parser.ParseFile(p.fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return p.ParseFile(file)
}

// ParseFile collects the requests from a file parsed with comments. Files
// without the build tag must not have any directive.
func (p *Go) ParseFile(file *ast.File) ([]model.Request, error) {
	errs := diag.NewEmitter(p.fset)

	if first := firstDirective(file); first != nil && !HasBuildTag(file) {
		errs.Report(first.Slash, diag.InvalidDirective, "%s needs the //go:build %s constraint", first.Text, BuildTag)
		return nil, errs.Err()
	}

	used := make(map[*ast.Comment]bool)
	var reqs []model.Request

	annotate := func(doc *ast.CommentGroup, decl func() *model.Declaration) {
		dirs, ok := parseDirectives(errs, doc)
		if !ok {
			return
		}
		for _, c := range doc.List {
			if isDirective(c) {
				used[c] = true
			}
		}

		d := decl()
		inv, ok := dirs.invocation(errs, d.Name)
		if !ok {
			return
		}
		d.Reprs = dirs.reprs
		reqs = append(reqs, model.Request{Decl: d, Invocation: inv})
	}

	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				doc := specDoc(spec)
				if doc == nil && !decl.Lparen.IsValid() {
					doc = decl.Doc
				}
				annotate(doc, func() *model.Declaration { return p.parseSpec(decl.Tok, spec, doc) })
			}

		case *ast.FuncDecl:
			annotate(decl.Doc, func() *model.Declaration {
				kind := "function"
				if decl.Recv != nil {
					kind = "method"
				}
				return &model.Declaration{Name: decl.Name.Name, Pos: decl.Name.Pos(), Kind: kind}
			})
		}
	}

	for _, group := range file.Comments {
		for _, c := range group.List {
			if isDirective(c) && !used[c] {
				errs.Report(c.Slash, diag.InvalidDirective, "misplaced directive %s", c.Text)
			}
		}
	}

	if errs.Failed() {
		return nil, errs.Err()
	}
	return reqs, nil
}

func specDoc(spec ast.Spec) *ast.CommentGroup {
	switch spec := spec.(type) {
	case *ast.TypeSpec:
		return spec.Doc
	case *ast.ValueSpec:
		return spec.Doc
	case *ast.ImportSpec:
		return spec.Doc
	}
	return nil
}

// parseSpec describes an annotated spec. Only struct types are enums.
func (p *Go) parseSpec(tok token.Token, spec ast.Spec, doc *ast.CommentGroup) *model.Declaration {
	switch spec := spec.(type) {
	case *ast.ValueSpec:
		return &model.Declaration{Name: spec.Names[0].Name, Pos: spec.Names[0].Pos(), Kind: tok.String() + " declaration"}
	case *ast.ImportSpec:
		return &model.Declaration{Name: spec.Path.Value, Pos: spec.Path.Pos(), Kind: "import declaration"}
	}

	ts := spec.(*ast.TypeSpec)
	d := &model.Declaration{
		Name: ts.Name.Name,
		Pos:  ts.Name.Pos(),
		Doc:  docLines(doc),
	}

	switch {
	case ts.Assign.IsValid():
		d.Kind = "type alias"
	case ts.TypeParams != nil:
		d.Kind = "generic type"
	default:
		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			d.Kind = p.describe(ts.Type)
			return d
		}

		d.Enum = true
		for _, field := range st.Fields.List {
			d.Variants = append(d.Variants, p.parseField(field)...)
		}
	}
	return d
}

func (p *Go) describe(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.InterfaceType:
		return "interface type"
	case *ast.MapType:
		return "map type"
	case *ast.ArrayType:
		return "array or slice type"
	case *ast.FuncType:
		return "function type"
	case *ast.ChanType:
		return "channel type"
	case *ast.StarExpr:
		return "pointer type"
	}
	return "defined as " + codefmt.Expr(p.fset, expr)
}

// parseField reads the variants declared by a struct field.
//
//	A    struct{}           `reprgen:"1"` // unit variant
//	B, C struct{}                         // two unit variants
//	X    uint8                            // one payload field
//	Y    struct{ a, b int }               // two payload fields
func (p *Go) parseField(field *ast.Field) []model.VariantDecl {
	var lit *model.Literal
	if field.Tag != nil {
		if tag, err := strconv.Unquote(field.Tag.Value); err == nil {
			if text, ok := reflect.StructTag(tag).Lookup(BuildTag); ok {
				lit = &model.Literal{Text: text, Pos: field.Tag.Pos()}
			}
		}
	}

	fields := p.payload(field.Type)
	doc := docLines(field.Doc)

	if len(field.Names) == 0 {
		// Embedded fields have no variant name.
		return []model.VariantDecl{{Pos: field.Type.Pos(), Discriminant: lit, Fields: fields, Doc: doc}}
	}

	variants := make([]model.VariantDecl, len(field.Names))
	for i, name := range field.Names {
		variants[i] = model.VariantDecl{
			Name:         name.Name,
			Pos:          name.Pos(),
			Doc:          doc,
			Discriminant: lit,
			Fields:       fields,
		}
	}
	return variants
}

// payload lists the payload field types of a variant type. struct{} has
// none.
func (p *Go) payload(expr ast.Expr) []model.TypeRef {
	st, ok := ast.Unparen(expr).(*ast.StructType)
	if !ok {
		return []model.TypeRef{{Name: codefmt.Expr(p.fset, expr), Pos: expr.Pos()}}
	}

	var refs []model.TypeRef
	for _, f := range st.Fields.List {
		ref := model.TypeRef{Name: codefmt.Expr(p.fset, f.Type), Pos: f.Type.Pos()}
		n := max(len(f.Names), 1)
		for range n {
			refs = append(refs, ref)
		}
	}
	return refs
}

// docLines returns the text lines of a doc comment without directives.
func docLines(doc *ast.CommentGroup) []string {
	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func firstDirective(file *ast.File) *ast.Comment {
	for _, group := range file.Comments {
		for _, c := range group.List {
			if isDirective(c) {
				return c
			}
		}
	}
	return nil
}

// HasBuildTag reports whether the file has a "//go:build reprgen" constraint
// which excludes it from normal builds.
func HasBuildTag(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}

			mentioned := false
			withoutTag := expr.Eval(func(tag string) bool {
				if tag == BuildTag {
					mentioned = true
					return false
				}
				return true
			})
			return mentioned && !withoutTag
		}
	}
	return false
}

// TopLevelNames returns the identifiers declared at package scope by file.
// Methods, blank identifiers and init functions are excluded.
func TopLevelNames(file *ast.File) []*ast.Ident {
	var names []*ast.Ident
	add := func(id *ast.Ident) {
		if id.Name != "_" && id.Name != "init" {
			names = append(names, id)
		}
	}

	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					add(spec.Name)
				case *ast.ValueSpec:
					for _, id := range spec.Names {
						add(id)
					}
				}
			}
		case *ast.FuncDecl:
			if decl.Recv == nil {
				add(decl.Name)
			}
		}
	}
	return names
}
