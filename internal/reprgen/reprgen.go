package reprgeninternal

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/reprgen/internal/codefmt"
	"github.com/sublee/reprgen/internal/reprgen/diag"
	"github.com/sublee/reprgen/internal/reprgen/emit"
	"github.com/sublee/reprgen/internal/reprgen/model"
	"github.com/sublee/reprgen/internal/reprgen/parse"
)

// Reprgen generates enum code for a package. Call [Build] and then [Generate]
// to get the generated code. All potential errors are returned by [Build].
// Once [Build] succeeds, [Generate] never fails.
type Reprgen struct {
	name string
	fset *token.FileSet
	log  *zap.Logger

	// files are the Go files of the package. They are nil if the requests
	// come from a schema.
	files []*ast.File
	reqs  []model.Request

	ns     codefmt.NS
	owners map[string]token.Pos
	buf    *bytes.Buffer
	w      *codefmt.Writer

	enums     []*model.Enum
	annotated map[token.Pos]bool
}

// New creates a new [Reprgen] for the given package. The package must have
// its name and files. Its syntax is parsed from the files unless it is
// already given with comments.
func New(pkg *packages.Package, log *zap.Logger) (*Reprgen, error) {
	if pkg.Name == "" {
		return nil, errors.New("need pkg name")
	}

	fset := pkg.Fset
	if fset == nil {
		fset = token.NewFileSet()
	}

	files := pkg.Syntax
	if len(files) == 0 {
		for _, filename := range pkg.GoFiles {
			file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			files = append(files, file)
		}
	}

	rg := newReprgen(pkg.Name, fset, log)
	rg.files = files
	return rg, nil
}

// NewSchema creates a new [Reprgen] for requests parsed from a schema. The
// generated code belongs to the package name.
func NewSchema(name string, fset *token.FileSet, reqs []model.Request, log *zap.Logger) *Reprgen {
	rg := newReprgen(name, fset, log)
	rg.reqs = reqs
	return rg
}

func newReprgen(name string, fset *token.FileSet, log *zap.Logger) *Reprgen {
	if log == nil {
		log = zap.NewNop()
	}

	var buf bytes.Buffer
	ns := codefmt.NewNS()
	return &Reprgen{
		name:      name,
		fset:      fset,
		log:       log,
		ns:        ns,
		owners:    make(map[string]token.Pos),
		buf:       &buf,
		w:         codefmt.NewWriter(&buf, ns),
		annotated: make(map[token.Pos]bool),
	}
}

// Enums returns the enums built by [Build].
func (rg *Reprgen) Enums() []*model.Enum {
	return rg.enums
}

// Build parses the annotated declarations and builds their enums. All
// potential errors are returned by this method. It must be called before
// [Generate].
func (rg *Reprgen) Build() error {
	var errs []error

	// Parse requests from the Go files.
	front := parse.NewGo(rg.fset)
	for _, file := range rg.files {
		reqs, err := front.ParseFile(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rg.reqs = append(rg.reqs, reqs...)
	}

	for _, req := range rg.reqs {
		rg.annotated[req.Decl.Pos] = true
	}

	// Reserve the package-level names against conflicts. Annotated types are
	// replaced by the generated code.
	for _, file := range rg.files {
		for _, id := range parse.TopLevelNames(file) {
			if rg.annotated[id.Pos()] {
				continue
			}
			rg.ns.Reserve(id.Name)
			if _, ok := rg.owners[id.Name]; !ok {
				rg.owners[id.Name] = id.Pos()
			}
		}
	}

	for _, req := range rg.reqs {
		e, err := model.Build(rg.fset, req.Decl, req.Invocation)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		e, err = model.Resolve(rg.fset, e)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := rg.reserve(e); err != nil {
			errs = append(errs, err)
			continue
		}

		rg.enums = append(rg.enums, e)
		rg.log.Debug("built enum",
			zap.String("name", e.Name),
			zap.Stringer("mode", e.Mode),
			zap.String("repr", e.Repr.Name),
			zap.Int("variants", len(e.Variants)),
		)
	}

	return diag.Join(errs...)
}

// reserve claims the generated names of e in the package namespace.
func (rg *Reprgen) reserve(e *model.Enum) error {
	errs := diag.NewEmitter(rg.fset)
	for _, name := range emit.Names(e) {
		if owner, ok := rg.owners[name.Name]; ok {
			errs.Report(name.Pos, diag.NameConflict, "%s generated by %s is already declared at %s", name.Name, e.Name, codefmt.FormatPos(rg.fset, owner))
			continue
		}
		rg.owners[name.Name] = name.Pos
	}
	if errs.Failed() {
		return errs.Err()
	}

	for _, name := range emit.Names(e) {
		rg.ns.Reserve(name.Name)
	}
	return nil
}

// Generate generates the code for the package. It must be called after
// [Build] succeeds. It returns nil if there is nothing to generate.
func (rg *Reprgen) Generate() []byte {
	if len(rg.enums) == 0 {
		return nil
	}
	rg.writeEnumCode()
	rg.mergeCode()
	return rg.frameCode()
}

// writeEnumCode writes the declarations of the enums in declaration order.
func (rg *Reprgen) writeEnumCode() {
	rg.w.Printf("// reprgen: enums\n\n")
	for _, e := range rg.enums {
		local := maps.Clone(rg.ns)
		emit.Write(rg.w.WithNS(local), e)
	}
}

// mergeCode copies the code from the source files tagged with
// "//go:build reprgen" except the annotated types which are replaced by the
// generated code.
func (rg *Reprgen) mergeCode() {
	for _, file := range rg.files {
		if !parse.HasBuildTag(file) {
			continue
		}

		name := filepath.Base(rg.fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
				// Skip import declarations in files. Required imports will
				// be collected from their usage, and then rewritten as an
				// import declaration group.
				continue
			}

			// Erase annotated types
			var erased []ast.Node
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.TypeSpec)
				if !ok {
					return true
				}
				if rg.annotated[spec.Name.Pos()] {
					erased = append(erased, spec)
					c.Delete()
				}
				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok && len(gen.Specs) == 0 {
				continue
			}

			if first {
				fmt.Fprintf(rg.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.ImportSpecs(rg.w, file.Imports, decl)

			printer.Fprint(rg.buf, rg.fset, &printer.CommentedNode{
				Node:     decl,
				Comments: outside(file.Comments, erased),
			})
			fmt.Fprintf(rg.buf, "\n\n")
		}
	}
}

// outside returns the comment groups which are not inside the nodes.
func outside(comments []*ast.CommentGroup, nodes []ast.Node) []*ast.CommentGroup {
	if len(nodes) == 0 {
		return comments
	}

	var kept []*ast.CommentGroup
	for _, group := range comments {
		inside := false
		for _, node := range nodes {
			pos, end := node.Pos(), node.End()
			if spec, ok := node.(*ast.TypeSpec); ok {
				if spec.Doc != nil {
					pos = spec.Doc.Pos()
				}
				if spec.Comment != nil {
					end = spec.Comment.End()
				}
			}
			if pos <= group.Pos() && group.End() <= end {
				inside = true
				break
			}
		}
		if !inside {
			kept = append(kept, group)
		}
	}
	return kept
}

func (rg *Reprgen) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	if rg.files != nil {
		fmt.Fprintf(&buf, "//go:build !%s\n\n", parse.BuildTag)
	}
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/reprgen%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", rg.name)

	if imports := rg.w.SortedImports(); len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range imports {
			imp := rg.w.Imports()[alias]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	_, _ = io.Copy(&buf, rg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	} else {
		rg.log.Warn("generated code is not formatted", zap.Error(err))
	}
	return code
}
