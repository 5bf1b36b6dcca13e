package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"io"
	"maps"
	"path"
	"slices"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"
)

// Writer is a writer for generated code.
type Writer struct {
	w       io.Writer
	imports map[string]Import
	ns      NS
}

// NewWriter creates a new [Writer]. Package-level names reserved in ns are
// avoided when naming imports.
func NewWriter(w io.Writer, ns NS) *Writer {
	return &Writer{
		w:       w,
		imports: make(map[string]Import),
		ns:      ns,
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer.
func (w *Writer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.w, format, args...)
}

// Name returns a unique name in the namespace of the writer.
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

// Reserve marks a name as used in the namespace of the writer.
func (w *Writer) Reserve(name string) bool {
	return w.ns.Reserve(name)
}

// WithNS copies the writer and sets a new namespace.
func (w *Writer) WithNS(ns NS) *Writer {
	return &Writer{
		w:       w.w,
		imports: w.imports,
		ns:      ns,
	}
}

type Import struct {
	// Path is the import path of the package.
	Path string

	// HasAlias indicates that the import has an alias.
	HasAlias bool
}

// Imports returns the collected imports by their local names.
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// SortedImports returns the local names of the collected imports in the order
// of their paths.
func (w *Writer) SortedImports() []string {
	names := slices.Collect(maps.Keys(w.imports))
	slices.SortFunc(names, func(a, b string) int {
		pa, pb := w.imports[a].Path, w.imports[b].Path
		if pa < pb {
			return -1
		}
		if pa > pb {
			return 1
		}
		return 0
	})
	return names
}

// Import adds an import for the package with the given path and name. It
// returns the name of the imported package. The name might be different if it
// has tried to resolve name conflicts.
//
//	// strconvName can be used to refer to the "strconv" package without any name conflict.
//	strconvName := w.Import("strconv", "")
//	w.Printf("%s.Itoa(42)", strconvName)
//
// When calling it, the package to import is recorded. Call [Imports] to
// retrieve them.
func (w *Writer) Import(importPath, name string) string {
	pkgName := path.Base(importPath)
	if name == "" {
		name = pkgName
	}

	for name := range DisambiguateName(name) {
		prev, ok := w.imports[name]
		if ok && prev.Path == importPath {
			// Already imported with the same name.
			return name
		}
		if !ok && !w.ns.Has(name) {
			w.imports[name] = Import{Path: importPath, HasAlias: name != pkgName}
			return name
		}
	}

	panic("unreachable")
}

// ImportSpecs records the import specs of a source file which are referred to
// by node, and rewrites the references if the local name had to change.
func ImportSpecs[T ast.Node](w *Writer, specs []*ast.ImportSpec, node T) T {
	byName := make(map[string]string)
	for _, spec := range specs {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := path.Base(importPath)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		byName[name] = importPath
	}

	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		id, ok := sel.X.(*ast.Ident)
		if !ok || id.Obj != nil {
			// Not a package qualifier.
			return true
		}

		importPath, ok := byName[id.Name]
		if !ok {
			return true
		}

		newName := w.Import(importPath, id.Name)
		if newName != id.Name {
			c.Replace(&ast.SelectorExpr{
				X:   &ast.Ident{NamePos: id.NamePos, Name: newName},
				Sel: &ast.Ident{NamePos: id.NamePos + token.Pos(len(newName)+1), Name: sel.Sel.Name},
			})
		}
		return false
	}, nil).(T)
}
