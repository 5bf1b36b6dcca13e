package parse

import (
	"go/token"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/sublee/reprgen/internal/reprgen/diag"
	"github.com/sublee/reprgen/internal/reprgen/model"
)

// Schema is the content of a schema file.
type Schema struct {
	// Package is the package name of the generated code. It is empty if the
	// schema does not set it.
	Package  string
	Requests []model.Request
}

// YAML parses enum declarations from schema files:
//
//	package: color
//	enums:
//	  - name: ColorChannel
//	    repr: uint8
//	    variants:
//	      - name: RED
//	        value: 0
//	      - GREEN
//	  - name: ColorCommand
//	    mode: open
//	    base: uint8
//	    compare: as_int
//	    variants: [SetRed, SetGreen, {name: Other, payload: uint8}]
//
// Literal values are read verbatim as Go integer literals.
type YAML struct{ fset *token.FileSet }

var _ model.Parser = (*YAML)(nil)

// NewYAML creates a YAML front-end which records positions in fset.
func NewYAML(fset *token.FileSet) *YAML {
	return &YAML{fset: fset}
}

// Parse implements [model.Parser].
func (p *YAML) Parse(filename string, src []byte) ([]model.Request, error) {
	s, err := p.ParseSchema(filename, src)
	if err != nil {
		return nil, err
	}
	return s.Requests, nil
}

// ParseSchema parses a whole schema file.
func (p *YAML) ParseSchema(filename string, src []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, errors.Wrapf(err, "parse %s", filename)
	}

	file := p.fset.AddFile(filename, -1, len(src))
	file.SetLinesForContent(src)

	sp := &schemaParser{file: file, errs: diag.NewEmitter(p.fset)}
	s := sp.schema(&root)
	if sp.errs.Failed() {
		return nil, sp.errs.Err()
	}
	return s, nil
}

type schemaParser struct {
	file *token.File
	errs *diag.Emitter
}

// pos maps the position of n into the file set.
func (sp *schemaParser) pos(n *yaml.Node) token.Pos {
	if n == nil || n.Line < 1 || n.Line > sp.file.LineCount() {
		return token.NoPos
	}
	pos := sp.file.LineStart(n.Line) + token.Pos(n.Column-1)
	if int(pos)-sp.file.Base() > sp.file.Size() {
		return sp.file.LineStart(n.Line)
	}
	return pos
}

func (sp *schemaParser) fail(n *yaml.Node, format string, args ...any) {
	sp.errs.Report(sp.pos(n), diag.InvalidDirective, format, args...)
}

// fields returns the values of a mapping node by key. Unknown keys are
// reported.
func (sp *schemaParser) fields(n *yaml.Node, what string, known ...string) map[string]*yaml.Node {
	m := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch {
		case !slices.Contains(known, key.Value):
			sp.fail(key, "unknown %s key %q", what, key.Value)
		case m[key.Value] != nil:
			sp.fail(key, "%s key %q repeated", what, key.Value)
		default:
			m[key.Value] = value
		}
	}
	return m
}

// scalar returns the value of a scalar node. ok is false if n is absent. A
// non-scalar node is reported.
func (sp *schemaParser) scalar(n *yaml.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	if n.Kind != yaml.ScalarNode {
		sp.fail(n, "%s must be a scalar", key)
		return "", false
	}
	return n.Value, true
}

// scalars returns the values of a scalar or a sequence of scalars.
func (sp *schemaParser) scalars(n *yaml.Node, key string) []*yaml.Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return []*yaml.Node{n}
	case yaml.SequenceNode:
		var items []*yaml.Node
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				sp.fail(item, "%s must be a list of scalars", key)
				continue
			}
			items = append(items, item)
		}
		return items
	}
	sp.fail(n, "%s must be a scalar or a list", key)
	return nil
}

func (sp *schemaParser) schema(root *yaml.Node) *Schema {
	s := &Schema{}
	if root.Kind == 0 {
		// Empty document
		return s
	}

	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) != 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		sp.fail(doc, "schema must be a mapping")
		return s
	}

	fields := sp.fields(doc, "schema", "package", "enums")
	s.Package, _ = sp.scalar(fields["package"], "package")

	enums := fields["enums"]
	if enums == nil {
		return s
	}
	if enums.Kind != yaml.SequenceNode {
		sp.fail(enums, "enums must be a list")
		return s
	}

	for _, entry := range enums.Content {
		if req, ok := sp.enum(entry); ok {
			s.Requests = append(s.Requests, req)
		}
	}
	return s
}

func (sp *schemaParser) enum(entry *yaml.Node) (model.Request, bool) {
	if entry.Kind != yaml.MappingNode {
		sp.fail(entry, "enum must be a mapping")
		return model.Request{}, false
	}

	fields := sp.fields(entry, "enum", "name", "doc", "mode", "repr", "base", "compare", "variants")

	name, ok := sp.scalar(fields["name"], "name")
	if !ok || name == "" {
		sp.fail(entry, "enum needs a name")
		return model.Request{}, false
	}

	d := &model.Declaration{Name: name, Pos: sp.pos(fields["name"])}
	if doc, ok := sp.scalar(fields["doc"], "doc"); ok && doc != "" {
		d.Doc = strings.Split(strings.TrimSpace(doc), "\n")
	}

	inv := model.Invocation{Mode: model.Closed, Pos: d.Pos}
	if n := fields["mode"]; n != nil {
		mode, _ := sp.scalar(n, "mode")
		switch mode {
		case "closed":
		case "open":
			inv.Mode = model.Open
		default:
			sp.fail(n, "mode must be closed or open: %s", mode)
		}
		inv.Pos = sp.pos(n)
	}

	for _, n := range sp.scalars(fields["repr"], "repr") {
		d.Reprs = append(d.Reprs, model.TypeRef{Name: n.Value, Pos: sp.pos(n)})
	}

	if n := fields["base"]; n != nil {
		if inv.Mode != model.Open {
			sp.fail(n, "base is an argument of open mode")
		} else if base, ok := sp.scalar(n, "base"); ok {
			inv.Base = &model.TypeRef{Name: base, Pos: sp.pos(n)}
		}
	}

	if n := fields["compare"]; n != nil {
		value, _ := sp.scalar(n, "compare")
		c, ok := model.ParseCompare(value)
		switch {
		case inv.Mode != model.Open:
			sp.fail(n, "compare is an argument of open mode")
		case !ok:
			sp.fail(n, "compare must be none, as_enum or as_int: %s", value)
		default:
			inv.Compare = c
		}
	}

	switch variants := fields["variants"]; {
	case variants == nil:
		d.Kind = "no variants"
	case variants.Kind != yaml.SequenceNode:
		d.Kind = "variants is not a list"
	default:
		d.Enum = true
		for _, item := range variants.Content {
			if v, ok := sp.variant(item); ok {
				d.Variants = append(d.Variants, v)
			}
		}
	}

	return model.Request{Decl: d, Invocation: inv}, true
}

func (sp *schemaParser) variant(item *yaml.Node) (model.VariantDecl, bool) {
	switch item.Kind {
	case yaml.ScalarNode:
		return model.VariantDecl{Name: item.Value, Pos: sp.pos(item)}, true
	case yaml.MappingNode:
	default:
		sp.fail(item, "variant must be a name or a mapping")
		return model.VariantDecl{}, false
	}

	fields := sp.fields(item, "variant", "name", "doc", "value", "payload")

	v := model.VariantDecl{Pos: sp.pos(item)}
	if name, ok := sp.scalar(fields["name"], "name"); ok {
		v.Name = name
		v.Pos = sp.pos(fields["name"])
	}
	if doc, ok := sp.scalar(fields["doc"], "doc"); ok && doc != "" {
		v.Doc = strings.Split(strings.TrimSpace(doc), "\n")
	}
	if text, ok := sp.scalar(fields["value"], "value"); ok {
		v.Discriminant = &model.Literal{Text: text, Pos: sp.pos(fields["value"])}
	}
	for _, n := range sp.scalars(fields["payload"], "payload") {
		v.Fields = append(v.Fields, model.TypeRef{Name: n.Value, Pos: sp.pos(n)})
	}
	return v, true
}
