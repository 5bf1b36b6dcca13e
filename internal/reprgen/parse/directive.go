package parse

import (
	"go/ast"
	"go/token"
	"strings"
	"unicode"

	"github.com/sublee/reprgen/internal/reprgen/diag"
	"github.com/sublee/reprgen/internal/reprgen/model"
)

// DirectivePrefix starts every reprgen directive comment.
const DirectivePrefix = "//reprgen:"

// word is a whitespace-separated token of a directive with its position.
type word struct {
	text string
	pos  token.Pos
}

// splitWords splits a directive line into words.
//
//	//reprgen:open base=uint8 compare=as_int
//	  ^^^^^^^^^^^^ ^^^^^^^^^^ ^^^^^^^^^^^^^^
func splitWords(c *ast.Comment) []word {
	text := strings.TrimPrefix(c.Text, "//")
	base := c.Slash + 2

	var words []word
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, word{text[start:i], base + token.Pos(start)})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, word{text[start:], base + token.Pos(start)})
	}
	return words
}

// isDirective reports whether c is a reprgen directive comment.
func isDirective(c *ast.Comment) bool {
	return strings.HasPrefix(c.Text, DirectivePrefix)
}

// directives is the set of directives attached to one declaration.
type directives struct {
	pos     token.Pos // first directive
	mode    *model.Mode
	modePos token.Pos
	base    *model.TypeRef
	compare model.Compare
	reprs   []model.TypeRef
}

// parseDirectives reads the reprgen directives of a doc comment. ok is false
// if the group has no directive at all. Invalid directives are reported to
// errs.
func parseDirectives(errs *diag.Emitter, doc *ast.CommentGroup) (d directives, ok bool) {
	if doc == nil {
		return d, false
	}

	for _, c := range doc.List {
		if !isDirective(c) {
			continue
		}
		if !ok {
			d.pos = c.Slash
			ok = true
		}

		words := splitWords(c)
		name := strings.TrimPrefix(words[0].text, "reprgen:")
		args := words[1:]

		switch name {
		case "closed":
			if !d.setMode(errs, model.Closed, words[0]) {
				continue
			}
			for _, arg := range args {
				errs.Report(arg.pos, diag.InvalidDirective, "reprgen:closed takes no arguments: %s", arg.text)
			}

		case "open":
			if !d.setMode(errs, model.Open, words[0]) {
				continue
			}
			d.parseOpenArgs(errs, args)

		case "repr":
			if len(args) == 0 {
				errs.Report(words[0].pos, diag.InvalidDirective, "reprgen:repr needs a type")
			}
			for _, arg := range args {
				// Non-integer tokens are accepted and ignored like repr(C).
				for _, t := range strings.Split(arg.text, ",") {
					if t != "" {
						d.reprs = append(d.reprs, model.TypeRef{Name: t, Pos: arg.pos})
					}
				}
			}

		default:
			errs.Report(words[0].pos, diag.InvalidDirective, "unknown directive %s", words[0].text)
		}
	}
	return d, ok
}

func (d *directives) setMode(errs *diag.Emitter, mode model.Mode, w word) bool {
	if d.mode != nil {
		if *d.mode == mode {
			errs.Report(w.pos, diag.InvalidDirective, "reprgen:%s repeated", mode)
		} else {
			errs.Report(w.pos, diag.InvalidDirective, "reprgen:%s conflicts with reprgen:%s", mode, *d.mode)
		}
		return false
	}
	d.mode = &mode
	d.modePos = w.pos
	return true
}

func (d *directives) parseOpenArgs(errs *diag.Emitter, args []word) {
	seen := make(map[string]bool)
	for _, arg := range args {
		key, value, found := strings.Cut(arg.text, "=")
		if !found || value == "" {
			errs.Report(arg.pos, diag.InvalidDirective, "reprgen:open argument must be key=value: %s", arg.text)
			continue
		}
		if seen[key] {
			errs.Report(arg.pos, diag.InvalidDirective, "reprgen:open argument %s repeated", key)
			continue
		}
		seen[key] = true

		valuePos := arg.pos + token.Pos(len(key)+1)
		switch key {
		case "base":
			d.base = &model.TypeRef{Name: value, Pos: valuePos}
		case "compare":
			c, ok := model.ParseCompare(value)
			if !ok {
				errs.Report(valuePos, diag.InvalidDirective, "compare must be none, as_enum or as_int: %s", value)
				continue
			}
			d.compare = c
		default:
			errs.Report(arg.pos, diag.InvalidDirective, "unknown reprgen:open argument %s", key)
		}
	}
}

// invocation returns the generation entry point requested by d. It reports
// a declaration which has directives but no mode.
func (d *directives) invocation(errs *diag.Emitter, name string) (model.Invocation, bool) {
	if d.mode == nil {
		errs.Report(d.pos, diag.InvalidDirective, "%s needs reprgen:closed or reprgen:open", name)
		return model.Invocation{}, false
	}
	return model.Invocation{
		Mode:    *d.mode,
		Base:    d.base,
		Compare: d.compare,
		Pos:     d.modePos,
	}, true
}
