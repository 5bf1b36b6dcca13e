package model

import (
	"go/token"

	"github.com/sublee/reprgen/internal/reprgen/diag"
)

// Build validates decl into an unresolved [Enum] for the generation entry
// point inv. All diagnostics of the declaration are collected before the
// error is returned.
func Build(fset *token.FileSet, decl *Declaration, inv Invocation) (*Enum, error) {
	errs := diag.NewEmitter(fset)

	if !decl.Enum {
		kind := decl.Kind
		if kind == "" {
			kind = "not an enumerated type"
		}
		errs.Report(decl.Pos, diag.NotAnEnum, "%s is not an enum: %s", decl.Name, kind)
		return nil, errs.Err()
	}

	e := &Enum{
		Name:    decl.Name,
		Pos:     decl.Pos,
		Doc:     decl.Doc,
		Mode:    inv.Mode,
		Compare: inv.Compare,
	}

	repr, ok := buildRepr(errs, decl, inv)
	e.Repr = repr

	seen := make(map[string]bool, len(decl.Variants))
	var catchAlls []VariantDecl

	for _, vd := range decl.Variants {
		if vd.Name == "" || vd.Name == "_" {
			errs.Report(vd.Pos, diag.InvalidVariant, "%s has a variant without name", decl.Name)
			continue
		}
		if seen[vd.Name] {
			errs.Report(vd.Pos, diag.InvalidVariant, "%s.%s redeclared", decl.Name, vd.Name)
			continue
		}
		seen[vd.Name] = true

		v := Variant{Name: vd.Name, Pos: vd.Pos, Doc: vd.Doc}

		if vd.Discriminant != nil {
			lit, err := ParseLiteral(vd.Discriminant.Text)
			switch {
			case err != nil:
				errs.Report(vd.Discriminant.Pos, diag.InvalidDiscriminant, "invalid discriminant of %s.%s: %s", decl.Name, vd.Name, err.Error())
			case ok && !repr.Contains(lit):
				errs.Report(vd.Discriminant.Pos, diag.InvalidDiscriminant, "discriminant %s of %s.%s overflows %s", lit.ExactString(), decl.Name, vd.Name, repr)
			default:
				v.Explicit = lit
			}
		}

		if len(vd.Fields) != 0 {
			switch inv.Mode {
			case Closed:
				errs.Report(vd.Pos, diag.UnexpectedPayload, "%s.%s has a payload but closed enums take unit variants only", decl.Name, vd.Name)
				continue
			case Open:
				if vd.Discriminant != nil {
					errs.Report(vd.Pos, diag.PayloadWithDiscriminant, "%s.%s has both a payload and a discriminant", decl.Name, vd.Name)
				}
				catchAlls = append(catchAlls, vd)
				v.Payload = Payload{Kind: CatchAll, Type: repr}
			}
		}

		e.Variants = append(e.Variants, v)
	}

	if inv.Mode == Open {
		switch len(catchAlls) {
		case 0:
			errs.Report(decl.Pos, diag.NoCatchAll, "%s has no catch-all variant of %s", decl.Name, baseName(inv))
		case 1:
			checkCatchAll(errs, decl, catchAlls[0], repr, ok)
		default:
			for _, vd := range catchAlls[1:] {
				errs.Report(vd.Pos, diag.MultipleCatchAll, "%s has multiple catch-all variants: %s and %s", decl.Name, catchAlls[0].Name, vd.Name)
			}
		}
	}

	if errs.Failed() {
		return nil, errs.Err()
	}
	return e, nil
}

// buildRepr determines the representation type. ok is false if it could not
// be determined; the cause has been reported then.
func buildRepr(errs *diag.Emitter, decl *Declaration, inv Invocation) (IntType, bool) {
	switch inv.Mode {
	case Open:
		// The base type parameter is the representation. Annotations on the
		// declaration itself do not take part.
		if inv.Base == nil {
			errs.Report(decl.Pos, diag.MissingRepresentation, "%s needs a base type", decl.Name)
			return IntType{}, false
		}
		t, ok := LookupIntType(inv.Base.Name)
		if !ok {
			errs.Report(inv.Base.Pos, diag.InvalidRepresentation, "base type of %s must be an integer type: %s", decl.Name, inv.Base.Name)
			return IntType{}, false
		}
		return t, true

	default:
		var found *TypeRef
		var t IntType
		for i, ref := range decl.Reprs {
			rt, ok := LookupIntType(ref.Name)
			if !ok {
				continue
			}
			if found != nil {
				errs.Report(ref.Pos, diag.ConflictingRepresentation, "%s has multiple representation types: %s and %s", decl.Name, found.Name, ref.Name)
				return IntType{}, false
			}
			found, t = &decl.Reprs[i], rt
		}
		if found == nil {
			errs.Report(decl.Pos, diag.MissingRepresentation, "%s needs an integer representation", decl.Name)
			return IntType{}, false
		}
		return t, true
	}
}

func checkCatchAll(errs *diag.Emitter, decl *Declaration, vd VariantDecl, repr IntType, reprOK bool) {
	if len(vd.Fields) != 1 {
		errs.Report(vd.Pos, diag.CatchAllArityMismatch, "catch-all %s.%s must have exactly one field, found %d", decl.Name, vd.Name, len(vd.Fields))
		return
	}
	if !reprOK {
		return
	}

	field := vd.Fields[0]
	t, ok := LookupIntType(field.Name)
	if !ok || t.Name != repr.Name {
		errs.Report(field.Pos, diag.CatchAllArityMismatch, "catch-all %s.%s must carry %s, found %s", decl.Name, vd.Name, repr, field.Name)
	}
}

func baseName(inv Invocation) string {
	if inv.Base == nil {
		return "the base type"
	}
	return inv.Base.Name
}
