package model

import (
	"go/constant"
	"go/token"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/reprgen/internal/reprgen/diag"
)

// Resolve computes the discriminant of every known variant and returns the
// resolved copy of e. e itself is left untouched.
//
// Discriminants are numbered like Rust and C enums: a variant without a
// literal takes the value after the previous variant, starting at 0. The
// catch-all takes no discriminant. Resolved values must be distinct and fit
// in the representation type.
func Resolve(fset *token.FileSet, e *Enum) (*Enum, error) {
	errs := diag.NewEmitter(fset)
	r := e.clone()

	groups := linkedhashmap.New() // exact value -> []*Variant in declaration order
	next := constant.MakeInt64(0)

	for i := range r.Variants {
		v := &r.Variants[i]
		if v.IsCatchAll() {
			continue
		}

		value := v.Explicit
		if value == nil {
			if !r.Repr.Contains(next) {
				errs.Report(v.Pos, diag.DiscriminantOverflow, "discriminant of %s.%s overflows %s: %s", r.Name, v.Name, r.Repr, next.ExactString())
				// Further implicit values would overflow too.
				next = constant.BinaryOp(next, token.ADD, one)
				continue
			}
			value = next
		}
		v.Value = value
		next = constant.BinaryOp(value, token.ADD, one)

		key := value.ExactString()
		group, _ := groups.Get(key)
		vs, _ := group.([]*Variant)
		groups.Put(key, append(vs, v))
	}

	// Values are visited in the order they first appear.
	it := groups.Iterator()
	for it.Next() {
		vs := it.Value().([]*Variant)
		for _, dup := range vs[1:] {
			errs.Report(dup.Pos, diag.DuplicateDiscriminant, "duplicate discriminant %s of %s: %s and %s", it.Key(), r.Name, vs[0].Name, dup.Name)
		}
	}

	if errs.Failed() {
		return nil, errs.Err()
	}
	r.resolved = true
	return r, nil
}

var one = constant.MakeInt64(1)
