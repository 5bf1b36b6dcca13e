// Package reprgenerrors provides the errors returned by code generated by
// reprgen.
//
// A fallible conversion of a closed enum returns [*UnknownValueError] when the
// value matches no variant:
//
//	c, err := ColorChannelFromUint8(5)
//	if errors.Is(err, reprgenerrors.ErrUnknownValue) {
//		...
//	}
package reprgenerrors

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is matched by every [UnknownValueError].
var ErrUnknownValue = errors.New("unknown value")

// Integer is the set of representation types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// UnknownValueError reports a value which matches no variant of the enum
// named Type. Value is the original value unchanged.
type UnknownValueError[T Integer] struct {
	Type  string
	Value T
}

func (e *UnknownValueError[T]) Error() string {
	return fmt.Sprintf("unknown %s value: %d", e.Type, e.Value)
}

// Is reports whether target is [ErrUnknownValue].
func (e *UnknownValueError[T]) Is(target error) bool {
	return target == ErrUnknownValue
}

// UnknownValue returns the value carried by err if it is an
// [*UnknownValueError] of T.
func UnknownValue[T Integer](err error) (T, bool) {
	var e *UnknownValueError[T]
	if errors.As(err, &e) {
		return e.Value, true
	}
	return 0, false
}
