//go:build reprgen

package variants

//reprgen:closed
//reprgen:repr uint8
type Level int // want `Level is not an enum: defined as int`

//reprgen:closed
//reprgen:repr uint8
type Closed struct {
	A    struct{}
	Data uint8 // want `Closed.Data has a payload but closed enums take unit variants only`
}

//reprgen:closed
//reprgen:repr string
type Unrepresented struct { // want `Unrepresented needs an integer representation`
	A struct{}
}

//reprgen:open base=uint8
type NoCatchAll struct { // want `NoCatchAll has no catch-all variant of uint8`
	A struct{}
}

//reprgen:open base=uint8
type TwoCatchAlls struct {
	A       struct{}
	Other   uint8
	Another uint8 // want `TwoCatchAlls has multiple catch-all variants: Other and Another`
}

//reprgen:open base=uint16
type WrongCatchAll struct {
	A     struct{}
	Other uint8 // want `catch-all WrongCatchAll.Other must carry uint16, found uint8`
}

//reprgen:open base=uint8
type Pair struct {
	A     struct{}
	Other struct{ hi, lo uint8 } // want `catch-all Pair.Other must have exactly one field, found 2`
}

//reprgen:open base=uint8
type Discriminated struct {
	A     struct{} `reprgen:"1"`
	Other uint8    `reprgen:"2"` // want `Discriminated.Other has both a payload and a discriminant`
}
