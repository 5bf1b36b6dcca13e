//go:build reprgen

package discriminants

//reprgen:closed
//reprgen:repr uint8
type Duplicated struct {
	RED   struct{} `reprgen:"0"`
	GREEN struct{} `reprgen:"1"`
	BLUE  struct{} `reprgen:"1"` // want `duplicate discriminant 1 of Duplicated: GREEN and BLUE`
}

//reprgen:closed
//reprgen:repr uint8
type Collided struct {
	A struct{} `reprgen:"97"`
	B struct{} `reprgen:"'a'"` // want `duplicate discriminant 97 of Collided: A and B`
}

//reprgen:closed
//reprgen:repr int8
type Literal struct {
	LOW  struct{} `reprgen:"-129"` // want `discriminant -129 of Literal.LOW overflows int8`
	NAME struct{} `reprgen:"red"`  // want `invalid discriminant of Literal.NAME: "red" is not an integer literal`
}

//reprgen:closed
//reprgen:repr int8
type Implicit struct {
	HIGH struct{} `reprgen:"127"`
	NEXT struct{} // want `discriminant of Implicit.NEXT overflows int8: 128`
}
