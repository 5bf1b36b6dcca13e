//go:build reprgen

package valid

// ColorChannel is a color channel.
//
//reprgen:closed
//reprgen:repr uint8
type ColorChannel struct {
	RED   struct{} `reprgen:"0"`
	GREEN struct{}
	BLUE  struct{}
}

//reprgen:open base=uint8 compare=as_enum
type ColorCommand struct {
	SetRed   struct{}
	SetGreen struct{}
	SetBlue  struct{}
	Other    uint8
}

// Describe is carried over to the generated code.
func Describe() string {
	return "colors"
}
