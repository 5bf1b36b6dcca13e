//go:build reprgen

package main

//reprgen:closed
//reprgen:repr uint8
type Pair struct {
	A struct{} `reprgen:"1"`
	B struct{} `reprgen:"1"`
}
