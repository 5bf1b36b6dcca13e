//go:build reprgen

package main

//reprgen:closed
//reprgen:repr uint16
type Sparse struct {
	A struct{} `reprgen:"10"`
	B struct{} `reprgen:"20"`
	C struct{}
	D struct{} `reprgen:"0x10"`
	E struct{}
}
