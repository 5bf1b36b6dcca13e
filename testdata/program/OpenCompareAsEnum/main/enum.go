//go:build reprgen

package main

//reprgen:open base=uint8 compare=as_enum
type Priority struct {
	High  struct{} `reprgen:"10"`
	Other uint8
	Low   struct{} `reprgen:"1"`
}
