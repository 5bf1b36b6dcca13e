//go:build reprgen

package main

//reprgen:open base=int32 compare=as_int
type Signal struct {
	Hang  struct{} `reprgen:"1"`
	Int   struct{}
	Other int32
	Kill  struct{} `reprgen:"9"`
}
