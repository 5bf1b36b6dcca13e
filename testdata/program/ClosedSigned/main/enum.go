//go:build reprgen

package main

//reprgen:closed
//reprgen:repr int8
type Temperature struct {
	Cold struct{} `reprgen:"-2"`
	Cool struct{}
	Mild struct{}
	Warm struct{}
}
