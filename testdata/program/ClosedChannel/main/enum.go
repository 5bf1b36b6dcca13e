//go:build reprgen

package main

// ColorChannel is a color channel.
//
//reprgen:closed
//reprgen:repr uint8
type ColorChannel struct {
	RED   struct{} `reprgen:"0"`
	GREEN struct{} `reprgen:"1"`
	BLUE  struct{} `reprgen:"2"`
}
