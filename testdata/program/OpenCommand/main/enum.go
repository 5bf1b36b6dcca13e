//go:build reprgen

package main

//reprgen:open base=uint8
type ColorCommand struct {
	SetRed   struct{}
	SetGreen struct{}
	SetBlue  struct{}
	Other    uint8
}
