//go:build reprgen

package main

//reprgen:open base=uint8
type Command struct {
	Stop struct{}
}

//reprgen:closed
//reprgen:repr uint8
type Level int
