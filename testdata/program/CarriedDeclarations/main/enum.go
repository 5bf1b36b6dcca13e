//go:build reprgen

package main

import "strings"

//reprgen:closed
//reprgen:repr uint8
type Suit struct {
	Spades   struct{} `reprgen:"1"`
	Hearts   struct{}
	Diamonds struct{}
	Clubs    struct{}
}

// Lower is carried over to the generated code.
func Lower(s Suit) string {
	return strings.ToLower(s.String())
}
