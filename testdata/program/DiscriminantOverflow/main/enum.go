//go:build reprgen

package main

//reprgen:closed
//reprgen:repr uint8
type Level struct {
	LOW  struct{} `reprgen:"254"`
	HIGH struct{}
	OVER struct{}
}
