package main

import (
	"fmt"
	"slices"
)

func main() {
	ps := []Priority{Low, Other(7), High, Other(3)}
	slices.SortFunc(ps, Priority.Compare)
	fmt.Println(ps)
	fmt.Println(Other(10) == High, Other(10).Compare(High))
}
