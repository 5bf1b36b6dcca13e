package main

import "fmt"

func main() {
	for _, s := range []Sparse{A, B, C, D, E} {
		fmt.Println(s, s.Uint16())
	}
	_, err := SparseFromUint16(11)
	fmt.Println(err)
}
