package main

import "fmt"

func main() {
	fmt.Println(Lower(Hearts), Clubs.Uint8())
}
