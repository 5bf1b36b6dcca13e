package main

import "fmt"

func main() {
	fmt.Println(ColorCommandFromUint8(2) == SetBlue)
	fmt.Println(ColorCommandFromUint8(9) == Other(9))
	fmt.Println(Other(9).Uint8(), SetGreen.Uint8())

	value, ok := ColorCommandFromUint8(9).AsOther()
	fmt.Println(value, ok)
	_, ok = SetRed.AsOther()
	fmt.Println(ok)

	fmt.Println(SetRed, Other(9))
	fmt.Println(ColorCommandFromUint8(0), ColorCommand{})
}
