package main

import "fmt"

func main() {
	for _, value := range []int8{-2, -1, 0, 1, 2, -128} {
		t, err := TemperatureFromInt8(value)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(t, t.Int8())
	}
	fmt.Println(Temperature(5))
}
