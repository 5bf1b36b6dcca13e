package main

import (
	"fmt"
	"slices"
)

func main() {
	fmt.Println(Other(2) == Int, Other(2).Equal(Int))
	ss := []Signal{Kill, Other(-1), Hang, Other(5)}
	slices.SortFunc(ss, Signal.Compare)
	fmt.Println(ss)
	fmt.Println(SignalFromInt32(9), SignalFromInt32(-1).Int32())
}
