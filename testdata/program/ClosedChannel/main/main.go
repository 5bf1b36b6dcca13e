package main

import (
	"errors"
	"fmt"

	"github.com/sublee/reprgen/pkg/reprgenerrors"
)

func main() {
	for _, value := range []uint8{1, 5} {
		c, err := ColorChannelFromUint8(value)
		if err != nil {
			v, _ := reprgenerrors.UnknownValue[uint8](err)
			fmt.Println(err, errors.Is(err, reprgenerrors.ErrUnknownValue), v)
			continue
		}
		fmt.Println(c, c == GREEN)
	}
	fmt.Println(BLUE.Uint8())
}
