//go:build reprgen

package nameconflict

//reprgen:closed
//reprgen:repr uint8
type Channel struct { // want `ChannelFromUint8 generated by Channel is already declared at .*conflict.go:\d+:\d+`
	RED   struct{} // want `RED generated by Channel is already declared at .*conflict.go:\d+:\d+`
	GREEN struct{}
}

//reprgen:open base=uint8
type Command struct {
	Stop  struct{}
	Other uint8 // want `Other generated by Command is already declared at .*conflict.go:\d+:\d+`
}
