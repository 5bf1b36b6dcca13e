package nameconflict

func RED() {}

func ChannelFromUint8() {}

var Other = 42
