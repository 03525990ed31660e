package support

import "fmt"

type Header[N Unsigned] struct {
	BlockNumber N
}

// Extrinsic is a single caller-attributed call. The caller is assumed to be
// authenticated by whoever assembled the block.
type Extrinsic[A any, C any] struct {
	Caller A
	Call   C
}

// Block is an ordered batch of extrinsics. Extrinsics are executed in slice
// order.
type Block[N Unsigned, A any, C any] struct {
	Header     Header[N]
	Extrinsics []Extrinsic[A, C]
}

func (b Block[N, A, C]) String() string {
	return fmt.Sprintf("block %d (%d extrinsics)", b.Header.BlockNumber, len(b.Extrinsics))
}
