// Package support holds the types shared by every runtime module: the
// constraints that fix identifier and numeric types, the dispatch contract and
// the block framing.
package support

import (
	"cmp"
)

// Unsigned is the capability set of block numbers and nonces.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Key is the capability set of account identifiers and claim contents.
type Key interface {
	cmp.Ordered
}

// Balance is the capability set of an amount type. The zero value of B is the
// zero balance.
type Balance[B any] interface {
	comparable
	CheckedAdd(B) (B, bool)
	CheckedSub(B) (B, bool)
	Cmp(B) int
	IsZero() bool
}

// CheckedInc returns n+1, or false if n is the maximum value of N.
func CheckedInc[N Unsigned](n N) (N, bool) {
	if n+1 < n {
		return n, false
	}
	return n + 1, true
}

// Dispatch is implemented by anything that can execute a Call on behalf of a
// Caller.
type Dispatch[Caller any, Call any] interface {
	Dispatch(caller Caller, call Call) error
}
