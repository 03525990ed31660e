// Package system tracks the block counter and the per-account nonces.
package system

import (
	"iter"
	"maps"
	"slices"

	"github.com/pkg/errors"
	"github.com/virel-project/virel-runtime/support"
)

var (
	ErrBlockNumberOverflow = errors.New("block number overflow")
	ErrNonceOverflow       = errors.New("nonce overflow")
)

// Pallet is the System module. A is the account identifier, N the block number
// and I the nonce type.
type Pallet[A support.Key, N support.Unsigned, I support.Unsigned] struct {
	blockNumber N
	nonce       map[A]I
}

func New[A support.Key, N support.Unsigned, I support.Unsigned]() *Pallet[A, N, I] {
	return &Pallet[A, N, I]{
		nonce: make(map[A]I),
	}
}

func (p *Pallet[A, N, I]) BlockNumber() N {
	return p.blockNumber
}

// IncBlockNumber advances the block counter by one. The counter is left
// unchanged if it is already at the maximum value of N.
func (p *Pallet[A, N, I]) IncBlockNumber() error {
	n, ok := support.CheckedInc(p.blockNumber)
	if !ok {
		return errors.Wrapf(ErrBlockNumberOverflow, "block number %d", p.blockNumber)
	}
	p.blockNumber = n
	return nil
}

// Nonce returns the nonce of who, zero if the account was never seen.
func (p *Pallet[A, N, I]) Nonce(who A) I {
	return p.nonce[who]
}

// IncNonce advances the nonce of who by one. The nonce is left unchanged if it
// is already at the maximum value of I.
func (p *Pallet[A, N, I]) IncNonce(who A) error {
	n, ok := support.CheckedInc(p.nonce[who])
	if !ok {
		return errors.Wrapf(ErrNonceOverflow, "account %v", who)
	}
	p.nonce[who] = n
	return nil
}

// SetBlockNumber overwrites the block counter. Only used when restoring state.
func (p *Pallet[A, N, I]) SetBlockNumber(n N) {
	p.blockNumber = n
}

// SetNonce overwrites the nonce of who. Only used when restoring state.
func (p *Pallet[A, N, I]) SetNonce(who A, n I) {
	if n == 0 {
		delete(p.nonce, who)
		return
	}
	p.nonce[who] = n
}

// Nonces iterates the nonce table in account order.
func (p *Pallet[A, N, I]) Nonces() iter.Seq2[A, I] {
	return func(yield func(A, I) bool) {
		for _, who := range slices.Sorted(maps.Keys(p.nonce)) {
			if !yield(who, p.nonce[who]) {
				return
			}
		}
	}
}
