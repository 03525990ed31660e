package balances

import (
	"github.com/pkg/errors"
	"github.com/virel-project/virel-runtime/support"
)

// Call is the union of operations the balances module exposes to extrinsics.
type Call[A support.Key, B support.Balance[B]] interface {
	isBalancesCall()
}

type Transfer[A support.Key, B support.Balance[B]] struct {
	To     A
	Amount B
}

func (Transfer[A, B]) isBalancesCall() {}

func (p *Pallet[A, B]) Dispatch(caller A, call Call[A, B]) error {
	switch c := call.(type) {
	case Transfer[A, B]:
		return p.Transfer(caller, c.To, c.Amount)
	default:
		return errors.Wrapf(support.ErrUnknownCall, "%T", call)
	}
}
