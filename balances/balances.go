// Package balances implements the Ledger module: account balances and checked
// transfers between them.
package balances

import (
	"iter"
	"maps"
	"slices"

	"github.com/pkg/errors"
	"github.com/virel-project/virel-runtime/support"
)

const ModuleName = "balances"

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

type Pallet[A support.Key, B support.Balance[B]] struct {
	balances map[A]B
}

func New[A support.Key, B support.Balance[B]]() *Pallet[A, B] {
	return &Pallet[A, B]{
		balances: make(map[A]B),
	}
}

// Balance returns the balance of who, zero if who has no entry.
func (p *Pallet[A, B]) Balance(who A) B {
	return p.balances[who]
}

// SetBalance overwrites the balance of who. It changes the total issuance and
// is not reachable through a Call.
func (p *Pallet[A, B]) SetBalance(who A, amount B) {
	if amount.IsZero() {
		delete(p.balances, who)
		return
	}
	p.balances[who] = amount
}

// Transfer moves amount from sender to receiver. Nothing is written unless
// every check passes.
func (p *Pallet[A, B]) Transfer(sender, receiver A, amount B) error {
	if amount.IsZero() {
		return nil
	}

	senderBalance := p.Balance(sender)
	if amount.Cmp(senderBalance) > 0 {
		return errors.Wrapf(ErrInsufficientFunds, "%v has %v, transfer of %v", sender, senderBalance, amount)
	}

	newSenderBalance, ok := senderBalance.CheckedSub(amount)
	if !ok {
		return errors.Wrapf(ErrArithmeticOverflow, "subtracting %v from %v balance", amount, sender)
	}

	if sender == receiver {
		return nil
	}

	newReceiverBalance, ok := p.Balance(receiver).CheckedAdd(amount)
	if !ok {
		return errors.Wrapf(ErrArithmeticOverflow, "adding %v to %v balance", amount, receiver)
	}

	p.SetBalance(sender, newSenderBalance)
	p.SetBalance(receiver, newReceiverBalance)

	return nil
}

// TotalIssuance returns the sum of all balances.
func (p *Pallet[A, B]) TotalIssuance() (B, error) {
	var total B
	for who, amount := range p.balances {
		var ok bool
		total, ok = total.CheckedAdd(amount)
		if !ok {
			return total, errors.Wrapf(ErrArithmeticOverflow, "total issuance at account %v", who)
		}
	}
	return total, nil
}

// Balances iterates the ledger in account order. Accounts with a zero balance
// are not listed.
func (p *Pallet[A, B]) Balances() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for _, who := range slices.Sorted(maps.Keys(p.balances)) {
			if !yield(who, p.balances[who]) {
				return
			}
		}
	}
}
