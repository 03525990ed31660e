// Package claims implements a proof of existence registry: each content key is
// owned by at most one account.
package claims

import (
	"iter"
	"maps"
	"slices"

	"github.com/pkg/errors"
	"github.com/virel-project/virel-runtime/support"
)

const ModuleName = "claims"

var (
	ErrAlreadyClaimed = errors.New("content already claimed")
	ErrNoSuchClaim    = errors.New("content is not claimed")
	ErrNotOwner       = errors.New("caller is not the owner of the claim")
)

// Pallet is the Claims module. A is the account identifier and C the content
// key. An account can own many claims, but each claim has a single owner.
type Pallet[A support.Key, C support.Key] struct {
	claims map[C]A
}

func New[A support.Key, C support.Key]() *Pallet[A, C] {
	return &Pallet[A, C]{
		claims: make(map[C]A),
	}
}

// Claim returns the owner of content, if any.
func (p *Pallet[A, C]) Claim(content C) (A, bool) {
	owner, ok := p.claims[content]
	return owner, ok
}

func (p *Pallet[A, C]) CreateClaim(caller A, content C) error {
	if owner, ok := p.claims[content]; ok {
		return errors.Wrapf(ErrAlreadyClaimed, "%v owned by %v", content, owner)
	}
	p.claims[content] = caller
	return nil
}

func (p *Pallet[A, C]) RevokeClaim(caller A, content C) error {
	owner, ok := p.claims[content]
	if !ok {
		return errors.Wrapf(ErrNoSuchClaim, "%v", content)
	}
	if owner != caller {
		return errors.Wrapf(ErrNotOwner, "%v tried to revoke %v owned by %v", caller, content, owner)
	}
	delete(p.claims, content)
	return nil
}

// SetClaim overwrites the owner of content. Only used when restoring state.
func (p *Pallet[A, C]) SetClaim(content C, owner A) {
	p.claims[content] = owner
}

// Claims iterates the registry in content order.
func (p *Pallet[A, C]) Claims() iter.Seq2[C, A] {
	return func(yield func(C, A) bool) {
		for _, content := range slices.Sorted(maps.Keys(p.claims)) {
			if !yield(content, p.claims[content]) {
				return
			}
		}
	}
}
