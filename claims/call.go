package claims

import (
	"github.com/pkg/errors"
	"github.com/virel-project/virel-runtime/support"
)

// Call is the union of operations the claims module exposes to extrinsics.
type Call[C support.Key] interface {
	isClaimsCall()
}

type CreateClaim[C support.Key] struct {
	Content C
}

type RevokeClaim[C support.Key] struct {
	Content C
}

func (CreateClaim[C]) isClaimsCall() {}
func (RevokeClaim[C]) isClaimsCall() {}

func (p *Pallet[A, C]) Dispatch(caller A, call Call[C]) error {
	switch c := call.(type) {
	case CreateClaim[C]:
		return p.CreateClaim(caller, c.Content)
	case RevokeClaim[C]:
		return p.RevokeClaim(caller, c.Content)
	default:
		return errors.Wrapf(support.ErrUnknownCall, "%T", call)
	}
}
