package runtime

import (
	"github.com/pkg/errors"
	"github.com/virel-project/virel-runtime/balances"
	"github.com/virel-project/virel-runtime/claims"
	"github.com/virel-project/virel-runtime/support"
)

// Call is the union of every module call the runtime routes. Adding a module
// means adding a variant here and a case in Dispatch.
type Call interface {
	isRuntimeCall()
}

type BalancesCall struct {
	Call balances.Call[AccountId, Balance]
}

type ClaimsCall struct {
	Call claims.Call[Content]
}

func (BalancesCall) isRuntimeCall() {}
func (ClaimsCall) isRuntimeCall()   {}

func TransferCall(to AccountId, amount Balance) Call {
	return BalancesCall{balances.Transfer[AccountId, Balance]{To: to, Amount: amount}}
}

func CreateClaimCall(content Content) Call {
	return ClaimsCall{claims.CreateClaim[Content]{Content: content}}
}

func RevokeClaimCall(content Content) Call {
	return ClaimsCall{claims.RevokeClaim[Content]{Content: content}}
}

// Dispatch routes call to the module owning it, acting as caller. The caller
// is not authenticated here. Module errors are returned as a
// *support.DispatchError which unwraps to the module error.
func (r *Runtime) Dispatch(caller AccountId, call Call) error {
	var module string
	var err error

	switch c := call.(type) {
	case BalancesCall:
		module = balances.ModuleName
		err = r.balances.Dispatch(caller, c.Call)
	case ClaimsCall:
		module = claims.ModuleName
		err = r.claims.Dispatch(caller, c.Call)
	default:
		return errors.Wrapf(support.ErrUnknownCall, "%T", call)
	}

	if err != nil {
		return support.NewDispatchError(module, err)
	}
	return nil
}
