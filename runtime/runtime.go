// Package runtime composes the system, balances and claims modules into the
// ledger state machine and executes blocks against it.
package runtime

import (
	"github.com/virel-project/virel-runtime/balances"
	"github.com/virel-project/virel-runtime/chaintype"
	"github.com/virel-project/virel-runtime/claims"
	"github.com/virel-project/virel-runtime/logger"
	"github.com/virel-project/virel-runtime/support"
	"github.com/virel-project/virel-runtime/system"
)

var Log = logger.New()

// Concrete types every module is instantiated with.
type (
	AccountId   = chaintype.AccountId
	Balance     = chaintype.Balance
	Content     = chaintype.Content
	BlockNumber = uint64
	Nonce       = uint64
)

type (
	Header    = support.Header[BlockNumber]
	Extrinsic = support.Extrinsic[AccountId, Call]
	Block     = support.Block[BlockNumber, AccountId, Call]
)

// Runtime is not safe for concurrent use. Callers running blocks from several
// goroutines must serialize ExecuteBlock and Dispatch.
type Runtime struct {
	system   *system.Pallet[AccountId, BlockNumber, Nonce]
	balances *balances.Pallet[AccountId, Balance]
	claims   *claims.Pallet[AccountId, Content]
}

var _ support.Dispatch[AccountId, Call] = (*Runtime)(nil)

// New returns a Runtime with empty state.
func New() *Runtime {
	return &Runtime{
		system:   system.New[AccountId, BlockNumber, Nonce](),
		balances: balances.New[AccountId, Balance](),
		claims:   claims.New[AccountId, Content](),
	}
}

func (r *Runtime) BlockNumber() BlockNumber {
	return r.system.BlockNumber()
}

func (r *Runtime) Nonce(who AccountId) Nonce {
	return r.system.Nonce(who)
}

func (r *Runtime) Balance(who AccountId) Balance {
	return r.balances.Balance(who)
}

func (r *Runtime) TotalIssuance() (Balance, error) {
	return r.balances.TotalIssuance()
}

func (r *Runtime) Claim(content Content) (AccountId, bool) {
	return r.claims.Claim(content)
}

// NewBlock returns a block targeting the next block number.
func (r *Runtime) NewBlock(extrinsics ...Extrinsic) Block {
	return Block{
		Header: Header{
			BlockNumber: r.system.BlockNumber() + 1,
		},
		Extrinsics: extrinsics,
	}
}
