package runtime

import (
	"github.com/virel-project/virel-runtime/chaintype"
	"github.com/virel-project/virel-runtime/config"
)

// Genesis is the initial state of a chain. It is the only way to mint funds.
type Genesis struct {
	Balances map[AccountId]Balance
}

// DefaultGenesis returns the genesis configured in the config package.
func DefaultGenesis() Genesis {
	g := Genesis{
		Balances: make(map[AccountId]Balance, len(config.GENESIS_BALANCES)),
	}
	for who, amount := range config.GENESIS_BALANCES {
		g.Balances[AccountId(who)] = chaintype.NewBalance(amount)
	}
	return g
}

func NewWithGenesis(g Genesis) *Runtime {
	r := New()
	for who, amount := range g.Balances {
		r.balances.SetBalance(who, amount)
	}
	return r
}
