//go:build !unittest

package config

const NETWORK_NAME = "devnet"

// GENESIS INFO
// Balances minted before the first block. This is the only minting path.
var GENESIS_BALANCES = map[string]uint64{
	"alice": 100,
}
