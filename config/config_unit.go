//go:build unittest

package config

const NETWORK_NAME = "unittest"

// GENESIS INFO
var GENESIS_BALANCES = map[string]uint64{
	"alice":   100,
	"bob":     50,
	"charlie": 0,
}
