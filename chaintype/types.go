// Package chaintype holds the concrete identifier and amount types the runtime
// instantiates its modules with.
package chaintype

import (
	"github.com/virel-project/virel-runtime/util"
)

// AccountId identifies a ledger participant.
type AccountId string

func (a AccountId) String() string {
	return string(a)
}

// Content is a claimable key, usually the hex encoded hash of a document.
type Content string

// ContentOf returns the Content key of data: its hex encoded blake3 digest.
func ContentOf(data []byte) Content {
	return Content(util.HashData(data).String())
}

func (c Content) String() string {
	return string(c)
}
