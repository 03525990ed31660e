package util

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/zeebo/blake3"
)

type Hash [32]byte

// HashData returns the blake3-256 digest of data.
func HashData(data []byte) Hash {
	return Hash(blake3.Sum256(data))
}

func (m Hash) String() string {
	return hex.EncodeToString(m[:])
}

func (m Hash) IsZero() bool {
	return m == Hash{}
}

func (m Hash) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
func (m *Hash) UnmarshalText(c []byte) error {
	if len(c) != 64 {
		return errors.New("invalid length")
	}

	_, err := hex.Decode(m[:], c)
	return err
}

func (m Hash) Format(f fmt.State, verb rune) {
	fmt.Fprint(f, m.String())
}
