package chaintype

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"lukechampine.com/uint128"
)

// Balance is an unsigned 128-bit amount.
type Balance uint128.Uint128

var MaxBalance = Balance(uint128.Max)

func NewBalance(n uint64) Balance {
	return Balance(uint128.From64(n))
}

func ParseBalance(s string) (Balance, error) {
	v, err := uint128.FromString(s)
	if err != nil {
		return Balance{}, err
	}
	return Balance(v), nil
}

func (b Balance) u() uint128.Uint128 {
	return uint128.Uint128(b)
}

// CheckedAdd returns b+v, or false on overflow.
func (b Balance) CheckedAdd(v Balance) (Balance, bool) {
	sum := b.u().AddWrap(v.u())
	if sum.Cmp(b.u()) < 0 {
		return b, false
	}
	return Balance(sum), true
}

// CheckedSub returns b-v, or false if v > b.
func (b Balance) CheckedSub(v Balance) (Balance, bool) {
	if b.u().Cmp(v.u()) < 0 {
		return b, false
	}
	return Balance(b.u().SubWrap(v.u())), true
}

func (b Balance) Cmp(v Balance) int {
	return b.u().Cmp(v.u())
}

func (b Balance) IsZero() bool {
	return b.u().IsZero()
}

func (b Balance) String() string {
	return b.u().String()
}

// Bytes returns the 16-byte little endian representation of b.
func (b Balance) Bytes() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[:8], b.Lo)
	binary.LittleEndian.PutUint64(buf[8:], b.Hi)
	return buf
}

func BalanceFromBytes(buf []byte) (Balance, error) {
	if len(buf) != 16 {
		return Balance{}, errors.New("invalid balance length")
	}
	return Balance{
		Lo: binary.LittleEndian.Uint64(buf[:8]),
		Hi: binary.LittleEndian.Uint64(buf[8:]),
	}, nil
}
