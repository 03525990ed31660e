package system

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestInitialBlockNumber(t *testing.T) {
	p := New[string, uint64, uint64]()
	if p.BlockNumber() != 0 {
		t.Fatal("expected block number 0, got", p.BlockNumber())
	}
}

func TestIncrementBlockNumber(t *testing.T) {
	p := New[string, uint64, uint64]()
	if err := p.IncBlockNumber(); err != nil {
		t.Fatal(err)
	}
	if p.BlockNumber() != 1 {
		t.Fatal("expected block number 1, got", p.BlockNumber())
	}
}

func TestIncrementNonce(t *testing.T) {
	p := New[string, uint64, uint64]()
	if err := p.IncNonce("alice"); err != nil {
		t.Fatal(err)
	}
	if err := p.IncNonce("alice"); err != nil {
		t.Fatal(err)
	}
	if p.Nonce("alice") != 2 {
		t.Fatal("expected nonce 2, got", p.Nonce("alice"))
	}
	if p.Nonce("bob") != 0 {
		t.Fatal("unknown account must have nonce 0")
	}
}

func TestBlockNumberOverflow(t *testing.T) {
	p := New[string, uint8, uint8]()
	p.SetBlockNumber(math.MaxUint8)

	err := p.IncBlockNumber()
	if !errors.Is(err, ErrBlockNumberOverflow) {
		t.Fatal("expected ErrBlockNumberOverflow, got", err)
	}
	if p.BlockNumber() != math.MaxUint8 {
		t.Fatal("block number changed on overflow")
	}
}

func TestNonceOverflow(t *testing.T) {
	p := New[string, uint8, uint8]()
	p.SetNonce("alice", math.MaxUint8-1)

	if err := p.IncNonce("alice"); err != nil {
		t.Fatal(err)
	}
	err := p.IncNonce("alice")
	if !errors.Is(err, ErrNonceOverflow) {
		t.Fatal("expected ErrNonceOverflow, got", err)
	}
	if p.Nonce("alice") != math.MaxUint8 {
		t.Fatal("nonce changed on overflow")
	}
}

func TestNoncesSorted(t *testing.T) {
	p := New[string, uint64, uint64]()
	for _, who := range []string{"charlie", "alice", "bob", "alice"} {
		p.IncNonce(who)
	}
	p.SetNonce("dave", 0)

	var got []string
	for who, n := range p.Nonces() {
		got = append(got, who)
		if who == "alice" && n != 2 {
			t.Fatal("expected alice nonce 2, got", n)
		}
	}
	if len(got) != 3 || got[0] != "alice" || got[1] != "bob" || got[2] != "charlie" {
		t.Fatal("unexpected iteration order", got)
	}
}
