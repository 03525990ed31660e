package balances

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/virel-project/virel-runtime/chaintype"
	"github.com/virel-project/virel-runtime/support"
)

type Balance = chaintype.Balance

var b = chaintype.NewBalance

// small is a one-byte balance, useful to reach the overflow paths.
type small uint8

func (s small) CheckedAdd(v small) (small, bool) {
	if s+v < s {
		return s, false
	}
	return s + v, true
}
func (s small) CheckedSub(v small) (small, bool) {
	if v > s {
		return s, false
	}
	return s - v, true
}
func (s small) Cmp(v small) int {
	switch {
	case s < v:
		return -1
	case s > v:
		return 1
	}
	return 0
}
func (s small) IsZero() bool {
	return s == 0
}

var _ support.Dispatch[string, Call[string, Balance]] = (*Pallet[string, Balance])(nil)

func TestInitBalances(t *testing.T) {
	p := New[string, Balance]()

	if !p.Balance("alice").IsZero() {
		t.Fatal("unknown account must have zero balance")
	}

	p.SetBalance("alice", b(100))

	if p.Balance("alice") != b(100) {
		t.Fatal("expected 100, got", p.Balance("alice"))
	}
	if !p.Balance("bob").IsZero() {
		t.Fatal("bob balance changed")
	}
}

func TestTransferBalance(t *testing.T) {
	p := New[string, Balance]()
	p.SetBalance("alice", b(100))

	err := p.Transfer("alice", "bob", b(150))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatal("expected ErrInsufficientFunds, got", err)
	}
	if p.Balance("alice") != b(100) || !p.Balance("bob").IsZero() {
		t.Fatal("failed transfer mutated state")
	}

	if err := p.Transfer("alice", "bob", b(50)); err != nil {
		t.Fatal(err)
	}
	if p.Balance("alice") != b(50) || p.Balance("bob") != b(50) {
		t.Fatal("unexpected balances", p.Balance("alice"), p.Balance("bob"))
	}

	if err := p.Transfer("alice", "bob", b(50)); err != nil {
		t.Fatal(err)
	}
	if !p.Balance("alice").IsZero() || p.Balance("bob") != b(100) {
		t.Fatal("unexpected balances", p.Balance("alice"), p.Balance("bob"))
	}
}

func TestSelfTransfer(t *testing.T) {
	p := New[string, Balance]()
	p.SetBalance("alice", b(100))

	if err := p.Transfer("alice", "alice", b(60)); err != nil {
		t.Fatal(err)
	}
	if p.Balance("alice") != b(100) {
		t.Fatal("self transfer changed the balance:", p.Balance("alice"))
	}

	err := p.Transfer("alice", "alice", b(101))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatal("self transfer must pass the funds check, got", err)
	}
}

func TestZeroTransfer(t *testing.T) {
	p := New[string, Balance]()

	if err := p.Transfer("alice", "bob", b(0)); err != nil {
		t.Fatal("zero transfer must succeed without funds:", err)
	}
	for range p.Balances() {
		t.Fatal("zero transfer created an entry")
	}
}

func TestReceiverOverflow(t *testing.T) {
	p := New[string, small]()
	p.SetBalance("alice", 10)
	p.SetBalance("bob", 250)

	err := p.Transfer("alice", "bob", 10)
	if !errors.Is(err, ErrArithmeticOverflow) {
		t.Fatal("expected ErrArithmeticOverflow, got", err)
	}
	if p.Balance("alice") != 10 || p.Balance("bob") != 250 {
		t.Fatal("overflowing transfer mutated state")
	}

	_, err = p.TotalIssuance()
	if !errors.Is(err, ErrArithmeticOverflow) {
		t.Fatal("expected total issuance overflow, got", err)
	}
}

func TestConservation(t *testing.T) {
	accounts := []string{"alice", "bob", "charlie", "dave", "eve"}

	p := New[string, Balance]()
	for i, who := range accounts {
		p.SetBalance(who, b(uint64(1000*(i+1))))
	}
	before, err := p.TotalIssuance()
	if err != nil {
		t.Fatal(err)
	}

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		from := accounts[r.IntN(len(accounts))]
		to := accounts[r.IntN(len(accounts))]
		amount := b(r.Uint64N(3000))

		fromBefore, toBefore := p.Balance(from), p.Balance(to)
		err := p.Transfer(from, to, amount)
		if err != nil {
			if !errors.Is(err, ErrInsufficientFunds) {
				t.Fatal("unexpected error", err)
			}
			if p.Balance(from) != fromBefore || p.Balance(to) != toBefore {
				t.Fatal("failed transfer mutated state")
			}
		}

		total, err := p.TotalIssuance()
		if err != nil {
			t.Fatal(err)
		}
		if total != before {
			t.Fatalf("total issuance changed from %s to %s at step %d", before, total, i)
		}
	}
}

func TestDispatch(t *testing.T) {
	p := New[string, Balance]()
	p.SetBalance("alice", b(100))

	err := p.Dispatch("alice", Transfer[string, Balance]{To: "bob", Amount: b(30)})
	if err != nil {
		t.Fatal(err)
	}
	if p.Balance("bob") != b(30) {
		t.Fatal("dispatch did not transfer")
	}

	err = p.Dispatch("alice", nil)
	if !errors.Is(err, support.ErrUnknownCall) {
		t.Fatal("expected ErrUnknownCall, got", err)
	}
}
