package runtime

import (
	"github.com/pkg/errors"
	"github.com/virel-project/virel-runtime/binary"
	"github.com/virel-project/virel-runtime/chaintype"
	"github.com/virel-project/virel-runtime/util"
)

const snapshotVersion = 1

type BalanceEntry struct {
	Account AccountId
	Balance Balance
}

type NonceEntry struct {
	Account AccountId
	Nonce   Nonce
}

type ClaimEntry struct {
	Content Content
	Owner   AccountId
}

// Snapshot is the full runtime state. Entries are sorted by key, so two
// runtimes in the same state produce identical snapshots.
type Snapshot struct {
	BlockNumber BlockNumber
	Balances    []BalanceEntry
	Nonces      []NonceEntry
	Claims      []ClaimEntry
}

func (r *Runtime) Snapshot() Snapshot {
	s := Snapshot{
		BlockNumber: r.system.BlockNumber(),
	}
	for who, amount := range r.balances.Balances() {
		s.Balances = append(s.Balances, BalanceEntry{Account: who, Balance: amount})
	}
	for who, n := range r.system.Nonces() {
		s.Nonces = append(s.Nonces, NonceEntry{Account: who, Nonce: n})
	}
	for content, owner := range r.claims.Claims() {
		s.Claims = append(s.Claims, ClaimEntry{Content: content, Owner: owner})
	}
	return s
}

// StateRoot returns the blake3 hash of the serialized snapshot.
func (r *Runtime) StateRoot() util.Hash {
	s := r.Snapshot()
	return s.Hash()
}

// FromSnapshot rebuilds a Runtime from s. Duplicate keys are rejected.
func FromSnapshot(s Snapshot) (*Runtime, error) {
	r := New()
	r.system.SetBlockNumber(s.BlockNumber)

	seen := make(map[AccountId]bool, len(s.Balances))
	for _, e := range s.Balances {
		if seen[e.Account] {
			return nil, errors.Errorf("duplicate balance entry for %s", e.Account)
		}
		seen[e.Account] = true
		r.balances.SetBalance(e.Account, e.Balance)
	}
	clear(seen)
	for _, e := range s.Nonces {
		if seen[e.Account] {
			return nil, errors.Errorf("duplicate nonce entry for %s", e.Account)
		}
		seen[e.Account] = true
		r.system.SetNonce(e.Account, e.Nonce)
	}
	for _, e := range s.Claims {
		if _, ok := r.claims.Claim(e.Content); ok {
			return nil, errors.Errorf("duplicate claim entry for %s", e.Content)
		}
		r.claims.SetClaim(e.Content, e.Owner)
	}

	return r, nil
}

func (s Snapshot) Hash() util.Hash {
	return util.HashData(s.Serialize())
}

func (s Snapshot) Serialize() []byte {
	d := binary.NewSer(make([]byte, 64))

	d.AddUint8(snapshotVersion)
	d.AddUvarint(s.BlockNumber)

	d.AddUvarint(uint64(len(s.Balances)))
	for _, e := range s.Balances {
		d.AddString(string(e.Account))
		d.AddFixedByteArray(e.Balance.Bytes())
	}

	d.AddUvarint(uint64(len(s.Nonces)))
	for _, e := range s.Nonces {
		d.AddString(string(e.Account))
		d.AddUvarint(e.Nonce)
	}

	d.AddUvarint(uint64(len(s.Claims)))
	for _, e := range s.Claims {
		d.AddString(string(e.Content))
		d.AddString(string(e.Owner))
	}

	return d.Output()
}

func (s *Snapshot) Deserialize(data []byte) error {
	d := binary.NewDes(data)

	if v := d.ReadUint8(); v != snapshotVersion {
		if d.Error() != nil {
			return d.Error()
		}
		return errors.Errorf("invalid snapshot version %d", v)
	}
	s.BlockNumber = d.ReadUvarint()

	n, err := readCount(&d)
	if err != nil {
		return err
	}
	s.Balances = nil
	for range n {
		who := AccountId(d.ReadString())
		amount, err := chaintype.BalanceFromBytes(d.ReadFixedByteArray(16))
		if err != nil {
			return err
		}
		s.Balances = append(s.Balances, BalanceEntry{Account: who, Balance: amount})
	}

	n, err = readCount(&d)
	if err != nil {
		return err
	}
	s.Nonces = nil
	for range n {
		s.Nonces = append(s.Nonces, NonceEntry{
			Account: AccountId(d.ReadString()),
			Nonce:   d.ReadUvarint(),
		})
	}

	n, err = readCount(&d)
	if err != nil {
		return err
	}
	s.Claims = nil
	for range n {
		s.Claims = append(s.Claims, ClaimEntry{
			Content: Content(d.ReadString()),
			Owner:   AccountId(d.ReadString()),
		})
	}

	if d.Error() != nil {
		return d.Error()
	}
	if len(d.RemainingData()) != 0 {
		return errors.New("trailing data after snapshot")
	}
	return nil
}

// readCount reads an entry count. Every entry takes at least one byte, so a
// count larger than the remaining input is rejected.
func readCount(d *binary.Des) (int, error) {
	n := d.ReadUvarint()
	if d.Error() != nil {
		return 0, d.Error()
	}
	if n > uint64(len(d.RemainingData())) {
		return 0, errors.Errorf("invalid entry count %d", n)
	}
	return int(n), nil
}
