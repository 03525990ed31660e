// Package store persists runtime snapshots to an adb database.
package store

import (
	"encoding/binary"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/virel-project/virel-runtime/adb"
	"github.com/virel-project/virel-runtime/adb/boltdb"
	"github.com/virel-project/virel-runtime/adb/lmdb"
	"github.com/virel-project/virel-runtime/chaintype"
	"github.com/virel-project/virel-runtime/config"
	"github.com/virel-project/virel-runtime/logger"
	"github.com/virel-project/virel-runtime/runtime"
	"github.com/virel-project/virel-runtime/util"
)

var Log = logger.New()

var ErrStateRootMismatch = errors.New("stored state root mismatch")

var (
	keyBlockNumber = []byte("block_number")
	keyStateRoot   = []byte("state_root")
)

type Index struct {
	Info     adb.Index
	Balances adb.Index
	Nonces   adb.Index
	Claims   adb.Index
}

type Store struct {
	DB    adb.DB
	Index Index
}

// OpenDB opens the database of the given backend ("bolt" or "lmdb") in dataDir.
func OpenDB(backend string, dataDir string) (adb.DB, error) {
	switch backend {
	case "bolt":
		return boltdb.New(filepath.Join(dataDir, config.DB_FILE_NAME), 0o600)
	case "lmdb":
		return lmdb.New(filepath.Join(dataDir, "lmdb"), 0o755, Log)
	default:
		return nil, errors.Errorf("unknown database backend %q", backend)
	}
}

func New(db adb.DB) *Store {
	return &Store{
		DB: db,
		Index: Index{
			Info:     db.Index("info"),
			Balances: db.Index("balances"),
			Nonces:   db.Index("nonces"),
			Claims:   db.Index("claims"),
		},
	}
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// Save replaces the stored state with snap in a single transaction.
func (s *Store) Save(snap runtime.Snapshot) error {
	root := snap.Hash()

	return s.DB.Update(func(txn adb.Txn) error {
		for _, idx := range []adb.Index{s.Index.Balances, s.Index.Nonces, s.Index.Claims} {
			err := clearIndex(txn, idx)
			if err != nil {
				return err
			}
		}

		for _, e := range snap.Balances {
			err := txn.Put(s.Index.Balances, []byte(e.Account), e.Balance.Bytes())
			if err != nil {
				return err
			}
		}
		for _, e := range snap.Nonces {
			err := txn.Put(s.Index.Nonces, []byte(e.Account), binary.AppendUvarint(nil, e.Nonce))
			if err != nil {
				return err
			}
		}
		for _, e := range snap.Claims {
			err := txn.Put(s.Index.Claims, []byte(e.Content), []byte(e.Owner))
			if err != nil {
				return err
			}
		}

		err := txn.Put(s.Index.Info, keyBlockNumber, binary.AppendUvarint(nil, snap.BlockNumber))
		if err != nil {
			return err
		}
		return txn.Put(s.Index.Info, keyStateRoot, root[:])
	})
}

// Load reads the stored state. found is false if nothing was ever saved.
func (s *Store) Load() (snap runtime.Snapshot, found bool, err error) {
	var root util.Hash

	err = s.DB.View(func(txn adb.Txn) error {
		bn := txn.Get(s.Index.Info, keyBlockNumber)
		if bn == nil {
			return nil
		}
		found = true

		var err error
		snap.BlockNumber, err = readUvarint(bn)
		if err != nil {
			return errors.Wrap(err, "block number")
		}

		storedRoot := txn.Get(s.Index.Info, keyStateRoot)
		if len(storedRoot) != len(root) {
			return errors.New("missing state root")
		}
		copy(root[:], storedRoot)

		err = txn.ForEach(s.Index.Balances, func(k, v []byte) error {
			amount, err := chaintype.BalanceFromBytes(v)
			if err != nil {
				return errors.Wrapf(err, "balance of %s", k)
			}
			snap.Balances = append(snap.Balances, runtime.BalanceEntry{
				Account: runtime.AccountId(k),
				Balance: amount,
			})
			return nil
		})
		if err != nil {
			return err
		}

		err = txn.ForEach(s.Index.Nonces, func(k, v []byte) error {
			n, err := readUvarint(v)
			if err != nil {
				return errors.Wrapf(err, "nonce of %s", k)
			}
			snap.Nonces = append(snap.Nonces, runtime.NonceEntry{
				Account: runtime.AccountId(k),
				Nonce:   n,
			})
			return nil
		})
		if err != nil {
			return err
		}

		return txn.ForEach(s.Index.Claims, func(k, v []byte) error {
			snap.Claims = append(snap.Claims, runtime.ClaimEntry{
				Content: runtime.Content(k),
				Owner:   runtime.AccountId(v),
			})
			return nil
		})
	})
	if err != nil || !found {
		return runtime.Snapshot{}, found, err
	}

	if snap.Hash() != root {
		return runtime.Snapshot{}, true, errors.Wrapf(ErrStateRootMismatch, "stored %s, computed %s", root,
			snap.Hash())
	}

	return snap, true, nil
}

func clearIndex(txn adb.Txn, idx adb.Index) error {
	var keys [][]byte
	err := txn.ForEach(idx, func(k, v []byte) error {
		keys = append(keys, append([]byte(nil), k...))
		return nil
	})
	if err != nil {
		return err
	}
	for _, k := range keys {
		err = txn.Del(idx, k)
		if err != nil {
			return err
		}
	}
	return nil
}

func readUvarint(b []byte) (uint64, error) {
	n, x := binary.Uvarint(b)
	if x <= 0 || x != len(b) {
		return 0, errors.New("invalid uvarint")
	}
	return n, nil
}
