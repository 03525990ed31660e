package node

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/virel-project/virel-runtime/balances"
	"github.com/virel-project/virel-runtime/chaintype"
	"github.com/virel-project/virel-runtime/logger"
	"github.com/virel-project/virel-runtime/runtime"
	"github.com/virel-project/virel-runtime/store"
)

var b = chaintype.NewBalance

func init() {
	Log = logger.DiscardLog
	runtime.Log = logger.DiscardLog
	store.Log = logger.DiscardLog
}

var genesis = runtime.Genesis{
	Balances: map[runtime.AccountId]runtime.Balance{"alice": b(100)},
}

func openNode(t *testing.T, dir string) *Node {
	db, err := store.OpenDB("bolt", dir)
	require.NoError(t, err)

	n, err := New(store.New(db), genesis)
	require.NoError(t, err)
	return n
}

func TestSealBlock(t *testing.T) {
	n, err := New(nil, genesis)
	require.NoError(t, err)

	require.Equal(t, 1, n.Submit("alice", runtime.TransferCall("bob", b(1000))))
	require.Equal(t, 2, n.Submit("alice", runtime.TransferCall("charlie", b(10))))
	require.Len(t, n.Pending(), 2)

	receipts, err := n.SealBlock()
	require.NoError(t, err)
	require.ErrorIs(t, receipts[0].Err, balances.ErrInsufficientFunds)
	require.True(t, receipts[1].Success())

	require.Empty(t, n.Pending())
	require.Equal(t, runtime.BlockNumber(1), n.BlockNumber())
	require.Equal(t, b(90), n.Balance("alice"))
	require.Equal(t, b(10), n.Balance("charlie"))
	require.Equal(t, runtime.Nonce(2), n.Nonce("alice"))

	receipts, err = n.SealBlock()
	require.NoError(t, err)
	require.Empty(t, receipts)
	require.Equal(t, runtime.BlockNumber(2), n.BlockNumber())
}

func TestRejectedBlock(t *testing.T) {
	n, err := New(nil, genesis)
	require.NoError(t, err)

	_, err = n.ExecuteBlock(runtime.Block{Header: runtime.Header{BlockNumber: 7}})
	require.ErrorIs(t, err, runtime.ErrBlockNumberMismatch)
	require.Equal(t, runtime.BlockNumber(1), n.BlockNumber())

	n.Submit("alice", runtime.CreateClaimCall("doc"))
	_, err = n.SealBlock()
	require.NoError(t, err)
	require.Equal(t, runtime.BlockNumber(2), n.BlockNumber())

	owner, ok := n.Claim("doc")
	require.True(t, ok)
	require.Equal(t, runtime.AccountId("alice"), owner)
}

func TestPersistence(t *testing.T) {
	dir := t.TempDir()

	n := openNode(t, dir)
	n.Submit("alice", runtime.TransferCall("bob", b(25)))
	n.Submit("bob", runtime.CreateClaimCall("doc"))
	_, err := n.SealBlock()
	require.NoError(t, err)
	require.NoError(t, n.Dispatch("bob", runtime.TransferCall("charlie", b(5))))
	root := n.StateRoot()
	require.NoError(t, n.Close())

	n = openNode(t, dir)
	defer n.Close()

	require.Equal(t, root, n.StateRoot())
	require.Equal(t, runtime.BlockNumber(1), n.BlockNumber())
	require.Equal(t, b(75), n.Balance("alice"))
	require.Equal(t, b(20), n.Balance("bob"))
	require.Equal(t, b(5), n.Balance("charlie"))
	require.Equal(t, runtime.Nonce(1), n.Nonce("bob"))

	total, err := n.TotalIssuance()
	require.NoError(t, err)
	require.Equal(t, b(100), total)
}

func TestConcurrentSubmit(t *testing.T) {
	n, err := New(nil, genesis)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				n.Submit("alice", runtime.TransferCall("bob", b(1)))
				if j%5 == 4 {
					if _, err := n.SealBlock(); err != nil {
						t.Error(err)
					}
				}
			}
		}()
	}
	wg.Wait()

	_, err = n.SealBlock()
	require.NoError(t, err)

	require.Equal(t, runtime.Nonce(80), n.Nonce("alice"))
	require.Equal(t, b(80), n.Balance("bob"))
	require.Equal(t, b(20), n.Balance("alice"))
}
