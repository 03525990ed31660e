// Package node hosts a Runtime: it serializes access to it, collects submitted
// extrinsics into blocks and persists the state after every block.
package node

import (
	"time"

	"github.com/virel-project/virel-runtime/logger"
	"github.com/virel-project/virel-runtime/runtime"
	"github.com/virel-project/virel-runtime/store"
	"github.com/virel-project/virel-runtime/util"
)

var Log = logger.New()

type Node struct {
	// Store is nil for a node that keeps its state in memory only.
	Store *store.Store

	mut     util.Mutex
	rt      *runtime.Runtime
	pending []runtime.Extrinsic
}

// New restores the state saved in st, or starts from genesis if st is empty.
// st may be nil.
func New(st *store.Store, genesis runtime.Genesis) (*Node, error) {
	n := &Node{
		Store: st,
	}

	if st != nil {
		snap, found, err := st.Load()
		if err != nil {
			return nil, err
		}
		if found {
			n.rt, err = runtime.FromSnapshot(snap)
			if err != nil {
				return nil, err
			}
			Log.Infof("Restored state at block %d, state root %s", n.rt.BlockNumber(), n.rt.StateRoot())
			return n, nil
		}
	}

	n.rt = runtime.NewWithGenesis(genesis)
	Log.Infof("Started from genesis, state root %s", n.rt.StateRoot())

	return n, n.persist()
}

// persist must be called with mut held or before the node is shared.
func (n *Node) persist() error {
	if n.Store == nil {
		return nil
	}
	err := n.Store.Save(n.rt.Snapshot())
	if err != nil {
		Log.Err("failed to save state:", err)
	}
	return err
}

// Submit queues an extrinsic for the next block and returns the queue length.
func (n *Node) Submit(caller runtime.AccountId, call runtime.Call) int {
	n.mut.Lock()
	defer n.mut.Unlock()

	n.pending = append(n.pending, runtime.Extrinsic{Caller: caller, Call: call})
	Log.Debugf("queued %T from %s, %d pending", call, caller, len(n.pending))

	return len(n.pending)
}

func (n *Node) Pending() []runtime.Extrinsic {
	n.mut.Lock()
	defer n.mut.Unlock()

	return append([]runtime.Extrinsic(nil), n.pending...)
}

// SealBlock executes the queued extrinsics as the next block. The queue is
// kept if the block is rejected.
func (n *Node) SealBlock() ([]runtime.Receipt, error) {
	n.mut.Lock()
	defer n.mut.Unlock()

	bl := n.rt.NewBlock(n.pending...)
	receipts, err := n.execute(bl)
	if err != nil {
		return nil, err
	}
	n.pending = nil

	return receipts, nil
}

// ExecuteBlock executes a block assembled by the caller.
func (n *Node) ExecuteBlock(bl runtime.Block) ([]runtime.Receipt, error) {
	n.mut.Lock()
	defer n.mut.Unlock()

	return n.execute(bl)
}

func (n *Node) execute(bl runtime.Block) ([]runtime.Receipt, error) {
	start := time.Now()

	receipts, err := n.rt.ExecuteBlockReceipts(bl)

	// a rejected block still moved the block counter
	if perr := n.persist(); perr != nil && err == nil {
		err = perr
	}
	if err != nil {
		return nil, err
	}

	Log.Infof("Block %d executed in %v: %d extrinsics, state root %s", bl.Header.BlockNumber,
		time.Since(start), len(receipts), n.rt.StateRoot())

	return receipts, nil
}

// Dispatch applies a single call outside of block framing. The caller's nonce
// is not incremented.
func (n *Node) Dispatch(caller runtime.AccountId, call runtime.Call) error {
	n.mut.Lock()
	defer n.mut.Unlock()

	err := n.rt.Dispatch(caller, call)
	if err != nil {
		return err
	}
	return n.persist()
}

func (n *Node) BlockNumber() runtime.BlockNumber {
	n.mut.Lock()
	defer n.mut.Unlock()

	return n.rt.BlockNumber()
}

func (n *Node) Balance(who runtime.AccountId) runtime.Balance {
	n.mut.Lock()
	defer n.mut.Unlock()

	return n.rt.Balance(who)
}

func (n *Node) Nonce(who runtime.AccountId) runtime.Nonce {
	n.mut.Lock()
	defer n.mut.Unlock()

	return n.rt.Nonce(who)
}

func (n *Node) Claim(content runtime.Content) (runtime.AccountId, bool) {
	n.mut.Lock()
	defer n.mut.Unlock()

	return n.rt.Claim(content)
}

func (n *Node) TotalIssuance() (runtime.Balance, error) {
	n.mut.Lock()
	defer n.mut.Unlock()

	return n.rt.TotalIssuance()
}

func (n *Node) StateRoot() util.Hash {
	n.mut.Lock()
	defer n.mut.Unlock()

	return n.rt.StateRoot()
}

func (n *Node) Close() error {
	n.mut.Lock()
	defer n.mut.Unlock()

	if n.Store == nil {
		return nil
	}
	return n.Store.Close()
}
