package runtime

import (
	"github.com/pkg/errors"
)

var ErrBlockNumberMismatch = errors.New("block number mismatch")

// Receipt is the outcome of one extrinsic of an accepted block.
type Receipt struct {
	Index  int
	Caller AccountId
	Err    error
}

func (r Receipt) Success() bool {
	return r.Err == nil
}

// ExecuteBlock applies bl to the state. See ExecuteBlockReceipts.
func (r *Runtime) ExecuteBlock(bl Block) error {
	_, err := r.ExecuteBlockReceipts(bl)
	return err
}

// ExecuteBlockReceipts advances the block counter, checks the header against
// it and applies each extrinsic in order.
//
// A header mismatch rejects the whole block: only the block counter has
// changed. Extrinsic failures do not abort the block; the caller's nonce is
// still consumed and the error is reported in the matching receipt.
func (r *Runtime) ExecuteBlockReceipts(bl Block) ([]Receipt, error) {
	err := r.system.IncBlockNumber()
	if err != nil {
		Log.Err(err)
		return nil, err
	}

	if bl.Header.BlockNumber != r.system.BlockNumber() {
		err = errors.Wrapf(ErrBlockNumberMismatch, "block %d, expected %d", bl.Header.BlockNumber,
			r.system.BlockNumber())
		Log.Warn(err)
		return nil, err
	}

	receipts := make([]Receipt, len(bl.Extrinsics))
	failed := 0
	for i, ext := range bl.Extrinsics {
		receipts[i] = Receipt{
			Index:  i,
			Caller: ext.Caller,
			Err:    r.applyExtrinsic(ext),
		}
		if receipts[i].Err != nil {
			failed++
			Log.Warnf("block %d extrinsic %d (caller %s) failed: %v", bl.Header.BlockNumber, i, ext.Caller,
				receipts[i].Err)
		}
	}

	Log.Debugf("executed block %d: %d extrinsics, %d failed", bl.Header.BlockNumber, len(bl.Extrinsics), failed)

	return receipts, nil
}

func (r *Runtime) applyExtrinsic(ext Extrinsic) error {
	err := r.system.IncNonce(ext.Caller)
	if err != nil {
		return err
	}
	Log.Devf("dispatching %T from %s, nonce %d", ext.Call, ext.Caller, r.system.Nonce(ext.Caller))

	return r.Dispatch(ext.Caller, ext.Call)
}
