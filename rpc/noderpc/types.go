package noderpc

import (
	"github.com/virel-project/virel-runtime/util"
)

// Amounts are decimal strings: balances do not fit in a JSON number.

type GetInfoRequest struct {
}
type GetInfoResponse struct {
	BlockNumber   uint64    `json:"block_number"`
	StateRoot     util.Hash `json:"state_root"`
	TotalIssuance string    `json:"total_issuance"`
	Pending       int       `json:"pending"`
}

type GetAccountRequest struct {
	Account string `json:"account"`
}
type GetAccountResponse struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

// Content is either a 64 character hex key or data to hash.
type GetClaimRequest struct {
	Content string `json:"content"`
}
type GetClaimResponse struct {
	Content string `json:"content"`
	Owner   string `json:"owner"`
	Claimed bool   `json:"claimed"`
}

type SubmitTransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type SubmitClaimRequest struct {
	Caller  string `json:"caller"`
	Content string `json:"content"`
	Revoke  bool   `json:"revoke"`
}

type SubmitResponse struct {
	Pending int `json:"pending"`
}

type SealBlockRequest struct {
}
type Receipt struct {
	Index   int    `json:"index"`
	Caller  string `json:"caller"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
type SealBlockResponse struct {
	BlockNumber uint64    `json:"block_number"`
	Receipts    []Receipt `json:"receipts"`
}
