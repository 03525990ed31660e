package noderpc

import (
	"github.com/virel-project/virel-runtime/chaintype"
	"github.com/virel-project/virel-runtime/node"
	"github.com/virel-project/virel-runtime/rpc"
	"github.com/virel-project/virel-runtime/rpc/rpcserver"
	"github.com/virel-project/virel-runtime/runtime"
	"github.com/virel-project/virel-runtime/util"
)

// ContentKey turns user input into a claim key. A 64 character hex string is
// taken as the digest in its lower-case form, anything else is hashed.
func ContentKey(s string) runtime.Content {
	var h util.Hash
	if h.UnmarshalText([]byte(s)) == nil {
		return runtime.Content(h.String())
	}
	return chaintype.ContentOf([]byte(s))
}

// Register installs the node methods on rs.
func Register(rs *rpcserver.Server, n *node.Node) {
	rs.Handle("get_info", func(c *rpcserver.Context) {
		params := GetInfoRequest{}
		if c.GetParams(&params) != nil {
			return
		}

		total, err := n.TotalIssuance()
		if err != nil {
			c.Error(rpc.CodeDispatchFailed, err.Error())
			return
		}

		c.Success(GetInfoResponse{
			BlockNumber:   n.BlockNumber(),
			StateRoot:     n.StateRoot(),
			TotalIssuance: total.String(),
			Pending:       len(n.Pending()),
		})
	})
	rs.Handle("get_account", func(c *rpcserver.Context) {
		params := GetAccountRequest{}
		if c.GetParams(&params) != nil {
			return
		}
		who := runtime.AccountId(params.Account)

		c.Success(GetAccountResponse{
			Account: params.Account,
			Balance: n.Balance(who).String(),
			Nonce:   n.Nonce(who),
		})
	})
	rs.Handle("get_claim", func(c *rpcserver.Context) {
		params := GetClaimRequest{}
		if c.GetParams(&params) != nil {
			return
		}
		content := ContentKey(params.Content)
		owner, ok := n.Claim(content)

		c.Success(GetClaimResponse{
			Content: string(content),
			Owner:   string(owner),
			Claimed: ok,
		})
	})
	rs.Handle("submit_transfer", func(c *rpcserver.Context) {
		params := SubmitTransferRequest{}
		if c.GetParams(&params) != nil {
			return
		}
		if params.From == "" || params.To == "" {
			c.Error(rpc.CodeInvalidParams, "from and to are required")
			return
		}
		amount, err := chaintype.ParseBalance(params.Amount)
		if err != nil {
			c.Error(rpc.CodeInvalidParams, "invalid amount: "+err.Error())
			return
		}

		l := n.Submit(runtime.AccountId(params.From), runtime.TransferCall(runtime.AccountId(params.To), amount))
		c.Success(SubmitResponse{Pending: l})
	})
	rs.Handle("submit_claim", func(c *rpcserver.Context) {
		params := SubmitClaimRequest{}
		if c.GetParams(&params) != nil {
			return
		}
		if params.Caller == "" || params.Content == "" {
			c.Error(rpc.CodeInvalidParams, "caller and content are required")
			return
		}

		content := ContentKey(params.Content)
		call := runtime.CreateClaimCall(content)
		if params.Revoke {
			call = runtime.RevokeClaimCall(content)
		}

		l := n.Submit(runtime.AccountId(params.Caller), call)
		c.Success(SubmitResponse{Pending: l})
	})
	rs.Handle("seal_block", func(c *rpcserver.Context) {
		params := SealBlockRequest{}
		if c.GetParams(&params) != nil {
			return
		}

		receipts, err := n.SealBlock()
		if err != nil {
			c.Error(rpc.CodeBlockRejected, err.Error())
			return
		}

		out := SealBlockResponse{
			BlockNumber: n.BlockNumber(),
			Receipts:    make([]Receipt, len(receipts)),
		}
		for i, r := range receipts {
			out.Receipts[i] = Receipt{
				Index:   r.Index,
				Caller:  string(r.Caller),
				Success: r.Success(),
			}
			if r.Err != nil {
				out.Receipts[i].Error = r.Err.Error()
			}
		}
		c.Success(out)
	})
}
