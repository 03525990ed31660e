package noderpc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/virel-project/virel-runtime/chaintype"
	"github.com/virel-project/virel-runtime/logger"
	"github.com/virel-project/virel-runtime/node"
	"github.com/virel-project/virel-runtime/rpc"
	"github.com/virel-project/virel-runtime/rpc/rpcserver"
	"github.com/virel-project/virel-runtime/runtime"
)

func init() {
	node.Log = logger.DiscardLog
	runtime.Log = logger.DiscardLog
	rpcserver.Log = logger.DiscardLog
}

func startTestServer(t *testing.T, config rpcserver.Config) (*RpcClient, *node.Node, string) {
	n, err := node.New(nil, runtime.Genesis{
		Balances: map[runtime.AccountId]runtime.Balance{"alice": chaintype.NewBalance(100)},
	})
	require.NoError(t, err)

	rs := rpcserver.New(config)
	Register(rs, n)

	srv := httptest.NewServer(rs)
	t.Cleanup(srv.Close)

	return NewRpcClient(srv.URL), n, srv.URL
}

func TestQueryAndSeal(t *testing.T) {
	client, n, _ := startTestServer(t, rpcserver.Config{})

	info, err := client.GetInfo(GetInfoRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(0), info.BlockNumber)
	require.Equal(t, "100", info.TotalIssuance)
	require.Equal(t, n.StateRoot(), info.StateRoot)

	sub, err := client.SubmitTransfer(SubmitTransferRequest{From: "alice", To: "bob", Amount: "1000"})
	require.NoError(t, err)
	require.Equal(t, 1, sub.Pending)
	_, err = client.SubmitTransfer(SubmitTransferRequest{From: "alice", To: "charlie", Amount: "10"})
	require.NoError(t, err)
	_, err = client.SubmitClaim(SubmitClaimRequest{Caller: "alice", Content: "doc"})
	require.NoError(t, err)

	sealed, err := client.SealBlock(SealBlockRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(1), sealed.BlockNumber)
	require.Len(t, sealed.Receipts, 3)
	require.False(t, sealed.Receipts[0].Success)
	require.Contains(t, sealed.Receipts[0].Error, "insufficient funds")
	require.True(t, sealed.Receipts[1].Success)
	require.True(t, sealed.Receipts[2].Success)

	acc, err := client.GetAccount(GetAccountRequest{Account: "alice"})
	require.NoError(t, err)
	require.Equal(t, "alice", acc.Account)
	require.Equal(t, "90", acc.Balance)
	require.Equal(t, uint64(3), acc.Nonce)

	claim, err := client.GetClaim(GetClaimRequest{Content: "doc"})
	require.NoError(t, err)
	require.True(t, claim.Claimed)
	require.Equal(t, "alice", claim.Owner)
	require.Equal(t, string(chaintype.ContentOf([]byte("doc"))), claim.Content)

	// the hex key resolves to the same claim
	claim, err = client.GetClaim(GetClaimRequest{Content: claim.Content})
	require.NoError(t, err)
	require.True(t, claim.Claimed)
}

func TestContentKeyCase(t *testing.T) {
	lower := string(chaintype.ContentOf([]byte("doc")))
	upper := strings.ToUpper(lower)
	require.Equal(t, runtime.Content(lower), ContentKey(upper))
	require.Equal(t, runtime.Content(lower), ContentKey(lower))

	client, n, _ := startTestServer(t, rpcserver.Config{})

	_, err := client.SubmitClaim(SubmitClaimRequest{Caller: "alice", Content: lower})
	require.NoError(t, err)
	_, err = client.SubmitClaim(SubmitClaimRequest{Caller: "bob", Content: upper})
	require.NoError(t, err)

	sealed, err := client.SealBlock(SealBlockRequest{})
	require.NoError(t, err)
	require.Len(t, sealed.Receipts, 2)
	require.True(t, sealed.Receipts[0].Success)
	require.False(t, sealed.Receipts[1].Success)
	require.Contains(t, sealed.Receipts[1].Error, "already claimed")

	owner, ok := n.Claim(runtime.Content(lower))
	require.True(t, ok)
	require.Equal(t, runtime.AccountId("alice"), owner)
}

func TestInvalidParams(t *testing.T) {
	client, _, _ := startTestServer(t, rpcserver.Config{})

	_, err := client.SubmitTransfer(SubmitTransferRequest{From: "alice", To: "bob", Amount: "abc"})
	var rerr *rpc.Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, rpc.CodeInvalidParams, rerr.Code)

	_, err = client.SubmitClaim(SubmitClaimRequest{Caller: "alice"})
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, rpc.CodeInvalidParams, rerr.Code)

	err = client.Request("no_such_method", nil, &struct{}{})
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, rpc.CodeMethodNotFound, rerr.Code)
}

func TestAuthentication(t *testing.T) {
	_, _, url := startTestServer(t, rpcserver.Config{Authentication: "user:pass"})

	body, err := json.Marshal(rpc.RequestOut{JsonRpc: "2.0", Method: "get_info", Id: 1})
	require.NoError(t, err)

	res, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.SetBasicAuth("user", "pass")
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out rpc.ResponseIn
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	require.Nil(t, out.Error)
}

func TestMethodNotAllowed(t *testing.T) {
	_, _, url := startTestServer(t, rpcserver.Config{})

	res, err := http.Get(url)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}
