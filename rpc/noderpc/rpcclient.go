package noderpc

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/virel-project/virel-runtime/rpc"
)

type RpcClient struct {
	NodeAddress string
}

func NewRpcClient(addr string) *RpcClient {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return &RpcClient{
		NodeAddress: addr,
	}
}

// Request calls method and decodes its result into output. Server side errors
// are returned as *rpc.Error.
func (r *RpcClient) Request(method string, params any, output any) error {
	body := rpc.RequestOut{
		JsonRpc: "2.0",
		Method:  method,
		Params:  params,
		Id:      0,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	res, err := http.Post(r.NodeAddress, "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	dat, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	out := rpc.ResponseIn{}
	err = json.Unmarshal(dat, &out)
	if err != nil {
		return err
	}

	if out.Error != nil {
		return out.Error
	}

	return json.Unmarshal(out.Result, output)
}

func (r *RpcClient) GetInfo(p GetInfoRequest) (*GetInfoResponse, error) {
	o := &GetInfoResponse{}
	return o, r.Request("get_info", p, o)
}

func (r *RpcClient) GetAccount(p GetAccountRequest) (*GetAccountResponse, error) {
	o := &GetAccountResponse{}
	return o, r.Request("get_account", p, o)
}

func (r *RpcClient) GetClaim(p GetClaimRequest) (*GetClaimResponse, error) {
	o := &GetClaimResponse{}
	return o, r.Request("get_claim", p, o)
}

func (r *RpcClient) SubmitTransfer(p SubmitTransferRequest) (*SubmitResponse, error) {
	o := &SubmitResponse{}
	return o, r.Request("submit_transfer", p, o)
}

func (r *RpcClient) SubmitClaim(p SubmitClaimRequest) (*SubmitResponse, error) {
	o := &SubmitResponse{}
	return o, r.Request("submit_claim", p, o)
}

func (r *RpcClient) SealBlock(p SealBlockRequest) (*SealBlockResponse, error) {
	o := &SealBlockResponse{}
	return o, r.Request("seal_block", p, o)
}
