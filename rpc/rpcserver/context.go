package rpcserver

import (
	"encoding/json"
	"net/http"

	"github.com/virel-project/virel-runtime/rpc"
)

type Context struct {
	req *http.Request
	res http.ResponseWriter

	Body *rpc.RequestIn
}

func NewContext(req *http.Request, res http.ResponseWriter, body *rpc.RequestIn) *Context {
	return &Context{
		req:  req,
		res:  res,
		Body: body,
	}
}

// GetParams decodes the request params into result. On failure the error
// response has already been written.
func (c *Context) GetParams(result any) error {
	params := c.Body.Params
	if len(params) == 0 {
		params = json.RawMessage("{}")
	}
	err := json.Unmarshal(params, result)
	if err != nil {
		c.Error(rpc.CodeInvalidParams, "Invalid params: "+err.Error())
	}
	return err
}

func (c *Context) Success(result any) error {
	return c.Response(rpc.ResponseOut{
		JsonRpc: "2.0",
		Result:  result,
		Id:      c.Body.Id,
	})
}

func (c *Context) Error(code int, message string) error {
	return c.Response(rpc.ResponseOut{
		JsonRpc: "2.0",
		Error: &rpc.Error{
			Code:    code,
			Message: message,
		},
		Id: c.Body.Id,
	})
}

func (c *Context) Response(v rpc.ResponseOut) error {
	return WriteJSON(c.res, v)
}
