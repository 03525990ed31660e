package rpcserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/virel-project/virel-runtime/logger"
	"github.com/virel-project/virel-runtime/rpc"
)

var Log = logger.New()

const sInvalidJson = "Parse error"
const sInvalidMethod = "Method not found"

func writeError(res http.ResponseWriter, status int, code int, message string, id any) {
	if status != 0 {
		res.WriteHeader(status)
	}
	WriteJSON(res, rpc.ResponseOut{
		JsonRpc: "2.0",
		Error: &rpc.Error{
			Code:    code,
			Message: message,
		},
		Id: id,
	})
}

func (s *Server) handler(res http.ResponseWriter, req *http.Request) error {
	if req.Method == http.MethodOptions && len(s.config.Authentication) == 0 {
		res.Header().Set("Access-Control-Allow-Origin", "*")
		res.WriteHeader(http.StatusNoContent)
		return nil
	}

	if req.Method != http.MethodPost {
		writeError(res, http.StatusMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return errors.New("method not allowed")
	}

	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		ip = req.RemoteAddr
	}
	if !s.limit.CanAct(ip, 1) {
		writeError(res, http.StatusTooManyRequests, http.StatusTooManyRequests, "Too Many Requests", nil)
		return errors.New("too many requests")
	}

	if s.config.Restricted {
		origin := req.Header.Get("Origin")
		if origin != "" && origin != "127.0.0.1" && origin != "localhost" {
			writeError(res, http.StatusBadRequest, http.StatusBadRequest, "invalid origin", nil)
			return errors.New("invalid origin")
		}
	}

	if len(s.config.Authentication) != 0 {
		uname, pw, ok := req.BasicAuth()
		if !ok || uname+":"+pw != s.config.Authentication {
			s.limit.CanAct(ip, 9)
			writeError(res, http.StatusUnauthorized, http.StatusUnauthorized, "unauthorized", nil)
			return errors.New("unauthorized")
		}
	}

	body, err := io.ReadAll(req.Body)
	if err != nil || len(body) < 2 {
		writeError(res, 0, rpc.CodeParseError, sInvalidJson, 0)
		return errors.New("invalid json")
	}

	var jsonBody rpc.RequestIn

	err = json.Unmarshal(body, &jsonBody)
	if err != nil {
		writeError(res, 0, rpc.CodeParseError, sInvalidJson, jsonBody.Id)
		return fmt.Errorf("invalid rpc request body: %w", err)
	}

	res.Header().Set("Content-Type", "application/json")
	if len(s.config.Authentication) == 0 {
		res.Header().Set("Access-Control-Allow-Origin", "*")
	}

	if jsonBody.JsonRpc != "2.0" {
		writeError(res, 0, rpc.CodeInvalidRequest, "invalid json_rpc version, expected 2.0", jsonBody.Id)
		return errors.New("invalid json_rpc version, expected 2.0")
	}

	jsonBody.Method = strings.ToLower(jsonBody.Method)

	handler := s.handlers[jsonBody.Method]
	if handler == nil {
		writeError(res, 0, rpc.CodeMethodNotFound, sInvalidMethod, jsonBody.Id)
		return errors.New("invalid method")
	}

	handler(NewContext(req, res, &jsonBody))
	return nil
}

func WriteJSON(res http.ResponseWriter, v any) error {
	bin, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = res.Write(bin)
	return err
}
