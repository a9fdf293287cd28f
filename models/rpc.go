package models

import "encoding/json"

// RPCRequest is the wire shape of a single replayed domain operation sent to
// the remote ERP endpoint.
type RPCRequest struct {
	Method    string          `json:"method_name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// RPCResponse is the remote endpoint's reply. The sync core only inspects
// Success and Error; Result is passed through untouched for diagnostics.
type RPCResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}
