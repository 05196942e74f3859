/*
Package jsonrpc carries the JSON-RPC 2.0 envelope for the protocol: the
Request and Response wrappers and the single translation point between
internal errors and wire-visible error objects.
*/
package jsonrpc

import (
	"encoding/json"

	"github.com/agentmesh/a2a-core/internal/projection"
)

// Version is the fixed JSON-RPC protocol marker.
const Version = "2.0"

type Request struct {
	JSONRPC string `json:"jsonrpc"`
	// ID correlates a response with its request.  string | number | null;
	// a request without an ID is a notification and expects no response.
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// NewRequest builds a request for the given method.  id may be a string, a
// number or nil (notification); params may be nil.
func NewRequest(id any, method string, params any) (Request, error) {
	req := Request{JSONRPC: Version, Method: method}

	if id != nil {
		raw, err := json.Marshal(id)
		if err != nil {
			return Request{}, err
		}
		req.ID = raw
	}

	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return Request{}, err
		}
		req.Params = raw
	}

	return req, nil
}

// IsNotification reports whether the request expects no response.
func (req Request) IsNotification() bool {
	return len(req.ID) == 0 || string(req.ID) == "null"
}

func (req *Request) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias Request
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*req = Request(decoded)
	return nil
}
