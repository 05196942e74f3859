package jsonrpc

import (
	"encoding/json"
	stderrors "errors"

	"github.com/agentmesh/a2a-core/internal/projection"
	"github.com/agentmesh/a2a-core/pkg/errors"
)

type Response struct {
	JSONRPC string `json:"jsonrpc"`
	// ID echoes the request's id verbatim.  Kept raw so a numeric 0 or an
	// explicit null survives a round trip instead of being dropped.
	ID     json.RawMessage  `json:"id,omitempty"`
	Result any              `json:"result,omitempty"`
	Error  *errors.RpcError `json:"error,omitempty"`
}

// NewSuccess builds a response carrying a result.  id may be a string, a
// number, a raw request id or nil.
func NewSuccess(id any, result any) Response {
	return Response{JSONRPC: Version, ID: rawID(id), Result: result}
}

// NewError builds a response carrying the wire form of err.
func NewError(id any, err error) Response {
	return Response{JSONRPC: Version, ID: rawID(id), Error: ErrorFrom(err)}
}

// rawID encodes a caller-supplied id for the wire.  A nil or unencodable id
// degrades to null, matching the response to an unidentifiable request.
func rawID(id any) json.RawMessage {
	switch v := id.(type) {
	case nil:
		return json.RawMessage("null")
	case json.RawMessage:
		return v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return json.RawMessage("null")
		}
		return raw
	}
}

// Success reports whether the response represents a successful call, which
// is defined as the error field being absent.
func (res Response) Success() bool {
	return res.Error == nil
}

func (res *Response) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias Response
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*res = Response(decoded)
	return nil
}

/*
ErrorFrom translates an internal error into its wire-visible form.  Protocol
errors keep their code, message and data.  Validation failures map to the
invalid-params code.  Anything else collapses to a generic internal error
carrying only the message, so unexpected failures never leak
implementation-specific structure over the wire.
*/
func ErrorFrom(err error) *errors.RpcError {
	var rpcErr *errors.RpcError
	if stderrors.As(err, &rpcErr) {
		return rpcErr
	}

	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		return errors.ErrInvalidParams.WithMessagef("%s", validationErr.Error())
	}

	return errors.ErrInternal.WithMessagef("%s", err.Error())
}
