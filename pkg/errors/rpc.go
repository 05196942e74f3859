package errors

import "fmt"

/*
RpcError is the wire-visible protocol error: a stable numeric code, a human
message and optional detail data.  These are the only errors intended to
cross the envelope boundary.
*/
type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *RpcError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// Standard JSON-RPC errors (reserved codes -32700 .. -32600) followed by the
// protocol-specific range.  The codes are part of the protocol contract and
// must never be renumbered.
var (
	ErrParseError     = &RpcError{Code: -32700, Message: "Parse error"}
	ErrInvalidRequest = &RpcError{Code: -32600, Message: "Invalid Request"}
	ErrMethodNotFound = &RpcError{Code: -32601, Message: "Method not found"}
	ErrInvalidParams  = &RpcError{Code: -32602, Message: "Invalid params"}
	ErrInternal       = &RpcError{Code: -32603, Message: "Internal error"}

	ErrTaskNotFound                 = &RpcError{Code: -32001, Message: "Task not found"}
	ErrTaskNotCancelable            = &RpcError{Code: -32002, Message: "Task cannot be canceled"}
	ErrPushNotificationNotSupported = &RpcError{Code: -32003, Message: "Push Notification is not supported"}
	ErrUnsupportedOperation         = &RpcError{Code: -32004, Message: "This operation is not supported"}
)

// WithMessagef returns a copy of the error with a formatted message.  The
// package-level sentinels are never modified.
func (e *RpcError) WithMessagef(format string, args ...any) *RpcError {
	clone := *e
	clone.Message = fmt.Sprintf(format, args...)
	return &clone
}

// WithData returns a copy of the error carrying detail data.
func (e *RpcError) WithData(data any) *RpcError {
	clone := *e
	clone.Data = data
	return &clone
}
