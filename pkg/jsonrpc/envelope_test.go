package jsonrpc

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmesh/a2a-core/pkg/a2a"
	"github.com/agentmesh/a2a-core/pkg/errors"
)

// Walks a full exchange: canonical tasks/send request in, domain entities
// out, canonical success and error responses back.
func TestCanonicalExchange(t *testing.T) {
	previous := a2a.Clock
	a2a.Clock = func() time.Time { return time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { a2a.Clock = previous })

	wire := `{"jsonrpc":"2.0","id":1,"method":"tasks/send",
		"params":{"id":"t-1","sessionId":"s-1",
			"message":{"role":"user","parts":[{"type":"text","text":"hi"}]}}}`

	var req Request
	require.NoError(t, json.Unmarshal([]byte(wire), &req))
	assert.Equal(t, a2a.MethodTasksSend, req.Method)
	assert.False(t, req.IsNotification())

	var params a2a.TaskSendParams
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, "hi", params.Message.Text())

	task := a2a.NewTask(params.ID).WithSession(params.SessionID)

	data, err := json.Marshal(NewSuccess(req.ID, task))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"jsonrpc":"2.0","id":1,"result":{"id":"t-1","sessionId":"s-1",
			"status":{"state":"submitted","timestamp":"2025-01-15T10:30:00Z"}}}`,
		string(data))

	data, err = json.Marshal(NewError(req.ID, errors.ErrTaskNotFound))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"jsonrpc":"2.0","id":1,"error":{"code":-32001,"message":"Task not found"}}`,
		string(data))
}
