package a2a

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskSendParamsCanonicalPayload(t *testing.T) {
	payload := `{"id":"t-1","sessionId":"s-1","message":{"role":"user","parts":[{"type":"text","text":"hi"}]}}`

	var params TaskSendParams
	require.NoError(t, json.Unmarshal([]byte(payload), &params))

	assert.Equal(t, "t-1", params.ID)
	assert.Equal(t, "s-1", params.SessionID)
	assert.Equal(t, RoleUser, params.Message.Role)
	assert.Equal(t, "hi", params.Message.Text())

	data, err := json.Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(data))
}

func TestTaskSendParamsKeyTolerance(t *testing.T) {
	payload := `{"id":"t-1","session_id":"s-1","history_length":5,
		"message":{"role":"user","parts":[{"type":"text","text":"hi"}]},
		"push_notification":{"url":"https://hooks.example.com/t-1"}}`

	var params TaskSendParams
	require.NoError(t, json.Unmarshal([]byte(payload), &params))

	assert.Equal(t, "s-1", params.SessionID)
	require.NotNil(t, params.HistoryLength)
	assert.Equal(t, 5, *params.HistoryLength)
	require.NotNil(t, params.PushNotification)
	assert.Equal(t, "https://hooks.example.com/t-1", params.PushNotification.URL)
}

func TestTaskQueryParams(t *testing.T) {
	payload := `{"id":"t-1","history_length":3}`

	var params TaskQueryParams
	require.NoError(t, json.Unmarshal([]byte(payload), &params))

	assert.Equal(t, "t-1", params.ID)
	require.NotNil(t, params.HistoryLength)
	assert.Equal(t, 3, *params.HistoryLength)
}

func TestTaskPushNotificationConfigRoundTrip(t *testing.T) {
	token := "secret"
	config := TaskPushNotificationConfig{
		ID: "t-1",
		PushNotificationConfig: PushNotificationConfig{
			URL:   "https://hooks.example.com/t-1",
			Token: &token,
		},
	}

	data, err := json.Marshal(config)
	require.NoError(t, err)

	var decoded TaskPushNotificationConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, config, decoded)
}
