package a2a

import (
	"encoding/json"

	"github.com/agentmesh/a2a-core/internal/projection"
)

// Protocol method names.  The core treats them as opaque strings; dispatch
// belongs to the transport layer.
const (
	MethodTasksSend                = "tasks/send"
	MethodTasksSendSubscribe       = "tasks/sendSubscribe"
	MethodTasksGet                 = "tasks/get"
	MethodTasksCancel              = "tasks/cancel"
	MethodTasksResubscribe         = "tasks/resubscribe"
	MethodTasksPushNotificationSet = "tasks/pushNotification/set"
	MethodTasksPushNotificationGet = "tasks/pushNotification/get"
)

// PushNotificationConfig tells an agent where to deliver task updates.
type PushNotificationConfig struct {
	URL            string               `json:"url"`
	Token          *string              `json:"token,omitempty"`
	Authentication *AgentAuthentication `json:"authentication,omitempty"`
}

// TaskSendParams carries the payload of tasks/send and tasks/sendSubscribe.
type TaskSendParams struct {
	ID               string                  `json:"id"`
	SessionID        string                  `json:"sessionId,omitempty"`
	Message          Message                 `json:"message"`
	PushNotification *PushNotificationConfig `json:"pushNotification,omitempty"`
	HistoryLength    *int                    `json:"historyLength,omitempty"`
	Metadata         map[string]any          `json:"metadata,omitempty"`
}

// TaskIDParams is the base payload for operations addressing a task by id.
type TaskIDParams struct {
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// TaskQueryParams carries the payload of tasks/get and tasks/resubscribe.
type TaskQueryParams struct {
	TaskIDParams
	HistoryLength *int `json:"historyLength,omitempty"`
}

// TaskPushNotificationConfig binds a push notification configuration to a
// task id.
type TaskPushNotificationConfig struct {
	ID                     string                 `json:"id"`
	PushNotificationConfig PushNotificationConfig `json:"pushNotificationConfig"`
}

func (params *TaskSendParams) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias TaskSendParams
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*params = TaskSendParams(decoded)
	return nil
}

func (params *TaskIDParams) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias TaskIDParams
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*params = TaskIDParams(decoded)
	return nil
}

// TaskQueryParams needs its own unmarshaler: the embedded TaskIDParams one
// would otherwise be promoted and drop historyLength.
func (params *TaskQueryParams) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	var decoded struct {
		ID            string         `json:"id"`
		Metadata      map[string]any `json:"metadata"`
		HistoryLength *int           `json:"historyLength"`
	}
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*params = TaskQueryParams{
		TaskIDParams:  TaskIDParams{ID: decoded.ID, Metadata: decoded.Metadata},
		HistoryLength: decoded.HistoryLength,
	}
	return nil
}

func (config *PushNotificationConfig) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias PushNotificationConfig
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*config = PushNotificationConfig(decoded)
	return nil
}

func (config *TaskPushNotificationConfig) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias TaskPushNotificationConfig
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*config = TaskPushNotificationConfig(decoded)
	return nil
}
