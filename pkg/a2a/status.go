package a2a

import (
	"encoding/json"
	"time"

	"github.com/agentmesh/a2a-core/internal/projection"
)

// Clock supplies the default timestamp for new task statuses.  It is the
// model's only side effect; tests replace it to pin time.
var Clock = func() time.Time { return time.Now().UTC() }

/*
TaskStatus is a task's current state plus an optional explanatory message
and the time the state was entered.
*/
type TaskStatus struct {
	State     TaskState `json:"state"`
	Message   *Message  `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusOption configures an optional TaskStatus field.
type StatusOption func(*TaskStatus)

// WithMessage attaches an explanatory message to the status.
func WithMessage(msg Message) StatusOption {
	return func(status *TaskStatus) { status.Message = &msg }
}

// WithTimestamp pins the status timestamp instead of reading the clock.
func WithTimestamp(at time.Time) StatusOption {
	return func(status *TaskStatus) { status.Timestamp = at }
}

// NewTaskStatus builds a status stamped with the current clock time unless
// WithTimestamp overrides it.
func NewTaskStatus(state TaskState, opts ...StatusOption) TaskStatus {
	status := TaskStatus{State: state, Timestamp: Clock()}

	for _, opt := range opts {
		opt(&status)
	}

	return status
}

func (status *TaskStatus) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias TaskStatus
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*status = TaskStatus(decoded)
	return nil
}
