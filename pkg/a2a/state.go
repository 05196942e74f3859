package a2a

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cohesivestack/valgo"

	"github.com/agentmesh/a2a-core/pkg/errors"
)

/*
TaskState enumerates the mutually-exclusive lifecycle states of a task.
The set is closed: any other string fails validation.
*/
type TaskState string

const (
	TaskStateSubmitted     TaskState = "submitted"
	TaskStateWorking       TaskState = "working"
	TaskStateInputRequired TaskState = "input-required"
	TaskStateCompleted     TaskState = "completed"
	TaskStateCanceled      TaskState = "canceled"
	TaskStateFailed        TaskState = "failed"
	TaskStateUnknown       TaskState = "unknown"
)

var taskStates = []string{
	string(TaskStateSubmitted),
	string(TaskStateWorking),
	string(TaskStateInputRequired),
	string(TaskStateCompleted),
	string(TaskStateCanceled),
	string(TaskStateFailed),
	string(TaskStateUnknown),
}

// ParseTaskState validates a wire value against the closed state set.
func ParseTaskState(value string) (TaskState, error) {
	if !valgo.Is(valgo.String(value, "state").InSlice(taskStates)).Valid() {
		return "", errors.NewValidationError("state",
			fmt.Sprintf("unknown state %q, must be one of %s", value, strings.Join(taskStates, ", ")))
	}
	return TaskState(value), nil
}

// Terminal reports whether no further transition is expected from the
// state.  Computed on read, never stored.
func (state TaskState) Terminal() bool {
	switch state {
	case TaskStateCompleted, TaskStateCanceled, TaskStateFailed:
		return true
	default:
		return false
	}
}

func (state *TaskState) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	parsed, err := ParseTaskState(value)
	if err != nil {
		return err
	}

	*state = parsed
	return nil
}
