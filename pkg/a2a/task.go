package a2a

import (
	"encoding/json"

	"github.com/agentmesh/a2a-core/internal/projection"
)

/*
Task is the unit of work tracked by id, carrying its current status and
accumulated artifacts.  A Task value is immutable: lifecycle progression
constructs a new Task with the same id and an updated status or artifact
list, so storage can publish successive snapshots atomically and concurrent
readers never observe a partial update.  SessionID is a correlation key
only; the task does not own the session.
*/
type Task struct {
	ID        string         `json:"id"`
	SessionID string         `json:"sessionId,omitempty"`
	Status    TaskStatus     `json:"status"`
	Artifacts []Artifact     `json:"artifacts,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewTask builds a task in the submitted state.  An empty id is replaced
// with a generated one.
func NewTask(id string, opts ...StatusOption) Task {
	if id == "" {
		id = NewTaskID()
	}

	return Task{
		ID:     id,
		Status: NewTaskStatus(TaskStateSubmitted, opts...),
	}
}

// State is the derived read accessor for the task's current state.
func (task Task) State() TaskState {
	return task.Status.State
}

// WithStatus returns a copy of the task carrying the new status.
func (task Task) WithStatus(status TaskStatus) Task {
	task.Status = status
	return task
}

// WithSession returns a copy of the task correlated to a session.
func (task Task) WithSession(sessionID string) Task {
	task.SessionID = sessionID
	return task
}

// WithArtifact returns a copy of the task with the artifact appended.  The
// original's artifact list is never shared, so earlier snapshots stay
// untouched by later appends.
func (task Task) WithArtifact(artifact Artifact) Task {
	artifacts := make([]Artifact, len(task.Artifacts), len(task.Artifacts)+1)
	copy(artifacts, task.Artifacts)
	task.Artifacts = append(artifacts, artifact)
	return task
}

func (task *Task) UnmarshalJSON(data []byte) error {
	normalized, err := projection.Normalize(data)
	if err != nil {
		return err
	}

	type alias Task
	var decoded alias
	if err := json.Unmarshal(normalized, &decoded); err != nil {
		return err
	}

	*task = Task(decoded)
	return nil
}
