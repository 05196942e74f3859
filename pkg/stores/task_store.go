/*
Package stores provides task storage for the protocol core.  A store holds
immutable Task snapshots keyed by id: every state progression publishes a
whole new Task value under the store's lock, so readers always observe a
complete snapshot and the store needs no compare-and-swap primitive.
*/
package stores

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/agentmesh/a2a-core/pkg/a2a"
	"github.com/agentmesh/a2a-core/pkg/errors"
)

// TaskStore is the storage collaborator contract.  Implementations must
// guarantee at most one in-flight state transition per task id.
type TaskStore interface {
	Create(ctx context.Context, task a2a.Task) *errors.RpcError
	Get(ctx context.Context, id string) (a2a.Task, *errors.RpcError)
	Update(ctx context.Context, task a2a.Task) *errors.RpcError
	Cancel(ctx context.Context, id string, message *a2a.Message) (a2a.Task, *errors.RpcError)
	List(ctx context.Context) []a2a.Task
	Delete(ctx context.Context, id string) *errors.RpcError
}

// InMemoryTaskStore keeps task snapshots in a mutex-guarded map.
type InMemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[string]a2a.Task
}

var _ TaskStore = (*InMemoryTaskStore)(nil)

func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{
		tasks: make(map[string]a2a.Task),
	}
}

// Create stores the first snapshot of a task.  Creating an id twice is an
// invalid request.
func (store *InMemoryTaskStore) Create(ctx context.Context, task a2a.Task) *errors.RpcError {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.tasks[task.ID]; exists {
		return errors.ErrInvalidRequest.WithMessagef("task %s already exists", task.ID)
	}

	log.Info("task created", "id", task.ID, "state", task.State())
	store.tasks[task.ID] = task
	return nil
}

// Get returns the current snapshot of a task.
func (store *InMemoryTaskStore) Get(ctx context.Context, id string) (a2a.Task, *errors.RpcError) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	task, exists := store.tasks[id]
	if !exists {
		return a2a.Task{}, errors.ErrTaskNotFound
	}

	return task, nil
}

// Update publishes a new snapshot of an existing task.  Transitions out of
// a terminal state are refused.
func (store *InMemoryTaskStore) Update(ctx context.Context, task a2a.Task) *errors.RpcError {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, exists := store.tasks[task.ID]
	if !exists {
		return errors.ErrTaskNotFound
	}

	if current.State().Terminal() {
		return errors.ErrUnsupportedOperation.WithMessagef(
			"task %s is %s and accepts no further transitions", task.ID, current.State())
	}

	log.Info("task status update", "id", task.ID, "from", current.State(), "to", task.State())
	store.tasks[task.ID] = task
	return nil
}

// Cancel publishes a canceled snapshot of the task, optionally carrying an
// explanatory message.  Canceling a terminal task is refused.
func (store *InMemoryTaskStore) Cancel(ctx context.Context, id string, message *a2a.Message) (a2a.Task, *errors.RpcError) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, exists := store.tasks[id]
	if !exists {
		return a2a.Task{}, errors.ErrTaskNotFound
	}

	if current.State().Terminal() {
		return a2a.Task{}, errors.ErrTaskNotCancelable
	}

	opts := []a2a.StatusOption{}
	if message != nil {
		opts = append(opts, a2a.WithMessage(*message))
	}

	canceled := current.WithStatus(a2a.NewTaskStatus(a2a.TaskStateCanceled, opts...))
	log.Info("task canceled", "id", id, "from", current.State())
	store.tasks[id] = canceled
	return canceled, nil
}

// List returns the current snapshot of every task.
func (store *InMemoryTaskStore) List(ctx context.Context) []a2a.Task {
	store.mu.RLock()
	defer store.mu.RUnlock()

	tasks := make([]a2a.Task, 0, len(store.tasks))
	for _, task := range store.tasks {
		tasks = append(tasks, task)
	}

	return tasks
}

// Delete removes a task and its history from the store.
func (store *InMemoryTaskStore) Delete(ctx context.Context, id string) *errors.RpcError {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.tasks[id]; !exists {
		return errors.ErrTaskNotFound
	}

	delete(store.tasks, id)
	return nil
}
