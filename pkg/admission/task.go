package admission

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid"

	"github.com/armadaproject/admission/pkg/resource"
)

// Task is a pending unit of work held by a TaskQueue.
type Task struct {
	// String representation of the task id.
	// Opaque to the queue; uniqueness is the caller's responsibility.
	id string
	// Urgency of this task. Higher values are more critical and are served first.
	urgency int32
	// Resources this task needs in order to run.
	resources resource.Vector
	// Payload executed by the caller once the task is admitted.
	// The queue never inspects it.
	content []byte
	// Output produced by the caller after execution.
	// The queue never inspects it.
	result []byte
}

// NewTask creates a new task. If id is empty a ULID is generated.
// Urgency and resources must not change once the task is queued;
// the queue's sort position is established at insertion time.
func NewTask(id string, urgency int32, resources resource.Vector, content []byte) *Task {
	if id == "" {
		id = newTaskId()
	}
	return &Task{
		id:        id,
		urgency:   urgency,
		resources: resources,
		content:   content,
	}
}

// Id returns the id of the task.
func (task *Task) Id() string {
	return task.id
}

// Urgency returns the urgency of the task.
func (task *Task) Urgency() int32 {
	return task.urgency
}

// Resources returns the resources the task needs in order to run.
func (task *Task) Resources() resource.Vector {
	return task.resources
}

// Content returns the task's payload.
func (task *Task) Content() []byte {
	return task.content
}

// Result returns the task's output, or nil if it has not run yet.
func (task *Task) Result() []byte {
	return task.result
}

// WithResult returns a copy of the task with the result set.
func (task *Task) WithResult(result []byte) *Task {
	copy := task.copy()
	copy.result = result
	return copy
}

func (task *Task) copy() *Task {
	copy := *task
	return &copy
}

var (
	entropy      = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	entropyMutex sync.Mutex
)

func newTaskId() string {
	entropyMutex.Lock()
	defer entropyMutex.Unlock()
	return strings.ToLower(ulid.MustNew(ulid.Now(), entropy).String())
}
