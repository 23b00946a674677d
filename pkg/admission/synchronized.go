package admission

import (
	"sync"

	"github.com/armadaproject/admission/pkg/resource"
)

// SynchronizedTaskQueue serializes all access to a TaskQueue behind a single
// mutex so it can be shared between dispatcher goroutines. Both Add and Poll
// traverse and mutate the same ordered sequence, so every operation,
// including read-only introspection, takes the lock.
type SynchronizedTaskQueue struct {
	mutex sync.Mutex
	queue *TaskQueue
}

func NewSynchronizedTaskQueue() *SynchronizedTaskQueue {
	return &SynchronizedTaskQueue{queue: NewTaskQueue()}
}

func (q *SynchronizedTaskQueue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return q.queue.Len()
}

func (q *SynchronizedTaskQueue) Tasks() []*Task {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return q.queue.Tasks()
}

func (q *SynchronizedTaskQueue) QueuedResources() resource.Vector {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return q.queue.QueuedResources()
}

func (q *SynchronizedTaskQueue) Add(task *Task) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.queue.Add(task)
}

func (q *SynchronizedTaskQueue) Poll(available resource.Vector) (*Task, bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return q.queue.Poll(available)
}
