package admission

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/armadaproject/admission/pkg/resource"
)

// TaskQueue holds pending tasks in the order defined by QueueOrderCompare
// and selects, for a given snapshot of available resources, the best task to
// run right now. It neither executes tasks nor tracks resource allocation
// over time; both are the caller's concern.
//
// A TaskQueue is not safe for concurrent use; see SynchronizedTaskQueue.
type TaskQueue struct {
	// Sorted by QueueOrderCompare. The back of the slice holds the most
	// urgent tasks and, within an urgency tier, the cheapest ones, so
	// selection is a single backward scan. Queues are expected to hold at
	// most thousands of tasks, for which a sorted slice is fast.
	tasks []*Task
}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

func (q *TaskQueue) Len() int {
	return len(q.tasks)
}

// Tasks returns the queued tasks in queue order, front first.
func (q *TaskQueue) Tasks() []*Task {
	return slices.Clone(q.tasks)
}

// QueuedResources returns the sum of the resource requirements of all
// queued tasks.
func (q *TaskQueue) QueuedResources() resource.Vector {
	var total resource.Vector
	for _, task := range q.tasks {
		total = total.Add(task.resources)
	}
	return total
}

// Add inserts the task at its sort position, after any task it is
// order-equivalent with. The order of the tasks already queued is preserved.
func (q *TaskQueue) Add(task *Task) {
	i := sort.Search(len(q.tasks), func(i int) bool {
		return QueueOrderCompare(task, q.tasks[i]) < 0
	})
	q.tasks = append(q.tasks, nil)
	copy(q.tasks[i+1:], q.tasks[i:])
	q.tasks[i] = task
}

// Poll removes and returns the most urgent task whose resource requirement
// does not exceed available, preferring the cheapest within an urgency tier.
// The second return value is false if the queue is empty or no queued task
// fits, in which case the queue is left unchanged; this is a normal outcome,
// not an error.
//
// Poll is a greedy single backward scan: it returns the first fitting task
// encountered and never trades a fitting low-urgency task against a
// not-yet-scanned cheaper one. It does not attempt a globally optimal
// packing. This is a deliberate simplification.
func (q *TaskQueue) Poll(available resource.Vector) (*Task, bool) {
	for i := len(q.tasks) - 1; i >= 0; i-- {
		task := q.tasks[i]
		if task.resources.Exceeds(available) {
			continue
		}
		q.tasks = append(q.tasks[:i], q.tasks[i+1:]...)
		log.Debugf("admitting task %s at urgency %d using %s of available %s",
			task.id, task.urgency, task.resources, available)
		return task, true
	}
	return nil, false
}
