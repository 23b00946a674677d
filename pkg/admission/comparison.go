package admission

type TaskOrderComparer struct{}

func (TaskOrderComparer) Compare(task, other *Task) int {
	return QueueOrderCompare(task, other)
}

// QueueOrderCompare defines the order in which tasks are held in a TaskQueue.
// Specifically, compare returns
//   - -1 if task sorts toward the front of the queue relative to other,
//   - +1 if other sorts toward the front of the queue relative to task,
//   - 0 if the two are order-equivalent.
//
// The back of the queue is the admission end: Poll scans from the back, so
// the most urgent tasks sort last, and among equally urgent tasks the one
// with the smallest aggregate footprint sorts last. Task ids never
// participate in ordering; distinct tasks with equal urgency and equal
// resource magnitude are order-equivalent and their relative order is
// unspecified.
func QueueOrderCompare(task, other *Task) int {
	// Less urgent tasks come first.
	if task.urgency < other.urgency {
		return -1
	} else if task.urgency > other.urgency {
		return 1
	}

	// Among equally urgent tasks, larger aggregate footprints come first,
	// leaving the cheapest candidates closest to the back.
	// Note this compares magnitudes, not per-dimension quantities;
	// admissibility is decided separately by the dominance test.
	return other.resources.Compare(task.resources)
}
