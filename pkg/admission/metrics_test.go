package admission

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueCollector(t *testing.T) {
	factory := testVectorFactory()
	queue := NewSynchronizedTaskQueue()
	queue.Add(NewTask("a", 1, factory.MustFromValues(1, 1, 0), nil))
	queue.Add(NewTask("b", 1, factory.MustFromValues(2, 1, 1), nil))
	queue.Add(NewTask("c", 2, factory.MustFromValues(1, 1, 0), nil))

	collector := NewQueueCollector(queue)

	expected := `
		# HELP admission_queue_length Number of tasks waiting in the queue
		# TYPE admission_queue_length gauge
		admission_queue_length 3
		# HELP admission_queued_resources Total resources requested by queued tasks
		# TYPE admission_queued_resources gauge
		admission_queued_resources{resourceDimension="cpu"} 3
		admission_queued_resources{resourceDimension="memory"} 4
		admission_queued_resources{resourceDimension="nvidia.com/gpu"} 1
		# HELP admission_queued_tasks Number of tasks waiting in the queue, by urgency
		# TYPE admission_queued_tasks gauge
		admission_queued_tasks{urgency="1"} 2
		admission_queued_tasks{urgency="2"} 1
	`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected))
	require.NoError(t, err)
}

func TestQueueCollector_EmptyQueue(t *testing.T) {
	queue := NewSynchronizedTaskQueue()
	collector := NewQueueCollector(queue)

	expected := `
		# HELP admission_queue_length Number of tasks waiting in the queue
		# TYPE admission_queue_length gauge
		admission_queue_length 0
	`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected))
	assert.NoError(t, err)
}
