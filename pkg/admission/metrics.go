package admission

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/armadaproject/admission/pkg/resource"
)

const MetricPrefix = "admission_"

var queueLengthDesc = prometheus.NewDesc(
	MetricPrefix+"queue_length",
	"Number of tasks waiting in the queue",
	nil,
	nil,
)

var queuedTasksDesc = prometheus.NewDesc(
	MetricPrefix+"queued_tasks",
	"Number of tasks waiting in the queue, by urgency",
	[]string{"urgency"},
	nil,
)

var queuedResourcesDesc = prometheus.NewDesc(
	MetricPrefix+"queued_resources",
	"Total resources requested by queued tasks",
	[]string{"resourceDimension"},
	nil,
)

// TaskSource is the queue surface QueueCollector reads. Both TaskQueue and
// SynchronizedTaskQueue implement it; only the latter is safe to scrape while
// a dispatcher is mutating the queue.
type TaskSource interface {
	Tasks() []*Task
}

// QueueCollector is a Prometheus collector reporting the state of a task
// queue. Metrics are computed from a snapshot at scrape time.
type QueueCollector struct {
	source TaskSource
}

func NewQueueCollector(source TaskSource) *QueueCollector {
	return &QueueCollector{source: source}
}

func (c *QueueCollector) Describe(desc chan<- *prometheus.Desc) {
	desc <- queueLengthDesc
	desc <- queuedTasksDesc
	desc <- queuedResourcesDesc
}

func (c *QueueCollector) Collect(metrics chan<- prometheus.Metric) {
	tasks := c.source.Tasks()

	metrics <- prometheus.MustNewConstMetric(
		queueLengthDesc, prometheus.GaugeValue, float64(len(tasks)))

	countByUrgency := map[int32]int{}
	var queued resource.Vector
	for _, task := range tasks {
		countByUrgency[task.Urgency()]++
		queued = queued.Add(task.Resources())
	}

	for urgency, count := range countByUrgency {
		metrics <- prometheus.MustNewConstMetric(
			queuedTasksDesc, prometheus.GaugeValue, float64(count),
			strconv.FormatInt(int64(urgency), 10))
	}

	if !queued.IsEmpty() {
		for _, name := range queued.Factory().Names() {
			metrics <- prometheus.MustNewConstMetric(
				queuedResourcesDesc, prometheus.GaugeValue,
				float64(queued.GetByNameZeroIfMissing(name)), name)
		}
	}
}
