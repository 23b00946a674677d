package admission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueOrderCompare(t *testing.T) {
	factory := testVectorFactory()

	tests := map[string]struct {
		a        *Task
		b        *Task
		expected int
	}{
		"Less urgent tasks sort toward the front": {
			a:        &Task{id: "a", urgency: 1, resources: factory.MustFromValues(9, 9, 9)},
			b:        &Task{id: "b", urgency: 2, resources: factory.MustFromValues(0, 0, 0)},
			expected: -1,
		},
		"More urgent tasks sort toward the back": {
			a:        &Task{id: "a", urgency: 5, resources: factory.MustFromValues(1, 1, 1)},
			b:        &Task{id: "b", urgency: 3, resources: factory.MustFromValues(1, 1, 1)},
			expected: 1,
		},
		"Equally urgent tasks sort by decreasing resource magnitude": {
			a:        &Task{id: "a", urgency: 4, resources: factory.MustFromValues(2, 2, 2)},
			b:        &Task{id: "b", urgency: 4, resources: factory.MustFromValues(1, 1, 1)},
			expected: -1,
		},
		"The cheapest of equally urgent tasks sorts closest to the back": {
			a:        &Task{id: "a", urgency: 4, resources: factory.MustFromValues(0, 1, 0)},
			b:        &Task{id: "b", urgency: 4, resources: factory.MustFromValues(5, 0, 0)},
			expected: 1,
		},
		"Magnitude ignores per-dimension composition": {
			a:        &Task{id: "a", urgency: 4, resources: factory.MustFromValues(100, 0, 0)},
			b:        &Task{id: "b", urgency: 4, resources: factory.MustFromValues(0, 50, 50)},
			expected: 0,
		},
		"Ids never participate in ordering": {
			a:        &Task{id: "z", urgency: 4, resources: factory.MustFromValues(1, 1, 1)},
			b:        &Task{id: "a", urgency: 4, resources: factory.MustFromValues(1, 1, 1)},
			expected: 0,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TaskOrderComparer{}.Compare(tc.a, tc.b))
		})
	}
}
