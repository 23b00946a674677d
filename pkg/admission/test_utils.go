package admission

import (
	"github.com/armadaproject/admission/pkg/resource"
)

func testVectorFactory() *resource.VectorFactory {
	factory, err := resource.MakeVectorFactory([]string{"memory", "cpu", "nvidia.com/gpu"})
	if err != nil {
		panic(err)
	}
	return factory
}

// testTaskSet returns the reference set of eight tasks used throughout the
// queue tests, keyed in insertion order.
func testTaskSet(factory *resource.VectorFactory) []*Task {
	return []*Task{
		NewTask("1", 1, factory.MustFromValues(3, 1, 2), nil),
		NewTask("2", 4, factory.MustFromValues(1, 1, 5), nil),
		NewTask("3", 6, factory.MustFromValues(2, 8, 0), nil),
		NewTask("4", 6, factory.MustFromValues(8, 1, 0), nil),
		NewTask("5", 7, factory.MustFromValues(2, 2, 2), nil),
		NewTask("6", 2, factory.MustFromValues(2, 1, 2), nil),
		NewTask("7", 7, factory.MustFromValues(6, 6, 6), nil),
		NewTask("8", 7, factory.MustFromValues(4, 4, 4), nil),
	}
}

func taskIds(tasks []*Task) []string {
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.Id()
	}
	return ids
}
