package admission

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask_GeneratesIdWhenEmpty(t *testing.T) {
	factory := testVectorFactory()
	resources := factory.MustFromValues(1, 1, 0)

	a := NewTask("", 1, resources, nil)
	b := NewTask("", 1, resources, nil)

	assert.Len(t, a.Id(), 26)
	assert.NotEqual(t, a.Id(), b.Id())
	assert.Equal(t, strings.ToLower(a.Id()), a.Id())
}

func TestNewTask_KeepsCallerSuppliedId(t *testing.T) {
	factory := testVectorFactory()
	task := NewTask("my-task", 3, factory.MustFromValues(1, 0, 0), []byte("payload"))

	assert.Equal(t, "my-task", task.Id())
	assert.Equal(t, int32(3), task.Urgency())
	assert.Equal(t, []byte("payload"), task.Content())
	assert.Nil(t, task.Result())
}

func TestTask_WithResultDoesNotMutateOriginal(t *testing.T) {
	factory := testVectorFactory()
	task := NewTask("my-task", 3, factory.MustFromValues(1, 0, 0), []byte("payload"))

	finished := task.WithResult([]byte("output"))

	assert.Equal(t, []byte("output"), finished.Result())
	assert.Nil(t, task.Result())
	assert.Equal(t, task.Id(), finished.Id())
	assert.Equal(t, task.Urgency(), finished.Urgency())
}
