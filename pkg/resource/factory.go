package resource

import (
	"fmt"

	"github.com/pkg/errors"
)

// VectorFactory fixes the set of resource dimensions (e.g. "memory", "cpu",
// "nvidia.com/gpu") for a family of Vectors. All Vectors that are compared or
// tested against each other must come from the same factory.
type VectorFactory struct {
	nameToIndex map[string]int
	indexToName []string
}

func MakeVectorFactory(dimensionNames []string) (*VectorFactory, error) {
	if len(dimensionNames) == 0 {
		return nil, errors.New("no resource dimensions configured")
	}
	indexToName := make([]string, len(dimensionNames))
	nameToIndex := make(map[string]int, len(dimensionNames))
	for i, name := range dimensionNames {
		if name == "" {
			return nil, errors.New("empty resource dimension name")
		}
		if _, exists := nameToIndex[name]; exists {
			return nil, errors.Errorf("duplicate resource dimension name %q", name)
		}
		nameToIndex[name] = i
		indexToName[i] = name
	}
	return &VectorFactory{
		nameToIndex: nameToIndex,
		indexToName: indexToName,
	}, nil
}

func (factory *VectorFactory) NumDimensions() int {
	return len(factory.indexToName)
}

// Names returns the dimension names in index order.
func (factory *VectorFactory) Names() []string {
	result := make([]string, len(factory.indexToName))
	copy(result, factory.indexToName)
	return result
}

func (factory *VectorFactory) MakeAllZero() Vector {
	result := make([]int64, len(factory.indexToName))
	return Vector{values: result, factory: factory}
}

// FromValues makes a Vector from one quantity per dimension, in the order the
// dimension names were given to MakeVectorFactory. A dimension-count mismatch
// is an error rather than being truncated or zero-padded.
func (factory *VectorFactory) FromValues(values ...int64) (Vector, error) {
	if len(values) != len(factory.indexToName) {
		return Vector{}, errors.Errorf(
			"expected %d resource dimensions %v, got %d values",
			len(factory.indexToName), factory.indexToName, len(values),
		)
	}
	result := make([]int64, len(values))
	copy(result, values)
	return Vector{values: result, factory: factory}, nil
}

// MustFromValues is FromValues for values known at compile time, e.g. in tests.
func (factory *VectorFactory) MustFromValues(values ...int64) Vector {
	vector, err := factory.FromValues(values...)
	if err != nil {
		panic(err)
	}
	return vector
}

// FromMap makes a Vector from a quantity per dimension name,
// failing on names the factory does not know. Missing dimensions are zero.
func (factory *VectorFactory) FromMap(values map[string]int64) (Vector, error) {
	result := make([]int64, len(factory.indexToName))
	for name, value := range values {
		index, ok := factory.nameToIndex[name]
		if !ok {
			return Vector{}, errors.Errorf("resource dimension %q is not supported", name)
		}
		result[index] = value
	}
	return Vector{values: result, factory: factory}, nil
}

func (factory *VectorFactory) SummaryString() string {
	result := ""
	for i, name := range factory.indexToName {
		if i > 0 {
			result += " "
		}
		result += fmt.Sprintf("%s (index %d)", name, i)
	}
	return result
}

func assertSameVectorFactory(a, b *VectorFactory) {
	if a != nil && b != nil && a != b {
		panic("mismatched vector factories")
	}
}
