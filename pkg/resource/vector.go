package resource

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Vector is an immutable quantity of each of a fixed set of resource
// dimensions. The zero value is "empty" and is treated as all-zero
// by the operations below.
type Vector struct {
	values  []int64        // immutable, do not change this, return a new struct instead!
	factory *VectorFactory // immutable, do not change this!
}

func (v Vector) IsEmpty() bool {
	return v.factory == nil
}

func (v Vector) Factory() *VectorFactory {
	return v.factory
}

func (v Vector) Equal(other Vector) bool {
	assertSameVectorFactory(v.factory, other.factory)
	if v.IsEmpty() && other.IsEmpty() {
		return true
	}
	if v.IsEmpty() {
		return other.AllZero()
	}
	if other.IsEmpty() {
		return v.AllZero()
	}
	return slices.Equal(v.values, other.values)
}

func (v Vector) String() string {
	if v.IsEmpty() {
		return "empty"
	}
	result := ""
	for i, name := range v.factory.indexToName {
		if i > 0 {
			result += " "
		}
		result += fmt.Sprintf("%s=%d", name, v.values[i])
	}
	return result
}

func (v Vector) GetByName(name string) (int64, error) {
	if v.IsEmpty() {
		return 0, fmt.Errorf("resource dimension %s not found as vector is empty", name)
	}
	index, ok := v.factory.nameToIndex[name]
	if !ok {
		return 0, fmt.Errorf("resource dimension %s not found", name)
	}
	return v.values[index], nil
}

func (v Vector) GetByNameZeroIfMissing(name string) int64 {
	if v.IsEmpty() {
		return 0
	}
	index, ok := v.factory.nameToIndex[name]
	if !ok {
		return 0
	}
	return v.values[index]
}

func (v Vector) AllZero() bool {
	if v.IsEmpty() {
		return true
	}
	for _, value := range v.values {
		if value != 0 {
			return false
		}
	}
	return true
}

func (v Vector) HasNegativeValues() bool {
	if v.IsEmpty() {
		return false
	}
	for _, value := range v.values {
		if value < 0 {
			return true
		}
	}
	return false
}

// Magnitude is the sum of the vector's dimension values. It is the aggregate
// used for ordering (Compare) and is never used for admissibility; a vector
// can have a small magnitude and still exceed an available vector on a single
// dimension.
func (v Vector) Magnitude() int64 {
	var sum int64
	for _, value := range v.values {
		sum += value
	}
	return sum
}

// Compare orders vectors by magnitude, ascending. This is a weak order:
// vectors with equal magnitude but different per-dimension composition
// compare as equal.
func (v Vector) Compare(other Vector) int {
	assertSameVectorFactory(v.factory, other.factory)
	a, b := v.Magnitude(), other.Magnitude()
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Exceeds returns true if any dimension of this vector is greater than the
// equivalent dimension of available. A vector that does not exceed available
// is dominated by it, i.e. it fits. Negative quantities are compared
// numerically as-is.
func (v Vector) Exceeds(available Vector) bool {
	_, _, _, exceeds := v.ExceedsAvailable(available)
	return exceeds
}

// ExceedsAvailable
//   - if any dimension of this Vector is greater than the equivalent dimension in param available,
//     this function returns
//   - the name of the relevant dimension
//   - the amount of the relevant dimension in available
//   - the amount of the relevant dimension in this Vector
//   - true
//   - if no dimensions of this Vector exceed available, the last return value is false.
//   - empty vectors are considered equivalent to all zero.
func (v Vector) ExceedsAvailable(available Vector) (string, int64, int64, bool) {
	assertSameVectorFactory(v.factory, available.factory)

	if v.IsEmpty() && available.IsEmpty() {
		return "", 0, 0, false
	}

	var factory *VectorFactory
	if available.IsEmpty() {
		factory = v.factory
	} else {
		factory = available.factory
	}

	availableValues := valuesZeroIfEmpty(available.values, factory)
	requiredValues := valuesZeroIfEmpty(v.values, factory)

	for i, required := range requiredValues {
		if required > availableValues[i] {
			return factory.indexToName[i], availableValues[i], required, true
		}
	}
	return "", 0, 0, false
}

func (v Vector) Add(other Vector) Vector {
	assertSameVectorFactory(v.factory, other.factory)
	if v.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return v
	}
	result := make([]int64, len(v.values))
	for i, value := range v.values {
		result[i] = value + other.values[i]
	}
	return Vector{factory: v.factory, values: result}
}

func (v Vector) Subtract(other Vector) Vector {
	assertSameVectorFactory(v.factory, other.factory)
	if other.IsEmpty() {
		return v
	}
	if v.IsEmpty() {
		return other.Negate()
	}
	result := make([]int64, len(v.values))
	for i, value := range v.values {
		result[i] = value - other.values[i]
	}
	return Vector{factory: v.factory, values: result}
}

func (v Vector) Negate() Vector {
	if v.IsEmpty() {
		return v
	}
	result := make([]int64, len(v.values))
	for i, value := range v.values {
		result[i] = -value
	}
	return Vector{factory: v.factory, values: result}
}

func (v Vector) FloorAtZero() Vector {
	if v.IsEmpty() {
		return v
	}
	result := make([]int64, len(v.values))
	for i, value := range v.values {
		if value > 0 {
			result[i] = value
		}
	}
	return Vector{factory: v.factory, values: result}
}

func (v Vector) Scale(multiplier int64) Vector {
	if v.IsEmpty() {
		return v
	}
	result := make([]int64, len(v.values))
	for i, value := range v.values {
		result[i] = value * multiplier
	}
	return Vector{factory: v.factory, values: result}
}

func valuesZeroIfEmpty(values []int64, factory *VectorFactory) []int64 {
	if values == nil {
		return make([]int64, len(factory.indexToName))
	}
	return values
}
