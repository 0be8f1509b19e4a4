// Package grid stores the cells of a dense N-dimensional space and maps between
// multi-axis positions and flat storage indices.
//
// Axis 0 varies fastest: for dimensions [3,3] the position [x,y] lives at index
// x + 3*y.
package grid

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Position is a per-axis coordinate, one entry per dimension.
type Position []int

// Dimensions holds the size of every axis.
type Dimensions []int

// Capacity returns the number of cells addressed by the dimensions.
func (d Dimensions) Capacity() int {
	capacity := 1
	for _, n := range d {
		capacity *= n
	}
	return capacity
}

// Equal reports whether two positions address the same cell.
func (p Position) Equal(other Position) bool {
	return slices.Equal(p, other)
}

// Grid is a dense store over a fixed shape. It is never resized; only cell
// contents change.
type Grid[T any] struct {
	dimensions Dimensions
	increments []int // increments[0] = 1, increments[i] = increments[i-1] * dimensions[i-1]
	cells      []T
}

// New creates a grid with every cell set to fill.
func New[T any](dimensions Dimensions, fill T) (*Grid[T], error) {
	if err := validate(dimensions); err != nil {
		return nil, err
	}
	cells := make([]T, dimensions.Capacity())
	for i := range cells {
		cells[i] = fill
	}
	return build(dimensions, cells), nil
}

// FromValues creates a grid holding values in index order. The number of
// values must equal the capacity of the dimensions.
func FromValues[T any](dimensions Dimensions, values []T) (*Grid[T], error) {
	if err := validate(dimensions); err != nil {
		return nil, err
	}
	if capacity := dimensions.Capacity(); len(values) != capacity {
		return nil, fmt.Errorf("grid: %d initial values incompatible with dimensions %v (capacity %d)", len(values), []int(dimensions), capacity)
	}
	return build(dimensions, slices.Clone(values)), nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew[T any](dimensions Dimensions, fill T) *Grid[T] {
	g, err := New(dimensions, fill)
	if err != nil {
		panic(err)
	}
	return g
}

func validate(dimensions Dimensions) error {
	if len(dimensions) == 0 {
		return fmt.Errorf("grid: dimensions must have at least one axis")
	}
	for axis, n := range dimensions {
		if n < 0 {
			return fmt.Errorf("grid: axis %d has negative size %d", axis, n)
		}
	}
	return nil
}

func build[T any](dimensions Dimensions, cells []T) *Grid[T] {
	increments := make([]int, len(dimensions))
	increment := 1
	for i, n := range dimensions {
		increments[i] = increment
		increment *= n
	}
	return &Grid[T]{
		dimensions: slices.Clone(dimensions),
		increments: increments,
		cells:      cells,
	}
}

// Dimensions returns a copy of the grid shape.
func (g *Grid[T]) Dimensions() Dimensions {
	return slices.Clone(g.dimensions)
}

// Rank is the number of axes.
func (g *Grid[T]) Rank() int {
	return len(g.dimensions)
}

// Count is the number of cells.
func (g *Grid[T]) Count() int {
	return len(g.cells)
}

// Index converts a position to its flat storage offset.
func (g *Grid[T]) Index(position Position) (int, error) {
	if len(position) != len(g.dimensions) {
		return 0, fmt.Errorf("grid: position %v has %d axes, want %d", []int(position), len(position), len(g.dimensions))
	}
	index := 0
	for i, p := range position {
		if p < 0 || p >= g.dimensions[i] {
			return 0, fmt.Errorf("grid: position %v out of range on axis %d", []int(position), i)
		}
		index += p * g.increments[i]
	}
	return index, nil
}

// Position converts a flat storage offset back to a position, decoding the most
// significant axis first.
func (g *Grid[T]) Position(index int) (Position, error) {
	if index < 0 || index >= len(g.cells) {
		return nil, fmt.Errorf("grid: index %d out of range [0, %d)", index, len(g.cells))
	}
	position := make(Position, len(g.increments))
	remaining := index
	for i := len(g.increments) - 1; i >= 0; i-- {
		position[i] = remaining / g.increments[i]
		remaining %= g.increments[i]
	}
	return position, nil
}

// Contains reports whether position lies inside the grid.
func (g *Grid[T]) Contains(position Position) bool {
	if len(position) != len(g.dimensions) {
		return false
	}
	for i, p := range position {
		if p < 0 || p >= g.dimensions[i] {
			return false
		}
	}
	return true
}

// Get returns the value stored at position.
func (g *Grid[T]) Get(position Position) (T, error) {
	index, err := g.Index(position)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.cells[index], nil
}

// Set stores value at position.
func (g *Grid[T]) Set(position Position, value T) error {
	index, err := g.Index(position)
	if err != nil {
		return err
	}
	g.cells[index] = value
	return nil
}

// At returns the value at index. It panics if index is out of range, like a
// slice access.
func (g *Grid[T]) At(index int) T {
	return g.cells[index]
}

// SetAt stores value at index. It panics if index is out of range.
func (g *Grid[T]) SetAt(index int, value T) {
	g.cells[index] = value
}

// Fill overwrites every cell with value without reallocating.
func (g *Grid[T]) Fill(value T) {
	for i := range g.cells {
		g.cells[i] = value
	}
}

// TransformEach replaces every cell with f(value, index).
func (g *Grid[T]) TransformEach(f func(value T, index int) T) {
	for i, v := range g.cells {
		g.cells[i] = f(v, i)
	}
}

// CountWhere counts the cells satisfying pred.
func (g *Grid[T]) CountWhere(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Values returns a copy of the cells in index order.
func (g *Grid[T]) Values() []T {
	return slices.Clone(g.cells)
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		dimensions: g.dimensions,
		increments: g.increments,
		cells:      slices.Clone(g.cells),
	}
}

// CountEqual counts the cells equal to value.
func CountEqual[T comparable](g *Grid[T], value T) int {
	return g.CountWhere(func(v T) bool { return v == value })
}
