package grid

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Move is the per-axis step taken when walking a line.
type Move int

const (
	Descend Move = -1
	Fixed   Move = 0
	Ascend  Move = 1
)

// Inverse returns the step walking the opposite way.
func (m Move) Inverse() Move {
	switch m {
	case Ascend:
		return Descend
	case Descend:
		return Ascend
	case Fixed:
		return Fixed
	default:
		panic(fmt.Sprintf("grid: unknown move %d", int(m)))
	}
}

// Increment is the coordinate delta applied per step.
func (m Move) Increment() int {
	return int(m)
}

// Distance is the absolute coordinate change per step.
func (m Move) Distance() int {
	if m < 0 {
		return -int(m)
	}
	return int(m)
}

func (m Move) String() string {
	switch m {
	case Ascend:
		return "ascend"
	case Fixed:
		return "fixed"
	case Descend:
		return "descend"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// LinePositions returns the maximal straight run of positions passing through
// anchor along direction: the positions behind the anchor (nearest the far
// edge first), the anchor itself, then the positions ahead of it. An all-Fixed
// direction yields only the anchor.
func (g *Grid[T]) LinePositions(direction []Move, anchor Position) ([]Position, error) {
	if len(direction) != len(g.dimensions) {
		return nil, fmt.Errorf("grid: direction %v has %d axes, want %d", direction, len(direction), len(g.dimensions))
	}
	if !g.Contains(anchor) {
		return nil, fmt.Errorf("grid: anchor %v outside dimensions %v", []int(anchor), []int(g.dimensions))
	}

	distance := 0
	for _, m := range direction {
		distance += m.Distance()
	}
	if distance == 0 {
		return []Position{slices.Clone(anchor)}, nil
	}

	inverse := make([]Move, len(direction))
	for i, m := range direction {
		inverse[i] = m.Inverse()
	}

	behind := g.walkToEdge(anchor, inverse)
	slices.Reverse(behind)
	ahead := g.walkToEdge(anchor, direction)

	line := make([]Position, 0, len(behind)+1+len(ahead))
	line = append(line, behind...)
	line = append(line, slices.Clone(anchor))
	line = append(line, ahead...)
	return line, nil
}

// walkToEdge steps from start until the next position falls outside the grid.
// start itself is not included.
func (g *Grid[T]) walkToEdge(start Position, direction []Move) []Position {
	var out []Position
	p := slices.Clone(start)
	for {
		next := make(Position, len(p))
		for i := range p {
			next[i] = p[i] + direction[i].Increment()
		}
		if !g.Contains(next) {
			return out
		}
		out = append(out, next)
		p = next
	}
}

// Directions lists one direction per undirected line orientation in a space of
// the given rank: every non-zero step vector whose first moving axis ascends.
// Axis-aligned directions come first, then those moving on two axes, and so on;
// for rank 2 the result is [ascend fixed] [fixed ascend] [ascend ascend]
// [ascend descend].
func Directions(rank int) [][]Move {
	var out [][]Move
	for k := 1; k <= rank; k++ {
		for _, axes := range combinations(rank, k) {
			// bit j set means axes[j+1] descends
			for signs := 0; signs < 1<<(k-1); signs++ {
				d := make([]Move, rank)
				d[axes[0]] = Ascend
				for j := 1; j < k; j++ {
					if signs&(1<<(k-1-j)) != 0 {
						d[axes[j]] = Descend
					} else {
						d[axes[j]] = Ascend
					}
				}
				out = append(out, d)
			}
		}
	}
	return out
}

// combinations returns every k-subset of [0, n) in lexicographic order.
func combinations(n, k int) [][]int {
	var out [][]int
	current := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(current) == k {
			out = append(out, slices.Clone(current))
			return
		}
		for i := start; i < n; i++ {
			current = append(current, i)
			rec(i + 1)
			current = current[:len(current)-1]
		}
	}
	rec(0)
	return out
}
