package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	require.Equal(t, Descend, Ascend.Inverse())
	require.Equal(t, Ascend, Descend.Inverse())
	require.Equal(t, Fixed, Fixed.Inverse())
	require.Equal(t, -1, Descend.Increment())
	require.Equal(t, 1, Descend.Distance())
	require.Equal(t, 0, Fixed.Distance())
	require.Equal(t, "ascend", Ascend.String())
}

func TestLinePositions(t *testing.T) {
	g := MustNew(Dimensions{3, 3}, 0)

	// [ 0 1 2
	//   3 4 5
	//   6 7 8 ]
	tests := []struct {
		anchor    Position
		direction []Move
		want      []int
	}{
		{Position{0, 0}, []Move{Fixed, Fixed}, []int{0}},
		{Position{0, 0}, []Move{Ascend, Fixed}, []int{0, 1, 2}},
		{Position{0, 0}, []Move{Fixed, Ascend}, []int{0, 3, 6}},
		{Position{1, 0}, []Move{Ascend, Fixed}, []int{0, 1, 2}},
		{Position{2, 0}, []Move{Ascend, Fixed}, []int{0, 1, 2}},
		{Position{0, 0}, []Move{Ascend, Ascend}, []int{0, 4, 8}},
		{Position{2, 2}, []Move{Ascend, Ascend}, []int{0, 4, 8}},
		{Position{2, 2}, []Move{Descend, Descend}, []int{8, 4, 0}},
		{Position{1, 1}, []Move{Ascend, Fixed}, []int{3, 4, 5}},
		{Position{1, 1}, []Move{Fixed, Ascend}, []int{1, 4, 7}},
		{Position{1, 1}, []Move{Ascend, Descend}, []int{6, 4, 2}},
		{Position{1, 0}, []Move{Ascend, Descend}, []int{3, 1}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v through %v", tt.direction, tt.anchor), func(t *testing.T) {
			line, err := g.LinePositions(tt.direction, tt.anchor)
			require.NoError(t, err)

			indices := make([]int, len(line))
			anchors := 0
			for i, p := range line {
				indices[i], err = g.Index(p)
				require.NoError(t, err)
				if p.Equal(tt.anchor) {
					anchors++
				}
			}
			require.Equal(t, tt.want, indices)
			require.Equal(t, 1, anchors, "Line should pass through the anchor exactly once")
		})
	}
}

func TestLinePositionsStopAtEdges(t *testing.T) {
	g := MustNew(Dimensions{4, 2, 3}, 0)
	for i := 0; i < g.Count(); i++ {
		anchor, err := g.Position(i)
		require.NoError(t, err)
		for _, dir := range Directions(g.Rank()) {
			line, err := g.LinePositions(dir, anchor)
			require.NoError(t, err)
			for _, p := range line {
				require.True(t, g.Contains(p))
			}
			first, last := line[0], line[len(line)-1]
			before := make(Position, len(first))
			after := make(Position, len(last))
			for axis := range dir {
				before[axis] = first[axis] - dir[axis].Increment()
				after[axis] = last[axis] + dir[axis].Increment()
			}
			require.False(t, g.Contains(before), "Line %v through %v stops short of an edge", dir, anchor)
			require.False(t, g.Contains(after), "Line %v through %v stops short of an edge", dir, anchor)
		}
	}
}

func TestLinePositionsErrors(t *testing.T) {
	g := MustNew(Dimensions{3, 3}, 0)

	_, err := g.LinePositions([]Move{Ascend}, Position{0, 0})
	require.Error(t, err, "Direction rank mismatch should fail")

	_, err = g.LinePositions([]Move{Ascend, Fixed}, Position{3, 0})
	require.Error(t, err, "Anchor outside grid should fail")
}

func TestDirections(t *testing.T) {
	t.Run("rank 2", func(t *testing.T) {
		require.Equal(t, [][]Move{
			{Ascend, Fixed},
			{Fixed, Ascend},
			{Ascend, Ascend},
			{Ascend, Descend},
		}, Directions(2))
	})

	t.Run("one orientation per undirected line", func(t *testing.T) {
		for rank := 1; rank <= 4; rank++ {
			dirs := Directions(rank)
			want := 1
			for i := 0; i < rank; i++ {
				want *= 3
			}
			require.Len(t, dirs, (want-1)/2)

			seen := map[string]bool{}
			for _, d := range dirs {
				inverse := make([]Move, len(d))
				for i, m := range d {
					inverse[i] = m.Inverse()
				}
				require.False(t, seen[fmt.Sprint(d)], "Duplicate direction %v", d)
				require.False(t, seen[fmt.Sprint(inverse)], "Direction %v duplicates its inverse", d)
				seen[fmt.Sprint(d)] = true
			}
		}
	})
}
