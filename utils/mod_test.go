package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndexFunc(t *testing.T) {
	names := []string{"a", "b", "c"}
	require.Equal(t, 1, FindIndexFunc(names, func(s string) bool { return s == "b" }))
	require.Equal(t, -1, FindIndexFunc(names, func(s string) bool { return s == "z" }))
	require.Equal(t, -1, FindIndexFunc(nil, func(s string) bool { return true }))
}

func TestAll(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	require.True(t, All([]int{2, 4, 6}, even))
	require.False(t, All([]int{2, 3, 6}, even))
	require.True(t, All([]int{}, even), "Empty slice satisfies any predicate")
}
