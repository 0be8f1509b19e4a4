package main

import (
	"testing"

	"github.com/2020-DEV-174/TicTacToe/grid"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	p, err := parsePosition("1, 2")
	require.NoError(t, err)
	require.Equal(t, grid.Position{1, 2}, p)

	p, err = parsePosition("0,1,2")
	require.NoError(t, err)
	require.Equal(t, grid.Position{0, 1, 2}, p)

	_, err = parsePosition("1,x")
	require.Error(t, err)
}
