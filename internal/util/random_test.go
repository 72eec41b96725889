package util

import (
	"testing"
	
	"github.com/stretchr/testify/require"
)

func TestGenerateMomoOrderID(t *testing.T) {
	seen := make(map[string]struct{})
	previous := ""
	
	for i := 0; i < 1000; i++ {
		id := GenerateMomoOrderID()
		require.Len(t, id, 26)
		require.Greater(t, id, previous)
		
		_, duplicated := seen[id]
		require.False(t, duplicated)
		
		seen[id] = struct{}{}
		previous = id
	}
}
