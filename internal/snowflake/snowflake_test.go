package snowflake_test

import (
	"testing"

	"essentialfeed/backend/internal/snowflake"

	"github.com/stretchr/testify/require"
)

func TestNextID_UniqueWithoutInit(t *testing.T) {
	seen := make(map[int64]struct{})
	for i := 0; i < 100; i++ {
		id := snowflake.NextID()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestInit_RejectsOutOfRangeNode(t *testing.T) {
	require.Error(t, snowflake.Init(4096))
	require.NoError(t, snowflake.Init(7))
	require.NotZero(t, snowflake.NextID())
}
