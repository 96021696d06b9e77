package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type store interface{ Name() string }

type storeImpl struct{}

func (s *storeImpl) Name() string { return "store" }

func TestCheckInit(t *testing.T) {
	t.Run(`initialized dependencies`, func(t *testing.T) {
		var s store = &storeImpl{}
		require.NotPanics(t, func() {
			CheckInit("store", s, "limit", 10)
		})
	})

	t.Run(`nil dependencies`, func(t *testing.T) {
		require.PanicsWithValue(t, "store dependency not initialized", func() {
			CheckInit("store", nil)
		})
		var typed *storeImpl
		var s store = typed
		require.PanicsWithValue(t, "store dependency not initialized", func() {
			CheckInit("store", s)
		})
	})

	t.Run(`malformed pairs`, func(t *testing.T) {
		require.Panics(t, func() { CheckInit("store") })
		require.Panics(t, func() { CheckInit(1, 2) })
	})
}
