//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/crawlrag/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_Recycling(t *testing.T) {
	t.Parallel()

	t.Run("replaces the browser once the page budget is spent", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(2))
		require.NoError(t, err)
		defer manager.Close()

		before := manager.Browser()
		manager.IncrementPageCount()
		manager.IncrementPageCount()

		after := manager.Browser()
		assert.NotSame(t, before, after)
	})

	t.Run("keeps the browser under the page budget", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(10))
		require.NoError(t, err)
		defer manager.Close()

		before := manager.Browser()
		manager.IncrementPageCount()

		assert.Same(t, before, manager.Browser())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager()
		require.NoError(t, err)

		require.NoError(t, manager.Close())
		require.NoError(t, manager.Close())
	})
}
