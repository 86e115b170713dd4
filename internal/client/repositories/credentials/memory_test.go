package credentials

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophtickets/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository { return NewMemoryRepository() })
}

func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Set(ctx, common.AccessTokenKey, "A")
			_, _ = r.Get(ctx, common.AccessTokenKey)
			_ = r.Clear(ctx)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, r.Len(), 1)
}

// runContract exercises behaviour every Repository must share.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key reads empty", func(t *testing.T) {
		r := newRepo(t)
		v, err := r.Get(ctx, common.AccessTokenKey)
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("set then get, overwrite", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, common.AccessTokenKey, "A1"))
		require.NoError(t, r.Set(ctx, common.AccessTokenKey, "A2"))

		v, err := r.Get(ctx, common.AccessTokenKey)
		require.NoError(t, err)
		assert.Equal(t, "A2", v)
	})

	t.Run("set tokens writes both", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, SetTokens(ctx, r, "A1", "R1"))

		a, err := r.Get(ctx, common.AccessTokenKey)
		require.NoError(t, err)
		rt, err := r.Get(ctx, common.RefreshTokenKey)
		require.NoError(t, err)
		assert.Equal(t, "A1", a)
		assert.Equal(t, "R1", rt)
	})

	t.Run("set tokens without refresh drops old refresh", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, SetTokens(ctx, r, "A1", "R1"))
		require.NoError(t, SetTokens(ctx, r, "A2", ""))

		rt, err := r.Get(ctx, common.RefreshTokenKey)
		require.NoError(t, err)
		assert.Empty(t, rt)
	})

	t.Run("delete and clear are idempotent", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, SetTokens(ctx, r, "A1", "R1"))

		require.NoError(t, r.Delete(ctx, common.AccessTokenKey))
		require.NoError(t, r.Delete(ctx, common.AccessTokenKey))
		require.NoError(t, r.Clear(ctx))
		require.NoError(t, r.Clear(ctx))

		for _, k := range []string{common.AccessTokenKey, common.RefreshTokenKey} {
			v, err := r.Get(ctx, k)
			require.NoError(t, err)
			assert.Empty(t, v, k)
		}
	})
}
