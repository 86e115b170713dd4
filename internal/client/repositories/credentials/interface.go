package credentials

import (
	"context"

	"github.com/dmitrijs2005/gophtickets/internal/common"
)

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all values atomically.
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// SetTokens stores a freshly issued token pair. An empty refresh token
// removes any previously stored one so the pair never mixes sessions.
func SetTokens(ctx context.Context, repo Repository, access, refresh string) error {
	if refresh == "" {
		if err := repo.Delete(ctx, common.RefreshTokenKey); err != nil {
			return err
		}
		return repo.Set(ctx, common.AccessTokenKey, access)
	}
	return repo.SetMany(ctx, map[string]string{
		common.AccessTokenKey:  access,
		common.RefreshTokenKey: refresh,
	})
}
