package state

import (
	"context"

	"github.com/elys-network/aprcell/internal/logger"
	"github.com/elys-network/aprcell/internal/types"
)

var stateLogger = logger.GetForComponent("state")

// Source exposes the package-level store functions as a value, so the web layer can depend
// on an interface.
type Source struct{}

func (Source) GetPool(ctx context.Context, id types.PoolID, account string) (types.Pool, error) {
	return GetPool(ctx, id, account)
}

func (Source) ListPools(ctx context.Context, account string) ([]types.Pool, error) {
	return ListPools(ctx, account)
}

func (Source) GetVaultUserData(ctx context.Context, vaultKey types.VaultKey, account string) (*types.VaultUserData, error) {
	return GetVaultUserData(ctx, vaultKey, account)
}

func (Source) GetApyQuotes(ctx context.Context, vaultKey types.VaultKey) ([]types.ApyQuote, error) {
	return GetApyQuotes(ctx, vaultKey)
}

func (Source) GetCurrentBlock(ctx context.Context) (*uint64, error) {
	return GetCurrentBlock(ctx)
}

func (Source) Ping(ctx context.Context) error {
	return TestDBConnection(ctx)
}
