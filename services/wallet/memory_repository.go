package wallet

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepository backs tests and the memory unit of work. Keys are the
// (user, currency) pair; Clone/Restore implement its rollback.
type MemoryRepository struct {
	mu     sync.RWMutex
	assets map[string]Asset
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		assets: make(map[string]Asset),
	}
}

func pairKey(userID int64, currency string) string {
	return fmt.Sprintf("%d/%s", userID, currency)
}

func (r *MemoryRepository) GetByUserAndCurrency(_ context.Context, userID int64, currency string) (*Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	asset, ok := r.assets[pairKey(userID, currency)]
	if !ok {
		return nil, ErrAssetNotFound
	}
	return &asset, nil
}

func (r *MemoryRepository) Create(_ context.Context, asset *Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey(asset.UserID, asset.Currency)
	if _, ok := r.assets[key]; ok {
		return ErrAssetExists
	}
	r.assets[key] = *asset
	return nil
}

func (r *MemoryRepository) UpdateAmounts(_ context.Context, asset *Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey(asset.UserID, asset.Currency)
	if _, ok := r.assets[key]; !ok {
		return ErrAssetNotFound
	}
	r.assets[key] = *asset
	return nil
}

func (r *MemoryRepository) Clone() *MemoryRepository {
	r.mu.RLock()
	defer r.mu.RUnlock()
	assets := make(map[string]Asset, len(r.assets))
	for k, v := range r.assets {
		assets[k] = v
	}
	return &MemoryRepository{assets: assets}
}

func (r *MemoryRepository) Restore(from *MemoryRepository) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets = from.assets
}
