package transaction

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository backs tests and the memory unit of work.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]Transaction
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[uuid.UUID]Transaction),
	}
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	txn, ok := r.byID[id]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	return &txn, nil
}

func (r *MemoryRepository) GetByPaymentID(_ context.Context, paymentID string) (*Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, txn := range r.byID {
		if txn.PaymentID != "" && txn.PaymentID == paymentID {
			return &txn, nil
		}
	}
	return nil, ErrTransactionNotFound
}

func (r *MemoryRepository) Create(_ context.Context, txn *Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[txn.ID]; ok {
		return ErrTransactionExists
	}
	r.byID[txn.ID] = *txn
	return nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, txn *Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[txn.ID]; !ok {
		return ErrTransactionNotFound
	}
	r.byID[txn.ID] = *txn
	return nil
}

func (r *MemoryRepository) Clone() *MemoryRepository {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byID := make(map[uuid.UUID]Transaction, len(r.byID))
	for k, v := range r.byID {
		byID[k] = v
	}
	return &MemoryRepository{byID: byID}
}

func (r *MemoryRepository) Restore(from *MemoryRepository) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = from.byID
}
