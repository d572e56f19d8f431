// Package memory holds the session-scoped artifact store.
//
// Persistence beyond the active session is out of scope, so both collections
// are plain slices guarded by an RWMutex. The lock is per-operation only:
// a delete may race an in-flight review flow that already captured the
// artifact's content, and that is fine — reviews never write back.
package memory

import (
	"context"
	"sync"

	"smartcontract/internal/domain/entities"
	"smartcontract/internal/usecase/interfaces"
)

// QuotationStore keeps quotations in insertion order, most-recent-last.

type QuotationStore struct {
	mu    sync.RWMutex
	items []entities.Quotation
}

var _ interfaces.IQuotationStore = (*QuotationStore)(nil)

func NewQuotationStore() *QuotationStore {
	return &QuotationStore{}
}

func (s *QuotationStore) Insert(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, q)
	return q, nil
}

func (s *QuotationStore) FindByID(_ context.Context, id string) (entities.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.items {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quotation{}, nil
}

func (s *QuotationStore) All(_ context.Context) ([]entities.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Quotation, len(s.items))
	copy(out, s.items)
	return out, nil
}

// RemoveByID filters the collection; removing an absent id is a no-op.
func (s *QuotationStore) RemoveByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, q := range s.items {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	s.items = kept
	return nil
}
