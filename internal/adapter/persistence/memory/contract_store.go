package memory

import (
	"context"
	"sync"

	"smartcontract/internal/domain/entities"
	"smartcontract/internal/usecase/interfaces"
)

// ContractStore keeps contracts in insertion order, most-recent-last.

type ContractStore struct {
	mu    sync.RWMutex
	items []entities.Contract
}

var _ interfaces.IContractStore = (*ContractStore)(nil)

func NewContractStore() *ContractStore {
	return &ContractStore{}
}

func (s *ContractStore) Insert(_ context.Context, c entities.Contract) (entities.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, c)
	return c, nil
}

func (s *ContractStore) FindByID(_ context.Context, id string) (entities.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.items {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Contract{}, nil
}

func (s *ContractStore) All(_ context.Context) ([]entities.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Contract, len(s.items))
	copy(out, s.items)
	return out, nil
}

// RemoveByID filters the collection; removing an absent id is a no-op.
func (s *ContractStore) RemoveByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, c := range s.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.items = kept
	return nil
}
