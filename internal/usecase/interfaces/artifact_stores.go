package interfaces

import (
	"context"

	"smartcontract/internal/domain/entities"
)

// IQuotationStore abstracts the in-memory quotation collection.
//
// Contract:
//   - Insert appends; ids are creation-time derived and assumed unique
//     within a session, so a collision is programmer error.
//   - All returns insertion order, most-recent-last.
//   - FindByID returns a zero-value entity (ID == "") when absent.
//   - RemoveByID is idempotent: removing a missing id is a no-op, which is
//     what a delete racing a concurrent delete needs.

type IQuotationStore interface {
	Insert(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	FindByID(ctx context.Context, id string) (entities.Quotation, error)
	All(ctx context.Context) ([]entities.Quotation, error)
	RemoveByID(ctx context.Context, id string) error
}

// IContractStore abstracts the in-memory contract collection.
// Same contract as IQuotationStore.

type IContractStore interface {
	Insert(ctx context.Context, c entities.Contract) (entities.Contract, error)
	FindByID(ctx context.Context, id string) (entities.Contract, error)
	All(ctx context.Context) ([]entities.Contract, error)
	RemoveByID(ctx context.Context, id string) error
}
