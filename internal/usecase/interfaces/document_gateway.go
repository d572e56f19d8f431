package interfaces

import (
	"context"

	"smartcontract/internal/domain/entities"
)

// IDocumentGateway abstracts the remote document service (generate + review).
//
// Both calls may block on network I/O. The gateway performs no retries: every
// failure is surfaced exactly once to the calling use case, which decides the
// user-visible handling. On a failed generation the caller must not create a
// contract entity.
type IDocumentGateway interface {
	// GenerateContract renders a contract from a template id and the given
	// business data, returning the contract content verbatim.
	GenerateContract(ctx context.Context, templateID string, data entities.ContractData) (string, error)

	// ReviewContract submits contract text for review and returns the
	// suggestions. When the remote response omits the suggestions field the
	// gateway substitutes a fixed placeholder; that substitution is a
	// client-side policy, not a server guarantee.
	ReviewContract(ctx context.Context, content string) (string, error)
}
