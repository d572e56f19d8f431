package entities

import "time"

// ReviewResult carries the suggestions returned by the remote review service.
//
// It is transient: associated with whichever artifact (or ad-hoc content)
// triggered the review, shown to the user, never persisted in a store.

type ReviewResult struct {
	Suggestions string `json:"suggestions"`
}

// SignatureReceipt reports a completed electronic signature.
//
// Signing is simulated locally with a fixed latency; no remote call is made.

type SignatureReceipt struct {
	TransactionID string    `json:"transaction_id"`
	Signatory     string    `json:"signatory"`
	SignedAt      time.Time `json:"signed_at"`
}
