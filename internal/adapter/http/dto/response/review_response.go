package response

import (
	"time"

	"smartcontract/internal/domain/entities"
)

type ReviewResponse struct {
	Suggestions string `json:"review_suggestions"`
}

func FromReviewResult(r entities.ReviewResult) ReviewResponse {
	return ReviewResponse{Suggestions: r.Suggestions}
}

type SignatureResponse struct {
	TransactionID string    `json:"transaction_id"`
	Signatory     string    `json:"signatory"`
	SignedAt      time.Time `json:"signed_at"`
}

func FromSignatureReceipt(r entities.SignatureReceipt) SignatureResponse {
	return SignatureResponse{
		TransactionID: r.TransactionID,
		Signatory:     r.Signatory,
		SignedAt:      r.SignedAt,
	}
}

// DownloadResponse reports a completed artifact export.

type DownloadResponse struct {
	Path string `json:"path"`
}

// UploadReceiptResponse acknowledges a received quotation file. Recognition
// runs out of band; the caller only needs the success notification.

type UploadReceiptResponse struct {
	ID         string  `json:"id"`
	Filename   string  `json:"filename"`
	Size       int64   `json:"size"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}
