package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"smartcontract/internal/domain/entities"
	"smartcontract/internal/usecase/interfaces"
	"smartcontract/internal/usecase/session"
)

var (
	ErrEmptyReviewContent   = errors.New("empty review content")
	ErrContractReviewFailed = errors.New("contract review failed")
)

// SampleReviewContent is the canned text reviewed by the "try the review
// feature" flow. It is a deliberate, separately named variant: reviewing the
// sample is never inferred from absent parameters, so it cannot be confused
// with reviewing a real artifact.
const SampleReviewContent = "这是一份合同内容示例，包含采购条款和付款条件等信息..."

// IReviewUseCase exposes the review flows.
//
// ReviewQuotation/ReviewContract capture the artifact's content before the
// remote call, so a delete racing the in-flight review does not interrupt
// it. Review results are transient: they land in the review preview only and
// never re-materialize a deleted artifact.

type IReviewUseCase interface {
	ReviewContent(ctx context.Context, content string) (entities.ReviewResult, error)
	ReviewSample(ctx context.Context) (entities.ReviewResult, error)
	ReviewQuotation(ctx context.Context, id string) (entities.ReviewResult, error)
	ReviewContract(ctx context.Context, id string) (entities.ReviewResult, error)
}

type ReviewUseCase struct {
	gateway    interfaces.IDocumentGateway
	quotations interfaces.IQuotationStore
	contracts  interfaces.IContractStore
	session    *session.Session
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(gateway interfaces.IDocumentGateway, quotations interfaces.IQuotationStore, contracts interfaces.IContractStore, sess *session.Session) *ReviewUseCase {
	return &ReviewUseCase{gateway: gateway, quotations: quotations, contracts: contracts, session: sess}
}

// ReviewContent reviews explicitly supplied text.
func (u *ReviewUseCase) ReviewContent(ctx context.Context, content string) (entities.ReviewResult, error) {
	if strings.TrimSpace(content) == "" {
		return entities.ReviewResult{}, ErrEmptyReviewContent
	}
	return u.review(ctx, content)
}

// ReviewSample reviews the fixed example text. This flow exists so the user
// can preview the review feature without a target artifact.
func (u *ReviewUseCase) ReviewSample(ctx context.Context) (entities.ReviewResult, error) {
	return u.review(ctx, SampleReviewContent)
}

// ReviewQuotation reviews the content of a stored quotation.
func (u *ReviewUseCase) ReviewQuotation(ctx context.Context, id string) (entities.ReviewResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ReviewResult{}, ErrInvalidQuotationID
	}

	q, err := u.quotations.FindByID(ctx, id)
	if err != nil {
		return entities.ReviewResult{}, err
	}
	if q.ID == "" {
		return entities.ReviewResult{}, ErrQuotationNotFound
	}
	return u.review(ctx, q.Content)
}

// ReviewContract reviews the content of a stored contract.
func (u *ReviewUseCase) ReviewContract(ctx context.Context, id string) (entities.ReviewResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ReviewResult{}, ErrInvalidContractID
	}

	c, err := u.contracts.FindByID(ctx, id)
	if err != nil {
		return entities.ReviewResult{}, err
	}
	if c.ID == "" {
		return entities.ReviewResult{}, ErrContractNotFound
	}
	return u.review(ctx, c.Content)
}

// review calls the remote service with already-captured content. On failure
// the prior review preview stays untouched.
func (u *ReviewUseCase) review(ctx context.Context, content string) (entities.ReviewResult, error) {
	if u.gateway == nil {
		return entities.ReviewResult{}, errors.New("document gateway not configured")
	}

	release := u.session.Begin()
	defer release()

	log.Printf("[review][usecase] review start content_len=%d", len(content))
	suggestions, err := u.gateway.ReviewContract(ctx, content)
	if err != nil {
		log.Printf("[review][usecase] gateway failed err=%v", err)
		return entities.ReviewResult{}, fmt.Errorf("%w: %v", ErrContractReviewFailed, err)
	}

	u.session.ShowReview(suggestions)
	log.Printf("[review][usecase] review success suggestions_len=%d", len(suggestions))
	return entities.ReviewResult{Suggestions: suggestions}, nil
}
