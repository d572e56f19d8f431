package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "smartcontract/internal/adapter/http/dto/request"
	response "smartcontract/internal/adapter/http/dto/response"
	"smartcontract/internal/usecase"
	"smartcontract/pkg"
)

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)

// ReviewHandler handles HTTP requests for contract review.
//
// Reviewing the canned sample is its own endpoint; it is never inferred from
// an absent content field.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// ReviewContent reviews explicitly supplied contract text.
func (h *ReviewHandler) ReviewContent(c *gin.Context) {
	var payload request.ReviewContentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ReviewContent(c.Request.Context(), payload.ContractContent)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewResult(result))
}

// ReviewSample reviews the fixed example content.
func (h *ReviewHandler) ReviewSample(c *gin.Context) {
	result, err := h.usecase.ReviewSample(c.Request.Context())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewResult(result))
}

// ReviewQuotation reviews a stored quotation's content.
func (h *ReviewHandler) ReviewQuotation(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[review][handler] review quotation start id=%s", id)
	result, err := h.usecase.ReviewQuotation(c.Request.Context(), id)
	if err != nil {
		log.Printf("[review][handler] review quotation failed id=%s err=%v", id, err)
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewResult(result))
}

// ReviewContract reviews a stored contract's content.
func (h *ReviewHandler) ReviewContract(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[review][handler] review contract start id=%s", id)
	result, err := h.usecase.ReviewContract(c.Request.Context(), id)
	if err != nil {
		log.Printf("[review][handler] review contract failed id=%s err=%v", id, err)
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewResult(result))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyReviewContent), errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainError("INVALID_REVIEW_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractReviewFailed):
		return pkg.NewDomainError("CONTRACT_REVIEW_FAILED", "Contract review failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
