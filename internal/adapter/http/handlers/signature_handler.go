package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "smartcontract/internal/adapter/http/dto/request"
	response "smartcontract/internal/adapter/http/dto/response"
	"smartcontract/internal/usecase"
	"smartcontract/pkg"
)

var errInvalidSignaturePayload = pkg.NewDomainErrorSimple("INVALID_SIGNATURE_INPUT", "Invalid signature payload", http.StatusBadRequest)

// SignatureHandler handles the simulated electronic signature flow.

type SignatureHandler struct {
	usecase usecase.ISignatureUseCase
}

func NewSignatureHandler(uc usecase.ISignatureUseCase) *SignatureHandler {
	return &SignatureHandler{usecase: uc}
}

func (h *SignatureHandler) Sign(c *gin.Context) {
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignaturePayload.HTTPStatus, errInvalidSignaturePayload.ToHTTPError())
		return
	}

	receipt, err := h.usecase.Sign(c.Request.Context(), payload.Signatory)
	if err != nil {
		appErr := mapSignatureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSignatureReceipt(receipt))
}

func mapSignatureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSignatory):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE_INPUT", "Invalid signatory", http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("SIGNATURE_ABORTED", "Signature aborted", err, http.StatusRequestTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
