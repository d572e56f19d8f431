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

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)

// ContractHandler handles HTTP requests for contracts.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// GenerateContract invokes the remote generation service and stores the
// resulting contract. On a remote failure nothing is stored.
func (h *ContractHandler) GenerateContract(c *gin.Context) {
	var payload request.GenerateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	templateID := payload.ResolveTemplateID()
	log.Printf("[contract][handler] generate start template_id=%s", templateID)
	created, err := h.usecase.GenerateContract(c.Request.Context(), templateID, payload.ResolveData())
	if err != nil {
		log.Printf("[contract][handler] generate failed template_id=%s err=%v", templateID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contract][handler] generate success id=%s type=%s", created.ID, created.Type)

	c.JSON(http.StatusCreated, response.FromContract(created))
}

func (h *ContractHandler) ListContracts(c *gin.Context) {
	contracts, err := h.usecase.ListContracts(c.Request.Context())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(contracts))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// DeleteContract removes the contract; deleting a missing id succeeds.
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteContract(c.Request.Context(), id); err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contract][handler] delete success id=%s", id)
	c.Status(http.StatusNoContent)
}

// DownloadContract exports the contract content as a file.
func (h *ContractHandler) DownloadContract(c *gin.Context) {
	path, err := h.usecase.DownloadContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DownloadResponse{Path: path})
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTemplateID), errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainError("INVALID_CONTRACT_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractGenerationFailed):
		return pkg.NewDomainError("CONTRACT_GENERATION_FAILED", "Contract generation failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrContractExportFailed):
		return pkg.NewDomainError("CONTRACT_EXPORT_FAILED", "Contract export failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
