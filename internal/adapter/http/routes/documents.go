package routes

import (
	"smartcontract/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathContracts  = "/contracts"
	PathReview     = "/review"
	PathSignatures = "/signatures"
	PathSession    = "/session"
	PathOCR        = "/ocr"
)

func addDocumentRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, contractHandler *handlers.ContractHandler, reviewHandler *handlers.ReviewHandler, signatureHandler *handlers.SignatureHandler, uploadHandler *handlers.UploadHandler, sessionHandler *handlers.SessionHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("", quotationHandler.ListQuotations)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.DELETE("/:id", quotationHandler.DeleteQuotation)
		quotations.POST("/:id/download", quotationHandler.DownloadQuotation)
		quotations.POST("/:id/review", reviewHandler.ReviewQuotation)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("/generate", contractHandler.GenerateContract)
		contracts.GET("", contractHandler.ListContracts)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.DELETE("/:id", contractHandler.DeleteContract)
		contracts.POST("/:id/download", contractHandler.DownloadContract)
		contracts.POST("/:id/review", reviewHandler.ReviewContract)
	}

	review := rg.Group(PathReview)
	{
		review.POST("", reviewHandler.ReviewContent)
		review.POST("/sample", reviewHandler.ReviewSample)
	}

	rg.POST(PathSignatures, signatureHandler.Sign)
	rg.POST(PathOCR+"/recognize", uploadHandler.Recognize)

	sessionGroup := rg.Group(PathSession)
	{
		sessionGroup.GET("", sessionHandler.GetState)
		sessionGroup.DELETE("/previews/:kind", sessionHandler.ClosePreview)
	}
}
