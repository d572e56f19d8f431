package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartcontract/internal/adapter/http/handlers/mocks"
	"smartcontract/internal/domain/entities"
	"smartcontract/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"customer_name":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase rejects input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, usecase.ErrInvalidQuotationInput)

		body := `{"customer_name":"Acme","customer_contact":"张三","product_name":"门锁","quantity":10,"unit_price":5,"currency":"XXX","delivery_date":"2026-01-15"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(entities.Quotation{
			ID:           "1765535400000",
			CustomerName: "Acme",
			TotalAmount:  50,
			CreateDate:   "2025/12/12",
		}, nil)

		body := `{"customer_name":"Acme","customer_contact":"张三","product_name":"门锁","quantity":10,"unit_price":5,"currency":"CNY","delivery_date":"2026-01-15"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "1765535400000" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if resp["display_id"] != "QUO35400000" {
			t.Fatalf("expected display id QUO35400000, got %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_GetQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_ListQuotations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	h := NewQuotationHandler(uc)

	r := gin.New()
	r.GET("/v1/quotations", h.ListQuotations)

	uc.EXPECT().ListQuotations(gomock.Any()).Return([]entities.Quotation{{ID: "q-1"}, {ID: "q-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp) != 2 {
		t.Fatalf("expected 2 quotations, got %s", w.Body.String())
	}
}

func TestQuotationHandler_DeleteQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	h := NewQuotationHandler(uc)

	r := gin.New()
	r.DELETE("/v1/quotations/:id", h.DeleteQuotation)

	uc.EXPECT().DeleteQuotation(gomock.Any(), "q-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/quotations/q-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestQuotationHandler_DownloadQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/download", h.DownloadQuotation)

		uc.EXPECT().DownloadQuotation(gomock.Any(), "q-1").Return("/exports/报价单_Acme_2025-12-12.md", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/download", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["path"] != "/exports/报价单_Acme_2025-12-12.md" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("export failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/download", h.DownloadQuotation)

		uc.EXPECT().DownloadQuotation(gomock.Any(), "q-1").Return("", usecase.ErrQuotationExportFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/download", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapQuotationError_Unknown(t *testing.T) {
	appErr := mapQuotationError(errors.New("boom"))
	if appErr.Code != "INTERNAL_ERROR" || appErr.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected mapping %+v", appErr)
	}
}
