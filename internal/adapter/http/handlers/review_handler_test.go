package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartcontract/internal/adapter/http/handlers/mocks"
	"smartcontract/internal/domain/entities"
	"smartcontract/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReviewHandler_ReviewContent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/review", h.ReviewContent)

		req := httptest.NewRequest(http.MethodPost, "/v1/review", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("review failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/review", h.ReviewContent)

		uc.EXPECT().ReviewContent(gomock.Any(), "合同内容").Return(entities.ReviewResult{}, usecase.ErrContractReviewFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/review", bytes.NewBufferString(`{"contract_content":"合同内容"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/review", h.ReviewContent)

		uc.EXPECT().ReviewContent(gomock.Any(), "合同内容").Return(entities.ReviewResult{Suggestions: "审核建议"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/review", bytes.NewBufferString(`{"contract_content":"合同内容"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["review_suggestions"] != "审核建议" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestReviewHandler_ReviewSample(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReviewUseCase(ctrl)
	h := NewReviewHandler(uc)

	r := gin.New()
	r.POST("/v1/review/sample", h.ReviewSample)

	uc.EXPECT().ReviewSample(gomock.Any()).Return(entities.ReviewResult{Suggestions: "建议"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/review/sample", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestReviewHandler_ReviewQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/review", h.ReviewQuotation)

		uc.EXPECT().ReviewQuotation(gomock.Any(), "q-1").Return(entities.ReviewResult{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReviewUseCase(ctrl)
		h := NewReviewHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/review", h.ReviewQuotation)

		uc.EXPECT().ReviewQuotation(gomock.Any(), "q-1").Return(entities.ReviewResult{Suggestions: "建议"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReviewHandler_ReviewContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReviewUseCase(ctrl)
	h := NewReviewHandler(uc)

	r := gin.New()
	r.POST("/v1/contracts/:id/review", h.ReviewContract)

	uc.EXPECT().ReviewContract(gomock.Any(), "c-1").Return(entities.ReviewResult{}, usecase.ErrContractNotFound)

	req := httptest.NewRequest(http.MethodPost, "/v1/contracts/c-1/review", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
