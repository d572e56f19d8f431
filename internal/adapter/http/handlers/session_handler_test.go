package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartcontract/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

func TestSessionHandler_GetState(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sess := session.New()
	sess.ShowQuotation("# 报价单")
	h := NewSessionHandler(sess)

	r := gin.New()
	r.GET("/v1/session", h.GetState)

	req := httptest.NewRequest(http.MethodGet, "/v1/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var state session.State
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !state.Quotation.Open || state.Quotation.Content != "# 报价单" {
		t.Fatalf("unexpected state: %+v", state)
	}
	if state.Contract.Open || state.Review.Open {
		t.Fatalf("other previews must stay closed: %+v", state)
	}
}

func TestSessionHandler_ClosePreview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("closes only the named kind", func(t *testing.T) {
		sess := session.New()
		sess.ShowQuotation("q")
		sess.ShowReview("r")
		h := NewSessionHandler(sess)

		r := gin.New()
		r.DELETE("/v1/session/previews/:kind", h.ClosePreview)

		req := httptest.NewRequest(http.MethodDelete, "/v1/session/previews/quotation", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}

		state := sess.Snapshot()
		if state.Quotation.Open {
			t.Fatalf("quotation preview should be closed")
		}
		if !state.Review.Open {
			t.Fatalf("review preview must remain open")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		h := NewSessionHandler(session.New())

		r := gin.New()
		r.DELETE("/v1/session/previews/:kind", h.ClosePreview)

		req := httptest.NewRequest(http.MethodDelete, "/v1/session/previews/banner", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("closing an already closed preview succeeds", func(t *testing.T) {
		h := NewSessionHandler(session.New())

		r := gin.New()
		r.DELETE("/v1/session/previews/:kind", h.ClosePreview)

		req := httptest.NewRequest(http.MethodDelete, "/v1/session/previews/review", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
