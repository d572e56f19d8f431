package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartcontract/internal/usecase/session"
	"smartcontract/pkg"
)

// SessionHandler exposes the preview/loading state of the active session.

type SessionHandler struct {
	session *session.Session
}

func NewSessionHandler(sess *session.Session) *SessionHandler {
	return &SessionHandler{session: sess}
}

func (h *SessionHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Snapshot())
}

// ClosePreview closes one preview kind without touching the others.
func (h *SessionHandler) ClosePreview(c *gin.Context) {
	switch strings.ToLower(c.Param("kind")) {
	case "contract":
		h.session.CloseContract()
	case "quotation":
		h.session.CloseQuotation()
	case "review":
		h.session.CloseReview()
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_PREVIEW_KIND", "Unknown preview kind", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
