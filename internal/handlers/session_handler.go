package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/professional-agenda/internal/dto"
	"github.com/BruksfildServices01/professional-agenda/internal/httperr"
	"github.com/BruksfildServices01/professional-agenda/internal/httpresp"
	ucSession "github.com/BruksfildServices01/professional-agenda/internal/usecase/session"
)

type SessionHandler struct {
	book *ucSession.BookSession
	log  *zap.Logger
}

func NewSessionHandler(book *ucSession.BookSession, log *zap.Logger) *SessionHandler {
	return &SessionHandler{book: book, log: log}
}

func (h *SessionHandler) Book(c *gin.Context) {
	var req dto.BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	if err := h.book.Execute(c.Request.Context(), req.ID, req.Day, req.Hour); err != nil {
		if httperr.CodeOf(err) == "" {
			h.log.Error("book_failed", zap.Error(err))
		}
		httperr.FromBusiness(c, err, sessionErrors, "book_failed", "Não foi possível agendar uma sessão.")
		return
	}

	httpresp.Message(c, "A sessão foi agendada com sucesso.")
}
