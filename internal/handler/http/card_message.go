package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/cardmessage"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/i18n"
)

type CardMessageHandler interface {
	ListForDay(w http.ResponseWriter, r *http.Request)
	Ingest(w http.ResponseWriter, r *http.Request)
}

type cardMessageHandlerImpl struct {
	cardMessageService cardmessage.CardMessageService
}

func NewCardMessageHandler(cardMessageService cardmessage.CardMessageService) CardMessageHandler {
	return &cardMessageHandlerImpl{cardMessageService: cardMessageService}
}

// ListForDay implements CardMessageHandler.
func (h *cardMessageHandlerImpl) ListForDay(w http.ResponseWriter, r *http.Request) {
	day, err := dayQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	messages, err := h.cardMessageService.ListForDay(r.Context(), day)
	if err != nil {
		slog.Error("List card messages error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, messages)
}

// Ingest implements CardMessageHandler. The sender is the token holder.
func (h *cardMessageHandlerImpl) Ingest(w http.ResponseWriter, r *http.Request) {
	current, err := middleware.CurrentUserFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req cardmessage.IngestRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Ingest card message decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.cardMessageService.Ingest(r.Context(), current.ID, req)
	if err != nil {
		slog.Error("Ingest card message error", "error", err, "sender_id", current.ID)
		response.HandleError(w, err)
		return
	}
	response.Created(w, i18n.T(r.Context(), "cardmessage.ingested"), created)
}
