package httpapi

import (
	"net/http"
)

type notificationDTO struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	DedupeKey string `json:"dedupeKey"`
}

func (h *Handler) SendTestNotification(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendTestNotification")
	defer span.End()

	msg, err := h.notificationService.SendTest(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "send test notification failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, notificationDTO{
		Title:     msg.Title,
		Body:      msg.Body,
		DedupeKey: msg.DedupeKey,
	})
}
