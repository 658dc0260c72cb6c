package httpapi

import (
	"net/http"
)

func (h *Handler) RunRefreshJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshJob")
	defer span.End()

	if err := h.refreshService.TriggerAll(ctx); err != nil {
		h.logger.ErrorContext(ctx, "refresh job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, map[string]string{"status": "triggered"})
}
