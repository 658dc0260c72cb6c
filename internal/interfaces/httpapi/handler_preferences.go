package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/oranjelive/medaltracker/internal/domain/preference"
	"github.com/oranjelive/medaltracker/internal/usecase"
)

type favoriteCountryDTO struct {
	UserID    string `json:"userId"`
	NOC       string `json:"noc"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type setFavoriteCountryRequest struct {
	NOC string `json:"noc" validate:"required,len=3"`
}

func (h *Handler) GetFavoriteCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFavoriteCountry")
	defer span.End()

	userID := resolveUserID(ctx, r)
	favorite, err := h.preferenceService.GetFavoriteCountry(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get favorite country failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, favoriteToDTO(favorite))
}

func (h *Handler) SetFavoriteCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetFavoriteCountry")
	defer span.End()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}

	req, err := decodeFavoriteCountryPayload(body)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	userID := resolveUserID(ctx, r)
	favorite, err := h.preferenceService.SetFavoriteCountry(ctx, userID, req.NOC)
	if err != nil {
		h.logger.WarnContext(ctx, "set favorite country failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, favoriteToDTO(favorite))
}

// decodeFavoriteCountryPayload accepts the current object form and the
// legacy payload that was just the committee code as a bare JSON string.
func decodeFavoriteCountryPayload(body []byte) (setFavoriteCountryRequest, error) {
	var req setFavoriteCountryRequest
	decoder := jsoniter.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	objectErr := decoder.Decode(&req)
	if objectErr == nil {
		return req, nil
	}

	var noc string
	if err := jsoniter.Unmarshal(body, &noc); err == nil {
		return setFavoriteCountryRequest{NOC: noc}, nil
	}

	return setFavoriteCountryRequest{}, objectErr
}

func favoriteToDTO(favorite preference.FavoriteCountry) favoriteCountryDTO {
	return favoriteCountryDTO{
		UserID:    favorite.UserID,
		NOC:       favorite.NOC,
		UpdatedAt: formatTimestamp(favorite.UpdatedAt),
	}
}
