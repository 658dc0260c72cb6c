package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/medals", handler.GetMedals)
	mux.HandleFunc("GET /api/schedule", handler.GetSchedule)
	mux.HandleFunc("GET /api/schedule/countries", handler.ListScheduleCountries)
	mux.HandleFunc("GET /api/medal-chances", handler.GetMedalChances)
	mux.HandleFunc("GET /api/preferences/favorite-country", handler.GetFavoriteCountry)
	mux.HandleFunc("PUT /api/preferences/favorite-country", handler.SetFavoriteCountry)
	mux.HandleFunc("POST /api/notifications/test", handler.SendTestNotification)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /internal/jobs/refresh", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRefreshJob)))
}
