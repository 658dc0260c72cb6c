package httpapi

import (
	"net/http"

	"github.com/oranjelive/medaltracker/internal/domain/schedule"
	"github.com/oranjelive/medaltracker/internal/usecase"
)

type chanceDTO struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

type eventDTO struct {
	ID          string     `json:"id"`
	Sport       string     `json:"sport"`
	SportIcon   string     `json:"sportIcon"`
	Name        string     `json:"event"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Venue       string     `json:"venue"`
	Athletes    []string   `json:"athletes"`
	Status      string     `json:"status"`
	Source      string     `json:"source"`
	MedalChance *chanceDTO `json:"medalChance,omitempty"`
}

type scheduleDTO struct {
	NOC             string     `json:"noc"`
	Country         string     `json:"country"`
	Events          []eventDTO `json:"events"`
	LastUpdated     string     `json:"lastUpdated"`
	Error           string     `json:"error,omitempty"`
	ServedFromCache bool       `json:"servedFromCache"`
	CacheSavedAt    string     `json:"cacheSavedAt,omitempty"`
	CacheAgeSeconds int64      `json:"cacheAgeSeconds,omitempty"`
}

type countryRefDTO struct {
	NOC  string `json:"noc"`
	Name string `json:"name"`
}

type athleteChanceDTO struct {
	DisciplineID string `json:"disciplineId"`
	Chance       string `json:"chance"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	noc := r.URL.Query().Get("noc")
	result, err := h.scheduleService.GetSchedule(ctx, noc)
	if err != nil {
		h.logger.WarnContext(ctx, "get schedule failed", "noc", noc, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Cache-Control", "public, s-maxage=30, stale-while-revalidate=60")
	writeSuccess(ctx, w, http.StatusOK, scheduleResultToDTO(result))
}

func (h *Handler) ListScheduleCountries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScheduleCountries")
	defer span.End()

	countries := h.scheduleService.ListCountries()
	dtos := make([]countryRefDTO, 0, len(countries))
	for _, country := range countries {
		dtos = append(dtos, countryRefDTO{NOC: country.NOC, Name: country.Name})
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func (h *Handler) GetMedalChances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMedalChances")
	defer span.End()

	noc := r.URL.Query().Get("noc")
	items, err := h.scheduleService.ChancesForCountry(ctx, noc)
	if err != nil {
		h.logger.WarnContext(ctx, "get medal chances failed", "noc", noc, "error", err)
		writeError(ctx, w, err)
		return
	}

	dtos := make([]athleteChanceDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, athleteChanceDTO{
			DisciplineID: item.DisciplineID,
			Chance:       item.Chance,
			FirstName:    item.FirstName,
			LastName:     item.LastName,
		})
	}

	w.Header().Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=120")
	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func scheduleResultToDTO(result usecase.ScheduleResult) scheduleDTO {
	events := make([]eventDTO, 0, len(result.Events))
	for _, event := range result.Events {
		events = append(events, eventToDTO(event))
	}

	return scheduleDTO{
		NOC:             result.NOC,
		Country:         result.CountryName,
		Events:          events,
		LastUpdated:     formatTimestamp(result.LastUpdated),
		Error:           result.ErrorMessage,
		ServedFromCache: result.ServedFromCache,
		CacheSavedAt:    formatTimestamp(result.CacheSavedAt),
		CacheAgeSeconds: result.CacheAgeSeconds,
	}
}

func eventToDTO(event schedule.Event) eventDTO {
	dto := eventDTO{
		ID:        event.ID,
		Sport:     event.Sport,
		SportIcon: event.SportIcon,
		Name:      event.Name,
		Date:      event.Date,
		Time:      event.Time,
		Venue:     event.Venue,
		Athletes:  event.Athletes,
		Status:    string(event.Status),
		Source:    string(event.Source),
	}
	if event.MedalChance != nil {
		dto.MedalChance = &chanceDTO{
			Label: event.MedalChance.Label,
			Score: event.MedalChance.Score,
		}
	}
	return dto
}
