package httpapi

import (
	"net/http"
	"time"

	"github.com/oranjelive/medaltracker/internal/domain/medals"
	"github.com/oranjelive/medaltracker/internal/usecase"
)

type medalCountDTO struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
	Total  int `json:"total"`
}

type countryMedalsDTO struct {
	NOC    string        `json:"noc"`
	Name   string        `json:"name"`
	Flag   string        `json:"flag"`
	Rank   int           `json:"rank"`
	Medals medalCountDTO `json:"medals"`
}

type winnerDTO struct {
	ID                    string `json:"id"`
	NOC                   string `json:"noc"`
	CountryName           string `json:"countryName"`
	DisciplineCode        string `json:"disciplineCode"`
	DisciplineName        string `json:"disciplineName"`
	EventCode             string `json:"eventCode"`
	EventDescription      string `json:"eventDescription"`
	EventCategory         string `json:"eventCategory"`
	MedalType             string `json:"medalType"`
	CompetitorDisplayName string `json:"competitorDisplayName"`
	CompetitorType        string `json:"competitorType"`
	Date                  string `json:"date"`
}

type medalsDTO struct {
	Medals          []countryMedalsDTO `json:"medals"`
	NedMedals       countryMedalsDTO   `json:"nedMedals"`
	Winners         []winnerDTO        `json:"winners"`
	LastUpdated     string             `json:"lastUpdated"`
	Error           string             `json:"error,omitempty"`
	ServedFromCache bool               `json:"servedFromCache"`
	CacheSavedAt    string             `json:"cacheSavedAt,omitempty"`
	CacheAgeSeconds int64              `json:"cacheAgeSeconds,omitempty"`
}

func (h *Handler) GetMedals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMedals")
	defer span.End()

	result, err := h.medalService.GetMedals(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get medals failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=120")
	writeSuccess(ctx, w, http.StatusOK, medalsResultToDTO(result))
}

func medalsResultToDTO(result usecase.MedalsResult) medalsDTO {
	tally := result.Tally

	rows := make([]countryMedalsDTO, 0, len(tally.Medals))
	for _, row := range tally.Medals {
		rows = append(rows, countryMedalsToDTO(row))
	}

	winners := make([]winnerDTO, 0, len(tally.Winners))
	for _, winner := range tally.Winners {
		winners = append(winners, winnerDTO{
			ID:                    winner.ID,
			NOC:                   winner.NOC,
			CountryName:           winner.CountryName,
			DisciplineCode:        winner.DisciplineCode,
			DisciplineName:        winner.DisciplineName,
			EventCode:             winner.EventCode,
			EventDescription:      winner.EventDescription,
			EventCategory:         winner.EventCategory,
			MedalType:             winner.MedalType,
			CompetitorDisplayName: winner.CompetitorDisplayName,
			CompetitorType:        winner.CompetitorType,
			Date:                  winner.Date,
		})
	}

	return medalsDTO{
		Medals:          rows,
		NedMedals:       countryMedalsToDTO(tally.Tracked),
		Winners:         winners,
		LastUpdated:     formatTimestamp(tally.LastUpdated),
		Error:           tally.ErrorMessage,
		ServedFromCache: result.ServedFromCache,
		CacheSavedAt:    formatTimestamp(result.CacheSavedAt),
		CacheAgeSeconds: result.CacheAgeSeconds,
	}
}

func countryMedalsToDTO(row medals.CountryMedals) countryMedalsDTO {
	return countryMedalsDTO{
		NOC:    row.NOC,
		Name:   row.Name,
		Flag:   row.Flag,
		Rank:   row.Rank,
		Medals: medalCountToDTO(row.Medals),
	}
}

func medalCountToDTO(count medals.MedalCount) medalCountDTO {
	return medalCountDTO{
		Gold:   count.Gold,
		Silver: count.Silver,
		Bronze: count.Bronze,
		Total:  count.Total,
	}
}

func formatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}
