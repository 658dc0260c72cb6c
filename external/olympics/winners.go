package olympics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oranjelive/medaltracker/internal/domain/medals"
)

// extractWinners pulls individual medal awards from the data endpoint's
// discipline breakdown. Entries are deduplicated on a composite key because
// feeds occasionally repeat a winner across payload refreshes.
func extractWinners(data any, rows []medals.CountryMedals) []medals.Winner {
	entries := asSlice(asMap(asMap(data)["medalStandings"])["medalsTable"])
	if len(entries) == 0 {
		return nil
	}

	countryNameByNOC := make(map[string]string, len(rows))
	for _, row := range rows {
		countryNameByNOC[strings.ToUpper(row.NOC)] = row.Name
	}

	seen := make(map[string]struct{})
	var winners []medals.Winner

	for _, raw := range entries {
		entry := asMap(raw)
		if entry == nil {
			continue
		}

		noc := strings.ToUpper(stringify(firstTruthy(entry["organisation"], entry["n_NOC"])))
		if noc == "" {
			continue
		}

		countryName := strings.TrimSpace(stringify(firstTruthy(entry["longDescription"], entry["description"])))
		if countryName == "" {
			countryName = countryNameByNOC[noc]
		}
		if countryName == "" {
			countryName = noc
		}

		for _, rawDiscipline := range asSlice(entry["disciplines"]) {
			discipline := asMap(rawDiscipline)
			if discipline == nil {
				continue
			}
			disciplineCode := stringify(discipline["code"])
			disciplineName := stringify(firstTruthy(discipline["name"], disciplineCode, "Onbekend"))

			for index, rawWinner := range asSlice(discipline["medalWinners"]) {
				winner := asMap(rawWinner)
				if winner == nil {
					continue
				}
				medalType, ok := normalizeMedalType(winner["medalType"])
				if !ok {
					continue
				}

				eventCode := stringify(winner["eventCode"])
				competitorCode := stringify(firstTruthy(winner["competitorCode"], winner["competitorDisplayName"]))
				id := fmt.Sprintf("%s:%s:%s:%s:%d", noc, eventCode, medalType, competitorCode, index)
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}

				winners = append(winners, medals.Winner{
					ID:                    id,
					NOC:                   noc,
					CountryName:           countryName,
					DisciplineCode:        disciplineCode,
					DisciplineName:        disciplineName,
					EventCode:             eventCode,
					EventDescription:      stringify(firstTruthy(winner["eventDescription"], "Onbekend evenement")),
					EventCategory:         strings.TrimSpace(stringify(winner["eventCategory"])),
					MedalType:             medalType,
					CompetitorDisplayName: strings.TrimSpace(stringify(firstTruthy(winner["competitorDisplayName"], countryName))),
					CompetitorType:        stringify(winner["competitorType"]),
					Date:                  stringify(winner["date"]),
				})
			}
		}
	}

	sort.SliceStable(winners, func(i, j int) bool {
		return winners[i].Date > winners[j].Date
	})
	return winners
}

// extractWinnersFromHTML retries winner extraction against hydration
// payloads embedded in the scraped page.
func extractWinnersFromHTML(html string, rows []medals.CountryMedals) []medals.Winner {
	for _, variant := range []string{html, normalizeSerializedHTML(html)} {
		for _, payload := range extractScriptJSONPayloads(variant) {
			table := findMedalsTable(payload)
			if len(table) == 0 {
				continue
			}
			wrapped := map[string]any{"medalStandings": map[string]any{"medalsTable": table}}
			if winners := extractWinners(wrapped, rows); len(winners) > 0 {
				return winners
			}
		}
	}
	return nil
}

// normalizeMedalType maps feed medal labels onto the three colors. Anything
// else, including placeholder types, is dropped.
func normalizeMedalType(raw any) (string, bool) {
	value := strings.ToUpper(stringify(raw))
	switch {
	case strings.Contains(value, "GOLD"):
		return medals.MedalGold, true
	case strings.Contains(value, "SILVER"):
		return medals.MedalSilver, true
	case strings.Contains(value, "BRONZE"):
		return medals.MedalBronze, true
	default:
		return "", false
	}
}
