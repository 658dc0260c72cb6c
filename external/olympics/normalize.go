package olympics

import (
	"strings"

	"github.com/oranjelive/medaltracker/internal/domain/medals"
)

// parseTallyRows normalizes a decoded medals payload into tally rows. Three
// shapes are recognized, in order: the data endpoint's medalStandings
// envelope, the page hydration wrapper around the same envelope, and a bare
// array of rows.
func parseTallyRows(data any) []medals.CountryMedals {
	entries := medalsTableOf(data)
	if entries == nil {
		entries = asSlice(data)
	}
	if len(entries) == 0 {
		return nil
	}

	rows := make([]medals.CountryMedals, 0, len(entries))
	for index, raw := range entries {
		entry := asMap(raw)
		if entry == nil {
			continue
		}

		noc := stringify(firstTruthy(entry["n_NOC"], entry["organisation"], entry["noc"], entry["code"]))
		rows = append(rows, medals.CountryMedals{
			NOC:    noc,
			Name:   stringify(firstTruthy(entry["n_NOCLong"], entry["description"], entry["longDescription"], entry["country"])),
			Flag:   medals.FlagFor(noc),
			Rank:   parseMedalNumber(firstTruthy(entry["n_RankGold"], entry["rank"], entry["sortRank"], index+1)),
			Medals: extractMedalTotals(entry),
		})
	}
	return rows
}

func medalsTableOf(data any) []any {
	root := asMap(data)
	if root == nil {
		return nil
	}
	if table := asSlice(asMap(root["medalStandings"])["medalsTable"]); table != nil {
		return table
	}
	hydrated := asMap(asMap(asMap(asMap(root["props"])["pageProps"])["initialMedals"])["medalStandings"])
	return asSlice(hydrated["medalsTable"])
}

// extractMedalTotals reads per-color counts with the field fallbacks the
// various feed generations use. The "total" entry of medalsNumber wins when
// present; a zero total falls back to the discipline sum, then to the color
// sum so the structural checksum still holds.
func extractMedalTotals(entry map[string]any) medals.MedalCount {
	var totals map[string]any
	for _, item := range asSlice(entry["medalsNumber"]) {
		m := asMap(item)
		if m == nil {
			continue
		}
		if strings.ToLower(stringify(m["type"])) == "total" {
			totals = m
			break
		}
	}

	gold := parseMedalNumber(coalesce(totals["gold"], entry["n_Gold"], entry["gold"], 0))
	silver := parseMedalNumber(coalesce(totals["silver"], entry["n_Silver"], entry["silver"], 0))
	bronze := parseMedalNumber(coalesce(totals["bronze"], entry["n_Bronze"], entry["bronze"], 0))

	total := parseMedalNumber(coalesce(totals["total"], entry["n_Total"], entry["total"], gold+silver+bronze))
	if total == 0 {
		for _, d := range asSlice(entry["disciplines"]) {
			total += parseMedalNumber(asMap(d)["total"])
		}
	}
	if total == 0 {
		total = gold + silver + bronze
	}

	return medals.MedalCount{Gold: gold, Silver: silver, Bronze: bronze, Total: total}
}
