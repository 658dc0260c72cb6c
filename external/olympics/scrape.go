package olympics

import (
	"regexp"
	"strings"

	"github.com/oranjelive/medaltracker/internal/domain/medals"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	// One medal row in flattened text: rank, country, gold, silver,
	// bronze, total.
	textRowPattern = regexp.MustCompile(
		`(?:^|\s)(\d{1,2})\s+([A-Za-z][A-Za-z .'-]{2,40}?)\s+(\d{1,2})\s+(\d{1,2})\s+(\d{1,2})\s+(\d{1,3})\b`,
	)

	tableRowPattern = regexp.MustCompile(`(?s)<tr.*?</tr>`)
	supPattern      = regexp.MustCompile(`(?s)<sup.*?</sup>`)
	wikiRowPattern  = regexp.MustCompile(
		`^(\d{1,2})\s+([A-Za-z][A-Za-z .,'-]{2,40}?)\s+(\d{1,2})\s+(\d{1,2})\s+(\d{1,2})\s+(\d{1,3})$`,
	)
)

// parseMedalsHTML recovers tally rows from the scraped medals page. Both
// the raw and unescaped variants are tried against three strategies of
// decreasing structure: embedded hydration JSON, regex field groups, then
// plain-text rows.
func parseMedalsHTML(html string) []medals.CountryMedals {
	for _, variant := range []string{html, normalizeSerializedHTML(html)} {
		for _, payload := range extractScriptJSONPayloads(variant) {
			table := findMedalsTable(payload)
			if len(table) == 0 {
				continue
			}
			wrapped := map[string]any{"medalStandings": map[string]any{"medalsTable": table}}
			if rows := parseTallyRows(wrapped); len(rows) > 0 {
				return rows
			}
		}

		if regexRows := extractMedalRowsByRegex(variant); len(regexRows) > 0 {
			if rows := parseTallyRows(regexRows); len(rows) > 0 {
				return rows
			}
		}

		if rows := parseMedalsFromText(variant); len(rows) > 0 {
			return rows
		}
	}
	return nil
}

// parseMedalsFromText scans flattened page text for medal rows. Rows only
// count when the color sum matches the printed total and the rank is
// positive, which filters out dates and scores that happen to line up.
func parseMedalsFromText(raw string) []medals.CountryMedals {
	text := whitespacePattern.ReplaceAllString(htmlTagPattern.ReplaceAllString(raw, " "), " ")

	var rows []medals.CountryMedals
	for _, m := range textRowPattern.FindAllStringSubmatch(text, -1) {
		rank := parseMedalNumber(m[1])
		name := strings.TrimSpace(m[2])
		gold := parseMedalNumber(m[3])
		silver := parseMedalNumber(m[4])
		bronze := parseMedalNumber(m[5])
		total := parseMedalNumber(m[6])

		if gold+silver+bronze != total {
			continue
		}
		if rank <= 0 {
			continue
		}

		noc := medals.ResolveNOC(name)
		rows = append(rows, medals.CountryMedals{
			NOC:    noc,
			Name:   name,
			Flag:   medals.FlagFor(noc),
			Rank:   rank,
			Medals: medals.MedalCount{Gold: gold, Silver: silver, Bronze: bronze, Total: total},
		})
	}

	return uniqueByNOC(rows)
}

// parseWikipediaMedalsHTML reads the community-maintained medal table. Each
// table row is flattened to text and must match the strict row shape, with
// the same checksum gate as the page scraper.
func parseWikipediaMedalsHTML(html string) []medals.CountryMedals {
	var rows []medals.CountryMedals

	for _, tr := range tableRowPattern.FindAllString(html, -1) {
		flattened := supPattern.ReplaceAllString(tr, "")
		flattened = htmlTagPattern.ReplaceAllString(flattened, " ")
		flattened = strings.ReplaceAll(flattened, "&nbsp;", " ")
		flattened = strings.TrimSpace(whitespacePattern.ReplaceAllString(flattened, " "))

		// Typical row shape after stripping: "1 Norway 6 3 2 11".
		m := wikiRowPattern.FindStringSubmatch(flattened)
		if m == nil {
			continue
		}

		rank := parseMedalNumber(m[1])
		name := strings.TrimSpace(m[2])
		gold := parseMedalNumber(m[3])
		silver := parseMedalNumber(m[4])
		bronze := parseMedalNumber(m[5])
		total := parseMedalNumber(m[6])
		if rank <= 0 {
			continue
		}
		if gold+silver+bronze != total {
			continue
		}

		noc := medals.ResolveNOC(name)
		rows = append(rows, medals.CountryMedals{
			NOC:    noc,
			Name:   name,
			Flag:   medals.FlagFor(noc),
			Rank:   rank,
			Medals: medals.MedalCount{Gold: gold, Silver: silver, Bronze: bronze, Total: total},
		})
	}

	return uniqueByNOC(rows)
}

// uniqueByNOC keeps the first row per committee, preserving order.
func uniqueByNOC(rows []medals.CountryMedals) []medals.CountryMedals {
	if len(rows) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(rows))
	unique := rows[:0:0]
	for _, row := range rows {
		if _, dup := seen[row.NOC]; dup {
			continue
		}
		seen[row.NOC] = struct{}{}
		unique = append(unique, row)
	}
	return unique
}
