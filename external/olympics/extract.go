package olympics

import (
	"regexp"
	"strings"

	sonic "github.com/bytedance/sonic"
)

var (
	scriptJSONPattern = regexp.MustCompile(`(?s)<script[^>]*type="application/json"[^>]*>(.*?)</script>`)
	scriptAnyPattern  = regexp.MustCompile(`(?s)<script[^>]*>(.*?)</script>`)
	scriptRelevance   = regexp.MustCompile(`(?i)(medal|n_NOC|medalsTable|Netherlands)`)

	medalRowPattern = regexp.MustCompile(
		`(?s)"n_NOC"\s*:\s*"([^"]+)".*?` +
			`"n_NOCLong"\s*:\s*"([^"]+)".*?` +
			`"n_Gold"\s*:\s*"?(\d+)"?.*?` +
			`"n_Silver"\s*:\s*"?(\d+)"?.*?` +
			`"n_Bronze"\s*:\s*"?(\d+)"?.*?` +
			`"n_Total"\s*:\s*"?(\d+)"?.*?` +
			`"n_RankGold"\s*:\s*"?(\d+)"?`,
	)
)

// extractScriptJSONPayloads pulls decodable payloads out of script blocks.
// Explicit application/json blocks must parse strictly; generic blocks are
// filtered on medal-related markers first and parsed loosely.
func extractScriptJSONPayloads(html string) []any {
	var payloads []any

	for _, match := range scriptJSONPattern.FindAllStringSubmatch(html, -1) {
		raw := strings.TrimSpace(match[1])
		if raw == "" {
			continue
		}
		var payload any
		if err := sonic.Unmarshal([]byte(raw), &payload); err != nil {
			continue
		}
		payloads = append(payloads, payload)
	}

	for _, match := range scriptAnyPattern.FindAllStringSubmatch(html, -1) {
		raw := strings.TrimSpace(match[1])
		if raw == "" {
			continue
		}
		if !scriptRelevance.MatchString(raw) {
			continue
		}
		if parsed := parseJSONLoose(raw); parsed != nil {
			payloads = append(payloads, parsed)
		}
	}

	return payloads
}

// findMedalsTable walks a decoded payload depth-first for the first
// non-empty medalsTable array.
func findMedalsTable(value any) []any {
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if found := findMedalsTable(item); len(found) > 0 {
				return found
			}
		}
	case map[string]any:
		if direct := asSlice(v["medalsTable"]); len(direct) > 0 {
			return direct
		}
		for _, child := range v {
			if found := findMedalsTable(child); len(found) > 0 {
				return found
			}
		}
	}
	return nil
}

// extractMedalRowsByRegex scrapes n_-prefixed field groups straight out of
// page text. It is the last structured resort before plain-text scraping
// and survives payloads that are too mangled to decode.
func extractMedalRowsByRegex(html string) []any {
	var rows []any
	for _, match := range medalRowPattern.FindAllStringSubmatch(html, -1) {
		rows = append(rows, map[string]any{
			"n_NOC":      match[1],
			"n_NOCLong":  match[2],
			"n_Gold":     match[3],
			"n_Silver":   match[4],
			"n_Bronze":   match[5],
			"n_Total":    match[6],
			"n_RankGold": match[7],
		})
	}
	return rows
}
