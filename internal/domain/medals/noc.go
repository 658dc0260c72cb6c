package medals

import "strings"

// TrackedNOC is the national team the tracker centers on.
const TrackedNOC = "NED"

// FlagFallback is used for committees without a flag entry.
const FlagFallback = "🏳️"

// CountryNameToNOC maps lowercase country names, as they appear in scraped
// medal tables, to IOC codes.
var CountryNameToNOC = map[string]string{
	"netherlands":   "NED",
	"norway":        "NOR",
	"italy":         "ITA",
	"united states": "USA",
	"usa":           "USA",
	"germany":       "GER",
	"sweden":        "SWE",
	"switzerland":   "SUI",
	"austria":       "AUT",
	"france":        "FRA",
	"canada":        "CAN",
	"japan":         "JPN",
	"china":         "CHN",
	"south korea":   "KOR",
	"czechia":       "CZE",
	"slovenia":      "SLO",
	"poland":        "POL",
	"belgium":       "BEL",
	"bulgaria":      "BUL",
	"latvia":        "LAT",
}

// CountryNOCToName is the reverse display mapping.
var CountryNOCToName = map[string]string{
	"NED": "Netherlands",
	"NOR": "Norway",
	"ITA": "Italy",
	"USA": "United States",
	"GER": "Germany",
	"SWE": "Sweden",
	"SUI": "Switzerland",
	"AUT": "Austria",
	"FRA": "France",
	"CAN": "Canada",
	"JPN": "Japan",
	"CHN": "China",
	"KOR": "Republic of Korea",
	"CZE": "Czechia",
	"SLO": "Slovenia",
	"POL": "Poland",
	"BEL": "Belgium",
	"BUL": "Bulgaria",
	"LAT": "Latvia",
}

// Flags maps IOC codes to flag emoji.
var Flags = map[string]string{
	"NED": "🇳🇱",
	"NOR": "🇳🇴",
	"GER": "🇩🇪",
	"USA": "🇺🇸",
	"CAN": "🇨🇦",
	"SWE": "🇸🇪",
	"SUI": "🇨🇭",
	"AUT": "🇦🇹",
	"JPN": "🇯🇵",
	"KOR": "🇰🇷",
	"CHN": "🇨🇳",
	"ITA": "🇮🇹",
	"FRA": "🇫🇷",
	"GBR": "🇬🇧",
	"AUS": "🇦🇺",
	"FIN": "🇫🇮",
	"SLO": "🇸🇮",
	"CZE": "🇨🇿",
	"POL": "🇵🇱",
	"RUS": "🇷🇺",
	"BEL": "🇧🇪",
	"ESP": "🇪🇸",
	"NZL": "🇳🇿",
	"ROC": "🏳️",
	"AIN": "🏳️",
}

// FlagFor returns the flag emoji for a committee code.
func FlagFor(noc string) string {
	if flag, ok := Flags[strings.ToUpper(strings.TrimSpace(noc))]; ok {
		return flag
	}
	return FlagFallback
}

// ResolveNOC maps a scraped country name to an IOC code. Unknown names fall
// back to the first three letters uppercased, which is close enough for
// ad-hoc table rows.
func ResolveNOC(countryName string) string {
	name := strings.ToLower(strings.TrimSpace(countryName))
	if noc, ok := CountryNameToNOC[name]; ok {
		return noc
	}
	cleaned := strings.ToUpper(strings.TrimSpace(countryName))
	if len(cleaned) > 3 {
		cleaned = cleaned[:3]
	}
	return cleaned
}

// NormalizeNOC uppercases a committee code, defaulting to the tracked one.
func NormalizeNOC(noc string) string {
	normalized := strings.ToUpper(strings.TrimSpace(noc))
	if normalized == "" {
		return TrackedNOC
	}
	return normalized
}

// EmptyCountry builds a zero-valued medal row for a committee.
func EmptyCountry(noc string) CountryMedals {
	normalized := NormalizeNOC(noc)
	name := CountryNOCToName[normalized]
	if name == "" {
		name = normalized
	}
	return CountryMedals{
		NOC:  normalized,
		Name: name,
		Flag: FlagFor(normalized),
		Rank: 0,
	}
}

// FindCountry locates a committee in a parsed tally. The Netherlands also
// matches the ISO code NLD used by some feeds. When the code misses, the
// display name is tried; when that misses too, a zero-valued row is returned
// so callers never deal with absence.
func FindCountry(rows []CountryMedals, noc string) CountryMedals {
	normalized := NormalizeNOC(noc)

	for _, row := range rows {
		code := strings.ToUpper(row.NOC)
		if code == normalized || (normalized == TrackedNOC && code == "NLD") {
			return row
		}
	}

	if fallbackName := CountryNOCToName[normalized]; fallbackName != "" {
		for _, row := range rows {
			if !strings.EqualFold(row.Name, fallbackName) {
				continue
			}
			// Row matched by display name, so trust the requested code.
			row.NOC = normalized
			if flag, ok := Flags[normalized]; ok {
				row.Flag = flag
			}
			return row
		}
	}

	return EmptyCountry(normalized)
}
