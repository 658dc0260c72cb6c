package medals

import "time"

// Medal colors as they appear in winner records.
const (
	MedalGold   = "gold"
	MedalSilver = "silver"
	MedalBronze = "bronze"
)

// MedalCount holds the per-color totals for one country.
type MedalCount struct {
	Gold   int
	Silver int
	Bronze int
	Total  int
}

// CountryMedals is one row of the medal table.
type CountryMedals struct {
	NOC    string
	Name   string
	Flag   string
	Rank   int
	Medals MedalCount
}

// Winner is a single awarded medal for a specific event.
type Winner struct {
	ID                    string
	NOC                   string
	CountryName           string
	DisciplineCode        string
	DisciplineName        string
	EventCode             string
	EventDescription      string
	EventCategory         string
	MedalType             string
	CompetitorDisplayName string
	CompetitorType        string
	Date                  string
}

// Tally is the result of one acquisition run. It is always well formed:
// when every source fails, Medals is empty, Tracked is the zero-valued
// tracked country and ErrorMessage carries the user-facing reason.
type Tally struct {
	Medals       []CountryMedals
	Tracked      CountryMedals
	Winners      []Winner
	LastUpdated  time.Time
	ErrorMessage string
}
