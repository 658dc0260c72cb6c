package schedule

// Status of an event relative to the wall clock.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

// Source records where an event entry came from. The static schedules are
// labeled fallback because live feeds take precedence when available.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Chance is a localized medal-chance label with a comparable score.
type Chance struct {
	Label string
	Score int
}

// Event is a single scheduled competition for a national team.
type Event struct {
	ID          string
	Sport       string
	SportIcon   string
	Name        string
	Date        string
	Time        string
	Venue       string
	Athletes    []string
	Status      Status
	Source      Source
	MedalChance *Chance
}

// CountrySchedule bundles the static events for one committee.
type CountrySchedule struct {
	NOC    string
	Name   string
	Events []Event
}
