package schedule

import "strings"

// UnknownChance is attached when the chances feed has no entry for an event.
var UnknownChance = Chance{Label: "Onbekend", Score: 0}

// chanceScale maps the closed label vocabulary of the chances feed to
// localized display labels with a comparable score.
var chanceScale = map[string]Chance{
	"big favourite": {Label: "Hoge kans op goud", Score: 5},
	"favourite":     {Label: "Redelijke kans op zilver", Score: 4},
	"challenger":    {Label: "Mogelijke kans op brons", Score: 3},
	"outsider":      {Label: "Kleine kans", Score: 2},
	"wildcard":      {Label: "Zeer kleine kans", Score: 1},
}

// ChanceForLabel translates a raw feed label. Labels outside the known
// vocabulary report ok=false and must be skipped.
func ChanceForLabel(raw string) (Chance, bool) {
	chance, ok := chanceScale[strings.ToLower(strings.TrimSpace(raw))]
	return chance, ok
}

// eventDiscipline links curated event ids to the discipline ids used by the
// chances feed. Events without a mapping use their own id, which simply
// never matches and yields the unknown chance.
var eventDiscipline = map[string]string{
	"ssk-w3000":      "speedskating-3000m-women",
	"ssk-m5000":      "speedskating-5000m-men",
	"ssk-w1000":      "speedskating-1000m-women",
	"ssk-m1500":      "speedskating-1500m-men",
	"ssk-w1500":      "speedskating-1500m-women",
	"ssk-m1000":      "speedskating-1000m-men",
	"ssk-w500":       "speedskating-500m-women",
	"ssk-m500":       "speedskating-500m-men",
	"ssk-wtp":        "speedskating-team-pursuit-women",
	"ssk-mtp":        "speedskating-team-pursuit-men",
	"ssk-w5000":      "speedskating-5000m-women",
	"ssk-m10000":     "speedskating-10000m-men",
	"ssk-wms":        "speedskating-mass-start-women",
	"ssk-mms":        "speedskating-mass-start-men",
	"stk-mixed":      "short-track-mixed-team-relay",
	"stk-w500":       "short-track-500m-women",
	"stk-m1000":      "short-track-1000m-men",
	"stk-w1000":      "short-track-1000m-women",
	"stk-m1500":      "short-track-1500m-men",
	"stk-w1500":      "short-track-1500m-women",
	"stk-m500":       "short-track-500m-men",
	"stk-w3000relay": "short-track-relay-women",
	"stk-m5000relay": "short-track-relay-men",
	"bob-2man":       "bobsled-2-men",
	"bob-4man":       "bobsled-4-men",
	"skl-women":      "skeleton-women",
	"fsk-pairs":      "figure-skating-pair",
}

// DisciplineIDFor maps a curated event id to its chances-feed discipline id.
func DisciplineIDFor(eventID string) string {
	if id, ok := eventDiscipline[eventID]; ok {
		return id
	}
	return eventID
}
