package schedule

import "strings"

// dutchEvents is the curated fallback schedule for the tracked team. It is
// served whenever live event feeds are unavailable.
var dutchEvents = []Event{
	// Speed skating
	{
		ID:        "ssk-w3000",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Vrouwen 3000m",
		Date:      "2026-02-07",
		Time:      "16:00",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Joy Beune", "Marijke Groenewoud", "Merel Conijn"},
	},
	{
		ID:        "ssk-m5000",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Mannen 5000m",
		Date:      "2026-02-08",
		Time:      "16:00",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Patrick Roest", "Stijn van de Bunt", "Beau Snellink"},
	},
	{
		ID:        "ssk-w1000",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Vrouwen 1000m",
		Date:      "2026-02-09",
		Time:      "17:30",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Jutta Leerdam", "Femke Kok", "Suzanne Schulting"},
	},
	{
		ID:        "ssk-m1500",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Mannen 1500m",
		Date:      "2026-02-11",
		Time:      "16:00",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Joep Wennemars", "Kjeld Nuis", "Jenning de Boo"},
	},
	{
		ID:        "ssk-w1500",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Vrouwen 1500m",
		Date:      "2026-02-13",
		Time:      "16:30",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Antoinette Rijpma-de Jong", "Jutta Leerdam", "Marijke Groenewoud"},
	},
	{
		ID:        "ssk-m1000",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Mannen 1000m",
		Date:      "2026-02-14",
		Time:      "16:00",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Jenning de Boo", "Kjeld Nuis", "Joep Wennemars"},
	},
	{
		ID:        "ssk-w500",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Vrouwen 500m",
		Date:      "2026-02-15",
		Time:      "17:03",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Femke Kok", "Jutta Leerdam", "Anna Boersma"},
	},
	{
		ID:        "ssk-m500",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Mannen 500m",
		Date:      "2026-02-16",
		Time:      "16:30",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Jenning de Boo", "Hein Otterspeer", "Merijn Scheperkamp"},
	},
	{
		ID:        "ssk-wtp",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Vrouwen Team Pursuit",
		Date:      "2026-02-17",
		Time:      "16:00",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Joy Beune", "Marijke Groenewoud", "Antoinette Rijpma-de Jong"},
	},
	{
		ID:        "ssk-mtp",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Mannen Team Pursuit",
		Date:      "2026-02-17",
		Time:      "17:30",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Patrick Roest", "Joep Wennemars", "Stijn van de Bunt"},
	},
	{
		ID:        "ssk-w5000",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Vrouwen 5000m",
		Date:      "2026-02-19",
		Time:      "16:00",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Joy Beune", "Merel Conijn"},
	},
	{
		ID:        "ssk-m10000",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Mannen 10.000m",
		Date:      "2026-02-19",
		Time:      "18:00",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Stijn van de Bunt", "Beau Snellink"},
	},
	{
		ID:        "ssk-wms",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Vrouwen Mass Start",
		Date:      "2026-02-21",
		Time:      "16:00",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Marijke Groenewoud"},
	},
	{
		ID:        "ssk-mms",
		Sport:     "Speed Skating",
		SportIcon: "⛸️",
		Name:      "Mannen Mass Start",
		Date:      "2026-02-21",
		Time:      "17:00",
		Venue:     "Milano Speed Skating Stadium",
		Athletes:  []string{"Jorrit Bergsma"},
	},

	// Short track
	{
		ID:        "stk-mixed",
		Sport:     "Short Track",
		SportIcon: "⛸️",
		Name:      "Mixed Team Relay",
		Date:      "2026-02-08",
		Time:      "18:00",
		Venue:     "Milano Ice Skating Arena",
		Athletes:  []string{"Suzanne Schulting", "Xandra Velzeboer", "Sjinkie Knegt", "Jens van 't Wout"},
	},
	{
		ID:        "stk-w500",
		Sport:     "Short Track",
		SportIcon: "⛸️",
		Name:      "Vrouwen 500m",
		Date:      "2026-02-12",
		Time:      "18:30",
		Venue:     "Milano Ice Skating Arena",
		Athletes:  []string{"Xandra Velzeboer", "Selma Poutsma"},
	},
	{
		ID:        "stk-m1000",
		Sport:     "Short Track",
		SportIcon: "⛸️",
		Name:      "Mannen 1000m",
		Date:      "2026-02-13",
		Time:      "18:30",
		Venue:     "Milano Ice Skating Arena",
		Athletes:  []string{"Sjinkie Knegt", "Jens van 't Wout", "Ithak de Laat"},
	},
	{
		ID:        "stk-w1000",
		Sport:     "Short Track",
		SportIcon: "⛸️",
		Name:      "Vrouwen 1000m",
		Date:      "2026-02-15",
		Time:      "18:30",
		Venue:     "Milano Ice Skating Arena",
		Athletes:  []string{"Suzanne Schulting", "Xandra Velzeboer"},
	},
	{
		ID:        "stk-m1500",
		Sport:     "Short Track",
		SportIcon: "⛸️",
		Name:      "Mannen 1500m",
		Date:      "2026-02-16",
		Time:      "18:30",
		Venue:     "Milano Ice Skating Arena",
		Athletes:  []string{"Sjinkie Knegt", "Jens van 't Wout"},
	},
	{
		ID:        "stk-w1500",
		Sport:     "Short Track",
		SportIcon: "⛸️",
		Name:      "Vrouwen 1500m",
		Date:      "2026-02-19",
		Time:      "18:30",
		Venue:     "Milano Ice Skating Arena",
		Athletes:  []string{"Suzanne Schulting", "Selma Poutsma"},
	},
	{
		ID:        "stk-m500",
		Sport:     "Short Track",
		SportIcon: "⛸️",
		Name:      "Mannen 500m",
		Date:      "2026-02-20",
		Time:      "18:30",
		Venue:     "Milano Ice Skating Arena",
		Athletes:  []string{"Sjinkie Knegt", "Jens van 't Wout"},
	},
	{
		ID:        "stk-w3000relay",
		Sport:     "Short Track",
		SportIcon: "⛸️",
		Name:      "Vrouwen 3000m Relay",
		Date:      "2026-02-21",
		Time:      "18:30",
		Venue:     "Milano Ice Skating Arena",
		Athletes:  []string{"Suzanne Schulting", "Xandra Velzeboer", "Selma Poutsma"},
	},
	{
		ID:        "stk-m5000relay",
		Sport:     "Short Track",
		SportIcon: "⛸️",
		Name:      "Mannen 5000m Relay",
		Date:      "2026-02-22",
		Time:      "18:30",
		Venue:     "Milano Ice Skating Arena",
		Athletes:  []string{"Sjinkie Knegt", "Jens van 't Wout", "Ithak de Laat"},
	},

	// Bobsleigh
	{
		ID:        "bob-2man",
		Sport:     "Bobsleigh",
		SportIcon: "🛷",
		Name:      "Tweemansbob",
		Date:      "2026-02-15",
		Time:      "20:00",
		Venue:     "Cortina Sliding Centre",
		Athletes:  []string{"Ivo de Bruin"},
	},
	{
		ID:        "bob-4man",
		Sport:     "Bobsleigh",
		SportIcon: "🛷",
		Name:      "Viererbob",
		Date:      "2026-02-22",
		Time:      "10:00",
		Venue:     "Cortina Sliding Centre",
		Athletes:  []string{"Ivo de Bruin"},
	},

	// Skeleton
	{
		ID:        "skl-women",
		Sport:     "Skeleton",
		SportIcon: "💀",
		Name:      "Vrouwen Individueel",
		Date:      "2026-02-14",
		Time:      "10:00",
		Venue:     "Cortina Sliding Centre",
		Athletes:  []string{"Kimberley Bos"},
	},

	// Figure skating
	{
		ID:        "fsk-pairs",
		Sport:     "Figure Skating",
		SportIcon: "💃",
		Name:      "Paarrijden",
		Date:      "2026-02-19",
		Time:      "10:30",
		Venue:     "Milano Ice Skating Arena",
		Athletes:  []string{"Daria Danilova & Michel Tsiba"},
	},
}

var countrySchedules = []CountrySchedule{
	{NOC: "NED", Name: "Netherlands", Events: dutchEvents},
	{
		NOC:  "USA",
		Name: "United States",
		Events: []Event{
			{
				ID:        "usa-alp-wgs",
				Sport:     "Alpine Skiing",
				SportIcon: "⛷️",
				Name:      "Vrouwen Giant Slalom",
				Date:      "2026-02-09",
				Time:      "10:00",
				Venue:     "Olympia delle Tofane",
				Athletes:  []string{"Mikaela Shiffrin"},
			},
			{
				ID:        "usa-alp-wslalom",
				Sport:     "Alpine Skiing",
				SportIcon: "⛷️",
				Name:      "Vrouwen Slalom",
				Date:      "2026-02-11",
				Time:      "10:30",
				Venue:     "Olympia delle Tofane",
				Athletes:  []string{"Mikaela Shiffrin", "Paula Moltzan"},
			},
			{
				ID:        "usa-sbd-mslopestyle",
				Sport:     "Snowboard",
				SportIcon: "🏂",
				Name:      "Mannen Slopestyle",
				Date:      "2026-02-08",
				Time:      "12:00",
				Venue:     "Livigno Snow Park",
				Athletes:  []string{"Red Gerard"},
			},
			{
				ID:        "usa-fsk-msingles",
				Sport:     "Figure Skating",
				SportIcon: "⛸️",
				Name:      "Mannen Individueel",
				Date:      "2026-02-14",
				Time:      "19:00",
				Venue:     "Milano Ice Skating Arena",
				Athletes:  []string{"Ilia Malinin"},
			},
		},
	},
	{
		NOC:  "NOR",
		Name: "Norway",
		Events: []Event{
			{
				ID:        "nor-ccs-mskiathlon",
				Sport:     "Cross-Country Skiing",
				SportIcon: "🎿",
				Name:      "Mannen Skiathlon",
				Date:      "2026-02-08",
				Time:      "13:00",
				Venue:     "Val di Fiemme",
				Athletes:  []string{"Johannes Høsflot Klæbo"},
			},
			{
				ID:        "nor-ccs-msprint",
				Sport:     "Cross-Country Skiing",
				SportIcon: "🎿",
				Name:      "Mannen Sprint Classic",
				Date:      "2026-02-10",
				Time:      "15:30",
				Venue:     "Val di Fiemme",
				Athletes:  []string{"Johannes Høsflot Klæbo", "Erik Valnes"},
			},
			{
				ID:        "nor-bia-msprint",
				Sport:     "Biathlon",
				SportIcon: "🎯",
				Name:      "Mannen 10km Sprint",
				Date:      "2026-02-08",
				Time:      "14:30",
				Venue:     "Anterselva",
				Athletes:  []string{"Sturla Holm Lægreid", "Vetle Sjåstad Christiansen"},
			},
			{
				ID:        "nor-sjp-mlh",
				Sport:     "Ski Jumping",
				SportIcon: "🪽",
				Name:      "Mannen LH Individual",
				Date:      "2026-02-14",
				Time:      "17:00",
				Venue:     "Predazzo",
				Athletes:  []string{"Marius Lindvik"},
			},
		},
	},
	{
		NOC:  "ITA",
		Name: "Italy",
		Events: []Event{
			{
				ID:        "ita-stk-w500",
				Sport:     "Short Track",
				SportIcon: "⛸️",
				Name:      "Vrouwen 500m",
				Date:      "2026-02-12",
				Time:      "18:30",
				Venue:     "Milano Ice Skating Arena",
				Athletes:  []string{"Arianna Fontana"},
			},
			{
				ID:        "ita-lug-msingles",
				Sport:     "Luge",
				SportIcon: "🛷",
				Name:      "Mannen Individueel",
				Date:      "2026-02-08",
				Time:      "19:00",
				Venue:     "Cortina Sliding Centre",
				Athletes:  []string{"Dominik Fischnaller"},
			},
			{
				ID:        "ita-sbx-wcross",
				Sport:     "Snowboard",
				SportIcon: "🏂",
				Name:      "Vrouwen Snowboard Cross",
				Date:      "2026-02-11",
				Time:      "13:30",
				Venue:     "Livigno Snow Park",
				Athletes:  []string{"Michela Moioli"},
			},
			{
				ID:        "ita-ccs-msprint",
				Sport:     "Cross-Country Skiing",
				SportIcon: "🎿",
				Name:      "Mannen Sprint Classic",
				Date:      "2026-02-10",
				Time:      "15:30",
				Venue:     "Val di Fiemme",
				Athletes:  []string{"Federico Pellegrino"},
			},
		},
	},
	{
		NOC:  "GER",
		Name: "Germany",
		Events: []Event{
			{
				ID:        "ger-bob-2man",
				Sport:     "Bobsleigh",
				SportIcon: "🛷",
				Name:      "Tweemansbob",
				Date:      "2026-02-15",
				Time:      "20:00",
				Venue:     "Cortina Sliding Centre",
				Athletes:  []string{"Francesco Friedrich"},
			},
			{
				ID:        "ger-bob-4man",
				Sport:     "Bobsleigh",
				SportIcon: "🛷",
				Name:      "Viererbob",
				Date:      "2026-02-22",
				Time:      "10:00",
				Venue:     "Cortina Sliding Centre",
				Athletes:  []string{"Francesco Friedrich"},
			},
			{
				ID:        "ger-lug-wsingles",
				Sport:     "Luge",
				SportIcon: "🛷",
				Name:      "Vrouwen Individueel",
				Date:      "2026-02-09",
				Time:      "19:00",
				Venue:     "Cortina Sliding Centre",
				Athletes:  []string{"Julia Taubitz"},
			},
			{
				ID:        "ger-bia-wsprint",
				Sport:     "Biathlon",
				SportIcon: "🎯",
				Name:      "Vrouwen 7.5km Sprint",
				Date:      "2026-02-09",
				Time:      "14:30",
				Venue:     "Anterselva",
				Athletes:  []string{"Franziska Preuß"},
			},
		},
	},
	{
		NOC:  "SWE",
		Name: "Sweden",
		Events: []Event{
			{
				ID:        "swe-ccs-wskiathlon",
				Sport:     "Cross-Country Skiing",
				SportIcon: "🎿",
				Name:      "Vrouwen Skiathlon",
				Date:      "2026-02-07",
				Time:      "12:30",
				Venue:     "Val di Fiemme",
				Athletes:  []string{"Frida Karlsson", "Ebba Andersson"},
			},
			{
				ID:        "swe-ccs-wsprint",
				Sport:     "Cross-Country Skiing",
				SportIcon: "🎿",
				Name:      "Vrouwen Sprint Classic",
				Date:      "2026-02-10",
				Time:      "15:30",
				Venue:     "Val di Fiemme",
				Athletes:  []string{"Linn Svahn"},
			},
			{
				ID:        "swe-ccs-w10km",
				Sport:     "Cross-Country Skiing",
				SportIcon: "🎿",
				Name:      "Vrouwen 10km Interval Start",
				Date:      "2026-02-12",
				Time:      "14:00",
				Venue:     "Val di Fiemme",
				Athletes:  []string{"Frida Karlsson", "Ebba Andersson"},
			},
		},
	},
	{
		NOC:  "FRA",
		Name: "France",
		Events: []Event{
			{
				ID:        "fra-bia-mpursuit",
				Sport:     "Biathlon",
				SportIcon: "🎯",
				Name:      "Mannen 12.5km Pursuit",
				Date:      "2026-02-10",
				Time:      "14:00",
				Venue:     "Anterselva",
				Athletes:  []string{"Quentin Fillon Maillet", "Émilien Jacquelin"},
			},
			{
				ID:        "fra-alp-mgs",
				Sport:     "Alpine Skiing",
				SportIcon: "⛷️",
				Name:      "Mannen Giant Slalom",
				Date:      "2026-02-10",
				Time:      "10:00",
				Venue:     "Bormio",
				Athletes:  []string{"Alexis Pinturault"},
			},
			{
				ID:        "fra-fsk-msingles",
				Sport:     "Figure Skating",
				SportIcon: "⛸️",
				Name:      "Mannen Individueel",
				Date:      "2026-02-14",
				Time:      "19:00",
				Venue:     "Milano Ice Skating Arena",
				Athletes:  []string{"Adam Siao Him Fa"},
			},
		},
	},
	{
		NOC:  "JPN",
		Name: "Japan",
		Events: []Event{
			{
				ID:        "jpn-sbd-mba",
				Sport:     "Snowboard",
				SportIcon: "🏂",
				Name:      "Mannen Snowboard Big Air",
				Date:      "2026-02-07",
				Time:      "20:00",
				Venue:     "Livigno Snow Park",
				Athletes:  []string{"Kira Kimura", "Ryoma Kimata"},
			},
			{
				ID:        "jpn-sbd-wba",
				Sport:     "Snowboard",
				SportIcon: "🏂",
				Name:      "Vrouwen Snowboard Big Air",
				Date:      "2026-02-09",
				Time:      "20:00",
				Venue:     "Livigno Snow Park",
				Athletes:  []string{"Kokomo Murase"},
			},
			{
				ID:        "jpn-sjp-wnh",
				Sport:     "Ski Jumping",
				SportIcon: "🪽",
				Name:      "Vrouwen NH Individual",
				Date:      "2026-02-07",
				Time:      "16:30",
				Venue:     "Predazzo",
				Athletes:  []string{"Nozomi Maruyama"},
			},
			{
				ID:        "jpn-fsk-team",
				Sport:     "Figure Skating",
				SportIcon: "⛸️",
				Name:      "Team Event",
				Date:      "2026-02-08",
				Time:      "13:00",
				Venue:     "Milano Ice Arena",
				Athletes:  []string{"Japan"},
			},
		},
	},
	{
		NOC:  "CAN",
		Name: "Canada",
		Events: []Event{
			{
				ID:        "can-frs-mmoguls",
				Sport:     "Freestyle Skiing",
				SportIcon: "🎿",
				Name:      "Mannen Moguls",
				Date:      "2026-02-12",
				Time:      "12:00",
				Venue:     "Livigno Snow Park",
				Athletes:  []string{"Mikael Kingsbury"},
			},
			{
				ID:        "can-frs-wslopestyle",
				Sport:     "Freestyle Skiing",
				SportIcon: "🎿",
				Name:      "Vrouwen Freeski Slopestyle",
				Date:      "2026-02-09",
				Time:      "11:30",
				Venue:     "Livigno Snow Park",
				Athletes:  []string{"Megan Oldham"},
			},
			{
				ID:        "can-stk-mixed",
				Sport:     "Short Track",
				SportIcon: "⛸️",
				Name:      "Mixed Team Relay",
				Date:      "2026-02-10",
				Time:      "18:00",
				Venue:     "Milano Ice Arena",
				Athletes:  []string{"Canada"},
			},
			{
				ID:        "can-fsk-icedance",
				Sport:     "Figure Skating",
				SportIcon: "⛸️",
				Name:      "Ice Dance",
				Date:      "2026-02-11",
				Time:      "19:00",
				Venue:     "Milano Ice Arena",
				Athletes:  []string{"Piper Gilles", "Paul Poirier"},
			},
		},
	},
}

var schedulesByNOC = func() map[string]CountrySchedule {
	byNOC := make(map[string]CountrySchedule, len(countrySchedules))
	for _, cs := range countrySchedules {
		byNOC[cs.NOC] = cs
	}
	return byNOC
}()

// CountryRef is a lightweight listing entry.
type CountryRef struct {
	NOC  string
	Name string
}

// Countries lists the committees with a curated schedule, in display order.
func Countries() []CountryRef {
	refs := make([]CountryRef, 0, len(countrySchedules))
	for _, cs := range countrySchedules {
		refs = append(refs, CountryRef{NOC: cs.NOC, Name: cs.Name})
	}
	return refs
}

// StaticByNOC returns the curated schedule for a committee code.
func StaticByNOC(noc string) (CountrySchedule, bool) {
	cs, ok := schedulesByNOC[strings.ToUpper(strings.TrimSpace(noc))]
	return cs, ok
}
