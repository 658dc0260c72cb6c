package olympics

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/oranjelive/medaltracker/internal/domain/medals"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
)

// Default upstream locations for the Milano Cortina 2026 games.
const (
	DefaultMedalsPageURL = "https://www.olympics.com/en/milano-cortina-2026/medals"
	DefaultMedalsJSONURL = "https://olympics.com/OG2026/data/CIS_MedalNOCs~lang=ENG~comp=OG2026.json"
	DefaultWikipediaURL  = "https://en.wikipedia.org/wiki/2026_Winter_Olympics_medal_table"
)

// TerminalFetchError is surfaced when every acquisition tier failed.
const TerminalFetchError = "Could not fetch medal data. Will retry shortly."

// ClientConfig wires the tally client. Empty URLs fall back to defaults.
type ClientConfig struct {
	MedalsPageURL string
	MedalsJSONURL string
	WikipediaURL  string
	Fetcher       FetcherConfig
}

// Client acquires the medal tally with a three-tier fallback: scrape the
// official medals page, hit the official data endpoint, then scrape the
// Wikipedia medal table. It never fails outright; the terminal state is a
// well-formed empty tally carrying an error message.
type Client struct {
	fetcher       *Fetcher
	telemetry     *logging.Telemetry
	now           func() time.Time
	medalsPageURL string
	medalsJSONURL string
	wikipediaURL  string
}

func NewClient(cfg ClientConfig, logger *logging.Logger) *Client {
	if cfg.MedalsPageURL == "" {
		cfg.MedalsPageURL = DefaultMedalsPageURL
	}
	if cfg.MedalsJSONURL == "" {
		cfg.MedalsJSONURL = DefaultMedalsJSONURL
	}
	if cfg.WikipediaURL == "" {
		cfg.WikipediaURL = DefaultWikipediaURL
	}

	return &Client{
		fetcher:       NewFetcher(cfg.Fetcher, logger),
		telemetry:     logging.NewTelemetry(logger),
		now:           time.Now,
		medalsPageURL: cfg.MedalsPageURL,
		medalsJSONURL: cfg.MedalsJSONURL,
		wikipediaURL:  cfg.WikipediaURL,
	}
}

// FetchMedalTally runs the fallback chain. Attempt events are verbose,
// outcomes are not; the terminal failure after all tiers logs at error.
func (c *Client) FetchMedalTally(ctx context.Context) medals.Tally {
	now := c.now()
	elapsedMs := func() int64 { return c.now().Sub(now).Milliseconds() }

	// Tier 1: official medals page scrape.
	c.emitAttempt(ctx, "page", 1)
	if html, err := c.fetcher.FetchText(ctx, c.medalsPageURL); err == nil {
		if rows := parseMedalsHTML(html); len(rows) > 0 {
			winners := extractWinnersFromHTML(html, rows)
			c.emitSuccess(ctx, "page", 1, len(rows), elapsedMs())
			return c.tallyOf(rows, winners, now)
		}
		c.emitParseFailure(ctx, "page", 1, elapsedMs())
	} else {
		c.emitFetchFailure(ctx, "page", 1, elapsedMs(), err)
	}

	// Tier 2: official data endpoint, cache-busted so CDN layers cannot
	// serve a stale tally.
	c.emitAttempt(ctx, "json", 2)
	if data, err := c.fetcher.FetchJSON(ctx, c.liveMedalsURL(now)); err == nil {
		if rows := parseTallyRows(data); len(rows) > 0 {
			winners := extractWinners(data, rows)
			c.emitSuccess(ctx, "json", 2, len(rows), elapsedMs())
			return c.tallyOf(rows, winners, now)
		}
		c.emitParseFailure(ctx, "json", 2, elapsedMs())
	} else {
		c.emitFetchFailure(ctx, "json", 2, elapsedMs(), err)
	}

	// Tier 3: Wikipedia medal table scrape. No winner detail there.
	c.emitAttempt(ctx, "wiki", 3)
	if html, err := c.fetcher.FetchText(ctx, c.wikipediaURL); err == nil {
		if rows := parseWikipediaMedalsHTML(html); len(rows) > 0 {
			c.emitSuccess(ctx, "wiki", 3, len(rows), elapsedMs())
			return c.tallyOf(rows, nil, now)
		}
		c.emitParseFailure(ctx, "wiki", 3, elapsedMs())
	} else {
		c.emitFetchFailure(ctx, "wiki", 3, elapsedMs(), err)
	}

	c.telemetry.Emit(ctx, "medals_fetch_failure", logging.LevelError, false,
		"source", "all", "fallbackLevel", 4, "rowsParsed", 0, "elapsedMs", elapsedMs())
	return medals.Tally{
		Medals:       []medals.CountryMedals{},
		Tracked:      medals.EmptyCountry(medals.TrackedNOC),
		Winners:      []medals.Winner{},
		LastUpdated:  now,
		ErrorMessage: TerminalFetchError,
	}
}

func (c *Client) tallyOf(rows []medals.CountryMedals, winners []medals.Winner, now time.Time) medals.Tally {
	if winners == nil {
		winners = []medals.Winner{}
	}
	return medals.Tally{
		Medals:      rows,
		Tracked:     medals.FindCountry(rows, medals.TrackedNOC),
		Winners:     winners,
		LastUpdated: now,
	}
}

func (c *Client) liveMedalsURL(now time.Time) string {
	separator := "?"
	if strings.Contains(c.medalsJSONURL, "?") {
		separator = "&"
	}
	return c.medalsJSONURL + separator + "_ts=" + strconv.FormatInt(now.UnixMilli(), 10)
}

func (c *Client) emitAttempt(ctx context.Context, source string, level int) {
	c.telemetry.Emit(ctx, "medals_fetch_attempt", logging.LevelInfo, true,
		"source", source, "fallbackLevel", level)
}

func (c *Client) emitSuccess(ctx context.Context, source string, level, rowsParsed int, elapsedMs int64) {
	c.telemetry.Emit(ctx, "medals_fetch_success", logging.LevelInfo, false,
		"source", source, "fallbackLevel", level, "rowsParsed", rowsParsed, "elapsedMs", elapsedMs)
}

func (c *Client) emitParseFailure(ctx context.Context, source string, level int, elapsedMs int64) {
	c.telemetry.Emit(ctx, "medals_parse_failure", logging.LevelWarn, false,
		"source", source, "fallbackLevel", level, "elapsedMs", elapsedMs)
}

func (c *Client) emitFetchFailure(ctx context.Context, source string, level int, elapsedMs int64, err error) {
	c.telemetry.Emit(ctx, "medals_fetch_failure", logging.LevelWarn, false,
		"source", source, "fallbackLevel", level, "elapsedMs", elapsedMs, "error", err)
}
