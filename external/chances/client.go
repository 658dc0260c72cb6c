package chances

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/oranjelive/medaltracker/internal/platform/logging"
)

// DefaultAPIURL is the public medal-chances feed.
const DefaultAPIURL = "https://winter-olympics-2026.datasportiq.com/api/data"

const maxResponseBytes = 4 << 20

var errChancesTransient = crerr.New("chances feed transient failure")

// AthleteChance is one athlete's medal-chance entry for a discipline.
type AthleteChance struct {
	DisciplineID string
	Chance       string
	FirstName    string
	LastName     string
}

// Discipline is one entry of the feed's discipline directory.
type Discipline struct {
	ID   string
	Name string
	Icon string
}

// FeedEvent is one scheduled session the feed knows about.
type FeedEvent struct {
	DisciplineID string
	Date         string
	Time         string
	Venue        string
}

// Feed is everything the chances endpoint returned for one committee.
// Disciplines and Events stay empty when the feed only carries athletes.
type Feed struct {
	Athletes    []AthleteChance
	Disciplines []Discipline
	Events      []FeedEvent
}

// ClientConfig wires the chances client. An empty BaseURL uses the public
// feed.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches athlete medal chances from the external feed.
type Client struct {
	client  *http.Client
	baseURL string
	logger  *logging.Logger
}

func NewClient(cfg ClientConfig, logger *logging.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		logger:  logger,
	}
}

type feedResponse struct {
	Athletes   []feedAthlete    `json:"athletes"`
	Disciplins []feedDiscipline `json:"disciplins"`
	Events     []feedEvent      `json:"events"`
}

type feedAthlete struct {
	Country     string `json:"country"`
	DisciplinID string `json:"disciplin_id"`
	Chance      string `json:"chance"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
}

type feedDiscipline struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type feedEvent struct {
	DisciplinID string `json:"disciplin_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
}

// FetchAthleteChances returns the feed's athlete entries for one committee.
func (c *Client) FetchAthleteChances(ctx context.Context, noc string) ([]AthleteChance, error) {
	feed, err := c.FetchFeed(ctx, noc)
	if err != nil {
		return nil, err
	}
	return feed.Athletes, nil
}

// FetchFeed returns the full feed for one committee. Athlete entries
// without a discipline id or chance label are dropped at the edge so
// callers only see usable rows; the discipline directory and event list
// pass through unfiltered.
func (c *Client) FetchFeed(ctx context.Context, noc string) (Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return Feed{}, crerr.Wrap(err, "create chances request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return Feed{}, crerr.Wrapf(errChancesTransient, "fetch chances: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return Feed{}, crerr.Wrapf(errChancesTransient, "fetch chances status=%d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Feed{}, crerr.Wrap(err, "read chances body")
	}

	var decoded feedResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return Feed{}, crerr.Wrap(err, "decode chances body")
	}

	wantCountry := strings.ToLower(strings.TrimSpace(noc))
	feed := Feed{Athletes: make([]AthleteChance, 0, len(decoded.Athletes))}
	for _, athlete := range decoded.Athletes {
		if strings.ToLower(strings.TrimSpace(athlete.Country)) != wantCountry {
			continue
		}
		item := AthleteChance{
			DisciplineID: strings.TrimSpace(athlete.DisciplinID),
			Chance:       strings.TrimSpace(athlete.Chance),
			FirstName:    strings.TrimSpace(athlete.Firstname),
			LastName:     strings.TrimSpace(athlete.Lastname),
		}
		if item.DisciplineID == "" || item.Chance == "" {
			continue
		}
		feed.Athletes = append(feed.Athletes, item)
	}

	for _, discipline := range decoded.Disciplins {
		entry := Discipline{
			ID:   strings.TrimSpace(discipline.ID),
			Name: strings.TrimSpace(discipline.Name),
			Icon: strings.TrimSpace(discipline.Icon),
		}
		if entry.ID == "" {
			continue
		}
		feed.Disciplines = append(feed.Disciplines, entry)
	}

	for _, event := range decoded.Events {
		entry := FeedEvent{
			DisciplineID: strings.TrimSpace(event.DisciplinID),
			Date:         strings.TrimSpace(event.Date),
			Time:         strings.TrimSpace(event.Time),
			Venue:        strings.TrimSpace(event.Venue),
		}
		if entry.DisciplineID == "" || entry.Date == "" || entry.Time == "" {
			continue
		}
		feed.Events = append(feed.Events, entry)
	}

	c.logger.DebugContext(ctx, "chances feed fetched",
		"country", wantCountry,
		"items", len(feed.Athletes),
		"events", len(feed.Events),
	)
	return feed, nil
}

// IsTransient reports whether an error from this client is worth retrying.
func IsTransient(err error) bool {
	return crerr.Is(err, errChancesTransient)
}
