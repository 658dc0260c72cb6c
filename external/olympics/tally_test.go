package olympics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oranjelive/medaltracker/internal/domain/medals"
)

const tallyTestJSON = `{"medalStandings":{"medalsTable":[
{"n_NOC":"NOR","n_NOCLong":"Norway","n_Gold":"5","n_Silver":"3","n_Bronze":"2","n_Total":"10","n_RankGold":"1"},
{"n_NOC":"NED","n_NOCLong":"Netherlands","n_Gold":"4","n_Silver":"2","n_Bronze":"1","n_Total":"7","n_RankGold":"2"}
]}}`

func newTallyClient(t *testing.T, pageURL, jsonURL, wikiURL string) *Client {
	t.Helper()
	c := NewClient(ClientConfig{
		MedalsPageURL: pageURL,
		MedalsJSONURL: jsonURL,
		WikipediaURL:  wikiURL,
		Fetcher:       FetcherConfig{Timeout: 2 * time.Second},
	}, nil)
	c.fetcher.candidates = func(sourceURL string) []string { return []string{sourceURL} }
	return c
}

func TestFetchMedalTallyPageTier(t *testing.T) {
	t.Parallel()

	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<script type="application/json">` + tallyTestJSON + `</script>`))
	}))
	defer page.Close()
	neverCalled := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("lower tier must not be reached when the page tier succeeds")
	}))
	defer neverCalled.Close()

	c := newTallyClient(t, page.URL, neverCalled.URL, neverCalled.URL)
	tally := c.FetchMedalTally(context.Background())

	if tally.ErrorMessage != "" {
		t.Fatalf("unexpected error message %q", tally.ErrorMessage)
	}
	if len(tally.Medals) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tally.Medals))
	}
	if tally.Tracked.NOC != "NED" || tally.Tracked.Medals.Gold != 4 {
		t.Fatalf("unexpected tracked row %+v", tally.Tracked)
	}
}

func TestFetchMedalTallyFallsBackToJSONTier(t *testing.T) {
	t.Parallel()

	brokenPage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer brokenPage.Close()
	jsonSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("_ts") == "" {
			t.Error("expected cache-buster on the data endpoint")
		}
		_, _ = w.Write([]byte(tallyTestJSON))
	}))
	defer jsonSrv.Close()

	c := newTallyClient(t, brokenPage.URL, jsonSrv.URL, brokenPage.URL)
	tally := c.FetchMedalTally(context.Background())

	if tally.ErrorMessage != "" {
		t.Fatalf("unexpected error message %q", tally.ErrorMessage)
	}
	if len(tally.Medals) != 2 || tally.Medals[0].NOC != "NOR" {
		t.Fatalf("unexpected rows %+v", tally.Medals)
	}
}

func TestFetchMedalTallyFallsBackToWikiTier(t *testing.T) {
	t.Parallel()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer broken.Close()
	wiki := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<table>
<tr><td>1</td><td>Norway</td><td>6</td><td>3</td><td>2</td><td>11</td></tr>
<tr><td>2</td><td>Netherlands</td><td>4</td><td>2</td><td>1</td><td>7</td></tr>
</table>`))
	}))
	defer wiki.Close()

	c := newTallyClient(t, broken.URL, broken.URL, wiki.URL)
	tally := c.FetchMedalTally(context.Background())

	if tally.ErrorMessage != "" {
		t.Fatalf("unexpected error message %q", tally.ErrorMessage)
	}
	if len(tally.Medals) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tally.Medals))
	}
	if len(tally.Winners) != 0 {
		t.Fatalf("wiki tier carries no winners, got %+v", tally.Winners)
	}
	if tally.Tracked.Medals.Total != 7 {
		t.Fatalf("unexpected tracked row %+v", tally.Tracked)
	}
}

func TestFetchMedalTallyTerminalResult(t *testing.T) {
	t.Parallel()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	c := newTallyClient(t, broken.URL, broken.URL, broken.URL)
	tally := c.FetchMedalTally(context.Background())

	if tally.ErrorMessage != TerminalFetchError {
		t.Fatalf("expected terminal error message, got %q", tally.ErrorMessage)
	}
	if len(tally.Medals) != 0 || len(tally.Winners) != 0 {
		t.Fatalf("terminal tally must be empty, got %+v", tally)
	}
	if tally.Tracked.NOC != medals.TrackedNOC || tally.Tracked.Medals != (medals.MedalCount{}) {
		t.Fatalf("expected zero-valued tracked row, got %+v", tally.Tracked)
	}
	if tally.LastUpdated.IsZero() {
		t.Fatal("terminal tally still carries a timestamp")
	}
}

func TestFetchMedalTallyParseFailureAdvancesTier(t *testing.T) {
	t.Parallel()

	// Page fetches fine but parses to nothing, so the JSON tier is used.
	emptyPage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>nothing to see</body></html>"))
	}))
	defer emptyPage.Close()
	jsonSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(tallyTestJSON))
	}))
	defer jsonSrv.Close()

	c := newTallyClient(t, emptyPage.URL, jsonSrv.URL, emptyPage.URL)
	tally := c.FetchMedalTally(context.Background())

	if tally.ErrorMessage != "" || len(tally.Medals) != 2 {
		t.Fatalf("expected JSON tier result, got %+v", tally)
	}
}
