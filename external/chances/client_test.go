package chances

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const chancesFeedBody = `{"athletes":[
{"country":"NED","disciplin_id":"speedskating-3000m-women","chance":"Big Favourite","firstname":"Joy","lastname":"Beune"},
{"country":"ned","disciplin_id":"speedskating-500m-women","chance":" Favourite ","firstname":"Femke","lastname":"Kok"},
{"country":"NOR","disciplin_id":"biathlon-sprint-men","chance":"Big Favourite","firstname":"Sturla","lastname":"Laegreid"},
{"country":"NED","disciplin_id":"","chance":"Outsider","firstname":"X","lastname":"Y"},
{"country":"NED","disciplin_id":"skeleton-women","chance":"","firstname":"Kimberley","lastname":"Bos"}
]}`

func TestFetchAthleteChancesFiltersAndTrims(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing Accept header")
		}
		_, _ = w.Write([]byte(chancesFeedBody))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, nil)
	items, err := c.FetchAthleteChances(context.Background(), "NED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 usable Dutch entries, got %d: %+v", len(items), items)
	}
	if items[0].DisciplineID != "speedskating-3000m-women" || items[0].Chance != "Big Favourite" {
		t.Fatalf("unexpected first item %+v", items[0])
	}
	if items[1].Chance != "Favourite" {
		t.Fatalf("expected trimmed chance label, got %q", items[1].Chance)
	}
}

func TestFetchFeedDecodesDisciplinesAndEvents(t *testing.T) {
	t.Parallel()

	body := `{
"athletes":[{"country":"NED","disciplin_id":"skeleton-women","chance":"Challenger","firstname":"Kimberley","lastname":"Bos"}],
"disciplins":[
{"id":"skeleton-women","name":"Skeleton Women","icon":"🛷"},
{"id":"","name":"nameless","icon":""}
],
"events":[
{"disciplin_id":"skeleton-women","date":"2026-02-13","time":"19:30","venue":"Cortina Sliding Centre"},
{"disciplin_id":"skeleton-women","date":"","time":"19:30","venue":"dropped"}
]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, nil)
	feed, err := c.FetchFeed(context.Background(), "NED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(feed.Disciplines) != 1 || feed.Disciplines[0].Name != "Skeleton Women" {
		t.Fatalf("expected the id-less directory entry to be dropped, got %+v", feed.Disciplines)
	}
	if len(feed.Events) != 1 {
		t.Fatalf("expected the dateless event to be dropped, got %+v", feed.Events)
	}
	if feed.Events[0].Venue != "Cortina Sliding Centre" {
		t.Fatalf("unexpected venue %q", feed.Events[0].Venue)
	}
	if len(feed.Athletes) != 1 || feed.Athletes[0].LastName != "Bos" {
		t.Fatalf("unexpected athletes %+v", feed.Athletes)
	}
}

func TestFetchFeedWithoutEventsLeavesThemEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chancesFeedBody))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, nil)
	feed, err := c.FetchFeed(context.Background(), "NED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feed.Events) != 0 || len(feed.Disciplines) != 0 {
		t.Fatalf("expected an athletes-only feed, got %+v", feed)
	}
}

func TestFetchAthleteChancesUpstreamFailureIsTransient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, nil)
	_, err := c.FetchAthleteChances(context.Background(), "NED")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsTransient(err) {
		t.Fatalf("expected transient classification, got %v", err)
	}
}

func TestFetchAthleteChancesMalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, nil)
	_, err := c.FetchAthleteChances(context.Background(), "NED")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if IsTransient(err) {
		t.Fatalf("decode failures are not transient, got %v", err)
	}
}
