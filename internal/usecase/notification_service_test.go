package usecase

import (
	"context"
	"testing"

	"github.com/oranjelive/medaltracker/internal/domain/medals"
	"github.com/oranjelive/medaltracker/internal/domain/notification"
	"github.com/oranjelive/medaltracker/internal/domain/schedule"
	"github.com/oranjelive/medaltracker/internal/infrastructure/repository/memory"
)

type stubSink struct {
	sent     []notification.Message
	delivers bool
}

func (s *stubSink) Notify(_ context.Context, msg notification.Message) (bool, error) {
	if !s.delivers {
		return false, nil
	}
	s.sent = append(s.sent, msg)
	return true, nil
}

func TestNotificationService_NotifyMedalProgress(t *testing.T) {
	sink := &stubSink{delivers: true}
	svc := NewNotificationService(memory.NewNotificationMarkerRepository(), sink, nil)

	previous := medals.MedalCount{Gold: 1, Silver: 2, Bronze: 3}
	current := medals.MedalCount{Gold: 2, Silver: 2, Bronze: 3}

	sent, err := svc.NotifyMedalProgress(t.Context(), previous, current)
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if sent != 1 || len(sink.sent) != 1 {
		t.Fatalf("expected one message, sent=%d delivered=%d", sent, len(sink.sent))
	}

	msg := sink.sent[0]
	if msg.Title != "Team NL medaille-update" {
		t.Fatalf("unexpected title %q", msg.Title)
	}
	if msg.Body != "Nederland heeft een extra goud medaille (1 -> 2)." {
		t.Fatalf("unexpected body %q", msg.Body)
	}
	if msg.DedupeKey != "notif_medal_goud_2" {
		t.Fatalf("unexpected dedupe key %q", msg.DedupeKey)
	}

	// Same transition again is a no-op.
	sent, err = svc.NotifyMedalProgress(t.Context(), previous, current)
	if err != nil {
		t.Fatalf("second notify failed: %v", err)
	}
	if sent != 0 {
		t.Fatalf("expected dedupe, sent=%d", sent)
	}
}

func TestNotificationService_NotifyMedalProgress_NoDecrease(t *testing.T) {
	sink := &stubSink{delivers: true}
	svc := NewNotificationService(memory.NewNotificationMarkerRepository(), sink, nil)

	sent, err := svc.NotifyMedalProgress(t.Context(),
		medals.MedalCount{Gold: 3},
		medals.MedalCount{Gold: 2})
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if sent != 0 {
		t.Fatalf("a correction downward must not notify, sent=%d", sent)
	}
}

func TestNotificationService_NotifyLiveEvents(t *testing.T) {
	sink := &stubSink{delivers: true}
	svc := NewNotificationService(memory.NewNotificationMarkerRepository(), sink, nil)

	events := []schedule.Event{
		{ID: "ssk-w3000", Name: "3000m (v)", Date: "2026-02-07", Status: schedule.StatusLive},
		{ID: "ssk-m5000", Name: "5000m (m)", Date: "2026-02-08", Status: schedule.StatusUpcoming},
		{ID: "stk-mixedrelay", Name: "Gemengde estafette", Date: "2026-02-07", Status: schedule.StatusLive},
	}

	sent, err := svc.NotifyLiveEvents(t.Context(), events)
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if sent != 2 {
		t.Fatalf("expected 2 live announcements, got %d", sent)
	}
	if sink.sent[0].DedupeKey != "notif_event_live_ssk-w3000_2026-02-07" {
		t.Fatalf("unexpected dedupe key %q", sink.sent[0].DedupeKey)
	}
	if sink.sent[0].Body != "3000m (v) is live begonnen." {
		t.Fatalf("unexpected body %q", sink.sent[0].Body)
	}

	// The next sweep sees the same live events and stays quiet.
	sent, err = svc.NotifyLiveEvents(t.Context(), events)
	if err != nil {
		t.Fatalf("second notify failed: %v", err)
	}
	if sent != 0 {
		t.Fatalf("expected dedupe across sweeps, sent=%d", sent)
	}
}

func TestNotificationService_UndeliveredMessageLeavesNoMarker(t *testing.T) {
	sink := &stubSink{delivers: false}
	markers := memory.NewNotificationMarkerRepository()
	svc := NewNotificationService(markers, sink, nil)

	events := []schedule.Event{
		{ID: "ssk-w3000", Name: "3000m (v)", Date: "2026-02-07", Status: schedule.StatusLive},
	}
	sent, err := svc.NotifyLiveEvents(t.Context(), events)
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if sent != 0 {
		t.Fatalf("sink refused delivery, sent=%d", sent)
	}

	// Once the sink recovers the same event goes out.
	sink.delivers = true
	sent, err = svc.NotifyLiveEvents(t.Context(), events)
	if err != nil {
		t.Fatalf("retry notify failed: %v", err)
	}
	if sent != 1 {
		t.Fatalf("expected delivery after sink recovery, sent=%d", sent)
	}
}

func TestNotificationService_SendTest(t *testing.T) {
	sink := &stubSink{delivers: true}
	svc := NewNotificationService(memory.NewNotificationMarkerRepository(), sink, nil)

	msg, err := svc.SendTest(t.Context())
	if err != nil {
		t.Fatalf("send test failed: %v", err)
	}
	if msg.Title != "Team NL testmelding" {
		t.Fatalf("unexpected title %q", msg.Title)
	}
	if len(sink.sent) != 1 {
		t.Fatalf("expected one delivery, got %d", len(sink.sent))
	}
}
