package notification

import (
	"fmt"
	"time"
)

// Medal color names as they appear in user-facing notification text.
const (
	MedalGoud   = "goud"
	MedalZilver = "zilver"
	MedalBrons  = "brons"
)

// Marker records that a notification with a given dedupe key went out.
type Marker struct {
	DedupeKey string
	SentAt    time.Time
}

// Message is a notification ready for a delivery sink.
type Message struct {
	Title     string
	Body      string
	DedupeKey string
}

// MedalUpdate builds the message for a medal-count increase. The dedupe key
// embeds the new count so each milestone fires exactly once.
func MedalUpdate(medalType string, from, to int) Message {
	return Message{
		Title:     "Team NL medaille-update",
		Body:      fmt.Sprintf("Nederland heeft een extra %s medaille (%d -> %d).", medalType, from, to),
		DedupeKey: fmt.Sprintf("notif_medal_%s_%d", medalType, to),
	}
}

// EventLive builds the message for an event flipping to live. The date in
// the key keeps multi-day events from being suppressed forever.
func EventLive(eventID, eventName, date string) Message {
	return Message{
		Title:     "Team NL nu live",
		Body:      fmt.Sprintf("%s is live begonnen.", eventName),
		DedupeKey: fmt.Sprintf("notif_event_live_%s_%s", eventID, date),
	}
}

// Test builds a throwaway test message. The timestamp in the key makes every
// test delivery unique on purpose.
func Test(now time.Time) Message {
	return Message{
		Title:     "Team NL testmelding",
		Body:      fmt.Sprintf("Dit is een testmelding (%s).", now.Format("15:04:05")),
		DedupeKey: fmt.Sprintf("notif_test_%d", now.UnixMilli()),
	}
}
