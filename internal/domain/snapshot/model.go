package snapshot

import "time"

// Well-known snapshot keys. The _v1 suffix tracks the envelope schema
// version so a payload shape change can roll over to a fresh key.
const (
	KeyMedals = "medals_cache_v1"
	KeyEvents = "events_cache_v1"
)

// Record is one persisted cache envelope. Payload holds the full envelope
// JSON; SavedAt and Source are denormalized for inspection without decoding.
type Record struct {
	Key           string
	Payload       []byte
	SavedAt       time.Time
	Source        string
	SchemaVersion int
}
