package cache

import (
	"encoding/json"
	"time"

	sonic "github.com/bytedance/sonic"
)

// EnvelopeSchemaVersion guards cached payload shape. Bump it whenever the
// cached structure changes so stale snapshots are ignored instead of
// misparsed.
const EnvelopeSchemaVersion = 1

// Envelope wraps a cached payload with provenance metadata. SavedAt is unix
// milliseconds to stay compatible with snapshots written by older clients.
type Envelope struct {
	Data          json.RawMessage `json:"data"`
	SavedAt       int64           `json:"savedAt"`
	Source        string          `json:"source"`
	SchemaVersion int             `json:"schemaVersion"`
}

// EnvelopeMeta describes a decoded envelope.
type EnvelopeMeta struct {
	SavedAt time.Time
	Source  string
}

// AgeSeconds is the whole-second age of the snapshot, clamped at zero so
// clock skew never yields a negative age.
func (m EnvelopeMeta) AgeSeconds(now time.Time) int64 {
	age := now.UnixMilli() - m.SavedAt.UnixMilli()
	if age < 0 {
		return 0
	}
	return age / 1000
}

// EncodeEnvelope wraps a payload for storage.
func EncodeEnvelope(data any, savedAt time.Time, source string) ([]byte, error) {
	raw, err := sonic.Marshal(data)
	if err != nil {
		return nil, err
	}
	return sonic.Marshal(Envelope{
		Data:          raw,
		SavedAt:       savedAt.UnixMilli(),
		Source:        source,
		SchemaVersion: EnvelopeSchemaVersion,
	})
}

// DecodeEnvelope unwraps a stored payload into out. Malformed payloads and
// schema-version mismatches are treated as a silent cache miss, never an
// error: a broken snapshot must not take the read path down.
func DecodeEnvelope(payload []byte, out any) (EnvelopeMeta, bool) {
	if len(payload) == 0 {
		return EnvelopeMeta{}, false
	}

	var envelope Envelope
	if err := sonic.Unmarshal(payload, &envelope); err != nil {
		return EnvelopeMeta{}, false
	}
	if envelope.SchemaVersion != EnvelopeSchemaVersion {
		return EnvelopeMeta{}, false
	}
	if len(envelope.Data) == 0 {
		return EnvelopeMeta{}, false
	}
	if err := sonic.Unmarshal(envelope.Data, out); err != nil {
		return EnvelopeMeta{}, false
	}

	return EnvelopeMeta{
		SavedAt: time.UnixMilli(envelope.SavedAt),
		Source:  envelope.Source,
	}, true
}
