package cache

import (
	"testing"
	"time"
)

type envelopeFixture struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestEnvelopeRoundTrip(t *testing.T) {
	t.Parallel()

	savedAt := time.UnixMilli(1_770_000_000_000)
	payload, err := EncodeEnvelope(envelopeFixture{Name: "tally", Count: 7}, savedAt, "json")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out envelopeFixture
	meta, ok := DecodeEnvelope(payload, &out)
	if !ok {
		t.Fatal("expected decode to succeed")
	}
	if out.Name != "tally" || out.Count != 7 {
		t.Fatalf("unexpected payload %+v", out)
	}
	if meta.Source != "json" {
		t.Fatalf("unexpected source %q", meta.Source)
	}
	if !meta.SavedAt.Equal(savedAt) {
		t.Fatalf("savedAt mismatch: %v vs %v", meta.SavedAt, savedAt)
	}
}

func TestDecodeEnvelopeSchemaMismatchIsMiss(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"data":{"name":"x"},"savedAt":1,"source":"page","schemaVersion":99}`)

	var out envelopeFixture
	if _, ok := DecodeEnvelope(payload, &out); ok {
		t.Fatal("expected schema mismatch to read as miss")
	}
}

func TestDecodeEnvelopeMalformedIsMiss(t *testing.T) {
	t.Parallel()

	var out envelopeFixture
	for _, payload := range [][]byte{nil, []byte("{"), []byte(`"just a string"`), []byte(`{"schemaVersion":1}`)} {
		if _, ok := DecodeEnvelope(payload, &out); ok {
			t.Fatalf("expected miss for payload %q", payload)
		}
	}
}

func TestEnvelopeAgeClampsNegative(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(10_000)
	meta := EnvelopeMeta{SavedAt: now.Add(5 * time.Second)}
	if got := meta.AgeSeconds(now); got != 0 {
		t.Fatalf("expected clamped age 0, got %d", got)
	}

	meta = EnvelopeMeta{SavedAt: now.Add(-2500 * time.Millisecond)}
	if got := meta.AgeSeconds(now); got != 2 {
		t.Fatalf("expected floor age 2, got %d", got)
	}
}
