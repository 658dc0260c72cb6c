package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/oranjelive/medaltracker/internal/domain/preference"
	"github.com/oranjelive/medaltracker/internal/infrastructure/repository/memory"
)

func TestPreferenceService_GetFavoriteCountry_Default(t *testing.T) {
	svc := NewPreferenceService(memory.NewFavoriteCountryRepository(), nil)

	favorite, err := svc.GetFavoriteCountry(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("get favorite failed: %v", err)
	}
	if favorite.NOC != preference.DefaultNOC {
		t.Fatalf("expected default committee, got %q", favorite.NOC)
	}
}

func TestPreferenceService_SetFavoriteCountry_RoundTrip(t *testing.T) {
	svc := NewPreferenceService(memory.NewFavoriteCountryRepository(), nil)

	saved, err := svc.SetFavoriteCountry(t.Context(), "user-1", " usa ")
	if err != nil {
		t.Fatalf("set favorite failed: %v", err)
	}
	if saved.NOC != "USA" {
		t.Fatalf("expected normalized code, got %q", saved.NOC)
	}
	if saved.UpdatedAt.IsZero() {
		t.Fatal("expected UpdatedAt to be stamped")
	}

	favorite, err := svc.GetFavoriteCountry(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("get favorite failed: %v", err)
	}
	if favorite.NOC != "USA" {
		t.Fatalf("expected persisted code, got %q", favorite.NOC)
	}
}

func TestPreferenceService_SetFavoriteCountry_RejectsBadCodes(t *testing.T) {
	svc := NewPreferenceService(memory.NewFavoriteCountryRepository(), nil)

	for _, raw := range []string{"", "@@@", "TOO-LONG", "N1D"} {
		if _, err := svc.SetFavoriteCountry(t.Context(), "user-1", raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", raw, err)
		}
	}
	if _, err := svc.SetFavoriteCountry(t.Context(), "", "USA"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty user, got %v", err)
	}
}

func TestPreferenceService_GetFavoriteCountry_LegacyJunkFallsBack(t *testing.T) {
	repo := memory.NewFavoriteCountryRepository()
	if err := repo.Upsert(t.Context(), preference.FavoriteCountry{
		UserID:    "user-1",
		NOC:       "@@@",
		UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	svc := NewPreferenceService(repo, nil)
	favorite, err := svc.GetFavoriteCountry(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("get favorite failed: %v", err)
	}
	if favorite.NOC != preference.DefaultNOC {
		t.Fatalf("junk rows must fall back to the default, got %q", favorite.NOC)
	}
}
