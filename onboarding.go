package devwell

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/SiddDevCS/Dev-Well/internal/storageerr"
	"github.com/SiddDevCS/Dev-Well/kv"
)

// IsFirstTimeUser reports whether the app has never been opened before:
// true when the first-time flag is absent, and true on any storage error so
// a broken store routes the user into onboarding rather than past it.
func (s *Store) IsFirstTimeUser(ctx context.Context) bool {
	_, err := s.kv.Get(ctx, keyFirstTimeUser)
	if errors.Is(err, kv.ErrNotFound) {
		return true
	}
	if err != nil {
		s.fail("load_first_time_user", storageerr.NewStoreError("load "+keyFirstTimeUser, err))
		return true
	}
	return false
}

// SetFirstTimeUserCompleted marks the first launch as done. The returned
// error covers the enqueue only.
func (s *Store) SetFirstTimeUserCompleted(ctx context.Context) error {
	return s.enqueue(ctx, qOnboarding, func(jctx context.Context) {
		if err := s.kv.Set(jctx, keyFirstTimeUser, "false"); err != nil {
			s.fail("set_first_time_user", storageerr.NewStoreError("set "+keyFirstTimeUser, err))
		}
	})
}

// IsOnboardingCompleted reports whether onboarding finished; false when the
// flag is absent or on any storage error.
func (s *Store) IsOnboardingCompleted(ctx context.Context) bool {
	raw, err := s.kv.Get(ctx, keyOnboardingCompleted)
	if errors.Is(err, kv.ErrNotFound) {
		return false
	}
	if err != nil {
		s.fail("load_onboarding_completed", storageerr.NewStoreError("load "+keyOnboardingCompleted, err))
		return false
	}
	return raw == "true"
}

// SetOnboardingCompleted marks onboarding as finished. The returned error
// covers the enqueue only.
func (s *Store) SetOnboardingCompleted(ctx context.Context) error {
	return s.enqueue(ctx, qOnboarding, func(jctx context.Context) {
		if err := s.kv.Set(jctx, keyOnboardingCompleted, "true"); err != nil {
			s.fail("set_onboarding_completed", storageerr.NewStoreError("set "+keyOnboardingCompleted, err))
		}
	})
}

// SaveOnboardingPreferences stores the onboarding answers wholesale.
func (s *Store) SaveOnboardingPreferences(ctx context.Context, prefs OnboardingPreferences) error {
	return s.enqueue(ctx, qOnboarding, func(jctx context.Context) {
		if err := s.storeJSON(jctx, keyOnboardingPreferences, prefs); err != nil {
			s.fail("save_onboarding_preferences", err)
		}
	})
}

// GetOnboardingPreferences returns the stored onboarding answers, or nil
// when none exist or the stored value cannot be read.
func (s *Store) GetOnboardingPreferences(ctx context.Context) *OnboardingPreferences {
	var prefs OnboardingPreferences
	found, err := s.loadJSON(ctx, keyOnboardingPreferences, &prefs)
	if err != nil {
		s.fail("load_onboarding_preferences", err)
		return nil
	}
	if !found {
		return nil
	}
	return &prefs
}

// UpdateOnboardingPreferences patches the stored onboarding answers. A patch
// against an empty store is a no-op. The returned error covers the enqueue
// only.
func (s *Store) UpdateOnboardingPreferences(ctx context.Context, patch OnboardingPatch) error {
	return s.enqueue(ctx, qOnboarding, func(jctx context.Context) {
		prefs := s.GetOnboardingPreferences(jctx)
		if prefs == nil {
			return
		}
		patch.apply(prefs)
		if err := s.storeJSON(jctx, keyOnboardingPreferences, prefs); err != nil {
			s.fail("update_onboarding_preferences", err)
		}
	})
}

// ExportOnboardingPreferences returns the stored answers as indented JSON.
// The bool is false when nothing is stored.
func (s *Store) ExportOnboardingPreferences(ctx context.Context) (string, bool) {
	prefs := s.GetOnboardingPreferences(ctx)
	if prefs == nil {
		return "", false
	}
	raw, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		s.fail("export_onboarding_preferences", storageerr.NewDecodeError("encode "+keyOnboardingPreferences, err))
		return "", false
	}
	return string(raw), true
}
