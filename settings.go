package devwell

import "context"

// Settings returns the user's settings: stored fields overlaid on
// DefaultSettings. Never fails; any storage or parse error yields pure
// defaults.
func (s *Store) Settings(ctx context.Context) UserSettings {
	settings := DefaultSettings()
	if _, err := s.loadJSON(ctx, keyUserSettings, &settings); err != nil {
		s.fail("load_settings", err)
		return DefaultSettings()
	}
	return settings
}

// UpdateSettings shallow-merges patch into the stored settings. Fields left
// nil in the patch keep their prior values. The returned error covers the
// enqueue only.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) error {
	return s.enqueue(ctx, qSettings, func(jctx context.Context) {
		settings := s.Settings(jctx)
		patch.apply(&settings)
		if err := s.storeJSON(jctx, keyUserSettings, settings); err != nil {
			s.fail("update_settings", err)
		}
	})
}
