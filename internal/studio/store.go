package studio

import (
	"sync"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/pricing"
)

// Store owns one in-progress studio configuration. All mutations go through
// its methods; each operation builds the next configuration as a whole and
// swaps it in, so readers never observe a half-applied transition and the
// cross-field invariants hold after every call.
//
// Invariants maintained here:
//   - AccentNails is non-empty only while HasAccentNails is true.
//   - Every AccentConfigs key is a member of AccentNails.
//   - At most one scope per effect type.
//   - A themed-set art selection always covers all ten nails.
type Store struct {
	mu     sync.Mutex
	cfg    *domain.StudioConfig
	engine *pricing.Engine
}

// NewStore creates a store holding the empty initial configuration.
func NewStore(engine *pricing.Engine) *Store {
	return &Store{cfg: domain.NewStudioConfig(), engine: engine}
}

// Snapshot returns a deep clone of the current configuration.
func (s *Store) Snapshot() *domain.StudioConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// Breakdown derives the price breakdown for the current configuration. The
// result is recomputed on every call; pricing is cheap and pure, so there is
// no cache to invalidate.
func (s *Store) Breakdown() pricing.Breakdown {
	s.mu.Lock()
	cfg := s.cfg
	s.mu.Unlock()
	return s.engine.Compute(cfg)
}

// Reset restores the empty initial configuration. Callers reset after a
// confirmed submission so a stale configuration cannot be reused.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = domain.NewStudioConfig()
}

func (s *Store) mutate(fn func(next *domain.StudioConfig)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cfg.Clone()
	fn(next)
	s.cfg = next
}

// SetShape replaces the base shape.
func (s *Store) SetShape(shape domain.ShapeType) {
	s.mutate(func(next *domain.StudioConfig) { next.Shape = shape })
}

// SetLength replaces the base length.
func (s *Store) SetLength(length domain.LengthType) {
	s.mutate(func(next *domain.StudioConfig) { next.Length = length })
}

// SetBaseFinish replaces the base finish.
func (s *Store) SetBaseFinish(finish domain.FinishType) {
	s.mutate(func(next *domain.StudioConfig) { next.BaseFinish = finish })
}

// SetColorPalette replaces the palette and seeds a color for every nail that
// does not yet have an explicit one, cycling palette colors by position.
// Existing explicit per-nail colors are preserved.
func (s *Store) SetColorPalette(palette domain.ColorPalette) {
	s.mutate(func(next *domain.StudioConfig) {
		next.Palette = palette.Clone()
		if len(palette.Colors) == 0 {
			return
		}
		for _, finger := range domain.AllFingers() {
			if _, ok := next.NailColors[finger]; !ok {
				next.NailColors[finger] = palette.Colors[int(finger)%len(palette.Colors)]
			}
		}
	})
}

// SetNailColor sets an explicit color for one nail.
func (s *Store) SetNailColor(finger domain.FingerIndex, color string) {
	s.mutate(func(next *domain.StudioConfig) { next.NailColors[finger] = color })
}

// SetHasAccentNails flips the accent-nail flag. Turning it off clears the
// accent set and every accent config with it.
func (s *Store) SetHasAccentNails(enabled bool) {
	s.mutate(func(next *domain.StudioConfig) {
		next.HasAccentNails = enabled
		if !enabled {
			next.AccentNails = make(domain.FingerSet)
			next.AccentConfigs = make(map[domain.FingerIndex]domain.AccentConfig)
		}
	})
}

// ToggleAccentNail adds or removes one nail from the accent set. Removal also
// discards the nail's accent config. Toggling while the accent flag is off is
// a no-op, keeping the set empty.
func (s *Store) ToggleAccentNail(finger domain.FingerIndex) {
	s.mutate(func(next *domain.StudioConfig) {
		if !next.HasAccentNails {
			return
		}
		if next.AccentNails.Has(finger) {
			delete(next.AccentNails, finger)
			delete(next.AccentConfigs, finger)
			return
		}
		next.AccentNails[finger] = struct{}{}
	})
}

// SetAccentConfig upserts the accent config for a nail already in the accent
// set. Writes for non-members are dropped so orphaned configs cannot exist.
func (s *Store) SetAccentConfig(finger domain.FingerIndex, cfg domain.AccentConfig) {
	s.mutate(func(next *domain.StudioConfig) {
		if !next.AccentNails.Has(finger) {
			return
		}
		if cfg.Finish != nil {
			finish := *cfg.Finish
			cfg.Finish = &finish
		}
		next.AccentConfigs[finger] = cfg
	})
}

// AddEffect applies an effect, replacing any existing application of the same
// type.
func (s *Store) AddEffect(effectType domain.EffectType, scope domain.EffectScope) {
	s.mutate(func(next *domain.StudioConfig) { next.Effects[effectType] = scope })
}

// RemoveEffect removes any application of the given effect type.
func (s *Store) RemoveEffect(effectType domain.EffectType) {
	s.mutate(func(next *domain.StudioConfig) { delete(next.Effects, effectType) })
}

// SetRhinestoneTier replaces the rhinestone tier.
func (s *Store) SetRhinestoneTier(tier domain.RhinestoneTier) {
	s.mutate(func(next *domain.StudioConfig) { next.RhinestoneTier = tier })
}

// SetCharmTier replaces the charm tier.
func (s *Store) SetCharmTier(tier domain.CharmTier) {
	s.mutate(func(next *domain.StudioConfig) { next.CharmTier = tier })
}

// SetCharmPreferences records free-text charm preferences.
func (s *Store) SetCharmPreferences(text string) {
	s.mutate(func(next *domain.StudioConfig) { next.CharmPreferences = text })
}

// AddPredefinedArtwork upserts a predefined art selection by type. Themed
// sets are all-or-nothing: any themed-set selection is normalized to the
// full ten-nail set.
func (s *Store) AddPredefinedArtwork(artType domain.NailArtType, nails domain.FingerSet) {
	s.mutate(func(next *domain.StudioConfig) {
		if artType == domain.ArtThemedSet {
			next.Artwork[artType] = domain.FullFingerSet()
			return
		}
		next.Artwork[artType] = nails.Clone()
	})
}

// RemovePredefinedArtwork removes the selection for one art type.
func (s *Store) RemovePredefinedArtwork(artType domain.NailArtType) {
	s.mutate(func(next *domain.StudioConfig) { delete(next.Artwork, artType) })
}

// SetCustomArtwork sets or clears the custom artwork request. Presence is
// structural: a request with every field empty still switches the
// configuration into quote mode.
func (s *Store) SetCustomArtwork(req *domain.CustomArtworkRequest) {
	s.mutate(func(next *domain.StudioConfig) { next.CustomArtwork = req.Clone() })
}

// AddInspirationImage appends a stored image reference to the custom artwork
// request. It reports false when no request is present.
func (s *Store) AddInspirationImage(ref string) bool {
	added := false
	s.mutate(func(next *domain.StudioConfig) {
		if next.CustomArtwork == nil {
			return
		}
		next.CustomArtwork.InspirationImages = append(next.CustomArtwork.InspirationImages, ref)
		added = true
	})
	return added
}
