package domain

// ShapeType enumerates the nail shapes offered in the studio.
type ShapeType string

const (
	ShapeAlmond   ShapeType = "almond"
	ShapeSquare   ShapeType = "square"
	ShapeOval     ShapeType = "oval"
	ShapeCoffin   ShapeType = "coffin"
	ShapeStiletto ShapeType = "stiletto"
)

// Valid reports whether the value is a known shape.
func (s ShapeType) Valid() bool {
	switch s {
	case ShapeAlmond, ShapeSquare, ShapeOval, ShapeCoffin, ShapeStiletto:
		return true
	}
	return false
}

// LengthType enumerates nail lengths.
type LengthType string

const (
	LengthShort     LengthType = "short"
	LengthMedium    LengthType = "medium"
	LengthLong      LengthType = "long"
	LengthExtraLong LengthType = "extra-long"
)

// Valid reports whether the value is a known length.
func (l LengthType) Valid() bool {
	switch l {
	case LengthShort, LengthMedium, LengthLong, LengthExtraLong:
		return true
	}
	return false
}

// FinishType enumerates surface finishes.
type FinishType string

const (
	FinishGlossy FinishType = "glossy"
	FinishMatte  FinishType = "matte"
)

// Valid reports whether the value is a known finish.
func (f FinishType) Valid() bool {
	return f == FinishGlossy || f == FinishMatte
}

// EffectType enumerates overlay effects.
type EffectType string

const (
	EffectChrome    EffectType = "chrome"
	EffectGlitter   EffectType = "glitter"
	EffectFrenchTip EffectType = "french-tip"
	EffectCatEye    EffectType = "cat-eye"
)

// Valid reports whether the value is a known effect.
func (e EffectType) Valid() bool {
	switch e {
	case EffectChrome, EffectGlitter, EffectFrenchTip, EffectCatEye:
		return true
	}
	return false
}

// EffectScope describes how broadly an effect is applied.
type EffectScope string

const (
	ScopeAllNails    EffectScope = "all"
	ScopeAccentsOnly EffectScope = "accents-only"
)

// Valid reports whether the value is a known scope.
func (s EffectScope) Valid() bool {
	return s == ScopeAllNails || s == ScopeAccentsOnly
}

// RhinestoneTier is the ordinal rhinestone add-on level.
type RhinestoneTier string

const (
	RhinestoneNone   RhinestoneTier = "none"
	RhinestoneAccent RhinestoneTier = "accent"
	RhinestoneMedium RhinestoneTier = "medium"
	RhinestoneFull   RhinestoneTier = "full"
)

// Valid reports whether the value is a known tier.
func (t RhinestoneTier) Valid() bool {
	switch t {
	case RhinestoneNone, RhinestoneAccent, RhinestoneMedium, RhinestoneFull:
		return true
	}
	return false
}

// CharmTier is the ordinal charm add-on level.
type CharmTier string

const (
	CharmNone   CharmTier = "none"
	CharmSingle CharmTier = "single"
	CharmDuo    CharmTier = "duo"
	CharmFull   CharmTier = "full"
)

// Valid reports whether the value is a known tier.
func (t CharmTier) Valid() bool {
	switch t {
	case CharmNone, CharmSingle, CharmDuo, CharmFull:
		return true
	}
	return false
}

// NailArtType enumerates predefined hand-painted art options. ArtThemedSet is
// special: it always covers all ten nails and carries a flat price.
type NailArtType string

const (
	ArtHearts    NailArtType = "hearts"
	ArtStars     NailArtType = "stars"
	ArtFlowers   NailArtType = "flowers"
	ArtAbstract  NailArtType = "abstract"
	ArtThemedSet NailArtType = "themed-set"
)

// Valid reports whether the value is a known art type.
func (t NailArtType) Valid() bool {
	switch t {
	case ArtHearts, ArtStars, ArtFlowers, ArtAbstract, ArtThemedSet:
		return true
	}
	return false
}

// ColorPalette is a named ordered sequence of hex color values. Selecting a
// palette seeds per-nail colors but does not constrain later overrides.
type ColorPalette struct {
	Name   string
	Colors []string
}

// Clone returns an independent copy of the palette.
func (p *ColorPalette) Clone() *ColorPalette {
	if p == nil {
		return nil
	}
	out := &ColorPalette{Name: p.Name, Colors: make([]string, len(p.Colors))}
	copy(out.Colors, p.Colors)
	return out
}

// AccentConfig overrides the base finish for a single accent nail. Color
// overrides live in the per-nail color map, not here.
type AccentConfig struct {
	Finish *FinishType
}

func (c AccentConfig) clone() AccentConfig {
	if c.Finish == nil {
		return AccentConfig{}
	}
	finish := *c.Finish
	return AccentConfig{Finish: &finish}
}

// CustomArtworkRequest describes artwork the studio team must quote by hand.
// Its presence alone switches the configuration into quote mode, even when
// every field is empty.
type CustomArtworkRequest struct {
	Description       string
	InspirationImages []string
	Nails             FingerSet
}

// Clone returns an independent copy of the request.
func (r *CustomArtworkRequest) Clone() *CustomArtworkRequest {
	if r == nil {
		return nil
	}
	out := &CustomArtworkRequest{
		Description:       r.Description,
		InspirationImages: make([]string, len(r.InspirationImages)),
		Nails:             r.Nails.Clone(),
	}
	copy(out.InspirationImages, r.InspirationImages)
	return out
}

// StudioConfig is one in-progress custom set configuration. It is owned by a
// studio.Store and must only be mutated through store operations; readers get
// deep clones.
type StudioConfig struct {
	Shape      ShapeType
	Length     LengthType
	BaseFinish FinishType
	Palette    *ColorPalette

	// NailColors is sparse: a missing position uses the base color.
	NailColors map[FingerIndex]string

	HasAccentNails bool
	AccentNails    FingerSet
	AccentConfigs  map[FingerIndex]AccentConfig

	// Effects holds at most one scope per effect type.
	Effects map[EffectType]EffectScope

	RhinestoneTier   RhinestoneTier
	CharmTier        CharmTier
	CharmPreferences string

	Artwork       map[NailArtType]FingerSet
	CustomArtwork *CustomArtworkRequest
}

// NewStudioConfig returns the empty initial configuration.
func NewStudioConfig() *StudioConfig {
	return &StudioConfig{
		NailColors:     make(map[FingerIndex]string),
		AccentNails:    make(FingerSet),
		AccentConfigs:  make(map[FingerIndex]AccentConfig),
		Effects:        make(map[EffectType]EffectScope),
		RhinestoneTier: RhinestoneNone,
		CharmTier:      CharmNone,
		Artwork:        make(map[NailArtType]FingerSet),
	}
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (c *StudioConfig) Clone() *StudioConfig {
	out := &StudioConfig{
		Shape:            c.Shape,
		Length:           c.Length,
		BaseFinish:       c.BaseFinish,
		Palette:          c.Palette.Clone(),
		NailColors:       make(map[FingerIndex]string, len(c.NailColors)),
		HasAccentNails:   c.HasAccentNails,
		AccentNails:      c.AccentNails.Clone(),
		AccentConfigs:    make(map[FingerIndex]AccentConfig, len(c.AccentConfigs)),
		Effects:          make(map[EffectType]EffectScope, len(c.Effects)),
		RhinestoneTier:   c.RhinestoneTier,
		CharmTier:        c.CharmTier,
		CharmPreferences: c.CharmPreferences,
		Artwork:          make(map[NailArtType]FingerSet, len(c.Artwork)),
		CustomArtwork:    c.CustomArtwork.Clone(),
	}
	for f, color := range c.NailColors {
		out.NailColors[f] = color
	}
	for f, cfg := range c.AccentConfigs {
		out.AccentConfigs[f] = cfg.clone()
	}
	for t, scope := range c.Effects {
		out.Effects[t] = scope
	}
	for t, nails := range c.Artwork {
		out.Artwork[t] = nails.Clone()
	}
	return out
}

// AccentNailCount returns the current accent-nail cardinality. Per-nail
// effect pricing depends on this value at evaluation time.
func (c *StudioConfig) AccentNailCount() int {
	return len(c.AccentNails)
}
