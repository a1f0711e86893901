package studio

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/pricing"
)

// The in-memory configuration uses sets and maps freely; none of that
// survives a JSON boundary. CustomizationData is the single normalized form
// every collection crosses persistence in: plain records and lists, sorted by
// finger index so the serialized bytes are deterministic for a given
// configuration.

// NailColorEntry is one explicit per-nail color.
type NailColorEntry struct {
	Finger int    `json:"finger"`
	Color  string `json:"color"`
}

// AccentConfigEntry is one accent nail's finish override.
type AccentConfigEntry struct {
	Finger int    `json:"finger"`
	Finish string `json:"finish,omitempty"`
}

// EffectEntry is one applied effect.
type EffectEntry struct {
	Type  string `json:"type"`
	Scope string `json:"scope"`
}

// ArtworkEntry is one predefined art selection.
type ArtworkEntry struct {
	Type  string `json:"type"`
	Nails []int  `json:"nails"`
}

// PaletteData is the serialized color palette.
type PaletteData struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// CustomArtworkData is the serialized custom artwork request.
type CustomArtworkData struct {
	Description       string   `json:"description"`
	InspirationImages []string `json:"inspiration_images"`
	Nails             []int    `json:"nails"`
}

// CustomizationData is the loss-free serialized form of a StudioConfig. Every
// field the pricing engine consumes is present, so an order can be
// reconstructed for support and fulfillment.
type CustomizationData struct {
	Shape            string              `json:"shape,omitempty"`
	Length           string              `json:"length,omitempty"`
	BaseFinish       string              `json:"base_finish,omitempty"`
	Palette          *PaletteData        `json:"palette,omitempty"`
	NailColors       []NailColorEntry    `json:"nail_colors,omitempty"`
	HasAccentNails   bool                `json:"has_accent_nails"`
	AccentNails      []int               `json:"accent_nails,omitempty"`
	AccentConfigs    []AccentConfigEntry `json:"accent_configs,omitempty"`
	Effects          []EffectEntry       `json:"effects,omitempty"`
	RhinestoneTier   string              `json:"rhinestone_tier"`
	CharmTier        string              `json:"charm_tier"`
	CharmPreferences string              `json:"charm_preferences,omitempty"`
	Artwork          []ArtworkEntry      `json:"artwork,omitempty"`
	CustomArtwork    *CustomArtworkData  `json:"custom_artwork,omitempty"`
}

// Normalize converts a configuration snapshot into its serialized form.
func Normalize(cfg *domain.StudioConfig) CustomizationData {
	data := CustomizationData{
		Shape:            string(cfg.Shape),
		Length:           string(cfg.Length),
		BaseFinish:       string(cfg.BaseFinish),
		HasAccentNails:   cfg.HasAccentNails,
		AccentNails:      fingersToInts(cfg.AccentNails.Sorted()),
		RhinestoneTier:   string(cfg.RhinestoneTier),
		CharmTier:        string(cfg.CharmTier),
		CharmPreferences: cfg.CharmPreferences,
	}
	if cfg.Palette != nil {
		data.Palette = &PaletteData{Name: cfg.Palette.Name, Colors: append([]string(nil), cfg.Palette.Colors...)}
	}
	for _, finger := range sortedFingers(cfg.NailColors) {
		data.NailColors = append(data.NailColors, NailColorEntry{Finger: int(finger), Color: cfg.NailColors[finger]})
	}
	for _, finger := range sortedConfigFingers(cfg.AccentConfigs) {
		entry := AccentConfigEntry{Finger: int(finger)}
		if finish := cfg.AccentConfigs[finger].Finish; finish != nil {
			entry.Finish = string(*finish)
		}
		data.AccentConfigs = append(data.AccentConfigs, entry)
	}
	for _, effectType := range sortedEffectKeys(cfg.Effects) {
		data.Effects = append(data.Effects, EffectEntry{Type: string(effectType), Scope: string(cfg.Effects[effectType])})
	}
	for _, artType := range sortedArtKeys(cfg.Artwork) {
		data.Artwork = append(data.Artwork, ArtworkEntry{Type: string(artType), Nails: fingersToInts(cfg.Artwork[artType].Sorted())})
	}
	if cfg.CustomArtwork != nil {
		data.CustomArtwork = &CustomArtworkData{
			Description:       cfg.CustomArtwork.Description,
			InspirationImages: append([]string(nil), cfg.CustomArtwork.InspirationImages...),
			Nails:             fingersToInts(cfg.CustomArtwork.Nails.Sorted()),
		}
	}
	return data
}

// Restore rebuilds an in-memory configuration from its serialized form. A
// restored configuration prices identically to the one it was normalized
// from.
func (d CustomizationData) Restore() *domain.StudioConfig {
	cfg := domain.NewStudioConfig()
	cfg.Shape = domain.ShapeType(d.Shape)
	cfg.Length = domain.LengthType(d.Length)
	cfg.BaseFinish = domain.FinishType(d.BaseFinish)
	cfg.HasAccentNails = d.HasAccentNails
	cfg.CharmPreferences = d.CharmPreferences
	if d.RhinestoneTier != "" {
		cfg.RhinestoneTier = domain.RhinestoneTier(d.RhinestoneTier)
	}
	if d.CharmTier != "" {
		cfg.CharmTier = domain.CharmTier(d.CharmTier)
	}
	if d.Palette != nil {
		cfg.Palette = &domain.ColorPalette{Name: d.Palette.Name, Colors: append([]string(nil), d.Palette.Colors...)}
	}
	for _, entry := range d.NailColors {
		cfg.NailColors[domain.FingerIndex(entry.Finger)] = entry.Color
	}
	for _, finger := range d.AccentNails {
		cfg.AccentNails[domain.FingerIndex(finger)] = struct{}{}
	}
	for _, entry := range d.AccentConfigs {
		ac := domain.AccentConfig{}
		if entry.Finish != "" {
			finish := domain.FinishType(entry.Finish)
			ac.Finish = &finish
		}
		cfg.AccentConfigs[domain.FingerIndex(entry.Finger)] = ac
	}
	for _, entry := range d.Effects {
		cfg.Effects[domain.EffectType(entry.Type)] = domain.EffectScope(entry.Scope)
	}
	for _, entry := range d.Artwork {
		cfg.Artwork[domain.NailArtType(entry.Type)] = domain.NewFingerSet(intsToFingers(entry.Nails)...)
	}
	if d.CustomArtwork != nil {
		cfg.CustomArtwork = &domain.CustomArtworkRequest{
			Description:       d.CustomArtwork.Description,
			InspirationImages: append([]string(nil), d.CustomArtwork.InspirationImages...),
			Nails:             domain.NewFingerSet(intsToFingers(d.CustomArtwork.Nails)...),
		}
	}
	return cfg
}

// SelectedOption is one name/value pair on a cart line item.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CartLineItem is the priced-path output consumed by the cart collaborator.
// UnitPriceCents is the exact engine subtotal at serialization time.
type CartLineItem struct {
	VariantID         string            `json:"variant_id"`
	Title             string            `json:"title"`
	Quantity          int               `json:"quantity"`
	UnitPriceCents    int64             `json:"unit_price_cents"`
	UnitPrice         string            `json:"unit_price"`
	SelectedOptions   []SelectedOption  `json:"selected_options"`
	CustomizationData CustomizationData `json:"customization_data"`
}

// QuotePayload is the quote-path output submitted to the order-creation
// service. Inspiration images are raw pre-upload references; the image
// storage collaborator resolves them before final submission.
type QuotePayload struct {
	ArtworkType         domain.ArtworkType `json:"artwork_type"`
	EstimatedPriceCents int64              `json:"estimated_price_cents"`
	RequiresQuote       bool               `json:"requires_quote"`
	Description         string             `json:"description"`
	InspirationImages   []string           `json:"inspiration_images"`
	Configuration       CustomizationData  `json:"configuration"`
}

// BuildCartLineItem serializes a priced configuration into a cart line item.
// Configurations in quote mode cannot be carted and return ErrQuoteRequired.
func BuildCartLineItem(cfg *domain.StudioConfig, bd pricing.Breakdown) (CartLineItem, error) {
	if bd.HasQuoteItems {
		return CartLineItem{}, domain.ErrQuoteRequired
	}
	data := Normalize(cfg)
	return CartLineItem{
		VariantID:         variantID(data),
		Title:             variantTitle(cfg),
		Quantity:          1,
		UnitPriceCents:    bd.SubtotalCents,
		UnitPrice:         pricing.FormatCents(bd.SubtotalCents),
		SelectedOptions:   selectedOptions(cfg),
		CustomizationData: data,
	}, nil
}

// BuildQuotePayload serializes a quote-mode configuration into an
// order-creation request. Configurations without custom artwork return
// ErrNoCustomArtwork.
func BuildQuotePayload(cfg *domain.StudioConfig, bd pricing.Breakdown) (QuotePayload, error) {
	if cfg.CustomArtwork == nil {
		return QuotePayload{}, domain.ErrNoCustomArtwork
	}
	return QuotePayload{
		ArtworkType:         ArtworkType(cfg),
		EstimatedPriceCents: bd.SubtotalCents,
		RequiresQuote:       true,
		Description:         cfg.CustomArtwork.Description,
		InspirationImages:   append([]string(nil), cfg.CustomArtwork.InspirationImages...),
		Configuration:       Normalize(cfg),
	}, nil
}

// ArtworkType classifies the configuration's artwork for the order payload.
func ArtworkType(cfg *domain.StudioConfig) domain.ArtworkType {
	hasPredefined := len(cfg.Artwork) > 0
	hasCustom := cfg.CustomArtwork != nil
	switch {
	case hasPredefined && hasCustom:
		return domain.ArtworkBoth
	case hasCustom:
		return domain.ArtworkCustom
	case hasPredefined:
		return domain.ArtworkPredefined
	}
	return domain.ArtworkNone
}

// variantID derives a stable cart variant identifier from the normalized
// configuration bytes. Two differently-configured sets never share an id;
// identical configurations map to the same one.
func variantID(data CustomizationData) string {
	raw, _ := json.Marshal(data)
	sum := sha256.Sum256(raw)
	return "custom-" + hex.EncodeToString(sum[:8])
}

func variantTitle(cfg *domain.StudioConfig) string {
	parts := []string{"Custom Press-On Set"}
	if cfg.Shape != "" {
		parts = append(parts, pricing.Humanize(string(cfg.Shape)))
	}
	if cfg.Length != "" {
		parts = append(parts, pricing.Humanize(string(cfg.Length)))
	}
	if cfg.Palette != nil && cfg.Palette.Name != "" {
		parts = append(parts, pricing.Humanize(cfg.Palette.Name))
	}
	return strings.Join(parts, " / ")
}

func selectedOptions(cfg *domain.StudioConfig) []SelectedOption {
	opts := []SelectedOption{}
	if cfg.Shape != "" {
		opts = append(opts, SelectedOption{Name: "Shape", Value: pricing.Humanize(string(cfg.Shape))})
	}
	if cfg.Length != "" {
		opts = append(opts, SelectedOption{Name: "Length", Value: pricing.Humanize(string(cfg.Length))})
	}
	if cfg.BaseFinish != "" {
		opts = append(opts, SelectedOption{Name: "Finish", Value: pricing.Humanize(string(cfg.BaseFinish))})
	}
	if cfg.Palette != nil && cfg.Palette.Name != "" {
		opts = append(opts, SelectedOption{Name: "Palette", Value: pricing.Humanize(cfg.Palette.Name)})
	}
	if cfg.HasAccentNails {
		opts = append(opts, SelectedOption{Name: "Accent Nails", Value: strconv.Itoa(cfg.AccentNailCount())})
	}
	for _, effectType := range sortedEffectKeys(cfg.Effects) {
		opts = append(opts, SelectedOption{
			Name:  pricing.Humanize(string(effectType)) + " Effect",
			Value: pricing.Humanize(string(cfg.Effects[effectType])),
		})
	}
	if cfg.RhinestoneTier != domain.RhinestoneNone && cfg.RhinestoneTier != "" {
		opts = append(opts, SelectedOption{Name: "Rhinestones", Value: pricing.Humanize(string(cfg.RhinestoneTier))})
	}
	if cfg.CharmTier != domain.CharmNone && cfg.CharmTier != "" {
		opts = append(opts, SelectedOption{Name: "Charms", Value: pricing.Humanize(string(cfg.CharmTier))})
	}
	for _, artType := range sortedArtKeys(cfg.Artwork) {
		opts = append(opts, SelectedOption{
			Name:  "Nail Art",
			Value: fmt.Sprintf("%s (%d nails)", pricing.Humanize(string(artType)), len(cfg.Artwork[artType])),
		})
	}
	return opts
}

func fingersToInts(fingers []domain.FingerIndex) []int {
	if len(fingers) == 0 {
		return nil
	}
	out := make([]int, len(fingers))
	for i, f := range fingers {
		out[i] = int(f)
	}
	return out
}

func intsToFingers(values []int) []domain.FingerIndex {
	out := make([]domain.FingerIndex, len(values))
	for i, v := range values {
		out[i] = domain.FingerIndex(v)
	}
	return out
}

func sortedFingers(m map[domain.FingerIndex]string) []domain.FingerIndex {
	out := make([]domain.FingerIndex, 0, len(m))
	for f := range m {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedConfigFingers(m map[domain.FingerIndex]domain.AccentConfig) []domain.FingerIndex {
	out := make([]domain.FingerIndex, 0, len(m))
	for f := range m {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedEffectKeys(m map[domain.EffectType]domain.EffectScope) []domain.EffectType {
	out := make([]domain.EffectType, 0, len(m))
	for t := range m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedArtKeys(m map[domain.NailArtType]domain.FingerSet) []domain.NailArtType {
	out := make([]domain.NailArtType, 0, len(m))
	for t := range m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
