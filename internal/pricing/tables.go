package pricing

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
)

// EffectPrice prices one effect under both scopes. AllNails is a flat charge;
// PerNail is multiplied by the accent-nail count at evaluation time.
type EffectPrice struct {
	AllNails int64 `json:"all_nails"`
	PerNail  int64 `json:"per_nail"`
}

// NailArtPrice prices one predefined art type. Flat applies once when the
// selection is present (themed sets); PerNail is multiplied by the number of
// selected nails.
type NailArtPrice struct {
	PerNail int64 `json:"per_nail"`
	Flat    int64 `json:"flat"`
}

// PriceList holds every price constant the engine consumes, in minor units
// (cents). It is data, not behavior: lists may be swapped without touching
// engine logic.
type PriceList struct {
	Shapes             map[domain.ShapeType]int64      `json:"shapes"`
	Lengths            map[domain.LengthType]int64     `json:"lengths"`
	Finishes           map[domain.FinishType]int64     `json:"finishes"`
	AccentFinishChange int64                           `json:"accent_finish_change"`
	Effects            map[domain.EffectType]EffectPrice `json:"effects"`
	Rhinestones        map[domain.RhinestoneTier]int64 `json:"rhinestones"`
	Charms             map[domain.CharmTier]int64      `json:"charms"`
	NailArt            map[domain.NailArtType]NailArtPrice `json:"nail_art"`
}

// DefaultPriceList returns the catalog prices shipped with the service.
func DefaultPriceList() PriceList {
	return PriceList{
		Shapes: map[domain.ShapeType]int64{
			domain.ShapeAlmond:   800,
			domain.ShapeSquare:   0,
			domain.ShapeOval:     0,
			domain.ShapeCoffin:   800,
			domain.ShapeStiletto: 1000,
		},
		Lengths: map[domain.LengthType]int64{
			domain.LengthShort:     0,
			domain.LengthMedium:    0,
			domain.LengthLong:      400,
			domain.LengthExtraLong: 700,
		},
		Finishes: map[domain.FinishType]int64{
			domain.FinishGlossy: 0,
			domain.FinishMatte:  500,
		},
		AccentFinishChange: 300,
		Effects: map[domain.EffectType]EffectPrice{
			domain.EffectChrome:    {AllNails: 1200, PerNail: 600},
			domain.EffectGlitter:   {AllNails: 800, PerNail: 400},
			domain.EffectFrenchTip: {AllNails: 1000, PerNail: 500},
			domain.EffectCatEye:    {AllNails: 1400, PerNail: 700},
		},
		Rhinestones: map[domain.RhinestoneTier]int64{
			domain.RhinestoneNone:   0,
			domain.RhinestoneAccent: 600,
			domain.RhinestoneMedium: 1200,
			domain.RhinestoneFull:   2500,
		},
		Charms: map[domain.CharmTier]int64{
			domain.CharmNone:   0,
			domain.CharmSingle: 500,
			domain.CharmDuo:    900,
			domain.CharmFull:   1800,
		},
		NailArt: map[domain.NailArtType]NailArtPrice{
			domain.ArtHearts:    {PerNail: 300},
			domain.ArtStars:     {PerNail: 300},
			domain.ArtFlowers:   {PerNail: 450},
			domain.ArtAbstract:  {PerNail: 400},
			domain.ArtThemedSet: {Flat: 3500},
		},
	}
}

// LoadPriceList reads a PriceList from a JSON file. When path is empty, the
// default catalog is returned.
func LoadPriceList(path string) (PriceList, error) {
	if path == "" {
		return DefaultPriceList(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return PriceList{}, fmt.Errorf("pricing: read price list: %w", err)
	}
	var list PriceList
	if err := json.Unmarshal(data, &list); err != nil {
		return PriceList{}, fmt.Errorf("pricing: parse price list: %w", err)
	}
	return list, nil
}
