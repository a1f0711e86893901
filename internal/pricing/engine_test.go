package pricing

import (
	"reflect"
	"testing"

	"github.com/cashmoneyrick/bridal-nail-studio-sub000/internal/domain"
)

func glossy() *domain.FinishType {
	f := domain.FinishGlossy
	return &f
}

func TestComputeEmptyConfiguration(t *testing.T) {
	engine := NewEngine(DefaultPriceList())

	bd := engine.Compute(domain.NewStudioConfig())

	if bd.SubtotalCents != 0 {
		t.Fatalf("subtotal = %d, want 0", bd.SubtotalCents)
	}
	if bd.HasQuoteItems {
		t.Fatal("empty configuration must not have quote items")
	}
	if len(bd.Items) != 0 {
		t.Fatalf("expected no line items, got %d", len(bd.Items))
	}
}

func TestComputeBaseSelections(t *testing.T) {
	engine := NewEngine(DefaultPriceList())
	cfg := domain.NewStudioConfig()
	cfg.Shape = domain.ShapeAlmond
	cfg.Length = domain.LengthMedium
	cfg.BaseFinish = domain.FinishMatte

	bd := engine.Compute(cfg)

	// almond 8.00 + medium 0.00 + matte 5.00
	if bd.SubtotalCents != 1300 {
		t.Fatalf("subtotal = %d, want 1300", bd.SubtotalCents)
	}
	if len(bd.Items) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(bd.Items))
	}
	if bd.Items[1].AmountCents != 0 {
		t.Fatalf("medium length should be included at 0, got %d", bd.Items[1].AmountCents)
	}
	if bd.Items[1].Display() != "Included" {
		t.Fatalf("zero-cost item display = %q, want Included", bd.Items[1].Display())
	}
}

func TestComputeAccentFinishChange(t *testing.T) {
	engine := NewEngine(DefaultPriceList())
	cfg := domain.NewStudioConfig()
	cfg.BaseFinish = domain.FinishMatte
	cfg.HasAccentNails = true
	cfg.AccentNails = domain.NewFingerSet(3, 7)
	cfg.AccentConfigs[3] = domain.AccentConfig{Finish: glossy()}

	bd := engine.Compute(cfg)

	changes := 0
	for _, item := range bd.Items {
		if item.Label == "Accent finish change" {
			changes++
			if item.AmountCents != 300 {
				t.Fatalf("accent finish change = %d, want 300", item.AmountCents)
			}
		}
	}
	if changes != 1 {
		t.Fatalf("expected exactly one accent finish change item, got %d", changes)
	}
}

func TestComputeAccentFinishMatchingBaseIsFree(t *testing.T) {
	engine := NewEngine(DefaultPriceList())
	cfg := domain.NewStudioConfig()
	cfg.BaseFinish = domain.FinishGlossy
	cfg.HasAccentNails = true
	cfg.AccentNails = domain.NewFingerSet(2)
	cfg.AccentConfigs[2] = domain.AccentConfig{Finish: glossy()}

	bd := engine.Compute(cfg)

	for _, item := range bd.Items {
		if item.Label == "Accent finish change" {
			t.Fatal("accent finish equal to the base finish must not be charged")
		}
	}
}

func TestComputeAccentScopedEffectFollowsAccentCount(t *testing.T) {
	engine := NewEngine(DefaultPriceList())
	cfg := domain.NewStudioConfig()
	cfg.HasAccentNails = true
	cfg.AccentNails = domain.NewFingerSet(1, 8)
	cfg.Effects[domain.EffectChrome] = domain.ScopeAccentsOnly

	bd := engine.Compute(cfg)
	if len(bd.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(bd.Items))
	}
	// chrome per nail 6.00 across 2 accent nails
	if bd.Items[0].AmountCents != 1200 {
		t.Fatalf("chrome accents amount = %d, want 1200", bd.Items[0].AmountCents)
	}

	// Dropping the accent flag empties the set; the application stays and
	// evaluates at zero nails.
	cfg.HasAccentNails = false
	cfg.AccentNails = domain.NewFingerSet()
	bd = engine.Compute(cfg)
	if len(bd.Items) != 1 {
		t.Fatalf("effect application must survive accent removal, got %d items", len(bd.Items))
	}
	if bd.Items[0].AmountCents != 0 {
		t.Fatalf("chrome amount with no accents = %d, want 0", bd.Items[0].AmountCents)
	}
}

func TestComputeCustomArtworkIsStructural(t *testing.T) {
	engine := NewEngine(DefaultPriceList())
	cfg := domain.NewStudioConfig()
	cfg.Shape = domain.ShapeAlmond
	cfg.CustomArtwork = &domain.CustomArtworkRequest{Nails: domain.NewFingerSet()}

	bd := engine.Compute(cfg)

	if !bd.HasQuoteItems {
		t.Fatal("empty custom artwork record must still trigger quote mode")
	}
	if bd.SubtotalCents != 800 {
		t.Fatalf("subtotal must exclude quote items: got %d, want 800", bd.SubtotalCents)
	}
	quoteItems := 0
	for _, item := range bd.Items {
		if item.QuoteRequired {
			quoteItems++
			if item.AmountCents != 0 {
				t.Fatalf("quote item amount = %d, want 0", item.AmountCents)
			}
		}
	}
	if quoteItems != 1 {
		t.Fatalf("expected exactly one quote item, got %d", quoteItems)
	}
}

func TestComputeTiersAndArtwork(t *testing.T) {
	engine := NewEngine(DefaultPriceList())
	cfg := domain.NewStudioConfig()
	cfg.RhinestoneTier = domain.RhinestoneMedium
	cfg.CharmTier = domain.CharmSingle
	cfg.Artwork[domain.ArtHearts] = domain.NewFingerSet(0, 4, 9)
	cfg.Artwork[domain.ArtThemedSet] = domain.FullFingerSet()

	bd := engine.Compute(cfg)

	// rhinestones 12.00 + charms 5.00 + hearts 3*3.00 + themed set 35.00
	want := int64(1200 + 500 + 900 + 3500)
	if bd.SubtotalCents != want {
		t.Fatalf("subtotal = %d, want %d", bd.SubtotalCents, want)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	engine := NewEngine(DefaultPriceList())
	cfg := domain.NewStudioConfig()
	cfg.Shape = domain.ShapeCoffin
	cfg.Length = domain.LengthExtraLong
	cfg.BaseFinish = domain.FinishMatte
	cfg.HasAccentNails = true
	cfg.AccentNails = domain.NewFingerSet(0, 5)
	cfg.AccentConfigs[0] = domain.AccentConfig{Finish: glossy()}
	cfg.Effects[domain.EffectGlitter] = domain.ScopeAllNails
	cfg.Effects[domain.EffectChrome] = domain.ScopeAccentsOnly
	cfg.RhinestoneTier = domain.RhinestoneFull
	cfg.Artwork[domain.ArtStars] = domain.NewFingerSet(2, 3)

	first := engine.Compute(cfg)
	second := engine.Compute(cfg)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("breakdowns differ:\n%#v\n%#v", first, second)
	}
}

func TestComputeMonotonicity(t *testing.T) {
	engine := NewEngine(DefaultPriceList())
	cfg := domain.NewStudioConfig()

	previous := engine.Compute(cfg).SubtotalCents

	steps := []func(){
		func() { cfg.Shape = domain.ShapeStiletto },
		func() { cfg.Length = domain.LengthLong },
		func() { cfg.BaseFinish = domain.FinishMatte },
		func() { cfg.Effects[domain.EffectFrenchTip] = domain.ScopeAllNails },
		func() { cfg.RhinestoneTier = domain.RhinestoneAccent },
		func() { cfg.CharmTier = domain.CharmDuo },
		func() { cfg.Artwork[domain.ArtFlowers] = domain.NewFingerSet(1, 2, 3) },
	}
	for i, step := range steps {
		step()
		subtotal := engine.Compute(cfg).SubtotalCents
		if subtotal < previous {
			t.Fatalf("step %d decreased subtotal: %d -> %d", i, previous, subtotal)
		}
		previous = subtotal
	}

	// Removing priced selections never increases the subtotal.
	delete(cfg.Artwork, domain.ArtFlowers)
	subtotal := engine.Compute(cfg).SubtotalCents
	if subtotal > previous {
		t.Fatalf("removal increased subtotal: %d -> %d", previous, subtotal)
	}
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1300, "13.00"},
		{123456, "1234.56"},
	}
	for _, tc := range tests {
		if got := FormatCents(tc.amount); got != tc.want {
			t.Fatalf("FormatCents(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"almond":     "Almond",
		"extra-long": "Extra Long",
		"french-tip": "French Tip",
		"themed-set": "Themed Set",
	}
	for in, want := range tests {
		if got := Humanize(in); got != want {
			t.Fatalf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}
