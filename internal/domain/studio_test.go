package domain

import (
	"reflect"
	"testing"
)

func TestFingerIndexValid(t *testing.T) {
	for i := 0; i < NailCount; i++ {
		if !FingerIndex(i).Valid() {
			t.Fatalf("finger %d should be valid", i)
		}
	}
	for _, f := range []FingerIndex{-1, 10, 42} {
		if f.Valid() {
			t.Fatalf("finger %d should be invalid", f)
		}
	}
}

func TestHandsPartitionAllFingers(t *testing.T) {
	seen := make(map[FingerIndex]bool)
	for _, f := range append(append([]FingerIndex{}, LeftHandFingers...), RightHandFingers...) {
		if seen[f] {
			t.Fatalf("finger %d appears on both hands", f)
		}
		seen[f] = true
	}
	if len(seen) != NailCount {
		t.Fatalf("hands cover %d fingers, want %d", len(seen), NailCount)
	}
}

func TestFingerSetSorted(t *testing.T) {
	set := NewFingerSet(7, 0, 3)
	if got := set.Sorted(); !reflect.DeepEqual(got, []FingerIndex{0, 3, 7}) {
		t.Fatalf("Sorted() = %v", got)
	}
}

func TestStudioConfigCloneIsDeep(t *testing.T) {
	finish := FinishGlossy
	cfg := NewStudioConfig()
	cfg.Shape = ShapeAlmond
	cfg.Palette = &ColorPalette{Name: "pearl", Colors: []string{"#eee"}}
	cfg.NailColors[1] = "#abc"
	cfg.HasAccentNails = true
	cfg.AccentNails[4] = struct{}{}
	cfg.AccentConfigs[4] = AccentConfig{Finish: &finish}
	cfg.Effects[EffectChrome] = ScopeAllNails
	cfg.Artwork[ArtStars] = NewFingerSet(2)
	cfg.CustomArtwork = &CustomArtworkRequest{
		Description:       "waves",
		InspirationImages: []string{"a.jpg"},
		Nails:             NewFingerSet(8),
	}

	clone := cfg.Clone()

	clone.NailColors[1] = "#zzz"
	clone.AccentNails[9] = struct{}{}
	delete(clone.Effects, EffectChrome)
	clone.Artwork[ArtStars][5] = struct{}{}
	clone.Palette.Colors[0] = "#000"
	clone.CustomArtwork.InspirationImages[0] = "b.jpg"
	clone.CustomArtwork.Nails[0] = struct{}{}
	*clone.AccentConfigs[4].Finish = FinishMatte

	if cfg.NailColors[1] != "#abc" {
		t.Fatal("nail colors shared between clone and original")
	}
	if cfg.AccentNails.Has(9) {
		t.Fatal("accent set shared between clone and original")
	}
	if _, ok := cfg.Effects[EffectChrome]; !ok {
		t.Fatal("effects shared between clone and original")
	}
	if cfg.Artwork[ArtStars].Has(5) {
		t.Fatal("artwork nails shared between clone and original")
	}
	if cfg.Palette.Colors[0] != "#eee" {
		t.Fatal("palette colors shared between clone and original")
	}
	if cfg.CustomArtwork.InspirationImages[0] != "a.jpg" {
		t.Fatal("inspiration images shared between clone and original")
	}
	if cfg.CustomArtwork.Nails.Has(0) {
		t.Fatal("custom artwork nails shared between clone and original")
	}
	if *cfg.AccentConfigs[4].Finish != FinishGlossy {
		t.Fatal("accent finish pointer shared between clone and original")
	}
}

func TestEnumValidity(t *testing.T) {
	if ShapeType("round").Valid() {
		t.Fatal("unknown shape reported valid")
	}
	if !LengthExtraLong.Valid() {
		t.Fatal("extra-long should be valid")
	}
	if EffectScope("some").Valid() {
		t.Fatal("unknown scope reported valid")
	}
	if !RhinestoneNone.Valid() || !CharmNone.Valid() {
		t.Fatal("none tiers should be valid")
	}
	if NailArtType("dots").Valid() {
		t.Fatal("unknown art type reported valid")
	}
}
