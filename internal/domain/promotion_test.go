package domain

import (
	"testing"
	"time"
)

func ts(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestMergeWindow(t *testing.T) {
	t.Parallel()

	t.Run("nil current takes the new expiry", func(t *testing.T) {
		t.Parallel()

		got := MergeWindow(nil, ts(10))
		if got == nil || !got.Equal(ts(10)) {
			t.Errorf("MergeWindow(nil) = %v, want %v", got, ts(10))
		}
	})

	t.Run("later expiry extends the window", func(t *testing.T) {
		t.Parallel()

		current := ts(10)
		got := MergeWindow(&current, ts(20))
		if !got.Equal(ts(20)) {
			t.Errorf("MergeWindow = %v, want %v", got, ts(20))
		}
	})

	t.Run("earlier expiry never shortens the window", func(t *testing.T) {
		t.Parallel()

		current := ts(20)
		got := MergeWindow(&current, ts(10))
		if !got.Equal(ts(20)) {
			t.Errorf("MergeWindow = %v, want %v", got, ts(20))
		}
	})

	t.Run("equal expiry is idempotent", func(t *testing.T) {
		t.Parallel()

		current := ts(10)
		got := MergeWindow(&current, ts(10))
		if !got.Equal(ts(10)) {
			t.Errorf("MergeWindow = %v, want %v", got, ts(10))
		}
	})
}

func TestCarPromotionStateApply(t *testing.T) {
	t.Parallel()

	t.Run("boost and highlight keep independent windows", func(t *testing.T) {
		t.Parallel()

		var s CarPromotionState
		s.Apply(ProductBoost, ts(10))
		s.Apply(ProductHighlight, ts(20))

		if s.BoostUntil == nil || !s.BoostUntil.Equal(ts(10)) {
			t.Errorf("BoostUntil = %v, want %v", s.BoostUntil, ts(10))
		}
		if s.HighlightUntil == nil || !s.HighlightUntil.Equal(ts(20)) {
			t.Errorf("HighlightUntil = %v, want %v", s.HighlightUntil, ts(20))
		}
	})

	t.Run("bundle extends both windows with one expiry", func(t *testing.T) {
		t.Parallel()

		var s CarPromotionState
		s.Apply(ProductBoost, ts(10))
		s.Apply(ProductBundle, ts(15))

		if s.BoostUntil == nil || !s.BoostUntil.Equal(ts(15)) {
			t.Errorf("BoostUntil = %v, want %v", s.BoostUntil, ts(15))
		}
		if s.HighlightUntil == nil || !s.HighlightUntil.Equal(ts(15)) {
			t.Errorf("HighlightUntil = %v, want %v", s.HighlightUntil, ts(15))
		}
	})

	t.Run("media plus sets the flag without touching windows", func(t *testing.T) {
		t.Parallel()

		var s CarPromotionState
		s.Apply(ProductMediaPlus, ts(10))

		if !s.MediaPlusEnabled {
			t.Error("MediaPlusEnabled = false, want true")
		}
		if s.BoostUntil != nil || s.HighlightUntil != nil || s.ExposurePlusUntil != nil {
			t.Error("media plus must not open any time window")
		}
	})

	t.Run("reapplying the same order does not extend past a single application", func(t *testing.T) {
		t.Parallel()

		var s CarPromotionState
		s.Apply(ProductExposurePlus, ts(10))
		s.Apply(ProductExposurePlus, ts(10))

		if !s.ExposurePlusUntil.Equal(ts(10)) {
			t.Errorf("ExposurePlusUntil = %v, want %v", s.ExposurePlusUntil, ts(10))
		}
	})
}

func TestCarPromotionStateHighlightLevel(t *testing.T) {
	t.Parallel()

	now := ts(15)
	boost := ts(20)
	highlight := ts(20)
	expired := ts(10)

	tests := []struct {
		name  string
		state CarPromotionState
		want  HighlightLevel
	}{
		{"no windows", CarPromotionState{}, HighlightNone},
		{"active highlight wins over active boost", CarPromotionState{BoostUntil: &boost, HighlightUntil: &highlight}, HighlightHighlight},
		{"active boost alone", CarPromotionState{BoostUntil: &boost}, HighlightBoost},
		{"expired highlight falls back to active boost", CarPromotionState{BoostUntil: &boost, HighlightUntil: &expired}, HighlightBoost},
		{"all windows expired", CarPromotionState{BoostUntil: &expired, HighlightUntil: &expired}, HighlightNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.state.HighlightLevel(now); got != tt.want {
				t.Errorf("HighlightLevel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccountPromotionStateApply(t *testing.T) {
	t.Parallel()

	t.Run("boost grants premium with badge and floor limit", func(t *testing.T) {
		t.Parallel()

		var s AccountPromotionState
		s.Apply(ProductBoost, ts(30))

		if !s.IsPremium || !s.ShowRecommendedBadge {
			t.Errorf("IsPremium = %v, ShowRecommendedBadge = %v, want both true", s.IsPremium, s.ShowRecommendedBadge)
		}
		if s.PremiumUntil == nil || !s.PremiumUntil.Equal(ts(30)) {
			t.Errorf("PremiumUntil = %v, want %v", s.PremiumUntil, ts(30))
		}
		if s.MaxFeaturedCars != FeaturedCarsFloor {
			t.Errorf("MaxFeaturedCars = %d, want %d", s.MaxFeaturedCars, FeaturedCarsFloor)
		}
	})

	t.Run("highlight grants featured strips without badge", func(t *testing.T) {
		t.Parallel()

		var s AccountPromotionState
		s.Apply(ProductHighlight, ts(30))

		if !s.FeaturedInStrips {
			t.Error("FeaturedInStrips = false, want true")
		}
		if s.ShowRecommendedBadge {
			t.Error("ShowRecommendedBadge = true, want false")
		}
	})

	t.Run("unbounded premium is never capped by a finite expiry", func(t *testing.T) {
		t.Parallel()

		s := AccountPromotionState{IsPremium: true}
		s.Apply(ProductBoost, ts(30))

		if s.PremiumUntil != nil {
			t.Errorf("PremiumUntil = %v, want nil for unbounded grant", s.PremiumUntil)
		}
	})

	t.Run("finite premium window only extends", func(t *testing.T) {
		t.Parallel()

		until := ts(30)
		s := AccountPromotionState{IsPremium: true, PremiumUntil: &until}
		s.Apply(ProductBundle, ts(20))

		if !s.PremiumUntil.Equal(ts(30)) {
			t.Errorf("PremiumUntil = %v, want %v", s.PremiumUntil, ts(30))
		}
	})

	t.Run("existing limit above the floor is kept", func(t *testing.T) {
		t.Parallel()

		s := AccountPromotionState{MaxFeaturedCars: 12}
		s.Apply(ProductHighlight, ts(30))

		if s.MaxFeaturedCars != 12 {
			t.Errorf("MaxFeaturedCars = %d, want 12", s.MaxFeaturedCars)
		}
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		t.Parallel()

		var s AccountPromotionState
		s.Apply(ProductMediaPlus, ts(30))

		if s.IsPremium || s.FeaturedInStrips || s.PremiumUntil != nil || s.MaxFeaturedCars != 0 {
			t.Errorf("state changed by unsupported product: %+v", s)
		}
	})
}
