package domain

import "testing"

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Lada", "lada"},
		{"Mercedes-Benz", "mercedes-benz"},
		{"  Land Rover  ", "land-rover"},
		{"Model 3", "model-3"},
		{"C++ Edition!!", "c-edition"},
		{"---", "unknown"},
		{"", "unknown"},
		{"УАЗ", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := Slug(tt.in); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestModelID(t *testing.T) {
	t.Parallel()

	if got := ModelID("Land Rover", "Range Rover Sport"); got != "land-rover:range-rover-sport" {
		t.Errorf("ModelID = %q", got)
	}
	// Одинаковые модели разных марок не сталкиваются
	if ModelID("BMW", "X5") == ModelID("Haval", "X5") {
		t.Error("model ids of different brands must differ")
	}
}

func TestStatusFromExternal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext    ExternalStatus
		want   ListingStatus
		wantOk bool
	}{
		{ExternalPublished, StatusPublished, true},
		{ExternalHidden, StatusArchived, true},
		{ExternalDraft, StatusDraft, true},
		{"ARCHIVED", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := StatusFromExternal(tt.ext)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("StatusFromExternal(%q) = (%q, %v), want (%q, %v)", tt.ext, got, ok, tt.want, tt.wantOk)
		}
	}
}
