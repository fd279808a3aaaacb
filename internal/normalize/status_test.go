package normalize

import (
	"testing"

	"github.com/DRSN-tech/automarket-backend/internal/domain"
)

func TestResolveStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  RawRecord
		want domain.ListingStatus
	}{
		{
			name: "empty record falls back to default",
			raw:  RawRecord{},
			want: DefaultStatus,
		},
		{
			name: "nil record falls back to default",
			raw:  nil,
			want: DefaultStatus,
		},
		{
			name: "normalized status field wins",
			raw:  RawRecord{"status": "archived", "isPublished": true},
			want: domain.StatusArchived,
		},
		{
			name: "normalized status is case-insensitive",
			raw:  RawRecord{"status": "Published"},
			want: domain.StatusPublished,
		},
		{
			name: "external three-value representation maps through the fixed table",
			raw:  RawRecord{"publicationStatus": "HIDDEN"},
			want: domain.StatusArchived,
		},
		{
			name: "external representation accepts lower case",
			raw:  RawRecord{"publication_status": "draft"},
			want: domain.StatusDraft,
		},
		{
			name: "isHidden wins over isPublished",
			raw:  RawRecord{"isHidden": true, "isPublished": true},
			want: domain.StatusArchived,
		},
		{
			name: "isPublished true gives published",
			raw:  RawRecord{"isPublished": true},
			want: domain.StatusPublished,
		},
		{
			name: "isPublished false gives draft",
			raw:  RawRecord{"is_published": false},
			want: domain.StatusDraft,
		},
		{
			name: "isHidden false alone gives published",
			raw:  RawRecord{"isHidden": false},
			want: domain.StatusPublished,
		},
		{
			name: "string boolean flags are tolerated",
			raw:  RawRecord{"isHidden": "true"},
			want: domain.StatusArchived,
		},
		{
			name: "legacy alias paused maps to archived",
			raw:  RawRecord{"state": "Paused"},
			want: domain.StatusArchived,
		},
		{
			name: "legacy alias with spaces maps through underscore normalization",
			raw:  RawRecord{"adStatus": "In Progress"},
			want: domain.StatusDraft,
		},
		{
			name: "unknown status field falls through to legacy alias extractor",
			raw:  RawRecord{"status": "on_sale"},
			want: domain.StatusPublished,
		},
		{
			name: "content heuristic publishes identified listing with photo",
			raw: RawRecord{
				"brand":  "Lada",
				"model":  "Vesta",
				"images": []any{"https://cdn.example.com/1.jpg"},
			},
			want: domain.StatusPublished,
		},
		{
			name: "content heuristic without photos gives draft",
			raw:  RawRecord{"brand": "Lada", "model": "Vesta"},
			want: domain.StatusDraft,
		},
		{
			name: "content heuristic without model gives draft",
			raw:  RawRecord{"brand": "Lada", "images": []any{"https://cdn.example.com/1.jpg"}},
			want: domain.StatusDraft,
		},
		{
			name: "unrecognized garbage falls back to draft via heuristic",
			raw:  RawRecord{"something": 42},
			want: domain.StatusDraft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolveStatus(tt.raw); got != tt.want {
				t.Errorf("ResolveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveStatusIsPure(t *testing.T) {
	t.Parallel()

	raw := RawRecord{"isHidden": true, "status": "junk"}
	first := ResolveStatus(raw)
	second := ResolveStatus(raw)

	if first != second {
		t.Errorf("repeated calls disagree: %q vs %q", first, second)
	}
	if len(raw) != 2 {
		t.Errorf("input record was mutated: %v", raw)
	}
}
