package slug_test

import (
	"testing"

	"property-listing/pkg/slug"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"empty", "", ""},
		{"sentence with punctuation", "Luxury Apartment in Downtown!!", "luxury-apartment-in-downtown"},
		{"surrounding whitespace", "   Cozy Country House  ", "cozy-country-house"},
		{"mixed case and digits", "Modern Condo 2.0", "modern-condo-2-0"},
		{"non ascii collapses", "Café — Über Loft", "caf-ber-loft"},
		{"leading and trailing symbols", "--Studio--", "studio"},
		{"already a slug", "affordable-studio-apartment", "affordable-studio-apartment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slug.Generate(tt.title); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestGenerateOnlyPunctuation(t *testing.T) {
	for _, title := range []string{" ", "\t\n", "!!!", " - _ . ", "¡¿?!", "***"} {
		if got := slug.Generate(title); got != "" {
			t.Errorf("Generate(%q) = %q, want empty", title, got)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	titles := []string{
		"Luxury Apartment in Downtown!!",
		"  Spaces   everywhere ",
		"ALL CAPS 123",
		"trailing-dash-",
		"ünïcödé",
		"",
	}
	for _, title := range titles {
		once := slug.Generate(title)
		if twice := slug.Generate(once); twice != once {
			t.Errorf("Generate not idempotent for %q: %q then %q", title, once, twice)
		}
	}
}

func TestNeedsRegeneration(t *testing.T) {
	if slug.NeedsRegeneration("Same", "Same") {
		t.Error("expected no regeneration for an unchanged title")
	}
	if !slug.NeedsRegeneration("New", "Old") {
		t.Error("expected regeneration for a changed title")
	}
}
