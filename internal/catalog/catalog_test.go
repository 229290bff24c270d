package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestContains_ExactMatch(t *testing.T) {
	if !Contains("PPF") {
		t.Fatalf("expected PPF to be offered")
	}
	if !Contains("Custom Combo Plan") {
		t.Fatalf("expected Custom Combo Plan to be offered")
	}
	// Membership is case-sensitive.
	if Contains("ppf") {
		t.Fatalf("expected ppf to be rejected")
	}
	if Contains("Oil Change") {
		t.Fatalf("expected Oil Change to be rejected")
	}
}

func TestQuote_SumsSelection(t *testing.T) {
	got := Quote([]string{"PPF", "Window Tint"})
	want := decimal.RequireFromString("1748.00")
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestQuote_ConsultationPricedServiceAddsNothing(t *testing.T) {
	base := Quote([]string{"Exterior Wash"})
	withCombo := Quote([]string{"Exterior Wash", "Custom Combo Plan"})
	if !base.Equal(withCombo) {
		t.Fatalf("expected %s, got %s", base, withCombo)
	}
}
