package assets

import "testing"

func TestNewGrid_Defaults(t *testing.T) {
	g, err := NewGrid(GridParams{FeedPowerLimit: 10, PurchasePowerLimit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.FeedEfficiency != 1.0 || g.PurchaseEfficiency != 1.0 {
		t.Fatalf("expected default efficiencies of 1.0, got %v/%v", g.FeedEfficiency, g.PurchaseEfficiency)
	}
}

func TestNewGrid_NegativeLimitRejected(t *testing.T) {
	if _, err := NewGrid(GridParams{FeedPowerLimit: -1, PurchasePowerLimit: 10}); err == nil {
		t.Fatal("expected error for negative feed_power_limit")
	}
}

func TestGrid_String(t *testing.T) {
	g, _ := NewGrid(GridParams{FeedPowerLimit: 10, PurchasePowerLimit: 20})
	want := "Grid(feed_power_limit=10, purchase_power_limit=20, feed_efficiency=1, purchase_efficiency=1)"
	if got := g.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
