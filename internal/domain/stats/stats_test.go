package stats

import "testing"

func TestApplyClampsEveryBoundedField(t *testing.T) {
	v := Initial()

	v.Apply(Effect{Health: 500, Loyalty: -500, Chaos: 500, CoinValuation: 500})

	if v.Health != 100 {
		t.Errorf("Expected health clamped to 100, got %d", v.Health)
	}
	if v.Loyalty != 0 {
		t.Errorf("Expected loyalty clamped to 0, got %d", v.Loyalty)
	}
	if v.Chaos != 100 {
		t.Errorf("Expected chaos clamped to 100, got %d", v.Chaos)
	}
	if v.CoinValuation != ValuationMax {
		t.Errorf("Expected valuation clamped to %d, got %d", ValuationMax, v.CoinValuation)
	}
}

func TestApplyReportsActualDelta(t *testing.T) {
	v := Initial() // loyalty 65

	actual := v.Apply(Effect{Loyalty: 50})

	if v.Loyalty != 100 {
		t.Fatalf("Expected loyalty 100, got %d", v.Loyalty)
	}
	if actual.Loyalty != 35 {
		t.Errorf("Expected actual loyalty delta 35 after clamp, got %d", actual.Loyalty)
	}
}

func TestMoneyGoesNegative(t *testing.T) {
	v := Initial()

	actual := v.Apply(Effect{Money: -2000})

	if v.Money != -500 {
		t.Errorf("Expected money -500, got %d", v.Money)
	}
	if actual.Money != -2000 {
		t.Errorf("Money is unbounded; expected full delta -2000, got %d", actual.Money)
	}
	if v.Debt() != 500 {
		t.Errorf("Expected derived debt 500, got %d", v.Debt())
	}
}

func TestClampHoldsAfterEverySingleApplication(t *testing.T) {
	v := Initial()
	deltas := []Effect{
		{Chaos: 90}, {Chaos: 90}, {Chaos: -300}, {Support: -100},
		{Health: -45}, {Health: -45}, {CoinValuation: -200}, {CoinValuation: 37},
	}

	for i, d := range deltas {
		v.Apply(d)
		if v.Chaos < 0 || v.Chaos > 100 || v.Support < 0 || v.Support > 100 ||
			v.Health < 0 || v.Health > 100 ||
			v.CoinValuation < ValuationMin || v.CoinValuation > ValuationMax {
			t.Fatalf("Bounds violated after application %d: %+v", i, v)
		}
	}
}

func TestHealthTiers(t *testing.T) {
	cases := []struct {
		health, tier, cards int
		mult                float64
	}{
		{100, 4, 4, 1.0},
		{76, 4, 4, 1.0},
		{75, 3, 3, 1.5},
		{51, 3, 3, 1.5},
		{50, 2, 2, 2.0},
		{26, 2, 2, 2.0},
		{25, 1, 1, 3.0},
		{0, 1, 1, 3.0},
	}

	for _, c := range cases {
		v := Vector{Health: c.health}
		if v.Tier() != c.tier {
			t.Errorf("health %d: expected tier %d, got %d", c.health, c.tier, v.Tier())
		}
		if v.MaxCards() != c.cards {
			t.Errorf("health %d: expected %d cards, got %d", c.health, c.cards, v.MaxCards())
		}
		if v.ResearchMultiplier() != c.mult {
			t.Errorf("health %d: expected multiplier %v, got %v", c.health, c.mult, v.ResearchMultiplier())
		}
	}
}
