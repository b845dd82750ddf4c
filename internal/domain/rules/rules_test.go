package rules

import "testing"

func TestLoyaltyThresholdBoundsAndMonotonicity(t *testing.T) {
	prev := 1000
	for chaos := 0; chaos <= 100; chaos++ {
		got := LoyaltyThreshold(chaos)
		if got < 65 || got > 87 {
			t.Fatalf("chaos %d: threshold %d out of [65,87]", chaos, got)
		}
		if got > prev {
			t.Fatalf("chaos %d: threshold %d increased from %d", chaos, got, prev)
		}
		prev = got
	}
	if LoyaltyThreshold(0) != 87 {
		t.Errorf("Expected threshold 87 at zero chaos, got %d", LoyaltyThreshold(0))
	}
	if LoyaltyThreshold(100) != 65 {
		t.Errorf("Expected threshold 65 at max chaos, got %d", LoyaltyThreshold(100))
	}
}

func TestMinimumScoreOnlyWhenBothLow(t *testing.T) {
	if got := MinimumScore(29, 49); got != ((30-29)+(50-49))*5 {
		t.Errorf("Expected minimum score 10 at chaos 29 loyalty 49, got %d", got)
	}
	if got := MinimumScore(0, 0); got != 400 {
		t.Errorf("Expected minimum score 400 at zero chaos and loyalty, got %d", got)
	}
	if got := MinimumScore(30, 20); got != 0 {
		t.Errorf("Chaos at 30 should require no minimum score, got %d", got)
	}
	if got := MinimumScore(10, 50); got != 0 {
		t.Errorf("Loyalty at 50 should require no minimum score, got %d", got)
	}
}

func TestInterestWorkedExample(t *testing.T) {
	// Debt 1000, max chaos, minimum valuation: rate 0.08+0.05+0.03 = 0.16.
	rate := EffectiveInterestRate(0.08, 100, 50)
	if diff := rate - 0.16; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("Expected rate 0.16, got %v", rate)
	}
	if got := Interest(1000, rate); got != 160 {
		t.Errorf("Expected interest 160 on debt 1000, got %d", got)
	}
}

func TestInterestRateAboveParValuation(t *testing.T) {
	rate := EffectiveInterestRate(0.08, 0, 150)
	if diff := rate - 0.08; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Valuation above par should grant no discount, got %v", rate)
	}
}

func TestInterestZeroWhenNoDebt(t *testing.T) {
	if got := Interest(0, 0.35); got != 0 {
		t.Errorf("Expected zero interest without debt, got %d", got)
	}
	if got := Interest(-500, 0.35); got != 0 {
		t.Errorf("Expected zero interest on negative debt input, got %d", got)
	}
}

func TestDebtLoyaltyPenalty(t *testing.T) {
	if got := DebtLoyaltyPenalty(2000); got != 0 {
		t.Errorf("Expected no penalty at the floor, got %d", got)
	}
	if got := DebtLoyaltyPenalty(4500); got != 2 {
		t.Errorf("Expected penalty 2 at debt 4500, got %d", got)
	}
	if got := DebtLoyaltyPenalty(50000); got != DebtLoyaltyPenaltyCap {
		t.Errorf("Expected penalty capped at %d, got %d", DebtLoyaltyPenaltyCap, got)
	}
}

func TestAdjustedCost(t *testing.T) {
	cases := []struct {
		base, valuation, support, want int
	}{
		{100, 100, 50, 100},
		{100, 50, 50, 200},
		{100, 150, 50, 67},
		{100, 100, 29, 150},
		{100, 50, 10, 300},
	}
	for _, c := range cases {
		if got := AdjustedCost(c.base, c.valuation, c.support); got != c.want {
			t.Errorf("AdjustedCost(%d,%d,%d) = %d, want %d", c.base, c.valuation, c.support, got, c.want)
		}
	}
}

func TestBlindScoreStaysInRange(t *testing.T) {
	rolls := []float64{0, 0.25, 0.5, 0.75, 0.999}
	for chaos := 0; chaos <= 100; chaos += 25 {
		for loyalty := 0; loyalty <= 100; loyalty += 25 {
			for _, roll := range rolls {
				got := BlindScore(chaos, 50, loyalty, roll)
				if got < 0 || got > 100 {
					t.Fatalf("BlindScore(%d,50,%d,%v) = %d out of [0,100]", chaos, loyalty, roll, got)
				}
			}
		}
	}
}

func TestBlindScorePenaltyApplied(t *testing.T) {
	// Zero stats, zero roll: base 0, random 0, minus penalty, clamped to 0.
	if got := BlindScore(0, 0, 0, 0); got != 0 {
		t.Errorf("Expected floor score 0, got %d", got)
	}
	// Deterministic part only: 25 + 10 + 13 - 5 = 43.
	if got := BlindScore(100, 50, 65, 0); got != 43 {
		t.Errorf("Expected blind score 43, got %d", got)
	}
}
