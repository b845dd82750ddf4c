package market

import "testing"

func TestBuyWeightedAverageCost(t *testing.T) {
	p := NewPortfolio()

	cost1, err := p.Buy("maga-media", 10, 50)
	if err != nil || cost1 != 500 {
		t.Fatalf("First buy: cost %d err %v", cost1, err)
	}
	cost2, err := p.Buy("maga-media", 10, 100)
	if err != nil || cost2 != 1000 {
		t.Fatalf("Second buy: cost %d err %v", cost2, err)
	}

	pos, ok := p.Position("maga-media")
	if !ok || pos.Shares != 20 {
		t.Fatalf("Expected 20 shares, got %+v", pos)
	}
	if pos.AvgCost != 75.0 {
		t.Errorf("Expected weighted average cost 75, got %v", pos.AvgCost)
	}
}

func TestSellAtEightyPercentWithRealizedPL(t *testing.T) {
	p := NewPortfolio()
	p.Buy("maga-media", 10, 50)

	// Price doubled; sell all at 80% of 100.
	proceeds, realized, err := p.Sell("maga-media", 10, 100)
	if err != nil {
		t.Fatalf("Sell failed: %v", err)
	}
	if proceeds != 800 {
		t.Errorf("Expected proceeds 800, got %d", proceeds)
	}
	if realized != 300 {
		t.Errorf("Expected realized P/L 300 (800-500), got %d", realized)
	}
	if _, ok := p.Position("maga-media"); ok {
		t.Errorf("Position should be removed at zero shares")
	}
	if p.Realized() != 300 {
		t.Errorf("Expected run realized 300, got %d", p.Realized())
	}
}

func TestSellMoreThanHeldFails(t *testing.T) {
	p := NewPortfolio()
	p.Buy("maga-media", 5, 50)

	if _, _, err := p.Sell("maga-media", 6, 50); err == nil {
		t.Errorf("Expected error selling more than held")
	}
}

func TestShortAndCloseBookkeeping(t *testing.T) {
	p := NewPortfolio()

	// Short 10 at price 100: credit 80/share.
	proceeds, err := p.Short("fake-news", 10, 100)
	if err != nil || proceeds != 800 {
		t.Fatalf("Short: proceeds %d err %v", proceeds, err)
	}
	pos, _ := p.Position("fake-news")
	if pos.Shares != -10 {
		t.Fatalf("Expected -10 shares, got %d", pos.Shares)
	}

	// Price fell to 50; cover at full price.
	cost, realized, err := p.CloseShort("fake-news", 10, 50)
	if err != nil {
		t.Fatalf("CloseShort failed: %v", err)
	}
	if cost != 500 {
		t.Errorf("Expected cover cost 500, got %d", cost)
	}
	if realized != 300 {
		t.Errorf("Expected realized 300 (800-500), got %d", realized)
	}
	if _, ok := p.Position("fake-news"); ok {
		t.Errorf("Position should be removed after full cover")
	}
}

func TestMixingLongAndShortRejected(t *testing.T) {
	p := NewPortfolio()
	p.Buy("maga-media", 5, 50)
	if _, err := p.Short("maga-media", 5, 50); err == nil {
		t.Errorf("Expected error shorting while long")
	}

	p2 := NewPortfolio()
	p2.Short("fake-news", 5, 50)
	if _, err := p2.Buy("fake-news", 5, 50); err == nil {
		t.Errorf("Expected error buying while short")
	}
}

func TestPartialFillsKeepBasisConsistent(t *testing.T) {
	p := NewPortfolio()
	p.Buy("coal-power", 10, 40)

	// Two partial sells at the same price realize the same per-share P/L.
	_, r1, _ := p.Sell("coal-power", 5, 60)
	_, r2, _ := p.Sell("coal-power", 5, 60)
	if r1 != r2 {
		t.Errorf("Partial fills at equal price should realize equally, got %d and %d", r1, r2)
	}
	// 5*60*0.8 - 5*40 = 240 - 200 = 40.
	if r1 != 40 {
		t.Errorf("Expected realized 40 per fill, got %d", r1)
	}
}
