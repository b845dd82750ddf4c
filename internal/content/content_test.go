package content

import (
	"testing"

	"github.com/satiregames/orangenotlemons/server/internal/domain/plan"
	"github.com/satiregames/orangenotlemons/server/internal/market"
)

func TestLoadDefaultCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Default catalog must validate: %v", err)
	}
	if len(c.Plans) < 10 {
		t.Errorf("Expected a substantial plan catalog, got %d", len(c.Plans))
	}
	if len(c.Situations) != 10 {
		t.Errorf("Expected 10 situations, got %d", len(c.Situations))
	}
	if len(c.Instruments) != 15 {
		t.Errorf("Expected 15 instruments, got %d", len(c.Instruments))
	}
}

func TestEveryPlanResolvesFullScoreRange(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	for i := range c.Plans {
		card := &c.Plans[i]
		for score := -100; score <= 100; score++ {
			band := card.Resolve(score)
			if band.Title == "" {
				t.Fatalf("Plan %q: score %d resolved to no band", card.ID, score)
			}
		}
	}
}

func TestValidateRejectsUnknownShockPlan(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	c.StockEffects["ghost-plan"] = []market.Shock{{InstrumentID: "maga-media", PercentChange: 5}}
	if err := c.Validate(); err == nil {
		t.Errorf("Expected validation error for shock table referencing unknown plan")
	}
}

func TestValidateRejectsDuplicatePlanID(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	c.Plans = append(c.Plans, c.Plans[0])
	if err := c.Validate(); err == nil {
		t.Errorf("Expected validation error for duplicate plan id")
	}
}

func TestValidateRejectsBadCategoryInCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	c.Plans[0].Category = plan.Category("vibes")
	if err := c.Validate(); err == nil {
		t.Errorf("Expected validation error for unknown category")
	}
}

func TestPlanLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Plan("tariffs"); !ok {
		t.Errorf("Expected tariffs plan in catalog")
	}
	if _, ok := c.Plan("ghost"); ok {
		t.Errorf("Did not expect ghost plan")
	}
}
