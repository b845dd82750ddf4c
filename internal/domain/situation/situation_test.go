package situation

import (
	"testing"

	"github.com/satiregames/orangenotlemons/server/internal/domain/plan"
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
)

func crisisSituation() Situation {
	return Situation{
		ID:              "economic-crisis",
		Name:            "Economic Crisis",
		IdealCategories: []plan.Category{plan.CategoryEconomy},
		WorstCategories: []plan.Category{plan.CategoryPersonal, plan.CategoryMedia},
		BonusMultiplier: 1.5,
		PenaltyFactor:   2.0,
	}
}

func TestEvaluate(t *testing.T) {
	s := crisisSituation()

	if got := s.Evaluate(plan.CategoryEconomy); got != VerdictIdeal {
		t.Errorf("Expected ideal verdict for economy, got %q", got)
	}
	if got := s.Evaluate(plan.CategoryMedia); got != VerdictWorst {
		t.Errorf("Expected worst verdict for media, got %q", got)
	}
	if got := s.Evaluate(plan.CategoryForeign); got != VerdictNeutral {
		t.Errorf("Expected neutral verdict for foreign, got %q", got)
	}
}

func TestModifyEffectIdeal(t *testing.T) {
	s := crisisSituation()
	e := stats.Effect{Loyalty: 25, Support: 10, Chaos: 8, Health: -10}

	got := s.ModifyEffect(e, VerdictIdeal)

	if got.Loyalty != 37 {
		t.Errorf("Expected loyalty floor(25*1.5)=37, got %d", got.Loyalty)
	}
	if got.Support != 15 {
		t.Errorf("Expected support 15, got %d", got.Support)
	}
	if got.Health != -7 {
		t.Errorf("Expected health damped to -7, got %d", got.Health)
	}
}

func TestModifyEffectWorst(t *testing.T) {
	s := crisisSituation()
	e := stats.Effect{Support: 10, Money: -100}

	got := s.ModifyEffect(e, VerdictWorst)

	if got.Support != 5 {
		t.Errorf("Expected support halved to 5, got %d", got.Support)
	}
	if got.Money != -200 {
		t.Errorf("Expected money penalty doubled to -200, got %d", got.Money)
	}
}

func TestModifyEffectNeutralPassthrough(t *testing.T) {
	s := crisisSituation()
	e := stats.Effect{Loyalty: 25, Support: 10, Chaos: 8}

	if got := s.ModifyEffect(e, VerdictNeutral); got != e {
		t.Errorf("Neutral verdict should pass the delta through, got %+v", got)
	}
}

func TestModifierSymmetry(t *testing.T) {
	s := crisisSituation()
	e := stats.Effect{Loyalty: 12, Support: -9, Health: 3, Money: -40}

	ideal := s.ModifyEffect(e, VerdictIdeal)
	worst := s.ModifyEffect(e, VerdictWorst)

	// Ideal never shrinks gains nor grows losses.
	if ideal.Loyalty < e.Loyalty || ideal.Health < e.Health {
		t.Errorf("Ideal shrank a positive field: %+v", ideal)
	}
	if -ideal.Support > -e.Support || -ideal.Money > -e.Money {
		t.Errorf("Ideal grew a negative field: %+v", ideal)
	}
	// Worst never grows gains nor shrinks losses.
	if worst.Loyalty > e.Loyalty || worst.Health > e.Health {
		t.Errorf("Worst grew a positive field: %+v", worst)
	}
	if -worst.Support < -e.Support || -worst.Money < -e.Money {
		t.Errorf("Worst shrank a negative field: %+v", worst)
	}
}

func TestModifyDelayedScalesOnlyNegatives(t *testing.T) {
	s := crisisSituation()
	e := stats.Effect{Support: 10, Loyalty: -10}

	ideal := s.ModifyDelayed(e, VerdictIdeal)
	if ideal.Support != 10 {
		t.Errorf("Positive delayed field should be untouched, got %d", ideal.Support)
	}
	if ideal.Loyalty != -7 {
		t.Errorf("Expected delayed loyalty damped to -7, got %d", ideal.Loyalty)
	}

	worst := s.ModifyDelayed(e, VerdictWorst)
	if worst.Loyalty != -15 {
		t.Errorf("Expected delayed loyalty amplified to -15, got %d", worst.Loyalty)
	}
}

func TestScoreModifier(t *testing.T) {
	s := crisisSituation()
	if s.ScoreModifier(VerdictIdeal) != 1.5 || s.ScoreModifier(VerdictWorst) != 0.5 || s.ScoreModifier(VerdictNeutral) != 1.0 {
		t.Errorf("Score modifiers should be 1.5/0.5/1.0")
	}
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	s := crisisSituation()
	s.IdealCategories = append(s.IdealCategories, plan.Category("astrology"))
	if err := s.Validate(); err == nil {
		t.Errorf("Expected validation error for unknown category")
	}
}
