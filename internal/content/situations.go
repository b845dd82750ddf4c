package content

import (
	"github.com/satiregames/orangenotlemons/server/internal/domain/plan"
	"github.com/satiregames/orangenotlemons/server/internal/domain/situation"
)

// defaultSituations is the per-turn situation pool, drawn uniformly.
func defaultSituations() []situation.Situation {
	return []situation.Situation{
		{
			ID: "economic-crisis", Name: "Economic Crisis",
			Description: "The markets are doing a thing and it is not a good thing.",
			Hints: []string{
				"Analysts whisper about numbers going down.",
				"Your coin guy stopped answering.",
				"Someone mentioned the R-word at dinner.",
				"The golf course revenue slide is all red.",
			},
			IdealCategories: []plan.Category{plan.CategoryEconomy},
			WorstCategories: []plan.Category{plan.CategoryPersonal},
			BonusMultiplier: 1.6, PenaltyFactor: 2.0,
		},
		{
			ID: "media-frenzy", Name: "Media Frenzy",
			Description: "Every camera in the hemisphere is pointed at the lawn.",
			Hints: []string{
				"The press pool tripled overnight.",
				"A chyron war has broken out.",
				"Your name is trending in four languages.",
				"Someone leaked the lunch menu as a scoop.",
			},
			IdealCategories: []plan.Category{plan.CategoryMedia},
			WorstCategories: []plan.Category{plan.CategoryForeign},
			BonusMultiplier: 1.5, PenaltyFactor: 2.0,
		},
		{
			ID: "international-tensions", Name: "International Tensions",
			Description: "Several countries are being extremely unfair simultaneously.",
			Hints: []string{
				"An ambassador was recalled for 'consultations'.",
				"The situation room ordered extra coffee.",
				"Allied leaders scheduled a call without you.",
				"A carrier group changed course.",
			},
			IdealCategories: []plan.Category{plan.CategoryForeign},
			WorstCategories: []plan.Category{plan.CategoryPersonal, plan.CategoryMedia},
			BonusMultiplier: 1.7, PenaltyFactor: 2.1,
		},
		{
			ID: "political-scandal", Name: "Political Scandal",
			Description: "A story with legs. Many legs. A centipede of a story.",
			Hints: []string{
				"The word 'bombshell' appeared in three headlines.",
				"Staffers are suddenly interested in their own lawyers.",
				"A resignation letter is circulating as a draft.",
				"Someone is shredding loudly.",
			},
			IdealCategories: []plan.Category{plan.CategoryPolitics},
			WorstCategories: []plan.Category{plan.CategoryEconomy},
			BonusMultiplier: 1.5, PenaltyFactor: 2.2,
		},
		{
			ID: "health-concerns", Name: "Health Concerns",
			Description: "A stumble on the ramp has the nation's cardiologists tweeting.",
			Hints: []string{
				"The physician's statement used the word 'robust' five times.",
				"Two hands for one water glass.",
				"An unscheduled hospital visit was 'routine'.",
				"The cognitive test had elephants in it.",
			},
			IdealCategories: []plan.Category{plan.CategoryPersonal},
			WorstCategories: []plan.Category{plan.CategoryPolitics},
			BonusMultiplier: 1.5, PenaltyFactor: 1.8,
		},
		{
			ID: "loyalty-crisis", Name: "Loyalty Crisis",
			Description: "The inner circle is developing opinions of its own.",
			Hints: []string{
				"Anonymous sources are getting very specific.",
				"Someone wore a wire to the steak dinner.",
				"The family group chat went quiet.",
				"A deputy was seen lunching with a publisher.",
			},
			IdealCategories: []plan.Category{plan.CategoryPolitics, plan.CategoryPersonal},
			WorstCategories: []plan.Category{plan.CategoryMedia},
			BonusMultiplier: 1.6, PenaltyFactor: 2.0,
		},
		{
			ID: "public-unrest", Name: "Public Unrest",
			Description: "Large crowds, small signs, zero of them complimentary.",
			Hints: []string{
				"The permit office is swamped.",
				"Somebody organized a boycott of your coin.",
				"Approval polling got a black border today.",
				"The motorcade found a new route. Twice.",
			},
			IdealCategories: []plan.Category{plan.CategoryMedia, plan.CategoryPolitics},
			WorstCategories: []plan.Category{plan.CategoryEconomy},
			BonusMultiplier: 1.5, PenaltyFactor: 2.0,
		},
		{
			ID: "opportunity-moment", Name: "Opportunity Moment",
			Description: "A rare alignment: news is slow and enemies are on vacation.",
			Hints: []string{
				"The opposition is fundraising in Aspen.",
				"A feel-good animal story leads every broadcast.",
				"Congress is in recess.",
				"Even the fact-checkers look relaxed.",
			},
			IdealCategories: []plan.Category{plan.CategoryEconomy, plan.CategoryForeign},
			WorstCategories: nil,
			BonusMultiplier: 1.8, PenaltyFactor: 1.4,
		},
		{
			ID: "calm-waters", Name: "Calm Waters",
			Description: "Suspiciously quiet. Probably fine. Probably.",
			Hints: []string{
				"No breaking news for six consecutive hours.",
				"The markets closed boring.",
				"Your lawyer took a real weekend.",
				"The burn bag was half empty.",
			},
			IdealCategories: []plan.Category{plan.CategoryPersonal},
			WorstCategories: nil,
			BonusMultiplier: 1.3, PenaltyFactor: 1.4,
		},
		{
			ID: "money-troubles", Name: "Money Troubles",
			Description: "The books are less cooked than required and everyone noticed.",
			Hints: []string{
				"A lender called about 'the arrangement'.",
				"The coin valuation chart looks like a ski slope.",
				"Accounts payable is a hostile department now.",
				"Someone priced the letterhead on resale sites.",
			},
			IdealCategories: []plan.Category{plan.CategoryEconomy, plan.CategoryPersonal},
			WorstCategories: []plan.Category{plan.CategoryForeign},
			BonusMultiplier: 1.6, PenaltyFactor: 2.0,
		},
	}
}
