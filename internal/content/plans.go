package content

import (
	"github.com/satiregames/orangenotlemons/server/internal/domain/plan"
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
)

// defaultPlans is the shipped action-card catalog. Bands are ordered best to
// worst and cover the full scoring range.
func defaultPlans() []plan.Card {
	return []plan.Card{
		{
			ID:       "tariffs",
			Name:     "Beautiful Tariffs",
			Category: plan.CategoryEconomy,
			BaseCost: 200,
			Revealable: map[string]string{
				plan.AttrRisk:   "Trading partners retaliate",
				plan.AttrReward: "The base loves a trade war",
				plan.AttrTiming: "Retaliation lands two quarters out",
				plan.AttrSecret: "Nobody has read the tariff schedule",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 70, MaxScore: 100, Title: "Art of the Deal", Description: "Markets cheer, somehow.",
					Immediate: stats.Effect{Support: 12, Money: 300, Chaos: 5}},
				{MinScore: 35, MaxScore: 69, Title: "Mixed Signals", Description: "Half the cabinet claims credit.",
					Immediate: stats.Effect{Support: 4, Chaos: 8},
					Delayed: []plan.DelayedTemplate{
						{TurnsDelay: 2, Description: "Retaliatory tariffs bite", Effects: stats.Effect{Money: -250}},
					}},
				{MinScore: -100, MaxScore: 34, Title: "Trade War", Description: "Soybeans are a national emergency now.",
					Immediate: stats.Effect{Support: -8, Money: -200, Chaos: 14},
					Delayed: []plan.DelayedTemplate{
						{TurnsDelay: 2, Description: "Farm bailout comes due", Effects: stats.Effect{Money: -400, Loyalty: -4}},
					}},
			},
		},
		{
			ID:       "crypto-reserve",
			Name:     "Strategic Coin Reserve",
			Category: plan.CategoryEconomy,
			BaseCost: 350,
			Revealable: map[string]string{
				plan.AttrRisk:   "The coin is backed by vibes",
				plan.AttrReward: "Valuation pumps while you hold the mic",
				plan.AttrSecret: "Family wallets bought in last week",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 65, MaxScore: 100, Title: "To the Moon", Description: "Number goes up.",
					Immediate: stats.Effect{Money: 500, CoinValuation: 12, Chaos: 6}},
				{MinScore: 25, MaxScore: 64, Title: "Sideways Chop", Description: "Whales are waiting you out.",
					Immediate: stats.Effect{CoinValuation: 3, Chaos: 4}},
				{MinScore: -100, MaxScore: 24, Title: "Rug Pull", Description: "The ledger was a napkin.",
					Immediate: stats.Effect{Money: -350, CoinValuation: -15, Loyalty: -5, Chaos: 10}},
			},
		},
		{
			ID:       "tax-cuts",
			Name:     "Tremendous Tax Cuts",
			Category: plan.CategoryEconomy,
			BaseCost: 400,
			Revealable: map[string]string{
				plan.AttrReward: "Donors remember this kind of thing",
				plan.AttrTiming: "The deficit shows up later",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 60, MaxScore: 100, Title: "Trickle Down", Description: "The yacht industry is saved.",
					Immediate: stats.Effect{Money: 600, Loyalty: 8, Support: 5}},
				{MinScore: 20, MaxScore: 59, Title: "CBO Scoring", Description: "An accountant ruins the party.",
					Immediate: stats.Effect{Money: 200, Support: -3},
					Delayed: []plan.DelayedTemplate{
						{TurnsDelay: 3, Description: "Deficit headlines return", Effects: stats.Effect{Support: -6}},
					}},
				{MinScore: -100, MaxScore: 19, Title: "Austerity Optics", Description: "Someone filmed the gold elevator.",
					Immediate: stats.Effect{Support: -10, Chaos: 8, Money: 100}},
			},
		},
		{
			ID:       "border-wall",
			Name:     "Big Beautiful Wall",
			Category: plan.CategoryPolitics,
			BaseCost: 300,
			Revealable: map[string]string{
				plan.AttrRisk:   "Contractors bill by the brick",
				plan.AttrReward: "Rally chant material for a year",
				plan.AttrSecret: "Thirty feet of it fell over in a breeze",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 70, MaxScore: 100, Title: "See-Through Steel", Description: "It is the best wall, everyone says so.",
					Immediate: stats.Effect{Support: 15, Loyalty: 6, Chaos: 4}},
				{MinScore: 30, MaxScore: 69, Title: "Funding Fight", Description: "Congress discovers the word 'no'.",
					Immediate: stats.Effect{Support: 5, Chaos: 10, Money: -150}},
				{MinScore: -100, MaxScore: 29, Title: "Ladder Sales Boom", Description: "A 31-foot ladder startup IPOs.",
					Immediate: stats.Effect{Support: -7, Money: -300, Chaos: 12},
					Delayed: []plan.DelayedTemplate{
						{TurnsDelay: 2, Description: "Contractor lawsuits surface", Effects: stats.Effect{Money: -200, Loyalty: -3}},
					}},
			},
		},
		{
			ID:       "drain-swamp",
			Name:     "Drain the Swamp (Again)",
			Category: plan.CategoryPolitics,
			BaseCost: 150,
			Revealable: map[string]string{
				plan.AttrRisk:   "The swamp has your texts",
				plan.AttrReward: "Purges keep the rest in line",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 65, MaxScore: 100, Title: "Loyalty Audit", Description: "Only the most loyal remain.",
					Immediate: stats.Effect{Loyalty: 12, Chaos: 6, Support: 3}},
				{MinScore: 25, MaxScore: 64, Title: "Revolving Door", Description: "Everyone fired is rehired as a consultant.",
					Immediate: stats.Effect{Loyalty: 4, Chaos: 8}},
				{MinScore: -100, MaxScore: 24, Title: "Tell-All Season", Description: "Three memoirs announced by lunch.",
					Immediate: stats.Effect{Loyalty: -10, Chaos: 12, Support: -5},
					Delayed: []plan.DelayedTemplate{
						{TurnsDelay: 1, Description: "Book excerpts leak", Effects: stats.Effect{Loyalty: -5, Support: -4}},
					}},
			},
		},
		{
			ID:       "military-parade",
			Name:     "Very Big Parade",
			Category: plan.CategoryPolitics,
			BaseCost: 250,
			Outcomes: []plan.OutcomeBand{
				{MinScore: 60, MaxScore: 100, Title: "Tanks on Main Street", Description: "The asphalt mostly survives.",
					Immediate: stats.Effect{Support: 10, Loyalty: 5, Money: -100}},
				{MinScore: 20, MaxScore: 59, Title: "Rain Delay", Description: "The hair situation is classified.",
					Immediate: stats.Effect{Support: 2, Money: -150}},
				{MinScore: -100, MaxScore: 19, Title: "Empty Bleachers", Description: "Crowd size discourse, round forty.",
					Immediate: stats.Effect{Support: -8, Chaos: 6, Money: -200}},
			},
		},
		{
			ID:       "press-crackdown",
			Name:     "Enemy of the People Week",
			Category: plan.CategoryMedia,
			BaseCost: 100,
			Revealable: map[string]string{
				plan.AttrRisk:   "Journalists write things down",
				plan.AttrReward: "The base tunes out everything else",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 70, MaxScore: 100, Title: "News Cycle Captured", Description: "All coverage is about the coverage.",
					Immediate: stats.Effect{Support: 8, Chaos: 10, Loyalty: 4}},
				{MinScore: 30, MaxScore: 69, Title: "Briefing Brawl", Description: "A microphone is confiscated on live TV.",
					Immediate: stats.Effect{Chaos: 12, Support: 2}},
				{MinScore: -100, MaxScore: 29, Title: "Streisand Effect", Description: "The banned story triples its readership.",
					Immediate: stats.Effect{Support: -9, Loyalty: -4, Chaos: 15},
					Delayed: []plan.DelayedTemplate{
						{TurnsDelay: 2, Description: "Press freedom ruling lands", Effects: stats.Effect{Support: -5, Chaos: 5}},
					}},
			},
		},
		{
			ID:       "mega-rally",
			Name:     "Mega Rally",
			Category: plan.CategoryMedia,
			BaseCost: 180,
			Revealable: map[string]string{
				plan.AttrReward: "Ninety minutes of pure vibes",
				plan.AttrTiming: "Venue invoice arrives next quarter",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 65, MaxScore: 100, Title: "Record Crowd", Description: "Biggest ever, period.",
					Immediate: stats.Effect{Support: 14, Loyalty: 6, Luck: 3}},
				{MinScore: 25, MaxScore: 64, Title: "Teleprompter Trouble", Description: "Forty minutes on windmills.",
					Immediate: stats.Effect{Support: 5, Chaos: 6},
					Delayed: []plan.DelayedTemplate{
						{TurnsDelay: 1, Description: "Venue bill unpaid", Effects: stats.Effect{Money: -180}},
					}},
				{MinScore: -100, MaxScore: 24, Title: "Empty Arena", Description: "Ticket bots claimed a million RSVPs.",
					Immediate: stats.Effect{Support: -10, Loyalty: -3, Chaos: 8}},
			},
		},
		{
			ID:       "social-purge",
			Name:     "Ban Everyone Mean",
			Category: plan.CategoryMedia,
			BaseCost: 120,
			Outcomes: []plan.OutcomeBand{
				{MinScore: 60, MaxScore: 100, Title: "Timeline Cleansed", Description: "Only patriots and bots remain.",
					Immediate: stats.Effect{Loyalty: 8, Chaos: 4, FreeBots: 1}},
				{MinScore: 20, MaxScore: 59, Title: "Whack-a-Mole", Description: "They keep making new accounts.",
					Immediate: stats.Effect{Chaos: 6, Loyalty: 2}},
				{MinScore: -100, MaxScore: 19, Title: "Mass Exodus", Description: "Even the bots left.",
					Immediate: stats.Effect{Support: -6, Chaos: 10, FreeBots: -1}},
			},
		},
		{
			ID:       "trade-deal",
			Name:     "Greatest Trade Deal",
			Category: plan.CategoryForeign,
			BaseCost: 280,
			Revealable: map[string]string{
				plan.AttrRisk:   "The other side also has negotiators",
				plan.AttrReward: "Signing ceremonies photograph well",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 70, MaxScore: 100, Title: "Historic Signing", Description: "The pens alone cost a fortune.",
					Immediate: stats.Effect{Money: 400, Support: 8, Loyalty: 4}},
				{MinScore: 30, MaxScore: 69, Title: "Framework Agreement", Description: "An agreement to maybe agree later.",
					Immediate: stats.Effect{Support: 3, Money: 100}},
				{MinScore: -100, MaxScore: 29, Title: "Walked Out", Description: "Dinner was cancelled mid-appetizer.",
					Immediate: stats.Effect{Support: -6, Chaos: 10, Money: -150},
					Delayed: []plan.DelayedTemplate{
						{TurnsDelay: 3, Description: "Allies hedge their bets", Effects: stats.Effect{Support: -4, CoinValuation: -5}},
					}},
			},
		},
		{
			ID:       "summit-stunt",
			Name:     "Surprise Summit",
			Category: plan.CategoryForeign,
			BaseCost: 220,
			Revealable: map[string]string{
				plan.AttrRisk:   "Love letters are not a treaty",
				plan.AttrSecret: "The interpreter kept notes",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 65, MaxScore: 100, Title: "Handshake Heard Worldwide", Description: "Nobel buzz for a week.",
					Immediate: stats.Effect{Support: 12, Chaos: -4, Luck: 4}},
				{MinScore: 25, MaxScore: 64, Title: "Photo Op Only", Description: "Beautiful letters, zero deliverables.",
					Immediate: stats.Effect{Support: 4, Chaos: 3}},
				{MinScore: -100, MaxScore: 24, Title: "Missile Test Response", Description: "They fired something the next morning.",
					Immediate: stats.Effect{Support: -8, Chaos: 14, Loyalty: -3}},
			},
		},
		{
			ID:       "space-command",
			Name:     "Space Command Gold Trim",
			Category: plan.CategoryForeign,
			BaseCost: 320,
			Outcomes: []plan.OutcomeBand{
				{MinScore: 60, MaxScore: 100, Title: "Orbital Flex", Description: "The logo tested extremely well.",
					Immediate: stats.Effect{Support: 9, Money: -100, Loyalty: 5}},
				{MinScore: 20, MaxScore: 59, Title: "Budget Orbit", Description: "The rocket is mostly renders.",
					Immediate: stats.Effect{Support: 3, Money: -200}},
				{MinScore: -100, MaxScore: 19, Title: "Launchpad Fizzle", Description: "It went sideways. Literally.",
					Immediate: stats.Effect{Support: -7, Money: -300, Chaos: 8}},
			},
		},
		{
			ID:       "golf-weekend",
			Name:     "Executive Time (Golf)",
			Category: plan.CategoryPersonal,
			BaseCost: 80,
			Revealable: map[string]string{
				plan.AttrReward: "Cardio is cardio",
				plan.AttrRisk:   "Scorecards leak",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 60, MaxScore: 100, Title: "Best Round Ever", Description: "Witnesses confirm under oath.",
					Immediate: stats.Effect{Health: 10, Luck: 5, Chaos: -3}},
				{MinScore: 20, MaxScore: 59, Title: "Mulligan Festival", Description: "The rules were more guidelines.",
					Immediate: stats.Effect{Health: 5, Support: -2}},
				{MinScore: -100, MaxScore: 19, Title: "Cart on the Green", Description: "Groundskeeper quits on camera.",
					Immediate: stats.Effect{Health: 3, Support: -5, Chaos: 4}},
			},
		},
		{
			ID:       "diet-reform",
			Name:     "Hamberder Moderation",
			Category: plan.CategoryPersonal,
			BaseCost: 60,
			Outcomes: []plan.OutcomeBand{
				{MinScore: 65, MaxScore: 100, Title: "Doctor Amazed", Description: "Healthiest individual ever elected.",
					Immediate: stats.Effect{Health: 12, Luck: 2}},
				{MinScore: 25, MaxScore: 64, Title: "Cheat Day Cascade", Description: "The buffet fought back.",
					Immediate: stats.Effect{Health: 4}},
				{MinScore: -100, MaxScore: 24, Title: "Two Scoops Incident", Description: "Everyone else got one.",
					Immediate: stats.Effect{Health: -4, Support: -2, Chaos: 3}},
			},
		},
		{
			ID:       "family-business",
			Name:     "Totally Blind Trust",
			Category: plan.CategoryPersonal,
			BaseCost: 140,
			Revealable: map[string]string{
				plan.AttrSecret: "The trust can see fine",
				plan.AttrTiming: "Subpoenas have a lag",
			},
			Outcomes: []plan.OutcomeBand{
				{MinScore: 70, MaxScore: 100, Title: "Quiet Quarter", Description: "No new indictments is the new growth.",
					Immediate: stats.Effect{Money: 350, Loyalty: 3}},
				{MinScore: 30, MaxScore: 69, Title: "Creative Accounting", Description: "The numbers are beautiful numbers.",
					Immediate: stats.Effect{Money: 150, Chaos: 4},
					Delayed: []plan.DelayedTemplate{
						{TurnsDelay: 4, Description: "Auditor asks questions", Effects: stats.Effect{Loyalty: -4, Money: -100}},
					}},
				{MinScore: -100, MaxScore: 29, Title: "Grand Jury Energy", Description: "A very unfair witch hunt, again.",
					Immediate: stats.Effect{Money: -200, Loyalty: -6, Chaos: 10},
					Delayed: []plan.DelayedTemplate{
						{TurnsDelay: 2, Description: "Legal fees compound", Effects: stats.Effect{Money: -300}},
					}},
			},
		},
	}
}
