package content

import "github.com/satiregames/orangenotlemons/server/internal/market"

// defaultInstruments is the fixed market: fifteen very serious companies.
func defaultInstruments() []market.Instrument {
	return []market.Instrument{
		{ID: "maga-media", Symbol: "TRTH", Name: "Truth Megaphone Corp", Sector: "media", Price: 50},
		{ID: "orange-oil", Symbol: "PATR", Name: "Patriot Oil & Tan", Sector: "energy", Price: 75},
		{ID: "wall-builders", Symbol: "WALL", Name: "Wall Builders United", Sector: "construction", Price: 40},
		{ID: "golden-casino", Symbol: "GOLD", Name: "Golden Casino Resorts", Sector: "leisure", Price: 60},
		{ID: "defense-first", Symbol: "EAGL", Name: "Defense First Industries", Sector: "defense", Price: 100},
		{ID: "twitter-clone", Symbol: "CHRP", Name: "Chirper Social", Sector: "tech", Price: 35},
		{ID: "pharma-price", Symbol: "PILL", Name: "Pharma Pricing Partners", Sector: "health", Price: 80},
		{ID: "coal-power", Symbol: "COAL", Name: "Clean Beautiful Coal", Sector: "energy", Price: 45},
		{ID: "banks-first", Symbol: "BANK", Name: "Banks First Holdings", Sector: "finance", Price: 90},
		{ID: "steel-america", Symbol: "STLX", Name: "Steel America", Sector: "industry", Price: 55},
		{ID: "fake-news", Symbol: "FAKE", Name: "Mainstream Syndicate", Sector: "media", Price: 30},
		{ID: "china-goods", Symbol: "GYNA", Name: "Pacific Imports Ltd", Sector: "retail", Price: 65},
		{ID: "green-energy", Symbol: "WIND", Name: "Windmill Cancer Energy", Sector: "energy", Price: 70},
		{ID: "immigration-tech", Symbol: "BRDR", Name: "Border Logistics Tech", Sector: "tech", Price: 85},
		{ID: "luxury-goods", Symbol: "LUXE", Name: "Gilded Goods Group", Sector: "retail", Price: 120},
	}
}

// defaultStockEffects maps executed plan ids to the price shocks they cause.
func defaultStockEffects() map[string][]market.Shock {
	return map[string][]market.Shock{
		"tariffs": {
			{InstrumentID: "steel-america", PercentChange: 25, Reason: "Domestic steel protected", Hint: "Heavy industry smells protection"},
			{InstrumentID: "china-goods", PercentChange: -30, Reason: "Import costs explode", Hint: "Importers are sweating"},
			{InstrumentID: "banks-first", PercentChange: -10, Reason: "Trade uncertainty", Hint: "Finance hates surprises"},
		},
		"crypto-reserve": {
			{InstrumentID: "banks-first", PercentChange: -15, Reason: "Banks bypassed by coin", Hint: "Old money is nervous"},
			{InstrumentID: "golden-casino", PercentChange: 20, Reason: "Speculation is the brand", Hint: "The house always wins"},
			{InstrumentID: "twitter-clone", PercentChange: 10, Reason: "Coin memes drive engagement", Hint: "Engagement farmers rejoice"},
		},
		"tax-cuts": {
			{InstrumentID: "banks-first", PercentChange: 20, Reason: "Buyback bonanza", Hint: "Wall Street loves a windfall"},
			{InstrumentID: "luxury-goods", PercentChange: 15, Reason: "Yacht season extended", Hint: "High-end retail perks up"},
			{InstrumentID: "pharma-price", PercentChange: 10, Reason: "Margins widen", Hint: "Healthcare lobbies smile"},
		},
		"border-wall": {
			{InstrumentID: "wall-builders", PercentChange: 35, Reason: "Contract of the century", Hint: "Concrete futures twitch"},
			{InstrumentID: "immigration-tech", PercentChange: 15, Reason: "Sensors for every mile", Hint: "Surveillance vendors circle"},
			{InstrumentID: "china-goods", PercentChange: -5, Reason: "Rhetoric spillover", Hint: "Importers duck"},
		},
		"drain-swamp": {
			{InstrumentID: "fake-news", PercentChange: 15, Reason: "Scandal coverage sells", Hint: "Newsrooms staff up"},
			{InstrumentID: "banks-first", PercentChange: -5, Reason: "Regulatory churn", Hint: "Compliance budgets groan"},
		},
		"military-parade": {
			{InstrumentID: "defense-first", PercentChange: 20, Reason: "Hardware on display", Hint: "Contractors polish the brochures"},
			{InstrumentID: "orange-oil", PercentChange: 5, Reason: "Tanks run on something", Hint: "Fuel demand blips"},
		},
		"press-crackdown": {
			{InstrumentID: "fake-news", PercentChange: -20, Reason: "Access revoked", Hint: "Legacy media squeezed"},
			{InstrumentID: "maga-media", PercentChange: 25, Reason: "Exclusive access granted", Hint: "Friendly outlets feast"},
			{InstrumentID: "twitter-clone", PercentChange: 10, Reason: "Outrage drives traffic", Hint: "Rage clicks are clicks"},
		},
		"mega-rally": {
			{InstrumentID: "maga-media", PercentChange: 15, Reason: "Wall-to-wall coverage", Hint: "Ratings incoming"},
			{InstrumentID: "golden-casino", PercentChange: 10, Reason: "Rally town fills hotels", Hint: "Hospitality bump"},
		},
		"social-purge": {
			{InstrumentID: "twitter-clone", PercentChange: -25, Reason: "User exodus", Hint: "Engagement metrics wobble"},
			{InstrumentID: "maga-media", PercentChange: 10, Reason: "Refugees need a feed", Hint: "Alternative platforms gain"},
		},
		"trade-deal": {
			{InstrumentID: "china-goods", PercentChange: 20, Reason: "Tariff relief priced in", Hint: "Importers exhale"},
			{InstrumentID: "steel-america", PercentChange: -10, Reason: "Protection expires", Hint: "Heavy industry grumbles"},
			{InstrumentID: "banks-first", PercentChange: 10, Reason: "Certainty returns", Hint: "Finance likes signatures"},
		},
		"summit-stunt": {
			{InstrumentID: "defense-first", PercentChange: -15, Reason: "Peace is bad for business", Hint: "Contractors hedge"},
			{InstrumentID: "luxury-goods", PercentChange: 5, Reason: "Diplomatic gift season", Hint: "Gilded gifting"},
		},
		"space-command": {
			{InstrumentID: "defense-first", PercentChange: 30, Reason: "Orbital budget unlocked", Hint: "Aerospace drools"},
			{InstrumentID: "immigration-tech", PercentChange: 10, Reason: "Satellite surveillance", Hint: "Sensors go vertical"},
		},
		"golf-weekend": {
			{InstrumentID: "golden-casino", PercentChange: 10, Reason: "Resort weekend booked solid", Hint: "Leisure bump"},
			{InstrumentID: "luxury-goods", PercentChange: 5, Reason: "Pro-shop merchandising", Hint: "Polo shirts move"},
		},
		"diet-reform": {
			{InstrumentID: "pharma-price", PercentChange: -10, Reason: "Fewer prescriptions projected", Hint: "Cardiology futures dip"},
		},
		"family-business": {
			{InstrumentID: "luxury-goods", PercentChange: 15, Reason: "Brand licensing surge", Hint: "The name still sells"},
			{InstrumentID: "golden-casino", PercentChange: 10, Reason: "Mysterious bulk bookings", Hint: "Whale season"},
			{InstrumentID: "banks-first", PercentChange: -5, Reason: "Due diligence headaches", Hint: "Lenders re-read the files"},
		},
	}
}
