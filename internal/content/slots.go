package content

// SlotSymbol is one reel symbol with its score value. Negative symbols are
// the ones luck can reroll.
type SlotSymbol struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

// defaultSlotSymbols is the shared reel for all three slots.
func defaultSlotSymbols() []SlotSymbol {
	return []SlotSymbol{
		{ID: "flag", Label: "Tremendous Flag", Value: 10},
		{ID: "handshake", Label: "Firm Handshake", Value: 5},
		{ID: "gold-bar", Label: "Gold Bar", Value: 10},
		{ID: "eagle", Label: "Screaming Eagle", Value: 8},
		{ID: "podium", Label: "Rally Podium", Value: 7},
		{ID: "scandal", Label: "Minor Scandal", Value: -5},
		{ID: "diamond", Label: "Diamond Hands", Value: 15},
		{ID: "subpoena", Label: "Subpoena", Value: -10},
	}
}
