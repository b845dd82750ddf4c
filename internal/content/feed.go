package content

// FeedTables holds the narrative text pools for the social feed. Keyed by
// the closed message-type enum in the engine; the core only requires the
// pools to be non-empty.
type FeedTables struct {
	News     []string `json:"news"`
	Rumors   []string `json:"rumors"`
	Nonsense []string `json:"nonsense"`
	Critical []string `json:"critical"`
	Praise   []string `json:"praise"`
	Rants    []string `json:"rants"`
	Mockery  []string `json:"mockery"`
}

func defaultFeedTables() FeedTables {
	return FeedTables{
		News: []string{
			"BREAKING: Administration announces announcement, details to follow the details.",
			"Sources confirm the sources are confirmed.",
			"Quarterly numbers described as 'numbers' by officials.",
			"Cabinet meeting runs long after someone brings up the coin.",
			"New executive order signed with record-length signature.",
		},
		Rumors: []string{
			"Hearing the inner circle is more of an inner oval now.",
			"Someone saw a moving truck near the west wing. Probably nothing.",
			"Word is the golf handicap and the deficit are in a race.",
			"They say the blind trust wears glasses.",
			"Apparently the parade tanks were rentals.",
		},
		Nonsense: []string{
			"My uncle's birds all face north now. Explain THAT.",
			"The moon has been acting cocky lately.",
			"Day 412 of asking who is flying the weather.",
			"If soup is wet why is the ocean not soup.",
			"Windmills know what they did.",
		},
		Critical: []string{
			"ALERT: Coin valuation dipped while the briefing discussed crowd sizes.",
			"ALERT: Three senior aides hired the same defense attorney.",
			"ALERT: A lender just called the bluff AND the loan.",
			"ALERT: Tonight's leak is being described as 'load-bearing'.",
		},
		Praise: []string{
			"Honestly the economy has never felt this confident. #Winning",
			"Finally a leader who tells it like it might be.",
			"My portfolio is up and I am emotionally up too.",
			"Best quarter ever. Everyone is saying it.",
		},
		Rants: []string{
			"The FAKE critics are at it again. SAD!",
			"Nobody knows quarters like I know quarters. The best quarters.",
			"Many people are saying this was the greatest decision ever made. Many!",
			"The haters and losers will not be getting coins. Sorry!",
		},
		Mockery: []string{
			"lol they still haven't deleted this",
			"screenshotted for the documentary",
			"ratio incoming",
			"this post aged like unrefrigerated milk",
			"the intern who wrote this has left the country",
		},
	}
}
