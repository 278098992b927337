package parser

// ParsedScore is one extracted score submission.
type ParsedScore struct {
	GameNumber int
	Score      int // 1..6, or FailedScore for X/6
	// EmojiGrid holds the attempt rows in order, nil when the message
	// carried no usable grid.
	EmojiGrid []string
	// GridDiscarded is set when grid-like content was present but failed
	// strict validation and was dropped.
	GridDiscarded bool
}

// Failed reports whether the submission was an X/6.
func (p *ParsedScore) Failed() bool {
	return p.Score == FailedScore
}
