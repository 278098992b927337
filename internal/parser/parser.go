package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// FailedScore is the sentinel stored for an "X/6" result.
const FailedScore = 7

// scorePattern matches results like "Wordle 789 3/6", "Wordle 1,502 4/6" or
// "Wordle #1500 X/6". Game numbers may be comma-grouped, the '#' is optional
// and X is accepted in either case.
var scorePattern = regexp.MustCompile(`Wordle\s+#?([\d,]+)\s+([1-6Xx])/6`)

// reactionVerbs are messaging-app reaction echoes. A score match immediately
// preceded by one of these is a reaction to someone else's score, not a
// submission, and must never be recorded.
var reactionVerbs = []string{
	"Loved",
	"Liked",
	"Laughed at",
	"Emphasized",
	"Reacted to",
}

// Parse extracts a score submission from raw message text. It returns nil
// when the text is not a score message; that is the normal outcome for chat
// traffic and is not an error.
func Parse(raw string) *ParsedScore {
	loc := findSubmission(raw)
	if loc == nil {
		return nil
	}

	match := scorePattern.FindStringSubmatch(raw[loc[0]:loc[1]])
	gameNumber, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		// The pattern only admits digits and commas, so this is unreachable
		// in practice.
		log.Warn("Unparseable game number in score line", "token", match[1])
		return nil
	}

	score := FailedScore
	if match[2] != "X" && match[2] != "x" {
		score, _ = strconv.Atoi(match[2])
	}

	parsed := &ParsedScore{
		GameNumber: gameNumber,
		Score:      score,
	}

	grid, sawRows := collectGrid(raw[loc[1]:])
	switch {
	case grid == nil && !sawRows:
		// No grid in the message at all; the score stands alone.
	case validRowCount(score, grid):
		parsed.EmojiGrid = grid
	default:
		// A grid was present but failed strict validation. Record the score
		// with the grid absent rather than guessing at a repair.
		parsed.GridDiscarded = true
	}

	return parsed
}

// findSubmission returns the location of the first score match that is a
// genuine submission, skipping matches that are reaction echoes.
func findSubmission(raw string) []int {
	offset := 0
	for {
		loc := scorePattern.FindStringIndex(raw[offset:])
		if loc == nil {
			return nil
		}
		start, end := offset+loc[0], offset+loc[1]
		if !isReactionEcho(raw[:start]) {
			return []int{start, end}
		}
		offset = end
	}
}

// isReactionEcho reports whether the text immediately before a score match
// ends in a reaction verb, optionally followed by quoting punctuation.
func isReactionEcho(prefix string) bool {
	trimmed := strings.TrimRight(prefix, " \t\"'“”‘’")
	for _, verb := range reactionVerbs {
		if strings.HasSuffix(trimmed, verb) {
			return true
		}
	}
	return false
}

// collectGrid scans the lines after the score line and keeps only lines that
// are pure attempt rows. The message stream interleaves scores with delivery
// metadata (timestamps, "Sent at HH:MM", dates) on adjacent lines, so any
// line containing a foreign character is rejected outright; once at least one
// row has been collected, the first rejected or blank line ends the grid.
// The second return value reports whether any row-like content was seen.
func collectGrid(rest string) ([]string, bool) {
	var rows []string
	sawCandidate := false
	for _, line := range strings.Split(rest, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(rows) > 0 {
				break
			}
			continue
		}
		if containsGridSymbol(trimmed) {
			sawCandidate = true
		}
		if ValidGridRow(trimmed) {
			rows = append(rows, trimmed)
			continue
		}
		if len(rows) > 0 {
			break
		}
	}
	return rows, sawCandidate
}

// validRowCount checks the grid shape against the score: a solved game has
// exactly `score` rows, a failed game exactly six.
func validRowCount(score int, grid []string) bool {
	if len(grid) == 0 {
		return false
	}
	if score == FailedScore {
		return len(grid) == 6
	}
	return len(grid) == score
}

// ValidGridRow reports whether a line consists solely of attempt-cell
// symbols and whitespace. Anything else disqualifies the whole line; a
// contaminated row is never trimmed into a valid one.
func ValidGridRow(line string) bool {
	cells := 0
	for _, r := range line {
		switch r {
		case '⬛', '⬜', '🟨', '🟩': // ⬛ ⬜ 🟨 🟩
			cells++
		case ' ', '\t', '️': // U+FE0F is the emoji presentation selector
		default:
			return false
		}
	}
	return cells > 0
}

func containsGridSymbol(line string) bool {
	return strings.ContainsAny(line, "⬛⬜🟨🟩")
}
