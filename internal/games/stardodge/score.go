package stardodge

// DefaultIdentity tags ledger entries when the host supplies no player name.
const DefaultIdentity = "Player"

// ScoreWatch reports score changes between observations.
type ScoreWatch struct {
	last int
}

// Observe returns the score and whether it differs from the previous observation.
func (w *ScoreWatch) Observe(score int) (int, bool) {
	if score == w.last {
		return score, false
	}
	w.last = score
	return score, true
}

// Reset sets the baseline without reporting a change.
func (w *ScoreWatch) Reset(score int) {
	w.last = score
}

// HighScoreEntry is one finished round.
type HighScoreEntry struct {
	Identity string
	Score    int
}

// HighScoreLedger is an append-only record of finished rounds. It outlives
// individual rounds.
type HighScoreLedger struct {
	entries []HighScoreEntry
}

// Append records a finished round.
func (l *HighScoreLedger) Append(e HighScoreEntry) {
	l.entries = append(l.entries, e)
}

// Len returns the number of recorded rounds.
func (l *HighScoreLedger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the ledger in insertion order.
func (l *HighScoreLedger) Entries() []HighScoreEntry {
	out := make([]HighScoreEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Best returns the highest score, preferring the earliest entry on ties.
func (l *HighScoreLedger) Best() (HighScoreEntry, bool) {
	if len(l.entries) == 0 {
		return HighScoreEntry{}, false
	}
	best := l.entries[0]
	for _, e := range l.entries[1:] {
		if e.Score > best.Score {
			best = e
		}
	}
	return best, true
}
