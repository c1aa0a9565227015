package server

import "sort"

// MaxTopScores is the number of leaderboard entries shown to clients.
const MaxTopScores = 5

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	clientID int // Used for deterministic tie-break when scores are equal
}

// topScores sorts the per-session bests and keeps the first n.
func topScores(best map[int]TopScoreEntry, n int) []TopScoreEntry {
	entries := make([]TopScoreEntry, 0, len(best))
	for _, e := range best {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].clientID < entries[j].clientID
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
