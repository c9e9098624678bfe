package models

// LeaderboardEntry is one row of the points leaderboard
type LeaderboardEntry struct {
	// PlayerID is the chat user ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Points is the player's total points
	Points int
}

// Leaderboard represents the current standings across all games
type Leaderboard struct {
	Entries []*LeaderboardEntry
}
