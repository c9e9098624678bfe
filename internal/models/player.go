package models

import (
	"time"
)

// Player represents a chat user's long-lived profile
type Player struct {
	// ID is the chat user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// TotalPoints is the spendable point balance
	TotalPoints int

	// TotalGames counts finished games the player was scored in
	TotalGames int

	// TotalWins counts games won
	TotalWins int

	// FirstSeenAt is when the player was first registered
	FirstSeenAt time.Time
}
