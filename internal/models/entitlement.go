package models

import (
	"time"
)

// EntitlementKind represents what a purchased grant does
type EntitlementKind string

const (
	// EntitlementActiveRole guarantees a non-civil role for a number of games
	EntitlementActiveRole EntitlementKind = "active_role"
)

// Entitlement is a consumable grant held by a player
type Entitlement struct {
	// ID is the unique identifier for the grant
	ID string

	// PlayerID is the owner of the grant
	PlayerID string

	// Kind is what the grant does
	Kind EntitlementKind

	// RemainingGames counts down as the grant is consumed
	RemainingGames int

	// CreatedAt is when the grant was issued
	CreatedAt time.Time
}
