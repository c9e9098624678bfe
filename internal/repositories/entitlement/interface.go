package entitlement

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mafiabot/internal/repositories/entitlement Repository

import (
	"context"
)

// Repository defines the interface for the purchased-grant ledger
type Repository interface {
	// GrantEntitlement records a new grant for a player
	GrantEntitlement(ctx context.Context, input *GrantEntitlementInput) (*GrantEntitlementOutput, error)

	// ListEntitlements retrieves a player's grants, oldest first
	ListEntitlements(ctx context.Context, input *ListEntitlementsInput) (*ListEntitlementsOutput, error)

	// ConsumeActiveRole uses one game from the player's oldest active-role grant.
	// It reports false when the player has nothing to consume.
	ConsumeActiveRole(ctx context.Context, input *ConsumeActiveRoleInput) (bool, error)
}
