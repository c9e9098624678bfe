package entitlement

import "github.com/KirkDiggler/mafiabot/internal/models"

// GrantEntitlementInput contains parameters for granting an entitlement
type GrantEntitlementInput struct {
	PlayerID string
	Kind     models.EntitlementKind

	// Games is how many games the grant lasts
	Games int
}

// GrantEntitlementOutput contains the created grant
type GrantEntitlementOutput struct {
	Entitlement *models.Entitlement
}

// ListEntitlementsInput contains parameters for listing a player's grants
type ListEntitlementsInput struct {
	PlayerID string
}

// ListEntitlementsOutput contains a player's grants
type ListEntitlementsOutput struct {
	Entitlements []*models.Entitlement
}

// ConsumeActiveRoleInput contains parameters for consuming an active-role grant
type ConsumeActiveRoleInput struct {
	PlayerID string
}
