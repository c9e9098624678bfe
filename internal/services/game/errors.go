package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilPlayerRepo      GameError = "player repository cannot be nil"
	ErrNilEntitlementRepo GameError = "entitlement repository cannot be nil"
	ErrNilNotifier        GameError = "notifier cannot be nil"
	ErrNilPresenter       GameError = "presenter cannot be nil"
	ErrNilDiceRoller      GameError = "dice roller cannot be nil"
	ErrNilScheduler       GameError = "scheduler cannot be nil"
	ErrEmptyScope         GameError = "scope key cannot be empty"
	ErrEmptyPlayerID      GameError = "player ID cannot be empty"
	ErrInvalidGrant       GameError = "grant must cover at least one game"
	ErrInvalidPlayerRange GameError = "minimum players cannot exceed maximum players"
)
