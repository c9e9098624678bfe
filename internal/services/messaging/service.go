package messaging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/mafiabot/internal/dice"
	"github.com/KirkDiggler/mafiabot/internal/models"
)

// ServiceConfig holds the presenter's dependencies
type ServiceConfig struct {
	// Roller picks flavour lines
	Roller dice.Roller
}

// service implements the Presenter interface
type service struct {
	roller dice.Roller
}

// NewService creates a new presenter
func NewService(cfg *ServiceConfig) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	return &service{roller: cfg.Roller}, nil
}

func (s *service) pick(lines ...string) string {
	return lines[s.roller.Intn(len(lines))]
}

var roleTitles = map[models.Role]string{
	models.RoleDon:         "Don",
	models.RoleMafia:       "Mafioso",
	models.RoleDoctor:      "Doctor",
	models.RoleDetective:   "Detective",
	models.RoleDeputy:      "Deputy",
	models.RoleConsigliere: "Consigliere",
	models.RoleMayor:       "Mayor",
	models.RoleExecutioner: "Executioner",
	models.RoleCivil:       "Civilian",
	models.RolePetrushka:   "Petrushka",
}

var roleBlurbs = map[models.Role]string{
	models.RoleDon:         "You run this town from the back room. Each night you pick who sleeps with the fishes, and your word beats any other mafioso's.",
	models.RoleMafia:       "You do the Don's dirty work. If the Don is gone or silent, your pick is the one that counts.",
	models.RoleDoctor:      "Each night you patch someone up before the bullets fly. You may save yourself, but only once per game.",
	models.RoleDetective:   "Each night you dig into one resident and learn their true role. Use it well, the town depends on you.",
	models.RoleDeputy:      "You back up the detective. Each night you check one resident's role on your own.",
	models.RoleConsigliere: "The family's advisor. Each night you learn one resident's role and the whole family hears about it.",
	models.RoleMayor:       "You hold the keys to the city and nothing else. Talk the town into the right lynch.",
	models.RoleExecutioner: "The rope knows you. The first time the town tries to hang you, it is twice as likely to snap.",
	models.RoleCivil:       "An honest citizen with nothing but a vote and a bad feeling about your neighbours.",
	models.RolePetrushka:   "A trickster with one trick. Once per game you can swap someone's role for a random one.",
}

// RoleTitle returns the display name of a role
func RoleTitle(role models.Role) string {
	if t, ok := roleTitles[role]; ok {
		return t
	}
	return string(role)
}

// Lobby renders the lobby roster with join controls
func (s *service) Lobby(input *LobbyInput) *Message {
	var b strings.Builder
	b.WriteString(s.pick(
		"🕴️ A new game of Mafia is being set up.",
		"🕴️ Someone is recruiting for a game of Mafia. Nobody asks why.",
		"🕴️ The town gathers. Some of you won't make it to the weekend.",
	))
	if input.Potato {
		b.WriteString("\n🥔 Potato rules are on tonight.")
	}
	fmt.Fprintf(&b, "\n\nPlayers (%d/%d, need %d):", len(input.Names), input.MaxPlayers, input.MinPlayers)
	if len(input.Names) == 0 {
		b.WriteString("\n_nobody yet_")
	}
	for i, name := range input.Names {
		fmt.Fprintf(&b, "\n%d. %s", i+1, name)
	}

	return &Message{
		Kind:  KindLobby,
		Scope: input.Scope,
		Text:  b.String(),
		Options: []Option{
			{Label: "Join", Value: OptionJoin},
			{Label: "Add bot", Value: OptionAddBot},
			{Label: "Start", Value: OptionStart},
		},
	}
}

// Rejection explains a refused lobby command
func (s *service) Rejection(reason models.RejectReason) string {
	switch reason {
	case models.RejectWrongPhase:
		return s.pick(
			"The game is already under way. Wait for the next one.",
			"Too late, the bodies are already dropping.",
		)
	case models.RejectGameFull:
		return "The table is full."
	case models.RejectAlreadyJoined:
		return s.pick(
			"You're already in. One seat per suspect.",
			"You already joined. Eager to die, are we?",
		)
	case models.RejectTooManyBots:
		return "No more bots allowed at this table."
	case models.RejectTooFewPlayers:
		return "Not enough players to start."
	default:
		return "That didn't work."
	}
}

// GameStarted announces the dealt table
func (s *service) GameStarted(input *GameStartedInput) *Message {
	text := fmt.Sprintf("%s\n\nAt the table: %s\n\nCheck your private messages for your role.",
		s.pick(
			"🎲 Roles have been dealt. Trust nobody.",
			"🎲 The cards are out. Somebody here is lying to you already.",
		),
		strings.Join(input.Names, ", "),
	)
	if input.Potato {
		text += "\n🥔 Every civilian has a potato and one good throw in them."
	}
	return &Message{Kind: KindText, Text: text}
}

// RoleCard tells a human their role
func (s *service) RoleCard(input *RoleCardInput) *Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Your role: **%s**\n%s", RoleTitle(input.Role), roleBlurbs[input.Role])
	if input.Potato {
		b.WriteString("\n🥔 You also hold a potato. Once per game you can throw it at someone at night; it hits half the time.")
	}
	if len(input.Teammates) > 0 {
		fmt.Fprintf(&b, "\nYour family: %s", strings.Join(input.Teammates, ", "))
	}
	return &Message{Kind: KindText, Text: b.String()}
}

// NightFalls announces the start of a night
func (s *service) NightFalls(input *NightFallsInput) *Message {
	return &Message{
		Kind: KindText,
		Text: fmt.Sprintf("🌙 Night %d. %s", input.Round, s.pick(
			"The town goes to sleep. Some of it permanently.",
			"Lights out. Keep your doors locked.",
			"The streets go quiet. Too quiet.",
		)),
	}
}

var nightAsks = map[models.Role]string{
	models.RoleDon:         "Who gets whacked tonight?",
	models.RoleMafia:       "Who gets whacked tonight?",
	models.RoleDoctor:      "Who do you patch up tonight?",
	models.RoleDetective:   "Whose closet do you search tonight?",
	models.RoleDeputy:      "Who do you check tonight?",
	models.RoleConsigliere: "Who should the family look into?",
	models.RolePetrushka:   "Whose role do you scramble?",
}

// NightPrompt asks a participant for a night target
func (s *service) NightPrompt(input *NightPromptInput) *Message {
	ask, ok := nightAsks[input.Role]
	if !ok || input.Potato {
		ask = "🥔 Who do you throw your potato at?"
	}

	options := make([]Option, 0, len(input.Targets)+1)
	for _, t := range input.Targets {
		options = append(options, Option{Label: t.Name, Value: t.ID})
	}
	options = append(options, Option{Label: "Skip", Value: OptionSkip})

	return &Message{
		Kind:    KindNightAction,
		Scope:   input.Scope,
		Text:    ask,
		Options: options,
	}
}

var phaseTitles = map[models.Phase]string{
	models.PhaseNight:        "Night",
	models.PhaseDay:          "Discussion",
	models.PhaseVote:         "Vote",
	models.PhaseNomination:   "Nominations",
	models.PhaseConfirmation: "Confirmation",
}

// Countdown renders the ticking phase timer
func (s *service) Countdown(input *CountdownInput) *Message {
	title, ok := phaseTitles[input.Phase]
	if !ok {
		title = string(input.Phase)
	}
	secs := int(input.Remaining.Round(time.Second) / time.Second)
	if secs <= 0 {
		return &Message{Kind: KindText, Text: fmt.Sprintf("⏰ %s: time's up.", title)}
	}
	return &Message{Kind: KindText, Text: fmt.Sprintf("⏳ %s: %ds left", title, secs)}
}

// Investigation reports a night finding
func (s *service) Investigation(input *InvestigationInput) *Message {
	prefix := "🔎"
	if input.Shared {
		prefix = "🤫 The consigliere reports:"
	}
	return &Message{
		Kind: KindText,
		Text: fmt.Sprintf("%s %s is the **%s**.", prefix, input.TargetName, RoleTitle(input.Role)),
	}
}

// RoleSwapped tells a participant their role changed
func (s *service) RoleSwapped(input *RoleSwappedInput) *Message {
	return &Message{
		Kind: KindText,
		Text: fmt.Sprintf("🎭 You wake up feeling different. You are now the **%s**.\n%s",
			RoleTitle(input.NewRole), roleBlurbs[input.NewRole]),
	}
}

// MorningReport summarises the night
func (s *service) MorningReport(input *MorningReportInput) *Message {
	var b strings.Builder
	fmt.Fprintf(&b, "☀️ Morning %d.\n", input.Round)

	if len(input.Killed) == 0 {
		b.WriteString(s.pick(
			"Everyone woke up. Disappointing for someone.",
			"No bodies this morning. Suspicious.",
			"A quiet night. Nobody died.",
		))
	}
	for _, name := range input.Killed {
		fmt.Fprintf(&b, "%s %s\n", "💀", s.pick(
			name+" was found face down in the river.",
			name+" won't be joining us for breakfast.",
			name+" has been permanently retired.",
		))
	}
	for _, name := range input.Saved {
		fmt.Fprintf(&b, "\n🩹 The doctor pulled %s back from the brink.", name)
	}

	fmt.Fprintf(&b, "\n\nAlive (%d): %s", len(input.Alive), strings.Join(input.Alive, ", "))
	if len(input.Dead) > 0 {
		fmt.Fprintf(&b, "\nDead (%d): %s", len(input.Dead), strings.Join(input.Dead, ", "))
	}
	b.WriteString("\n\nTalk it out. The vote comes soon.")

	return &Message{Kind: KindText, Text: b.String()}
}

// VotePoll opens the lynch poll
func (s *service) VotePoll(input *VotePollInput) *Message {
	return &Message{
		Kind:  KindVote,
		Scope: input.Scope,
		Text: s.pick(
			"🗳️ Do we hang anyone today?",
			"🗳️ The rope is ready. Do we use it today?",
		),
		Options: []Option{
			{Label: "Yes", Value: OptionYes},
			{Label: "No", Value: OptionNo},
		},
	}
}

// VoteResult closes the lynch poll
func (s *service) VoteResult(input *VoteResultInput) *Message {
	verdict := "The town decides to sleep on it."
	if input.Proceed {
		verdict = "The town wants blood. Check your private messages to nominate."
	}
	return &Message{
		Kind: KindText,
		Text: fmt.Sprintf("🗳️ %d yes, %d no. %s", input.Yes, input.No, verdict),
	}
}

// NominationPrompt asks a participant for a nominee
func (s *service) NominationPrompt(input *NominationPromptInput) *Message {
	options := make([]Option, 0, len(input.Targets)+1)
	for _, t := range input.Targets {
		options = append(options, Option{Label: t.Name, Value: t.ID})
	}
	options = append(options, Option{Label: "Nobody", Value: OptionSkip})

	return &Message{
		Kind:    KindNomination,
		Scope:   input.Scope,
		Text:    "👉 Who goes to the gallows?",
		Options: options,
	}
}

// NominationResult announces the nomination tally
func (s *service) NominationResult(input *NominationResultInput) *Message {
	var text string
	switch {
	case input.Name == "":
		text = "Nobody was nominated. Back to bed."
	case input.Passed:
		text = fmt.Sprintf("👉 %s is nominated with %d votes. Confirm the execution in your private messages.", input.Name, input.Count)
	default:
		text = fmt.Sprintf("👉 %s got %d of the %d nominations needed. Nobody hangs today.", input.Name, input.Count, input.Majority)
	}
	return &Message{Kind: KindText, Text: text}
}

// ConfirmationPrompt asks a participant to confirm an execution
func (s *service) ConfirmationPrompt(input *ConfirmationPromptInput) *Message {
	return &Message{
		Kind:  KindConfirmation,
		Scope: input.Scope,
		Text:  fmt.Sprintf("⚖️ Hang %s?", input.NomineeName),
		Options: []Option{
			{Label: "Hang", Value: OptionYes},
			{Label: "Spare", Value: OptionNo},
		},
	}
}

// Execution announces the outcome of a confirmation round
func (s *service) Execution(input *ExecutionInput) *Message {
	var text string
	switch {
	case !input.Confirmed:
		text = fmt.Sprintf("⚖️ %d yes, %d no. %s walks free, for now.", input.Yes, input.No, input.NomineeName)
	case input.RopeBroke:
		text = fmt.Sprintf("🪢 The rope snaps! %s drops to the ground alive. The town takes it as a sign.", input.NomineeName)
	default:
		text = fmt.Sprintf("💀 %s was hanged. They were the **%s**.", input.NomineeName, RoleTitle(input.Role))
	}
	return &Message{Kind: KindText, Text: text}
}

// GameOver announces the winner and reveals every role
func (s *service) GameOver(input *GameOverInput) *Message {
	var b strings.Builder
	if input.Winner == models.FactionMafia {
		b.WriteString(s.pick(
			"🕴️ The mafia wins. The town never stood a chance.",
			"🕴️ The family takes the town. Pay your protection money on time.",
		))
	} else {
		b.WriteString(s.pick(
			"🏙️ The town wins. The mafia is finished.",
			"🏙️ The last mobster is gone. The town can sleep again.",
		))
	}

	b.WriteString("\n")
	for _, line := range input.Roster {
		mark := "💀"
		if line.Alive {
			mark = "🙂"
		}
		name := line.Name
		if line.IsBot {
			name += " (bot)"
		}
		fmt.Fprintf(&b, "\n%s %s: %s", mark, name, RoleTitle(line.Role))
	}

	return &Message{Kind: KindText, Text: b.String()}
}

// Cancelled announces a stopped game
func (s *service) Cancelled() *Message {
	return &Message{Kind: KindText, Text: "🛑 The game was called off."}
}

// Status renders the current game state
func (s *service) Status(input *StatusInput) string {
	if input.Phase.IsLobby() {
		return fmt.Sprintf("Lobby with %d players waiting.", len(input.Alive))
	}
	if input.Phase.IsEnded() {
		return "No game in progress."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Round %d, %s.\nAlive (%d): %s", input.Round, input.Phase, len(input.Alive), strings.Join(input.Alive, ", "))
	if len(input.Dead) > 0 {
		fmt.Fprintf(&b, "\nDead (%d): %s", len(input.Dead), strings.Join(input.Dead, ", "))
	}
	return b.String()
}

// Profile renders a player's profile
func (s *service) Profile(input *ProfileInput) string {
	p := input.Player
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\nPoints: %d\nGames: %d\nWins: %d", p.Name, p.TotalPoints, p.TotalGames, p.TotalWins)

	games := 0
	for _, e := range input.Entitlements {
		if e.Kind == models.EntitlementActiveRole {
			games += e.RemainingGames
		}
	}
	if games > 0 {
		fmt.Fprintf(&b, "\nGuaranteed active role for %d more games", games)
	}
	return b.String()
}

// Leaderboard renders the points table
func (s *service) Leaderboard(board *models.Leaderboard) string {
	if board == nil || len(board.Entries) == 0 {
		return "Nobody has scored yet."
	}

	var b strings.Builder
	b.WriteString("🏆 Leaderboard")
	for i, e := range board.Entries {
		name := e.PlayerName
		if name == "" {
			name = e.PlayerID
		}
		fmt.Fprintf(&b, "\n%d. %s: %d", i+1, name, e.Points)
	}
	return b.String()
}
