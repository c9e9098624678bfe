package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/KirkDiggler/mafiabot/internal/common/clock"
	"github.com/KirkDiggler/mafiabot/internal/models"
	entitlementRepo "github.com/KirkDiggler/mafiabot/internal/repositories/entitlement"
	gameRepo "github.com/KirkDiggler/mafiabot/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/mafiabot/internal/repositories/player"
	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
	"github.com/rs/zerolog/log"
)

var botNames = []string{
	"Vito", "Sonny", "Fredo", "Tessio", "Clemenza", "Luca", "Paulie", "Tommy",
	"Carlo", "Rocco", "Sal", "Enzo", "Nicky", "Frankie", "Joey", "Benny",
}

// Session is one game bound to a chat scope. Every exported method takes the
// session lock; unexported methods expect it to be held.
type Session struct {
	mu    sync.Mutex
	cfg   *Config
	scope string

	gameID  string
	variant models.Variant
	phase   models.Phase
	round   int
	roster  []*models.Participant
	nextID  int

	ledger        *Ledger
	expected      map[string]bool
	votes         map[string]bool
	nominations   map[string]string
	confirmations map[string]bool

	pendingCandidate            string
	executionerImmunityConsumed bool

	lobbyRef    *messaging.MessageRef
	timerRef    *messaging.MessageRef
	timerPhase  models.Phase
	timerCancel context.CancelFunc

	// epoch invalidates callbacks from timers that were stopped
	epoch uint64

	// finishing is set once every answer is in and the transition is queued
	finishing bool
}

func newSession(cfg *Config, scope string) *Session {
	s := &Session{
		cfg:   cfg,
		scope: scope,
		phase: models.PhaseLobby,
	}
	s.clearRoster()
	return s
}

// ScopeKey returns the chat scope the session is bound to
func (s *Session) ScopeKey() string {
	return s.scope
}

// Phase returns the current phase
func (s *Session) Phase() models.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Round returns the current round, starting at 1 on the first night
func (s *Session) Round() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round
}

// GameID returns the persisted game ID, empty until one is allocated
func (s *Session) GameID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameID
}

// Participants returns a copy of the roster in seat order
func (s *Session) Participants() []*models.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Participant, len(s.roster))
	for i, p := range s.roster {
		out[i] = p.Clone()
	}
	return out
}

func (s *Session) clearRoster() {
	s.roster = nil
	s.nextID = 0
	s.round = 0
	s.ledger = NewLedger()
	s.expected = map[string]bool{}
	s.votes = map[string]bool{}
	s.nominations = map[string]string{}
	s.confirmations = map[string]bool{}
	s.pendingCandidate = ""
	s.executionerImmunityConsumed = false
	s.lobbyRef = nil
}

// reset discards the current game and opens a new lobby with a fresh game ID
func (s *Session) reset(ctx context.Context, variant models.Variant) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimer()
	if s.gameID != "" && s.phase != models.PhaseEnded {
		if err := s.cfg.GameRepo.EndGame(ctx, &gameRepo.EndGameInput{GameID: s.gameID}); err != nil {
			log.Warn().Err(err).Str("scope", s.scope).Str("game_id", s.gameID).Msg("failed to end replaced game")
		}
	}

	s.clearRoster()
	s.gameID = ""
	s.variant = variant
	s.setPhase(models.PhaseLobby)

	out, err := s.cfg.GameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
		ScopeKey: s.scope,
		Variant:  variant,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	s.gameID = out.Game.ID

	s.broadcastLobby(ctx)
	return s.gameID, nil
}

// restore rebuilds an in-progress game from its persisted record. Per-game
// flags that are not persisted start over, and play resumes at day.
func (s *Session) restore(ctx context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearRoster()
	s.gameID = game.ID
	s.variant = game.Variant

	if len(game.Participants) == 0 {
		s.setPhase(models.PhaseLobby)
		return nil
	}

	for _, rec := range game.Participants {
		s.roster = append(s.roster, &models.Participant{
			ID:          rec.ID,
			HumanID:     rec.HumanID,
			Name:        rec.Name,
			IsBot:       rec.IsBot,
			Role:        rec.Role,
			Alive:       rec.Alive,
			PotatoReady: game.Variant.Potato && rec.Role == models.RoleCivil,
		})
		if n, err := strconv.Atoi(rec.ID); err == nil && n > s.nextID {
			s.nextID = n
		}
	}
	s.round = 1

	log.Info().Str("scope", s.scope).Str("game_id", s.gameID).Int("participants", len(s.roster)).Msg("restored game")

	if winner, ok := EvaluateWin(s.roster); ok {
		return s.endGame(ctx, winner)
	}
	return s.enterDay(ctx)
}

// Join seats a human in the lobby
func (s *Session) Join(ctx context.Context, humanID, name string) (string, models.RejectReason) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.IsLobby() {
		return "", models.RejectWrongPhase
	}
	if s.byHuman(humanID) != nil {
		return "", models.RejectAlreadyJoined
	}
	if len(s.roster) >= s.cfg.MaxPlayers {
		return "", models.RejectGameFull
	}

	p := s.seat(humanID, name, false)
	s.broadcastLobby(ctx)
	return p.ID, models.RejectNone
}

// AddBot seats a scripted participant in the lobby
func (s *Session) AddBot(ctx context.Context) (string, string, models.RejectReason) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.IsLobby() {
		return "", "", models.RejectWrongPhase
	}
	if len(s.roster) >= s.cfg.MaxPlayers {
		return "", "", models.RejectGameFull
	}

	bots := 0
	for _, p := range s.roster {
		if p.IsBot {
			bots++
		}
	}
	if bots >= s.cfg.MaxBots {
		return "", "", models.RejectTooManyBots
	}

	p := s.seat("", s.botName(), true)
	s.broadcastLobby(ctx)
	return p.ID, p.Name, models.RejectNone
}

func (s *Session) seat(humanID, name string, bot bool) *models.Participant {
	s.nextID++
	p := &models.Participant{
		ID:      strconv.Itoa(s.nextID),
		HumanID: humanID,
		Name:    name,
		IsBot:   bot,
		Alive:   true,
	}
	s.roster = append(s.roster, p)
	return p
}

func (s *Session) botName() string {
	used := make(map[string]bool, len(s.roster))
	for _, p := range s.roster {
		used[p.Name] = true
	}

	free := make([]string, 0, len(botNames))
	for _, n := range botNames {
		if !used[n] {
			free = append(free, n)
		}
	}
	if len(free) == 0 {
		return fmt.Sprintf("Bot %d", s.nextID+1)
	}
	return free[s.cfg.Roller.Intn(len(free))]
}

// Start deals roles and begins the first night
func (s *Session) Start(ctx context.Context) (models.RejectReason, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.IsLobby() {
		return models.RejectWrongPhase, nil
	}
	if len(s.roster) < s.cfg.MinPlayers {
		return models.RejectTooFewPlayers, nil
	}

	if s.gameID == "" {
		out, err := s.cfg.GameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
			ScopeKey: s.scope,
			Variant:  s.variant,
		})
		if err != nil {
			return models.RejectNone, fmt.Errorf("failed to create game: %w", err)
		}
		s.gameID = out.Game.ID
	}

	pool := BuildRolePool(len(s.roster), RolePoolConfig{
		ExtraMafiaThreshold: s.cfg.ExtraMafiaThreshold,
		EnableDeputy:        s.cfg.EnableDeputy,
		EnableConsigliere:   s.cfg.EnableConsigliere,
		EnableMayor:         s.cfg.EnableMayor,
		EnablePetrushka:     s.cfg.EnablePetrushka,
	})
	DealRoles(s.roster, pool, s.cfg.Roller, s.consumeEntitlements(ctx), s.variant.Potato)

	var errs []error
	for _, p := range s.roster {
		err := s.cfg.GameRepo.AddParticipant(ctx, &gameRepo.AddParticipantInput{
			GameID:      s.gameID,
			Participant: record(p),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to persist participant %s: %w", p.ID, err))
		}
	}

	s.broadcast(ctx, s.cfg.Presenter.GameStarted(&messaging.GameStartedInput{
		Names:  s.names(func(*models.Participant) bool { return true }),
		Potato: s.variant.Potato,
	}))

	for _, p := range s.roster {
		card := &messaging.RoleCardInput{Role: p.Role, Potato: p.HasPotato()}
		if p.Role.IsMafiaAligned() {
			card.Teammates = s.names(func(o *models.Participant) bool {
				return o.ID != p.ID && o.Role.IsMafiaAligned()
			})
		}
		s.direct(ctx, p, s.cfg.Presenter.RoleCard(card))
	}

	log.Info().Str("scope", s.scope).Str("game_id", s.gameID).Int("players", len(s.roster)).Bool("potato", s.variant.Potato).Msg("game started")

	errs = append(errs, s.enterNight(ctx))
	return models.RejectNone, errors.Join(errs...)
}

// consumeEntitlements uses up one game of every human's active-role grant
func (s *Session) consumeEntitlements(ctx context.Context) map[string]bool {
	entitled := make(map[string]bool)
	for _, p := range s.roster {
		if !p.IsHuman() {
			continue
		}
		ok, err := s.cfg.EntitlementRepo.ConsumeActiveRole(ctx, &entitlementRepo.ConsumeActiveRoleInput{
			PlayerID: p.HumanID,
		})
		if err != nil {
			log.Warn().Err(err).Str("human_id", p.HumanID).Msg("failed to consume entitlement")
			continue
		}
		entitled[p.ID] = ok
	}
	return entitled
}

// SubmitAction records a human's night target
func (s *Session) SubmitAction(ctx context.Context, humanID, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseNight {
		return false, nil
	}
	p := s.byHuman(humanID)
	if p == nil || !p.Alive {
		return false, nil
	}
	if _, ok := s.ledger.Expected(p.ID); !ok {
		return false, nil
	}

	target = normalizeTarget(target)
	if target != "" && !containsID(s.nightTargets(p), target) {
		return false, nil
	}

	s.ledger.Record(p.ID, target)
	p.PendingAction = target
	return true, s.maybeFinish(ctx)
}

// CastVote records a human's yes/no on lynching today
func (s *Session) CastVote(ctx context.Context, humanID string, yes bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseVote {
		return false, nil
	}
	p := s.byHuman(humanID)
	if p == nil || !s.expected[p.ID] {
		return false, nil
	}

	s.votes[p.ID] = yes
	return true, s.maybeFinish(ctx)
}

// Nominate records a human's nomination
func (s *Session) Nominate(ctx context.Context, humanID, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseNomination {
		return false, nil
	}
	p := s.byHuman(humanID)
	if p == nil || !s.expected[p.ID] {
		return false, nil
	}

	target = normalizeTarget(target)
	if target != "" && !containsID(s.living(p.ID), target) {
		return false, nil
	}

	s.nominations[p.ID] = target
	return true, s.maybeFinish(ctx)
}

// Confirm records a human's yes/no on executing the nominee
func (s *Session) Confirm(ctx context.Context, humanID string, yes bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseConfirmation {
		return false, nil
	}
	p := s.byHuman(humanID)
	if p == nil || !s.expected[p.ID] {
		return false, nil
	}

	s.confirmations[p.ID] = yes
	return true, s.maybeFinish(ctx)
}

// Cancel stops the game. Deaths already persisted stay persisted.
func (s *Session) Cancel(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase.IsEnded() || (s.gameID == "" && len(s.roster) == 0) {
		return false, nil
	}

	s.stopTimer()

	var err error
	if s.gameID != "" {
		if endErr := s.cfg.GameRepo.EndGame(ctx, &gameRepo.EndGameInput{GameID: s.gameID}); endErr != nil {
			err = fmt.Errorf("failed to end game: %w", endErr)
		}
	}

	s.setPhase(models.PhaseEnded)
	s.clearRoster()
	s.broadcast(ctx, s.cfg.Presenter.Cancelled())

	log.Info().Str("scope", s.scope).Str("game_id", s.gameID).Msg("game cancelled")
	return true, err
}

// Status returns the public state of the session
func (s *Session) Status() *GetStatusOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetStatusOutput{
		GameID: s.gameID,
		Phase:  s.phase,
		Round:  s.round,
		Alive:  s.names(func(p *models.Participant) bool { return p.Alive }),
		Dead:   s.names(func(p *models.Participant) bool { return !p.Alive }),
	}
}

// CanSpeak reports whether a human may post in the scope's chat. Nobody
// talks at night and the dead never talk.
func (s *Session) CanSpeak(humanID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.IsInProgress() {
		return true
	}
	if s.phase == models.PhaseNight {
		return false
	}
	p := s.byHuman(humanID)
	return p == nil || p.Alive
}

// night

func (s *Session) enterNight(ctx context.Context) error {
	s.round++
	s.setPhase(models.PhaseNight)
	s.ledger = NewLedger()
	for _, p := range s.roster {
		p.PendingAction = ""
	}

	s.broadcast(ctx, s.cfg.Presenter.NightFalls(&messaging.NightFallsInput{Round: s.round}))

	actors := make([]*models.Participant, 0, len(s.roster))
	for _, p := range s.roster {
		if p.CanActAtNight() {
			s.ledger.Expect(p.ID, nightKind(p))
			actors = append(actors, p)
		}
	}

	s.armTimer(models.PhaseNight, s.cfg.NightDuration, s.finishNight)

	for _, p := range actors {
		kind, _ := s.ledger.Expected(p.ID)
		targets := s.nightTargets(p)
		prompt := &Prompt{Kind: PromptNight, Self: p, Targets: targets}
		if p.IsHuman() {
			prompt.Message = s.cfg.Presenter.NightPrompt(&messaging.NightPromptInput{
				Scope:   s.scope,
				Role:    p.Role,
				Potato:  kind == ActionPotato,
				Targets: asTargets(targets),
			})
		}
		if d, ok := s.actorFor(p).Decide(ctx, prompt); ok {
			s.ledger.Record(p.ID, d.Target)
			p.PendingAction = d.Target
		}
	}

	return s.maybeFinish(ctx)
}

func (s *Session) finishNight(ctx context.Context) error {
	if s.phase != models.PhaseNight {
		return nil
	}
	s.stopTimer()

	report := ResolveNight(s.ledger, s.roster, s.cfg.Roller, s.cfg.PotatoHitChance)

	var errs []error
	if sw := report.Swap; sw != nil {
		err := s.cfg.GameRepo.SetParticipantRole(ctx, &gameRepo.SetParticipantRoleInput{
			GameID:        s.gameID,
			ParticipantID: sw.TargetID,
			Role:          sw.To,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to persist role swap: %w", err))
		}
		if target := s.byID(sw.TargetID); target != nil {
			s.direct(ctx, target, s.cfg.Presenter.RoleSwapped(&messaging.RoleSwappedInput{NewRole: sw.To}))
		}
	}

	for _, id := range report.Killed {
		if err := s.persistDeath(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}

	for _, r := range report.Reveals {
		target := s.byID(r.TargetID)
		if target == nil {
			continue
		}
		if actor := s.byID(r.ActorID); actor != nil {
			s.direct(ctx, actor, s.cfg.Presenter.Investigation(&messaging.InvestigationInput{
				TargetName: target.Name,
				Role:       r.Role,
			}))
		}
		for _, id := range r.SharedWith {
			if mate := s.byID(id); mate != nil {
				s.direct(ctx, mate, s.cfg.Presenter.Investigation(&messaging.InvestigationInput{
					TargetName: target.Name,
					Role:       r.Role,
					Shared:     true,
				}))
			}
		}
	}

	s.broadcast(ctx, s.cfg.Presenter.MorningReport(&messaging.MorningReportInput{
		Round:  s.round,
		Killed: s.namesOf(report.Killed),
		Saved:  s.namesOf(report.Saved),
		Alive:  s.names(func(p *models.Participant) bool { return p.Alive }),
		Dead:   s.names(func(p *models.Participant) bool { return !p.Alive }),
	}))

	if winner, ok := EvaluateWin(s.roster); ok {
		errs = append(errs, s.endGame(ctx, winner))
		return errors.Join(errs...)
	}

	errs = append(errs, s.enterDay(ctx))
	return errors.Join(errs...)
}

// day

func (s *Session) enterDay(ctx context.Context) error {
	s.setPhase(models.PhaseDay)
	s.armTimer(models.PhaseDay, s.cfg.DayDuration, s.finishDay)
	return nil
}

func (s *Session) finishDay(ctx context.Context) error {
	if s.phase != models.PhaseDay {
		return nil
	}
	return s.enterVote(ctx)
}

// vote

func (s *Session) enterVote(ctx context.Context) error {
	s.setPhase(models.PhaseVote)
	s.votes = map[string]bool{}
	s.expectLiving("")

	s.broadcast(ctx, s.cfg.Presenter.VotePoll(&messaging.VotePollInput{Scope: s.scope, Round: s.round}))
	s.armTimer(models.PhaseVote, s.cfg.VoteDuration, s.finishVote)

	// The poll is public, so humans get no private prompt
	for _, p := range s.roster {
		if !s.expected[p.ID] {
			continue
		}
		if d, ok := s.actorFor(p).Decide(ctx, &Prompt{Kind: PromptVote, Self: p}); ok {
			s.votes[p.ID] = d.Yes
		}
	}

	return s.maybeFinish(ctx)
}

func (s *Session) finishVote(ctx context.Context) error {
	if s.phase != models.PhaseVote {
		return nil
	}
	s.stopTimer()

	yes, no := countYes(s.votes)
	proceed := PollPasses(yes, no)
	s.broadcast(ctx, s.cfg.Presenter.VoteResult(&messaging.VoteResultInput{Yes: yes, No: no, Proceed: proceed}))

	if !proceed {
		return s.enterNight(ctx)
	}
	return s.enterNomination(ctx)
}

// nomination

func (s *Session) enterNomination(ctx context.Context) error {
	s.setPhase(models.PhaseNomination)
	s.nominations = map[string]string{}
	s.expectLiving("")

	s.armTimer(models.PhaseNomination, s.cfg.NominationDuration, s.finishNomination)

	for _, p := range s.roster {
		if !s.expected[p.ID] {
			continue
		}
		targets := s.living(p.ID)
		prompt := &Prompt{Kind: PromptNomination, Self: p, Targets: targets}
		if p.IsHuman() {
			prompt.Message = s.cfg.Presenter.NominationPrompt(&messaging.NominationPromptInput{
				Scope:   s.scope,
				Targets: asTargets(targets),
			})
		}
		if d, ok := s.actorFor(p).Decide(ctx, prompt); ok {
			s.nominations[p.ID] = d.Target
		}
	}

	return s.maybeFinish(ctx)
}

func (s *Session) finishNomination(ctx context.Context) error {
	if s.phase != models.PhaseNomination {
		return nil
	}
	s.stopTimer()

	order := make([]string, len(s.roster))
	for i, p := range s.roster {
		order[i] = p.ID
	}
	winner, count := TallyNominations(order, s.nominations)
	majority := Majority(s.aliveCount())
	passed := winner != "" && count >= majority

	name := ""
	if p := s.byID(winner); p != nil {
		name = p.Name
	}
	s.broadcast(ctx, s.cfg.Presenter.NominationResult(&messaging.NominationResultInput{
		Name:     name,
		Count:    count,
		Majority: majority,
		Passed:   passed,
	}))

	if !passed {
		return s.enterNight(ctx)
	}
	return s.enterConfirmation(ctx, winner)
}

// confirmation

func (s *Session) enterConfirmation(ctx context.Context, nomineeID string) error {
	s.setPhase(models.PhaseConfirmation)
	s.pendingCandidate = nomineeID
	s.confirmations = map[string]bool{}
	s.expectLiving(nomineeID)

	s.armTimer(models.PhaseConfirmation, s.cfg.ConfirmationDuration, s.finishConfirmation)

	nominee := s.byID(nomineeID)
	for _, p := range s.roster {
		if !s.expected[p.ID] {
			continue
		}
		prompt := &Prompt{Kind: PromptConfirmation, Self: p}
		if p.IsHuman() {
			prompt.Message = s.cfg.Presenter.ConfirmationPrompt(&messaging.ConfirmationPromptInput{
				Scope:       s.scope,
				NomineeName: nominee.Name,
			})
		}
		if d, ok := s.actorFor(p).Decide(ctx, prompt); ok {
			s.confirmations[p.ID] = d.Yes
		}
	}

	return s.maybeFinish(ctx)
}

func (s *Session) finishConfirmation(ctx context.Context) error {
	if s.phase != models.PhaseConfirmation {
		return nil
	}
	s.stopTimer()

	nominee := s.byID(s.pendingCandidate)
	yes, no := countYes(s.confirmations)

	if nominee == nil || !nominee.Alive || !ConfirmationPasses(yes, s.aliveCount()) {
		name := ""
		if nominee != nil {
			name = nominee.Name
		}
		s.broadcast(ctx, s.cfg.Presenter.Execution(&messaging.ExecutionInput{NomineeName: name, Yes: yes, No: no}))
		return s.enterNight(ctx)
	}

	chance, applied := RopeBreakChance(RopeBreakInput{
		Base:                  s.cfg.RopeBreakBase,
		Multiplier:            s.cfg.ExecutionerMultiplier,
		Penalty:               s.cfg.RopeBreakPenalty,
		Min:                   s.cfg.RopeBreakMin,
		NomineeIsExecutioner:  nominee.Role == models.RoleExecutioner,
		ImmunityConsumed:      s.executionerImmunityConsumed,
		OtherExecutionerAlive: s.otherExecutionerAlive(nominee.ID),
	})

	var errs []error
	broke := s.cfg.Roller.Float64() < chance
	// Immunity is only spent when it actually saved the executioner
	if broke && applied {
		s.executionerImmunityConsumed = true
	}
	if !broke {
		nominee.Alive = false
		if err := s.persistDeath(ctx, nominee.ID); err != nil {
			errs = append(errs, err)
		}
	}

	exec := &messaging.ExecutionInput{
		NomineeName: nominee.Name,
		Yes:         yes,
		No:          no,
		Confirmed:   true,
		RopeBroke:   broke,
	}
	if !broke {
		exec.Role = nominee.Role
	}
	s.broadcast(ctx, s.cfg.Presenter.Execution(exec))

	if winner, ok := EvaluateWin(s.roster); ok {
		errs = append(errs, s.endGame(ctx, winner))
		return errors.Join(errs...)
	}

	errs = append(errs, s.enterNight(ctx))
	return errors.Join(errs...)
}

// end

func (s *Session) endGame(ctx context.Context, winner models.Faction) error {
	s.stopTimer()
	s.setPhase(models.PhaseEnded)

	var errs []error
	if err := s.cfg.GameRepo.EndGame(ctx, &gameRepo.EndGameInput{GameID: s.gameID, WinningSide: winner}); err != nil {
		errs = append(errs, fmt.Errorf("failed to end game: %w", err))
	}

	lines := make([]messaging.RosterLine, 0, len(s.roster))
	for _, p := range s.roster {
		lines = append(lines, messaging.RosterLine{Name: p.Name, Role: p.Role, Alive: p.Alive, IsBot: p.IsBot})

		if !s.cfg.ScoringEnabled || !p.IsHuman() {
			continue
		}
		won := p.Role.Faction() == winner
		delta := s.cfg.PointsLose
		if won {
			delta = s.cfg.PointsWin
		}
		err := s.cfg.PlayerRepo.AwardPoints(ctx, &playerRepo.AwardPointsInput{
			PlayerID: p.HumanID,
			Name:     p.Name,
			Delta:    delta,
			Won:      won,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to award points to %s: %w", p.HumanID, err))
		}
	}

	s.broadcast(ctx, s.cfg.Presenter.GameOver(&messaging.GameOverInput{Winner: winner, Roster: lines}))
	log.Info().Str("scope", s.scope).Str("game_id", s.gameID).Str("winner", string(winner)).Int("rounds", s.round).Msg("game over")

	s.clearRoster()
	return errors.Join(errs...)
}

// transitions

func (s *Session) setPhase(phase models.Phase) {
	s.phase = phase
	s.pendingCandidate = ""
	log.Debug().Str("scope", s.scope).Str("phase", phase.String()).Int("round", s.round).Msg("phase transition")
}

// maybeFinish queues the end of the current collection phase once everyone
// has answered. The transition runs on the scheduler so callers return before
// any message goes out.
func (s *Session) maybeFinish(ctx context.Context) error {
	if !s.cfg.EarlyFinish || s.finishing {
		return nil
	}

	switch s.phase {
	case models.PhaseNight:
		if s.ledger.Complete() {
			s.finishSoon(s.finishNight)
		}
	case models.PhaseVote:
		if len(s.votes) == len(s.expected) {
			s.finishSoon(s.finishVote)
		}
	case models.PhaseNomination:
		if len(s.nominations) == len(s.expected) {
			s.finishSoon(s.finishNomination)
		}
	case models.PhaseConfirmation:
		if len(s.confirmations) == len(s.expected) {
			s.finishSoon(s.finishConfirmation)
		}
	}
	return nil
}

// finishSoon replaces the phase timer with one that expires at once. The
// countdown message is left for stopTimer to finalise.
func (s *Session) finishSoon(next func(context.Context) error) {
	if s.timerCancel != nil {
		s.timerCancel()
		s.timerCancel = nil
	}
	s.epoch++
	s.finishing = true

	epoch := s.epoch
	s.timerCancel = s.cfg.Scheduler.Schedule(&clock.Countdown{
		OnExpire: func() {
			s.expire(epoch, next)
		},
	})
}

// timers

func (s *Session) armTimer(phase models.Phase, d time.Duration, next func(context.Context) error) {
	s.stopTimer()

	epoch := s.epoch
	step := s.cfg.CountdownStep
	if step < 0 {
		step = 0
	}

	s.timerPhase = phase
	s.timerCancel = s.cfg.Scheduler.Schedule(&clock.Countdown{
		Duration: d,
		Step:     step,
		OnTick: func(remaining time.Duration) {
			s.tick(epoch, remaining)
		},
		OnExpire: func() {
			s.expire(epoch, next)
		},
	})
}

func (s *Session) stopTimer() {
	if s.timerCancel != nil {
		s.timerCancel()
		s.timerCancel = nil
	}
	s.epoch++
	s.finishing = false

	if s.timerRef != nil {
		msg := s.cfg.Presenter.Countdown(&messaging.CountdownInput{Phase: s.timerPhase})
		if err := s.cfg.Notifier.EditMessage(context.Background(), s.timerRef, msg); err != nil {
			logDeliveryFailure(s.scope, s.scope, err)
		}
		s.timerRef = nil
	}
}

func (s *Session) tick(epoch uint64, remaining time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return
	}

	ctx := context.Background()
	msg := s.cfg.Presenter.Countdown(&messaging.CountdownInput{Phase: s.timerPhase, Remaining: remaining})
	if s.timerRef == nil {
		s.timerRef = s.broadcast(ctx, msg)
		return
	}
	if err := s.cfg.Notifier.EditMessage(ctx, s.timerRef, msg); err != nil {
		logDeliveryFailure(s.scope, s.scope, err)
	}
}

func (s *Session) expire(epoch uint64, next func(context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		log.Debug().Str("scope", s.scope).Msg("ignoring stale timer")
		return
	}

	if err := next(context.Background()); err != nil {
		log.Error().Err(err).Str("scope", s.scope).Str("game_id", s.gameID).Msg("phase transition failed")
	}
}

// delivery

func (s *Session) broadcast(ctx context.Context, msg *messaging.Message) *messaging.MessageRef {
	ref, err := s.cfg.Notifier.Broadcast(ctx, s.scope, msg)
	if err != nil {
		logDeliveryFailure(s.scope, s.scope, err)
		return nil
	}
	return ref
}

func (s *Session) broadcastLobby(ctx context.Context) {
	msg := s.cfg.Presenter.Lobby(&messaging.LobbyInput{
		Scope:      s.scope,
		Names:      s.names(func(*models.Participant) bool { return true }),
		MinPlayers: s.cfg.MinPlayers,
		MaxPlayers: s.cfg.MaxPlayers,
		Potato:     s.variant.Potato,
	})

	if s.lobbyRef != nil {
		err := s.cfg.Notifier.EditMessage(ctx, s.lobbyRef, msg)
		if err == nil {
			return
		}
		logDeliveryFailure(s.scope, s.scope, err)
	}
	s.lobbyRef = s.broadcast(ctx, msg)
}

func (s *Session) direct(ctx context.Context, p *models.Participant, msg *messaging.Message) {
	if !p.IsHuman() {
		return
	}
	if err := s.cfg.Notifier.DirectMessage(ctx, p.HumanID, msg); err != nil {
		logDeliveryFailure(s.scope, p.HumanID, err)
	}
}

func logDeliveryFailure(scope, recipient string, err error) {
	var de *messaging.DeliveryError
	if errors.As(err, &de) {
		log.Debug().Err(err).Str("scope", scope).Str("recipient", recipient).Msg("message undeliverable")
		return
	}
	log.Warn().Err(err).Str("scope", scope).Str("recipient", recipient).Msg("notifier call failed")
}

// roster helpers

func (s *Session) actorFor(p *models.Participant) Actor {
	if p.IsHuman() {
		return &humanActor{notifier: s.cfg.Notifier, humanID: p.HumanID}
	}
	return &scriptedActor{
		roller:           s.cfg.Roller,
		voteYesChance:    s.cfg.BotVoteYesChance,
		confirmYesChance: s.cfg.BotConfirmYesChance,
	}
}

func (s *Session) persistDeath(ctx context.Context, participantID string) error {
	err := s.cfg.GameRepo.SetParticipantAlive(ctx, &gameRepo.SetParticipantAliveInput{
		GameID:        s.gameID,
		ParticipantID: participantID,
		Alive:         false,
	})
	if err != nil {
		return fmt.Errorf("failed to persist death of %s: %w", participantID, err)
	}
	return nil
}

func (s *Session) byID(id string) *models.Participant {
	if id == "" {
		return nil
	}
	for _, p := range s.roster {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Session) byHuman(humanID string) *models.Participant {
	if humanID == "" {
		return nil
	}
	for _, p := range s.roster {
		if p.HumanID == humanID {
			return p
		}
	}
	return nil
}

// living returns the living roster, minus exclude
func (s *Session) living(exclude string) []*models.Participant {
	out := make([]*models.Participant, 0, len(s.roster))
	for _, p := range s.roster {
		if p.Alive && p.ID != exclude {
			out = append(out, p)
		}
	}
	return out
}

func (s *Session) aliveCount() int {
	return len(s.living(""))
}

func (s *Session) expectLiving(exclude string) {
	s.expected = make(map[string]bool, len(s.roster))
	for _, p := range s.living(exclude) {
		s.expected[p.ID] = true
	}
}

func (s *Session) otherExecutionerAlive(nomineeID string) bool {
	for _, p := range s.living(nomineeID) {
		if p.Role == models.RoleExecutioner {
			return true
		}
	}
	return false
}

// nightTargets lists who p may pick tonight. A doctor may pick themself
// until the self-heal is spent; nobody else may pick themself.
func (s *Session) nightTargets(p *models.Participant) []*models.Participant {
	if p.Role == models.RoleDoctor && !p.SelfHealUsed {
		return s.living("")
	}
	return s.living(p.ID)
}

func (s *Session) names(keep func(*models.Participant) bool) []string {
	out := make([]string, 0, len(s.roster))
	for _, p := range s.roster {
		if keep(p) {
			out = append(out, p.Name)
		}
	}
	return out
}

func (s *Session) namesOf(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if p := s.byID(id); p != nil {
			out = append(out, p.Name)
		}
	}
	return out
}

func nightKind(p *models.Participant) ActionKind {
	switch {
	case p.Role.IsAttacker():
		return ActionAttack
	case p.Role == models.RoleDoctor:
		return ActionHeal
	case p.Role.IsInvestigator():
		return ActionInvestigate
	case p.Role == models.RolePetrushka:
		return ActionSwap
	default:
		return ActionPotato
	}
}

func record(p *models.Participant) *models.ParticipantRecord {
	return &models.ParticipantRecord{
		ID:      p.ID,
		HumanID: p.HumanID,
		Name:    p.Name,
		Role:    p.Role,
		IsBot:   p.IsBot,
		Alive:   p.Alive,
	}
}

func asTargets(ps []*models.Participant) []messaging.Target {
	out := make([]messaging.Target, len(ps))
	for i, p := range ps {
		out[i] = messaging.Target{ID: p.ID, Name: p.Name}
	}
	return out
}

func containsID(ps []*models.Participant, id string) bool {
	for _, p := range ps {
		if p.ID == id {
			return true
		}
	}
	return false
}

func normalizeTarget(target string) string {
	switch target {
	case messaging.OptionSkip, "none":
		return ""
	default:
		return target
	}
}

func countYes(answers map[string]bool) (yes, no int) {
	for _, v := range answers {
		if v {
			yes++
		} else {
			no++
		}
	}
	return yes, no
}
