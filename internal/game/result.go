package game

import (
	"time"

	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/Polsaker/dongerdong/internal/repository"
	"github.com/Polsaker/dongerdong/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchResult describes how a match ended.
type MatchResult struct {
	Mode    models.Mode
	Winner  string // empty on a draw
	Losers  []string
	RealWin bool // false for idle-outs and coward quits
	EndedAt time.Time
}

// ResultRecorder writes a match's statistics through the RatingStore.
// Only ranked modes are recorded. Store failures are logged and skipped.
type ResultRecorder struct {
	store  repository.RatingStore
	elo    *service.ELOService
	botID  string
	newID  func() string
	logger *zap.Logger

	mode   models.Mode
	record *models.MatchRecord
}

func NewResultRecorder(store repository.RatingStore, elo *service.ELOService, botID string, logger *zap.Logger) *ResultRecorder {
	return &ResultRecorder{
		store:  store,
		elo:    elo,
		botID:  botID,
		newID:  uuid.NewString,
		logger: logger,
	}
}

// Begin opens the box score and counts the match for every participant.
func (r *ResultRecorder) Begin(mode models.Mode, participants []string, now time.Time) {
	r.mode = mode
	r.record = nil
	if !mode.Ranked() {
		return
	}

	counter := models.CounterMatches
	if mode == models.ModeDeathmatch {
		counter = models.CounterDeathmatches
	}
	for _, p := range participants {
		r.count(p, counter, 1)
	}

	if len(participants) == 2 {
		r.record = models.NewMatchRecord(r.newID(), mode, participants[0], participants[1], now)
	}
}

// RecordTurn counts one turn for every combatant, dead or alive.
func (r *ResultRecorder) RecordTurn(match *models.Match) {
	if !r.mode.Ranked() {
		return
	}
	for _, c := range match.Ordered() {
		r.count(c.ID, models.CounterTurns, 1)
	}
	if r.record != nil {
		r.record.Turns++
	}
}

func (r *ResultRecorder) RecordHit(out CombatOutcome) {
	if !r.mode.Ranked() || out.Kind == KindInstakill {
		return
	}

	r.count(out.SourceID, models.CounterHits, 1)
	r.count(out.SourceID, models.CounterTotalDamage, out.Damage)
	if out.CountCrit {
		r.count(out.SourceID, models.CounterCrits, 1)
	}

	if r.record == nil {
		return
	}
	if side := r.record.Side(out.SourceID); side != nil {
		side.Hits++
		side.TotalDamage += out.Damage
		if out.Critical {
			side.Crits++
		}
		if out.PraiseRoll != 0 {
			side.Praise = praiseKind(out)
			side.PraiseRoll = -out.Damage
		}
	}
}

func (r *ResultRecorder) RecordHeal(out CombatOutcome) {
	if !r.mode.Ranked() {
		return
	}

	if !out.Critical {
		r.count(out.TargetID, models.CounterHeals, 1)
	}
	r.count(out.TargetID, models.CounterTotalHealing, out.Healed)

	if r.record == nil {
		return
	}
	if side := r.record.Side(out.TargetID); side != nil {
		side.Heals++
		side.TotalHealing += out.Healed
	}
	if out.PraiseRoll != 0 {
		if side := r.record.Side(out.SourceID); side != nil {
			side.Praise = praiseKind(out)
			side.PraiseRoll = out.Healed
		}
	}
}

func (r *ResultRecorder) RecordPraise(actorID string) {
	r.count(actorID, models.CounterPraises, 1)
}

// RecordDeath charges a loss to victim unless the system opponent slew them.
func (r *ResultRecorder) RecordDeath(victimID, slayerID string) {
	if !models.SameID(slayerID, r.botID) {
		r.count(victimID, models.CounterLosses, 1)
	}
	if r.record != nil {
		if models.SameID(r.record.Player1.Name, victimID) {
			r.record.Winner = 2
		} else if models.SameID(r.record.Player2.Name, victimID) {
			r.record.Winner = 1
		}
	}
}

func (r *ResultRecorder) RecordQuit(id string) {
	r.count(id, models.CounterQuits, 1)
}

func (r *ResultRecorder) RecordIdleOut(id string) {
	r.count(id, models.CounterIdleOuts, 1)
}

// Finish awards the win, saves the box score and updates ratings after a
// real ranked win. It returns the rating changes, if any.
func (r *ResultRecorder) Finish(result MatchResult) []service.RatingChange {
	defer func() {
		r.record = nil
		r.mode = ""
	}()

	if !result.Mode.Ranked() {
		return nil
	}

	if result.RealWin && result.Winner != "" && !onlyLoser(result.Losers, r.botID) {
		r.count(result.Winner, models.CounterWins, 1)
	}

	if r.record != nil {
		if result.Winner != "" {
			r.record.DeclareWinner(result.Winner)
		} else {
			r.record.Winner = 0
		}
		if err := r.store.SaveMatchRecord(r.record); err != nil {
			r.logger.Error("Failed to save match record",
				zap.String("matchId", r.record.ID),
				zap.Error(err))
		}
	}

	if !result.RealWin || result.Winner == "" || len(result.Losers) == 0 {
		return nil
	}

	return r.updateRatings(result.Winner, result.Losers[0], result.Mode)
}

// updateRatings computes both ratings from the pre-match snapshot before writing either.
func (r *ResultRecorder) updateRatings(winnerID, loserID string, mode models.Mode) []service.RatingChange {
	winner, err := r.store.GetOrCreate(winnerID)
	if err != nil {
		r.logger.Error("Failed to load winner rating", zap.String("player", winnerID), zap.Error(err))
		return nil
	}
	loser, err := r.store.GetOrCreate(loserID)
	if err != nil {
		r.logger.Error("Failed to load loser rating", zap.String("player", loserID), zap.Error(err))
		return nil
	}

	w, l := r.elo.CalculateNewRatings(winner, loser, mode)

	for _, change := range []service.RatingChange{w, l} {
		if err := r.store.SetRating(change.Name, change.NewRating); err != nil {
			r.logger.Error("Failed to set rating",
				zap.String("player", change.Name),
				zap.Int("rating", change.NewRating),
				zap.Error(err))
		}
	}

	r.logger.Info("Ratings updated",
		zap.String("winner", w.Name),
		zap.Int("winnerChange", w.Change),
		zap.String("loser", l.Name),
		zap.Int("loserChange", l.Change))

	return []service.RatingChange{w, l}
}

func (r *ResultRecorder) count(name string, counter models.Counter, amount int) {
	if !r.mode.Ranked() || amount == 0 {
		return
	}
	if err := r.store.IncrementCounter(name, counter, amount); err != nil {
		r.logger.Warn("Failed to count stat",
			zap.String("player", name),
			zap.String("counter", string(counter)),
			zap.Error(err))
	}
}

func praiseKind(out CombatOutcome) models.PraiseKind {
	if models.SameID(out.SourceID, out.TargetID) {
		return models.PraiseOnSelf
	}
	return models.PraiseOnEnemy
}

func onlyLoser(losers []string, id string) bool {
	return len(losers) == 1 && models.SameID(losers[0], id)
}
