package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Polsaker/dongerdong/internal/extcmd"
	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/Polsaker/dongerdong/internal/repository"
	"github.com/Polsaker/dongerdong/internal/service"
	"go.uber.org/zap"
)

// Announcer delivers room text. Delivery is fire-and-forget.
type Announcer interface {
	Announce(roomID, text string, emphasis models.Emphasis)
}

// Membership resolves names, localparts and display names to room identities.
type Membership interface {
	ResolveIdentity(nameOrHandle string) (string, error)
	DisplayName(id string) string
}

// Moderator is the best-effort moderation hook.
type Moderator interface {
	Remove(roomID, id, reason string) error
	ExtendedBan(id string)
}

type Options struct {
	RoomID           string
	BotID            string
	BotName          string
	GuardModifier    float64
	PokeAfter        time.Duration
	IdleForfeitAfter time.Duration
	ChallengeTTL     time.Duration
	Admins           []string
	StatsURL         string
}

type Dependencies struct {
	Store      repository.RatingStore
	ELO        *service.ELOService
	Stats      *service.StatsService
	Announcer  Announcer
	Membership Membership
	Moderator  Moderator
	Cooldown   BotCooldown
	Roller     Roller
	Extensions *extcmd.Registry
	Logger     *zap.Logger
}

// Engine owns one room's pending challenges and running match. One mutex
// serializes commands and watchdog ticks; announcements queued under the
// lock are delivered after it is released.
type Engine struct {
	mu   sync.Mutex
	opts Options

	negotiator *ChallengeNegotiator
	scheduler  *TurnScheduler
	combat     *CombatResolver
	policy     *OpponentPolicy
	recorder   *ResultRecorder

	stats      *service.StatsService
	announcer  Announcer
	membership Membership
	moderator  Moderator
	cooldown   BotCooldown
	roller     Roller
	extensions *extcmd.Registry
	logger     *zap.Logger

	outbox   []models.Announcement
	restFrom time.Time
	now      func() time.Time
}

func NewEngine(opts Options, deps Dependencies) *Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.ELO == nil {
		deps.ELO = service.NewELOService()
	}
	if deps.Stats == nil {
		deps.Stats = service.NewStatsService(deps.Store)
	}
	if opts.BotName == "" {
		opts.BotName = opts.BotID
	}
	log := deps.Logger.With(zap.String("room", opts.RoomID))

	return &Engine{
		opts:       opts,
		negotiator: NewChallengeNegotiator(opts.ChallengeTTL),
		scheduler:  NewTurnScheduler(opts.PokeAfter, opts.IdleForfeitAfter),
		combat:     NewCombatResolver(deps.Roller, opts.GuardModifier),
		policy:     NewOpponentPolicy(deps.Roller),
		recorder:   NewResultRecorder(deps.Store, deps.ELO, opts.BotID, log),
		stats:      deps.Stats,
		announcer:  deps.Announcer,
		membership: deps.Membership,
		moderator:  deps.Moderator,
		cooldown:   deps.Cooldown,
		roller:     deps.Roller,
		extensions: deps.Extensions,
		logger:     log,
		now:        time.Now,
	}
}

// Handle processes one inbound command. Validation errors are announced to
// the room and also returned.
func (e *Engine) Handle(ctx context.Context, cmd models.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := cmd.Timestamp
	if now.IsZero() {
		now = e.now()
	}
	cmd.Name = strings.ToLower(cmd.Name)

	// the cooldown may live in redis, so it is read before taking the lock
	botResting := false
	if _, ok := models.ModeForCommand(cmd.Name); ok && e.cooldown != nil {
		botResting = e.cooldown.Active(now)
	}

	e.mu.Lock()
	err := e.dispatch(cmd, now, botResting)
	if msg := UserMessage(err); msg != "" {
		e.say(msg)
	}
	out, restFrom := e.drain()
	e.mu.Unlock()

	e.startCooldown(restFrom)
	e.flush(out)

	if err != nil {
		e.logger.Debug("Command rejected",
			zap.String("actor", cmd.ActorID),
			zap.String("command", cmd.Name),
			zap.Error(err))
	}
	return err
}

// Tick runs one watchdog pass: challenge expiry while idle, idle
// enforcement while a match runs.
func (e *Engine) Tick(now time.Time) {
	e.mu.Lock()
	if e.scheduler.Running() {
		e.checkIdle(now)
	} else {
		for _, ch := range e.negotiator.Expire(now) {
			e.say(fmt.Sprintf("%s's challenge has expired.", e.displayName(ch.Initiator)))
		}
	}
	out, restFrom := e.drain()
	e.mu.Unlock()

	e.startCooldown(restFrom)
	e.flush(out)
}

func (e *Engine) dispatch(cmd models.Command, now time.Time, botResting bool) error {
	actor := cmd.ActorID
	running := e.scheduler.Running()

	switch action := models.LookupAction(cmd.Name); action {
	case models.ActionChallenge, models.ActionAccept, models.ActionReject, models.ActionCancel,
		models.ActionStats, models.ActionTop, models.ActionShame:
		if running {
			return ErrMatchRunning
		}
		switch action {
		case models.ActionChallenge:
			return e.challenge(actor, cmd.Name, cmd.Args, now, botResting)
		case models.ActionAccept:
			return e.accept(actor, cmd.Args, now)
		case models.ActionReject:
			return e.reject(actor, cmd.Args, now)
		case models.ActionCancel:
			return e.cancel(actor)
		case models.ActionStats:
			return e.playerStats(actor, cmd.Args)
		default:
			return e.leaderboard(action == models.ActionShame)
		}

	case models.ActionHit, models.ActionHeal, models.ActionPraise, models.ActionQuit:
		if !running {
			return ErrNoMatch
		}
		switch action {
		case models.ActionHit:
			return e.hit(actor, cmd.Args, now)
		case models.ActionHeal:
			return e.heal(actor, now)
		case models.ActionPraise:
			return e.praise(actor, cmd.Args, now)
		default:
			return e.quit(actor, now)
		}

	case models.ActionHelp:
		e.help(actor)
		return nil
	}

	ext, ok := e.extensions.Lookup(cmd.Name)
	if !ok {
		return ErrUnknownCommand
	}
	if ext.AdminOnly() && !e.isAdmin(actor) {
		return nil
	}
	return ext.Execute(engineView{e}, actor)
}

// Challenge negotiation

func (e *Engine) challenge(initiator, name string, args []string, now time.Time, botResting bool) error {
	mode, ok := models.ModeForCommand(name)
	if !ok {
		return ErrUnknownCommand
	}
	if models.SameID(initiator, e.opts.BotID) {
		return ErrBotUnavailable
	}
	if len(args) == 0 {
		extra := ""
		if mode == models.ModeOpen {
			extra = " [othernick] [...]"
		}
		return roomErr(ErrInvalidChallenge, "Can you even READ?! It is !%s <nick>%s", name, extra)
	}

	targets := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == models.Wildcard {
			targets = append(targets, arg)
			continue
		}
		id, err := e.membership.ResolveIdentity(arg)
		if err != nil {
			return roomErr(ErrNotInRoom, "%s is not in the channel.", arg)
		}
		targets = append(targets, id)
	}

	ch, err := e.negotiator.Challenge(initiator, targets, mode, now)
	if err != nil {
		return err
	}

	if ch.IsInvited(e.opts.BotID) {
		if mode.Ranked() {
			e.negotiator.Drop(initiator)
			return roomErr(ErrBotUnavailable, "%s is not available for duels or deathmatches", e.opts.BotName)
		}
		if botResting {
			e.negotiator.Drop(initiator)
			return roomErr(ErrBotCooldown, "%s needs a 30 second break before participating in a fight.", e.opts.BotName)
		}

		e.say("YOU WILL SEE")
		res, err := e.negotiator.Accept(e.opts.BotID, initiator)
		if err != nil {
			return err
		}
		if res.Resolution == ResolutionMatchReady {
			e.startMatch(res.Challenge.Mode, res.Participants, now)
			return nil
		}
	}

	invitees := make([]string, 0, len(ch.Invitees))
	for _, id := range ch.Invitees {
		invitees = append(invitees, e.displayName(id))
	}
	e.sayAs(challengeText(ch, e.displayName(initiator), invitees), models.EmphasisBold)
	if text := openSlotsText(ch); text != "" {
		e.say(text)
	}
	return nil
}

// challengeOf resolves a !accept or !reject argument to a pending challenge's initiator.
func (e *Engine) challengeOf(args []string, usage string) (string, error) {
	if len(args) == 0 {
		return "", roomErr(ErrMissingArgument, "Can you read? It is !%s <nick>", usage)
	}

	ref := args[0]
	id, err := e.membership.ResolveIdentity(ref)
	if err != nil {
		// the initiator left the room
		for _, ch := range e.negotiator.Pending() {
			if models.SameID(ch.Initiator, ref) || models.SameID(models.Localpart(ch.Initiator), ref) {
				e.negotiator.Drop(ch.Initiator)
				return "", ErrChallengeExpired
			}
		}
		return "", e.notChallenged(ref, usage)
	}
	if _, ok := e.negotiator.Get(id); !ok {
		return "", e.notChallenged(ref, usage)
	}
	return id, nil
}

func (e *Engine) notChallenged(ref, usage string) error {
	if usage == "reject" {
		return roomErr(ErrNotChallenged, "%s didn't challenge you.", ref)
	}
	return roomErr(ErrNotChallenged, "Err... Maybe you meant to say !fight %s? They never challenged you.", ref)
}

func (e *Engine) accept(responder string, args []string, now time.Time) error {
	initiator, err := e.challengeOf(args, "accept")
	if err != nil {
		return err
	}
	if models.SameID(responder, e.opts.BotID) {
		if ch, ok := e.negotiator.Get(initiator); ok && ch.Mode.Ranked() {
			return roomErr(ErrBotUnavailable, "%s is not available for duels or deathmatches", e.opts.BotName)
		}
	}

	res, err := e.negotiator.Accept(responder, initiator)
	switch {
	case errors.Is(err, ErrNotChallenged):
		return e.notChallenged(args[0], "accept")
	case errors.Is(err, ErrSelfChallenge):
		return roomErr(ErrSelfChallenge, "You're trying to fight yourself?")
	case err != nil:
		return err
	}

	if res.Resolution == ResolutionMatchReady {
		e.startMatch(res.Challenge.Mode, res.Participants, now)
	}
	return nil
}

func (e *Engine) reject(responder string, args []string, now time.Time) error {
	initiator, err := e.challengeOf(args, "reject")
	if err != nil {
		return err
	}

	res, err := e.negotiator.Reject(responder, initiator)
	if err != nil {
		return e.notChallenged(args[0], "reject")
	}

	e.sayAs(fmt.Sprintf("%s fled the fight", e.displayName(responder)), models.EmphasisBold)
	switch res.Resolution {
	case ResolutionChallengeCancelled:
		e.say("Fight cancelled.")
	case ResolutionMatchReady:
		e.startMatch(res.Challenge.Mode, res.Participants, now)
	}
	return nil
}

func (e *Engine) cancel(initiator string) error {
	if _, err := e.negotiator.Cancel(initiator); err != nil {
		return err
	}
	e.say("Fight cancelled.")
	return nil
}

// Match lifecycle

func (e *Engine) startMatch(mode models.Mode, participants []string, now time.Time) {
	e.negotiator.Clear()

	order := append([]string(nil), participants...)
	Shuffle(e.roller, order)

	seated := make([]*models.Combatant, 0, len(order))
	names := make([]string, 0, len(participants))
	for _, id := range order {
		seated = append(seated, models.NewCombatant(id, e.displayName(id)))
	}
	for _, id := range participants {
		names = append(names, e.displayName(id))
	}
	match := models.NewMatch(mode, seated, now)

	e.recorder.Begin(mode, participants, now)

	if mode == models.ModeDeathmatch {
		e.banner("DEATHMATCH")
	}
	if len(participants) == 2 {
		e.banner(versusBanner(names))
	}
	e.sayAs(rulesHTML, models.EmphasisHTML)
	if mode.PraiseAllowed() && (!match.Has(e.opts.BotID) || len(participants) > 2) {
		e.say("Use !praise [nick] to praise the donger gods (once per game).")
	}
	e.banner("FIGHT")

	e.logger.Info("Match started",
		zap.String("mode", string(mode)),
		zap.Strings("participants", participants))

	if term := e.scheduler.Start(match, now); term != TerminationNone {
		e.finish(term, true, now)
		return
	}
	e.turnStarted(now, true)
}

// advance passes the turn and plays the system opponent's turns until a
// human holds the turn or the match ends. realWin applies only to a
// termination found before the opponent acts.
func (e *Engine) advance(now time.Time, realWin bool) {
	if term := e.scheduler.Advance(now); term != TerminationNone {
		e.finish(term, realWin, now)
		return
	}
	e.turnStarted(now, true)
}

func (e *Engine) turnStarted(now time.Time, realWin bool) {
	for {
		holder, ok := e.scheduler.Current()
		if !ok {
			return
		}
		e.recorder.RecordTurn(e.scheduler.Match())
		e.sayAs(turnText(holder.DisplayName), models.EmphasisBold)

		if !models.SameID(holder.ID, e.opts.BotID) {
			return
		}

		e.scheduler.Begin()
		e.playOpponent(holder)

		if term := e.scheduler.Advance(now); term != TerminationNone {
			e.finish(term, realWin, now)
			return
		}
	}
}

func (e *Engine) playOpponent(self *models.Combatant) {
	match := e.scheduler.Match()
	decision, ok := e.policy.Decide(self, match)
	if !ok {
		return
	}

	switch decision.Action {
	case models.ActionHeal:
		e.say("!heal")
		if out, err := e.combat.ResolveHeal(self, false); err == nil {
			e.narrateHeal(out)
		}
	default:
		e.say("!hit " + decision.Target.DisplayName)
		e.narrateHit(e.combat.ResolveHit(match.Mode, self, decision.Target, false))
	}
}

// finish records the result, resets the room to idle and starts the bot
// cooldown if the bot took part.
func (e *Engine) finish(term Termination, realWin bool, now time.Time) {
	match := e.scheduler.Match()
	if match == nil {
		return
	}

	var losers, loserNames []string
	for _, c := range match.Dead() {
		losers = append(losers, c.ID)
		loserNames = append(loserNames, c.DisplayName)
	}

	result := MatchResult{
		Mode:    match.Mode,
		Losers:  losers,
		RealWin: realWin,
		EndedAt: now,
	}

	switch term {
	case TerminationWon:
		survivor, _ := e.scheduler.Survivor()
		result.Winner = survivor.ID
		if len(match.TurnOrder) > 2 && realWin {
			e.sayAs(strings.ToUpper(rektText(survivor.DisplayName, loserNames...)), models.EmphasisBold)
		}
	case TerminationDraw:
		e.say("Nobody survived. It's a draw.")
	}

	e.recorder.Finish(result)

	if match.Has(e.opts.BotID) {
		e.restFrom = now
	}

	e.logger.Info("Match finished",
		zap.String("mode", string(match.Mode)),
		zap.String("winner", result.Winner),
		zap.Strings("losers", losers),
		zap.Bool("realWin", realWin))

	e.scheduler.Reset()
}

// Turn actions

func (e *Engine) currentHolder(actor string) (*models.Combatant, error) {
	if !e.scheduler.IsTurn(actor) {
		return nil, ErrNotYourTurn
	}
	holder, _ := e.scheduler.Current()
	return holder, nil
}

func (e *Engine) hit(actor string, args []string, now time.Time) error {
	source, err := e.currentHolder(actor)
	if err != nil {
		return err
	}
	match := e.scheduler.Match()

	var target *models.Combatant
	if len(args) == 0 {
		var others []*models.Combatant
		for _, c := range match.Living() {
			if !models.SameID(c.ID, source.ID) {
				others = append(others, c)
			}
		}
		if len(others) == 0 {
			return ErrNotPlaying
		}
		target = others[e.roller.Roll(0, len(others)-1)]
	} else {
		id, err := e.membership.ResolveIdentity(args[0])
		c, ok := match.Combatant(id)
		switch {
		case err != nil || !ok:
			return roomErr(ErrNotPlaying, "You should hit something that is actually playing...")
		case models.SameID(c.ID, source.ID):
			return ErrSelfHit
		case !c.Alive():
			return ErrDeadTarget
		}
		target = c
	}

	e.scheduler.Begin()
	e.narrateHit(e.combat.ResolveHit(match.Mode, source, target, false))
	e.advance(now, true)
	return nil
}

func (e *Engine) heal(actor string, now time.Time) error {
	holder, err := e.currentHolder(actor)
	if err != nil {
		return err
	}

	out, err := e.combat.ResolveHeal(holder, false)
	if err != nil {
		return err
	}

	e.scheduler.Begin()
	e.narrateHeal(out)
	e.advance(now, true)
	return nil
}

func (e *Engine) praise(actor string, args []string, now time.Time) error {
	holder, err := e.currentHolder(actor)
	if err != nil {
		return err
	}
	match := e.scheduler.Match()

	if !match.Mode.PraiseAllowed() {
		return ErrPraiseDisabled
	}
	if holder.HasPraised {
		return ErrPraiseUsed
	}

	target := holder
	if len(args) > 0 {
		id, err := e.membership.ResolveIdentity(args[0])
		c, ok := match.Combatant(id)
		if err != nil || !ok || !c.Alive() {
			return roomErr(ErrNotPlaying, "Player not found.")
		}
		target = c
	}

	botInMatch := match.Has(e.opts.BotID)
	out, err := e.combat.ResolvePraise(match.Mode, holder, target, botInMatch)
	if err != nil {
		return err
	}

	e.scheduler.Begin()
	e.recorder.RecordPraise(holder.ID)
	if out.Overridden {
		e.say("You DARE try and suckle my donger while fighting me?!")
	}

	switch out.PraiseRoll {
	case PraiseHeal:
		e.banner("WHATEVER")
		e.narrateHeal(out)
	case PraiseSmite:
		e.banner("FUCK YOU")
		e.narrateHit(out)
	default:
		e.banner("NOPE")
	}

	e.advance(now, true)
	return nil
}

func (e *Engine) quit(actor string, now time.Time) error {
	match := e.scheduler.Match()
	killed, wasTurn := e.scheduler.HandleForfeit(actor)
	if !killed {
		return ErrNotPlaying
	}
	coward, _ := match.Combatant(actor)

	e.banner("COWARD")
	e.say("The coward is dead!")
	e.remove(coward.ID, "COWARD")
	e.recorder.RecordQuit(coward.ID)
	if match.Mode == models.ModeDeathmatch {
		e.extendedBan(coward.ID)
	}

	if wasTurn {
		e.advance(now, false)
		return nil
	}
	if term := e.scheduler.CheckTermination(); term != TerminationNone {
		e.finish(term, false, now)
	}
	return nil
}

func (e *Engine) checkIdle(now time.Time) {
	action, holder := e.scheduler.HandleIdle(now)
	switch action {
	case IdlePoke:
		e.sayAs(fmt.Sprintf("Wake up, %s!", holder.DisplayName), models.EmphasisBold)
	case IdleForfeit:
		e.sayAs(fmt.Sprintf("%s forfeits due to idle.", holder.DisplayName), models.EmphasisBold)
		e.recorder.RecordIdleOut(holder.ID)
		e.remove(holder.ID, "WAKE UP SHEEPLE")
		e.advance(now, false)
	}
}

// Narration

func (e *Engine) narrateHit(out CombatOutcome) {
	match := e.scheduler.Match()
	source, _ := match.Combatant(out.SourceID)
	target, _ := match.Combatant(out.TargetID)

	if out.Kind == KindInstakill {
		e.banner("INSTAKILL")
		e.kill(target, source)
		return
	}
	if out.CountCrit {
		e.banner("CRITICAL")
	}

	e.recorder.RecordHit(out)
	e.sayAs(hitText(source.DisplayName, target.DisplayName, out), models.EmphasisBold)

	if out.TargetDied {
		e.kill(target, source)
	}
}

func (e *Engine) narrateHeal(out CombatOutcome) {
	target, _ := e.scheduler.Match().Combatant(out.TargetID)
	e.recorder.RecordHeal(out)
	e.sayAs(healText(target.DisplayName, out), models.EmphasisBold)
}

// kill announces a death. The victim keeps their exact negative hp.
func (e *Engine) kill(victim, slayer *models.Combatant) {
	for _, b := range deathBanners(victim.HP, e.roller) {
		e.banner(b)
	}
	e.sayAs(rektText(slayer.DisplayName, victim.DisplayName), models.EmphasisBold)

	e.recorder.RecordDeath(victim.ID, slayer.ID)

	if e.scheduler.Match().Mode == models.ModeDeathmatch {
		e.extendedBan(victim.ID)
	}
	if !models.SameID(victim.ID, e.opts.BotID) {
		e.remove(victim.ID, "REKT")
	}
}

func (e *Engine) remove(id, reason string) {
	if e.moderator == nil {
		return
	}
	if err := e.moderator.Remove(e.opts.RoomID, id, reason); err != nil {
		e.logger.Warn("Failed to remove player",
			zap.String("player", id),
			zap.String("reason", reason),
			zap.Error(err))
	}
}

func (e *Engine) extendedBan(id string) {
	if e.moderator != nil {
		e.moderator.ExtendedBan(id)
	}
}

// Informational commands

func (e *Engine) playerStats(actor string, args []string) error {
	name := actor
	if len(args) > 0 {
		name = args[0]
	}
	if id, err := e.membership.ResolveIdentity(name); err == nil {
		name = id
	}

	summary, err := e.stats.Summary(name)
	if errors.Is(err, service.ErrPlayerNotFound) {
		e.say(fmt.Sprintf("No stats for %s.", e.displayName(name)))
		return nil
	}
	if err != nil {
		e.logger.Error("Failed to get player stats", zap.String("player", name), zap.Error(err))
		return err
	}

	e.sayAs(statsText(summary.Record, summary.Rank), models.EmphasisBold)
	return nil
}

func (e *Engine) leaderboard(bottom bool) error {
	records, err := e.stats.Leaderboard(service.DefaultLeaderboardLimit, bottom)
	if err != nil {
		e.logger.Error("Failed to get leaderboard", zap.Error(err))
		return err
	}
	if len(records) == 0 {
		e.say("No top dongers.")
		return nil
	}

	for i, r := range records {
		e.sayAs(leaderboardLine(i+1, r), models.EmphasisBold)
	}
	if e.opts.StatsURL != "" {
		e.say("Full stats at " + e.opts.StatsURL)
	}
	return nil
}

func (e *Engine) help(actor string) {
	var b strings.Builder
	b.WriteString("Fight commands:<ul>")
	for _, h := range builtinHelp {
		fmt.Fprintf(&b, "<li>%s: %s</li>", h.usage, h.text)
	}
	b.WriteString("</ul>")

	if entries := e.extensions.Help(e.isAdmin(actor)); len(entries) > 0 {
		b.WriteString("Other commands:<ul>")
		for _, h := range entries {
			fmt.Fprintf(&b, "<li>!%s: %s</li>", h.Name, h.Help)
		}
		b.WriteString("</ul>")
	}
	e.sayAs(b.String(), models.EmphasisHTML)
}

func (e *Engine) isAdmin(id string) bool {
	for _, admin := range e.opts.Admins {
		if models.SameID(admin, id) {
			return true
		}
	}
	return false
}

func (e *Engine) displayName(id string) string {
	if e.membership == nil {
		return id
	}
	if name := e.membership.DisplayName(id); name != "" {
		return name
	}
	return id
}

// Outbox

func (e *Engine) say(text string) {
	e.sayAs(text, models.EmphasisNone)
}

func (e *Engine) banner(word string) {
	e.sayAs(word, models.EmphasisBanner)
}

func (e *Engine) sayAs(text string, emphasis models.Emphasis) {
	e.outbox = append(e.outbox, models.Announcement{RoomID: e.opts.RoomID, Text: text, Emphasis: emphasis})
}

// drain hands over the work queued under the lock: the outbox and, when a
// match with the bot ended, the time its cooldown starts.
func (e *Engine) drain() ([]models.Announcement, time.Time) {
	out, restFrom := e.outbox, e.restFrom
	e.outbox, e.restFrom = nil, time.Time{}
	return out, restFrom
}

func (e *Engine) startCooldown(from time.Time) {
	if e.cooldown != nil && !from.IsZero() {
		e.cooldown.Start(from)
	}
}

func (e *Engine) flush(out []models.Announcement) {
	if e.announcer == nil {
		return
	}
	for _, a := range out {
		e.announcer.Announce(a.RoomID, a.Text, a.Emphasis)
	}
}

// engineView is what extension commands see. It runs under the engine lock.
type engineView struct {
	e *Engine
}

func (v engineView) RoomID() string { return v.e.opts.RoomID }
func (v engineView) MatchRunning() bool { return v.e.scheduler.Running() }
func (v engineView) IsAdmin(id string) bool { return v.e.isAdmin(id) }
func (v engineView) Announce(text string, emphasis models.Emphasis) {
	v.e.sayAs(text, emphasis)
}
