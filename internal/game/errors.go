package game

import (
	"errors"
	"fmt"
)

// Validation errors. Each is reported back to the room and never stops the engine.
var (
	ErrInvalidChallenge = errors.New("invalid challenge")
	ErrSelfChallenge    = fmt.Errorf("%w: cannot challenge yourself", ErrInvalidChallenge)
	ErrRankedHeadcount  = fmt.Errorf("%w: ranked fights are 1v1 only", ErrInvalidChallenge)
	ErrMissingArgument  = errors.New("missing argument")
	ErrNotInRoom        = errors.New("not in the room")
	ErrNotChallenged    = errors.New("not challenged")
	ErrNoSuchChallenge  = errors.New("no such challenge")
	ErrChallengeExpired = errors.New("challenge expired")
	ErrAlreadyJoined    = errors.New("already joined")
	ErrBotUnavailable   = errors.New("bot unavailable for ranked fights")
	ErrBotCooldown      = errors.New("bot is cooling down")
	ErrNoHealCharges    = errors.New("no heal charges left")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrNotPlaying       = errors.New("not playing")
	ErrSelfHit          = errors.New("cannot hit yourself")
	ErrDeadTarget       = errors.New("target is dead")
	ErrPraiseUsed       = errors.New("praise already used")
	ErrPraiseDisabled   = errors.New("praise disabled in deathmatches")
	ErrUnknownCommand   = errors.New("unknown command")
)

// State errors. The room hears nothing, the caller gets the error.
var (
	ErrNoMatch      = errors.New("no match running")
	ErrMatchRunning = errors.New("match already running")
	ErrUnknownRoom  = errors.New("unknown room")
)

// RoomError carries the exact text the room should see for a failure.
type RoomError struct {
	Kind    error
	Message string
}

func (e *RoomError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *RoomError) Unwrap() error {
	return e.Kind
}

func roomErr(kind error, format string, args ...interface{}) error {
	return &RoomError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

var defaultMessages = []struct {
	err  error
	text string
}{
	{ErrSelfChallenge, "Don't fight yourself, dummy."},
	{ErrRankedHeadcount, "Challenges are 1v1 only."},
	{ErrInvalidChallenge, "You need more than one person to fight!"},
	{ErrAlreadyJoined, "You already accepted that fight."},
	{ErrNoSuchChallenge, "You can only !cancel if you started a fight."},
	{ErrChallengeExpired, "They're not here anymore - maybe they were intimidated by your donger."},
	{ErrNoHealCharges, "You can't heal this turn (but it's still your turn)"},
	{ErrNotYourTurn, "It's not your fucking turn!"},
	{ErrSelfHit, "Stop hitting yourself!"},
	{ErrDeadTarget, "Do you REALLY want to hit a corpse?"},
	{ErrPraiseUsed, "You can only praise once per game. It's still your turn."},
	{ErrPraiseDisabled, "You can't praise during deathmatches. It's still your turn."},
}

// UserMessage returns the room-facing text for err, or "" when the room
// should hear nothing.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var re *RoomError
	if errors.As(err, &re) {
		return re.Message
	}

	for _, m := range defaultMessages {
		if errors.Is(err, m.err) {
			return m.text
		}
	}
	return ""
}

// IsValidation reports whether err is a player mistake rather than a state conflict.
func IsValidation(err error) bool {
	for _, kind := range []error{
		ErrInvalidChallenge, ErrMissingArgument, ErrNotInRoom, ErrNotChallenged,
		ErrNoSuchChallenge, ErrChallengeExpired, ErrAlreadyJoined, ErrBotUnavailable,
		ErrBotCooldown, ErrNoHealCharges, ErrNotYourTurn, ErrNotPlaying, ErrSelfHit,
		ErrDeadTarget, ErrPraiseUsed, ErrPraiseDisabled, ErrUnknownCommand,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
