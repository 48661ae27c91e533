package models

import (
	"strings"
	"time"
)

// CommandPrefix marks a chat line as a command.
const CommandPrefix = "!"

// Command is an inbound chat command decoded by the transport.
type Command struct {
	ActorID   string    `json:"actorId"`
	RoomID    string    `json:"roomId"`
	Name      string    `json:"command"`
	Args      []string  `json:"args"`
	Timestamp time.Time `json:"timestamp"`
}

// ParseCommand splits a raw chat line such as "!hit bob" into name and args.
func ParseCommand(text string) (name string, args []string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, CommandPrefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(text, CommandPrefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// Action is the closed set of built-in engine commands.
type Action int

const (
	ActionUnknown Action = iota
	ActionChallenge
	ActionAccept
	ActionReject
	ActionCancel
	ActionHit
	ActionHeal
	ActionPraise
	ActionQuit
	ActionStats
	ActionTop
	ActionShame
	ActionHelp
)

var actions = map[string]Action{
	"fight":      ActionChallenge,
	"duel":       ActionChallenge,
	"deathmatch": ActionChallenge,
	"accept":     ActionAccept,
	"reject":     ActionReject,
	"cancel":     ActionCancel,
	"hit":        ActionHit,
	"heal":       ActionHeal,
	"praise":     ActionPraise,
	"quit":       ActionQuit,
	"stats":      ActionStats,
	"top":        ActionTop,
	"shame":      ActionShame,
	"help":       ActionHelp,
}

// LookupAction resolves a command name to a built-in action.
func LookupAction(name string) Action {
	return actions[strings.ToLower(name)]
}

// Emphasis tells the transport how to render an announcement.
type Emphasis string

const (
	EmphasisNone   Emphasis = ""
	EmphasisBold   Emphasis = "bold"
	EmphasisBanner Emphasis = "banner" // big ascii-art word
	EmphasisHTML   Emphasis = "html"
)

// Announcement is one outbound line for a room.
type Announcement struct {
	RoomID   string   `json:"roomId"`
	Text     string   `json:"text"`
	Emphasis Emphasis `json:"emphasis,omitempty"`
}
