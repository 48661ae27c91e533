// Package extcmd holds the optional chat commands that sit beside the
// built-in fight commands. Which ones are live is decided at startup.
package extcmd

import (
	"sort"
	"strings"

	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/Polsaker/dongerdong/pkg/logger"
)

// View is the slice of engine state an extension command may touch.
type View interface {
	RoomID() string
	Announce(text string, emphasis models.Emphasis)
	MatchRunning() bool
	IsAdmin(id string) bool
}

type Command interface {
	Name() string
	Help() string
	AdminOnly() bool
	Execute(view View, actorID string) error
}

type HelpEntry struct {
	Name string `json:"name"`
	Help string `json:"help"`
}

// Registry maps command names onto the enabled extension commands.
type Registry struct {
	commands map[string]Command
}

// NewRegistry enables the named commands out of available. Unknown names
// are logged and skipped.
func NewRegistry(enabled []string, available ...Command) *Registry {
	byName := make(map[string]Command, len(available))
	for _, cmd := range available {
		byName[strings.ToLower(cmd.Name())] = cmd
	}

	r := &Registry{commands: make(map[string]Command)}
	for _, name := range enabled {
		name = strings.ToLower(name)
		cmd, ok := byName[name]
		if !ok {
			logger.Warn("Failed to load extended command", "command", name)
			continue
		}
		if cmd.Help() == "" {
			logger.Warn("No help text provided for extended command", "command", name)
		}
		r.commands[name] = cmd
		logger.Info("Loaded extended command", "command", name)
	}
	return r
}

func (r *Registry) Lookup(name string) (Command, bool) {
	if r == nil {
		return nil, false
	}
	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// Help lists the commands visible to the caller, sorted by name.
func (r *Registry) Help(admin bool) []HelpEntry {
	if r == nil {
		return nil
	}
	var entries []HelpEntry
	for name, cmd := range r.commands {
		if cmd.AdminOnly() && !admin {
			continue
		}
		help := cmd.Help()
		if help == "" {
			help = "A mystery"
		}
		entries = append(entries, HelpEntry{Name: name, Help: help})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.commands)
}
