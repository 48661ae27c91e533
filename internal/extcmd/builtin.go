package extcmd

import "github.com/Polsaker/dongerdong/internal/models"

// Say is an extension command that announces a fixed line.
type Say struct {
	name  string
	help  string
	text  string
	admin bool
}

func NewSay(name, help, text string) *Say {
	return &Say{name: name, help: help, text: text}
}

// AdminSay is a Say that only admins may run.
func AdminSay(name, help, text string) *Say {
	return &Say{name: name, help: help, text: text, admin: true}
}

func (s *Say) Name() string    { return s.name }
func (s *Say) Help() string    { return s.help }
func (s *Say) AdminOnly() bool { return s.admin }

func (s *Say) Execute(view View, actorID string) error {
	view.Announce(s.text, models.EmphasisNone)
	return nil
}

// Builtins returns every extension command shipped with the server.
func Builtins() []Command {
	return []Command{
		NewSay("raise", "Raise your dongers.", "ヽ༼ຈل͜ຈ༽ﾉ RAISE YOUR DONGERS ヽ༼ຈل͜ຈ༽ﾉ"),
		NewSay("lower", "Lower your dongers.", "┌༼ຈل͜ຈ༽┐ ʟᴏᴡᴇʀ ʏᴏᴜʀ ᴅᴏɴɢᴇʀs ┌༼ຈل͜ຈ༽┐"),
	}
}
