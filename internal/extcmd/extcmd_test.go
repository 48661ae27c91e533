package extcmd

import (
	"testing"

	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingView struct {
	lines []string
}

func (v *recordingView) RoomID() string     { return "!room" }
func (v *recordingView) MatchRunning() bool { return false }
func (v *recordingView) IsAdmin(string) bool {
	return false
}
func (v *recordingView) Announce(text string, _ models.Emphasis) {
	v.lines = append(v.lines, text)
}

func TestRegistry_EnablesOnlyNamedCommands(t *testing.T) {
	r := NewRegistry([]string{"raise", "missing"}, Builtins()...)

	assert.Equal(t, 1, r.Len())

	_, ok := r.Lookup("raise")
	assert.True(t, ok)

	_, ok = r.Lookup("lower")
	assert.False(t, ok, "lower was not enabled")

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_LookupIgnoresCase(t *testing.T) {
	r := NewRegistry([]string{"Raise"}, Builtins()...)

	cmd, ok := r.Lookup("RAISE")
	require.True(t, ok)
	assert.Equal(t, "raise", cmd.Name())
}

func TestRegistry_ExecuteAnnounces(t *testing.T) {
	r := NewRegistry([]string{"lower"}, Builtins()...)

	cmd, ok := r.Lookup("lower")
	require.True(t, ok)

	view := &recordingView{}
	require.NoError(t, cmd.Execute(view, "@alice:localhost"))
	require.Len(t, view.lines, 1)
	assert.Contains(t, view.lines[0], "ʟᴏᴡᴇʀ")
}

func TestRegistry_HelpHidesAdminCommands(t *testing.T) {
	available := append(Builtins(), AdminSay("secret", "", "shh"))
	r := NewRegistry([]string{"raise", "lower", "secret"}, available...)

	public := r.Help(false)
	require.Len(t, public, 2)
	assert.Equal(t, "lower", public[0].Name)
	assert.Equal(t, "raise", public[1].Name)

	admin := r.Help(true)
	require.Len(t, admin, 3)
	assert.Equal(t, "secret", admin[1].Name)
	assert.Equal(t, "A mystery", admin[1].Help)
}

func TestRegistry_NilIsEmpty(t *testing.T) {
	var r *Registry

	_, ok := r.Lookup("raise")
	assert.False(t, ok)
	assert.Empty(t, r.Help(true))
	assert.Zero(t, r.Len())
}
