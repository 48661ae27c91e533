package game

import (
	"fmt"
	"strings"

	"github.com/Polsaker/dongerdong/internal/models"
)

const (
	brutalBelow = -50
	savageBelow = -40
	reltOdds    = 40 // one in reltOdds deaths is misspelled
)

const rulesHTML = "RULES:<br><ol><li>Wait your turn. One person at a time.</li><li>Be a dick about it.</li></ol><br>" +
	"Use !hit [nick] to strike.<br>Use !heal to heal yourself."

var builtinHelp = []struct{ usage, text string }{
	{"!fight <nickname> [othernicknames]", "Challenge another player, or multiple players. Use * for an open spot."},
	{"!duel <nickname>", "Same as fight, but only 1v1."},
	{"!deathmatch <nickname>", "Same as duel, but the loser is bant."},
	{"!accept <nickname>", "Accepts a fight."},
	{"!reject <nickname>", "Rejects a fight."},
	{"!cancel", "Cancels a fight you started."},
	{"!hit [nickname], !heal, !praise [nickname]", "Your turn, your choice."},
	{"!quit", "Flee like the coward you are."},
	{"!stats [player]", "Outputs player's game stats (or your own stats)."},
	{"!top, !shame", "Lists the best, or the worst, players."},
}

func challengeText(ch *models.PendingChallenge, initiator string, invitees []string) string {
	accept := fmt.Sprintf("To accept, use '!accept %s'.", initiator)
	if len(invitees) == 0 {
		stakes := ""
		if ch.Mode == models.ModeDeathmatch {
			stakes = " to the death. The loser will be bant"
		}
		return fmt.Sprintf("%s has challenged anybody willing to fight%s. %s", initiator, stakes, accept)
	}

	kind := "challenged you."
	if ch.Mode == models.ModeDeathmatch {
		kind = "challenged you to a deathmatch. The loser will be bant."
	}
	return fmt.Sprintf("%s: %s %s %s", strings.Join(invitees, ", "), initiator, kind, accept)
}

func openSlotsText(ch *models.PendingChallenge) string {
	switch {
	case ch.OpenSlots == 1 && len(ch.Invitees) > 0:
		return "This fight has an open spot for anybody to join."
	case ch.OpenSlots > 1:
		return fmt.Sprintf("This fight has open spots for %d players to join.", ch.OpenSlots)
	}
	return ""
}

func versusBanner(names []string) string {
	return strings.ToUpper(strings.Join(names, " VS "))
}

func turnText(name string) string {
	return fmt.Sprintf("It's %s's turn.", name)
}

func hitText(source, target string, out CombatOutcome) string {
	return fmt.Sprintf("%s (%dHP) deals %d damage to %s (%dHP)",
		source, out.SourceHPBefore, out.Damage, target, out.TargetHPAfter)
}

func healText(target string, out CombatOutcome) string {
	return fmt.Sprintf("%s heals for %dHP, bringing them to %dHP", target, out.Healed, out.TargetHPAfter)
}

// deathBanners returns the severity banners for a death at hp, worst first.
func deathBanners(hp int, r Roller) []string {
	var banners []string
	if hp <= brutalBelow {
		banners = append(banners, "BRUTAL")
	}
	if hp <= savageBelow {
		banners = append(banners, "SAVAGE")
	}
	if r.Roll(0, reltOdds-1) == 0 {
		return append(banners, "RELT")
	}
	return append(banners, "REKT")
}

func rektText(slayer string, victims ...string) string {
	return fmt.Sprintf("%s REKT %s", slayer, strings.Join(victims, ", "))
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func rankText(rank int) string {
	if rank <= 0 {
		return "Not ranked."
	}
	return "Ranked " + ordinal(rank)
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func statsText(r *models.RatingRecord, rank int) string {
	return fmt.Sprintf("%s's stats: %d wins, %d losses, %d coward quits, %d idle-outs (%s), "+
		"%d !praises, %d matches, %d deathmatches (%d total). %s (%d points)",
		r.Name, r.Wins, r.Losses, r.Quits, r.IdleOuts, signed(r.Balance()),
		r.Praises, r.Matches, r.Deathmatches, r.RankedGames(), rankText(rank), r.ELO)
}

// leaderboardLine breaks the name with a zero-width space so listing it never pings the player.
func leaderboardLine(position int, r *models.RatingRecord) string {
	name := []rune(r.Name)
	display := r.Name
	if len(name) > 1 {
		display = string(name[:1]) + "\u200b" + string(name[1:])
	}
	return fmt.Sprintf("%d - %s (%d)", position, strings.ToUpper(display), r.ELO)
}
