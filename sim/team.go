package sim

import "gonum.org/v1/gonum/stat"

// Team is the in-engine view of one franchise for a single game: the five
// active starters plus an ordered bench.
type Team struct {
	Code   string
	Name   string
	IsUser bool

	// Roster holds the five active players; Bench the ordered reserves.
	Roster []*Player
	Bench  []*Player
}

// FullRoster returns starters followed by bench, in order.
func (t *Team) FullRoster() []*Player {
	full := make([]*Player, 0, len(t.Roster)+len(t.Bench))
	full = append(full, t.Roster...)
	full = append(full, t.Bench...)
	return full
}

// Strength is the mean overall rating of the active roster, used by the
// lite simulator to scale per-possession scoring odds.
func (t *Team) Strength() float64 {
	if len(t.Roster) == 0 {
		return 0
	}
	overalls := make([]float64, len(t.Roster))
	for i, p := range t.Roster {
		overalls[i] = p.Overall()
	}
	return stat.Mean(overalls, nil)
}

// gameCopy deep-copies the team for one game instance so the engine owns
// its players exclusively: stamina starts full and mutates freely without
// leaking across games.
func (t *Team) gameCopy() *Team {
	copyPlayers := func(src []*Player) []*Player {
		out := make([]*Player, len(src))
		for i, p := range src {
			cp := *p
			cp.CurrentStamina = 100
			out[i] = &cp
		}
		return out
	}
	return &Team{
		Code:   t.Code,
		Name:   t.Name,
		IsUser: t.IsUser,
		Roster: copyPlayers(t.Roster),
		Bench:  copyPlayers(t.Bench),
	}
}
