package roster

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

// League is the resolved, joined view of a LeagueSpec: engine-ready teams
// keyed by code plus the day-keyed schedule.
type League struct {
	Teams    map[string]*sim.Team
	Schedule []GameRecord

	// Warnings counts the dangling references skipped during resolution.
	Warnings int
}

// Resolve joins records into engine-ready teams. Dangling identifier
// references (a starter ID with no player row, a scheduled team code with no
// team row) are logged as warnings and skipped rather than blocking startup;
// the count is reported on the returned League.
func Resolve(spec *LeagueSpec) (*League, error) {
	if spec == nil {
		return nil, fmt.Errorf("resolve: nil league spec")
	}

	playersByID := make(map[string]PlayerRecord, len(spec.Players))
	for _, pr := range spec.Players {
		playersByID[pr.ID] = pr
	}

	league := &League{Teams: make(map[string]*sim.Team, len(spec.Teams))}

	for _, tr := range spec.Teams {
		team := &sim.Team{Code: tr.Code, Name: tr.Name, IsUser: tr.IsUser}
		team.Roster = league.resolvePlayers(tr.Code, "starters", tr.Starters, playersByID)
		team.Bench = league.resolvePlayers(tr.Code, "bench", tr.Bench, playersByID)
		league.Teams[tr.Code] = team
	}

	for _, gr := range spec.Schedule {
		if _, ok := league.Teams[gr.Home]; !ok {
			logrus.Warnf("schedule day %d: unknown home team %q, skipping game", gr.Day, gr.Home)
			league.Warnings++
			continue
		}
		if _, ok := league.Teams[gr.Away]; !ok {
			logrus.Warnf("schedule day %d: unknown away team %q, skipping game", gr.Day, gr.Away)
			league.Warnings++
			continue
		}
		league.Schedule = append(league.Schedule, gr)
	}

	return league, nil
}

func (l *League) resolvePlayers(teamCode, slot string, ids []string, byID map[string]PlayerRecord) []*sim.Player {
	out := make([]*sim.Player, 0, len(ids))
	for _, id := range ids {
		pr, ok := byID[id]
		if !ok {
			logrus.Warnf("team %s %s: unknown player id %q, skipping", teamCode, slot, id)
			l.Warnings++
			continue
		}
		out = append(out, &sim.Player{
			Name:       pr.Name,
			TeamCode:   teamCode,
			Position:   pr.Position,
			Finishing:  skillOrDefault(pr.Finishing),
			Shooting:   skillOrDefault(pr.Shooting),
			Defense:    skillOrDefault(pr.Defense),
			Playmaking: skillOrDefault(pr.Playmaking),
		})
	}
	return out
}

// GamesForDay returns the schedule entries for one calendar day as
// engine-ready matchups, in spec order.
func (l *League) GamesForDay(day int) []sim.Matchup {
	var out []sim.Matchup
	for _, gr := range l.Schedule {
		if gr.Day != day {
			continue
		}
		out = append(out, sim.Matchup{Home: l.Teams[gr.Home], Away: l.Teams[gr.Away]})
	}
	return out
}
