// Assembles end-of-game reporting from the engine's accumulated stat lines.

package sim

import "fmt"

// PeriodScore records one period's scoring for each side.
type PeriodScore struct {
	Period    int
	HomeScore int
	AwayScore int
}

// BoxScoreRow is one player's line in the report.
type BoxScoreRow struct {
	Name string
	Team string
	Line StatLine
}

// BoxScore is the full-game statistics view built from a finished (or
// in-progress) PossessionEngine.
type BoxScore struct {
	HomeName  string
	AwayName  string
	HomeScore int
	AwayScore int

	PeriodScores []PeriodScore
	Rows         []BoxScoreRow
}

// BoxScore snapshots the engine's current scoreboard and stat lines. Rows
// are ordered home roster first, then away, starters before bench.
func (e *PossessionEngine) BoxScore() *BoxScore {
	bs := &BoxScore{
		HomeName:     e.home.Name,
		AwayName:     e.away.Name,
		HomeScore:    e.score[SideHome],
		AwayScore:    e.score[SideAway],
		PeriodScores: append([]PeriodScore(nil), e.periodScores...),
	}
	for _, team := range []*Team{e.home, e.away} {
		for _, p := range team.FullRoster() {
			bs.Rows = append(bs.Rows, BoxScoreRow{
				Name: p.Name,
				Team: team.Code,
				Line: *e.stats[p.Name],
			})
		}
	}
	return bs
}

// Print displays the box score at the end of the simulation.
func (bs *BoxScore) Print() {
	fmt.Println("=== Box Score ===")
	fmt.Printf("%s %d - %s %d\n", bs.HomeName, bs.HomeScore, bs.AwayName, bs.AwayScore)
	if len(bs.PeriodScores) > 0 {
		fmt.Print("Periods:")
		for _, ps := range bs.PeriodScores {
			fmt.Printf("  Q%d %d-%d", ps.Period, ps.HomeScore, ps.AwayScore)
		}
		fmt.Println()
	}
	fmt.Printf("%-24s %-4s %4s %7s %7s %4s %4s\n", "Player", "Team", "PTS", "FG", "3PT", "AST", "PF")
	for _, row := range bs.Rows {
		fmt.Printf("%-24s %-4s %4d %3d/%-3d %3d/%-3d %4d %4d\n",
			row.Name, row.Team, row.Line.Points,
			row.Line.FieldGoalsM, row.Line.FieldGoalsA,
			row.Line.ThreePointsM, row.Line.ThreePointsA,
			row.Line.Assists, row.Line.PersonalFouls)
	}
}
