package sim

// Player is the in-engine view of one roster entry. Skill attributes are
// 0-100; upstream loading (sim/roster) is responsible for defaulting any
// attribute the source data omits, so the engine never sees a hole.
type Player struct {
	Name     string
	TeamCode string
	Position string

	Finishing  float64
	Shooting   float64
	Defense    float64
	Playmaking float64

	// CurrentStamina is per-game mutable state, 0-100. Reset to full by
	// the owning Team's per-game copy; the engine decays it as the player
	// handles the ball.
	CurrentStamina float64
}

// Overall is the player's rating: the mean of the four skill attributes.
func (p *Player) Overall() float64 {
	return (p.Finishing + p.Shooting + p.Defense + p.Playmaking) / 4.0
}

// SelectionWeight combines rating and freshness for the stamina-weighted
// ball-handler pick. Stamina scales the weight without ever gating a player
// out entirely: a fully gassed player still carries 20% of rating.
func (p *Player) SelectionWeight() float64 {
	return p.Overall() * (0.2 + p.CurrentStamina/150.0)
}

// StatLine accumulates one player's counting stats for a single game.
type StatLine struct {
	Points        int
	FieldGoalsM   int
	FieldGoalsA   int
	ThreePointsM  int
	ThreePointsA  int
	Assists       int
	Energy        float64
	PersonalFouls int
}
