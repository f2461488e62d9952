// Package roster loads and joins the YAML league data the simulation core
// consumes: player records, team records and a day-keyed schedule, all
// joined by stable string identifiers. The core itself only ever sees
// already-resolved sim.Team values produced here.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSkill is applied to any skill attribute the source data omits.
const DefaultSkill = 50

// PlayerRecord is one player row in a league spec. Skill attributes are
// pointers so an omitted attribute is distinguishable from a genuine zero.
type PlayerRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Team     string `yaml:"team"`
	Position string `yaml:"position"`

	Finishing  *float64 `yaml:"finishing,omitempty"`
	Shooting   *float64 `yaml:"shooting,omitempty"`
	Defense    *float64 `yaml:"defense,omitempty"`
	Playmaking *float64 `yaml:"playmaking,omitempty"`
}

// TeamRecord is one franchise row: starters and bench reference PlayerRecord
// IDs in lineup order.
type TeamRecord struct {
	Code     string   `yaml:"code"`
	Name     string   `yaml:"name"`
	IsUser   bool     `yaml:"is_user,omitempty"`
	Starters []string `yaml:"starters"`
	Bench    []string `yaml:"bench,omitempty"`
}

// GameRecord is one scheduled game, keyed by calendar day and team codes.
type GameRecord struct {
	Day  int    `yaml:"day"`
	Home string `yaml:"home"`
	Away string `yaml:"away"`
}

// LeagueSpec is the full on-disk league description.
type LeagueSpec struct {
	Version  int            `yaml:"version"`
	Players  []PlayerRecord `yaml:"players"`
	Teams    []TeamRecord   `yaml:"teams"`
	Schedule []GameRecord   `yaml:"schedule,omitempty"`
}

// LoadLeagueSpec reads and parses a league spec YAML file.
func LoadLeagueSpec(path string) (*LeagueSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read league spec: %w", err)
	}
	var spec LeagueSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse league spec %s: %w", path, err)
	}
	if len(spec.Teams) == 0 {
		return nil, fmt.Errorf("league spec %s: no teams", path)
	}
	return &spec, nil
}

func skillOrDefault(v *float64) float64 {
	if v == nil {
		return DefaultSkill
	}
	return *v
}
