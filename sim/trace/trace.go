// Package trace records the deep engine's play-by-play narration for
// consumers that want to archive or replay it after the run.
package trace

// Level controls play-by-play collection verbosity.
type Level string

const (
	// LevelNone disables collection (zero overhead).
	LevelNone Level = "none"
	// LevelPlays captures every narrated play.
	LevelPlays Level = "plays"
)

// validLevels maps accepted level strings.
var validLevels = map[Level]bool{
	LevelNone:  true,
	LevelPlays: true,
	"":         true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is recognized.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Config controls trace collection behavior.
type Config struct {
	Level Level
}

// Record is one narrated play: game clock, message, and an optional coarse
// court position.
type Record struct {
	SecondsRemaining int64
	Message          string
	X                float64
	Z                float64
	HasPos           bool
}

// GameTrace collects play records for a single deep game.
type GameTrace struct {
	Config Config
	Plays  []Record
}

// NewGameTrace creates a GameTrace ready for recording.
func NewGameTrace(config Config) *GameTrace {
	return &GameTrace{Config: config, Plays: make([]Record, 0)}
}

// enabled reports whether records should be kept.
func (gt *GameTrace) enabled() bool {
	return gt.Config.Level == LevelPlays
}

// Record appends one play when collection is enabled.
func (gt *GameTrace) Record(rec Record) {
	if !gt.enabled() {
		return
	}
	gt.Plays = append(gt.Plays, rec)
}

// Len returns the number of collected plays.
func (gt *GameTrace) Len() int {
	return len(gt.Plays)
}
