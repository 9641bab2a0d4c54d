package entities

// Character identifies the simulated person. It is immutable after
// creation; everything that changes over a lifetime lives in Stats or
// in the owned collections on GameState.
type Character struct {
	Name    string `json:"name" yaml:"name"`
	Gender  string `json:"gender" yaml:"gender"`
	Country string `json:"country" yaml:"country"`
	City    string `json:"city" yaml:"city"`
}

// NewbornStats returns the stats every life starts with. Smarts and
// looks are rolled at creation time by the caller; happiness and
// health always start full.
func NewbornStats(smarts, looks int) Stats {
	return Stats{
		Happiness: 100,
		Health:    100,
		Smarts:    ClampStat(smarts),
		Looks:     ClampStat(looks),
		Money:     0,
		Age:       0,
	}
}
