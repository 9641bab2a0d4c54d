package entities

// Achievement is a one-way milestone flag. UnlockedAt records the age
// at which it unlocked.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  *int   `json:"unlocked_at,omitempty"`
}

// Builtin achievement IDs checked by the engine.
const (
	AchievementFirstJob    = "first_job"
	AchievementMarried     = "married"
	AchievementMillionaire = "millionaire"
	AchievementCentenarian = "centenarian"
	AchievementFamous      = "famous"
)

// Thresholds for the stat-driven achievements.
const (
	MillionaireMoney = 1_000_000
	FamousFame       = 80
	CentenarianAge   = 100
)

// DefaultAchievements returns the starting achievement list for a new
// life, all locked.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: AchievementFirstJob, Name: "First Job", Description: "Get your first job"},
		{ID: AchievementMarried, Name: "Married", Description: "Get married"},
		{ID: AchievementMillionaire, Name: "Millionaire", Description: "Earn $1,000,000"},
		{ID: AchievementCentenarian, Name: "Centenarian", Description: "Live to 100"},
		{ID: AchievementFamous, Name: "Famous", Description: "Become famous"},
	}
}
