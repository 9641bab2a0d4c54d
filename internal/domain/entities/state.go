package entities

// GameState is the central store for one simulated life. It
// exclusively owns every collection; callers reference entities by ID
// only and mutate exclusively through the methods here and through the
// domain services. Nothing outside a session should hold a pointer
// into the collections.
type GameState struct {
	Character *Character `json:"character"`
	Stats     Stats      `json:"stats"`
	Education Education  `json:"education"`

	Relationships []Relationship `json:"relationships"`
	Pets          []Pet          `json:"pets"`
	Job           *Job           `json:"job"`
	Businesses    []Business     `json:"businesses"`
	Assets        []Asset        `json:"assets"`
	Crimes        []string       `json:"crimes"`
	Achievements  []Achievement  `json:"achievements"`
	SocialMedia   []SocialMedia  `json:"social_media"`

	ActivitiesDone []string       `json:"activities_done"`
	History        []HistoryEntry `json:"history"`
	EventsThisYear int            `json:"events_this_year"`

	GameStarted  bool   `json:"game_started"`
	GameEnded    bool   `json:"game_ended"`
	IsDead       bool   `json:"is_dead"`
	CauseOfDeath string `json:"cause_of_death,omitempty"`
	CurrentEvent *Event `json:"current_event,omitempty"`
}

// NewGameState returns the uninitialized pre-creation state.
func NewGameState() *GameState {
	return &GameState{
		Education:    Education{Level: EducationNone},
		Achievements: DefaultAchievements(),
	}
}

// ApplyStatDelta adds the delta to the stats (clamping per Stats.Apply)
// and fires the stat-driven achievement checks.
func (g *GameState) ApplyStatDelta(d StatDelta) {
	g.Stats.Apply(d)

	if g.Stats.Money >= MillionaireMoney {
		g.UnlockAchievement(AchievementMillionaire)
	}
	if g.Stats.Fame != nil && *g.Stats.Fame >= FamousFame {
		g.UnlockAchievement(AchievementFamous)
	}
}

// AddMoney credits the balance without bounds.
func (g *GameState) AddMoney(amount int64) {
	g.ApplyStatDelta(StatDelta{Money: amount})
}

// SpendMoney debits amount all-or-nothing. On insufficient funds it
// returns ErrInsufficientFunds and the balance is untouched; this
// check-then-subtract is the only transaction boundary in the engine.
func (g *GameState) SpendMoney(amount int64) error {
	if g.Stats.Money < amount {
		return ErrInsufficientFunds
	}
	g.Stats.Money -= amount
	return nil
}

// FindRelationship returns the relationship with the given ID.
func (g *GameState) FindRelationship(id string) (*Relationship, bool) {
	for i := range g.Relationships {
		if g.Relationships[i].ID == id {
			return &g.Relationships[i], true
		}
	}
	return nil, false
}

// ResolveRelationship resolves a directive target: explicit ID first,
// then first-of-type, then first in the list.
func (g *GameState) ResolveRelationship(ref RelationshipRef) (*Relationship, bool) {
	if ref.ID != "" {
		return g.FindRelationship(ref.ID)
	}
	if ref.OfType != "" {
		for i := range g.Relationships {
			if g.Relationships[i].Type == ref.OfType {
				return &g.Relationships[i], true
			}
		}
		return nil, false
	}
	if len(g.Relationships) == 0 {
		return nil, false
	}
	return &g.Relationships[0], true
}

// Partner returns the current romantic partner (dating or married).
func (g *GameState) Partner() (*Relationship, bool) {
	for i := range g.Relationships {
		if g.Relationships[i].IsPartner() {
			return &g.Relationships[i], true
		}
	}
	return nil, false
}

// HasRelationshipType reports whether any relationship has the type.
func (g *GameState) HasRelationshipType(t RelationType) bool {
	for i := range g.Relationships {
		if g.Relationships[i].Type == t {
			return true
		}
	}
	return false
}

// RemoveRelationship deletes the relationship with the given ID.
func (g *GameState) RemoveRelationship(id string) bool {
	for i := range g.Relationships {
		if g.Relationships[i].ID == id {
			g.Relationships = append(g.Relationships[:i], g.Relationships[i+1:]...)
			return true
		}
	}
	return false
}

// FindBusiness returns the business with the given ID.
func (g *GameState) FindBusiness(id string) (*Business, bool) {
	for i := range g.Businesses {
		if g.Businesses[i].ID == id {
			return &g.Businesses[i], true
		}
	}
	return nil, false
}

// RemoveBusiness deletes the business with the given ID.
func (g *GameState) RemoveBusiness(id string) bool {
	for i := range g.Businesses {
		if g.Businesses[i].ID == id {
			g.Businesses = append(g.Businesses[:i], g.Businesses[i+1:]...)
			return true
		}
	}
	return false
}

// FindAsset returns the asset with the given ID.
func (g *GameState) FindAsset(id string) (*Asset, bool) {
	for i := range g.Assets {
		if g.Assets[i].ID == id {
			return &g.Assets[i], true
		}
	}
	return nil, false
}

// RemoveAsset deletes the asset with the given ID.
func (g *GameState) RemoveAsset(id string) bool {
	for i := range g.Assets {
		if g.Assets[i].ID == id {
			g.Assets = append(g.Assets[:i], g.Assets[i+1:]...)
			return true
		}
	}
	return false
}

// HasSocialMedia reports whether an account exists on the platform.
func (g *GameState) HasSocialMedia(platform string) bool {
	for _, s := range g.SocialMedia {
		if s.Platform == platform {
			return true
		}
	}
	return false
}

// SetJob replaces the active job and fires the first-job achievement.
func (g *GameState) SetJob(job *Job) {
	g.Job = job
	if job != nil {
		g.UnlockAchievement(AchievementFirstJob)
	}
}

// UnlockAchievement marks the achievement unlocked at the current age.
// Already-unlocked achievements are left alone.
func (g *GameState) UnlockAchievement(id string) {
	for i := range g.Achievements {
		if g.Achievements[i].ID == id && !g.Achievements[i].Unlocked {
			age := g.Stats.Age
			g.Achievements[i].Unlocked = true
			g.Achievements[i].UnlockedAt = &age
			return
		}
	}
}

// EndLife transitions to the absorbing dead state.
func (g *GameState) EndLife(cause string) {
	g.GameEnded = true
	g.IsDead = true
	g.CauseOfDeath = cause
}
