package entities

// Activity is an authored action from the activities menu: workouts,
// salon visits, surgery, crimes, gambling, travel, doctor visits, pet
// adoptions and social-media signups all share this record. Exactly
// one of the behavior payloads (Crime, Gamble, Pet, SocialPlatform) is
// set for the special categories; plain activities just carry Effects.
type Activity struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Cost     int64  `json:"cost,omitempty" yaml:"cost,omitempty"`
	MinAge   int    `json:"min_age,omitempty" yaml:"min_age,omitempty"`

	Effects     StatDelta `json:"effects,omitempty" yaml:"effects,omitempty"`
	HistoryText string    `json:"history_text,omitempty" yaml:"history_text,omitempty"`

	Crime          *CrimeSpec  `json:"crime,omitempty" yaml:"crime,omitempty"`
	Gamble         *GambleSpec `json:"gamble,omitempty" yaml:"gamble,omitempty"`
	Pet            *PetSpec    `json:"pet,omitempty" yaml:"pet,omitempty"`
	SocialPlatform string      `json:"social_platform,omitempty" yaml:"social_platform,omitempty"`
}

// CrimeSpec describes a crime attempt. A uniform draw below
// CatchChance means caught: the penalty applies and the fine is
// debited (skipped when unaffordable, never a partial debit). An
// uncaught attempt records the crime, pays the loot and applies the
// success effects.
type CrimeSpec struct {
	Label          string    `json:"label" yaml:"label"`
	CatchChance    float64   `json:"catch_chance" yaml:"catch_chance"`
	Loot           int64     `json:"loot" yaml:"loot"`
	SuccessEffects StatDelta `json:"success_effects,omitempty" yaml:"success_effects,omitempty"`
	CaughtEffects  StatDelta `json:"caught_effects,omitempty" yaml:"caught_effects,omitempty"`
	Fine           int64     `json:"fine,omitempty" yaml:"fine,omitempty"`
	SuccessText    string    `json:"success_text,omitempty" yaml:"success_text,omitempty"`
	CaughtText     string    `json:"caught_text,omitempty" yaml:"caught_text,omitempty"`
}

// GambleSpec describes a wager. The stake is the activity Cost; a draw
// below WinChance pays the payout and applies the win effects,
// otherwise the lose effects apply.
type GambleSpec struct {
	WinChance   float64   `json:"win_chance" yaml:"win_chance"`
	Payout      int64     `json:"payout" yaml:"payout"`
	WinEffects  StatDelta `json:"win_effects,omitempty" yaml:"win_effects,omitempty"`
	LoseEffects StatDelta `json:"lose_effects,omitempty" yaml:"lose_effects,omitempty"`
	WinText     string    `json:"win_text,omitempty" yaml:"win_text,omitempty"`
	LoseText    string    `json:"lose_text,omitempty" yaml:"lose_text,omitempty"`
}

// PetSpec describes a pet available for adoption.
type PetSpec struct {
	Name    string `json:"name" yaml:"name"`
	Species string `json:"species" yaml:"species"`
	Breed   string `json:"breed" yaml:"breed"`
}
