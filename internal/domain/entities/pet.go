package entities

// Pet is an owned animal. Pets are their own collection, separate from
// relationships; the pet relation type exists for event eligibility
// only. Health declines with old age during turn advancement.
type Pet struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	Age       int    `json:"age"`
	Health    int    `json:"health"`
	Happiness int    `json:"happiness"`
}

// OldAgeThreshold is the pet age past which yearly health decay kicks in.
const PetOldAgeThreshold = 10

// PetOldAgeDecay is the yearly health loss for a pet past the threshold.
const PetOldAgeDecay = 5
