package entities

import (
	"errors"
	"fmt"
)

// Event is an authored narrative prompt with a fixed set of choices,
// gated by eligibility predicates. The catalog is loaded once and
// immutable at runtime.
type Event struct {
	ID       string   `json:"id" yaml:"id"`
	Text     string   `json:"text" yaml:"text"`
	Category string   `json:"category,omitempty" yaml:"category,omitempty"`
	Choices  []Choice `json:"choices" yaml:"choices"`

	// Eligibility predicates. All that are present must hold.
	AgeRange            *AgeRange       `json:"age_range,omitempty" yaml:"age_range,omitempty"`
	RequireEducation    *EducationLevel `json:"require_education,omitempty" yaml:"require_education,omitempty"`
	RequireJob          bool            `json:"require_job,omitempty" yaml:"require_job,omitempty"`
	RequireRelationship *RelationType   `json:"require_relationship,omitempty" yaml:"require_relationship,omitempty"`
}

// AgeRange is an inclusive [Min, Max] age window.
type AgeRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether age falls inside the inclusive range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// Choice is one selectable option within an event. Effects is always
// applied (after the money gate passes); the directive fields are
// optional side effects, each independent of the others.
type Choice struct {
	Text         string    `json:"text" yaml:"text"`
	Effects      StatDelta `json:"effects,omitempty" yaml:"effects,omitempty"`
	RequireMoney int64     `json:"require_money,omitempty" yaml:"require_money,omitempty"`

	JobOffer       *JobOffer         `json:"job_offer,omitempty" yaml:"job_offer,omitempty"`
	SalaryIncrease int64             `json:"salary_increase,omitempty" yaml:"salary_increase,omitempty"`
	JobRemove      bool              `json:"job_remove,omitempty" yaml:"job_remove,omitempty"`
	Education      *EducationUpdate  `json:"education_update,omitempty" yaml:"education_update,omitempty"`
	AddRel         *RelationshipAdd  `json:"relationship_add,omitempty" yaml:"relationship_add,omitempty"`
	UpdateRel      *RelationshipEdit `json:"relationship_update,omitempty" yaml:"relationship_update,omitempty"`
	RemoveRel      *RelationshipRef  `json:"relationship_remove,omitempty" yaml:"relationship_remove,omitempty"`
	AddAsset       *AssetAdd         `json:"asset_add,omitempty" yaml:"asset_add,omitempty"`
	CrimeAdd       string            `json:"crime_add,omitempty" yaml:"crime_add,omitempty"`
	ArrestChance   float64           `json:"arrest_chance,omitempty" yaml:"arrest_chance,omitempty"`
	GambleWin      float64           `json:"gamble_win,omitempty" yaml:"gamble_win,omitempty"`
	GambleAmount   int64             `json:"gamble_amount,omitempty" yaml:"gamble_amount,omitempty"`
	BusinessLuck   float64           `json:"business_success,omitempty" yaml:"business_success,omitempty"`
}

// JobOffer grants a new job, replacing any current one.
type JobOffer struct {
	Title    string `json:"title" yaml:"title"`
	Salary   int64  `json:"salary" yaml:"salary"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// EducationUpdate overwrites the education level and major and resets
// the graduated flag.
type EducationUpdate struct {
	Level EducationLevel `json:"level" yaml:"level"`
	Major string         `json:"major,omitempty" yaml:"major,omitempty"`
}

// RelationshipAdd appends a new relationship with bond 50.
type RelationshipAdd struct {
	Name string       `json:"name,omitempty" yaml:"name,omitempty"`
	Type RelationType `json:"type" yaml:"type"`
}

// RelationshipRef targets a relationship for a directive. An empty ID
// with OfType set targets the first relationship of that type; both
// empty targets the first relationship in the list.
type RelationshipRef struct {
	ID     string       `json:"id,omitempty" yaml:"id,omitempty"`
	OfType RelationType `json:"of_type,omitempty" yaml:"of_type,omitempty"`
}

// RelationshipEdit mutates a targeted relationship.
type RelationshipEdit struct {
	Target    RelationshipRef `json:"target,omitempty" yaml:"target,omitempty"`
	BondDelta int             `json:"bond_delta,omitempty" yaml:"bond_delta,omitempty"`
	NewType   RelationType    `json:"new_type,omitempty" yaml:"new_type,omitempty"`
}

// AssetAdd grants an asset. It only applies when the choice's money
// spend succeeds; the purchase year is the current age.
type AssetAdd struct {
	Kind  AssetKind `json:"kind" yaml:"kind"`
	Name  string    `json:"name" yaml:"name"`
	Value int64     `json:"value" yaml:"value"`
}

// Arrest penalty applied when a crime directive's arrest draw lands.
// Flat constants regardless of the crime (the authored reward/penalty
// still applies separately).
const (
	ArrestHappinessPenalty = 20
	ArrestFine             = 1000
)

// Validate checks an authored event for import. It returns an error
// describing the first problem found.
func (e *Event) Validate() error {
	if e.ID == "" {
		return errors.New("event id is required")
	}
	if e.Text == "" {
		return fmt.Errorf("event %s: text is required", e.ID)
	}
	if len(e.Choices) == 0 {
		return fmt.Errorf("event %s: at least one choice is required", e.ID)
	}
	if e.AgeRange != nil && e.AgeRange.Min > e.AgeRange.Max {
		return fmt.Errorf("event %s: age range min %d exceeds max %d", e.ID, e.AgeRange.Min, e.AgeRange.Max)
	}
	if e.RequireEducation != nil && !ValidEducationLevel(*e.RequireEducation) {
		return fmt.Errorf("event %s: unknown education level %q", e.ID, *e.RequireEducation)
	}
	if e.RequireRelationship != nil && !ValidRelationType(*e.RequireRelationship) {
		return fmt.Errorf("event %s: unknown relationship type %q", e.ID, *e.RequireRelationship)
	}
	for i, c := range e.Choices {
		if err := c.validate(); err != nil {
			return fmt.Errorf("event %s: choice %d: %w", e.ID, i, err)
		}
	}
	return nil
}

func (c *Choice) validate() error {
	if c.Text == "" {
		return errors.New("text is required")
	}
	if c.RequireMoney < 0 {
		return errors.New("require_money must not be negative")
	}
	for name, p := range map[string]float64{
		"arrest_chance":    c.ArrestChance,
		"gamble_win":       c.GambleWin,
		"business_success": c.BusinessLuck,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s %v outside [0,1]", name, p)
		}
	}
	if c.Education != nil && !ValidEducationLevel(c.Education.Level) {
		return fmt.Errorf("unknown education level %q", c.Education.Level)
	}
	if c.AddRel != nil && !ValidRelationType(c.AddRel.Type) {
		return fmt.Errorf("unknown relationship type %q", c.AddRel.Type)
	}
	return nil
}
