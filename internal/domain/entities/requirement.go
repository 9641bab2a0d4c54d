package entities

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// RequirementKind tags a structured eligibility requirement. Gates are
// evaluated generically against the current stats and education; there
// is no free-text requirement matching anywhere in the engine.
type RequirementKind string

const (
	RequireMinAge       RequirementKind = "min_age"
	RequireMinMoney     RequirementKind = "min_money"
	RequireMinSmarts    RequirementKind = "min_smarts"
	RequireMinEducation RequirementKind = "min_education"
	RequireMajorOneOf   RequirementKind = "major_one_of"
)

// Requirement is one structured gate. Value carries the threshold for
// the numeric kinds; Level and Majors carry the payload for the
// education kinds.
type Requirement struct {
	Kind   RequirementKind `json:"kind" yaml:"kind"`
	Value  int64           `json:"value,omitempty" yaml:"value,omitempty"`
	Level  EducationLevel  `json:"level,omitempty" yaml:"level,omitempty"`
	Majors []string        `json:"majors,omitempty" yaml:"majors,omitempty"`
}

// Satisfied evaluates the requirement against the given stats and
// education.
func (r Requirement) Satisfied(stats Stats, education Education) bool {
	switch r.Kind {
	case RequireMinAge:
		return int64(stats.Age) >= r.Value
	case RequireMinMoney:
		return stats.Money >= r.Value
	case RequireMinSmarts:
		return int64(stats.Smarts) >= r.Value
	case RequireMinEducation:
		return education.Level.AtLeast(r.Level)
	case RequireMajorOneOf:
		return slices.Contains(r.Majors, education.Major)
	}
	return false
}

// Describe renders the requirement for user-facing rejection messages.
func (r Requirement) Describe() string {
	switch r.Kind {
	case RequireMinAge:
		return fmt.Sprintf("must be at least %d years old", r.Value)
	case RequireMinMoney:
		return fmt.Sprintf("requires $%s", humanize.Comma(r.Value))
	case RequireMinSmarts:
		return fmt.Sprintf("requires at least %d smarts", r.Value)
	case RequireMinEducation:
		return fmt.Sprintf("requires %s education", r.Level)
	case RequireMajorOneOf:
		return fmt.Sprintf("requires a major in %s", strings.Join(r.Majors, " or "))
	}
	return "unknown requirement"
}

// Requirements is an all-must-hold set of gates.
type Requirements []Requirement

// Unmet returns the first requirement the current state fails, or nil
// when all pass.
func (rs Requirements) Unmet(stats Stats, education Education) *Requirement {
	for i := range rs {
		if !rs[i].Satisfied(stats, education) {
			return &rs[i]
		}
	}
	return nil
}
