package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequirement_Satisfied(t *testing.T) {
	stats := Stats{Age: 25, Money: 10000, Smarts: 70}
	education := Education{Level: EducationUniversity, Major: "computer_science", Graduated: true}

	tests := []struct {
		name string
		req  Requirement
		want bool
	}{
		{"min age met", Requirement{Kind: RequireMinAge, Value: 18}, true},
		{"min age exact", Requirement{Kind: RequireMinAge, Value: 25}, true},
		{"min age unmet", Requirement{Kind: RequireMinAge, Value: 30}, false},
		{"min money met", Requirement{Kind: RequireMinMoney, Value: 10000}, true},
		{"min money unmet", Requirement{Kind: RequireMinMoney, Value: 10001}, false},
		{"min smarts met", Requirement{Kind: RequireMinSmarts, Value: 70}, true},
		{"min smarts unmet", Requirement{Kind: RequireMinSmarts, Value: 71}, false},
		{"education at level", Requirement{Kind: RequireMinEducation, Level: EducationUniversity}, true},
		{"education below level", Requirement{Kind: RequireMinEducation, Level: EducationGraduate}, false},
		{"education above threshold", Requirement{Kind: RequireMinEducation, Level: EducationHigh}, true},
		{"major matches", Requirement{Kind: RequireMajorOneOf, Majors: []string{"engineering", "computer_science"}}, true},
		{"major does not match", Requirement{Kind: RequireMajorOneOf, Majors: []string{"law"}}, false},
		{"unknown kind never passes", Requirement{Kind: "nonsense"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Satisfied(stats, education))
		})
	}
}

func TestRequirements_Unmet_ReturnsFirstFailure(t *testing.T) {
	reqs := Requirements{
		{Kind: RequireMinAge, Value: 18},
		{Kind: RequireMinMoney, Value: 50000},
		{Kind: RequireMinSmarts, Value: 90},
	}
	stats := Stats{Age: 30, Money: 100, Smarts: 10}

	unmet := reqs.Unmet(stats, Education{})
	if assert.NotNil(t, unmet) {
		assert.Equal(t, RequireMinMoney, unmet.Kind)
	}
}

func TestRequirements_Unmet_AllPass(t *testing.T) {
	reqs := Requirements{{Kind: RequireMinAge, Value: 18}}
	assert.Nil(t, reqs.Unmet(Stats{Age: 40}, Education{}))
}

func TestRequirement_Describe(t *testing.T) {
	assert.Equal(t, "must be at least 18 years old", Requirement{Kind: RequireMinAge, Value: 18}.Describe())
	assert.Equal(t, "requires $50,000", Requirement{Kind: RequireMinMoney, Value: 50000}.Describe())
	assert.Equal(t, "requires a major in law or business", Requirement{Kind: RequireMajorOneOf, Majors: []string{"law", "business"}}.Describe())
}
