package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

var testMajors = []entities.Major{
	{ID: "computer_science", Name: "Computer Science", Stage: entities.MajorUniversity, RequiredSmarts: 70},
	{ID: "business", Name: "Business Administration", Stage: entities.MajorUniversity, RequiredSmarts: 50},
	{ID: "mba", Name: "MBA", Stage: entities.MajorGraduate, RequiredSmarts: 65},
}

func TestEducationService_Enroll_University(t *testing.T) {
	s := NewEducationService(testMajors)
	g := adultState()
	g.Stats.Smarts = 80

	require.NoError(t, s.Enroll(g, "computer_science"))
	assert.Equal(t, entities.EducationUniversity, g.Education.Level)
	assert.Equal(t, "computer_science", g.Education.Major)
	assert.False(t, g.Education.Graduated)
}

func TestEducationService_Enroll_SmartsGate(t *testing.T) {
	s := NewEducationService(testMajors)
	g := adultState()
	g.Stats.Smarts = 60

	assert.ErrorIs(t, s.Enroll(g, "computer_science"), entities.ErrIneligible)
	assert.NoError(t, s.Enroll(g, "business"))
}

func TestEducationService_Enroll_UniversityRequiresHighSchool(t *testing.T) {
	s := NewEducationService(testMajors)
	g := adultState()
	g.Stats.Smarts = 90
	g.Education = entities.Education{Level: entities.EducationMiddle}

	assert.ErrorIs(t, s.Enroll(g, "computer_science"), entities.ErrIneligible)
}

func TestEducationService_Enroll_GraduateRequiresDegree(t *testing.T) {
	s := NewEducationService(testMajors)
	g := adultState()
	g.Stats.Smarts = 90

	assert.ErrorIs(t, s.Enroll(g, "mba"), entities.ErrIneligible, "high school only")

	g.Education = entities.Education{Level: entities.EducationUniversity, Major: "business", Graduated: false}
	assert.ErrorIs(t, s.Enroll(g, "mba"), entities.ErrIneligible, "undergrad not finished")

	g.Education.Graduated = true
	require.NoError(t, s.Enroll(g, "mba"))
	assert.Equal(t, entities.EducationGraduate, g.Education.Level)
	assert.Equal(t, "mba", g.Education.Major)
}

func TestEducationService_Enroll_UnknownMajor(t *testing.T) {
	s := NewEducationService(testMajors)
	assert.ErrorIs(t, s.Enroll(adultState(), "alchemy"), entities.ErrNotFound)
}

func TestEducationService_Graduate(t *testing.T) {
	s := NewEducationService(testMajors)
	g := adultState()
	g.Education = entities.Education{Level: entities.EducationUniversity, Major: "business"}

	require.NoError(t, s.Graduate(g))
	assert.True(t, g.Education.Graduated)

	assert.ErrorIs(t, s.Graduate(g), entities.ErrIneligible, "can't graduate twice")
}

func TestEducationService_Graduate_NothingToFinish(t *testing.T) {
	s := NewEducationService(testMajors)
	g := adultState()
	assert.ErrorIs(t, s.Graduate(g), entities.ErrIneligible)
}

func TestEducationService_Available(t *testing.T) {
	s := NewEducationService(testMajors)
	g := adultState()
	g.Stats.Smarts = 60

	var ids []string
	for _, m := range s.Available(g) {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"business"}, ids)
}
