package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

var testBusinessTypes = []entities.BusinessType{
	{ID: "cafe", Name: "Coffee Shop", StartupCost: 50000, BaseRevenue: 15000, BaseEmployees: 3, MinAge: 18},
	{ID: "tech_startup", Name: "Tech Startup", StartupCost: 100000, BaseRevenue: 40000, BaseEmployees: 5, MinAge: 21,
		RequiredEducation: entities.EducationUniversity},
}

func TestBusinessService_Start(t *testing.T) {
	s := NewBusinessService(testBusinessTypes)
	g := adultState()
	g.Stats.Money = 60000

	b, err := s.Start(g, "cafe")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), g.Stats.Money)
	assert.Equal(t, int64(50000), b.Value)
	assert.Equal(t, int64(15000), b.Revenue)
	assert.Equal(t, entities.StartingReputation, b.Reputation)
	require.Len(t, g.Businesses, 1)
}

func TestBusinessService_Start_Gates(t *testing.T) {
	s := NewBusinessService(testBusinessTypes)

	g := adultState()
	g.Stats.Money = 1000
	_, err := s.Start(g, "cafe")
	assert.ErrorIs(t, err, entities.ErrIneligible, "startup cost is a requirement gate")
	assert.Equal(t, int64(1000), g.Stats.Money)

	g = adultState()
	g.Stats.Money = 200000
	_, err = s.Start(g, "tech_startup")
	assert.ErrorIs(t, err, entities.ErrIneligible, "needs a degree")

	_, err = s.Start(g, "pyramid_scheme")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestBusinessService_Start_MultipleCoexist(t *testing.T) {
	s := NewBusinessService(testBusinessTypes)
	g := adultState()
	g.Stats.Money = 200000

	_, err := s.Start(g, "cafe")
	require.NoError(t, err)
	_, err = s.Start(g, "cafe")
	require.NoError(t, err)
	assert.Len(t, g.Businesses, 2)
}

func TestBusinessService_Upgrade(t *testing.T) {
	s := NewBusinessService(testBusinessTypes)
	g := adultState()
	g.Stats.Money = 100000
	g.Businesses = []entities.Business{{ID: "b1", Name: "Coffee Shop", Value: 50000, Revenue: 15000, Reputation: 50, Employees: 3}}

	require.NoError(t, s.Upgrade(g, "b1"))
	assert.Equal(t, int64(75000), g.Stats.Money)
	b := g.Businesses[0]
	assert.Equal(t, int64(75000), b.Value)
	assert.Equal(t, int64(19500), b.Revenue)
	assert.Equal(t, 60, b.Reputation)
	assert.Equal(t, 5, b.Employees)
}

func TestBusinessService_Upgrade_InsufficientFunds(t *testing.T) {
	s := NewBusinessService(testBusinessTypes)
	g := adultState()
	g.Stats.Money = 100
	g.Businesses = []entities.Business{{ID: "b1", Value: 50000, Revenue: 15000, Reputation: 50}}

	assert.ErrorIs(t, s.Upgrade(g, "b1"), entities.ErrInsufficientFunds)
	assert.Equal(t, int64(50000), g.Businesses[0].Value, "failed upgrade changes nothing")
}

func TestBusinessService_Sell(t *testing.T) {
	s := NewBusinessService(testBusinessTypes)
	g := adultState()
	g.Businesses = []entities.Business{{ID: "b1", Name: "Coffee Shop", Value: 100000, Reputation: 50}}

	price, err := s.Sell(g, "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(60000), price) // 100000 × 0.5 × 1.2
	assert.Equal(t, int64(60000), g.Stats.Money)
	assert.Empty(t, g.Businesses)
}

func TestBusinessService_Sell_NotFound(t *testing.T) {
	s := NewBusinessService(testBusinessTypes)
	_, err := s.Sell(adultState(), "ghost")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
