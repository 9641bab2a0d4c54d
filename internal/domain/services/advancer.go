package services

import (
	"fmt"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/ports"
)

// Death causes and the ages that trigger them.
const (
	CauseOldAge     = "Old age"
	CausePoorHealth = "Poor health"
	MaxAge          = 120
)

// TurnAdvancer applies one year of simulated time: aging, compulsory
// schooling, stat drift, income, collection upkeep and the death
// check.
type TurnAdvancer struct {
	rng ports.Rand
}

// NewTurnAdvancer creates a new TurnAdvancer.
func NewTurnAdvancer(rng ports.Rand) *TurnAdvancer {
	return &TurnAdvancer{rng: rng}
}

// AdvanceReport summarizes what one year changed.
type AdvanceReport struct {
	Age           int
	Income        int64
	StartedSchool *entities.EducationLevel
	Died          bool
	CauseOfDeath  string
}

// Advance moves the life forward one year. The caller is responsible
// for rejecting the call when the life has already ended or an event
// is pending; Advance itself assumes a live, settled state.
//
// The death check runs last, after drift and income, so a life whose
// health hits zero during the year dies that same year. Poor health
// takes precedence over old age when both apply.
func (a *TurnAdvancer) Advance(g *entities.GameState) *AdvanceReport {
	g.Stats.Age++
	report := &AdvanceReport{Age: g.Stats.Age}

	if stage, ok := entities.CompulsoryStageAt(g.Stats.Age); ok {
		g.Education.Level = stage
		g.Education.Graduated = false
		report.StartedSchool = &stage
		recordHistory(g, entities.HistoryMilestone, fmt.Sprintf("Started %s school", stage))
	}

	a.drift(g)
	report.Income = a.collectIncome(g)
	a.ageCollections(g)

	g.EventsThisYear = 0

	if g.Stats.Age >= entities.CentenarianAge {
		g.UnlockAchievement(entities.AchievementCentenarian)
	}

	switch {
	case g.Stats.Health <= 0:
		g.EndLife(CausePoorHealth)
	case g.Stats.Age >= MaxAge:
		g.EndLife(CauseOldAge)
	}
	if g.IsDead {
		report.Died = true
		report.CauseOfDeath = g.CauseOfDeath
		recordHistory(g, entities.HistoryMilestone, fmt.Sprintf("Died at age %d. Cause: %s", g.Stats.Age, g.CauseOfDeath))
	}

	return report
}

// drift applies the yearly background stat movement. Happiness shifts
// by one of {-1, 0, 1, 2}; past 60 health and looks start to slip,
// past 80 health slips faster (the 80+ draw replaces the 60+ one).
func (a *TurnAdvancer) drift(g *entities.GameState) {
	d := entities.StatDelta{Happiness: a.rng.IntN(4) - 1}

	switch {
	case g.Stats.Age > 80:
		d.Health = -a.rng.IntN(3)
		d.Looks = -a.rng.IntN(2)
	case g.Stats.Age > 60:
		d.Health = -a.rng.IntN(2)
		d.Looks = -a.rng.IntN(2)
	}

	g.ApplyStatDelta(d)
}

// collectIncome credits the year's salary and business revenue.
func (a *TurnAdvancer) collectIncome(g *entities.GameState) int64 {
	var income int64
	if g.Job != nil {
		income += g.Job.Salary
	}
	for i := range g.Businesses {
		income += g.Businesses[i].Revenue
	}
	if income != 0 {
		g.AddMoney(income)
	}
	return income
}

// ageCollections ages everything the character owns or knows.
func (a *TurnAdvancer) ageCollections(g *entities.GameState) {
	if g.Job != nil {
		g.Job.YearsWorked++
	}
	for i := range g.Businesses {
		g.Businesses[i].YearsOwned++
	}
	for i := range g.Relationships {
		if g.Relationships[i].Age != nil {
			*g.Relationships[i].Age++
		}
	}
	for i := range g.Pets {
		g.Pets[i].Age++
		if g.Pets[i].Age > entities.PetOldAgeThreshold {
			g.Pets[i].Health = entities.ClampStat(g.Pets[i].Health - entities.PetOldAgeDecay)
		}
	}
}
