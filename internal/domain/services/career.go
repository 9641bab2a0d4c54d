package services

import (
	"fmt"
	"strings"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/ports"
)

// Interview outcome tuning. The hire chance grows with smarts but
// never reaches certainty.
const (
	maxInterviewChance   = 0.9
	hireHappinessBonus   = 20
	rejectHappinessMalus = 10
)

// CareerService handles job applications against the career catalog.
type CareerService struct {
	careers []entities.CareerPath
	rng     ports.Rand
}

// NewCareerService creates a new CareerService over the given catalog.
func NewCareerService(careers []entities.CareerPath, rng ports.Rand) *CareerService {
	return &CareerService{
		careers: careers,
		rng:     rng,
	}
}

// List returns the full career catalog.
func (s *CareerService) List() []entities.CareerPath {
	return s.careers
}

// Available returns the careers the character currently qualifies for.
func (s *CareerService) Available(g *entities.GameState) []entities.CareerPath {
	var out []entities.CareerPath
	for _, c := range s.careers {
		if c.Requirements().Unmet(g.Stats, g.Education) == nil {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the career with the given title (case-insensitive).
func (s *CareerService) Find(title string) (entities.CareerPath, error) {
	for _, c := range s.careers {
		if strings.EqualFold(c.Title, title) {
			return c, nil
		}
	}
	return entities.CareerPath{}, fmt.Errorf("career %q: %w", title, entities.ErrNotFound)
}

// ApplyResult reports the outcome of a job application.
type ApplyResult struct {
	Hired  bool
	Chance float64
	Job    *entities.Job
}

// Apply runs a job application: requirement gates, then an interview
// whose success chance is min(0.9, smarts/100). Applying while
// employed is rejected; quit first.
func (s *CareerService) Apply(g *entities.GameState, title string) (*ApplyResult, error) {
	career, err := s.Find(title)
	if err != nil {
		return nil, err
	}
	if g.Job != nil {
		return nil, fmt.Errorf("already employed as %s, quit first: %w", g.Job.Title, entities.ErrIneligible)
	}
	if unmet := career.Requirements().Unmet(g.Stats, g.Education); unmet != nil {
		return nil, fmt.Errorf("%s: %w", unmet.Describe(), entities.ErrIneligible)
	}

	chance := float64(g.Stats.Smarts) / 100
	if chance > maxInterviewChance {
		chance = maxInterviewChance
	}

	result := &ApplyResult{Chance: chance}
	if s.rng.Float64() < chance {
		job := &entities.Job{
			ID:       newID(),
			Title:    career.Title,
			Salary:   career.BaseSalary,
			Category: career.Category,
		}
		g.SetJob(job)
		g.ApplyStatDelta(entities.StatDelta{Happiness: hireHappinessBonus})
		recordHistory(g, entities.HistoryMilestone, fmt.Sprintf("Got hired as a %s", career.Title))
		result.Hired = true
		result.Job = job
		return result, nil
	}

	g.ApplyStatDelta(entities.StatDelta{Happiness: -rejectHappinessMalus})
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Interviewed for %s but didn't get the job", career.Title))
	return result, nil
}

// Quit resigns from the current job.
func (s *CareerService) Quit(g *entities.GameState) error {
	if g.Job == nil {
		return fmt.Errorf("no job to quit: %w", entities.ErrNotFound)
	}
	title := g.Job.Title
	g.Job = nil
	recordHistory(g, entities.HistoryActivity, fmt.Sprintf("Quit job as %s", title))
	return nil
}
