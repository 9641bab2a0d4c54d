package services

import (
	"fmt"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
)

// EducationService handles voluntary schooling: university and
// graduate enrollment and graduation. Compulsory schooling is the
// TurnAdvancer's job.
type EducationService struct {
	majors []entities.Major
}

// NewEducationService creates a new EducationService over the given
// major catalog.
func NewEducationService(majors []entities.Major) *EducationService {
	return &EducationService{majors: majors}
}

// List returns the full major catalog.
func (s *EducationService) List() []entities.Major {
	return s.majors
}

// Available returns the majors the character can enroll in right now:
// the right prior stage, graduated where required, and enough smarts.
func (s *EducationService) Available(g *entities.GameState) []entities.Major {
	var out []entities.Major
	for _, m := range s.majors {
		if s.eligible(m, g) == nil {
			out = append(out, m)
		}
	}
	return out
}

// Find returns the major with the given ID.
func (s *EducationService) Find(id string) (entities.Major, error) {
	for _, m := range s.majors {
		if m.ID == id {
			return m, nil
		}
	}
	return entities.Major{}, fmt.Errorf("major %q: %w", id, entities.ErrNotFound)
}

// Enroll starts the character on the given major. University requires
// finished high school; graduate school requires a completed
// university degree. Enrollment resets the graduated flag.
func (s *EducationService) Enroll(g *entities.GameState, majorID string) error {
	major, err := s.Find(majorID)
	if err != nil {
		return err
	}
	if err := s.eligible(major, g); err != nil {
		return err
	}

	level := entities.EducationUniversity
	if major.Stage == entities.MajorGraduate {
		level = entities.EducationGraduate
	}
	g.Education = entities.Education{Level: level, Major: major.ID}
	recordHistory(g, entities.HistoryMilestone, fmt.Sprintf("Enrolled in %s", major.Name))
	return nil
}

// Graduate completes the current degree.
func (s *EducationService) Graduate(g *entities.GameState) error {
	if !g.Education.Level.AtLeast(entities.EducationUniversity) || g.Education.Graduated {
		return fmt.Errorf("nothing to graduate from: %w", entities.ErrIneligible)
	}
	g.Education.Graduated = true
	g.ApplyStatDelta(entities.StatDelta{Happiness: 15, Smarts: 10})
	recordHistory(g, entities.HistoryMilestone, fmt.Sprintf("Graduated with a %s degree", g.Education.Level))
	return nil
}

func (s *EducationService) eligible(m entities.Major, g *entities.GameState) error {
	switch m.Stage {
	case entities.MajorUniversity:
		if g.Education.Level != entities.EducationHigh {
			return fmt.Errorf("university requires finished high school: %w", entities.ErrIneligible)
		}
	case entities.MajorGraduate:
		if g.Education.Level != entities.EducationUniversity || !g.Education.Graduated {
			return fmt.Errorf("graduate school requires a university degree: %w", entities.ErrIneligible)
		}
	default:
		return fmt.Errorf("major %q has unknown stage %q", m.ID, m.Stage)
	}
	if unmet := m.Requirements().Unmet(g.Stats, g.Education); unmet != nil {
		return fmt.Errorf("%s: %w", unmet.Describe(), entities.ErrIneligible)
	}
	return nil
}
