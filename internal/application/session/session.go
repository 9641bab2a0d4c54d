// Package session wraps one simulated life behind a mutex so every
// command sees a consistent state. The CLI drives it single-threaded
// today; the locking keeps the engine safe for any future host that
// runs commands concurrently.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/ports"
	"github.com/zkgirl/dreamlife/internal/domain/services"
)

// Post-advance event policy: a new event fires on 70% of year advances
// and never more than three times between advances.
const (
	eventChance   = 0.7
	maxEventsYear = 3
)

// Catalog bundles the authored content one session plays against. It
// is loaded once and never mutated.
type Catalog struct {
	Events        []entities.Event
	Careers       []entities.CareerPath
	Majors        []entities.Major
	BusinessTypes []entities.BusinessType
	ShopItems     []entities.ShopItem
	Activities    []entities.Activity
}

// BuiltinCatalog returns the catalog of builtin defaults, used when no
// imported catalog exists.
func BuiltinCatalog() Catalog {
	return Catalog{
		Events:        entities.DefaultEvents,
		Careers:       entities.DefaultCareers,
		Majors:        entities.DefaultMajors,
		BusinessTypes: entities.DefaultBusinessTypes,
		ShopItems:     entities.DefaultShopItems,
		Activities:    entities.DefaultActivities,
	}
}

// Session owns one life from birth to death. Every command takes the
// mutex, checks the terminal-state gates, and delegates to the domain
// services.
type Session struct {
	mu    sync.Mutex
	state *entities.GameState
	rng   ports.Rand
	clock func() time.Time

	selector      *services.EventSelector
	advancer      *services.TurnAdvancer
	resolver      *services.ChoiceResolver
	careers       *services.CareerService
	education     *services.EducationService
	relationships *services.RelationshipService
	businesses    *services.BusinessService
	shopping      *services.ShoppingService
	activities    *services.ActivityService
}

// New creates a session over the given catalog and randomness source.
func New(catalog Catalog, rng ports.Rand) *Session {
	return &Session{
		state:         entities.NewGameState(),
		rng:           rng,
		clock:         time.Now,
		selector:      services.NewEventSelector(catalog.Events, rng),
		advancer:      services.NewTurnAdvancer(rng),
		resolver:      services.NewChoiceResolver(rng),
		careers:       services.NewCareerService(catalog.Careers, rng),
		education:     services.NewEducationService(catalog.Majors),
		relationships: services.NewRelationshipService(rng),
		businesses:    services.NewBusinessService(catalog.BusinessTypes),
		shopping:      services.NewShoppingService(catalog.ShopItems),
		activities:    services.NewActivityService(catalog.Activities, rng),
	}
}

// WithClock overrides the timestamp source. For tests.
func (s *Session) WithClock(clock func() time.Time) *Session {
	s.clock = clock
	return s
}

// Snapshot returns a shallow copy of the current state for display.
func (s *Session) Snapshot() entities.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state
}

// CreateCharacter starts a new life: rolls newborn stats, creates the
// parents, and fires the very first event at age 0.
func (s *Session) CreateCharacter(name, gender, country, city string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Character != nil {
		return fmt.Errorf("a life is already in progress, reset first: %w", entities.ErrIneligible)
	}

	s.state.Character = &entities.Character{Name: name, Gender: gender, Country: country, City: city}
	s.state.Stats = entities.NewbornStats(s.rng.IntN(101), s.rng.IntN(101))
	s.state.GameStarted = true

	for _, parent := range []string{"Mom", "Dad"} {
		age := 25 + s.rng.IntN(16)
		generosity := s.rng.IntN(100)
		s.state.Relationships = append(s.state.Relationships, entities.Relationship{
			ID:         uuid.New().String(),
			Name:       parent,
			Type:       entities.RelationParent,
			Bond:       70 + s.rng.IntN(31),
			Age:        &age,
			Generosity: &generosity,
			Alive:      true,
		})
	}

	s.recordHistory(entities.HistoryMilestone, fmt.Sprintf("%s was born in %s, %s", name, city, country))

	event := s.selector.Next(s.state)
	s.state.CurrentEvent = &event
	s.state.EventsThisYear = 1
	return nil
}

// AdvanceOutcome is what one year advance produced.
type AdvanceOutcome struct {
	Report *services.AdvanceReport
	Event  *entities.Event // nil when no event fired this turn
}

// AdvanceYear moves the life forward one year, then rolls the event
// policy. It refuses while an event awaits a choice.
func (s *Session) AdvanceYear() (*AdvanceOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gate(); err != nil {
		return nil, err
	}
	if s.state.CurrentEvent != nil {
		return nil, entities.ErrEventPending
	}

	report := s.advancer.Advance(s.state)
	outcome := &AdvanceOutcome{Report: report}
	if report.Died {
		return outcome, nil
	}

	if s.rng.Float64() < eventChance && s.state.EventsThisYear < maxEventsYear {
		event := s.selector.Next(s.state)
		s.state.CurrentEvent = &event
		s.state.EventsThisYear++
		outcome.Event = &event
	}
	return outcome, nil
}

// SelectChoice resolves choice i of the pending event. A rejected
// money gate leaves the event pending so another choice can be made.
func (s *Session) SelectChoice(i int) (*services.ResolveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gate(); err != nil {
		return nil, err
	}
	if s.state.CurrentEvent == nil {
		return nil, fmt.Errorf("no event to respond to: %w", entities.ErrNotFound)
	}

	result, err := s.resolver.Resolve(s.state, *s.state.CurrentEvent, i)
	if err != nil {
		return nil, err
	}
	s.state.CurrentEvent = nil
	return result, nil
}

// DismissEvent ignores the pending event without consequences.
func (s *Session) DismissEvent() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gate(); err != nil {
		return err
	}
	if s.state.CurrentEvent == nil {
		return fmt.Errorf("no event to dismiss: %w", entities.ErrNotFound)
	}
	s.state.CurrentEvent = nil
	s.recordHistory(entities.HistoryEvent, "Ignored a life event")
	return nil
}

// Reset abandons the current life and returns to the pre-creation
// state. The only command accepted after death besides reads.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = entities.NewGameState()
}

// Careers returns the career catalog.
func (s *Session) Careers() []entities.CareerPath {
	return s.careers.List()
}

// AvailableCareers returns the careers the character qualifies for.
func (s *Session) AvailableCareers() ([]entities.CareerPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return nil, err
	}
	return s.careers.Available(s.state), nil
}

// ApplyForJob runs a job application against the career catalog.
func (s *Session) ApplyForJob(title string) (*services.ApplyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return nil, err
	}
	return s.careers.Apply(s.state, title)
}

// QuitJob resigns from the current job.
func (s *Session) QuitJob() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return err
	}
	return s.careers.Quit(s.state)
}

// Majors returns the major catalog.
func (s *Session) Majors() []entities.Major {
	return s.education.List()
}

// AvailableMajors returns the majors open for enrollment right now.
func (s *Session) AvailableMajors() ([]entities.Major, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return nil, err
	}
	return s.education.Available(s.state), nil
}

// Enroll starts a university or graduate program.
func (s *Session) Enroll(majorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return err
	}
	return s.education.Enroll(s.state, majorID)
}

// Graduate completes the current degree.
func (s *Session) Graduate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return err
	}
	return s.education.Graduate(s.state)
}

// StartDating finds a new romantic partner.
func (s *Session) StartDating() (*entities.Relationship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return nil, err
	}
	return s.relationships.StartDating(s.state)
}

// Propose asks the current partner to marry.
func (s *Session) Propose() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return false, err
	}
	return s.relationships.Propose(s.state)
}

// BreakUp ends the current romance.
func (s *Session) BreakUp() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return err
	}
	return s.relationships.BreakUp(s.state)
}

// QualityTime spends time with a relationship.
func (s *Session) QualityTime(relationshipID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return err
	}
	return s.relationships.QualityTime(s.state, relationshipID)
}

// Converse has a conversation with a relationship.
func (s *Session) Converse(relationshipID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return err
	}
	return s.relationships.Converse(s.state, relationshipID)
}

// Compliment flatters a relationship.
func (s *Session) Compliment(relationshipID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return err
	}
	return s.relationships.Compliment(s.state, relationshipID)
}

// GiveGift buys a relationship a present.
func (s *Session) GiveGift(relationshipID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return err
	}
	return s.relationships.GiveGift(s.state, relationshipID)
}

// AskForMoney asks a relationship for a handout.
func (s *Session) AskForMoney(relationshipID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return 0, err
	}
	return s.relationships.AskForMoney(s.state, relationshipID)
}

// Argue picks a fight with a relationship.
func (s *Session) Argue(relationshipID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return err
	}
	return s.relationships.Argue(s.state, relationshipID)
}

// MakeFriend meets someone new.
func (s *Session) MakeFriend() (*entities.Relationship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return nil, err
	}
	return s.relationships.MakeFriend(s.state), nil
}

// BusinessTypes returns the business-type catalog.
func (s *Session) BusinessTypes() []entities.BusinessType {
	return s.businesses.List()
}

// StartBusiness founds a business of the given type.
func (s *Session) StartBusiness(typeID string) (*entities.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return nil, err
	}
	return s.businesses.Start(s.state, typeID)
}

// UpgradeBusiness reinvests in an owned business.
func (s *Session) UpgradeBusiness(businessID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return err
	}
	return s.businesses.Upgrade(s.state, businessID)
}

// SellBusiness liquidates an owned business.
func (s *Session) SellBusiness(businessID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return 0, err
	}
	return s.businesses.Sell(s.state, businessID)
}

// ShopItems returns the shop catalog.
func (s *Session) ShopItems() []entities.ShopItem {
	return s.shopping.List()
}

// BuyItem purchases a shop item.
func (s *Session) BuyItem(itemID string) (*entities.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return nil, err
	}
	return s.shopping.Buy(s.state, itemID)
}

// SellAsset sells an owned asset at its resale value.
func (s *Session) SellAsset(assetID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return 0, err
	}
	return s.shopping.SellAsset(s.state, assetID)
}

// Activities returns the activity catalog.
func (s *Session) Activities() []entities.Activity {
	return s.activities.List()
}

// DoActivity performs an activity from the catalog.
func (s *Session) DoActivity(activityID string) (*services.ActivityResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.gate(); err != nil {
		return nil, err
	}
	return s.activities.Do(s.state, activityID)
}

// gate enforces the command preconditions shared by every mutating
// command: a dead life only accepts reads and Reset, and everything
// needs a created character. Callers must hold the mutex.
func (s *Session) gate() error {
	if s.state.IsDead {
		return entities.ErrGameOver
	}
	if s.state.Character == nil {
		return entities.ErrNoCharacter
	}
	return nil
}

func (s *Session) recordHistory(category entities.HistoryCategory, text string) {
	s.state.History = append(s.state.History, entities.HistoryEntry{
		ID:        uuid.New().String(),
		Age:       s.state.Stats.Age,
		Category:  category,
		Text:      text,
		Timestamp: s.clock(),
	})
}
