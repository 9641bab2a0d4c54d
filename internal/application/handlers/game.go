// Package handlers contains application use case handlers.
package handlers

import (
	"github.com/dustin/go-humanize"

	"github.com/zkgirl/dreamlife/internal/application/session"
	"github.com/zkgirl/dreamlife/internal/domain/entities"
	"github.com/zkgirl/dreamlife/internal/domain/services"
)

// GameHandler adapts a game session for the CLI.
type GameHandler struct {
	session *session.Session
}

// NewGameHandler creates a new game handler.
func NewGameHandler(s *session.Session) *GameHandler {
	return &GameHandler{session: s}
}

// Session exposes the underlying session for the action commands the
// handler does not reshape.
func (h *GameHandler) Session() *session.Session {
	return h.session
}

// NewLifeResult contains the result of starting a life.
type NewLifeResult struct {
	State entities.GameState
	Event *entities.Event
}

// HandleNewLife starts a new life with the given identity.
func (h *GameHandler) HandleNewLife(name, gender, country, city string) (*NewLifeResult, error) {
	if err := h.session.CreateCharacter(name, gender, country, city); err != nil {
		return nil, err
	}

	state := h.session.Snapshot()
	return &NewLifeResult{
		State: state,
		Event: state.CurrentEvent,
	}, nil
}

// AdvanceResult contains the result of advancing a year.
type AdvanceResult struct {
	Report services.AdvanceReport
	Event  *entities.Event
	Income string // formatted yearly income, e.g. "$85,000"
}

// HandleAdvance advances the life by one year.
func (h *GameHandler) HandleAdvance() (*AdvanceResult, error) {
	outcome, err := h.session.AdvanceYear()
	if err != nil {
		return nil, err
	}

	return &AdvanceResult{
		Report: *outcome.Report,
		Event:  outcome.Event,
		Income: FormatMoney(outcome.Report.Income),
	}, nil
}

// ChoiceResult contains the result of resolving an event choice.
type ChoiceResult struct {
	Result *services.ResolveResult
	State  entities.GameState
}

// HandleChoice resolves the pending event with the i-th choice.
func (h *GameHandler) HandleChoice(i int) (*ChoiceResult, error) {
	result, err := h.session.SelectChoice(i)
	if err != nil {
		return nil, err
	}

	return &ChoiceResult{
		Result: result,
		State:  h.session.Snapshot(),
	}, nil
}

// HandleDismiss dismisses the pending event without choosing.
func (h *GameHandler) HandleDismiss() error {
	return h.session.DismissEvent()
}

// StatusResult contains a display-ready summary of the current life.
type StatusResult struct {
	State    entities.GameState
	Money    string // formatted balance
	Salary   string // formatted yearly salary, empty when unemployed
	NetWorth string // formatted money + resale value of assets and businesses
}

// HandleStatus reports the current life.
func (h *GameHandler) HandleStatus() *StatusResult {
	state := h.session.Snapshot()

	result := &StatusResult{
		State:    state,
		Money:    FormatMoney(state.Stats.Money),
		NetWorth: FormatMoney(netWorth(&state)),
	}
	if state.Job != nil {
		result.Salary = FormatMoney(state.Job.Salary)
	}
	return result
}

// netWorth is the liquid balance plus what everything owned would
// fetch if sold today.
func netWorth(g *entities.GameState) int64 {
	total := g.Stats.Money
	for i := range g.Assets {
		total += g.Assets[i].ResaleValue(g.Stats.Age)
	}
	for i := range g.Businesses {
		total += g.Businesses[i].SalePrice()
	}
	return total
}

// FormatMoney renders an amount as a dollar string with thousands
// separators, e.g. -1500 -> "-$1,500".
func FormatMoney(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.Comma(-amount)
	}
	return "$" + humanize.Comma(amount)
}
