package entities

import "errors"

// Business-rule rejections. These are ordinary error returns checked
// with errors.Is; nothing in the engine panics on a rule violation.
var (
	// ErrInsufficientFunds means a spend was rejected whole; no stat,
	// collection or money mutation happened.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrGameOver means the life has ended; only reads and a full
	// reset are accepted.
	ErrGameOver = errors.New("game over")

	// ErrEventPending means a year advance was attempted while an
	// event still awaits a choice.
	ErrEventPending = errors.New("an event is awaiting a choice")

	// ErrNoCharacter means no life has been created yet.
	ErrNoCharacter = errors.New("no character created")

	// ErrIneligible means a structured requirement gate failed.
	ErrIneligible = errors.New("requirements not met")

	// ErrNotFound means a referenced entity is not in its collection.
	ErrNotFound = errors.New("not found")
)
