package statemachine

import (
	"errors"
	"mesa-pos/models"
)

// Transition defines a valid table status change and what triggers it
type Transition struct {
	From    models.TableStatus
	To      models.TableStatus
	Trigger string // "order", "close", "payment"
}

// validTransitions is the authoritative state machine definition.
// The daily settlement bypasses this table: it resets every table to
// free unconditionally. Adding an order likewise forces occupied
// regardless of prior status, which is why closing → occupied exists.
var validTransitions = []Transition{
	// First order lands on a free table
	{From: models.StatusFree, To: models.StatusOccupied, Trigger: "order"},
	// Another order arrives after the bill was requested
	{From: models.StatusClosing, To: models.StatusOccupied, Trigger: "order"},
	// Waiter requests the bill
	{From: models.StatusOccupied, To: models.StatusClosing, Trigger: "close"},
	// Payment clears the table, with or without a prior bill request
	{From: models.StatusOccupied, To: models.StatusFree, Trigger: "payment"},
	{From: models.StatusClosing, To: models.StatusFree, Trigger: "payment"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From models.TableStatus
	To   models.TableStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.TableStatus) []models.TableStatus {
	var nexts []models.TableStatus
	seen := map[models.TableStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks whether a table may move from one status to another
func CanTransition(from, to models.TableStatus) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.TableStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
