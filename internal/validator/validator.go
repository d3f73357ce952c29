package validator

import (
	"errors"
	"fmt"
	"os"

	"github.com/arcanaland/codexcards/internal/card"
	"github.com/arcanaland/codexcards/internal/schema"
	"github.com/arcanaland/codexcards/internal/symbol"
)

// ErrRole is returned when a face does not have the role its index requires
var ErrRole = errors.New("face role violated")

// RoleError names the card and face that failed its role check
type RoleError struct {
	ID   int
	Face string
	Want card.Role
}

func (e *RoleError) Error() string {
	return fmt.Sprintf("%s: card %d %s is not a %s face", ErrRole, e.ID, e.Face, e.Want)
}

func (e *RoleError) Unwrap() error {
	return ErrRole
}

// CheckCard verifies the face roles of a single card.
// The back must be a back face; the front must be exactly one of resource
// (ids below card.FirstGoldID) or gold (the rest).
func CheckCard(c card.Card) error {
	if !c.Back.IsBack() || c.Back.Front {
		return &RoleError{ID: c.ID, Face: "back", Want: card.RoleBack}
	}

	if !c.Front.Front {
		return &RoleError{ID: c.ID, Face: "front", Want: card.ExpectedFrontRole(c.ID)}
	}

	resource, gold := c.Front.IsResource(), c.Front.IsGold()
	switch card.ExpectedFrontRole(c.ID) {
	case card.RoleResource:
		if !resource || gold {
			return &RoleError{ID: c.ID, Face: "front", Want: card.RoleResource}
		}
	case card.RoleGold:
		if !gold || resource {
			return &RoleError{ID: c.ID, Face: "front", Want: card.RoleGold}
		}
	}

	if c.Front.ID != c.ID || c.Back.ID != c.ID {
		return fmt.Errorf("card %d has faces with ids %d and %d", c.ID, c.Front.ID, c.Back.ID)
	}
	return nil
}

// CheckDeck verifies the whole deck and stops at the first failure
func CheckDeck(cards []card.Card) error {
	if len(cards) != card.DeckSize {
		return fmt.Errorf("deck has %d cards, want %d", len(cards), card.DeckSize)
	}

	for i, c := range cards {
		if c.ID != i {
			return fmt.Errorf("card at position %d has id %d", i, c.ID)
		}
		if err := CheckCard(c); err != nil {
			return err
		}
	}
	return nil
}

// perColor is how many cards of each color every half of the deck holds
const perColor = card.FirstGoldID / 4

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a card database file that was already written
type Validator struct {
	DatabasePath string
	Results      ValidationResults
}

func NewValidator(databasePath string) *Validator {
	return &Validator{
		DatabasePath: databasePath,
		Results:      ValidationResults{},
	}
}

// Validate parses the database and collects every problem found.
// An error is returned only when the file cannot be read or decoded at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.DatabasePath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("card database not found: %s", v.DatabasePath)
	}

	records, err := schema.ReadFile(v.DatabasePath)
	if err != nil {
		return v.Results, fmt.Errorf("error parsing %s: %v", v.DatabasePath, err)
	}

	cards := v.rebuildCards(records)
	v.validateSize(len(records))
	v.validateRoles(cards)
	v.validateColors(cards)

	return v.Results, nil
}

// rebuildCards turns records back into cards, recording the ones that cannot be
func (v *Validator) rebuildCards(records []schema.CardRecord) []card.Card {
	cards := make([]card.Card, 0, len(records))
	for i, r := range records {
		c, err := r.Card()
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card at position %d: %v", i, err))
			continue
		}
		if c.ID != i {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("card at position %d has id %d", i, c.ID))
		}
		cards = append(cards, c)
	}
	return cards
}

func (v *Validator) validateSize(n int) {
	if n != card.DeckSize {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("database has %d cards, want %d", n, card.DeckSize))
	}
}

// validateRoles applies CheckCard to every card
func (v *Validator) validateRoles(cards []card.Card) {
	for _, c := range cards {
		if err := CheckCard(c); err != nil {
			v.Results.Errors = append(v.Results.Errors, err.Error())
		}
	}
}

// validateColors warns about color mismatches and unusual color distribution
func (v *Validator) validateColors(cards []card.Card) {
	resource := make(map[symbol.Symbol]int)
	gold := make(map[symbol.Symbol]int)

	for _, c := range cards {
		if c.Front.Color() != c.Back.Color() {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("card %d front is %s but back is %s", c.ID, c.Front.Color(), c.Back.Color()))
		}
		if c.ID < card.FirstGoldID {
			resource[c.Front.Color()]++
		} else {
			gold[c.Front.Color()]++
		}
	}

	if len(cards) != card.DeckSize {
		return
	}

	for _, s := range symbol.All() {
		if !s.IsColor() {
			continue
		}
		if resource[s] != perColor {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%d %s resource cards, expected %d", resource[s], s, perColor))
		}
		if gold[s] != perColor {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%d %s gold cards, expected %d", gold[s], s, perColor))
		}
	}
}
