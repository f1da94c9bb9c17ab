package hashlife

import (
	"fmt"

	"github.com/gosperlife/hashlife/internal/ruletable"
)

// Rule is a life-like B/S neighbor-count rule. It is a type alias for
// internal/ruletable.Rule, the same pattern bart/common.go uses to expose
// an internal type at package root without duplicating its definition.
type Rule = ruletable.Rule

// Conway is the canonical B3/S23 rule (Conway's Game of Life).
var Conway = ruletable.Conway

// ParseRule parses a rule string such as "B3/S23", returning
// ErrInvalidRule on failure.
func ParseRule(s string) (Rule, error) {
	r, err := ruletable.Parse(s)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return r, nil
}
