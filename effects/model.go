// Package effects: the regression-family tag.

package effects

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel indicates an unrecognized regression-family name.
var ErrUnknownModel = errors.New("effects: unknown regression model")

// Model enumerates the regression families whose marginal effects the
// downstream aggregates implement.
type Model uint8

const (
	// Linear is ordinary least-squares regression.
	Linear Model = iota
	// Logistic is binomial logistic regression.
	Logistic
	// Multinomial is multinomial logistic regression.
	Multinomial
	// Hazards is the Cox proportional-hazards model.
	Hazards
)

// model name literals, shared by String and ParseModel.
const (
	nameLinear      = "linear"
	nameLogistic    = "logistic"
	nameMultinomial = "multinomial"
	nameHazards     = "hazards"
)

// String returns the lowercase family name.
func (m Model) String() string {
	switch m {
	case Linear:
		return nameLinear
	case Logistic:
		return nameLogistic
	case Multinomial:
		return nameMultinomial
	case Hazards:
		return nameHazards
	default:
		return "unknown"
	}
}

// Aggregate returns the name of the external numeric aggregate routine the
// generated call invokes for this family.
func (m Model) Aggregate() string {
	switch m {
	case Linear:
		return "margins_linregr"
	case Logistic:
		return "margins_logregr"
	case Multinomial:
		return "margins_mlogregr"
	case Hazards:
		return "margins_coxph"
	default:
		return ""
	}
}

// Valid reports whether m is one of the four known families.
func (m Model) Valid() bool { return m <= Hazards }

// ParseModel maps a family name to its Model tag, case-insensitively.
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case nameLinear:
		return Linear, nil
	case nameLogistic:
		return Logistic, nil
	case nameMultinomial:
		return Multinomial, nil
	case nameHazards:
		return Hazards, nil
	default:
		return 0, fmt.Errorf("ParseModel: %q: %w", name, ErrUnknownModel)
	}
}
