package fourth

import (
	"errors"
	"fmt"
)

// The error taxonomy is closed: every way an Eval can fail is one of the
// sentinel errors below, possibly wrapped with the failing operation or
// word, or one of the two typed errors that carry their offending value.
var (
	ErrMissingName        = errors.New("no name specified for definition")
	ErrStackUnderflow     = errors.New("stack underflow")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrDefinitionTooLarge = errors.New("definition too large")
)

// UndefinedWordError reports a word that matched no primitive, parsed as no
// integer literal, and named no dictionary entry.
type UndefinedWordError string

func (word UndefinedWordError) Error() string {
	return fmt.Sprintf("undefined word '%s'", string(word))
}

// CodePointError reports an emit operand that is not a valid Unicode scalar
// value: negative, beyond the code point range, or a surrogate.
type CodePointError int32

func (v CodePointError) Error() string {
	if v < 0 {
		return "emit: out of bounds"
	}
	return fmt.Sprintf("emit: invalid unicode %#04x", uint32(v))
}

func underflowError(op opCode) error {
	return fmt.Errorf("%s: %w", op.name(), ErrStackUnderflow)
}

func divisionByZeroError(op opCode) error {
	return fmt.Errorf("%s: %w", op.name(), ErrDivisionByZero)
}
