package console

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrParse marks input that is not a number where one is expected.
	ErrParse = errors.New("not a number")
	// ErrConstraint marks a value below its minimum or an empty string.
	ErrConstraint = errors.New("constraint violated")
	// ErrInvalidMenuChoice marks a numeric menu selection outside the menu.
	ErrInvalidMenuChoice = errors.New("invalid menu choice")
)

// InputError describes why a line typed by the user was rejected.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func parseInt(field, raw string, min int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InputError{Field: field, Value: raw, Err: ErrParse}
	}
	if v < min {
		return 0, &InputError{Field: field, Value: raw, Err: ErrConstraint}
	}
	return v, nil
}

func parseFloat(field, raw string, min float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Field: field, Value: raw, Err: ErrParse}
	}
	if v < min {
		return 0, &InputError{Field: field, Value: raw, Err: ErrConstraint}
	}
	return v, nil
}

func parseText(field, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", &InputError{Field: field, Value: raw, Err: ErrConstraint}
	}
	return v, nil
}

func parseMenuChoice(raw string) (MenuChoice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InputError{Field: "choice", Value: raw, Err: ErrParse}
	}
	c := MenuChoice(n)
	if c < ChoiceAdd || c > ChoiceExit {
		return 0, &InputError{Field: "choice", Value: raw, Err: ErrInvalidMenuChoice}
	}
	return c, nil
}
