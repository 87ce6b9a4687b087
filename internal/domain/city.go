package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinCityLength is the shortest accepted city name, in characters.
const MinCityLength = 2

// Reason identifies why a raw city string was rejected.
type Reason string

const (
	ReasonTooShort         Reason = "too_short"
	ReasonInvalidStart     Reason = "invalid_start"
	ReasonIllegalCharacter Reason = "illegal_character"
	ReasonNoLetters        Reason = "no_letters"
)

// Sentinels for errors.Is against a *ValidationError.
var (
	ErrTooShort         = &ValidationError{Reason: ReasonTooShort}
	ErrInvalidStart     = &ValidationError{Reason: ReasonInvalidStart}
	ErrIllegalCharacter = &ValidationError{Reason: ReasonIllegalCharacter}
	ErrNoLetters        = &ValidationError{Reason: ReasonNoLetters}
)

// ValidationError reports a rejected city name. Input holds the raw text and
// Char the offending character for ReasonIllegalCharacter and
// ReasonInvalidStart.
type ValidationError struct {
	Reason Reason
	Input  string
	Char   rune
}

func (e *ValidationError) Error() string {
	return "invalid city name: " + e.Message()
}

// Message is the user-facing explanation shown in the warning dialog.
func (e *ValidationError) Message() string {
	switch e.Reason {
	case ReasonTooShort:
		return "City name must be at least 2 characters"
	case ReasonInvalidStart:
		return "City name must start with a letter"
	case ReasonIllegalCharacter:
		return "Only letters, spaces, hyphens and apostrophes allowed"
	case ReasonNoLetters:
		return "City name must contain at least one letter"
	default:
		return "Please enter a valid city name"
	}
}

// Is matches any *ValidationError with the same Reason, so the package
// sentinels work with errors.Is regardless of Input.
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Reason == e.Reason
}

// CityName is a city string that passed Validate.
type CityName struct {
	name string
}

func (c CityName) String() string { return c.name }

// Upper returns the normalized form used for hashing and display.
func (c CityName) Upper() string { return strings.ToUpper(c.name) }

// IsZero reports whether c was produced by Validate.
func (c CityName) IsZero() bool { return c.name == "" }

// IsCityRune reports whether r may appear in a city name. It is the single
// predicate behind both Validate and per-keystroke filtering.
func IsCityRune(r rune) bool {
	return isLetter(r) || r == ' ' || r == '-' || r == '\''
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// Validate checks raw against the city name rules. Rules are applied in a
// fixed order: length, first character, character class, letter presence.
// Surrounding whitespace is not trimmed here; callers decide that.
func Validate(raw string) (CityName, error) {
	if utf8.RuneCountInString(raw) < MinCityLength {
		return CityName{}, &ValidationError{Reason: ReasonTooShort, Input: raw}
	}

	first, _ := utf8.DecodeRuneInString(raw)
	if !isLetter(first) {
		return CityName{}, &ValidationError{Reason: ReasonInvalidStart, Input: raw, Char: first}
	}

	hasLetter := false
	for _, r := range raw {
		if !IsCityRune(r) {
			return CityName{}, &ValidationError{Reason: ReasonIllegalCharacter, Input: raw, Char: r}
		}
		if isLetter(r) {
			hasLetter = true
		}
	}

	// Unreachable after the first-character rule; kept as its own rule.
	if !hasLetter {
		return CityName{}, &ValidationError{Reason: ReasonNoLetters, Input: raw}
	}

	return CityName{name: raw}, nil
}

// MustCity validates raw and panics on failure. For constants and tests.
func MustCity(raw string) CityName {
	c, err := Validate(raw)
	if err != nil {
		panic(err)
	}
	return c
}
