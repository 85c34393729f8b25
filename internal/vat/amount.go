package vat

import (
	"math"
	"strconv"
	"strings"
)

// MaxAmount is the largest amount the calculator accepts.
const MaxAmount = 999999999

// Reason identifies why an amount failed validation.
type Reason string

// Validation failure reasons.
const (
	ReasonMissing    Reason = "missing"
	ReasonNotANumber Reason = "not a number"
	ReasonNegative   Reason = "negative"
	ReasonTooLarge   Reason = "too large"
)

var reasonMessages = map[Reason]string{
	ReasonMissing:    "Please enter an amount",
	ReasonNotANumber: "Please enter a valid number",
	ReasonNegative:   "Amount cannot be negative",
	ReasonTooLarge:   "Amount is too large",
}

// Message returns the user-facing text for the reason.
func (r Reason) Message() string {
	return reasonMessages[r]
}

// AmountError reports an invalid amount. It is returned as a value,
// never panicked, and carries the reason shown to the user.
type AmountError struct {
	Reason Reason
	Input  string
}

func (e *AmountError) Error() string {
	return "invalid amount " + strconv.Quote(e.Input) + ": " + string(e.Reason)
}

// ValidateAmount parses raw amount text.
// Each call is independent of earlier ones, so the returned error is always
// the condition of the latest text only.
func ValidateAmount(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &AmountError{Reason: ReasonMissing, Input: text}
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &AmountError{Reason: ReasonNotANumber, Input: text}
	}

	if value < 0 {
		return 0, &AmountError{Reason: ReasonNegative, Input: text}
	}

	if value > MaxAmount {
		return 0, &AmountError{Reason: ReasonTooLarge, Input: text}
	}

	return value, nil
}

// SanitizeAmount filters a keystroke edit of the amount field.
// Everything but digits and '.' is dropped from raw. If the result would
// hold more than one decimal point the edit is rejected and prev is
// returned unchanged; ok reports whether the edit was accepted.
func SanitizeAmount(prev, raw string) (clean string, ok bool) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	clean = b.String()
	if strings.Count(clean, ".") > 1 {
		return prev, false
	}
	return clean, true
}
