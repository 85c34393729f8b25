package vat

import (
	"time"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
)

// Mode is the direction of a calculation.
type Mode string

// Calculation modes.
const (
	ModeAdd    Mode = "add"
	ModeRemove Mode = "remove"
)

// ParseMode validates the wire form of a mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeAdd, ModeRemove:
		return Mode(value), nil
	default:
		return "", apperrors.ErrUnknownMode
	}
}

// Calculation is the breakdown for one (amount, rate, mode) triple.
// It is rebuilt on every input change and never mutated.
type Calculation struct {
	OriginalAmount  float64 `json:"originalAmount"`
	VATRate         float64 `json:"vatRate"`
	CalculationType Mode    `json:"calculationType"`
	VATAmount       float64 `json:"vatAmount"`
	FinalAmount     float64 `json:"finalAmount"`
	Timestamp       int64   `json:"timestamp"`
}

// Engine computes calculations. The zero value is ready to use and stamps
// results with the wall clock.
type Engine struct {
	// Now overrides the clock used for Calculation.Timestamp.
	Now func() time.Time
}

func (e Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// CalculateVAT returns the breakdown for the amount text at the given rate.
// It returns nil with no error when rate is negative, and nil with the
// *AmountError when the amount does not validate. Neither case is a fault;
// nil means there is nothing to show.
//
// In remove mode the divisor is 1+rate/100, which is at least 1 because a
// negative rate never reaches the arithmetic.
func (e Engine) CalculateVAT(amountText string, rate float64, mode Mode) (*Calculation, error) {
	amount, err := ValidateAmount(amountText)
	if err != nil {
		return nil, err
	}
	if rate < 0 {
		return nil, nil
	}

	var vatAmount, finalAmount float64
	switch mode {
	case ModeRemove:
		finalAmount = amount / (1 + rate/100)
		vatAmount = amount - finalAmount
	default:
		mode = ModeAdd
		vatAmount = amount * rate / 100
		finalAmount = amount + vatAmount
	}

	return &Calculation{
		OriginalAmount:  amount,
		VATRate:         rate,
		CalculationType: mode,
		VATAmount:       vatAmount,
		FinalAmount:     finalAmount,
		Timestamp:       e.now().UnixMilli(),
	}, nil
}

// CalculateVAT runs the zero Engine.
func CalculateVAT(amountText string, rate float64, mode Mode) (*Calculation, error) {
	return Engine{}.CalculateVAT(amountText, rate, mode)
}
