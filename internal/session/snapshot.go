package session

import (
	"github.com/ndewijer/VAT-Calculator-Backend/internal/format"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/vat"
)

// Snapshot is the state of a session after its latest event.
type Snapshot struct {
	ID            string           `json:"id"`
	Amount        string           `json:"amount"`
	RateSelection string           `json:"rateSelection"`
	CustomRate    string           `json:"customRate"`
	Mode          vat.Mode         `json:"calculationType"`
	EffectiveRate float64          `json:"effectiveRate"`
	Reason        vat.Reason       `json:"reason,omitempty"`
	Error         string           `json:"error"`
	Calculation   *vat.Calculation `json:"calculation"`
	Breakdown     *Breakdown       `json:"breakdown,omitempty"`
	CanCopy       bool             `json:"canCopy"`
}

// Breakdown is the calculation rendered for display.
type Breakdown struct {
	OriginalAmount string `json:"originalAmount"`
	VATLabel       string `json:"vatLabel"`
	VATAmount      string `json:"vatAmount"`
	FinalAmount    string `json:"finalAmount"`
}

// NewBreakdown formats calc. The VAT line is signed "+" when adding and
// "-" when removing.
func NewBreakdown(calc vat.Calculation) *Breakdown {
	sign := "+"
	if calc.CalculationType == vat.ModeRemove {
		sign = "-"
	}
	return &Breakdown{
		OriginalAmount: format.Currency(calc.OriginalAmount),
		VATLabel:       "VAT (" + format.Percent(calc.VATRate) + ")",
		VATAmount:      sign + format.Currency(calc.VATAmount),
		FinalAmount:    format.Currency(calc.FinalAmount),
	}
}

// Notification variants.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification reports the outcome of a copy to the user.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
	Text        string `json:"text,omitempty"`
}
