// Package session holds the interactive calculator form.
// A Session consumes one input event at a time, re-runs the vat core after
// each event and exposes the result as a Snapshot.
package session

import (
	"errors"
	"sync"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/clipboard"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/format"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/vat"
)

// Options configures new sessions.
type Options struct {
	Catalog vat.RateCatalog
	Engine  vat.Engine
}

// Session is one calculator form. All methods are safe for concurrent use;
// events are applied in the order they acquire the session lock.
type Session struct {
	mu sync.Mutex

	id      string
	catalog vat.RateCatalog
	engine  vat.Engine

	amount        string
	amountTouched bool
	selection     vat.RateSelection
	customRate    string
	mode          vat.Mode

	reason      vat.Reason
	message     string
	calculation *vat.Calculation
}

// New creates a session in its initial state.
func New(id string, opts Options) *Session {
	if opts.Catalog == nil {
		opts.Catalog = vat.DefaultRates
	}
	s := &Session{
		id:      id,
		catalog: opts.Catalog,
		engine:  opts.Engine,
	}
	s.reset()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Catalog returns the presets this session accepts.
func (s *Session) Catalog() vat.RateCatalog {
	return s.catalog
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SetAmount applies an edit of the amount field. The raw text is sanitized
// first; an edit that would leave two decimal points is rejected and the
// stored amount is kept. accepted reports which of the two happened.
func (s *Session) SetAmount(raw string) (snap Snapshot, accepted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.amountTouched = true
	s.amount, accepted = vat.SanitizeAmount(s.amount, raw)
	s.recalculate()
	return s.snapshot(), accepted
}

// SelectRate switches between presets or to the custom rate.
// The custom rate text is kept when switching away and back.
func (s *Session) SelectRate(selection vat.RateSelection) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !selection.Custom && !s.catalog.Contains(selection.Preset) {
		return s.snapshot(), apperrors.ErrUnknownRate
	}

	s.selection = selection
	s.recalculate()
	return s.snapshot(), nil
}

// SetCustomRate stores the free-text custom rate. It only affects the
// result while the custom selection is active.
func (s *Session) SetCustomRate(text string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customRate = text
	s.recalculate()
	return s.snapshot()
}

// SetMode switches between adding and removing VAT.
func (s *Session) SetMode(mode vat.Mode) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := vat.ParseMode(string(mode)); err != nil {
		return s.snapshot(), err
	}

	s.mode = mode
	s.recalculate()
	return s.snapshot(), nil
}

// Clear restores the initial form.
func (s *Session) Clear() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return s.snapshot()
}

// Copy writes the final amount, to two decimal places, to w.
// The session state is never changed by a copy, whatever its outcome.
// Returns apperrors.ErrNothingToCopy when there is no calculation.
func (s *Session) Copy(w clipboard.Writer) (Notification, error) {
	s.mu.Lock()
	calc := s.calculation
	s.mu.Unlock()

	if calc == nil {
		return Notification{Title: "Error", Description: "Nothing to copy", Variant: VariantDestructive}, apperrors.ErrNothingToCopy
	}

	text := format.Fixed2(calc.FinalAmount)
	if err := w.WriteText(text); err != nil {
		return Notification{
			Title:       "Error",
			Description: "Failed to copy to clipboard",
			Variant:     VariantDestructive,
		}, err
	}

	return Notification{
		Title:       "Success",
		Description: "Result copied to clipboard!",
		Variant:     VariantDefault,
		Text:        text,
	}, nil
}

func (s *Session) reset() {
	s.amount = ""
	s.amountTouched = false
	s.selection = vat.PresetSelection(vat.DefaultRate)
	s.customRate = ""
	s.mode = vat.ModeAdd
	s.reason = ""
	s.message = ""
	s.calculation = nil
}

// recalculate re-derives the error and calculation from the current inputs.
// It runs at the end of every input event.
func (s *Session) recalculate() {
	s.reason = ""
	s.message = ""

	rate := vat.ResolveRate(s.selection, s.customRate)
	calc, err := s.engine.CalculateVAT(s.amount, rate, s.mode)
	s.calculation = calc

	var amountErr *vat.AmountError
	if errors.As(err, &amountErr) {
		s.reason = amountErr.Reason
		// an untouched empty form is not an error
		if amountErr.Reason != vat.ReasonMissing || s.amountTouched {
			s.message = amountErr.Reason.Message()
		}
	}
}

func (s *Session) snapshot() Snapshot {
	rate := vat.ResolveRate(s.selection, s.customRate)
	snap := Snapshot{
		ID:            s.id,
		Amount:        s.amount,
		RateSelection: s.selection.String(),
		CustomRate:    s.customRate,
		Mode:          s.mode,
		EffectiveRate: rate,
		Reason:        s.reason,
		Error:         s.message,
		CanCopy:       s.calculation != nil,
	}
	if s.calculation != nil {
		calc := *s.calculation
		snap.Calculation = &calc
		snap.Breakdown = NewBreakdown(calc)
	}
	return snap
}
