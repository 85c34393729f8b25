package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/clipboard"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/metrics"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/session"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/vat"
)

// CalculatorService drives calculator sessions and one-shot calculations.
type CalculatorService struct {
	store     *session.Store
	clipboard clipboard.Writer
	catalog   vat.RateCatalog
	engine    vat.Engine
}

// NewCalculatorService creates a new CalculatorService.
// Sessions are created from store; copies are written to clip.
func NewCalculatorService(store *session.Store, clip clipboard.Writer, catalog vat.RateCatalog) *CalculatorService {
	if catalog == nil {
		catalog = vat.DefaultRates
	}
	return &CalculatorService{
		store:     store,
		clipboard: clip,
		catalog:   catalog,
	}
}

// RateOption is one entry of the rate picker.
type RateOption struct {
	Value string   `json:"value"`
	Label string   `json:"label"`
	Rate  *float64 `json:"rate"`
}

// RateOptions lists the presets followed by the custom option.
func (s *CalculatorService) RateOptions() []RateOption {
	options := make([]RateOption, 0, len(s.catalog)+1)
	for _, r := range s.catalog {
		rate := r.Rate
		options = append(options, RateOption{
			Value: vat.PresetSelection(rate).String(),
			Label: r.Label,
			Rate:  &rate,
		})
	}
	return append(options, RateOption{Value: vat.CustomSelection, Label: "Custom Rate"})
}

// CalculationRequest holds the inputs of a one-shot calculation.
type CalculationRequest struct {
	Amount        string
	RateSelection string
	CustomRate    string
	Mode          string
}

// CalculationResult is the outcome of a one-shot calculation.
type CalculationResult struct {
	EffectiveRate float64            `json:"effectiveRate"`
	Reason        vat.Reason         `json:"reason,omitempty"`
	Error         string             `json:"error"`
	Calculation   *vat.Calculation   `json:"calculation"`
	Breakdown     *session.Breakdown `json:"breakdown,omitempty"`
}

// Calculate runs the core once without a session. The amount is validated
// as given, without keystroke sanitization, so every validation reason can surface.
// An empty rate selection means the default preset and an empty mode means add.
func (s *CalculatorService) Calculate(req CalculationRequest) (CalculationResult, error) {
	selection := vat.PresetSelection(vat.DefaultRate)
	if strings.TrimSpace(req.RateSelection) != "" {
		var err error
		selection, err = vat.ParseRateSelection(req.RateSelection, s.catalog)
		if err != nil {
			return CalculationResult{}, err
		}
	}

	mode := vat.ModeAdd
	if req.Mode != "" {
		var err error
		mode, err = vat.ParseMode(req.Mode)
		if err != nil {
			return CalculationResult{}, err
		}
	}

	rate := vat.ResolveRate(selection, req.CustomRate)
	result := CalculationResult{EffectiveRate: rate}

	calc, err := s.engine.CalculateVAT(req.Amount, rate, mode)
	var amountErr *vat.AmountError
	if errors.As(err, &amountErr) {
		result.Reason = amountErr.Reason
		result.Error = amountErr.Reason.Message()
		metrics.ValidationFailuresTotal.WithLabelValues(string(amountErr.Reason)).Inc()
	}
	if calc != nil {
		result.Calculation = calc
		result.Breakdown = session.NewBreakdown(*calc)
		metrics.CalculationsTotal.WithLabelValues(string(calc.CalculationType)).Inc()
	}

	return result, nil
}

// CreateSession starts a calculator session in its initial state.
func (s *CalculatorService) CreateSession() session.Snapshot {
	sess := s.store.Create()
	metrics.ActiveSessions.Set(float64(s.store.Len()))
	log.Printf("Created calculator session %s", sess.ID())
	return sess.Snapshot()
}

// GetSession returns the current state of a session.
func (s *CalculatorService) GetSession(id string) (session.Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// DeleteSession discards a session.
func (s *CalculatorService) DeleteSession(id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	metrics.ActiveSessions.Set(float64(s.store.Len()))
	return nil
}

// UpdateAmount applies an amount edit. accepted is false when the edit was
// rejected by sanitization and the previous amount kept.
func (s *CalculatorService) UpdateAmount(id, raw string) (snap session.Snapshot, accepted bool, err error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.Snapshot{}, false, err
	}

	snap, accepted = sess.SetAmount(raw)
	if !accepted {
		metrics.RejectedEditsTotal.Inc()
	}
	record(snap)
	return snap, accepted, nil
}

// SelectRate applies a rate selection given in wire form ("20", "custom").
func (s *CalculatorService) SelectRate(id, value string) (session.Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}

	selection, err := vat.ParseRateSelection(value, sess.Catalog())
	if err != nil {
		return session.Snapshot{}, err
	}

	snap, err := sess.SelectRate(selection)
	if err != nil {
		return session.Snapshot{}, err
	}
	record(snap)
	return snap, nil
}

// UpdateCustomRate stores the custom rate text.
func (s *CalculatorService) UpdateCustomRate(id, text string) (session.Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}

	snap := sess.SetCustomRate(text)
	record(snap)
	return snap, nil
}

// UpdateMode switches the calculation type.
func (s *CalculatorService) UpdateMode(id, value string) (session.Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}

	mode, err := vat.ParseMode(value)
	if err != nil {
		return session.Snapshot{}, err
	}

	snap, err := sess.SetMode(mode)
	if err != nil {
		return session.Snapshot{}, err
	}
	record(snap)
	return snap, nil
}

// Clear resets a session to its initial state.
func (s *CalculatorService) Clear(id string) (session.Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.Snapshot{}, err
	}
	return sess.Clear(), nil
}

// Copy writes the session's final amount to the clipboard.
// A clipboard failure is returned alongside the notification describing it;
// the session keeps its calculation.
func (s *CalculatorService) Copy(id string) (session.Notification, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return session.Notification{}, err
	}

	note, err := sess.Copy(s.clipboard)
	switch {
	case err == nil:
		metrics.CopyOutcomesTotal.WithLabelValues("success").Inc()
	case errors.Is(err, apperrors.ErrNothingToCopy):
		metrics.CopyOutcomesTotal.WithLabelValues("empty").Inc()
	default:
		metrics.CopyOutcomesTotal.WithLabelValues("failure").Inc()
		log.Printf("Failed to copy result for session %s: %v", id, err)
	}
	return note, err
}

// EvictIdleSessions drops sessions idle for longer than idle.
func (s *CalculatorService) EvictIdleSessions(idle time.Duration) int {
	removed := s.store.EvictIdle(idle)
	metrics.ActiveSessions.Set(float64(s.store.Len()))
	return removed
}

func record(snap session.Snapshot) {
	if snap.Calculation != nil {
		metrics.CalculationsTotal.WithLabelValues(string(snap.Calculation.CalculationType)).Inc()
	}
	if snap.Reason != "" {
		metrics.ValidationFailuresTotal.WithLabelValues(string(snap.Reason)).Inc()
	}
}
