package session

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
	"github.com/ndewijer/VAT-Calculator-Backend/internal/vat"
)

type recordingWriter struct {
	written []string
	err     error
}

func (w *recordingWriter) WriteText(text string) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, text)
	return nil
}

func newTestSession() *Session {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return New("test-session", Options{Engine: vat.Engine{Now: func() time.Time { return fixed }}})
}

func TestSession_InitialState(t *testing.T) {
	snap := newTestSession().Snapshot()

	if snap.Amount != "" || snap.CustomRate != "" {
		t.Errorf("Expected empty inputs, got %+v", snap)
	}
	if snap.RateSelection != "20" || snap.EffectiveRate != 20 {
		t.Errorf("Expected 20%% preset, got %q (%v)", snap.RateSelection, snap.EffectiveRate)
	}
	if snap.Mode != vat.ModeAdd {
		t.Errorf("Expected add mode, got %q", snap.Mode)
	}
	if snap.Calculation != nil || snap.Error != "" || snap.CanCopy {
		t.Errorf("Expected no calculation and no error, got %+v", snap)
	}
}

func TestSession_SetAmount(t *testing.T) {
	t.Run("recalculates on every edit", func(t *testing.T) {
		s := newTestSession()

		snap, ok := s.SetAmount("100")
		if !ok {
			t.Fatal("Expected edit to be accepted")
		}
		if snap.Calculation == nil {
			t.Fatal("Expected a calculation")
		}
		if snap.Calculation.VATAmount != 20 || snap.Calculation.FinalAmount != 120 {
			t.Errorf("Expected 20/120, got %+v", snap.Calculation)
		}
		if snap.Breakdown.FinalAmount != "£120.00" || snap.Breakdown.VATAmount != "+£20.00" {
			t.Errorf("Unexpected breakdown %+v", snap.Breakdown)
		}
		if snap.Breakdown.VATLabel != "VAT (20%)" {
			t.Errorf("Expected label 'VAT (20%%)', got %q", snap.Breakdown.VATLabel)
		}
	})

	t.Run("sanitizes input", func(t *testing.T) {
		s := newTestSession()
		snap, ok := s.SetAmount("12a3")
		if !ok || snap.Amount != "123" {
			t.Errorf("Expected '123', got %q (accepted=%v)", snap.Amount, ok)
		}
	})

	t.Run("rejects a second decimal point", func(t *testing.T) {
		s := newTestSession()
		s.SetAmount("12.3")
		snap, ok := s.SetAmount("12.3.4")
		if ok {
			t.Error("Expected edit to be rejected")
		}
		if snap.Amount != "12.3" {
			t.Errorf("Expected amount to stay '12.3', got %q", snap.Amount)
		}
		if snap.Calculation == nil || snap.Calculation.OriginalAmount != 12.3 {
			t.Errorf("Expected calculation for 12.3 to survive, got %+v", snap.Calculation)
		}
	})

	t.Run("missing amount is shown only after interaction", func(t *testing.T) {
		s := newTestSession()

		snap := s.Snapshot()
		if snap.Error != "" {
			t.Errorf("Expected no error before interaction, got %q", snap.Error)
		}

		s.SetAmount("5")
		snap, _ = s.SetAmount("")
		if snap.Reason != vat.ReasonMissing {
			t.Errorf("Expected reason missing, got %q", snap.Reason)
		}
		if snap.Error != vat.ReasonMissing.Message() {
			t.Errorf("Expected %q, got %q", vat.ReasonMissing.Message(), snap.Error)
		}
		if snap.Calculation != nil {
			t.Error("Expected no calculation for empty amount")
		}
	})

	t.Run("lone decimal point is not a number", func(t *testing.T) {
		s := newTestSession()
		snap, _ := s.SetAmount(".")
		if snap.Error != "Please enter a valid number" {
			t.Errorf("Expected not-a-number message, got %q", snap.Error)
		}
	})

	t.Run("error clears once the amount is valid", func(t *testing.T) {
		s := newTestSession()
		snap, _ := s.SetAmount("1000000000")
		if snap.Error != "Amount is too large" {
			t.Errorf("Expected too large, got %q", snap.Error)
		}
		snap, _ = s.SetAmount("999999999")
		if snap.Error != "" || snap.Calculation == nil {
			t.Errorf("Expected valid calculation, got %+v", snap)
		}
	})
}

func TestSession_Rates(t *testing.T) {
	t.Run("preset switch recalculates", func(t *testing.T) {
		s := newTestSession()
		s.SetAmount("100")
		snap, err := s.SelectRate(vat.PresetSelection(5))
		if err != nil {
			t.Fatal(err)
		}
		if snap.EffectiveRate != 5 || snap.Calculation.FinalAmount != 105 {
			t.Errorf("Expected 5%% → 105, got %+v", snap.Calculation)
		}
	})

	t.Run("unknown preset is rejected without changing state", func(t *testing.T) {
		s := newTestSession()
		snap, err := s.SelectRate(vat.PresetSelection(17))
		if !errors.Is(err, apperrors.ErrUnknownRate) {
			t.Errorf("Expected ErrUnknownRate, got %v", err)
		}
		if snap.RateSelection != "20" {
			t.Errorf("Expected selection to stay 20, got %q", snap.RateSelection)
		}
	})

	t.Run("empty custom rate resolves to zero", func(t *testing.T) {
		s := newTestSession()
		s.SetAmount("100")
		snap, _ := s.SelectRate(vat.CustomRateSelection())
		if snap.RateSelection != vat.CustomSelection || snap.EffectiveRate != 0 {
			t.Errorf("Expected custom at 0, got %q (%v)", snap.RateSelection, snap.EffectiveRate)
		}
		if snap.Calculation == nil || snap.Calculation.VATAmount != 0 || snap.Calculation.FinalAmount != 100 {
			t.Errorf("Expected zero VAT, got %+v", snap.Calculation)
		}
	})

	t.Run("custom text applies only while custom is selected", func(t *testing.T) {
		s := newTestSession()
		s.SetAmount("200")
		snap := s.SetCustomRate("10")
		if snap.EffectiveRate != 20 {
			t.Errorf("Expected preset to win, got %v", snap.EffectiveRate)
		}
		snap, _ = s.SelectRate(vat.CustomRateSelection())
		if snap.EffectiveRate != 10 || snap.Calculation.VATAmount != 20 {
			t.Errorf("Expected 10%% of 200, got %+v", snap.Calculation)
		}
	})

	t.Run("negative custom rate yields no calculation and no error", func(t *testing.T) {
		s := newTestSession()
		s.SetAmount("100")
		s.SelectRate(vat.CustomRateSelection())
		snap := s.SetCustomRate("-10")
		if snap.Calculation != nil || snap.Error != "" {
			t.Errorf("Expected nothing to show, got %+v", snap)
		}
	})
}

func TestSession_SetMode(t *testing.T) {
	s := newTestSession()
	s.SetAmount("120")

	snap, err := s.SetMode(vat.ModeRemove)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(snap.Calculation.FinalAmount-100) > 1e-9 || math.Abs(snap.Calculation.VATAmount-20) > 1e-9 {
		t.Errorf("Expected 100/20, got %+v", snap.Calculation)
	}
	if snap.Breakdown.VATAmount != "-£20.00" {
		t.Errorf("Expected '-£20.00', got %q", snap.Breakdown.VATAmount)
	}

	if _, err := s.SetMode("double"); !errors.Is(err, apperrors.ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode, got %v", err)
	}
}

func TestSession_Clear(t *testing.T) {
	s := newTestSession()
	s.SetAmount("50")
	s.SelectRate(vat.CustomRateSelection())
	s.SetCustomRate("12")
	s.SetMode(vat.ModeRemove)

	snap := s.Clear()
	if snap.Amount != "" || snap.CustomRate != "" || snap.RateSelection != "20" || snap.Mode != vat.ModeAdd {
		t.Errorf("Expected defaults, got %+v", snap)
	}
	if snap.Error != "" || snap.Calculation != nil {
		t.Errorf("Expected no error or calculation, got %+v", snap)
	}
}

func TestSession_Copy(t *testing.T) {
	t.Run("copies final amount to two decimals", func(t *testing.T) {
		s := newTestSession()
		s.SetAmount("120")
		s.SetMode(vat.ModeRemove)
		w := &recordingWriter{}

		note, err := s.Copy(w)
		if err != nil {
			t.Fatal(err)
		}
		if len(w.written) != 1 || w.written[0] != "100.00" {
			t.Errorf("Expected '100.00' on clipboard, got %v", w.written)
		}
		if note.Variant != VariantDefault || note.Text != "100.00" {
			t.Errorf("Unexpected notification %+v", note)
		}
	})

	t.Run("nothing to copy without a calculation", func(t *testing.T) {
		s := newTestSession()
		w := &recordingWriter{}
		if _, err := s.Copy(w); !errors.Is(err, apperrors.ErrNothingToCopy) {
			t.Errorf("Expected ErrNothingToCopy, got %v", err)
		}
		if len(w.written) != 0 {
			t.Error("Expected nothing written")
		}
	})

	t.Run("clipboard failure leaves the calculation in place", func(t *testing.T) {
		s := newTestSession()
		s.SetAmount("100")
		before := s.Snapshot()

		note, err := s.Copy(&recordingWriter{err: apperrors.ErrClipboardUnavailable})
		if !errors.Is(err, apperrors.ErrClipboardUnavailable) {
			t.Errorf("Expected ErrClipboardUnavailable, got %v", err)
		}
		if note.Variant != VariantDestructive || note.Description != "Failed to copy to clipboard" {
			t.Errorf("Unexpected notification %+v", note)
		}

		after := s.Snapshot()
		if after.Calculation == nil || *after.Calculation != *before.Calculation {
			t.Errorf("Expected calculation unchanged, got %+v", after.Calculation)
		}
	})
}

func TestStore(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(Options{}).WithClock(func() time.Time { return now })

	a := store.Create()
	b := store.Create()
	if a.ID() == b.ID() {
		t.Fatal("Expected distinct session IDs")
	}

	got, err := store.Get(a.ID())
	if err != nil || got != a {
		t.Fatalf("Expected to find session a, got %v", err)
	}

	if _, err := store.Get("missing"); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}

	t.Run("evicts idle sessions only", func(t *testing.T) {
		now = now.Add(20 * time.Minute)
		if _, err := store.Get(b.ID()); err != nil {
			t.Fatal(err)
		}
		now = now.Add(15 * time.Minute)

		if removed := store.EvictIdle(30 * time.Minute); removed != 1 {
			t.Errorf("Expected 1 eviction, got %d", removed)
		}
		if _, err := store.Get(a.ID()); !errors.Is(err, apperrors.ErrSessionNotFound) {
			t.Error("Expected idle session a to be evicted")
		}
		if store.Len() != 1 {
			t.Errorf("Expected 1 live session, got %d", store.Len())
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.Delete(b.ID()); err != nil {
			t.Fatal(err)
		}
		if err := store.Delete(b.ID()); !errors.Is(err, apperrors.ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound on second delete, got %v", err)
		}
	})
}
