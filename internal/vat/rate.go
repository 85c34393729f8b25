// Package vat holds the calculator core: amount sanitization and validation,
// rate resolution and the add/remove VAT arithmetic.
// Everything in this package is pure and safe to call from any goroutine.
package vat

import (
	"math"
	"strconv"
	"strings"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
)

// CustomSelection is the wire value of the custom rate option.
const CustomSelection = "custom"

// DefaultRate is the preset selected on a fresh or cleared form.
const DefaultRate = 20.0

// Rate is a selectable preset rate with its display label.
type Rate struct {
	Rate  float64 `json:"rate"`
	Label string  `json:"label"`
}

// RateCatalog is the closed set of preset rates offered to the user.
type RateCatalog []Rate

// DefaultRates are the UK VAT presets.
var DefaultRates = RateCatalog{
	{Rate: 20, Label: "20% (Standard UK Rate)"},
	{Rate: 5, Label: "5% (Reduced Rate)"},
	{Rate: 0, Label: "0% (Zero Rate)"},
}

// Contains reports whether rate is one of the catalog presets.
func (c RateCatalog) Contains(rate float64) bool {
	for _, r := range c {
		if r.Rate == rate {
			return true
		}
	}
	return false
}

// RateSelection is either a preset rate or the custom sentinel.
// When Custom is true, Preset is ignored and the rate comes from the
// separately tracked custom rate text.
type RateSelection struct {
	Preset float64
	Custom bool
}

// PresetSelection selects a preset rate.
func PresetSelection(rate float64) RateSelection {
	return RateSelection{Preset: rate}
}

// CustomRateSelection selects the custom rate option.
func CustomRateSelection() RateSelection {
	return RateSelection{Custom: true}
}

// String returns the wire form of the selection ("20", "5", "custom").
func (s RateSelection) String() string {
	if s.Custom {
		return CustomSelection
	}
	return strconv.FormatFloat(s.Preset, 'f', -1, 64)
}

// ParseRateSelection maps the wire form of a selection onto the catalog.
// Returns apperrors.ErrUnknownRate when value is neither "custom" nor a catalog preset.
func ParseRateSelection(value string, catalog RateCatalog) (RateSelection, error) {
	value = strings.TrimSpace(value)
	if value == CustomSelection {
		return CustomRateSelection(), nil
	}

	rate, err := strconv.ParseFloat(value, 64)
	if err != nil || !catalog.Contains(rate) {
		return RateSelection{}, apperrors.ErrUnknownRate
	}
	return PresetSelection(rate), nil
}

// ResolveRate returns the effective percentage for a selection.
// A custom rate that does not parse as a finite number resolves to 0.
// No bounds are applied in either case.
func ResolveRate(selection RateSelection, customRateText string) float64 {
	if !selection.Custom {
		return selection.Preset
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(customRateText), 64)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return rate
}
