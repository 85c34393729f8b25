package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
var (
	// ErrSessionNotFound indicates that a calculator session with the given ID does not exist
	// or has been evicted after being idle.
	ErrSessionNotFound = errors.New("calculator session not found")

	// ErrPreferenceNotFound indicates that no value is stored for a preference key.
	ErrPreferenceNotFound = errors.New("preference not found")
)

// Input errors represent requests the calculator cannot act on.
// Amount validation failures are not listed here: they are returned as
// vat.AmountError values and shown to the user as session state.
var (
	// ErrUnknownRate indicates a rate selection that is neither a preset nor "custom".
	ErrUnknownRate = errors.New("unknown VAT rate selection")

	// ErrUnknownMode indicates a calculation type other than "add" or "remove".
	ErrUnknownMode = errors.New("unknown calculation type")

	// ErrInvalidTheme indicates a theme other than "light" or "dark".
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	ErrInvalidRequestBody = errors.New("invalid request body")
)

// Clipboard errors are reported to the user as notifications and never change session state.
var (
	// ErrNothingToCopy indicates a copy request while there is no calculation.
	ErrNothingToCopy = errors.New("nothing to copy")

	// ErrClipboardUnavailable indicates that the clipboard is disabled or cannot be reached.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// Operation failure errors represent system-level failures.
var (
	ErrFailedToRetrievePreference = errors.New("failed to retrieve preference")
	ErrFailedToSavePreference     = errors.New("failed to save preference")
	ErrFailedToGetVersionInfo     = errors.New("failed to get version information")
	ErrFailedToMigrate            = errors.New("failed to migrate database")
)
