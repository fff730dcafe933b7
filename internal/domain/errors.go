package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrTransient        = errors.New("transient provider failure")
	ErrInsufficientData = errors.New("insufficient data")
	ErrAlreadyTracked   = errors.New("symbol already tracked")
	ErrInvalidSymbol    = errors.New("invalid symbol or data not available")
	ErrStoreUnavailable = errors.New("store unavailable")

	// text generation
	ErrNotConfigured    = errors.New("text generation is not configured")
	ErrGenerationFailed = errors.New("text generation failed")
	ErrEmptyQuestion    = errors.New("question is required")
)

// RefreshStatusFromErr maps a per-symbol refresh error onto an outcome status.
// Unknown errors count as transient.
func RefreshStatusFromErr(err error) RefreshStatus {
	switch {
	case err == nil:
		return RefreshStatus_Updated
	case errors.Is(err, ErrNotFound):
		return RefreshStatus_NotFound
	case errors.Is(err, ErrInsufficientData):
		return RefreshStatus_InsufficientData
	default:
		return RefreshStatus_Transient
	}
}
