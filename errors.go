package corrector

import "errors"

// Error taxonomy for dictionary loading and language resolution.
// A successful Correct call never returns an error: anything the
// pipeline cannot handle passes the affected token through unchanged.
var (
	// ErrDataMissing is returned when a required dictionary file is
	// absent or unreadable. Fatal at init.
	ErrDataMissing = errors.New("corrector: required data file missing or unreadable")

	// ErrUnknownLanguage is returned when the requested language code
	// is not registered.
	ErrUnknownLanguage = errors.New("corrector: unknown language code")
)
