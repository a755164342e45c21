package domain

import "errors"

// Sentinel errors for the screen flows. None of them are fatal; each is turned
// into an alert at the screen that produced it.
var (
	// ErrValidation means a required field was left empty.
	ErrValidation = errors.New("required field missing")

	// ErrMismatch means the password confirmation differs from the password.
	ErrMismatch = errors.New("password confirmation does not match")

	// ErrProviderCancelled means the user backed out of the external OAuth dialog.
	ErrProviderCancelled = errors.New("provider login cancelled")

	// ErrProvider matches any *ProviderError through errors.Is.
	ErrProvider = errors.New("provider error")
)

// ProviderError wraps a failure from the OAuth provider or the identity backend.
// Its message is the cause's message so it can be shown to the user as-is.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrProvider) match any ProviderError.
func (e *ProviderError) Is(target error) bool { return target == ErrProvider }
