package errs

// Sentinel errors shared by the usecase and handler layers.
// Handlers map these to HTTP status codes with errors.Is.
var (
	// Input errors (400)
	ErrValidation = New("validation error")

	// Lookup errors (404)
	ErrNotFound = New("not found")

	// Conflict errors (409)
	ErrAlreadyResolved   = New("task already resolved")
	ErrAmbiguousPriority = New("ambiguous cadence rule priority")
	ErrInconsistentRule  = New("inconsistent cadence rule")

	// Store or network errors (500, retryable by the caller)
	ErrTransient = New("transient failure")
)
