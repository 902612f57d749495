package types

// Status values reported by the instance for a verification request. The
// client passes them through without validating; these constants exist for
// callers that switch on the result.
const (
	StatusPending  string = "PENDING"
	StatusVerified string = "VERIFIED"
	StatusExpired  string = "EXPIRED"
	StatusNotFound string = "NOT_FOUND"
)
