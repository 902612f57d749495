package types

// CreateResponse is the raw answer of the /new endpoint. Error is set instead
// of the other fields when the instance rejects the request.
type CreateResponse struct {
	ID    string `json:"id"`
	TXT   string `json:"TXT_record_to_verify"`
	Error string `json:"error,omitempty"`
}

// VerificationRequest is the caller-facing result of creating a verification.
type VerificationRequest struct {
	ID           string `json:"id"`
	Token        string `json:"token"`
	Instructions string `json:"instructions"`
}

// VerificationStatus is the instance's view of one verification request.
type VerificationStatus struct {
	ID       string `json:"id"`
	Domain   string `json:"domain"`
	Verified bool   `json:"verified"`
	Status   string `json:"status"`
}
