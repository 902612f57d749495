package types

// BulkPayload is the JSON body of a /bulk-verify request.
type BulkPayload struct {
	IDs []string `json:"ids"`
}
