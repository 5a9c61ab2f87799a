package response

// ListResp is the envelope of collection responses.
type ListResp struct {
	Data any `json:"data"`
	Meta any `json:"meta"`
}

// ErrorResp is the body of every error response. Error is either a
// string or a list of strings for aggregated validation failures.
type ErrorResp struct {
	Error any `json:"error"`
}
