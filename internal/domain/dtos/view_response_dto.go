package dtos

// ViewResponse is the directive handed back for form-backed pages: a status
// flag, the rule violations when there are any, and the data the view should
// show — the saved record on success, the rejected input on failure.
type ViewResponse struct {
	Status string   `json:"status"`
	Errors []string `json:"errors,omitempty"`
	Data   any      `json:"data,omitempty"`
}
