package models

// GenerationConfig carries the per-request model knobs. Zero values fall
// back to server configuration defaults.
// @Description Optional generation tuning
type GenerationConfig struct {
	Model               string  `json:"model,omitempty" example:"gpt-4o"`
	Temperature         float32 `json:"temperature,omitempty" example:"0.7"`
	MinWords            int     `json:"min_words,omitempty" example:"150"`
	MaxWords            int     `json:"max_words,omitempty" example:"200"`
	IncludeKLASEvidence bool    `json:"include_klas_evidence,omitempty"`
	RequireWarmthPhrase bool    `json:"require_warmth_phrase,omitempty"`
}

// GenerateRequest is the request body for batch generation: one account and
// the ordered list of selected contacts.
// @Description Batch generation request payload
type GenerateRequest struct {
	Account  Account           `json:"account"`
	Contacts []Contact         `json:"contacts"`
	Config   *GenerationConfig `json:"config,omitempty"`
}

// SaveRequest is the request body for persisting an accepted sequence.
// @Description Save request payload
type SaveRequest struct {
	AccountIndex int           `json:"accountIndex" example:"42"`
	AccountName  string        `json:"accountName" example:"Mercy General Health"`
	ContactID    string        `json:"contactId" example:"c-104"`
	ContactName  string        `json:"contactName" example:"Dana Whitfield"`
	ContactTitle string        `json:"contactTitle" example:"Director of Clinical Education"`
	Emails       EmailSequence `json:"emails"`
}

// ExportRequest is the request body for document export.
// @Description Export request payload
type ExportRequest struct {
	AccountName string        `json:"accountName" example:"Mercy General Health"`
	ContactName string        `json:"contactName" example:"Dana Whitfield"`
	Emails      EmailSequence `json:"emails"`
}

// ErrorResponse is the generic error body returned by handlers.
// @Description Error payload
type ErrorResponse struct {
	Error  string              `json:"error" example:"invalid request body"`
	Fields map[string][]string `json:"fields,omitempty"` // Field-keyed validation messages when applicable
}
