package models

import "time"

// Angle values, tied positionally to emails 1/2/3 of a sequence.
const (
	AngleTiming    = "timing"
	AngleChallenge = "challenge"
	AngleOutcome   = "outcome"
)

// AngleOrder is the required angle for each email position.
var AngleOrder = [3]string{AngleTiming, AngleChallenge, AngleOutcome}

// SequenceLength is the fixed number of emails in a sequence.
const SequenceLength = 3

// EmailVariant is one generated email. Produced by the model, validated by
// the schema layer, never mutated after acceptance.
// @Description One generated outreach email
type EmailVariant struct {
	VariantID   string `json:"variant_id" example:"042-dwhitfield-E1"` // <index3>-<suffix>-E<n>
	EmailNumber int    `json:"email_number" example:"1"`               // Ordinal within the sequence, 1-3
	SubjectLine string `json:"subject_line" example:"Epic go-live without the training crunch"`
	Body        string `json:"body"`
	WordCount   int    `json:"word_count" example:"172"` // Model-reported count; range-checked, the rulebook recounts from the body
	Angle       string `json:"angle" example:"timing"`   // timing, challenge or outcome, by position
}

// EmailSequence is exactly three EmailVariants in angle order.
type EmailSequence []EmailVariant

// SavedEmail is a persisted, accepted sequence plus denormalized
// account/contact fields. Created on explicit save, deleted on explicit
// delete, never otherwise mutated.
// @Description Persisted accepted sequence
type SavedEmail struct {
	ID           string        `json:"id" example:"7f6b1e0a-3a70-4f0e-9c2d-1df3a8b0c9e4"`
	AccountIndex int           `json:"account_index" example:"42"`
	AccountName  string        `json:"account_name" example:"Mercy General Health"`
	ContactID    string        `json:"contact_id" example:"c-104"`
	ContactName  string        `json:"contact_name" example:"Dana Whitfield"`
	ContactTitle string        `json:"contact_title" example:"Director of Clinical Education"`
	Emails       EmailSequence `json:"emails"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// SavedEmailMeta is the listing projection: identifying fields without the
// email bodies.
// @Description Saved sequence listing metadata
type SavedEmailMeta struct {
	ID           string    `json:"id"`
	AccountIndex int       `json:"account_index"`
	AccountName  string    `json:"account_name"`
	ContactID    string    `json:"contact_id"`
	ContactName  string    `json:"contact_name"`
	ContactTitle string    `json:"contact_title"`
	EmailCount   int       `json:"email_count" example:"3"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Meta returns the listing projection of a saved sequence.
func (s SavedEmail) Meta() SavedEmailMeta {
	return SavedEmailMeta{
		ID:           s.ID,
		AccountIndex: s.AccountIndex,
		AccountName:  s.AccountName,
		ContactID:    s.ContactID,
		ContactName:  s.ContactName,
		ContactTitle: s.ContactTitle,
		EmailCount:   len(s.Emails),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
