// Package generate runs the per-contact generation batch: prompt, model
// call, JSON extraction, shape validation, advisory rule check. Processing
// is strictly sequential so exactly one contact is ever in flight and the
// model service never sees burst concurrency from a batch.
package generate

import (
	"context"
	"fmt"

	"outreach/internal/llm"
	"outreach/internal/models"
	"outreach/internal/prompt"
	"outreach/internal/rules"
	"outreach/internal/schema"

	"github.com/rs/zerolog"
)

// Status is the per-contact generation state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusComplete   Status = "complete"
	StatusError      Status = "error"
)

// ContactStatus is one state transition in the batch feed.
// @Description Per-contact generation status event
type ContactStatus struct {
	ContactID   string `json:"contact_id" example:"c-104"`
	ContactName string `json:"contact_name" example:"Dana Whitfield"`
	Status      Status `json:"status" example:"generating"`
	Error       string `json:"error,omitempty"`
}

// ContactResult is a completed sequence plus its advisory validation. The
// validation never blocks the result; failing checks are operator guidance.
type ContactResult struct {
	Emails     models.EmailSequence `json:"emails"`
	Validation rules.Result         `json:"validation"`
}

// Summary is the batch-end aggregate.
type Summary struct {
	Succeeded int `json:"succeeded" example:"4"`
	Failed    int `json:"failed" example:"1"`
}

// BatchResult maps contact id to result for every contact that completed.
// Failed contacts are omitted from Results and carry an error status instead.
type BatchResult struct {
	Results  map[string]ContactResult `json:"results"`
	Statuses []ContactStatus          `json:"statuses"`
	Summary  Summary                  `json:"summary"`
}

// StatusFunc receives each transition as it happens, enabling progressive
// UI updates before the batch completes.
type StatusFunc func(ContactStatus)

// Orchestrator drives sequential batch generation.
type Orchestrator struct {
	gen    llm.Generator
	logger zerolog.Logger
}

// NewOrchestrator builds an orchestrator over the given generator.
func NewOrchestrator(gen llm.Generator, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{gen: gen, logger: logger}
}

// Run processes the contacts in order, one at a time. A contact's failure is
// recorded and the batch moves on; nothing aborts the loop. Every state
// transition is emitted through onStatus (when non-nil) the moment it
// happens and also recorded in the returned BatchResult.
func (o *Orchestrator) Run(ctx context.Context, account models.Account, contacts []models.Contact, cfg models.GenerationConfig, onStatus StatusFunc) BatchResult {
	result := BatchResult{Results: make(map[string]ContactResult, len(contacts))}

	emit := func(st ContactStatus) {
		result.Statuses = append(result.Statuses, st)
		if onStatus != nil {
			onStatus(st)
		}
	}

	for _, c := range contacts {
		emit(ContactStatus{ContactID: c.ID, ContactName: c.FullName(), Status: StatusPending})
	}

	for _, c := range contacts {
		emit(ContactStatus{ContactID: c.ID, ContactName: c.FullName(), Status: StatusGenerating})

		seq, err := o.generateOne(ctx, account, c, cfg)
		if err != nil {
			o.logger.Warn().
				Str("contact_id", c.ID).
				Int("account_index", account.Index).
				Err(err).
				Msg("Contact generation failed")
			emit(ContactStatus{ContactID: c.ID, ContactName: c.FullName(), Status: StatusError, Error: err.Error()})
			result.Summary.Failed++
			continue
		}

		result.Results[c.ID] = ContactResult{
			Emails:     seq,
			Validation: rules.ValidateSequence(seq),
		}
		emit(ContactStatus{ContactID: c.ID, ContactName: c.FullName(), Status: StatusComplete})
		result.Summary.Succeeded++
	}

	o.logger.Info().
		Int("account_index", account.Index).
		Int("succeeded", result.Summary.Succeeded).
		Int("failed", result.Summary.Failed).
		Msg("Generation batch finished")

	return result
}

// generateOne runs the full pipeline for a single contact. Error messages
// distinguish upstream failures from extraction and shape failures so the
// UI can show the right kind of inline error.
func (o *Orchestrator) generateOne(ctx context.Context, account models.Account, contact models.Contact, cfg models.GenerationConfig) (models.EmailSequence, error) {
	raw, err := o.gen.Generate(ctx, prompt.SystemPrompt(cfg), prompt.UserPrompt(account, contact, cfg), cfg)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	seq, err := ExtractSequence(raw)
	if err != nil {
		return nil, fmt.Errorf("response parse failed: %w", err)
	}

	if err := schema.ValidateSequence(seq); err != nil {
		return nil, fmt.Errorf("malformed sequence: %w", err)
	}

	return seq, nil
}
