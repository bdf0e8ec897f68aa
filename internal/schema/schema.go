// Package schema enforces the shape of generation requests and candidate
// sequences before they reach the prompt builder, the model, or the store.
// These checks are stricter than the advisory rulebook in internal/rules:
// they gate control flow, the rulebook only informs the operator.
package schema

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"outreach/internal/models"
	"outreach/internal/rules"
)

// MaxAccountIndex bounds the account index; the contact shards are numbered
// within this range.
const MaxAccountIndex = 500

// Subject length bounds, enforced here and not by the rulebook.
const (
	MinSubjectLen = 5
	MaxSubjectLen = 60
)

// MinBodyLen rejects trivially short bodies before word-count rules apply.
const MinBodyLen = 50

// variantIDRe is the composite id: three-digit account index, contact
// suffix, email ordinal.
var variantIDRe = regexp.MustCompile(`^\d{3}-[A-Za-z0-9]+-E[123]$`)

// FieldErrors is a field-keyed report of everything wrong with an input.
// Empty means valid.
type FieldErrors map[string][]string

// Ok reports whether no field failed.
func (fe FieldErrors) Ok() bool { return len(fe) == 0 }

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Err converts the report into a single error, or nil when valid. This is
// the strict variant for callers that prefer error returns.
func (fe FieldErrors) Err() error {
	if fe.Ok() {
		return nil
	}
	parts := make([]string, 0, len(fe))
	for field, msgs := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(parts, ", "))
}

// CheckGenerationRequest validates a batch generation request: one
// well-formed account context and at least one well-formed contact context.
// It never panics or errors; malformed input only populates the report.
func CheckGenerationRequest(req models.GenerateRequest) FieldErrors {
	fe := FieldErrors{}
	checkAccount(fe, "account", req.Account)

	if len(req.Contacts) == 0 {
		fe.add("contacts", "at least one contact is required")
	}
	for i, c := range req.Contacts {
		checkContact(fe, fmt.Sprintf("contacts[%d]", i), c)
	}

	if cfg := req.Config; cfg != nil {
		if cfg.Temperature < 0 || cfg.Temperature > 2 {
			fe.add("config.temperature", "must be between 0 and 2")
		}
		if cfg.MinWords != 0 && cfg.MaxWords != 0 && cfg.MinWords > cfg.MaxWords {
			fe.add("config.min_words", "must not exceed max_words")
		}
	}
	return fe
}

// ValidateGenerationRequest is the strict variant of CheckGenerationRequest.
func ValidateGenerationRequest(req models.GenerateRequest) error {
	return CheckGenerationRequest(req).Err()
}

func checkAccount(fe FieldErrors, prefix string, a models.Account) {
	if a.Index < 1 || a.Index > MaxAccountIndex {
		fe.add(prefix+".index", fmt.Sprintf("must be between 1 and %d", MaxAccountIndex))
	}
	if strings.TrimSpace(a.CompanyName) == "" {
		fe.add(prefix+".company_name", "must not be empty")
	}
	if strings.TrimSpace(a.Tier) == "" {
		fe.add(prefix+".tier", "must not be empty")
	}
	if strings.TrimSpace(a.EHRPlatform) == "" {
		fe.add(prefix+".ehr_platform", "must not be empty")
	}
	if a.EmployeeCount < 0 {
		fe.add(prefix+".employee_count", "must not be negative")
	}
	if tc := a.TimingContext; tc != nil {
		if tc.Initiative == "" || tc.Timing == "" || tc.WhyClassFits == "" {
			fe.add(prefix+".timing_context", "initiative, timing and why_class_fits are all required when the triple is present")
		}
	}
}

func checkContact(fe FieldErrors, prefix string, c models.Contact) {
	if strings.TrimSpace(c.ID) == "" {
		fe.add(prefix+".id", "must not be empty")
	}
	if strings.TrimSpace(c.FullName()) == "" {
		fe.add(prefix+".name", "first or last name is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		fe.add(prefix+".title", "must not be empty")
	}
	// Email and persona are deliberately permissive: reference data often
	// lacks both, and generation can proceed without them.
}

// CheckSequence validates a candidate sequence before persistence: exactly
// three well-formed variants in positional angle order.
func CheckSequence(emails models.EmailSequence) FieldErrors {
	fe := FieldErrors{}
	if len(emails) != models.SequenceLength {
		fe.add("emails", fmt.Sprintf("must contain exactly %d emails, got %d", models.SequenceLength, len(emails)))
		return fe
	}
	for i, e := range emails {
		checkVariant(fe, fmt.Sprintf("emails[%d]", i), i, e)
	}
	return fe
}

// ValidateSequence is the strict variant of CheckSequence.
func ValidateSequence(emails models.EmailSequence) error {
	return CheckSequence(emails).Err()
}

func checkVariant(fe FieldErrors, prefix string, pos int, e models.EmailVariant) {
	if !variantIDRe.MatchString(e.VariantID) {
		fe.add(prefix+".variant_id", `must match <3 digits>-<identifier>-E<1|2|3>`)
	}
	if e.EmailNumber != pos+1 {
		fe.add(prefix+".email_number", fmt.Sprintf("must be %d for position %d", pos+1, pos))
	}

	subject := strings.TrimSpace(e.SubjectLine)
	if n := utf8.RuneCountInString(subject); n < MinSubjectLen || n > MaxSubjectLen {
		fe.add(prefix+".subject_line", fmt.Sprintf("must be %d-%d characters", MinSubjectLen, MaxSubjectLen))
	}
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		fe.add(prefix+".subject_line", `must not start with "re:"`)
	}

	if len(strings.TrimSpace(e.Body)) < MinBodyLen {
		fe.add(prefix+".body", fmt.Sprintf("must be at least %d characters", MinBodyLen))
	}
	if e.WordCount < rules.MinWords || e.WordCount > rules.MaxWords {
		fe.add(prefix+".word_count", fmt.Sprintf("must be between %d and %d", rules.MinWords, rules.MaxWords))
	}
	if e.Angle != models.AngleOrder[pos] {
		fe.add(prefix+".angle", fmt.Sprintf("must be %q for position %d", models.AngleOrder[pos], pos))
	}
}

// CheckSaveRequest validates a persistence request: identifying fields plus
// a strict sequence.
func CheckSaveRequest(req models.SaveRequest) FieldErrors {
	fe := FieldErrors{}
	if req.AccountIndex < 1 || req.AccountIndex > MaxAccountIndex {
		fe.add("accountIndex", fmt.Sprintf("must be between 1 and %d", MaxAccountIndex))
	}
	if strings.TrimSpace(req.AccountName) == "" {
		fe.add("accountName", "must not be empty")
	}
	if strings.TrimSpace(req.ContactID) == "" {
		fe.add("contactId", "must not be empty")
	}
	if strings.TrimSpace(req.ContactName) == "" {
		fe.add("contactName", "must not be empty")
	}
	for field, msgs := range CheckSequence(req.Emails) {
		fe[field] = msgs
	}
	return fe
}
