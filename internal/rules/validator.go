// Package rules checks generated emails against the outreach style
// rulebook. Validation is advisory: it returns structured results for the
// operator and never blocks generation or save.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"outreach/internal/keywords"
	"outreach/internal/models"
)

// Check names, keyed into Result.Checks.
const (
	CheckWordCount     = "word_count_valid"
	CheckContractions  = "contractions_used"
	CheckKlasIntro     = "klas_intro_valid"
	CheckWeTiming      = "we_timing_valid"
	CheckCTA           = "cta_valid"
	CheckWarmth        = "warmth_present"
	CheckBannedPhrases = "no_banned_phrases"
	CheckSignature     = "signature_valid"
	CheckSubject       = "subject_valid"
	CheckEmailCount    = "email_count_valid"
	CheckAngleOrder    = "angle_order_valid"
)

// Result is the outcome of validating one email or one sequence.
// @Description Advisory validation outcome
type Result struct {
	Passed      bool            `json:"passed"`
	Checks      map[string]bool `json:"checks"`
	Failures    []string        `json:"failures"`
	Suggestions []string        `json:"suggestions"`
}

func newResult() Result {
	return Result{
		Passed:      true,
		Checks:      make(map[string]bool),
		Failures:    []string{},
		Suggestions: []string{},
	}
}

func (r *Result) pass(check string) {
	r.Checks[check] = true
}

func (r *Result) fail(check, failure string, suggestions ...string) {
	r.Checks[check] = false
	r.Passed = false
	r.Failures = append(r.Failures, failure)
	r.Suggestions = append(r.Suggestions, suggestions...)
}

var (
	uncontractedRe = compilePhraseRes(uncontractedPairs)
	pluralRe       = regexp.MustCompile(`(?i)\b(we're|we've|we'll|we'd|we|our)\b`)
)

// compilePhraseRes builds one word-boundary regexp per phrase so that
// "do not" does not fire inside "do nothing" only when it genuinely appears
// as the two-word phrase.
func compilePhraseRes(phrases []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`)
	}
	return res
}

// CountWords counts non-empty whitespace-separated tokens in body.
func CountWords(body string) int {
	return len(strings.Fields(body))
}

// HasValidKlasIntro checks the first KLAS mention in body. No mention passes
// trivially. A first mention inside a fully-qualified introduction passes; a
// first mention inside a known-bad shorthand fails; anything else passes
// (only the first mention is constrained).
func HasValidKlasIntro(body string) bool {
	lower := strings.ToLower(body)
	first := strings.Index(lower, "klas")
	if first == -1 {
		return true
	}
	if firstMentionMatches(lower, first, klasQualifiedIntros) {
		return true
	}
	return !firstMentionMatches(lower, first, klasBadShorthands)
}

// firstMentionMatches reports whether any pattern occurs such that its
// embedded "klas" lands exactly on the first mention offset.
func firstMentionMatches(lower string, first int, patterns []string) bool {
	for _, p := range patterns {
		k := strings.Index(p, "klas")
		start := first - k
		if start >= 0 && strings.HasPrefix(lower[start:], p) {
			return true
		}
	}
	return false
}

// HasValidWeTiming requires Class to be introduced before the first
// first-person-plural pronoun. When no introduction pattern appears at all
// the check is deliberately permissive and passes: an email may refer to the
// company implicitly throughout, and rejecting those produced too many false
// positives. This leniency is intentional, not a gap to close.
func HasValidWeTiming(body string) bool {
	intro := keywords.FirstIndex(body, companyIntroPatterns)
	if intro == -1 {
		return true
	}
	for _, loc := range pluralRe.FindAllStringIndex(body, -1) {
		if loc[0] < intro {
			return false
		}
	}
	return true
}

// HasWarmthPhrase requires a softening phrase in the final email of a
// sequence. Emails 1 and 2 pass trivially.
func HasWarmthPhrase(body string, emailNumber int) bool {
	if emailNumber != models.SequenceLength {
		return true
	}
	return keywords.ContainsAny(body, warmthPhrases)
}

// ValidateEmail runs the nine rulebook checks against one email and
// aggregates the outcome. It never returns an error: a malformed email just
// fails checks.
func ValidateEmail(e models.EmailVariant) Result {
	r := newResult()

	count := CountWords(e.Body)
	switch {
	case count < MinWords:
		r.fail(CheckWordCount,
			fmt.Sprintf("body is %d words, %d below the %d-word minimum", count, MinWords-count, MinWords),
			"expand the timing context or evidence section to reach the minimum")
	case count > MaxWords:
		r.fail(CheckWordCount,
			fmt.Sprintf("body is %d words, %d over the %d-word maximum", count, count-MaxWords, MaxWords),
			"cut qualifiers and merge sentences to get under the maximum")
	default:
		r.pass(CheckWordCount)
	}

	if hits := findUncontracted(e.Body); len(hits) > 0 {
		r.fail(CheckContractions,
			fmt.Sprintf("uncontracted phrases found: %s", strings.Join(hits, ", ")),
			`use contractions throughout ("I'm", "don't", "it's")`)
	} else {
		r.pass(CheckContractions)
	}

	if HasValidKlasIntro(e.Body) {
		r.pass(CheckKlasIntro)
	} else {
		r.fail(CheckKlasIntro,
			"first KLAS mention uses shorthand instead of a fully-qualified introduction",
			"introduce KLAS on first mention with the source name and its survey scale")
	}

	if HasValidWeTiming(e.Body) {
		r.pass(CheckWeTiming)
	} else {
		r.fail(CheckWeTiming,
			`"we"/"our" appears before Class is introduced`,
			"name Class before switching to first-person-plural pronouns")
	}

	if hits := foundPatterns(e.Body, bannedCTAs); len(hits) > 0 {
		r.fail(CheckCTA,
			fmt.Sprintf("banned call-to-action patterns found: %s", strings.Join(hits, ", ")),
			"close with an open-ended, low-friction question instead")
	} else {
		r.pass(CheckCTA)
	}

	if HasWarmthPhrase(e.Body, e.EmailNumber) {
		r.pass(CheckWarmth)
	} else {
		r.fail(CheckWarmth,
			"final email is missing a warmth phrase",
			`acknowledge the recipient may not be ready (e.g. "no pressure", "if now isn't the right time")`)
	}

	if hits := scanBannedPhrases(e.Body, &r); len(hits) > 0 {
		r.Checks[CheckBannedPhrases] = false
		r.Passed = false
		r.Failures = append(r.Failures,
			fmt.Sprintf("banned phrases found: %s", strings.Join(hits, ", ")))
	} else {
		r.pass(CheckBannedPhrases)
	}

	if signatureValid(e.Body) {
		r.pass(CheckSignature)
	} else {
		r.fail(CheckSignature,
			fmt.Sprintf("last non-empty line must be exactly %q", SignerFirstName),
			"sign with the first name only, no title or surname")
	}

	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(e.SubjectLine)), "re:") {
		r.fail(CheckSubject,
			`subject must not start with "re:"`,
			"write a fresh subject; reply-look-alike subjects erode trust")
	} else {
		r.pass(CheckSubject)
	}

	return r
}

// ValidateSequence checks a full sequence: exactly three emails whose angles
// follow the fixed timing/challenge/outcome order, merged with each email's
// own result namespaced by ordinal.
func ValidateSequence(emails []models.EmailVariant) Result {
	r := newResult()

	if len(emails) == models.SequenceLength {
		r.pass(CheckEmailCount)
	} else {
		r.fail(CheckEmailCount,
			fmt.Sprintf("sequence has %d emails, expected exactly %d", len(emails), models.SequenceLength),
			"regenerate to produce a complete three-email sequence")
	}

	angleOK := len(emails) == models.SequenceLength
	for i := 0; angleOK && i < models.SequenceLength; i++ {
		if emails[i].Angle != models.AngleOrder[i] {
			angleOK = false
		}
	}
	if angleOK {
		r.pass(CheckAngleOrder)
	} else {
		r.fail(CheckAngleOrder,
			fmt.Sprintf("angles must be %s, %s, %s in that order",
				models.AngleOrder[0], models.AngleOrder[1], models.AngleOrder[2]),
			"reassign angles by position: email 1 timing, email 2 challenge, email 3 outcome")
	}

	for i, e := range emails {
		er := ValidateEmail(e)
		prefix := fmt.Sprintf("email_%d.", i+1)
		for name, ok := range er.Checks {
			r.Checks[prefix+name] = ok
		}
		for _, f := range er.Failures {
			r.Failures = append(r.Failures, prefix+f)
		}
		r.Suggestions = append(r.Suggestions, er.Suggestions...)
		if !er.Passed {
			r.Passed = false
		}
	}

	return r
}

func findUncontracted(body string) []string {
	var hits []string
	for i, re := range uncontractedRe {
		if re.MatchString(body) {
			hits = append(hits, fmt.Sprintf("%q", uncontractedPairs[i]))
		}
	}
	return hits
}

func foundPatterns(body string, patterns []string) []string {
	lower := strings.ToLower(body)
	var hits []string
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			hits = append(hits, fmt.Sprintf("%q", p))
		}
	}
	return hits
}

// scanBannedPhrases returns the banned phrases present in body and appends
// each phrase's suggestion to the result.
func scanBannedPhrases(body string, r *Result) []string {
	lower := strings.ToLower(body)
	var hits []string
	for _, rule := range bannedPhrases {
		if strings.Contains(lower, rule.Pattern) {
			hits = append(hits, fmt.Sprintf("%q", rule.Pattern))
			r.Suggestions = append(r.Suggestions, rule.Suggestion)
		}
	}
	return hits
}

func signatureValid(body string) bool {
	lines := strings.Split(body, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		return strings.EqualFold(line, SignerFirstName)
	}
	return false
}
