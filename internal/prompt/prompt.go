// Package prompt renders the system and user prompts for sequence
// generation. Both builders are pure: same input, same output, no I/O.
package prompt

import (
	"fmt"
	"strings"

	"outreach/internal/keywords"
	"outreach/internal/models"
	"outreach/internal/rules"
)

// systemPromptTemplate instructs the model to self-comply with the full
// rulebook, so the validator mostly confirms rather than catches. The two
// placeholders are the word-count bounds.
const systemPromptTemplate = `You are an experienced enterprise sales writer at Class. Class partners with health systems to deliver virtual, instructor-led EHR training before and after go-live.

Write a 3-email outbound sequence for the contact described in the user message. Follow every rule below exactly.

STRUCTURE
- Exactly 3 emails. Email 1 angle: "timing" (why this moment). Email 2 angle: "challenge" (the training problem they are likely facing). Email 3 angle: "outcome" (what good looks like after go-live).
- Each body is %d-%d words, counted by whitespace-separated words.
- Address the recipient by first name in the first line.
- Sign every email with exactly "Sarah" on its own final line. No surname, no title.

VOICE
- Always use contractions: "I'm", "don't", "it's", "we're". Never write the spelled-out forms like "I am", "do not", "it is".
- Introduce Class by name before you ever say "we", "our" or any first-person plural.
- If you cite KLAS, the first mention must introduce it fully, for example: "KLAS Research, which gathers feedback from over 30,000 provider organizations". Never open a citation with shorthand like "KLAS data shows" or "per KLAS".
- In email 3, include one warmth phrase acknowledging they may not be ready, such as "no pressure" or "if now isn't the right time".

NEVER
- Ask for "15 minutes", "20 minutes" or any specific short meeting length.
- Propose a specific weekday.
- Use self-deprecating closers like "sorry to bother you" or "I know you're busy".
- Use filler like "hope this email finds you well", "just checking in", "touching base", "circling back", "I wanted to reach out", "quick question", or hype words like "game-changer", "cutting-edge", "best-in-class", "revolutionize", "synergy".
- Write a subject line that starts with "re:" or pretends to be a reply. Subjects are 5-60 characters.

OUTPUT
Respond with ONLY a JSON array of exactly 3 objects, no markdown fences, no commentary:
[{"variant_id": "<id>", "email_number": 1, "subject_line": "...", "body": "...", "word_count": 172, "angle": "timing"}, ...]
Use the variant_id pattern given in the user message. word_count must be your actual body word count.`

// personaTable routes a contact's persona string to a guidance variant.
// Ordered: the first category with a keyword hit wins; contacts matching
// nothing get the generic variant.
var personaTable = []keywords.Category{
	{Name: "it", Keywords: []string{
		"information technology", "it leader", "it director", "technical",
		"informatics", "analyst", "application", "cio", "technology",
	}},
	{Name: "clinical", Keywords: []string{
		"clinical", "education", "nurse", "physician", "training", "cno", "cmio",
	}},
}

var personaGuidance = map[string]string{
	"it": "This contact thinks in systems and rollout risk. Speak to ticket volume after go-live, super-user coverage, and how training load shifts off the IT and application teams. Avoid clinical jargon.",
	"clinical": "This contact owns clinician readiness. Speak to proficiency at the elbow, reduced charting time after training, and protecting educator bandwidth during the ramp. Avoid infrastructure detail.",
	"default": "Keep the framing operational: schedule certainty, staff readiness, and go-live day confidence. One idea per email.",
}

// SystemPrompt renders the rulebook instruction block. Word-count bounds
// come from cfg when set, otherwise the rulebook constants; the evidence and
// warmth toggles append their extra instructions.
func SystemPrompt(cfg models.GenerationConfig) string {
	minWords, maxWords := wordBounds(cfg)

	var b strings.Builder
	fmt.Fprintf(&b, systemPromptTemplate, minWords, maxWords)
	if cfg.IncludeKLASEvidence {
		b.WriteString("\n\nEVIDENCE\nCite KLAS in exactly one email, with the full first-mention introduction described above.")
	}
	if cfg.RequireWarmthPhrase {
		b.WriteString("\n\nDo not skip the warmth phrase in email 3. A sequence without it will be rejected.")
	}
	return b.String()
}

// wordBounds resolves the per-request word-count range, falling back to the
// rulebook constants when a bound is unset.
func wordBounds(cfg models.GenerationConfig) (int, int) {
	minWords, maxWords := rules.MinWords, rules.MaxWords
	if cfg.MinWords > 0 {
		minWords = cfg.MinWords
	}
	if cfg.MaxWords > 0 {
		maxWords = cfg.MaxWords
	}
	return minWords, maxWords
}

// VariantSuffix derives the contact part of a variant id: first initial plus
// last name, lower-cased, letters and digits only.
func VariantSuffix(c models.Contact) string {
	raw := c.FirstName
	if raw != "" {
		raw = raw[:1]
	}
	raw += c.LastName
	if raw == "" {
		raw = c.ID
	}
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UserPrompt renders the per-request context block for one account/contact
// pair. Missing optional fields drop their section rather than rendering
// placeholders.
func UserPrompt(account models.Account, contact models.Contact, cfg models.GenerationConfig) string {
	var b strings.Builder

	b.WriteString("ACCOUNT\n")
	fmt.Fprintf(&b, "Company: %s (tier %s)\n", account.CompanyName, account.Tier)
	fmt.Fprintf(&b, "EHR: %s", account.EHRPlatform)
	if account.EHRStage != "" {
		fmt.Fprintf(&b, ", stage: %s", account.EHRStage)
	}
	if account.GoLiveDate != "" {
		fmt.Fprintf(&b, ", go-live: %s", account.GoLiveDate)
	}
	b.WriteString("\n")
	if account.EmployeeCount > 0 {
		fmt.Fprintf(&b, "Employees: %d\n", account.EmployeeCount)
	}

	writeTimingContext(&b, account)

	b.WriteString("\nCONTACT\n")
	fmt.Fprintf(&b, "Name: %s\n", contact.FullName())
	fmt.Fprintf(&b, "Title: %s\n", contact.Title)
	if contact.Department != "" {
		fmt.Fprintf(&b, "Department: %s\n", contact.Department)
	}
	if contact.Notes != "" {
		fmt.Fprintf(&b, "Relevance: %s\n", contact.Notes)
	}

	b.WriteString("\nPERSONA GUIDANCE\n")
	b.WriteString(guidanceFor(contact.Persona))
	b.WriteString("\n")

	b.WriteString("\nOUTPUT FORMAT\n")
	fmt.Fprintf(&b, "variant_id pattern: %03d-%s-E<n> for n in 1..3\n", account.Index, VariantSuffix(contact))
	fmt.Fprintf(&b, "Address the recipient as %s. Sign as %s.\n", contact.FirstName, rules.SignerFirstName)
	minWords, maxWords := wordBounds(cfg)
	fmt.Fprintf(&b, "Angles in order: %s, %s, %s. Bodies %d-%d words.\n",
		models.AngleOrder[0], models.AngleOrder[1], models.AngleOrder[2], minWords, maxWords)

	return b.String()
}

// writeTimingContext prefers the structured triple; otherwise it falls back
// to whichever raw signal fields are non-empty.
func writeTimingContext(b *strings.Builder, account models.Account) {
	if tc := account.TimingContext; tc != nil {
		b.WriteString("\nTIMING CONTEXT\n")
		fmt.Fprintf(b, "Initiative: %s\n", tc.Initiative)
		fmt.Fprintf(b, "Timing: %s\n", tc.Timing)
		fmt.Fprintf(b, "Why Class fits: %s\n", tc.WhyClassFits)
		return
	}

	sections := []struct{ label, text string }{
		{"Timing signal", account.TimingSignal},
		{"Qualification", account.Qualification},
		{"Evidence", account.Evidence},
		{"News", account.News},
	}
	wrote := false
	for _, s := range sections {
		if s.text == "" {
			continue
		}
		if !wrote {
			b.WriteString("\nTIMING CONTEXT\n")
			wrote = true
		}
		fmt.Fprintf(b, "%s: %s\n", s.label, s.text)
	}
}

func guidanceFor(persona string) string {
	if cat, ok := keywords.Match(personaTable, persona); ok {
		return personaGuidance[cat]
	}
	return personaGuidance["default"]
}
