package rules

// The stylistic rulebook as data. Every list here is consulted by exactly
// one check in validator.go; changing outreach style means editing these
// tables, not the checks.

// SignerFirstName is the only acceptable signature line.
const SignerFirstName = "Sarah"

// Word count bounds for an email body, inclusive.
const (
	MinWords = 150
	MaxWords = 200
)

// uncontractedPairs are two-word phrases that must always be contracted.
var uncontractedPairs = []string{
	"I am", "I have", "you are", "we are", "they are", "it is",
	"that is", "what is", "there is", "here is",
	"do not", "can not", "will not", "would not", "could not", "should not",
}

// klasQualifiedIntros are the acceptable first-mention phrasings for KLAS
// research. Each names the source and carries a scale claim, so a reader who
// has never heard of KLAS knows what the citation is worth.
var klasQualifiedIntros = []string{
	"klas research, which gathers feedback from over 30,000 provider organizations",
	"klas research, an independent firm that benchmarks thousands of healthcare organizations",
	"klas research, which surveys tens of thousands of clinicians every year",
}

// klasBadShorthands are known-bad first mentions: they cite KLAS as if the
// reader already trusts it.
var klasBadShorthands = []string{
	"klas data shows",
	"klas data show",
	"klas research shows",
	"klas shows",
	"klas says",
	"klas reports",
	"klas found",
	"klas-rated",
	"per klas",
	"according to klas,",
}

// companyIntroPatterns are phrasings that plausibly introduce Class as a
// company before the email switches to "we"/"our".
var companyIntroPatterns = []string{
	"class helps",
	"class partners",
	"class works with",
	"class supports",
	"class provides",
	"class is a",
	"class built",
	"at class",
	"with class,",
	"class's",
}

// pluralPronouns are the first-person-plural forms constrained by the
// company-introduction timing rule.
var pluralPronouns = []string{"we", "we're", "we've", "we'll", "we'd", "our"}

// bannedCTAs are call-to-action patterns that read as pushy or needy:
// short-duration meeting offers, naming a weekday, self-deprecation.
var bannedCTAs = []string{
	"15 minutes",
	"15-minute",
	"20 minutes",
	"20-minute",
	"quick 10",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"sorry to bother",
	"i know you're busy",
	"i know you are busy",
	"won't take much of your time",
	"hate to be a pest",
}

// warmthPhrases soften the final email of a sequence. At least one is
// required in email 3.
var warmthPhrases = []string{
	"no pressure",
	"no rush",
	"whenever the timing",
	"if now isn't the right time",
	"if the timing isn't right",
	"totally understand if",
	"completely understand if",
	"whenever it makes sense",
}

// phraseRule pairs a banned substring with the suggestion surfaced when it
// is found.
type phraseRule struct {
	Pattern    string
	Suggestion string
}

// bannedPhrases are sales-email cliches that get a prospect's delete reflex.
var bannedPhrases = []phraseRule{
	{"hope this email finds you well", "open with something specific to their EHR transition instead of a pleasantry"},
	{"i wanted to reach out", "state why you're writing in the first sentence"},
	{"just checking in", "reference a concrete signal instead of checking in"},
	{"touching base", "replace with a specific observation about their go-live"},
	{"circling back", "add new information rather than circling"},
	{"quick question", "ask the question directly instead of announcing it"},
	{"reaching out to introduce", "lead with their situation, not your introduction"},
	{"game-changer", "describe the specific outcome instead of calling it a game-changer"},
	{"cutting-edge", "name the capability instead of calling it cutting-edge"},
	{"best-in-class", "cite the KLAS evidence instead of claiming best-in-class"},
	{"revolutionize", "describe the measurable change instead of revolutionize"},
	{"synergy", "say concretely how the teams would work together"},
	{"leverage our", "say 'use' and name the capability"},
	{"state-of-the-art", "name the capability instead of calling it state-of-the-art"},
}
