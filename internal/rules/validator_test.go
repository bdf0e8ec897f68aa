package rules

import (
	"fmt"
	"strings"
	"testing"

	"outreach/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bodyWithWords builds a rule-clean body with exactly n words, ending with
// the signature line.
func bodyWithWords(n int) string {
	filler := strings.TrimSpace(strings.Repeat("signal ", n-1))
	return filler + "\n\n" + SignerFirstName
}

func validEmail(num int) models.EmailVariant {
	body := bodyWithWords(170)
	if num == models.SequenceLength {
		// Splice a warmth phrase ahead of the signature.
		body = strings.Replace(body, "\n\n"+SignerFirstName,
			" No pressure either way.\n\n"+SignerFirstName, 1)
	}
	return models.EmailVariant{
		VariantID:   fmt.Sprintf("042-dwhitfield-E%d", num),
		EmailNumber: num,
		SubjectLine: "Epic go-live without the training crunch",
		Body:        body,
		WordCount:   CountWords(body),
		Angle:       models.AngleOrder[num-1],
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"mixed whitespace", "a  b\tc", 3},
		{"empty", "", 0},
		{"only whitespace", "  \n\t ", 0},
		{"newlines", "one\ntwo\nthree four", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.body))
		})
	}
}

func TestValidateEmail_WordCount(t *testing.T) {
	tests := []struct {
		name        string
		words       int
		wantValid   bool
		wantFailure string
	}{
		{"below minimum", 140, false, "10 below the 150-word minimum"},
		{"at minimum", 150, true, ""},
		{"at maximum", 200, true, ""},
		{"above maximum", 210, false, "10 over the 200-word maximum"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEmail(1)
			e.Body = bodyWithWords(tt.words)
			r := ValidateEmail(e)
			assert.Equal(t, tt.wantValid, r.Checks[CheckWordCount])
			if tt.wantFailure != "" {
				require.NotEmpty(t, r.Failures)
				found := false
				for _, f := range r.Failures {
					if strings.Contains(f, tt.wantFailure) {
						found = true
					}
				}
				assert.True(t, found, "expected failure naming %q, got %v", tt.wantFailure, r.Failures)
			}
		})
	}
}

func TestValidateEmail_Contractions(t *testing.T) {
	e := validEmail(1)
	e.Body = strings.Replace(e.Body, "signal signal", "I am writing because it is time", 1)
	r := ValidateEmail(e)

	assert.False(t, r.Checks[CheckContractions])
	require.NotEmpty(t, r.Failures)
	assert.Contains(t, r.Failures[0], `"I am"`)
	assert.Contains(t, r.Failures[0], `"it is"`)
	assert.NotEmpty(t, r.Suggestions)
}

func TestValidateEmail_ContractionsWordBoundary(t *testing.T) {
	e := validEmail(1)
	// "do nothing" must not trip the "do not" rule.
	e.Body = strings.Replace(e.Body, "signal signal", "teams that do nothing", 1)
	r := ValidateEmail(e)
	assert.True(t, r.Checks[CheckContractions])
}

func TestHasValidKlasIntro(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"no mention", "nothing about research here", true},
		{
			"qualified first mention",
			"According to KLAS Research, which gathers feedback from over 30,000 provider organizations, training drives adoption.",
			true,
		},
		{"bad shorthand", "KLAS data shows training drives adoption.", false},
		{"bad shorthand mid-sentence", "As you know, per KLAS the numbers look strong.", false},
		{
			"unrecognized first mention is unconstrained",
			"The KLAS results for virtual training were strong.",
			true,
		},
		{
			"only first mention constrained",
			"KLAS Research, which surveys tens of thousands of clinicians every year, ranks this highly. Later, KLAS data shows the same.",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasValidKlasIntro(tt.body))
		})
	}
}

func TestHasValidWeTiming(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"intro before we", "Class helps health systems train fast, and we stay until go-live.", true},
		{"we before intro", "Here's how we think about it: Class helps health systems train fast.", false},
		{"our before intro", "Our model is simple. Class partners with your team.", false},
		{"no intro is permissive", "We think training is the crunch point, and our data agrees.", true},
		{"no pronouns at all", "Class helps health systems train fast.", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasValidWeTiming(tt.body))
		})
	}
}

func TestHasWarmthPhrase(t *testing.T) {
	bare := "the team keeps momentum through go-live"

	assert.True(t, HasWarmthPhrase(bare, 1))
	assert.True(t, HasWarmthPhrase(bare, 2))
	assert.False(t, HasWarmthPhrase(bare, 3))
	assert.True(t, HasWarmthPhrase(bare+" — no pressure either way", 3))
	assert.True(t, HasWarmthPhrase("totally understand if this isn't the moment. "+bare, 3))
}

func TestValidateEmail_BannedCTA(t *testing.T) {
	e := validEmail(1)
	e.Body = strings.Replace(e.Body, "signal signal", "got 15 minutes on Thursday", 1)
	r := ValidateEmail(e)

	assert.False(t, r.Checks[CheckCTA])
	require.NotEmpty(t, r.Failures)
	assert.Contains(t, r.Failures[0], `"15 minutes"`)
	assert.Contains(t, r.Failures[0], `"thursday"`)
}

func TestValidateEmail_BannedPhrases(t *testing.T) {
	e := validEmail(1)
	e.Body = strings.Replace(e.Body, "signal signal", "hope this email finds you well", 1)
	r := ValidateEmail(e)

	assert.False(t, r.Checks[CheckBannedPhrases])
	assert.NotEmpty(t, r.Suggestions)

	e2 := validEmail(1)
	r2 := ValidateEmail(e2)
	assert.True(t, r2.Checks[CheckBannedPhrases])
}

func TestValidateEmail_Signature(t *testing.T) {
	tests := []struct {
		name string
		sig  string
		want bool
	}{
		{"first name only", SignerFirstName, true},
		{"case-insensitive", strings.ToUpper(SignerFirstName), true},
		{"with surname", SignerFirstName + " Mitchell", false},
		{"with title", SignerFirstName + ", Account Executive", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEmail(1)
			e.Body = strings.TrimSpace(strings.Repeat("signal ", 169)) + "\n\n" + tt.sig
			r := ValidateEmail(e)
			assert.Equal(t, tt.want, r.Checks[CheckSignature])
		})
	}
}

func TestValidateEmail_Subject(t *testing.T) {
	e := validEmail(1)
	e.SubjectLine = "Re: our conversation"
	r := ValidateEmail(e)
	assert.False(t, r.Checks[CheckSubject])

	e.SubjectLine = "Rethinking go-live training"
	r = ValidateEmail(e)
	assert.True(t, r.Checks[CheckSubject])
}

func TestValidateEmail_AllChecksPass(t *testing.T) {
	for num := 1; num <= models.SequenceLength; num++ {
		r := ValidateEmail(validEmail(num))
		assert.True(t, r.Passed, "email %d: failures %v", num, r.Failures)
		assert.Len(t, r.Checks, 9)
		assert.Empty(t, r.Failures)
	}
}

func TestValidateSequence(t *testing.T) {
	seq := []models.EmailVariant{validEmail(1), validEmail(2), validEmail(3)}

	r := ValidateSequence(seq)
	assert.True(t, r.Passed, "failures: %v", r.Failures)
	assert.True(t, r.Checks[CheckEmailCount])
	assert.True(t, r.Checks[CheckAngleOrder])
	assert.True(t, r.Checks["email_1."+CheckWordCount])
	assert.True(t, r.Checks["email_3."+CheckWarmth])
}

func TestValidateSequence_AngleOrder(t *testing.T) {
	seq := []models.EmailVariant{validEmail(1), validEmail(2), validEmail(3)}
	// Swap angles on the first two emails; per-email validity is untouched.
	seq[0].Angle = models.AngleChallenge
	seq[1].Angle = models.AngleTiming

	r := ValidateSequence(seq)
	assert.False(t, r.Passed)
	assert.False(t, r.Checks[CheckAngleOrder])
	assert.True(t, r.Checks[CheckEmailCount])

	found := false
	for _, f := range r.Failures {
		if strings.Contains(f, "angles must be") {
			found = true
		}
	}
	assert.True(t, found, "expected an angle-order failure, got %v", r.Failures)
}

func TestValidateSequence_WrongCount(t *testing.T) {
	r := ValidateSequence([]models.EmailVariant{validEmail(1), validEmail(2)})
	assert.False(t, r.Passed)
	assert.False(t, r.Checks[CheckEmailCount])
	assert.False(t, r.Checks[CheckAngleOrder])
}

func TestValidateSequence_NamespacesPerEmailFailures(t *testing.T) {
	seq := []models.EmailVariant{validEmail(1), validEmail(2), validEmail(3)}
	seq[1].Body = bodyWithWords(100)

	r := ValidateSequence(seq)
	assert.False(t, r.Passed)
	assert.False(t, r.Checks["email_2."+CheckWordCount])
	assert.True(t, r.Checks["email_1."+CheckWordCount])

	found := false
	for _, f := range r.Failures {
		if strings.HasPrefix(f, "email_2.") {
			found = true
		}
	}
	assert.True(t, found)
}
