// Package ranking orders an account's contacts for outreach and picks the
// default-selected subset. Everything here is pure and deterministic over
// the input list: callers (the contacts endpoint) recompute it per request
// and the UI only re-applies the auto-selection when the contact id list
// itself changes, so a user's manual selection is never overridden.
package ranking

import (
	"regexp"
	"sort"

	"outreach/internal/keywords"
	"outreach/internal/models"
)

// exclusionKeywords drop senior-executive and trainer-type titles from
// auto-selection entirely. They still appear in the list, tagged and sorted
// to the bottom.
var exclusionKeywords = []string{
	"ceo", "chief executive", "cfo", "chief financial", "coo", "chief operating",
	"president", "founder", "chairman", "board member",
	"trainer", "instructor",
}

// exclusionRes matches each keyword on word boundaries so "coo" never fires
// inside "Coordinator".
var exclusionRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exclusionKeywords))
	for i, kw := range exclusionKeywords {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return res
}()

func matchesExclusion(s string) bool {
	for _, re := range exclusionRes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// tierTable is the strict priority ladder. Checked in order, first match
// wins; contacts matching nothing land in the final "other eligible" tier.
var tierTable = []keywords.Category{
	{Name: "clinical informatics", Keywords: []string{"clinical education", "clinical informatics", "informatics"}},
	{Name: "ehr applications", Keywords: []string{"ehr", "epic", "cerner", "application", "clinical systems"}},
	{Name: "education and training", Keywords: []string{"education", "training", "learning"}},
	{Name: "it leadership", Keywords: []string{"cio", "information technology", "it director", "technology"}},
}

// TierOther is the tier assigned to eligible contacts matching no keyword
// group. They sort after every keyword tier and are not auto-selected.
var TierOther = len(tierTable) + 1

// RankedContact is a contact annotated with its computed outreach slot.
// @Description Contact with ranking annotations
type RankedContact struct {
	models.Contact
	Tier         int    `json:"tier"`      // 1-based ladder position; 0 for excluded
	TierName     string `json:"tier_name"` // ladder name, "other" or "excluded"
	Excluded     bool   `json:"excluded"`
	AutoSelected bool   `json:"auto_selected"`
}

// Rank classifies and sorts contacts: eligible contacts by tier then by
// their stored outreach priority, excluded contacts at the bottom. The sort
// is stable, so equal contacts keep their input order.
func Rank(contacts []models.Contact) []RankedContact {
	ranked := make([]RankedContact, len(contacts))
	for i, c := range contacts {
		ranked[i] = classify(c)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Excluded != b.Excluded {
			return !a.Excluded
		}
		if a.Excluded {
			return a.OutreachPriority < b.OutreachPriority
		}
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		return a.OutreachPriority < b.OutreachPriority
	})

	return ranked
}

// AutoSelected returns the ids of the default-checked contacts: exactly
// those that are not excluded and matched a keyword tier.
func AutoSelected(ranked []RankedContact) []string {
	var ids []string
	for _, rc := range ranked {
		if rc.AutoSelected {
			ids = append(ids, rc.ID)
		}
	}
	return ids
}

func classify(c models.Contact) RankedContact {
	rc := RankedContact{Contact: c}
	haystack := c.Title + " " + c.Persona

	if matchesExclusion(haystack) {
		rc.Excluded = true
		rc.TierName = "excluded"
		return rc
	}

	if name, ok := keywords.Match(tierTable, haystack); ok {
		for i, cat := range tierTable {
			if cat.Name == name {
				rc.Tier = i + 1
				break
			}
		}
		rc.TierName = name
		rc.AutoSelected = true
		return rc
	}

	rc.Tier = TierOther
	rc.TierName = "other"
	return rc
}
