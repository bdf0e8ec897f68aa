package generate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"outreach/internal/models"
)

var (
	fencedBlockRe = regexp.MustCompile("```(?:json)?[ \t]*\n([\\s\\S]*?)```")
	bareArrayRe   = regexp.MustCompile(`\[\s*\{[\s\S]*?\}\s*\]`)
)

// ExtractSequence interprets raw model output as a JSON array of email
// objects, trying four strategies in order:
//
//  1. the whole text, trimmed
//  2. the content of the first fenced code block
//  3. the first bracketed array-of-objects match anywhere in the text
//  4. the span from the first "[" to the last "]"
//
// The first strategy that yields parseable JSON wins. Strategy 4 catches
// arrays whose string fields contain brackets that defeat strategy 3's
// non-greedy match.
func ExtractSequence(raw string) (models.EmailSequence, error) {
	for _, candidate := range candidates(raw) {
		if candidate == "" {
			continue
		}
		var seq models.EmailSequence
		if err := json.Unmarshal([]byte(candidate), &seq); err == nil {
			return seq, nil
		}
	}
	return nil, fmt.Errorf("no parseable JSON email array found in model output (%d chars)", len(raw))
}

func candidates(raw string) []string {
	out := []string{strings.TrimSpace(raw)}

	if m := fencedBlockRe.FindStringSubmatch(raw); m != nil {
		out = append(out, strings.TrimSpace(m[1]))
	}

	out = append(out, bareArrayRe.FindString(raw))

	first := strings.Index(raw, "[")
	last := strings.LastIndex(raw, "]")
	if first >= 0 && last > first {
		out = append(out, raw[first:last+1])
	}

	return out
}
