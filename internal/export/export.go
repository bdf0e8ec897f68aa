// Package export renders an accepted sequence as a downloadable Word
// document.
package export

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"outreach/internal/models"

	"github.com/fumiama/go-docx"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks strips diacritic marks so "José" slugs to "jose".
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Filename derives the download filename from the contact's name:
// lower-cased, spaces to dashes, everything else outside [a-z0-9-] dropped.
func Filename(contactName string) string {
	return Slug(contactName) + ".docx"
}

// Slug normalizes a name for use in a filename.
func Slug(name string) string {
	folded, _, err := transform.String(foldMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			b.WriteRune(r)
		}
	}
	slug := b.String()
	if slug == "" {
		slug = "sequence"
	}
	return slug
}

// Document writes the sequence as a .docx to w: a title line, then one
// subject heading and body per email.
func Document(w io.Writer, accountName, contactName string, emails models.EmailSequence) error {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.AddText(fmt.Sprintf("Outreach sequence for %s at %s", contactName, accountName)).Size("32")

	for _, e := range emails {
		doc.AddParagraph()

		heading := doc.AddParagraph()
		heading.AddText(fmt.Sprintf("Email %d: %s", e.EmailNumber, e.SubjectLine)).Size("28")

		for _, line := range strings.Split(e.Body, "\n") {
			p := doc.AddParagraph()
			if line != "" {
				p.AddText(line)
			}
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
