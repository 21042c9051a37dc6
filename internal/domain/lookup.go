package domain

import "strings"

// LookupQuery is user-supplied text to look up or translate.
// Build it with NewLookupQuery; the text is never blank.
type LookupQuery struct {
	text string
}

// NewLookupQuery validates text and returns a LookupQuery.
// The text is kept verbatim, surrounding whitespace included.
func NewLookupQuery(text string) (LookupQuery, error) {
	if strings.TrimSpace(text) == "" {
		return LookupQuery{}, NewValidationError("query", "must not be blank")
	}
	return LookupQuery{text: text}, nil
}

// Text returns the query text.
func (q LookupQuery) Text() string { return q.text }

func (q LookupQuery) String() string { return q.text }

// DictionaryEntry is the normalized result of a dictionary lookup.
// Each section is independently optional and is an empty slice when absent.
type DictionaryEntry struct {
	Headword     string
	RelatedTerms []RelatedTerm
	Examples     []ExampleSentence
	Encyclopedia []EncyclopediaSummary
}

// RelatedTerm is one related web translation.
type RelatedTerm struct {
	Key         string
	Translation string
}

// ExampleSentence is a bilingual example sentence.
type ExampleSentence struct {
	Sentence    string
	Translation string
}

// EncyclopediaSummary is one encyclopedia summary with its source name.
type EncyclopediaSummary struct {
	Summary    string
	SourceName string
}

// IsEmpty reports whether no section carried any data.
func (e DictionaryEntry) IsEmpty() bool {
	return len(e.RelatedTerms) == 0 && len(e.Examples) == 0 && len(e.Encyclopedia) == 0
}

// TranslationResult is the normalized result of a translation.
type TranslationResult struct {
	SourceText     string
	TranslatedText string
}
