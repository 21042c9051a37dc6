package youdao

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yos-x/weardict/internal/domain"
)

// Section names, used in diagnostics.
const (
	sectionRelatedTerms = "web_trans"
	sectionExamples     = "blng_sents_part"
	sectionEncyclopedia = "baike"
)

var errMissingField = errors.New("missing field")

// absent reports whether a section is not in the payload at all.
func absent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func requireString(s *string, field string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("%w: %s", errMissingField, field)
	}
	return *s, nil
}

// parseRelatedTerms maps web_trans.web-translation[] → {key, trans[0].value}.
// Returns an empty slice and nil when the section is absent, and an empty
// slice and the cause when it is present but malformed.
func parseRelatedTerms(raw json.RawMessage) ([]domain.RelatedTerm, error) {
	terms := []domain.RelatedTerm{}
	if absent(raw) {
		return terms, nil
	}

	var section apiWebTrans
	if err := json.Unmarshal(raw, &section); err != nil {
		return []domain.RelatedTerm{}, fmt.Errorf("decode: %w", err)
	}
	if section.WebTranslation == nil {
		return []domain.RelatedTerm{}, fmt.Errorf("%w: web-translation", errMissingField)
	}

	for i, item := range *section.WebTranslation {
		key, err := requireString(item.Key, "key")
		if err != nil {
			return []domain.RelatedTerm{}, fmt.Errorf("entry %d: %w", i, err)
		}
		if item.Trans == nil || len(*item.Trans) == 0 {
			return []domain.RelatedTerm{}, fmt.Errorf("entry %d: %w: trans[0]", i, errMissingField)
		}
		value, err := requireString((*item.Trans)[0].Value, "trans[0].value")
		if err != nil {
			return []domain.RelatedTerm{}, fmt.Errorf("entry %d: %w", i, err)
		}
		terms = append(terms, domain.RelatedTerm{Key: key, Translation: value})
	}

	return terms, nil
}

// parseExamples maps blng_sents_part.sentence-pair[] → {sentence, sentence-translation}.
func parseExamples(raw json.RawMessage) ([]domain.ExampleSentence, error) {
	examples := []domain.ExampleSentence{}
	if absent(raw) {
		return examples, nil
	}

	var section apiBilingualPart
	if err := json.Unmarshal(raw, &section); err != nil {
		return []domain.ExampleSentence{}, fmt.Errorf("decode: %w", err)
	}
	if section.SentencePair == nil {
		return []domain.ExampleSentence{}, fmt.Errorf("%w: sentence-pair", errMissingField)
	}

	for i, pair := range *section.SentencePair {
		sentence, err := requireString(pair.Sentence, "sentence")
		if err != nil {
			return []domain.ExampleSentence{}, fmt.Errorf("pair %d: %w", i, err)
		}
		translation, err := requireString(pair.SentenceTranslation, "sentence-translation")
		if err != nil {
			return []domain.ExampleSentence{}, fmt.Errorf("pair %d: %w", i, err)
		}
		examples = append(examples, domain.ExampleSentence{Sentence: sentence, Translation: translation})
	}

	return examples, nil
}

// parseEncyclopedia maps baike.summarys[].summary, pairing each with the
// shared baike.source.name.
func parseEncyclopedia(raw json.RawMessage) ([]domain.EncyclopediaSummary, error) {
	summaries := []domain.EncyclopediaSummary{}
	if absent(raw) {
		return summaries, nil
	}

	var section apiBaike
	if err := json.Unmarshal(raw, &section); err != nil {
		return []domain.EncyclopediaSummary{}, fmt.Errorf("decode: %w", err)
	}
	if section.Summarys == nil {
		return []domain.EncyclopediaSummary{}, fmt.Errorf("%w: summarys", errMissingField)
	}
	if section.Source == nil {
		return []domain.EncyclopediaSummary{}, fmt.Errorf("%w: source", errMissingField)
	}
	name, err := requireString(section.Source.Name, "source.name")
	if err != nil {
		return []domain.EncyclopediaSummary{}, err
	}

	for i, s := range *section.Summarys {
		summary, err := requireString(s.Summary, "summary")
		if err != nil {
			return []domain.EncyclopediaSummary{}, fmt.Errorf("summary %d: %w", i, err)
		}
		summaries = append(summaries, domain.EncyclopediaSummary{Summary: summary, SourceName: name})
	}

	return summaries, nil
}
