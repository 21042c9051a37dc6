package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yos-x/weardict/internal/domain"
)

const (
	titleRelated      = "相关词汇"
	titleExamples     = "例句"
	titleEncyclopedia = "百科"

	dictionarySource  = "数据来源: 有道词典"
	translationSource = "翻译来源: 360翻译"
)

// renderEntry prints the headword followed by each non-empty section.
func renderEntry(w io.Writer, e domain.DictionaryEntry) {
	fmt.Fprintln(w, e.Headword)

	if len(e.RelatedTerms) > 0 {
		fmt.Fprintf(w, "\n%s\n", titleRelated)
		for _, t := range e.RelatedTerms {
			fmt.Fprintf(w, "  %s\n    %s\n", t.Key, t.Translation)
		}
	}
	if len(e.Examples) > 0 {
		fmt.Fprintf(w, "\n%s\n", titleExamples)
		for _, ex := range e.Examples {
			fmt.Fprintf(w, "  %s\n    %s\n", ex.Sentence, ex.Translation)
		}
	}
	if len(e.Encyclopedia) > 0 {
		fmt.Fprintf(w, "\n%s\n", titleEncyclopedia)
		for _, s := range e.Encyclopedia {
			fmt.Fprintf(w, "  %s\n    %s\n", s.Summary, s.SourceName)
		}
	}

	fmt.Fprintf(w, "\n%s\n", dictionarySource)
}

func renderTranslation(w io.Writer, r domain.TranslationResult) {
	fmt.Fprintf(w, "%s\n%s\n\n%s\n", r.SourceText, r.TranslatedText, translationSource)
}

type entryView struct {
	Headword     string             `json:"headword"`
	RelatedTerms []relatedTermView  `json:"relatedTerms"`
	Examples     []exampleView      `json:"examples"`
	Encyclopedia []encyclopediaView `json:"encyclopedia"`
}

type relatedTermView struct {
	Key         string `json:"key"`
	Translation string `json:"translation"`
}

type exampleView struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
}

type encyclopediaView struct {
	Summary    string `json:"summary"`
	SourceName string `json:"sourceName"`
}

type translationView struct {
	SourceText     string `json:"sourceText"`
	TranslatedText string `json:"translatedText"`
}

func toEntryView(e domain.DictionaryEntry) entryView {
	v := entryView{
		Headword:     e.Headword,
		RelatedTerms: make([]relatedTermView, 0, len(e.RelatedTerms)),
		Examples:     make([]exampleView, 0, len(e.Examples)),
		Encyclopedia: make([]encyclopediaView, 0, len(e.Encyclopedia)),
	}
	for _, t := range e.RelatedTerms {
		v.RelatedTerms = append(v.RelatedTerms, relatedTermView(t))
	}
	for _, ex := range e.Examples {
		v.Examples = append(v.Examples, exampleView(ex))
	}
	for _, s := range e.Encyclopedia {
		v.Encyclopedia = append(v.Encyclopedia, encyclopediaView(s))
	}
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
